package source

import (
	"reflect"

	"github.com/oasgraph/oasast/node"
)

// Invalid holds a raw, YAML-deserialized value that could not be shaped into
// the field or object type the spec expects at this position. Raw keeps
// scalars typed as the parser saw them (an integer stays an integer, never
// coerced to a string default), matching the invalid-preservation contract.
type Invalid struct {
	Raw  any
	Node *node.Node
}

// KeySource binds a dict key to the node.Node it was parsed from.
type KeySource[K any] struct {
	Value   K
	KeyNode *node.Node
}

// NewKeySource constructs a KeySource.
func NewKeySource[K any](value K, keyNode *node.Node) KeySource[K] {
	return KeySource[K]{Value: value, KeyNode: keyNode}
}

// ValueSource binds a value to the node.Node it was parsed from.
type ValueSource[V any] struct {
	Value     V
	ValueNode *node.Node
	// Invalid is non-nil when the source shape did not match V; Value then
	// holds the zero value of V and Invalid.Raw holds the salvaged data.
	Invalid *Invalid
}

// NewValueSource constructs a well-formed ValueSource (Invalid is nil).
func NewValueSource[V any](value V, valueNode *node.Node) ValueSource[V] {
	return ValueSource[V]{Value: value, ValueNode: valueNode}
}

// NewInvalidValueSource constructs a ValueSource salvaging a malformed node.
func NewInvalidValueSource[V any](raw any, valueNode *node.Node) ValueSource[V] {
	return ValueSource[V]{ValueNode: valueNode, Invalid: &Invalid{Raw: raw, Node: valueNode}}
}

// IsValid reports whether this value was parsed into a well-formed V.
func (v ValueSource[V]) IsValid() bool { return v.Invalid == nil }

// FieldSource binds a named field's value to both its key and value nodes.
// This is the primary wrapper used for every fixed field of a typed AST
// object.
type FieldSource[V any] struct {
	Value     V
	KeyNode   *node.Node
	ValueNode *node.Node
	// Invalid is non-nil when the source shape did not match V; Value then
	// holds the zero value of V and Invalid.Raw holds the salvaged data.
	Invalid *Invalid
}

// NewFieldSource constructs a well-formed FieldSource (Invalid is nil).
func NewFieldSource[V any](value V, keyNode, valueNode *node.Node) FieldSource[V] {
	return FieldSource[V]{Value: value, KeyNode: keyNode, ValueNode: valueNode}
}

// NewInvalidFieldSource constructs a FieldSource salvaging a malformed node
// while still recording where the field's key and value lived in the source.
func NewInvalidFieldSource[V any](raw any, keyNode, valueNode *node.Node) FieldSource[V] {
	return FieldSource[V]{KeyNode: keyNode, ValueNode: valueNode, Invalid: &Invalid{Raw: raw, Node: valueNode}}
}

// IsValid reports whether this field was parsed into a well-formed V.
func (f FieldSource[V]) IsValid() bool { return f.Invalid == nil }

// IsPresent reports whether this field has a value or value node at all;
// an optional field absent from the source is the zero FieldSource, for
// which it returns false.
func (f FieldSource[V]) IsPresent() bool { return f.ValueNode != nil || f.Invalid != nil }

// Equal reports whether two FieldSource values carry equal logical Values,
// ignoring node location metadata entirely, as the location-faithfulness
// invariant requires.
func (f FieldSource[V]) Equal(other FieldSource[V]) bool {
	if f.IsValid() != other.IsValid() {
		return false
	}
	if !f.IsValid() {
		return reflect.DeepEqual(f.Invalid.Raw, other.Invalid.Raw)
	}
	return reflect.DeepEqual(f.Value, other.Value)
}
