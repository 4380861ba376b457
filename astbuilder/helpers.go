package astbuilder

import (
	"strings"

	"github.com/oasgraph/oasast/node"
	"github.com/oasgraph/oasast/source"
)

// lookup finds the last entry in a Mapping node keyed by a string-scalar
// key equal to key, returning both the key and value nodes.
func lookup(n *node.Node, key string) (keyNode, valueNode *node.Node, ok bool) {
	if !n.IsMapping() {
		return nil, nil, false
	}
	for _, e := range n.Entries {
		if e.Key != nil && e.Key.IsScalar() && e.Key.Value == key {
			keyNode, valueNode, ok = e.Key, e.Value, true
		}
	}
	return
}

// isExtensionKey reports whether key is a specification-extension key.
func isExtensionKey(key string) bool { return strings.HasPrefix(key, "x-") }

// buildExtensions collects every x-* entry of a Mapping node into an ordered
// Extensions list, preserving source order.
func buildExtensions(n *node.Node) source.Extensions {
	if !n.IsMapping() {
		return nil
	}
	var ext source.Extensions
	for _, e := range n.Entries {
		if e.Key == nil || !e.Key.IsScalar() || !isExtensionKey(e.Key.Value) {
			continue
		}
		ext = append(ext, source.ExtensionEntry{
			Key:   source.NewKeySource(e.Key.Value, e.Key),
			Value: source.NewValueSource[any](e.Value.ToAny(), e.Value),
		})
	}
	return ext
}

// stringField extracts a field expected to be a string scalar. A present
// but non-string-scalar value is preserved via the Invalid marker rather
// than coerced.
func stringField(n *node.Node, key string) (source.FieldSource[string], bool) {
	k, v, ok := lookup(n, key)
	if !ok {
		return source.FieldSource[string]{}, false
	}
	if v.IsScalar() && v.Tag == "!!str" {
		return source.NewFieldSource(v.Value, k, v), true
	}
	return source.NewInvalidFieldSource[string](v.ToAny(), k, v), true
}

// boolField extracts a field expected to be a boolean scalar.
func boolField(n *node.Node, key string) (source.FieldSource[bool], bool) {
	k, v, ok := lookup(n, key)
	if !ok {
		return source.FieldSource[bool]{}, false
	}
	if v.IsScalar() && v.Tag == "!!bool" {
		raw, _ := v.ScalarValue()
		if b, ok := raw.(bool); ok {
			return source.NewFieldSource(b, k, v), true
		}
	}
	return source.NewInvalidFieldSource[bool](v.ToAny(), k, v), true
}

// intField extracts a field expected to be an integer scalar.
func intField(n *node.Node, key string) (source.FieldSource[int], bool) {
	k, v, ok := lookup(n, key)
	if !ok {
		return source.FieldSource[int]{}, false
	}
	if v.IsScalar() && v.Tag == "!!int" {
		raw, _ := v.ScalarValue()
		if i, ok := raw.(int64); ok {
			return source.NewFieldSource(int(i), k, v), true
		}
	}
	return source.NewInvalidFieldSource[int](v.ToAny(), k, v), true
}

// float64Field extracts a field expected to be a numeric scalar, accepting
// both !!int and !!float source tags.
func float64Field(n *node.Node, key string) (source.FieldSource[float64], bool) {
	k, v, ok := lookup(n, key)
	if !ok {
		return source.FieldSource[float64]{}, false
	}
	if v.IsScalar() && (v.Tag == "!!float" || v.Tag == "!!int") {
		raw, _ := v.ScalarValue()
		switch n := raw.(type) {
		case float64:
			return source.NewFieldSource(n, k, v), true
		case int64:
			return source.NewFieldSource(float64(n), k, v), true
		}
	}
	return source.NewInvalidFieldSource[float64](v.ToAny(), k, v), true
}

// anyField extracts a field of unconstrained shape (e.g. default, example,
// const): whatever the source holds decodes straight through, never marked
// Invalid, since there is no expected shape to violate.
func anyField(n *node.Node, key string) (source.FieldSource[any], bool) {
	k, v, ok := lookup(n, key)
	if !ok {
		return source.FieldSource[any]{}, false
	}
	return source.NewFieldSource(v.ToAny(), k, v), true
}

// stringListField extracts a field expected to be a sequence of strings.
func stringListField(n *node.Node, key string) (source.FieldSource[[]string], bool) {
	k, v, ok := lookup(n, key)
	if !ok {
		return source.FieldSource[[]string]{}, false
	}
	if !v.IsSequence() {
		return source.NewInvalidFieldSource[[]string](v.ToAny(), k, v), true
	}
	out := make([]string, 0, len(v.Items))
	for _, item := range v.Items {
		if !item.IsScalar() || item.Tag != "!!str" {
			return source.NewInvalidFieldSource[[]string](v.ToAny(), k, v), true
		}
		out = append(out, item.Value)
	}
	return source.NewFieldSource(out, k, v), true
}

// anyListField extracts a field expected to be a sequence of arbitrary
// values.
func anyListField(n *node.Node, key string) (source.FieldSource[[]any], bool) {
	k, v, ok := lookup(n, key)
	if !ok {
		return source.FieldSource[[]any]{}, false
	}
	if !v.IsSequence() {
		return source.NewInvalidFieldSource[[]any](v.ToAny(), k, v), true
	}
	out := make([]any, len(v.Items))
	for i, item := range v.Items {
		out[i] = item.ToAny()
	}
	return source.NewFieldSource(out, k, v), true
}

// objectField builds a nested typed object from a mapping-valued field,
// using build, which itself tolerates a non-mapping value node by returning
// a zero-value T carrying an Invalid marker.
func objectField[T any](n *node.Node, key string, build func(*node.Node) *T) (source.FieldSource[*T], bool) {
	k, v, ok := lookup(n, key)
	if !ok {
		return source.FieldSource[*T]{}, false
	}
	return source.NewFieldSource(build(v), k, v), true
}

// objectListField builds a list of typed objects from a sequence-valued
// field.
func objectListField[T any](n *node.Node, key string, build func(*node.Node) *T) (source.FieldSource[[]*T], bool) {
	k, v, ok := lookup(n, key)
	if !ok {
		return source.FieldSource[[]*T]{}, false
	}
	if !v.IsSequence() {
		return source.NewInvalidFieldSource[[]*T](v.ToAny(), k, v), true
	}
	items := make([]*T, len(v.Items))
	for i, it := range v.Items {
		items[i] = build(it)
	}
	return source.NewFieldSource(items, k, v), true
}

// objectMapField builds an insertion-ordered map of typed objects from a
// mapping-valued field, keyed by the source's own string keys.
func objectMapField[T any](n *node.Node, key string, build func(*node.Node) *T) (source.FieldSource[source.OrderedMap[*T]], bool) {
	k, v, ok := lookup(n, key)
	if !ok {
		return source.FieldSource[source.OrderedMap[*T]]{}, false
	}
	if !v.IsMapping() {
		return source.NewInvalidFieldSource[source.OrderedMap[*T]](v.ToAny(), k, v), true
	}
	om := make(source.OrderedMap[*T], 0, len(v.Entries))
	for _, e := range v.Entries {
		if e.Key == nil || !e.Key.IsScalar() {
			continue
		}
		om = append(om, source.Entry[*T]{
			Key:   source.NewKeySource(e.Key.Value, e.Key),
			Value: build(e.Value),
		})
	}
	return source.NewFieldSource(om, k, v), true
}

// stringMapField builds an insertion-ordered map of strings from a
// mapping-valued field.
func stringMapField(n *node.Node, key string) (source.FieldSource[source.OrderedMap[string]], bool) {
	k, v, ok := lookup(n, key)
	if !ok {
		return source.FieldSource[source.OrderedMap[string]]{}, false
	}
	if !v.IsMapping() {
		return source.NewInvalidFieldSource[source.OrderedMap[string]](v.ToAny(), k, v), true
	}
	om := make(source.OrderedMap[string], 0, len(v.Entries))
	for _, e := range v.Entries {
		if e.Key == nil || !e.Key.IsScalar() || !e.Value.IsScalar() {
			return source.NewInvalidFieldSource[source.OrderedMap[string]](v.ToAny(), k, v), true
		}
		om = append(om, source.Entry[string]{Key: source.NewKeySource(e.Key.Value, e.Key), Value: e.Value.Value})
	}
	return source.NewFieldSource(om, k, v), true
}

// boolMapField builds an insertion-ordered map of booleans from a
// mapping-valued field (e.g. Schema.$vocabulary).
func boolMapField(n *node.Node, key string) (source.FieldSource[source.OrderedMap[bool]], bool) {
	k, v, ok := lookup(n, key)
	if !ok {
		return source.FieldSource[source.OrderedMap[bool]]{}, false
	}
	if !v.IsMapping() {
		return source.NewInvalidFieldSource[source.OrderedMap[bool]](v.ToAny(), k, v), true
	}
	om := make(source.OrderedMap[bool], 0, len(v.Entries))
	for _, e := range v.Entries {
		if e.Key == nil || !e.Key.IsScalar() || !e.Value.IsScalar() || e.Value.Tag != "!!bool" {
			return source.NewInvalidFieldSource[source.OrderedMap[bool]](v.ToAny(), k, v), true
		}
		raw, _ := e.Value.ScalarValue()
		b, _ := raw.(bool)
		om = append(om, source.Entry[bool]{Key: source.NewKeySource(e.Key.Value, e.Key), Value: b})
	}
	return source.NewFieldSource(om, k, v), true
}

// stringListMapField builds an insertion-ordered map of string lists from a
// mapping-valued field (e.g. Schema.dependentRequired).
func stringListMapField(n *node.Node, key string) (source.FieldSource[source.OrderedMap[[]string]], bool) {
	k, v, ok := lookup(n, key)
	if !ok {
		return source.FieldSource[source.OrderedMap[[]string]]{}, false
	}
	if !v.IsMapping() {
		return source.NewInvalidFieldSource[source.OrderedMap[[]string]](v.ToAny(), k, v), true
	}
	om := make(source.OrderedMap[[]string], 0, len(v.Entries))
	for _, e := range v.Entries {
		if e.Key == nil || !e.Key.IsScalar() || !e.Value.IsSequence() {
			return source.NewInvalidFieldSource[source.OrderedMap[[]string]](v.ToAny(), k, v), true
		}
		var list []string
		for _, item := range e.Value.Items {
			if !item.IsScalar() || item.Tag != "!!str" {
				return source.NewInvalidFieldSource[source.OrderedMap[[]string]](v.ToAny(), k, v), true
			}
			list = append(list, item.Value)
		}
		om = append(om, source.Entry[[]string]{Key: source.NewKeySource(e.Key.Value, e.Key), Value: list})
	}
	return source.NewFieldSource(om, k, v), true
}

// anyMapField builds an insertion-ordered map of arbitrary values from a
// mapping-valued field (e.g. Link.parameters, whose values are expressions
// of unconstrained shape).
func anyMapField(n *node.Node, key string) (source.FieldSource[source.OrderedMap[any]], bool) {
	k, v, ok := lookup(n, key)
	if !ok {
		return source.FieldSource[source.OrderedMap[any]]{}, false
	}
	if !v.IsMapping() {
		return source.NewInvalidFieldSource[source.OrderedMap[any]](v.ToAny(), k, v), true
	}
	om := make(source.OrderedMap[any], 0, len(v.Entries))
	for _, e := range v.Entries {
		if e.Key == nil || !e.Key.IsScalar() {
			continue
		}
		om = append(om, source.Entry[any]{Key: source.NewKeySource(e.Key.Value, e.Key), Value: e.Value.ToAny()})
	}
	return source.NewFieldSource(om, k, v), true
}

// buildOrReference discriminates a $ref-bearing mapping from an inline T:
// if v is a Mapping carrying a $ref key, buildRef constructs R; otherwise
// buildT constructs T.
func buildOrReference[R any, T any](v *node.Node, buildRef func(*node.Node) *R, buildT func(*node.Node) *T) *source.Referenceable[R, T] {
	if _, _, ok := lookup(v, "$ref"); ok {
		return &source.Referenceable[R, T]{Ref: buildRef(v)}
	}
	return &source.Referenceable[R, T]{Value: buildT(v)}
}

// securityRequirementEntries builds an ordered scheme-name -> scopes map from a
// Security entry's mapping node.
func securityRequirementEntries(n *node.Node) source.OrderedMap[[]string] {
	if !n.IsMapping() {
		return nil
	}
	om := make(source.OrderedMap[[]string], 0, len(n.Entries))
	for _, e := range n.Entries {
		if e.Key == nil || !e.Key.IsScalar() {
			continue
		}
		var scopes []string
		if e.Value.IsSequence() {
			for _, item := range e.Value.Items {
				if item.IsScalar() && item.Tag == "!!str" {
					scopes = append(scopes, item.Value)
				}
			}
		}
		om = append(om, source.Entry[[]string]{Key: source.NewKeySource(e.Key.Value, e.Key), Value: scopes})
	}
	return om
}
