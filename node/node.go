package node

import (
	"strconv"

	"go.yaml.in/yaml/v4"
)

// Kind identifies the shape of a Node.
type Kind int

const (
	// Unknown is the zero value; never produced by Parse.
	Unknown Kind = iota
	// Mapping is an ordered sequence of (key, value) entries.
	Mapping
	// Sequence is an ordered list of child nodes.
	Sequence
	// Scalar is a leaf value: string, int, float, bool, or null.
	Scalar
	// Alias is a reference to a previously anchored node; Parse resolves
	// these transparently, so callers rarely observe Kind == Alias directly.
	Alias
)

func (k Kind) String() string {
	switch k {
	case Mapping:
		return "mapping"
	case Sequence:
		return "sequence"
	case Scalar:
		return "scalar"
	case Alias:
		return "alias"
	default:
		return "unknown"
	}
}

// Entry is one key/value pair of a Mapping node, in source order.
type Entry struct {
	Key   *Node
	Value *Node
}

// Node is a single element of the generic parse tree. Every Node carries the
// Span at which it began in the source text. Anchored nodes keep the Span of
// their original definition even when reached through an alias.
type Node struct {
	Kind Kind
	Span Span

	// Tag is the YAML type tag, e.g. "!!str", "!!int", "!!float", "!!bool",
	// "!!null", "!!map", "!!seq". It is what lets the AST builder distinguish
	// the string "2.0" from the float 2.0.
	Tag string

	// Value holds the raw scalar text for Scalar nodes; empty otherwise.
	Value string

	// Entries holds the ordered key/value pairs for Mapping nodes.
	Entries []Entry

	// Items holds the ordered children for Sequence nodes.
	Items []*Node

	// Anchor is the anchor name this node was defined under, if any.
	Anchor string
}

// IsMapping reports whether n is a non-nil Mapping node.
func (n *Node) IsMapping() bool { return n != nil && n.Kind == Mapping }

// IsSequence reports whether n is a non-nil Sequence node.
func (n *Node) IsSequence() bool { return n != nil && n.Kind == Sequence }

// IsScalar reports whether n is a non-nil Scalar node.
func (n *Node) IsScalar() bool { return n != nil && n.Kind == Scalar }

// IsNull reports whether n is a Scalar node tagged "!!null" (or a nil Node,
// which callers conventionally treat as absent/null).
func (n *Node) IsNull() bool {
	return n == nil || (n.Kind == Scalar && n.Tag == tagNull)
}

const (
	tagStr   = "!!str"
	tagInt   = "!!int"
	tagFloat = "!!float"
	tagBool  = "!!bool"
	tagNull  = "!!null"
)

// Get returns the value Node bound to key in a Mapping node, and whether it
// was found. Get on a non-Mapping node always returns (nil, false).
func (n *Node) Get(key string) (*Node, bool) {
	if !n.IsMapping() {
		return nil, false
	}
	// Last entry wins: the generic YAML parse already folds duplicate keys,
	// but a defensive last-wins scan keeps this correct regardless.
	var found *Node
	ok := false
	for _, e := range n.Entries {
		if e.Key != nil && e.Key.Kind == Scalar && e.Key.Value == key {
			found = e.Value
			ok = true
		}
	}
	return found, ok
}

// ScalarValue decodes a Scalar node into its YAML-typed Go value: string,
// int64, float64, bool, or nil. Non-scalar nodes return (nil, false).
func (n *Node) ScalarValue() (any, bool) {
	if !n.IsScalar() {
		return nil, false
	}
	switch n.Tag {
	case tagInt:
		if i, err := strconv.ParseInt(n.Value, 0, 64); err == nil {
			return i, true
		}
		return n.Value, true
	case tagFloat:
		if f, err := strconv.ParseFloat(n.Value, 64); err == nil {
			return f, true
		}
		return n.Value, true
	case tagBool:
		if b, err := strconv.ParseBool(n.Value); err == nil {
			return b, true
		}
		return n.Value, true
	case tagNull:
		return nil, true
	default:
		return n.Value, true
	}
}

// ToAny recursively decodes n into plain Go values (map[string]any,
// []any, string, int64, float64, bool, nil), the same shape json.Unmarshal
// or yaml.Unmarshal would produce into an `any`. It is used to preserve raw
// data verbatim when a node's shape does not match what a typed field
// expects.
func (n *Node) ToAny() any {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case Mapping:
		m := make(map[string]any, len(n.Entries))
		for _, e := range n.Entries {
			if e.Key == nil {
				continue
			}
			m[e.Key.Value] = e.Value.ToAny()
		}
		return m
	case Sequence:
		items := make([]any, len(n.Items))
		for i, it := range n.Items {
			items[i] = it.ToAny()
		}
		return items
	case Scalar:
		v, _ := n.ScalarValue()
		return v
	default:
		return nil
	}
}

// wrap converts a *yaml.Node tree into the generic Node tree, copying each
// node's line and column into its Span and resolving aliases to the anchor's own
// wrapped Node (shared, not copied, so spans stay at the definition site).
func wrap(y *yaml.Node, seen map[*yaml.Node]*Node) *Node {
	if y == nil {
		return nil
	}
	if y.Kind == yaml.DocumentNode {
		if len(y.Content) == 0 {
			return &Node{Kind: Scalar, Tag: tagNull, Span: Span{Line: y.Line, Column: y.Column}}
		}
		return wrap(y.Content[0], seen)
	}
	if existing, ok := seen[y]; ok {
		return existing
	}

	n := &Node{
		Span:   Span{Line: y.Line, Column: y.Column},
		Tag:    y.ShortTag(),
		Anchor: y.Anchor,
	}
	seen[y] = n

	switch y.Kind {
	case yaml.MappingNode:
		n.Kind = Mapping
		n.Entries = make([]Entry, 0, len(y.Content)/2)
		for i := 0; i+1 < len(y.Content); i += 2 {
			n.Entries = append(n.Entries, Entry{
				Key:   wrap(y.Content[i], seen),
				Value: wrap(y.Content[i+1], seen),
			})
		}
	case yaml.SequenceNode:
		n.Kind = Sequence
		n.Items = make([]*Node, 0, len(y.Content))
		for _, c := range y.Content {
			n.Items = append(n.Items, wrap(c, seen))
		}
	case yaml.AliasNode:
		target := wrap(y.Alias, seen)
		if target != nil {
			return target
		}
		n.Kind = Scalar
		n.Tag = tagNull
	default: // yaml.ScalarNode
		n.Kind = Scalar
		n.Value = y.Value
	}
	return n
}
