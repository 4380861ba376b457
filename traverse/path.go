package traverse

import (
	"strconv"
	"strings"
)

// Format selects the rendering rule used by NodePath.FormatPath.
type Format int

const (
	// JSONPointer renders RFC 6901: "/seg/~1seg/0".
	JSONPointer Format = iota
	// NormalizedJSONPath renders RFC 9535 normalized form: "$['seg']['seg'][0]".
	NormalizedJSONPath
)

// PathPart is one token of a traversal position: either a map/field key or a
// list index. IsIndex distinguishes the two so formatters can render
// "[0]"/"/0" differently from a quoted key.
type PathPart struct {
	Key     string
	Index   int
	IsIndex bool
}

// NodePath is the traversal context passed to every visitor hook. It is
// immutable once constructed; CreateChild derives a new one rather than
// mutating the receiver.
type NodePath struct {
	// Node is the AST object currently being visited, opaque to the engine
	// beyond the Kind tag used for dispatch.
	Node any
	// Kind is the dispatch tag for Node (e.g. "Operation", "Schema").
	Kind string
	// Parent is the immediate parent AST object, or nil at the root.
	Parent any
	// ParentField is the YAML-cased field name by which Node is reached
	// (e.g. "externalDocs"), empty when Node is reached transparently
	// through a pure-map wrapper type (Paths, Callback) that contributes
	// no field name of its own.
	ParentField string
	// ParentKey is the map key or list index by which Node is reached
	// within ParentField, nil when ParentField names a scalar-object field.
	ParentKey any
	// Ancestors holds every AST object from the root to the immediate
	// parent, in descending order; empty at the root.
	Ancestors []any

	parts []PathPart
	root  any
}

// newRootPath constructs the NodePath for the traversal root.
func newRootPath(root any, kind string) *NodePath {
	return &NodePath{Node: root, Kind: kind, root: root}
}

// CreateChild builds the NodePath one level below p. parentField is empty
// when child is reached transparently (see ParentField); parentKey is nil,
// a string, or an int.
func (p *NodePath) CreateChild(child any, kind, parentField string, parentKey any) *NodePath {
	ancestors := make([]any, 0, len(p.Ancestors)+1)
	ancestors = append(ancestors, p.Ancestors...)
	ancestors = append(ancestors, p.Node)

	parts := make([]PathPart, len(p.parts), len(p.parts)+2)
	copy(parts, p.parts)
	if parentField != "" {
		parts = append(parts, PathPart{Key: parentField})
	}
	if parentKey != nil {
		switch k := parentKey.(type) {
		case int:
			parts = append(parts, PathPart{Index: k, IsIndex: true})
		case string:
			parts = append(parts, PathPart{Key: k})
		}
	}

	return &NodePath{
		Node:        child,
		Kind:        kind,
		Parent:      p.Node,
		ParentField: parentField,
		ParentKey:   parentKey,
		Ancestors:   ancestors,
		parts:       parts,
		root:        p.root,
	}
}

// GetRoot returns the traversal root, or p.Node itself when p is the root.
func (p *NodePath) GetRoot() any { return p.root }

// ToParts returns the path as a flat list of key/index tokens, consistent
// with FormatPath.
func (p *NodePath) ToParts() []PathPart {
	out := make([]PathPart, len(p.parts))
	copy(out, p.parts)
	return out
}

// FormatPath renders the current position in the requested format.
func (p *NodePath) FormatPath(format Format) string {
	switch format {
	case NormalizedJSONPath:
		return formatJSONPath(p.parts)
	default:
		return formatJSONPointer(p.parts)
	}
}

func formatJSONPointer(parts []PathPart) string {
	var b strings.Builder
	for _, part := range parts {
		b.WriteByte('/')
		if part.IsIndex {
			b.WriteString(strconv.Itoa(part.Index))
			continue
		}
		b.WriteString(escapeJSONPointerToken(part.Key))
	}
	return b.String()
}

func escapeJSONPointerToken(s string) string {
	if !strings.ContainsAny(s, "~/") {
		return s
	}
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '~':
			b.WriteString("~0")
		case '/':
			b.WriteString("~1")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func formatJSONPath(parts []PathPart) string {
	var b strings.Builder
	b.WriteByte('$')
	for _, part := range parts {
		if part.IsIndex {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(part.Index))
			b.WriteByte(']')
			continue
		}
		b.WriteString("['")
		b.WriteString(escapeJSONPathToken(part.Key))
		b.WriteString("']")
	}
	return b.String()
}

func escapeJSONPathToken(s string) string {
	if !strings.ContainsRune(s, '\'') {
		return s
	}
	return strings.ReplaceAll(s, "'", "\\'")
}

