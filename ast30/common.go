package ast30

import (
	"github.com/oasgraph/oasast/node"
	"github.com/oasgraph/oasast/source"
)

// Reference represents a JSON Reference ($ref) object. In 3.0, Reference and
// Schema are disjoint: a $ref at a schema position always builds a
// Reference, never a Schema.
type Reference struct {
	RootNode *node.Node
	Invalid  *source.Invalid

	Ref source.FieldSource[string]

	Extensions source.Extensions
}

// ExternalDocumentation describes an external documentation link.
type ExternalDocumentation struct {
	RootNode *node.Node
	Invalid  *source.Invalid

	URL         source.FieldSource[string]
	Description source.FieldSource[string]

	Extensions source.Extensions
}

// Discriminator aids polymorphism discrimination for oneOf/anyOf schemas.
type Discriminator struct {
	RootNode *node.Node
	Invalid  *source.Invalid

	PropertyName source.FieldSource[string]
	Mapping      source.FieldSource[source.OrderedMap[string]]

	Extensions source.Extensions
}

// XML describes additional metadata for XML representation of a schema.
type XML struct {
	RootNode *node.Node
	Invalid  *source.Invalid

	Name      source.FieldSource[string]
	Namespace source.FieldSource[string]
	Prefix    source.FieldSource[string]
	Attribute source.FieldSource[bool]
	Wrapped   source.FieldSource[bool]

	Extensions source.Extensions
}

// Contact holds contact information for the exposed API.
type Contact struct {
	RootNode *node.Node
	Invalid  *source.Invalid

	Name  source.FieldSource[string]
	URL   source.FieldSource[string]
	Email source.FieldSource[string]

	Extensions source.Extensions
}

// License describes the license governing the API.
type License struct {
	RootNode *node.Node
	Invalid  *source.Invalid

	Name source.FieldSource[string]
	URL  source.FieldSource[string]

	Extensions source.Extensions
}

// ServerVariable describes a substitution value for a Server URL template.
type ServerVariable struct {
	RootNode *node.Node
	Invalid  *source.Invalid

	Enum        source.FieldSource[[]string]
	Default     source.FieldSource[string]
	Description source.FieldSource[string]

	Extensions source.Extensions
}

// Server represents a single server hosting the API.
type Server struct {
	RootNode *node.Node
	Invalid  *source.Invalid

	URL         source.FieldSource[string]
	Description source.FieldSource[string]
	Variables   source.FieldSource[source.OrderedMap[*ServerVariable]]

	Extensions source.Extensions
}

// Tag adds metadata to a single tag used by Operation.
type Tag struct {
	RootNode *node.Node
	Invalid  *source.Invalid

	Name         source.FieldSource[string]
	Description  source.FieldSource[string]
	ExternalDocs source.FieldSource[*ExternalDocumentation]

	Extensions source.Extensions
}

// SecurityRequirement is an ordered map from a declared security scheme name
// to a list of scope strings (empty for non-oauth2/openIdConnect schemes).
type SecurityRequirement source.OrderedMap[[]string]
