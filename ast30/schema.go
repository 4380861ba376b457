package ast30

import (
	"github.com/oasgraph/oasast/node"
	"github.com/oasgraph/oasast/source"
)

// SchemaRef is a Schema-or-Reference slot, used wherever 3.0 allows either
// an inline schema or a $ref (Schema and Reference are disjoint in 3.0).
type SchemaRef = source.Referenceable[Reference, Schema]

// SchemaOrBool represents a field whose value is either a Schema/Reference
// or a boolean (e.g. additionalItems, additionalProperties).
type SchemaOrBool struct {
	Schema *SchemaRef
	Bool   *bool
}

// Schema is a JSON Schema object as constrained by OpenAPI 3.0 (JSON Schema
// Draft 4 subset, plus OAS-specific keywords like nullable and
// discriminator). $ref never appears on Schema itself in 3.0; a $ref
// position builds a Reference instead.
type Schema struct {
	RootNode *node.Node
	Invalid  *source.Invalid

	Title       source.FieldSource[string]
	Description source.FieldSource[string]
	Default     source.FieldSource[any]
	Example     source.FieldSource[any]

	Type   source.FieldSource[string]
	Enum   source.FieldSource[[]any]
	Format source.FieldSource[string]

	MultipleOf       source.FieldSource[float64]
	Maximum          source.FieldSource[float64]
	ExclusiveMaximum source.FieldSource[bool]
	Minimum          source.FieldSource[float64]
	ExclusiveMinimum source.FieldSource[bool]

	MaxLength source.FieldSource[int]
	MinLength source.FieldSource[int]
	Pattern   source.FieldSource[string]

	Items                source.FieldSource[*SchemaRef]
	MaxItems             source.FieldSource[int]
	MinItems             source.FieldSource[int]
	UniqueItems          source.FieldSource[bool]
	AdditionalItems      source.FieldSource[*SchemaOrBool]

	Properties           source.FieldSource[source.OrderedMap[*SchemaRef]]
	AdditionalProperties source.FieldSource[*SchemaOrBool]
	Required             source.FieldSource[[]string]
	MaxProperties        source.FieldSource[int]
	MinProperties        source.FieldSource[int]

	AllOf source.FieldSource[[]*SchemaRef]
	OneOf source.FieldSource[[]*SchemaRef]
	AnyOf source.FieldSource[[]*SchemaRef]
	Not   source.FieldSource[*SchemaRef]

	Nullable      source.FieldSource[bool]
	Discriminator source.FieldSource[*Discriminator]
	ReadOnly      source.FieldSource[bool]
	WriteOnly     source.FieldSource[bool]
	XML           source.FieldSource[*XML]
	ExternalDocs  source.FieldSource[*ExternalDocumentation]
	Deprecated    source.FieldSource[bool]

	Extensions source.Extensions
}
