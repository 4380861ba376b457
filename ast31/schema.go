package ast31

import (
	"github.com/oasgraph/oasast/node"
	"github.com/oasgraph/oasast/source"
)

// SchemaOrBool represents a field whose value is either a Schema or a
// boolean (e.g. additionalProperties, unevaluatedItems).
type SchemaOrBool struct {
	Schema *Schema
	Bool   *bool
}

// Schema is a JSON Schema 2020-12 object as used by OpenAPI 3.1. $ref (and
// the sibling $dynamicRef) live directly on Schema rather than on a
// disjoint Reference type, matching 3.1's "schema absorbs $ref" rule: a
// schema carrying $ref may still carry sibling keywords, all of which the
// builder preserves.
type Schema struct {
	RootNode *node.Node
	Invalid  *source.Invalid

	Ref    source.FieldSource[string]
	Schema source.FieldSource[string] // $schema
	ID     source.FieldSource[string] // $id

	Title       source.FieldSource[string]
	Description source.FieldSource[string]
	Default     source.FieldSource[any]
	Examples    source.FieldSource[[]any]

	Type  source.FieldSource[any] // string or []string
	Enum  source.FieldSource[[]any]
	Const source.FieldSource[any]

	MultipleOf       source.FieldSource[float64]
	Maximum          source.FieldSource[float64]
	ExclusiveMaximum source.FieldSource[float64]
	Minimum          source.FieldSource[float64]
	ExclusiveMinimum source.FieldSource[float64]

	MaxLength source.FieldSource[int]
	MinLength source.FieldSource[int]
	Pattern   source.FieldSource[string]

	Items           source.FieldSource[*SchemaOrBool]
	PrefixItems     source.FieldSource[[]*Schema]
	Contains        source.FieldSource[*Schema]
	MinContains     source.FieldSource[int]
	MaxContains     source.FieldSource[int]
	MaxItems        source.FieldSource[int]
	MinItems        source.FieldSource[int]
	UniqueItems     source.FieldSource[bool]
	UnevaluatedItems source.FieldSource[*SchemaOrBool]

	Properties           source.FieldSource[source.OrderedMap[*Schema]]
	PatternProperties    source.FieldSource[source.OrderedMap[*Schema]]
	AdditionalProperties source.FieldSource[*SchemaOrBool]
	UnevaluatedProperties source.FieldSource[*SchemaOrBool]
	Required             source.FieldSource[[]string]
	PropertyNames        source.FieldSource[*Schema]
	MaxProperties        source.FieldSource[int]
	MinProperties        source.FieldSource[int]
	DependentRequired    source.FieldSource[source.OrderedMap[[]string]]
	DependentSchemas     source.FieldSource[source.OrderedMap[*Schema]]

	If   source.FieldSource[*Schema]
	Then source.FieldSource[*Schema]
	Else source.FieldSource[*Schema]

	AllOf source.FieldSource[[]*Schema]
	OneOf source.FieldSource[[]*Schema]
	AnyOf source.FieldSource[[]*Schema]
	Not   source.FieldSource[*Schema]

	Discriminator source.FieldSource[*Discriminator]
	ReadOnly      source.FieldSource[bool]
	WriteOnly     source.FieldSource[bool]
	XML           source.FieldSource[*XML]
	ExternalDocs  source.FieldSource[*ExternalDocumentation]
	Example       source.FieldSource[any] // deprecated in 3.1, still preserved
	Deprecated    source.FieldSource[bool]
	Format        source.FieldSource[string]

	Anchor        source.FieldSource[string] // $anchor
	DynamicAnchor source.FieldSource[string] // $dynamicAnchor
	DynamicRef    source.FieldSource[string] // $dynamicRef
	Defs          source.FieldSource[source.OrderedMap[*Schema]] // $defs
	Vocabulary    source.FieldSource[source.OrderedMap[bool]]    // $vocabulary
	Comment       source.FieldSource[string]                     // $comment

	ContentMediaType source.FieldSource[string]
	ContentEncoding  source.FieldSource[string]
	ContentSchema    source.FieldSource[*Schema]

	Extensions source.Extensions
}
