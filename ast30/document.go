package ast30

import (
	"github.com/oasgraph/oasast/node"
	"github.com/oasgraph/oasast/source"
)

// Referenceable slot aliases for component-registry entries.
type (
	SecuritySchemeRef = source.Referenceable[Reference, SecurityScheme]
)

// Info provides metadata about the API.
type Info struct {
	RootNode *node.Node
	Invalid  *source.Invalid

	Title          source.FieldSource[string]
	Description    source.FieldSource[string]
	TermsOfService source.FieldSource[string]
	Contact        source.FieldSource[*Contact]
	License        source.FieldSource[*License]
	Version        source.FieldSource[string]

	Extensions source.Extensions
}

// Components holds a set of reusable objects referenced by $ref elsewhere
// in the document.
type Components struct {
	RootNode *node.Node
	Invalid  *source.Invalid

	Schemas         source.FieldSource[source.OrderedMap[*SchemaRef]]
	Responses       source.FieldSource[source.OrderedMap[*ResponseRef]]
	Parameters      source.FieldSource[source.OrderedMap[*ParameterRef]]
	Examples        source.FieldSource[source.OrderedMap[*ExampleRef]]
	RequestBodies   source.FieldSource[source.OrderedMap[*RequestBodyRef]]
	Headers         source.FieldSource[source.OrderedMap[*HeaderRef]]
	SecuritySchemes source.FieldSource[source.OrderedMap[*SecuritySchemeRef]]
	Links           source.FieldSource[source.OrderedMap[*LinkRef]]
	Callbacks       source.FieldSource[source.OrderedMap[*CallbackRef]]

	Extensions source.Extensions
}

// Paths holds the relative paths to the individual endpoints and their
// operations, keyed by the path template (e.g. "/pets/{petId}").
type Paths struct {
	RootNode *node.Node
	Invalid  *source.Invalid

	Items source.OrderedMap[*PathItem]

	Extensions source.Extensions
}

// OpenAPI is the root object of a 3.0.x document.
type OpenAPI struct {
	RootNode *node.Node
	Invalid  *source.Invalid

	OpenAPI      source.FieldSource[string]
	Info         source.FieldSource[*Info]
	Servers      source.FieldSource[[]*Server]
	Paths        source.FieldSource[*Paths]
	Components   source.FieldSource[*Components]
	Security     source.FieldSource[[]SecurityRequirement]
	Tags         source.FieldSource[[]*Tag]
	ExternalDocs source.FieldSource[*ExternalDocumentation]

	Extensions source.Extensions
}
