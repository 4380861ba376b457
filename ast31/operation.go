package ast31

import (
	"github.com/oasgraph/oasast/node"
	"github.com/oasgraph/oasast/source"
)

// Referenceable slot aliases. Schema is excluded: in 3.1 a Schema carries
// $ref directly, so schema positions are typed *Schema, not a Reference
// wrapper.
type (
	ParameterRef   = source.Referenceable[Reference, Parameter]
	RequestBodyRef = source.Referenceable[Reference, RequestBody]
	ResponseRef    = source.Referenceable[Reference, Response]
	HeaderRef      = source.Referenceable[Reference, Header]
	ExampleRef     = source.Referenceable[Reference, Example]
	LinkRef        = source.Referenceable[Reference, Link]
	CallbackRef    = source.Referenceable[Reference, Callback]
)

// Example illustrates a single value for a schema, parameter, or media type.
type Example struct {
	RootNode *node.Node
	Invalid  *source.Invalid

	Summary       source.FieldSource[string]
	Description   source.FieldSource[string]
	Value         source.FieldSource[any]
	ExternalValue source.FieldSource[string]

	Extensions source.Extensions
}

// Encoding describes a single encoding definition within a MediaType.
type Encoding struct {
	RootNode *node.Node
	Invalid  *source.Invalid

	ContentType   source.FieldSource[string]
	Headers       source.FieldSource[source.OrderedMap[*HeaderRef]]
	Style         source.FieldSource[string]
	Explode       source.FieldSource[bool]
	AllowReserved source.FieldSource[bool]

	Extensions source.Extensions
}

// MediaType provides schema and examples for a media type identified by
// its key in a content map.
type MediaType struct {
	RootNode *node.Node
	Invalid  *source.Invalid

	Schema   source.FieldSource[*Schema]
	Example  source.FieldSource[any]
	Examples source.FieldSource[source.OrderedMap[*ExampleRef]]
	Encoding source.FieldSource[source.OrderedMap[*Encoding]]

	Extensions source.Extensions
}

// Header follows Parameter's structure but omits name and in.
type Header struct {
	RootNode *node.Node
	Invalid  *source.Invalid

	Description     source.FieldSource[string]
	Required        source.FieldSource[bool]
	Deprecated      source.FieldSource[bool]
	AllowEmptyValue source.FieldSource[bool]
	Style           source.FieldSource[string]
	Explode         source.FieldSource[bool]
	AllowReserved   source.FieldSource[bool]
	Schema          source.FieldSource[*Schema]
	Example         source.FieldSource[any]
	Examples        source.FieldSource[source.OrderedMap[*ExampleRef]]
	Content         source.FieldSource[source.OrderedMap[*MediaType]]

	Extensions source.Extensions
}

// Parameter describes a single operation parameter.
type Parameter struct {
	RootNode *node.Node
	Invalid  *source.Invalid

	Name            source.FieldSource[string]
	In              source.FieldSource[string]
	Description     source.FieldSource[string]
	Required        source.FieldSource[bool]
	Deprecated      source.FieldSource[bool]
	AllowEmptyValue source.FieldSource[bool]
	Style           source.FieldSource[string]
	Explode         source.FieldSource[bool]
	AllowReserved   source.FieldSource[bool]
	Schema          source.FieldSource[*Schema]
	Example         source.FieldSource[any]
	Examples        source.FieldSource[source.OrderedMap[*ExampleRef]]
	Content         source.FieldSource[source.OrderedMap[*MediaType]]

	Extensions source.Extensions
}

// RequestBody describes a single request body.
type RequestBody struct {
	RootNode *node.Node
	Invalid  *source.Invalid

	Description source.FieldSource[string]
	Content     source.FieldSource[source.OrderedMap[*MediaType]]
	Required    source.FieldSource[bool]

	Extensions source.Extensions
}

// Link represents a possible design-time link for a response.
type Link struct {
	RootNode *node.Node
	Invalid  *source.Invalid

	OperationRef source.FieldSource[string]
	OperationID  source.FieldSource[string]
	Parameters   source.FieldSource[source.OrderedMap[any]]
	RequestBody  source.FieldSource[any]
	Description  source.FieldSource[string]
	Server       source.FieldSource[*Server]

	Extensions source.Extensions
}

// Response describes a single response from an API operation.
type Response struct {
	RootNode *node.Node
	Invalid  *source.Invalid

	Description source.FieldSource[string]
	Headers     source.FieldSource[source.OrderedMap[*HeaderRef]]
	Content     source.FieldSource[source.OrderedMap[*MediaType]]
	Links       source.FieldSource[source.OrderedMap[*LinkRef]]

	Extensions source.Extensions
}

// Responses is a container for the expected responses of an operation. Only
// keys matching ^[1-5][0-9]{2}$ or ^[1-5]XX$ survive into StatusCodes.
type Responses struct {
	RootNode *node.Node
	Invalid  *source.Invalid

	Default     source.FieldSource[*ResponseRef]
	StatusCodes source.OrderedMap[*ResponseRef]

	Extensions source.Extensions
}

// Callback is an ordered map from a runtime expression to a PathItem.
type Callback struct {
	RootNode *node.Node
	Invalid  *source.Invalid

	Expressions source.OrderedMap[*PathItem]

	Extensions source.Extensions
}

// Operation describes a single API operation on a path.
type Operation struct {
	RootNode *node.Node
	Invalid  *source.Invalid

	Tags         source.FieldSource[[]string]
	Summary      source.FieldSource[string]
	Description  source.FieldSource[string]
	ExternalDocs source.FieldSource[*ExternalDocumentation]
	OperationID  source.FieldSource[string]
	Parameters   source.FieldSource[[]*ParameterRef]
	RequestBody  source.FieldSource[*RequestBodyRef]
	Responses    source.FieldSource[*Responses]
	Callbacks    source.FieldSource[source.OrderedMap[*CallbackRef]]
	Deprecated   source.FieldSource[bool]
	Security     source.FieldSource[[]SecurityRequirement]
	Servers      source.FieldSource[[]*Server]

	Extensions source.Extensions
}

// PathItem describes the operations available on a single path, plus
// path-level parameters and servers shared by all of them.
type PathItem struct {
	RootNode *node.Node
	Invalid  *source.Invalid

	Ref         source.FieldSource[string]
	Summary     source.FieldSource[string]
	Description source.FieldSource[string]

	Get     source.FieldSource[*Operation]
	Put     source.FieldSource[*Operation]
	Post    source.FieldSource[*Operation]
	Delete  source.FieldSource[*Operation]
	Options source.FieldSource[*Operation]
	Head    source.FieldSource[*Operation]
	Patch   source.FieldSource[*Operation]
	Trace   source.FieldSource[*Operation]

	Servers    source.FieldSource[[]*Server]
	Parameters source.FieldSource[[]*ParameterRef]

	Extensions source.Extensions
}
