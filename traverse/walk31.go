package traverse

import (
	"github.com/oasgraph/oasast/ast31"
)

// Walk31 traverses doc with v, starting at the document root.
func Walk31(doc *ast31.OpenAPI, v *Visitor) error {
	if doc == nil {
		return nil
	}
	path := newRootPath(doc, "OpenAPI")
	_, err := walk31OpenAPI(path, doc, v)
	return err
}

func walk31OpenAPI(path *NodePath, n *ast31.OpenAPI, v *Visitor) (bool, error) {
	return dispatch(path, "OpenAPI", v, func() (bool, error) {
		if stopped, err := visitOptional(path, v, "info", "Info", n.Info.Value, walk31Info); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitList(path, v, "servers", "Server", n.Servers.Value, walk31Server); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitOptional(path, v, "paths", "Paths", n.Paths.Value, walk31Paths); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitOrderedMap(path, v, "webhooks", "PathItem", n.Webhooks.Value, walk31PathItem); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitOptional(path, v, "components", "Components", n.Components.Value, walk31Components); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitList(path, v, "security", "SecurityRequirement", n.Security.Value, walk31SecurityRequirement); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitList(path, v, "tags", "Tag", n.Tags.Value, walk31Tag); stopped || err != nil {
			return stopped, err
		}
		return visitOptional(path, v, "externalDocs", "ExternalDocumentation", n.ExternalDocs.Value, walk31ExternalDocs)
	})
}

func walk31Info(path *NodePath, n *ast31.Info, v *Visitor) (bool, error) {
	return dispatch(path, "Info", v, func() (bool, error) {
		if stopped, err := visitOptional(path, v, "contact", "Contact", n.Contact.Value, walk31Contact); stopped || err != nil {
			return stopped, err
		}
		return visitOptional(path, v, "license", "License", n.License.Value, walk31License)
	})
}

func walk31Contact(path *NodePath, n *ast31.Contact, v *Visitor) (bool, error) {
	return dispatch(path, "Contact", v, nil)
}

func walk31License(path *NodePath, n *ast31.License, v *Visitor) (bool, error) {
	return dispatch(path, "License", v, nil)
}

func walk31Server(path *NodePath, n *ast31.Server, v *Visitor) (bool, error) {
	return dispatch(path, "Server", v, func() (bool, error) {
		return visitOrderedMap(path, v, "variables", "ServerVariable", n.Variables.Value, walk31ServerVariable)
	})
}

func walk31ServerVariable(path *NodePath, n *ast31.ServerVariable, v *Visitor) (bool, error) {
	return dispatch(path, "ServerVariable", v, nil)
}

func walk31Tag(path *NodePath, n *ast31.Tag, v *Visitor) (bool, error) {
	return dispatch(path, "Tag", v, func() (bool, error) {
		return visitOptional(path, v, "externalDocs", "ExternalDocumentation", n.ExternalDocs.Value, walk31ExternalDocs)
	})
}

func walk31ExternalDocs(path *NodePath, n *ast31.ExternalDocumentation, v *Visitor) (bool, error) {
	return dispatch(path, "ExternalDocumentation", v, nil)
}

func walk31Discriminator(path *NodePath, n *ast31.Discriminator, v *Visitor) (bool, error) {
	return dispatch(path, "Discriminator", v, nil)
}

func walk31XML(path *NodePath, n *ast31.XML, v *Visitor) (bool, error) {
	return dispatch(path, "XML", v, nil)
}

func walk31Reference(path *NodePath, n *ast31.Reference, v *Visitor) (bool, error) {
	return dispatch(path, "Reference", v, nil)
}

func walk31SecurityRequirement(path *NodePath, n ast31.SecurityRequirement, v *Visitor) (bool, error) {
	return dispatch(path, "SecurityRequirement", v, nil)
}

func walk31Components(path *NodePath, n *ast31.Components, v *Visitor) (bool, error) {
	return dispatch(path, "Components", v, func() (bool, error) {
		if stopped, err := visitOrderedMap(path, v, "schemas", "Schema", n.Schemas.Value, walk31Schema); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitRefMap(path, v, "responses", "Reference", "Response", n.Responses.Value, walk31Reference, walk31Response); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitRefMap(path, v, "parameters", "Reference", "Parameter", n.Parameters.Value, walk31Reference, walk31Parameter); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitRefMap(path, v, "examples", "Reference", "Example", n.Examples.Value, walk31Reference, walk31Example); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitRefMap(path, v, "requestBodies", "Reference", "RequestBody", n.RequestBodies.Value, walk31Reference, walk31RequestBody); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitRefMap(path, v, "headers", "Reference", "Header", n.Headers.Value, walk31Reference, walk31Header); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitRefMap(path, v, "securitySchemes", "Reference", "SecurityScheme", n.SecuritySchemes.Value, walk31Reference, walk31SecurityScheme); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitRefMap(path, v, "links", "Reference", "Link", n.Links.Value, walk31Reference, walk31Link); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitRefMap(path, v, "callbacks", "Reference", "Callback", n.Callbacks.Value, walk31Reference, walk31Callback); stopped || err != nil {
			return stopped, err
		}
		return visitOrderedMap(path, v, "pathItems", "PathItem", n.PathItems.Value, walk31PathItem)
	})
}

// walk31Paths dispatches Paths as a transparent wrapper, matching 3.0.
func walk31Paths(path *NodePath, n *ast31.Paths, v *Visitor) (bool, error) {
	return dispatch(path, "Paths", v, func() (bool, error) {
		return visitTransparentMap(path, v, "PathItem", n.Items, walk31PathItem)
	})
}

func walk31PathItem(path *NodePath, n *ast31.PathItem, v *Visitor) (bool, error) {
	return dispatch(path, "PathItem", v, func() (bool, error) {
		ops := []struct {
			field string
			op    *ast31.Operation
		}{
			{"get", n.Get.Value}, {"put", n.Put.Value}, {"post", n.Post.Value},
			{"delete", n.Delete.Value}, {"options", n.Options.Value}, {"head", n.Head.Value},
			{"patch", n.Patch.Value}, {"trace", n.Trace.Value},
		}
		for _, o := range ops {
			if stopped, err := visitOptional(path, v, o.field, "Operation", o.op, walk31Operation); stopped || err != nil {
				return stopped, err
			}
		}
		if stopped, err := visitList(path, v, "servers", "Server", n.Servers.Value, walk31Server); stopped || err != nil {
			return stopped, err
		}
		return visitRefList(path, v, "parameters", "Reference", "Parameter", n.Parameters.Value, walk31Reference, walk31Parameter)
	})
}

func walk31Operation(path *NodePath, n *ast31.Operation, v *Visitor) (bool, error) {
	return dispatch(path, "Operation", v, func() (bool, error) {
		if stopped, err := visitOptional(path, v, "externalDocs", "ExternalDocumentation", n.ExternalDocs.Value, walk31ExternalDocs); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitRefList(path, v, "parameters", "Reference", "Parameter", n.Parameters.Value, walk31Reference, walk31Parameter); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitRef(path, v, "requestBody", "Reference", "RequestBody", n.RequestBody.Value, walk31Reference, walk31RequestBody); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitOptional(path, v, "responses", "Responses", n.Responses.Value, walk31Responses); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitRefMap(path, v, "callbacks", "Reference", "Callback", n.Callbacks.Value, walk31Reference, walk31Callback); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitList(path, v, "security", "SecurityRequirement", n.Security.Value, walk31SecurityRequirement); stopped || err != nil {
			return stopped, err
		}
		return visitList(path, v, "servers", "Server", n.Servers.Value, walk31Server)
	})
}

func walk31Parameter(path *NodePath, n *ast31.Parameter, v *Visitor) (bool, error) {
	return dispatch(path, "Parameter", v, func() (bool, error) {
		if stopped, err := visitOptional(path, v, "schema", "Schema", n.Schema.Value, walk31Schema); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitRefMap(path, v, "examples", "Reference", "Example", n.Examples.Value, walk31Reference, walk31Example); stopped || err != nil {
			return stopped, err
		}
		return visitOrderedMap(path, v, "content", "MediaType", n.Content.Value, walk31MediaType)
	})
}

func walk31Header(path *NodePath, n *ast31.Header, v *Visitor) (bool, error) {
	return dispatch(path, "Header", v, func() (bool, error) {
		if stopped, err := visitOptional(path, v, "schema", "Schema", n.Schema.Value, walk31Schema); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitRefMap(path, v, "examples", "Reference", "Example", n.Examples.Value, walk31Reference, walk31Example); stopped || err != nil {
			return stopped, err
		}
		return visitOrderedMap(path, v, "content", "MediaType", n.Content.Value, walk31MediaType)
	})
}

func walk31RequestBody(path *NodePath, n *ast31.RequestBody, v *Visitor) (bool, error) {
	return dispatch(path, "RequestBody", v, func() (bool, error) {
		return visitOrderedMap(path, v, "content", "MediaType", n.Content.Value, walk31MediaType)
	})
}

func walk31MediaType(path *NodePath, n *ast31.MediaType, v *Visitor) (bool, error) {
	return dispatch(path, "MediaType", v, func() (bool, error) {
		if stopped, err := visitOptional(path, v, "schema", "Schema", n.Schema.Value, walk31Schema); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitRefMap(path, v, "examples", "Reference", "Example", n.Examples.Value, walk31Reference, walk31Example); stopped || err != nil {
			return stopped, err
		}
		return visitOrderedMap(path, v, "encoding", "Encoding", n.Encoding.Value, walk31Encoding)
	})
}

func walk31Encoding(path *NodePath, n *ast31.Encoding, v *Visitor) (bool, error) {
	return dispatch(path, "Encoding", v, func() (bool, error) {
		return visitRefMap(path, v, "headers", "Reference", "Header", n.Headers.Value, walk31Reference, walk31Header)
	})
}

func walk31Example(path *NodePath, n *ast31.Example, v *Visitor) (bool, error) {
	return dispatch(path, "Example", v, nil)
}

func walk31Link(path *NodePath, n *ast31.Link, v *Visitor) (bool, error) {
	return dispatch(path, "Link", v, func() (bool, error) {
		return visitOptional(path, v, "server", "Server", n.Server.Value, walk31Server)
	})
}

func walk31Response(path *NodePath, n *ast31.Response, v *Visitor) (bool, error) {
	return dispatch(path, "Response", v, func() (bool, error) {
		if stopped, err := visitRefMap(path, v, "headers", "Reference", "Header", n.Headers.Value, walk31Reference, walk31Header); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitOrderedMap(path, v, "content", "MediaType", n.Content.Value, walk31MediaType); stopped || err != nil {
			return stopped, err
		}
		return visitRefMap(path, v, "links", "Reference", "Link", n.Links.Value, walk31Reference, walk31Link)
	})
}

func walk31Responses(path *NodePath, n *ast31.Responses, v *Visitor) (bool, error) {
	return dispatch(path, "Responses", v, func() (bool, error) {
		if stopped, err := visitRef(path, v, "default", "Reference", "Response", n.Default.Value, walk31Reference, walk31Response); stopped || err != nil {
			return stopped, err
		}
		return visitRefMap(path, v, "", "Reference", "Response", n.StatusCodes, walk31Reference, walk31Response)
	})
}

// walk31Callback dispatches Callback as a transparent wrapper, matching 3.0.
func walk31Callback(path *NodePath, n *ast31.Callback, v *Visitor) (bool, error) {
	return dispatch(path, "Callback", v, func() (bool, error) {
		return visitTransparentMap(path, v, "PathItem", n.Expressions, walk31PathItem)
	})
}

func walk31SchemaOrBool(path *NodePath, v *Visitor, fieldName string, s *ast31.SchemaOrBool) (bool, error) {
	if s == nil || s.Schema == nil {
		return false, nil
	}
	return visitOptional(path, v, fieldName, "Schema", s.Schema, walk31Schema)
}

func walk31Schema(path *NodePath, n *ast31.Schema, v *Visitor) (bool, error) {
	return dispatch(path, "Schema", v, func() (bool, error) {
		if stopped, err := walk31SchemaOrBool(path, v, "items", n.Items.Value); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitList(path, v, "prefixItems", "Schema", n.PrefixItems.Value, walk31Schema); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitOptional(path, v, "contains", "Schema", n.Contains.Value, walk31Schema); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := walk31SchemaOrBool(path, v, "unevaluatedItems", n.UnevaluatedItems.Value); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitOrderedMap(path, v, "properties", "Schema", n.Properties.Value, walk31Schema); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitOrderedMap(path, v, "patternProperties", "Schema", n.PatternProperties.Value, walk31Schema); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := walk31SchemaOrBool(path, v, "additionalProperties", n.AdditionalProperties.Value); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := walk31SchemaOrBool(path, v, "unevaluatedProperties", n.UnevaluatedProperties.Value); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitOptional(path, v, "propertyNames", "Schema", n.PropertyNames.Value, walk31Schema); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitOrderedMap(path, v, "dependentSchemas", "Schema", n.DependentSchemas.Value, walk31Schema); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitOptional(path, v, "if", "Schema", n.If.Value, walk31Schema); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitOptional(path, v, "then", "Schema", n.Then.Value, walk31Schema); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitOptional(path, v, "else", "Schema", n.Else.Value, walk31Schema); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitList(path, v, "allOf", "Schema", n.AllOf.Value, walk31Schema); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitList(path, v, "oneOf", "Schema", n.OneOf.Value, walk31Schema); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitList(path, v, "anyOf", "Schema", n.AnyOf.Value, walk31Schema); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitOptional(path, v, "not", "Schema", n.Not.Value, walk31Schema); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitOptional(path, v, "discriminator", "Discriminator", n.Discriminator.Value, walk31Discriminator); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitOptional(path, v, "xml", "XML", n.XML.Value, walk31XML); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitOptional(path, v, "externalDocs", "ExternalDocumentation", n.ExternalDocs.Value, walk31ExternalDocs); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitOrderedMap(path, v, "$defs", "Schema", n.Defs.Value, walk31Schema); stopped || err != nil {
			return stopped, err
		}
		return visitOptional(path, v, "contentSchema", "Schema", n.ContentSchema.Value, walk31Schema)
	})
}

func walk31SecurityScheme(path *NodePath, n *ast31.SecurityScheme, v *Visitor) (bool, error) {
	return dispatch(path, "SecurityScheme", v, func() (bool, error) {
		return visitOptional(path, v, "flows", "OAuthFlows", n.Flows.Value, walk31OAuthFlows)
	})
}

func walk31OAuthFlows(path *NodePath, n *ast31.OAuthFlows, v *Visitor) (bool, error) {
	return dispatch(path, "OAuthFlows", v, func() (bool, error) {
		if stopped, err := visitOptional(path, v, "implicit", "OAuthFlow", n.Implicit.Value, walk31OAuthFlow); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitOptional(path, v, "password", "OAuthFlow", n.Password.Value, walk31OAuthFlow); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitOptional(path, v, "clientCredentials", "OAuthFlow", n.ClientCredentials.Value, walk31OAuthFlow); stopped || err != nil {
			return stopped, err
		}
		return visitOptional(path, v, "authorizationCode", "OAuthFlow", n.AuthorizationCode.Value, walk31OAuthFlow)
	})
}

func walk31OAuthFlow(path *NodePath, n *ast31.OAuthFlow, v *Visitor) (bool, error) {
	return dispatch(path, "OAuthFlow", v, nil)
}
