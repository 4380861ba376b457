package traverse

import (
	"github.com/oasgraph/oasast/ast30"
)

// Walk30 traverses doc with v, starting at the document root.
func Walk30(doc *ast30.OpenAPI, v *Visitor) error {
	if doc == nil {
		return nil
	}
	path := newRootPath(doc, "OpenAPI")
	_, err := walk30OpenAPI(path, doc, v)
	return err
}

func walk30OpenAPI(path *NodePath, n *ast30.OpenAPI, v *Visitor) (bool, error) {
	return dispatch(path, "OpenAPI", v, func() (bool, error) {
		if stopped, err := visitOptional(path, v, "info", "Info", n.Info.Value, walk30Info); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitList(path, v, "servers", "Server", n.Servers.Value, walk30Server); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitOptional(path, v, "paths", "Paths", n.Paths.Value, walk30Paths); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitOptional(path, v, "components", "Components", n.Components.Value, walk30Components); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitList(path, v, "security", "SecurityRequirement", n.Security.Value, walk30SecurityRequirement); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitList(path, v, "tags", "Tag", n.Tags.Value, walk30Tag); stopped || err != nil {
			return stopped, err
		}
		return visitOptional(path, v, "externalDocs", "ExternalDocumentation", n.ExternalDocs.Value, walk30ExternalDocs)
	})
}

func walk30Info(path *NodePath, n *ast30.Info, v *Visitor) (bool, error) {
	return dispatch(path, "Info", v, func() (bool, error) {
		if stopped, err := visitOptional(path, v, "contact", "Contact", n.Contact.Value, walk30Contact); stopped || err != nil {
			return stopped, err
		}
		return visitOptional(path, v, "license", "License", n.License.Value, walk30License)
	})
}

func walk30Contact(path *NodePath, n *ast30.Contact, v *Visitor) (bool, error) {
	return dispatch(path, "Contact", v, nil)
}

func walk30License(path *NodePath, n *ast30.License, v *Visitor) (bool, error) {
	return dispatch(path, "License", v, nil)
}

func walk30Server(path *NodePath, n *ast30.Server, v *Visitor) (bool, error) {
	return dispatch(path, "Server", v, func() (bool, error) {
		return visitOrderedMap(path, v, "variables", "ServerVariable", n.Variables.Value, walk30ServerVariable)
	})
}

func walk30ServerVariable(path *NodePath, n *ast30.ServerVariable, v *Visitor) (bool, error) {
	return dispatch(path, "ServerVariable", v, nil)
}

func walk30Tag(path *NodePath, n *ast30.Tag, v *Visitor) (bool, error) {
	return dispatch(path, "Tag", v, func() (bool, error) {
		return visitOptional(path, v, "externalDocs", "ExternalDocumentation", n.ExternalDocs.Value, walk30ExternalDocs)
	})
}

func walk30ExternalDocs(path *NodePath, n *ast30.ExternalDocumentation, v *Visitor) (bool, error) {
	return dispatch(path, "ExternalDocumentation", v, nil)
}

func walk30Discriminator(path *NodePath, n *ast30.Discriminator, v *Visitor) (bool, error) {
	return dispatch(path, "Discriminator", v, nil)
}

func walk30XML(path *NodePath, n *ast30.XML, v *Visitor) (bool, error) {
	return dispatch(path, "XML", v, nil)
}

func walk30Reference(path *NodePath, n *ast30.Reference, v *Visitor) (bool, error) {
	return dispatch(path, "Reference", v, nil)
}

func walk30SecurityRequirement(path *NodePath, n ast30.SecurityRequirement, v *Visitor) (bool, error) {
	return dispatch(path, "SecurityRequirement", v, nil)
}

func walk30Components(path *NodePath, n *ast30.Components, v *Visitor) (bool, error) {
	return dispatch(path, "Components", v, func() (bool, error) {
		if stopped, err := visitRefMap(path, v, "schemas", "Reference", "Schema", n.Schemas.Value, walk30Reference, walk30Schema); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitRefMap(path, v, "responses", "Reference", "Response", n.Responses.Value, walk30Reference, walk30Response); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitRefMap(path, v, "parameters", "Reference", "Parameter", n.Parameters.Value, walk30Reference, walk30Parameter); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitRefMap(path, v, "examples", "Reference", "Example", n.Examples.Value, walk30Reference, walk30Example); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitRefMap(path, v, "requestBodies", "Reference", "RequestBody", n.RequestBodies.Value, walk30Reference, walk30RequestBody); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitRefMap(path, v, "headers", "Reference", "Header", n.Headers.Value, walk30Reference, walk30Header); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitRefMap(path, v, "securitySchemes", "Reference", "SecurityScheme", n.SecuritySchemes.Value, walk30Reference, walk30SecurityScheme); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitRefMap(path, v, "links", "Reference", "Link", n.Links.Value, walk30Reference, walk30Link); stopped || err != nil {
			return stopped, err
		}
		return visitRefMap(path, v, "callbacks", "Reference", "Callback", n.Callbacks.Value, walk30Reference, walk30Callback)
	})
}

// walk30Paths dispatches Paths as a transparent wrapper: Items' entries are
// visited directly, contributing no field-name token of their own.
func walk30Paths(path *NodePath, n *ast30.Paths, v *Visitor) (bool, error) {
	return dispatch(path, "Paths", v, func() (bool, error) {
		return visitTransparentMap(path, v, "PathItem", n.Items, walk30PathItem)
	})
}

func walk30PathItem(path *NodePath, n *ast30.PathItem, v *Visitor) (bool, error) {
	return dispatch(path, "PathItem", v, func() (bool, error) {
		ops := []struct {
			field string
			op    *ast30.Operation
		}{
			{"get", n.Get.Value}, {"put", n.Put.Value}, {"post", n.Post.Value},
			{"delete", n.Delete.Value}, {"options", n.Options.Value}, {"head", n.Head.Value},
			{"patch", n.Patch.Value}, {"trace", n.Trace.Value},
		}
		for _, o := range ops {
			if stopped, err := visitOptional(path, v, o.field, "Operation", o.op, walk30Operation); stopped || err != nil {
				return stopped, err
			}
		}
		if stopped, err := visitList(path, v, "servers", "Server", n.Servers.Value, walk30Server); stopped || err != nil {
			return stopped, err
		}
		return visitRefList(path, v, "parameters", "Reference", "Parameter", n.Parameters.Value, walk30Reference, walk30Parameter)
	})
}

func walk30Operation(path *NodePath, n *ast30.Operation, v *Visitor) (bool, error) {
	return dispatch(path, "Operation", v, func() (bool, error) {
		if stopped, err := visitOptional(path, v, "externalDocs", "ExternalDocumentation", n.ExternalDocs.Value, walk30ExternalDocs); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitRefList(path, v, "parameters", "Reference", "Parameter", n.Parameters.Value, walk30Reference, walk30Parameter); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitRef(path, v, "requestBody", "Reference", "RequestBody", n.RequestBody.Value, walk30Reference, walk30RequestBody); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitOptional(path, v, "responses", "Responses", n.Responses.Value, walk30Responses); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitRefMap(path, v, "callbacks", "Reference", "Callback", n.Callbacks.Value, walk30Reference, walk30Callback); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitList(path, v, "security", "SecurityRequirement", n.Security.Value, walk30SecurityRequirement); stopped || err != nil {
			return stopped, err
		}
		return visitList(path, v, "servers", "Server", n.Servers.Value, walk30Server)
	})
}

func walk30Parameter(path *NodePath, n *ast30.Parameter, v *Visitor) (bool, error) {
	return dispatch(path, "Parameter", v, func() (bool, error) {
		if stopped, err := visitRef(path, v, "schema", "Reference", "Schema", n.Schema.Value, walk30Reference, walk30Schema); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitRefMap(path, v, "examples", "Reference", "Example", n.Examples.Value, walk30Reference, walk30Example); stopped || err != nil {
			return stopped, err
		}
		return visitOrderedMap(path, v, "content", "MediaType", n.Content.Value, walk30MediaType)
	})
}

func walk30Header(path *NodePath, n *ast30.Header, v *Visitor) (bool, error) {
	return dispatch(path, "Header", v, func() (bool, error) {
		if stopped, err := visitRef(path, v, "schema", "Reference", "Schema", n.Schema.Value, walk30Reference, walk30Schema); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitRefMap(path, v, "examples", "Reference", "Example", n.Examples.Value, walk30Reference, walk30Example); stopped || err != nil {
			return stopped, err
		}
		return visitOrderedMap(path, v, "content", "MediaType", n.Content.Value, walk30MediaType)
	})
}

func walk30RequestBody(path *NodePath, n *ast30.RequestBody, v *Visitor) (bool, error) {
	return dispatch(path, "RequestBody", v, func() (bool, error) {
		return visitOrderedMap(path, v, "content", "MediaType", n.Content.Value, walk30MediaType)
	})
}

func walk30MediaType(path *NodePath, n *ast30.MediaType, v *Visitor) (bool, error) {
	return dispatch(path, "MediaType", v, func() (bool, error) {
		if stopped, err := visitRef(path, v, "schema", "Reference", "Schema", n.Schema.Value, walk30Reference, walk30Schema); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitRefMap(path, v, "examples", "Reference", "Example", n.Examples.Value, walk30Reference, walk30Example); stopped || err != nil {
			return stopped, err
		}
		return visitOrderedMap(path, v, "encoding", "Encoding", n.Encoding.Value, walk30Encoding)
	})
}

func walk30Encoding(path *NodePath, n *ast30.Encoding, v *Visitor) (bool, error) {
	return dispatch(path, "Encoding", v, func() (bool, error) {
		return visitRefMap(path, v, "headers", "Reference", "Header", n.Headers.Value, walk30Reference, walk30Header)
	})
}

func walk30Example(path *NodePath, n *ast30.Example, v *Visitor) (bool, error) {
	return dispatch(path, "Example", v, nil)
}

func walk30Link(path *NodePath, n *ast30.Link, v *Visitor) (bool, error) {
	return dispatch(path, "Link", v, func() (bool, error) {
		return visitOptional(path, v, "server", "Server", n.Server.Value, walk30Server)
	})
}

func walk30Response(path *NodePath, n *ast30.Response, v *Visitor) (bool, error) {
	return dispatch(path, "Response", v, func() (bool, error) {
		if stopped, err := visitRefMap(path, v, "headers", "Reference", "Header", n.Headers.Value, walk30Reference, walk30Header); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitOrderedMap(path, v, "content", "MediaType", n.Content.Value, walk30MediaType); stopped || err != nil {
			return stopped, err
		}
		return visitRefMap(path, v, "links", "Reference", "Link", n.Links.Value, walk30Reference, walk30Link)
	})
}

func walk30Responses(path *NodePath, n *ast30.Responses, v *Visitor) (bool, error) {
	return dispatch(path, "Responses", v, func() (bool, error) {
		if stopped, err := visitRef(path, v, "default", "Reference", "Response", n.Default.Value, walk30Reference, walk30Response); stopped || err != nil {
			return stopped, err
		}
		return visitRefMap(path, v, "", "Reference", "Response", n.StatusCodes, walk30Reference, walk30Response)
	})
}

// walk30Callback dispatches Callback as a transparent wrapper, exactly like
// Paths: its expression-keyed entries chain directly off the owning
// callbacks field with no extra token for the Callback object itself.
func walk30Callback(path *NodePath, n *ast30.Callback, v *Visitor) (bool, error) {
	return dispatch(path, "Callback", v, func() (bool, error) {
		return visitTransparentMap(path, v, "PathItem", n.Expressions, walk30PathItem)
	})
}

func walk30SchemaOrBool(path *NodePath, v *Visitor, fieldName string, s *ast30.SchemaOrBool) (bool, error) {
	if s == nil || s.Schema == nil {
		return false, nil
	}
	return visitRef(path, v, fieldName, "Reference", "Schema", s.Schema, walk30Reference, walk30Schema)
}

func walk30Schema(path *NodePath, n *ast30.Schema, v *Visitor) (bool, error) {
	return dispatch(path, "Schema", v, func() (bool, error) {
		if stopped, err := visitRef(path, v, "items", "Reference", "Schema", n.Items.Value, walk30Reference, walk30Schema); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := walk30SchemaOrBool(path, v, "additionalItems", n.AdditionalItems.Value); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitRefMap(path, v, "properties", "Reference", "Schema", n.Properties.Value, walk30Reference, walk30Schema); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := walk30SchemaOrBool(path, v, "additionalProperties", n.AdditionalProperties.Value); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitRefList(path, v, "allOf", "Reference", "Schema", n.AllOf.Value, walk30Reference, walk30Schema); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitRefList(path, v, "oneOf", "Reference", "Schema", n.OneOf.Value, walk30Reference, walk30Schema); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitRefList(path, v, "anyOf", "Reference", "Schema", n.AnyOf.Value, walk30Reference, walk30Schema); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitRef(path, v, "not", "Reference", "Schema", n.Not.Value, walk30Reference, walk30Schema); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitOptional(path, v, "discriminator", "Discriminator", n.Discriminator.Value, walk30Discriminator); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitOptional(path, v, "xml", "XML", n.XML.Value, walk30XML); stopped || err != nil {
			return stopped, err
		}
		return visitOptional(path, v, "externalDocs", "ExternalDocumentation", n.ExternalDocs.Value, walk30ExternalDocs)
	})
}

func walk30SecurityScheme(path *NodePath, n *ast30.SecurityScheme, v *Visitor) (bool, error) {
	return dispatch(path, "SecurityScheme", v, func() (bool, error) {
		return visitOptional(path, v, "flows", "OAuthFlows", n.Flows.Value, walk30OAuthFlows)
	})
}

func walk30OAuthFlows(path *NodePath, n *ast30.OAuthFlows, v *Visitor) (bool, error) {
	return dispatch(path, "OAuthFlows", v, func() (bool, error) {
		if stopped, err := visitOptional(path, v, "implicit", "OAuthFlow", n.Implicit.Value, walk30OAuthFlow); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitOptional(path, v, "password", "OAuthFlow", n.Password.Value, walk30OAuthFlow); stopped || err != nil {
			return stopped, err
		}
		if stopped, err := visitOptional(path, v, "clientCredentials", "OAuthFlow", n.ClientCredentials.Value, walk30OAuthFlow); stopped || err != nil {
			return stopped, err
		}
		return visitOptional(path, v, "authorizationCode", "OAuthFlow", n.AuthorizationCode.Value, walk30OAuthFlow)
	})
}

func walk30OAuthFlow(path *NodePath, n *ast30.OAuthFlow, v *Visitor) (bool, error) {
	return dispatch(path, "OAuthFlow", v, nil)
}
