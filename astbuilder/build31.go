package astbuilder

import (
	"regexp"

	"github.com/oasgraph/oasast/ast31"
	"github.com/oasgraph/oasast/node"
	"github.com/oasgraph/oasast/source"
)

var statusCodePattern31 = regexp.MustCompile(`^[1-5][0-9]{2}$|^[1-5]XX$`)

// Build31 constructs the 3.1.x typed AST root from a generic mapping node.
func Build31(n *node.Node) *ast31.OpenAPI {
	return buildOpenAPI31(n)
}

func buildOpenAPI31(n *node.Node) *ast31.OpenAPI {
	doc := &ast31.OpenAPI{RootNode: n}
	if !n.IsMapping() {
		doc.Invalid = &source.Invalid{Raw: n.ToAny(), Node: n}
		return doc
	}
	doc.OpenAPI, _ = stringField(n, "openapi")
	doc.Info, _ = objectField(n, "info", buildInfo31)
	doc.JSONSchemaDialect, _ = stringField(n, "jsonSchemaDialect")
	doc.Servers, _ = objectListField(n, "servers", buildServer31)
	doc.Paths, _ = objectField(n, "paths", buildPaths31)
	doc.Webhooks, _ = objectMapField(n, "webhooks", buildPathItem31)
	doc.Components, _ = objectField(n, "components", buildComponents31)
	doc.Security, _ = buildSecurityField31(n, "security")
	doc.Tags, _ = objectListField(n, "tags", buildTag31)
	doc.ExternalDocs, _ = objectField(n, "externalDocs", buildExternalDocs31)
	doc.Extensions = buildExtensions(n)
	return doc
}

func buildInfo31(n *node.Node) *ast31.Info {
	info := &ast31.Info{RootNode: n}
	if !n.IsMapping() {
		info.Invalid = &source.Invalid{Raw: n.ToAny(), Node: n}
		return info
	}
	info.Title, _ = stringField(n, "title")
	info.Summary, _ = stringField(n, "summary")
	info.Description, _ = stringField(n, "description")
	info.TermsOfService, _ = stringField(n, "termsOfService")
	info.Contact, _ = objectField(n, "contact", buildContact31)
	info.License, _ = objectField(n, "license", buildLicense31)
	info.Version, _ = stringField(n, "version")
	info.Extensions = buildExtensions(n)
	return info
}

func buildContact31(n *node.Node) *ast31.Contact {
	c := &ast31.Contact{RootNode: n}
	if !n.IsMapping() {
		c.Invalid = &source.Invalid{Raw: n.ToAny(), Node: n}
		return c
	}
	c.Name, _ = stringField(n, "name")
	c.URL, _ = stringField(n, "url")
	c.Email, _ = stringField(n, "email")
	c.Extensions = buildExtensions(n)
	return c
}

func buildLicense31(n *node.Node) *ast31.License {
	l := &ast31.License{RootNode: n}
	if !n.IsMapping() {
		l.Invalid = &source.Invalid{Raw: n.ToAny(), Node: n}
		return l
	}
	l.Name, _ = stringField(n, "name")
	l.Identifier, _ = stringField(n, "identifier")
	l.URL, _ = stringField(n, "url")
	l.Extensions = buildExtensions(n)
	return l
}

func buildServerVariable31(n *node.Node) *ast31.ServerVariable {
	sv := &ast31.ServerVariable{RootNode: n}
	if !n.IsMapping() {
		sv.Invalid = &source.Invalid{Raw: n.ToAny(), Node: n}
		return sv
	}
	sv.Enum, _ = stringListField(n, "enum")
	sv.Default, _ = stringField(n, "default")
	sv.Description, _ = stringField(n, "description")
	sv.Extensions = buildExtensions(n)
	return sv
}

func buildServer31(n *node.Node) *ast31.Server {
	s := &ast31.Server{RootNode: n}
	if !n.IsMapping() {
		s.Invalid = &source.Invalid{Raw: n.ToAny(), Node: n}
		return s
	}
	s.URL, _ = stringField(n, "url")
	s.Description, _ = stringField(n, "description")
	s.Variables, _ = objectMapField(n, "variables", buildServerVariable31)
	s.Extensions = buildExtensions(n)
	return s
}

func buildTag31(n *node.Node) *ast31.Tag {
	t := &ast31.Tag{RootNode: n}
	if !n.IsMapping() {
		t.Invalid = &source.Invalid{Raw: n.ToAny(), Node: n}
		return t
	}
	t.Name, _ = stringField(n, "name")
	t.Description, _ = stringField(n, "description")
	t.ExternalDocs, _ = objectField(n, "externalDocs", buildExternalDocs31)
	t.Extensions = buildExtensions(n)
	return t
}

func buildExternalDocs31(n *node.Node) *ast31.ExternalDocumentation {
	d := &ast31.ExternalDocumentation{RootNode: n}
	if !n.IsMapping() {
		d.Invalid = &source.Invalid{Raw: n.ToAny(), Node: n}
		return d
	}
	d.URL, _ = stringField(n, "url")
	d.Description, _ = stringField(n, "description")
	d.Extensions = buildExtensions(n)
	return d
}

func buildReference31(n *node.Node) *ast31.Reference {
	r := &ast31.Reference{RootNode: n}
	if !n.IsMapping() {
		r.Invalid = &source.Invalid{Raw: n.ToAny(), Node: n}
		return r
	}
	r.Ref, _ = stringField(n, "$ref")
	r.Summary, _ = stringField(n, "summary")
	r.Description, _ = stringField(n, "description")
	r.Extensions = buildExtensions(n)
	return r
}

func buildDiscriminator31(n *node.Node) *ast31.Discriminator {
	d := &ast31.Discriminator{RootNode: n}
	if !n.IsMapping() {
		d.Invalid = &source.Invalid{Raw: n.ToAny(), Node: n}
		return d
	}
	d.PropertyName, _ = stringField(n, "propertyName")
	d.Mapping, _ = stringMapField(n, "mapping")
	d.Extensions = buildExtensions(n)
	return d
}

func buildXML31(n *node.Node) *ast31.XML {
	x := &ast31.XML{RootNode: n}
	if !n.IsMapping() {
		x.Invalid = &source.Invalid{Raw: n.ToAny(), Node: n}
		return x
	}
	x.Name, _ = stringField(n, "name")
	x.Namespace, _ = stringField(n, "namespace")
	x.Prefix, _ = stringField(n, "prefix")
	x.Attribute, _ = boolField(n, "attribute")
	x.Wrapped, _ = boolField(n, "wrapped")
	x.Extensions = buildExtensions(n)
	return x
}

func buildSchemaOrBool31(n *node.Node) *ast31.SchemaOrBool {
	if n.IsScalar() && n.Tag == "!!bool" {
		raw, _ := n.ScalarValue()
		if b, ok := raw.(bool); ok {
			return &ast31.SchemaOrBool{Bool: &b}
		}
	}
	return &ast31.SchemaOrBool{Schema: buildSchema31(n)}
}

// buildSchema31 is also used as build_T_or_reference for 3.1: since $ref
// lives directly on Schema, there is no separate discrimination step.
func buildSchema31(n *node.Node) *ast31.Schema {
	s := &ast31.Schema{RootNode: n}
	if !n.IsMapping() {
		s.Invalid = &source.Invalid{Raw: n.ToAny(), Node: n}
		return s
	}
	s.Ref, _ = stringField(n, "$ref")
	s.Schema, _ = stringField(n, "$schema")
	s.ID, _ = stringField(n, "$id")

	s.Title, _ = stringField(n, "title")
	s.Description, _ = stringField(n, "description")
	s.Default, _ = anyField(n, "default")
	s.Examples, _ = anyListField(n, "examples")

	s.Type, _ = anyField(n, "type")
	s.Enum, _ = anyListField(n, "enum")
	s.Const, _ = anyField(n, "const")

	s.MultipleOf, _ = float64Field(n, "multipleOf")
	s.Maximum, _ = float64Field(n, "maximum")
	s.ExclusiveMaximum, _ = float64Field(n, "exclusiveMaximum")
	s.Minimum, _ = float64Field(n, "minimum")
	s.ExclusiveMinimum, _ = float64Field(n, "exclusiveMinimum")

	s.MaxLength, _ = intField(n, "maxLength")
	s.MinLength, _ = intField(n, "minLength")
	s.Pattern, _ = stringField(n, "pattern")

	s.Items, _ = objectField(n, "items", buildSchemaOrBool31)
	s.PrefixItems, _ = objectListField(n, "prefixItems", buildSchema31)
	s.Contains, _ = objectField(n, "contains", buildSchema31)
	s.MinContains, _ = intField(n, "minContains")
	s.MaxContains, _ = intField(n, "maxContains")
	s.MaxItems, _ = intField(n, "maxItems")
	s.MinItems, _ = intField(n, "minItems")
	s.UniqueItems, _ = boolField(n, "uniqueItems")
	s.UnevaluatedItems, _ = objectField(n, "unevaluatedItems", buildSchemaOrBool31)

	s.Properties, _ = objectMapField(n, "properties", buildSchema31)
	s.PatternProperties, _ = objectMapField(n, "patternProperties", buildSchema31)
	s.AdditionalProperties, _ = objectField(n, "additionalProperties", buildSchemaOrBool31)
	s.UnevaluatedProperties, _ = objectField(n, "unevaluatedProperties", buildSchemaOrBool31)
	s.Required, _ = stringListField(n, "required")
	s.PropertyNames, _ = objectField(n, "propertyNames", buildSchema31)
	s.MaxProperties, _ = intField(n, "maxProperties")
	s.MinProperties, _ = intField(n, "minProperties")
	s.DependentRequired, _ = stringListMapField(n, "dependentRequired")
	s.DependentSchemas, _ = objectMapField(n, "dependentSchemas", buildSchema31)

	s.If, _ = objectField(n, "if", buildSchema31)
	s.Then, _ = objectField(n, "then", buildSchema31)
	s.Else, _ = objectField(n, "else", buildSchema31)

	s.AllOf, _ = objectListField(n, "allOf", buildSchema31)
	s.OneOf, _ = objectListField(n, "oneOf", buildSchema31)
	s.AnyOf, _ = objectListField(n, "anyOf", buildSchema31)
	s.Not, _ = objectField(n, "not", buildSchema31)

	s.Discriminator, _ = objectField(n, "discriminator", buildDiscriminator31)
	s.ReadOnly, _ = boolField(n, "readOnly")
	s.WriteOnly, _ = boolField(n, "writeOnly")
	s.XML, _ = objectField(n, "xml", buildXML31)
	s.ExternalDocs, _ = objectField(n, "externalDocs", buildExternalDocs31)
	s.Example, _ = anyField(n, "example")
	s.Deprecated, _ = boolField(n, "deprecated")
	s.Format, _ = stringField(n, "format")

	s.Anchor, _ = stringField(n, "$anchor")
	s.DynamicAnchor, _ = stringField(n, "$dynamicAnchor")
	s.DynamicRef, _ = stringField(n, "$dynamicRef")
	s.Defs, _ = objectMapField(n, "$defs", buildSchema31)
	s.Vocabulary, _ = boolMapField(n, "$vocabulary")
	s.Comment, _ = stringField(n, "$comment")

	s.ContentMediaType, _ = stringField(n, "contentMediaType")
	s.ContentEncoding, _ = stringField(n, "contentEncoding")
	s.ContentSchema, _ = objectField(n, "contentSchema", buildSchema31)

	s.Extensions = buildExtensions(n)
	return s
}

func buildExample31(n *node.Node) *ast31.Example {
	e := &ast31.Example{RootNode: n}
	if !n.IsMapping() {
		e.Invalid = &source.Invalid{Raw: n.ToAny(), Node: n}
		return e
	}
	e.Summary, _ = stringField(n, "summary")
	e.Description, _ = stringField(n, "description")
	e.Value, _ = anyField(n, "value")
	e.ExternalValue, _ = stringField(n, "externalValue")
	e.Extensions = buildExtensions(n)
	return e
}

func buildEncoding31(n *node.Node) *ast31.Encoding {
	e := &ast31.Encoding{RootNode: n}
	if !n.IsMapping() {
		e.Invalid = &source.Invalid{Raw: n.ToAny(), Node: n}
		return e
	}
	e.ContentType, _ = stringField(n, "contentType")
	e.Headers, _ = objectMapField(n, "headers", func(hn *node.Node) *ast31.HeaderRef {
		return buildOrReference(hn, buildReference31, buildHeader31)
	})
	e.Style, _ = stringField(n, "style")
	e.Explode, _ = boolField(n, "explode")
	e.AllowReserved, _ = boolField(n, "allowReserved")
	e.Extensions = buildExtensions(n)
	return e
}

func buildMediaType31(n *node.Node) *ast31.MediaType {
	m := &ast31.MediaType{RootNode: n}
	if !n.IsMapping() {
		m.Invalid = &source.Invalid{Raw: n.ToAny(), Node: n}
		return m
	}
	m.Schema, _ = objectField(n, "schema", buildSchema31)
	m.Example, _ = anyField(n, "example")
	m.Examples, _ = objectMapField(n, "examples", func(en *node.Node) *ast31.ExampleRef {
		return buildOrReference(en, buildReference31, buildExample31)
	})
	m.Encoding, _ = objectMapField(n, "encoding", buildEncoding31)
	m.Extensions = buildExtensions(n)
	return m
}

func contentMapField31(n *node.Node, key string) (source.FieldSource[source.OrderedMap[*ast31.MediaType]], bool) {
	return objectMapField(n, key, buildMediaType31)
}

func buildHeader31(n *node.Node) *ast31.Header {
	h := &ast31.Header{RootNode: n}
	if !n.IsMapping() {
		h.Invalid = &source.Invalid{Raw: n.ToAny(), Node: n}
		return h
	}
	h.Description, _ = stringField(n, "description")
	h.Required, _ = boolField(n, "required")
	h.Deprecated, _ = boolField(n, "deprecated")
	h.AllowEmptyValue, _ = boolField(n, "allowEmptyValue")
	h.Style, _ = stringField(n, "style")
	h.Explode, _ = boolField(n, "explode")
	h.AllowReserved, _ = boolField(n, "allowReserved")
	h.Schema, _ = objectField(n, "schema", buildSchema31)
	h.Example, _ = anyField(n, "example")
	h.Examples, _ = objectMapField(n, "examples", func(en *node.Node) *ast31.ExampleRef {
		return buildOrReference(en, buildReference31, buildExample31)
	})
	h.Content, _ = contentMapField31(n, "content")
	h.Extensions = buildExtensions(n)
	return h
}

func buildParameter31(n *node.Node) *ast31.Parameter {
	p := &ast31.Parameter{RootNode: n}
	if !n.IsMapping() {
		p.Invalid = &source.Invalid{Raw: n.ToAny(), Node: n}
		return p
	}
	p.Name, _ = stringField(n, "name")
	p.In, _ = stringField(n, "in")
	p.Description, _ = stringField(n, "description")
	p.Required, _ = boolField(n, "required")
	p.Deprecated, _ = boolField(n, "deprecated")
	p.AllowEmptyValue, _ = boolField(n, "allowEmptyValue")
	p.Style, _ = stringField(n, "style")
	p.Explode, _ = boolField(n, "explode")
	p.AllowReserved, _ = boolField(n, "allowReserved")
	p.Schema, _ = objectField(n, "schema", buildSchema31)
	p.Example, _ = anyField(n, "example")
	p.Examples, _ = objectMapField(n, "examples", func(en *node.Node) *ast31.ExampleRef {
		return buildOrReference(en, buildReference31, buildExample31)
	})
	p.Content, _ = contentMapField31(n, "content")
	p.Extensions = buildExtensions(n)
	return p
}

func buildRequestBody31(n *node.Node) *ast31.RequestBody {
	r := &ast31.RequestBody{RootNode: n}
	if !n.IsMapping() {
		r.Invalid = &source.Invalid{Raw: n.ToAny(), Node: n}
		return r
	}
	r.Description, _ = stringField(n, "description")
	r.Content, _ = contentMapField31(n, "content")
	r.Required, _ = boolField(n, "required")
	r.Extensions = buildExtensions(n)
	return r
}

func buildLink31(n *node.Node) *ast31.Link {
	l := &ast31.Link{RootNode: n}
	if !n.IsMapping() {
		l.Invalid = &source.Invalid{Raw: n.ToAny(), Node: n}
		return l
	}
	l.OperationRef, _ = stringField(n, "operationRef")
	l.OperationID, _ = stringField(n, "operationId")
	l.Parameters, _ = anyMapField(n, "parameters")
	l.RequestBody, _ = anyField(n, "requestBody")
	l.Description, _ = stringField(n, "description")
	l.Server, _ = objectField(n, "server", buildServer31)
	l.Extensions = buildExtensions(n)
	return l
}

func buildResponse31(n *node.Node) *ast31.Response {
	r := &ast31.Response{RootNode: n}
	if !n.IsMapping() {
		r.Invalid = &source.Invalid{Raw: n.ToAny(), Node: n}
		return r
	}
	r.Description, _ = stringField(n, "description")
	r.Headers, _ = objectMapField(n, "headers", func(hn *node.Node) *ast31.HeaderRef {
		return buildOrReference(hn, buildReference31, buildHeader31)
	})
	r.Content, _ = contentMapField31(n, "content")
	r.Links, _ = objectMapField(n, "links", func(ln *node.Node) *ast31.LinkRef {
		return buildOrReference(ln, buildReference31, buildLink31)
	})
	r.Extensions = buildExtensions(n)
	return r
}

func buildResponses31(n *node.Node) *ast31.Responses {
	r := &ast31.Responses{RootNode: n}
	if !n.IsMapping() {
		r.Invalid = &source.Invalid{Raw: n.ToAny(), Node: n}
		return r
	}
	r.Default, _ = objectField(n, "default", func(dn *node.Node) *ast31.ResponseRef {
		return buildOrReference(dn, buildReference31, buildResponse31)
	})
	for _, e := range n.Entries {
		if e.Key == nil || !e.Key.IsScalar() {
			continue
		}
		key := e.Key.Value
		if key == "default" || isExtensionKey(key) {
			continue
		}
		if !statusCodePattern31.MatchString(key) {
			continue
		}
		r.StatusCodes = append(r.StatusCodes, source.Entry[*ast31.ResponseRef]{
			Key:   source.NewKeySource(key, e.Key),
			Value: buildOrReference(e.Value, buildReference31, buildResponse31),
		})
	}
	r.Extensions = buildExtensions(n)
	return r
}

func buildCallback31(n *node.Node) *ast31.Callback {
	c := &ast31.Callback{RootNode: n}
	if !n.IsMapping() {
		c.Invalid = &source.Invalid{Raw: n.ToAny(), Node: n}
		return c
	}
	for _, e := range n.Entries {
		if e.Key == nil || !e.Key.IsScalar() || isExtensionKey(e.Key.Value) {
			continue
		}
		c.Expressions = append(c.Expressions, source.Entry[*ast31.PathItem]{
			Key:   source.NewKeySource(e.Key.Value, e.Key),
			Value: buildPathItem31(e.Value),
		})
	}
	c.Extensions = buildExtensions(n)
	return c
}

func buildOperation31(n *node.Node) *ast31.Operation {
	op := &ast31.Operation{RootNode: n}
	if !n.IsMapping() {
		op.Invalid = &source.Invalid{Raw: n.ToAny(), Node: n}
		return op
	}
	op.Tags, _ = stringListField(n, "tags")
	op.Summary, _ = stringField(n, "summary")
	op.Description, _ = stringField(n, "description")
	op.ExternalDocs, _ = objectField(n, "externalDocs", buildExternalDocs31)
	op.OperationID, _ = stringField(n, "operationId")
	op.Parameters, _ = objectListField(n, "parameters", func(pn *node.Node) *ast31.ParameterRef {
		return buildOrReference(pn, buildReference31, buildParameter31)
	})
	op.RequestBody, _ = objectField(n, "requestBody", func(rn *node.Node) *ast31.RequestBodyRef {
		return buildOrReference(rn, buildReference31, buildRequestBody31)
	})
	op.Responses, _ = objectField(n, "responses", buildResponses31)
	op.Callbacks, _ = objectMapField(n, "callbacks", func(cn *node.Node) *ast31.CallbackRef {
		return buildOrReference(cn, buildReference31, buildCallback31)
	})
	op.Deprecated, _ = boolField(n, "deprecated")
	op.Security, _ = buildSecurityField31(n, "security")
	op.Servers, _ = objectListField(n, "servers", buildServer31)
	op.Extensions = buildExtensions(n)
	return op
}

func buildPathItem31(n *node.Node) *ast31.PathItem {
	p := &ast31.PathItem{RootNode: n}
	if !n.IsMapping() {
		p.Invalid = &source.Invalid{Raw: n.ToAny(), Node: n}
		return p
	}
	p.Ref, _ = stringField(n, "$ref")
	p.Summary, _ = stringField(n, "summary")
	p.Description, _ = stringField(n, "description")
	p.Get, _ = objectField(n, "get", buildOperation31)
	p.Put, _ = objectField(n, "put", buildOperation31)
	p.Post, _ = objectField(n, "post", buildOperation31)
	p.Delete, _ = objectField(n, "delete", buildOperation31)
	p.Options, _ = objectField(n, "options", buildOperation31)
	p.Head, _ = objectField(n, "head", buildOperation31)
	p.Patch, _ = objectField(n, "patch", buildOperation31)
	p.Trace, _ = objectField(n, "trace", buildOperation31)
	p.Servers, _ = objectListField(n, "servers", buildServer31)
	p.Parameters, _ = objectListField(n, "parameters", func(pn *node.Node) *ast31.ParameterRef {
		return buildOrReference(pn, buildReference31, buildParameter31)
	})
	p.Extensions = buildExtensions(n)
	return p
}

func buildPaths31(n *node.Node) *ast31.Paths {
	p := &ast31.Paths{RootNode: n}
	if !n.IsMapping() {
		p.Invalid = &source.Invalid{Raw: n.ToAny(), Node: n}
		return p
	}
	for _, e := range n.Entries {
		if e.Key == nil || !e.Key.IsScalar() || isExtensionKey(e.Key.Value) {
			continue
		}
		key := e.Key.Value
		p.Items = append(p.Items, source.Entry[*ast31.PathItem]{
			Key:   source.NewKeySource(key, e.Key),
			Value: buildPathItem31(e.Value),
		})
	}
	p.Extensions = buildExtensions(n)
	return p
}

func buildSecuritySchemeInner31(n *node.Node) *ast31.SecurityScheme {
	s := &ast31.SecurityScheme{RootNode: n}
	if !n.IsMapping() {
		s.Invalid = &source.Invalid{Raw: n.ToAny(), Node: n}
		return s
	}
	s.Type, _ = stringField(n, "type")
	s.Description, _ = stringField(n, "description")
	s.Name, _ = stringField(n, "name")
	s.In, _ = stringField(n, "in")
	s.Scheme, _ = stringField(n, "scheme")
	s.BearerFormat, _ = stringField(n, "bearerFormat")
	s.Flows, _ = objectField(n, "flows", buildOAuthFlows31)
	s.OpenIDConnectURL, _ = stringField(n, "openIdConnectUrl")
	s.Extensions = buildExtensions(n)
	return s
}

func buildOAuthFlow31(n *node.Node) *ast31.OAuthFlow {
	f := &ast31.OAuthFlow{RootNode: n}
	if !n.IsMapping() {
		f.Invalid = &source.Invalid{Raw: n.ToAny(), Node: n}
		return f
	}
	f.AuthorizationURL, _ = stringField(n, "authorizationUrl")
	f.TokenURL, _ = stringField(n, "tokenUrl")
	f.RefreshURL, _ = stringField(n, "refreshUrl")
	f.Scopes, _ = stringMapField(n, "scopes")
	f.Extensions = buildExtensions(n)
	return f
}

func buildOAuthFlows31(n *node.Node) *ast31.OAuthFlows {
	f := &ast31.OAuthFlows{RootNode: n}
	if !n.IsMapping() {
		f.Invalid = &source.Invalid{Raw: n.ToAny(), Node: n}
		return f
	}
	f.Implicit, _ = objectField(n, "implicit", buildOAuthFlow31)
	f.Password, _ = objectField(n, "password", buildOAuthFlow31)
	f.ClientCredentials, _ = objectField(n, "clientCredentials", buildOAuthFlow31)
	f.AuthorizationCode, _ = objectField(n, "authorizationCode", buildOAuthFlow31)
	f.Extensions = buildExtensions(n)
	return f
}

func buildComponents31(n *node.Node) *ast31.Components {
	c := &ast31.Components{RootNode: n}
	if !n.IsMapping() {
		c.Invalid = &source.Invalid{Raw: n.ToAny(), Node: n}
		return c
	}
	c.Schemas, _ = objectMapField(n, "schemas", buildSchema31)
	c.Responses, _ = objectMapField(n, "responses", func(rn *node.Node) *ast31.ResponseRef {
		return buildOrReference(rn, buildReference31, buildResponse31)
	})
	c.Parameters, _ = objectMapField(n, "parameters", func(pn *node.Node) *ast31.ParameterRef {
		return buildOrReference(pn, buildReference31, buildParameter31)
	})
	c.Examples, _ = objectMapField(n, "examples", func(en *node.Node) *ast31.ExampleRef {
		return buildOrReference(en, buildReference31, buildExample31)
	})
	c.RequestBodies, _ = objectMapField(n, "requestBodies", func(rn *node.Node) *ast31.RequestBodyRef {
		return buildOrReference(rn, buildReference31, buildRequestBody31)
	})
	c.Headers, _ = objectMapField(n, "headers", func(hn *node.Node) *ast31.HeaderRef {
		return buildOrReference(hn, buildReference31, buildHeader31)
	})
	c.SecuritySchemes, _ = objectMapField(n, "securitySchemes", func(sn *node.Node) *ast31.SecuritySchemeRef {
		return buildOrReference(sn, buildReference31, buildSecuritySchemeInner31)
	})
	c.Links, _ = objectMapField(n, "links", func(ln *node.Node) *ast31.LinkRef {
		return buildOrReference(ln, buildReference31, buildLink31)
	})
	c.Callbacks, _ = objectMapField(n, "callbacks", func(cn *node.Node) *ast31.CallbackRef {
		return buildOrReference(cn, buildReference31, buildCallback31)
	})
	c.PathItems, _ = objectMapField(n, "pathItems", buildPathItem31)
	c.Extensions = buildExtensions(n)
	return c
}

func buildSecurityField31(n *node.Node, key string) (source.FieldSource[[]ast31.SecurityRequirement], bool) {
	k, v, ok := lookup(n, key)
	if !ok {
		return source.FieldSource[[]ast31.SecurityRequirement]{}, false
	}
	if !v.IsSequence() {
		return source.NewInvalidFieldSource[[]ast31.SecurityRequirement](v.ToAny(), k, v), true
	}
	reqs := make([]ast31.SecurityRequirement, len(v.Items))
	for i, item := range v.Items {
		reqs[i] = ast31.SecurityRequirement(securityRequirementEntries(item))
	}
	return source.NewFieldSource(reqs, k, v), true
}
