package astbuilder

import (
	"regexp"

	"github.com/oasgraph/oasast/ast30"
	"github.com/oasgraph/oasast/node"
	"github.com/oasgraph/oasast/source"
)

var statusCodePattern30 = regexp.MustCompile(`^[1-5][0-9]{2}$|^[1-5]XX$`)

// Build30 constructs the 3.0.x typed AST root from a generic mapping node.
func Build30(n *node.Node) *ast30.OpenAPI {
	return buildOpenAPI30(n)
}

func buildOpenAPI30(n *node.Node) *ast30.OpenAPI {
	doc := &ast30.OpenAPI{RootNode: n}
	if !n.IsMapping() {
		doc.Invalid = &source.Invalid{Raw: n.ToAny(), Node: n}
		return doc
	}
	doc.OpenAPI, _ = stringField(n, "openapi")
	doc.Info, _ = objectField(n, "info", buildInfo30)
	doc.Servers, _ = objectListField(n, "servers", buildServer30)
	doc.Paths, _ = objectField(n, "paths", buildPaths30)
	doc.Components, _ = objectField(n, "components", buildComponents30)
	doc.Security, _ = buildSecurityField(n, "security")
	doc.Tags, _ = objectListField(n, "tags", buildTag30)
	doc.ExternalDocs, _ = objectField(n, "externalDocs", buildExternalDocs30)
	doc.Extensions = buildExtensions(n)
	return doc
}

func buildInfo30(n *node.Node) *ast30.Info {
	info := &ast30.Info{RootNode: n}
	if !n.IsMapping() {
		info.Invalid = &source.Invalid{Raw: n.ToAny(), Node: n}
		return info
	}
	info.Title, _ = stringField(n, "title")
	info.Description, _ = stringField(n, "description")
	info.TermsOfService, _ = stringField(n, "termsOfService")
	info.Contact, _ = objectField(n, "contact", buildContact30)
	info.License, _ = objectField(n, "license", buildLicense30)
	info.Version, _ = stringField(n, "version")
	info.Extensions = buildExtensions(n)
	return info
}

func buildContact30(n *node.Node) *ast30.Contact {
	c := &ast30.Contact{RootNode: n}
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

func buildLicense30(n *node.Node) *ast30.License {
	l := &ast30.License{RootNode: n}
	if !n.IsMapping() {
		l.Invalid = &source.Invalid{Raw: n.ToAny(), Node: n}
		return l
	}
	l.Name, _ = stringField(n, "name")
	l.URL, _ = stringField(n, "url")
	l.Extensions = buildExtensions(n)
	return l
}

func buildServerVariable30(n *node.Node) *ast30.ServerVariable {
	sv := &ast30.ServerVariable{RootNode: n}
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

func buildServer30(n *node.Node) *ast30.Server {
	s := &ast30.Server{RootNode: n}
	if !n.IsMapping() {
		s.Invalid = &source.Invalid{Raw: n.ToAny(), Node: n}
		return s
	}
	s.URL, _ = stringField(n, "url")
	s.Description, _ = stringField(n, "description")
	s.Variables, _ = objectMapField(n, "variables", buildServerVariable30)
	s.Extensions = buildExtensions(n)
	return s
}

func buildTag30(n *node.Node) *ast30.Tag {
	t := &ast30.Tag{RootNode: n}
	if !n.IsMapping() {
		t.Invalid = &source.Invalid{Raw: n.ToAny(), Node: n}
		return t
	}
	t.Name, _ = stringField(n, "name")
	t.Description, _ = stringField(n, "description")
	t.ExternalDocs, _ = objectField(n, "externalDocs", buildExternalDocs30)
	t.Extensions = buildExtensions(n)
	return t
}

func buildExternalDocs30(n *node.Node) *ast30.ExternalDocumentation {
	d := &ast30.ExternalDocumentation{RootNode: n}
	if !n.IsMapping() {
		d.Invalid = &source.Invalid{Raw: n.ToAny(), Node: n}
		return d
	}
	d.URL, _ = stringField(n, "url")
	d.Description, _ = stringField(n, "description")
	d.Extensions = buildExtensions(n)
	return d
}

func buildReference30(n *node.Node) *ast30.Reference {
	r := &ast30.Reference{RootNode: n}
	if !n.IsMapping() {
		r.Invalid = &source.Invalid{Raw: n.ToAny(), Node: n}
		return r
	}
	r.Ref, _ = stringField(n, "$ref")
	r.Extensions = buildExtensions(n)
	return r
}

func buildDiscriminator30(n *node.Node) *ast30.Discriminator {
	d := &ast30.Discriminator{RootNode: n}
	if !n.IsMapping() {
		d.Invalid = &source.Invalid{Raw: n.ToAny(), Node: n}
		return d
	}
	d.PropertyName, _ = stringField(n, "propertyName")
	d.Mapping, _ = stringMapField(n, "mapping")
	d.Extensions = buildExtensions(n)
	return d
}

func buildXML30(n *node.Node) *ast30.XML {
	x := &ast30.XML{RootNode: n}
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

func buildSchemaOrBool30(n *node.Node) *ast30.SchemaOrBool {
	if n.IsScalar() && n.Tag == "!!bool" {
		raw, _ := n.ScalarValue()
		if b, ok := raw.(bool); ok {
			return &ast30.SchemaOrBool{Bool: &b}
		}
	}
	ref := buildSchemaRef30(n)
	return &ast30.SchemaOrBool{Schema: ref}
}

func buildSchemaRef30(n *node.Node) *ast30.SchemaRef {
	return buildOrReference(n, buildReference30, buildSchema30)
}

func buildSchema30(n *node.Node) *ast30.Schema {
	s := &ast30.Schema{RootNode: n}
	if !n.IsMapping() {
		s.Invalid = &source.Invalid{Raw: n.ToAny(), Node: n}
		return s
	}
	s.Title, _ = stringField(n, "title")
	s.Description, _ = stringField(n, "description")
	s.Default, _ = anyField(n, "default")
	s.Example, _ = anyField(n, "example")

	s.Type, _ = stringField(n, "type")
	s.Enum, _ = anyListField(n, "enum")
	s.Format, _ = stringField(n, "format")

	s.MultipleOf, _ = float64Field(n, "multipleOf")
	s.Maximum, _ = float64Field(n, "maximum")
	s.ExclusiveMaximum, _ = boolField(n, "exclusiveMaximum")
	s.Minimum, _ = float64Field(n, "minimum")
	s.ExclusiveMinimum, _ = boolField(n, "exclusiveMinimum")

	s.MaxLength, _ = intField(n, "maxLength")
	s.MinLength, _ = intField(n, "minLength")
	s.Pattern, _ = stringField(n, "pattern")

	s.Items, _ = objectField(n, "items", buildSchemaRef30)
	s.MaxItems, _ = intField(n, "maxItems")
	s.MinItems, _ = intField(n, "minItems")
	s.UniqueItems, _ = boolField(n, "uniqueItems")
	s.AdditionalItems, _ = objectField(n, "additionalItems", buildSchemaOrBool30)

	s.Properties, _ = objectMapField(n, "properties", buildSchemaRef30)
	s.AdditionalProperties, _ = objectField(n, "additionalProperties", buildSchemaOrBool30)
	s.Required, _ = stringListField(n, "required")
	s.MaxProperties, _ = intField(n, "maxProperties")
	s.MinProperties, _ = intField(n, "minProperties")

	s.AllOf, _ = objectListField(n, "allOf", buildSchemaRef30Elem)
	s.OneOf, _ = objectListField(n, "oneOf", buildSchemaRef30Elem)
	s.AnyOf, _ = objectListField(n, "anyOf", buildSchemaRef30Elem)
	s.Not, _ = objectField(n, "not", buildSchemaRef30)

	s.Nullable, _ = boolField(n, "nullable")
	s.Discriminator, _ = objectField(n, "discriminator", buildDiscriminator30)
	s.ReadOnly, _ = boolField(n, "readOnly")
	s.WriteOnly, _ = boolField(n, "writeOnly")
	s.XML, _ = objectField(n, "xml", buildXML30)
	s.ExternalDocs, _ = objectField(n, "externalDocs", buildExternalDocs30)
	s.Deprecated, _ = boolField(n, "deprecated")

	s.Extensions = buildExtensions(n)
	return s
}

// buildSchemaRef30Elem adapts buildSchemaRef30's *SchemaRef-returning
// signature for use as the element builder of objectListField[SchemaRef].
func buildSchemaRef30Elem(n *node.Node) *ast30.SchemaRef {
	return buildSchemaRef30(n)
}

func buildExample30(n *node.Node) *ast30.Example {
	e := &ast30.Example{RootNode: n}
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

func buildEncoding30(n *node.Node) *ast30.Encoding {
	e := &ast30.Encoding{RootNode: n}
	if !n.IsMapping() {
		e.Invalid = &source.Invalid{Raw: n.ToAny(), Node: n}
		return e
	}
	e.ContentType, _ = stringField(n, "contentType")
	e.Headers, _ = objectMapField(n, "headers", func(hn *node.Node) *ast30.HeaderRef {
		return buildOrReference(hn, buildReference30, buildHeader30)
	})
	e.Style, _ = stringField(n, "style")
	e.Explode, _ = boolField(n, "explode")
	e.AllowReserved, _ = boolField(n, "allowReserved")
	e.Extensions = buildExtensions(n)
	return e
}

func buildMediaType30(n *node.Node) *ast30.MediaType {
	m := &ast30.MediaType{RootNode: n}
	if !n.IsMapping() {
		m.Invalid = &source.Invalid{Raw: n.ToAny(), Node: n}
		return m
	}
	m.Schema, _ = objectField(n, "schema", buildSchemaRef30)
	m.Example, _ = anyField(n, "example")
	m.Examples, _ = objectMapField(n, "examples", func(en *node.Node) *ast30.ExampleRef {
		return buildOrReference(en, buildReference30, buildExample30)
	})
	m.Encoding, _ = objectMapField(n, "encoding", buildEncoding30)
	m.Extensions = buildExtensions(n)
	return m
}

func contentMapField30(n *node.Node, key string) (source.FieldSource[source.OrderedMap[*ast30.MediaType]], bool) {
	return objectMapField(n, key, buildMediaType30)
}

func buildHeader30(n *node.Node) *ast30.Header {
	h := &ast30.Header{RootNode: n}
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
	h.Schema, _ = objectField(n, "schema", buildSchemaRef30)
	h.Example, _ = anyField(n, "example")
	h.Examples, _ = objectMapField(n, "examples", func(en *node.Node) *ast30.ExampleRef {
		return buildOrReference(en, buildReference30, buildExample30)
	})
	h.Content, _ = contentMapField30(n, "content")
	h.Extensions = buildExtensions(n)
	return h
}

func buildParameter30(n *node.Node) *ast30.Parameter {
	p := &ast30.Parameter{RootNode: n}
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
	p.Schema, _ = objectField(n, "schema", buildSchemaRef30)
	p.Example, _ = anyField(n, "example")
	p.Examples, _ = objectMapField(n, "examples", func(en *node.Node) *ast30.ExampleRef {
		return buildOrReference(en, buildReference30, buildExample30)
	})
	p.Content, _ = contentMapField30(n, "content")
	p.Extensions = buildExtensions(n)
	return p
}

func buildRequestBody30(n *node.Node) *ast30.RequestBody {
	r := &ast30.RequestBody{RootNode: n}
	if !n.IsMapping() {
		r.Invalid = &source.Invalid{Raw: n.ToAny(), Node: n}
		return r
	}
	r.Description, _ = stringField(n, "description")
	r.Content, _ = contentMapField30(n, "content")
	r.Required, _ = boolField(n, "required")
	r.Extensions = buildExtensions(n)
	return r
}

func buildLink30(n *node.Node) *ast30.Link {
	l := &ast30.Link{RootNode: n}
	if !n.IsMapping() {
		l.Invalid = &source.Invalid{Raw: n.ToAny(), Node: n}
		return l
	}
	l.OperationRef, _ = stringField(n, "operationRef")
	l.OperationID, _ = stringField(n, "operationId")
	l.Parameters, _ = anyMapField(n, "parameters")
	l.RequestBody, _ = anyField(n, "requestBody")
	l.Description, _ = stringField(n, "description")
	l.Server, _ = objectField(n, "server", buildServer30)
	l.Extensions = buildExtensions(n)
	return l
}

func buildResponse30(n *node.Node) *ast30.Response {
	r := &ast30.Response{RootNode: n}
	if !n.IsMapping() {
		r.Invalid = &source.Invalid{Raw: n.ToAny(), Node: n}
		return r
	}
	r.Description, _ = stringField(n, "description")
	r.Headers, _ = objectMapField(n, "headers", func(hn *node.Node) *ast30.HeaderRef {
		return buildOrReference(hn, buildReference30, buildHeader30)
	})
	r.Content, _ = contentMapField30(n, "content")
	r.Links, _ = objectMapField(n, "links", func(ln *node.Node) *ast30.LinkRef {
		return buildOrReference(ln, buildReference30, buildLink30)
	})
	r.Extensions = buildExtensions(n)
	return r
}

func buildResponses30(n *node.Node) *ast30.Responses {
	r := &ast30.Responses{RootNode: n}
	if !n.IsMapping() {
		r.Invalid = &source.Invalid{Raw: n.ToAny(), Node: n}
		return r
	}
	r.Default, _ = objectField(n, "default", func(dn *node.Node) *ast30.ResponseRef {
		return buildOrReference(dn, buildReference30, buildResponse30)
	})
	for _, e := range n.Entries {
		if e.Key == nil || !e.Key.IsScalar() {
			continue
		}
		key := e.Key.Value
		if key == "default" || isExtensionKey(key) {
			continue
		}
		if !statusCodePattern30.MatchString(key) {
			continue
		}
		r.StatusCodes = append(r.StatusCodes, source.Entry[*ast30.ResponseRef]{
			Key:   source.NewKeySource(key, e.Key),
			Value: buildOrReference(e.Value, buildReference30, buildResponse30),
		})
	}
	r.Extensions = buildExtensions(n)
	return r
}

func buildCallback30(n *node.Node) *ast30.Callback {
	c := &ast30.Callback{RootNode: n}
	if !n.IsMapping() {
		c.Invalid = &source.Invalid{Raw: n.ToAny(), Node: n}
		return c
	}
	for _, e := range n.Entries {
		if e.Key == nil || !e.Key.IsScalar() || isExtensionKey(e.Key.Value) {
			continue
		}
		c.Expressions = append(c.Expressions, source.Entry[*ast30.PathItem]{
			Key:   source.NewKeySource(e.Key.Value, e.Key),
			Value: buildPathItem30(e.Value),
		})
	}
	c.Extensions = buildExtensions(n)
	return c
}

func buildOperation30(n *node.Node) *ast30.Operation {
	op := &ast30.Operation{RootNode: n}
	if !n.IsMapping() {
		op.Invalid = &source.Invalid{Raw: n.ToAny(), Node: n}
		return op
	}
	op.Tags, _ = stringListField(n, "tags")
	op.Summary, _ = stringField(n, "summary")
	op.Description, _ = stringField(n, "description")
	op.ExternalDocs, _ = objectField(n, "externalDocs", buildExternalDocs30)
	op.OperationID, _ = stringField(n, "operationId")
	op.Parameters, _ = objectListField(n, "parameters", func(pn *node.Node) *ast30.ParameterRef {
		return buildOrReference(pn, buildReference30, buildParameter30)
	})
	op.RequestBody, _ = objectField(n, "requestBody", func(rn *node.Node) *ast30.RequestBodyRef {
		return buildOrReference(rn, buildReference30, buildRequestBody30)
	})
	op.Responses, _ = objectField(n, "responses", buildResponses30)
	op.Callbacks, _ = objectMapField(n, "callbacks", func(cn *node.Node) *ast30.CallbackRef {
		return buildOrReference(cn, buildReference30, buildCallback30)
	})
	op.Deprecated, _ = boolField(n, "deprecated")
	op.Security, _ = buildSecurityField(n, "security")
	op.Servers, _ = objectListField(n, "servers", buildServer30)
	op.Extensions = buildExtensions(n)
	return op
}

func buildPathItem30(n *node.Node) *ast30.PathItem {
	p := &ast30.PathItem{RootNode: n}
	if !n.IsMapping() {
		p.Invalid = &source.Invalid{Raw: n.ToAny(), Node: n}
		return p
	}
	p.Ref, _ = stringField(n, "$ref")
	p.Summary, _ = stringField(n, "summary")
	p.Description, _ = stringField(n, "description")
	p.Get, _ = objectField(n, "get", buildOperation30)
	p.Put, _ = objectField(n, "put", buildOperation30)
	p.Post, _ = objectField(n, "post", buildOperation30)
	p.Delete, _ = objectField(n, "delete", buildOperation30)
	p.Options, _ = objectField(n, "options", buildOperation30)
	p.Head, _ = objectField(n, "head", buildOperation30)
	p.Patch, _ = objectField(n, "patch", buildOperation30)
	p.Trace, _ = objectField(n, "trace", buildOperation30)
	p.Servers, _ = objectListField(n, "servers", buildServer30)
	p.Parameters, _ = objectListField(n, "parameters", func(pn *node.Node) *ast30.ParameterRef {
		return buildOrReference(pn, buildReference30, buildParameter30)
	})
	p.Extensions = buildExtensions(n)
	return p
}

func buildPaths30(n *node.Node) *ast30.Paths {
	p := &ast30.Paths{RootNode: n}
	if !n.IsMapping() {
		p.Invalid = &source.Invalid{Raw: n.ToAny(), Node: n}
		return p
	}
	for _, e := range n.Entries {
		if e.Key == nil || !e.Key.IsScalar() || isExtensionKey(e.Key.Value) {
			continue
		}
		key := e.Key.Value
		p.Items = append(p.Items, source.Entry[*ast30.PathItem]{
			Key:   source.NewKeySource(key, e.Key),
			Value: buildPathItem30(e.Value),
		})
	}
	p.Extensions = buildExtensions(n)
	return p
}

func buildSecuritySchemeInner30(n *node.Node) *ast30.SecurityScheme {
	s := &ast30.SecurityScheme{RootNode: n}
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
	s.Flows, _ = objectField(n, "flows", buildOAuthFlows30)
	s.OpenIDConnectURL, _ = stringField(n, "openIdConnectUrl")
	s.Extensions = buildExtensions(n)
	return s
}

func buildOAuthFlow30(n *node.Node) *ast30.OAuthFlow {
	f := &ast30.OAuthFlow{RootNode: n}
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

func buildOAuthFlows30(n *node.Node) *ast30.OAuthFlows {
	f := &ast30.OAuthFlows{RootNode: n}
	if !n.IsMapping() {
		f.Invalid = &source.Invalid{Raw: n.ToAny(), Node: n}
		return f
	}
	f.Implicit, _ = objectField(n, "implicit", buildOAuthFlow30)
	f.Password, _ = objectField(n, "password", buildOAuthFlow30)
	f.ClientCredentials, _ = objectField(n, "clientCredentials", buildOAuthFlow30)
	f.AuthorizationCode, _ = objectField(n, "authorizationCode", buildOAuthFlow30)
	f.Extensions = buildExtensions(n)
	return f
}

func buildComponents30(n *node.Node) *ast30.Components {
	c := &ast30.Components{RootNode: n}
	if !n.IsMapping() {
		c.Invalid = &source.Invalid{Raw: n.ToAny(), Node: n}
		return c
	}
	c.Schemas, _ = objectMapField(n, "schemas", buildSchemaRef30)
	c.Responses, _ = objectMapField(n, "responses", func(rn *node.Node) *ast30.ResponseRef {
		return buildOrReference(rn, buildReference30, buildResponse30)
	})
	c.Parameters, _ = objectMapField(n, "parameters", func(pn *node.Node) *ast30.ParameterRef {
		return buildOrReference(pn, buildReference30, buildParameter30)
	})
	c.Examples, _ = objectMapField(n, "examples", func(en *node.Node) *ast30.ExampleRef {
		return buildOrReference(en, buildReference30, buildExample30)
	})
	c.RequestBodies, _ = objectMapField(n, "requestBodies", func(rn *node.Node) *ast30.RequestBodyRef {
		return buildOrReference(rn, buildReference30, buildRequestBody30)
	})
	c.Headers, _ = objectMapField(n, "headers", func(hn *node.Node) *ast30.HeaderRef {
		return buildOrReference(hn, buildReference30, buildHeader30)
	})
	c.SecuritySchemes, _ = objectMapField(n, "securitySchemes", func(sn *node.Node) *ast30.SecuritySchemeRef {
		return buildOrReference(sn, buildReference30, buildSecuritySchemeInner30)
	})
	c.Links, _ = objectMapField(n, "links", func(ln *node.Node) *ast30.LinkRef {
		return buildOrReference(ln, buildReference30, buildLink30)
	})
	c.Callbacks, _ = objectMapField(n, "callbacks", func(cn *node.Node) *ast30.CallbackRef {
		return buildOrReference(cn, buildReference30, buildCallback30)
	})
	c.Extensions = buildExtensions(n)
	return c
}

// buildSecurityField builds the Security list field shared by OpenAPI and
// Operation: a sequence of single-scheme-name-to-scopes maps.
func buildSecurityField(n *node.Node, key string) (source.FieldSource[[]ast30.SecurityRequirement], bool) {
	k, v, ok := lookup(n, key)
	if !ok {
		return source.FieldSource[[]ast30.SecurityRequirement]{}, false
	}
	if !v.IsSequence() {
		return source.NewInvalidFieldSource[[]ast30.SecurityRequirement](v.ToAny(), k, v), true
	}
	reqs := make([]ast30.SecurityRequirement, len(v.Items))
	for i, item := range v.Items {
		reqs[i] = ast30.SecurityRequirement(securityRequirementEntries(item))
	}
	return source.NewFieldSource(reqs, k, v), true
}
