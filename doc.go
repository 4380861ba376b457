// Package oasast provides a source-fidelity typed AST for OpenAPI Specification
// (OAS) documents, versions 3.0.x and 3.1.x, in YAML or JSON form.
//
// oasast is built from leaves to root across the following cooperating packages:
//
//   - node: a generic YAML parse tree with line/column spans for every node.
//   - source: zero-cost wrapper types (KeySource, ValueSource, FieldSource)
//     that bind a value to the node it was parsed from.
//   - oasver: a fast, regex-based OpenAPI/Swagger version detector.
//   - uriref: classification of embedded URIs (absolute HTTP, file, fragment-only,
//     scheme-relative, root-relative, relative) and relative-reference resolution.
//   - ast30 / ast31: the typed object graph for OAS 3.0.x and OAS 3.1.x respectively.
//     The two packages are structurally parallel but deliberately distinct types,
//     matching the two specification's divergent schema/reference semantics.
//   - astbuilder: a version-dispatched factory that walks a node.Node mapping and
//     constructs either an *ast30.OpenAPI or an *ast31.OpenAPI, preserving
//     malformed sub-trees verbatim instead of discarding them.
//   - traverse: a visitor-based traversal engine over the typed AST, with
//     enter/leave hooks, per-visitor skip/break control flow, composable
//     merged visitors, and RFC 6901 / RFC 9535 path formatting.
//   - rewrite: a pass over the untyped (map[string]any) document that finds and
//     rewrites relative references against a base URI.
//
// # Quick start
//
//	n, err := node.Parse(data, "openapi.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	doc, err := astbuilder.Build(n, "openapi.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	switch d := doc.(type) {
//	case *ast31.OpenAPI:
//	    fmt.Println(d.OpenAPI.Value)
//	case *ast30.OpenAPI:
//	    fmt.Println(d.OpenAPI.Value)
//	}
//
// # Scope
//
// oasast covers exactly three tightly coupled subsystems: the typed AST builder,
// the traversal engine, and the URI classification/rewriting engine. It does not
// provide a CLI, a plugin registry, document fetching, semantic validation against
// JSON Schema, or YAML-with-comments round-trip emission; those are external
// collaborators layered on top of the read interface this module exposes.
package oasast
