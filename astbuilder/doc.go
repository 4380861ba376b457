// Package astbuilder implements the version-dispatched AST Builder: it takes
// a generic node.Node mapping (as produced by package node) and constructs
// either an *ast30.OpenAPI or an *ast31.OpenAPI, choosing the typed-AST
// package via oasver.ClassifySeries on the document's openapi field.
//
// Every build_<Type> function follows the same algorithm: a non-mapping
// source node yields a zero-value T carrying an Invalid marker instead of
// failing outright; mapping entries are partitioned into extensions (x-*
// keys), recognized fixed fields, and discarded unknown keys; fixed fields
// whose source shape does not match the expected one are preserved via the
// Invalid-marked FieldSource rather than coerced or dropped.
package astbuilder
