// Package rewrite locates and rewrites URI-bearing fields in a parsed-but-
// untyped OpenAPI document (nested map[string]any / []any / scalars, the
// shape produced by an ordinary YAML/JSON decode — not the typed AST from
// ast30/ast31). It never builds or consults a typed tree: the finder and
// rewriter both walk the generic structure directly, recognizing reference
// fields by key name alone.
package rewrite
