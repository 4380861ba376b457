// Package node provides a generic, source-location-preserving parse tree for
// YAML 1.2 text (whose JSON subset covers JSON input transparently).
//
// A Node is one of Mapping, Sequence, Scalar, or Alias. Every Node carries a
// [Span] recording the line and column at which it began in the original
// text, so that later stages (the typed AST builder, the traversal engine)
// can report locations without re-scanning source text. Parse does not
// record byte offsets: Span.Offset is always 0.
//
// Anchors and aliases are resolved to a shared pointer to the anchor's node,
// so an aliased Node reports the span of its original definition, never the
// alias site.
package node
