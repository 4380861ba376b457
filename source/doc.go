// Package source provides the primitive wrapper types that bind parsed
// values to the node.Node they came from: [KeySource], [ValueSource], and
// [FieldSource].
//
// These wrappers are constructed once by the AST builder and never mutated
// afterward. Equality between two wrapped values is structural over Value;
// the bound node is source-location metadata and never participates in
// logical equality (see [FieldSource.Equal]).
//
// Go has no tagged-union return type, so "well-formed T, or raw salvage" is
// represented as a wrapper whose Value holds the zero value of T and whose
// Invalid field is non-nil, rather than as a genuine sum type. Every stage
// downstream of the builder checks Invalid before trusting Value.
package source
