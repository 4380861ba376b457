// Package ast30 is the typed AST for OpenAPI 3.0.x documents. Every type
// mirrors a fixed-field object from the OpenAPI 3.0 specification, with each
// field bound to its source node via source.FieldSource so that line/column
// information and invalid-shape data survive alongside the parsed value.
//
// Schema and Reference are disjoint types in 3.0: a $ref at a schema
// position always yields a Reference, never a Schema carrying $ref.
package ast30
