// Package ast31 is the typed AST for OpenAPI 3.1.x documents. It mirrors
// ast30's structure but diverges wherever 3.1 actually changed shape: Schema
// absorbs $ref directly (full JSON Schema 2020-12 vocabulary, no disjoint
// Reference type for schema positions), paths is optional, webhooks and
// components.pathItems are new, Info and License each gained a field, and
// Reference gained two (summary and description).
package ast31
