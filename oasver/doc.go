// Package oasver implements the fast, regex-based pre-scan that classifies an
// OpenAPI/Swagger document as 2.0, 3.0.x, 3.1.x, 3.2.x, or unknown, without
// building a typed AST. It accepts raw text, JSON text, or an already-parsed
// node.Node mapping.
package oasver
