// Package uriref classifies single-line reference strings found in OpenAPI
// documents (absolute HTTP(S) URLs, file URIs, scheme-relative references,
// fragment-only references, filesystem paths) and resolves them to absolute
// form against an optional base. It performs no I/O: classification and
// resolution are pure string/path operations over net/url and path/filepath.
package uriref
