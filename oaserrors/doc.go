// Package oaserrors provides structured error types for the oasast library.
//
// Import path: github.com/oasgraph/oasast/oaserrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between the error kinds the core can raise.
//
// # Error Types
//
//   - [YamlParseError]: malformed YAML/JSON input; no AST is produced.
//   - [UnsupportedVersionError]: the document's openapi/swagger field does not
//     match a pattern the version detector recognizes.
//   - [UriResolutionError]: resolve_to_absolute failed (multi-line input,
//     malformed HTTP URL, mismatched scheme-relative/Windows-path combinations).
//   - [VisitorError]: wraps an error returned by visitor code during
//     traversal; the engine guarantees no further dispatch once this is returned.
//     A panic in visitor code is not recovered and is not converted to this type.
//
// Field-shape mismatches inside an otherwise parseable document are
// deliberately NOT represented as an error type here: the AST builder
// preserves that data in place (see the source package's invalid-preserving
// wrappers) rather than raising.
//
// # Sentinel Errors
//
//   - [ErrYamlParse]: matches any [YamlParseError]
//   - [ErrUnsupportedVersion]: matches any [UnsupportedVersionError]
//   - [ErrUriResolution]: matches any [UriResolutionError]
//   - [ErrVisitor]: matches any [VisitorError]
//
// # Usage
//
//	doc, err := astbuilder.Build(n, path)
//	var uv *oaserrors.UnsupportedVersionError
//	if errors.As(err, &uv) {
//	    fmt.Printf("unrecognized version token: %s\n", uv.Token)
//	}
package oaserrors
