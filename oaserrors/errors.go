package oaserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is(). These allow quick checks without
// type assertions.
var (
	// ErrYamlParse indicates a YAML/JSON parsing failure occurred.
	ErrYamlParse = errors.New("yaml parse error")

	// ErrUnsupportedVersion indicates the document's version token did not
	// match any supported OpenAPI series.
	ErrUnsupportedVersion = errors.New("unsupported openapi version")

	// ErrUriResolution indicates resolve_to_absolute could not produce an
	// absolute reference for the given value and base.
	ErrUriResolution = errors.New("uri resolution error")

	// ErrVisitor indicates a traversal visitor hook returned an error.
	ErrVisitor = errors.New("visitor error")
)

// YamlParseError represents a failure to parse YAML or JSON source text into
// a node tree. No partial AST is produced when this is raised.
type YamlParseError struct {
	// Source is the file path or source identifier, empty for in-memory input.
	Source string
	// Line is the 1-based line number of the offending span (0 if unknown).
	Line int
	// Column is the 1-based column number of the offending span (0 if unknown).
	Column int
	// Message describes the parsing failure.
	Message string
	// Cause is the underlying error from the YAML decoder, if any.
	Cause error
}

// Error returns a human-readable error message.
func (e *YamlParseError) Error() string {
	msg := "yaml parse error"
	if e.Source != "" {
		msg += " in " + e.Source
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *YamlParseError) Unwrap() error { return e.Cause }

// Is reports whether target matches this error type.
func (e *YamlParseError) Is(target error) bool { return target == ErrYamlParse }

// UnsupportedVersionError is raised by the AST builder dispatcher when
// get_version cannot classify the document as a supported OAS 3.0.x or
// 3.1.x release.
type UnsupportedVersionError struct {
	// Token is the raw string found at the openapi/swagger key, if any.
	Token string
	// Source is the file path or source identifier, empty for in-memory input.
	Source string
}

// Error returns a human-readable error message naming the detected token.
func (e *UnsupportedVersionError) Error() string {
	msg := "unsupported openapi version"
	if e.Token != "" {
		msg += fmt.Sprintf(": %q", e.Token)
	} else {
		msg += ": no openapi or swagger field found"
	}
	if e.Source != "" {
		msg += " in " + e.Source
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *UnsupportedVersionError) Is(target error) bool { return target == ErrUnsupportedVersion }

// UriResolutionError represents a failure in resolve_to_absolute. The
// offending value is always included so the caller can report it without
// re-deriving it from the call site.
type UriResolutionError struct {
	// Value is the string that could not be resolved.
	Value string
	// Base is the base URI or path passed to the resolver, if any.
	Base string
	// Message describes why resolution failed.
	Message string
}

// Error returns a human-readable error message citing the offending value.
func (e *UriResolutionError) Error() string {
	msg := fmt.Sprintf("uri resolution error: cannot resolve %q", e.Value)
	if e.Base != "" {
		msg += fmt.Sprintf(" against base %q", e.Base)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *UriResolutionError) Is(target error) bool { return target == ErrUriResolution }

// VisitorError wraps an error raised by visitor code during traversal. The
// traversal engine guarantees that no further hooks fire on any node after
// this propagates out of Walk/Traverse.
type VisitorError struct {
	// Path is the RFC 6901 JSON Pointer of the node being visited when the
	// error occurred.
	Path string
	// Cause is the error the visitor hook returned.
	Cause error
}

// Error returns a human-readable error message.
func (e *VisitorError) Error() string {
	msg := "visitor error"
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *VisitorError) Unwrap() error { return e.Cause }

// Is reports whether target matches this error type.
func (e *VisitorError) Is(target error) bool { return target == ErrVisitor }
