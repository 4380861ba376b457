package oaserrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYamlParseError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := &YamlParseError{
			Source:  "openapi.yaml",
			Line:    42,
			Column:  10,
			Message: "mapping values are not allowed here",
			Cause:   cause,
		}
		assert.Equal(t, "yaml parse error in openapi.yaml at line 42, column 10: mapping values are not allowed here: underlying error", err.Error())
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &YamlParseError{}
		assert.Equal(t, "yaml parse error", err.Error())
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &YamlParseError{Cause: cause}
		assert.Equal(t, cause, err.Unwrap())
	})

	t.Run("Unwrap returns nil when no cause", func(t *testing.T) {
		err := &YamlParseError{}
		assert.Nil(t, err.Unwrap())
	})

	t.Run("Is matches ErrYamlParse", func(t *testing.T) {
		err := &YamlParseError{Message: "test"}
		assert.True(t, errors.Is(err, ErrYamlParse))
		assert.False(t, errors.Is(err, ErrUnsupportedVersion))
	})
}

func TestUnsupportedVersionError(t *testing.T) {
	t.Run("names the detected token", func(t *testing.T) {
		err := &UnsupportedVersionError{Token: "4.0.0", Source: "api.yaml"}
		assert.Equal(t, `unsupported openapi version: "4.0.0" in api.yaml`, err.Error())
	})

	t.Run("reports missing field", func(t *testing.T) {
		err := &UnsupportedVersionError{}
		assert.Equal(t, "unsupported openapi version: no openapi or swagger field found", err.Error())
	})

	t.Run("Is matches sentinel", func(t *testing.T) {
		err := &UnsupportedVersionError{Token: "2.0"}
		assert.True(t, errors.Is(err, ErrUnsupportedVersion))
		assert.False(t, errors.Is(err, ErrYamlParse))
	})
}

func TestUriResolutionError(t *testing.T) {
	t.Run("cites the offending value", func(t *testing.T) {
		err := &UriResolutionError{Value: "//host/path", Base: "/tmp", Message: "scheme-relative without URL base"}
		assert.Equal(t, `uri resolution error: cannot resolve "//host/path" against base "/tmp": scheme-relative without URL base`, err.Error())
	})

	t.Run("Is matches sentinel", func(t *testing.T) {
		err := &UriResolutionError{Value: "x\ny"}
		assert.True(t, errors.Is(err, ErrUriResolution))
	})
}

func TestVisitorError(t *testing.T) {
	t.Run("includes path and cause", func(t *testing.T) {
		cause := errors.New("boom")
		err := &VisitorError{Path: "/paths/~1pets/get", Cause: cause}
		assert.Equal(t, "visitor error at /paths/~1pets/get: boom", err.Error())
		assert.Equal(t, cause, err.Unwrap())
	})

	t.Run("Is matches sentinel", func(t *testing.T) {
		err := &VisitorError{Cause: errors.New("x")}
		assert.True(t, errors.Is(err, ErrVisitor))
	})
}

func TestErrorChaining(t *testing.T) {
	t.Run("deeply wrapped UnsupportedVersionError", func(t *testing.T) {
		verErr := &UnsupportedVersionError{Token: "9.9.9"}
		wrapped1 := fmt.Errorf("layer 1: %w", verErr)
		wrapped2 := fmt.Errorf("layer 2: %w", wrapped1)

		assert.True(t, errors.Is(wrapped2, ErrUnsupportedVersion))

		var extracted *UnsupportedVersionError
		require.True(t, errors.As(wrapped2, &extracted))
		assert.Equal(t, "9.9.9", extracted.Token)
	})

	t.Run("error wrapping with Cause reaches root", func(t *testing.T) {
		rootCause := errors.New("eof")
		parseErr := &YamlParseError{Source: "api.yaml", Cause: rootCause}
		wrapped := fmt.Errorf("failed to load: %w", parseErr)

		assert.True(t, errors.Is(wrapped, rootCause))
	})
}
