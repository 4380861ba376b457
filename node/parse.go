package node

import (
	"bytes"
	"io"

	"github.com/oasgraph/oasast/oaserrors"
	"go.yaml.in/yaml/v4"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Parse parses a UTF-8 YAML 1.2 (or JSON, its subset) document from bytes and
// returns its root Node. A UTF-8/UTF-16 byte-order mark, if present, is
// stripped before decoding.
//
// sourcePath is used only for error messages; it has no bearing on parsing.
func Parse(data []byte, sourcePath string) (*Node, error) {
	decoded, err := stripBOM(data)
	if err != nil {
		return nil, &oaserrors.YamlParseError{Source: sourcePath, Message: "invalid encoding", Cause: err}
	}

	var y yaml.Node
	if err := yaml.Unmarshal(decoded, &y); err != nil {
		return nil, yamlParseError(sourcePath, err)
	}
	if len(y.Content) == 0 {
		// Empty document: treat as a null scalar at the start of the file.
		return &Node{Kind: Scalar, Tag: tagNull, Span: Span{Line: 1, Column: 1}}, nil
	}

	return wrap(&y, make(map[*yaml.Node]*Node)), nil
}

// ParseReader reads all of r and parses it as a YAML/JSON document.
func ParseReader(r io.Reader, sourcePath string) (*Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &oaserrors.YamlParseError{Source: sourcePath, Message: "read failed", Cause: err}
	}
	return Parse(data, sourcePath)
}

// stripBOM removes a leading UTF-8 or UTF-16 byte-order mark, transcoding
// UTF-16 input to UTF-8 in the process. Input without a BOM passes through
// unchanged.
func stripBOM(data []byte) ([]byte, error) {
	if !bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}) &&
		!bytes.HasPrefix(data, []byte{0xFE, 0xFF}) &&
		!bytes.HasPrefix(data, []byte{0xFF, 0xFE}) {
		return data, nil
	}
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// yamlParseError wraps a decoder failure. Line and Column are left at zero;
// go.yaml.in/yaml/v4 reports the position only as part of its error text,
// which is kept unparsed in Message and Cause.
func yamlParseError(sourcePath string, cause error) error {
	return &oaserrors.YamlParseError{
		Source:  sourcePath,
		Message: cause.Error(),
		Cause:   cause,
	}
}
