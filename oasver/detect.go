package oasver

import (
	"bufio"
	"bytes"
	"regexp"
	"strings"

	"github.com/oasgraph/oasast/node"
	json "github.com/segmentio/encoding/json"
)

// lineToken matches an "openapi:" or "swagger:" assignment on its own line
// (leading whitespace allowed, so indented keys match too), tolerating single or double quotes around the value and a
// trailing same-line comment. Matching stops at the quote/whitespace/comment
// boundary, so trailing content after the version ends the match rather than
// becoming part of the captured token.
var lineToken = regexp.MustCompile(`^\s*(openapi|swagger)\s*:\s*['"]?([^'"\s#]+)['"]?\s*(#.*)?$`)

// GetVersionFromText scans text line by line for an openapi: or
// swagger: assignment and returns its raw string value. It does not validate
// the value against any version pattern; use ClassifySeries for that.
func GetVersionFromText(text string) (string, bool) {
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		m := lineToken.FindStringSubmatch(scanner.Text())
		if m != nil {
			return m[2], true
		}
	}
	return "", false
}

// GetVersionFromJSON parses data as JSON and extracts the "openapi" or
// "swagger" top-level string field, without validating it against any
// version pattern.
func GetVersionFromJSON(data []byte) (string, bool) {
	var doc map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(data), &doc); err != nil {
		return "", false
	}
	return versionFromMap(doc)
}

// GetVersionFromMapping extracts the "openapi" or "swagger" field from an
// already-parsed node.Node mapping, returning its string value if the field
// is a string scalar. Non-string values (including numbers like `openapi: 3`)
// return ok=false; GetVersionFromText, by contrast, returns the unquoted
// token "3" for that line.
func GetVersionFromMapping(n *node.Node) (string, bool) {
	if !n.IsMapping() {
		return "", false
	}
	if v, ok := stringField(n, "openapi"); ok {
		return v, true
	}
	if v, ok := stringField(n, "swagger"); ok {
		return v, true
	}
	return "", false
}

func stringField(n *node.Node, key string) (string, bool) {
	v, ok := n.Get(key)
	if !ok || !v.IsScalar() || v.Tag != "!!str" {
		return "", false
	}
	return v.Value, true
}

func versionFromMap(doc map[string]any) (string, bool) {
	for _, key := range [...]string{"openapi", "swagger"} {
		if v, ok := doc[key]; ok {
			if s, ok := v.(string); ok {
				return s, true
			}
			return "", false
		}
	}
	return "", false
}
