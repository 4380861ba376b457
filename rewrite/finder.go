package rewrite

import "github.com/oasgraph/oasast/uriref"

// refKeys is the set of field names whose string value may carry a URI.
var refKeys = map[string]bool{
	"$ref":             true,
	"url":              true,
	"externalValue":    true,
	"authorizationUrl": true,
	"tokenUrl":         true,
	"refreshUrl":       true,
	"openIdConnectUrl": true,
	"termsOfService":   true,
}

// Found is one URI-bearing field discovered by a walk.
type Found struct {
	// Path is the chain of map keys and slice indices from the document root
	// down to the field, e.g. []any{"paths", "/pets", "get", "$ref"}.
	Path []any
	// Key is the field name the value was found under.
	Key string
	// Value is the string found at Key.
	Value string
}

func isRefKey(key string, refsOnly bool) bool {
	if refsOnly {
		return key == "$ref"
	}
	return refKeys[key]
}

// FindRelativeURLs walks document depth-first and collects every string
// value at a recognized URI-bearing key whose uriref.Classify result is
// relative, root-relative, scheme-relative, a Windows drive path, or a
// Windows UNC path. When refsOnly is true, only
// "$ref" fields are considered.
func FindRelativeURLs(document any, refsOnly bool) []Found {
	var out []Found
	walkFind(document, nil, refsOnly, func(f Found) {
		switch uriref.Classify(f.Value) {
		case uriref.RelativePath, uriref.AbsolutePosixPath, uriref.SchemeRelative,
			uriref.WindowsDrivePath, uriref.WindowsUNC:
			out = append(out, f)
		}
	})
	return out
}

// FindAbsoluteHTTPURLs walks document depth-first and collects every string
// value at a recognized URI-bearing key that classifies as an absolute HTTP
// or HTTPS URL. Other absolute schemes (file:, ftp:, mailto:, data:, ssh:)
// and scheme-relative references are excluded.
func FindAbsoluteHTTPURLs(document any, refsOnly bool) []Found {
	var out []Found
	walkFind(document, nil, refsOnly, func(f Found) {
		if uriref.Classify(f.Value) == uriref.AbsoluteHTTP {
			out = append(out, f)
		}
	})
	return out
}

func walkFind(node any, path []any, refsOnly bool, emit func(Found)) {
	switch v := node.(type) {
	case map[string]any:
		for key, child := range v {
			childPath := append(append([]any{}, path...), key)
			if isRefKey(key, refsOnly) {
				if s, ok := child.(string); ok {
					if trimmedNonEmpty(s) {
						emit(Found{Path: childPath, Key: key, Value: s})
					}
					continue
				}
				// Non-string value at a ref-bearing key is silently ignored;
				// it still may hold nested structure worth descending into
				// (e.g. a map shaped like {"$ref": {...}} from malformed
				// input), so fall through to the generic recursion below.
			}
			walkFind(child, childPath, refsOnly, emit)
		}
	case []any:
		for i, child := range v {
			childPath := append(append([]any{}, path...), i)
			walkFind(child, childPath, refsOnly, emit)
		}
	}
}

func trimmedNonEmpty(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return true
		}
	}
	return false
}
