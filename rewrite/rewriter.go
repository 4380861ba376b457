package rewrite

import (
	"net/url"
	"strings"

	"github.com/oasgraph/oasast/uriref"
)

// Options configures RewriteURLsInPlace.
type Options struct {
	// BaseURL is the URL new relative/root-relative/scheme-relative
	// references are resolved against.
	BaseURL string
	// OriginalBaseURL, when set, is the prefix an absolute URL must carry
	// for IncludeAbsoluteURLs rewriting to touch it.
	OriginalBaseURL *string
	// IncludeAbsoluteURLs enables rewriting of absolute HTTP(S) URLs that
	// start with OriginalBaseURL. Relative and scheme-relative references
	// are always eligible regardless of this flag.
	IncludeAbsoluteURLs bool
}

// RewriteURLsInPlace walks document with the same key set FindRelativeURLs
// and FindAbsoluteHTTPURLs use, mutating every eligible string value in
// place, and returns the number of values changed.
//
// Fragment-only references are left untouched. Relative and root-relative
// references resolve against opts.BaseURL. Scheme-relative references
// combine with opts.BaseURL's scheme when it has one, otherwise are left as
// is. Absolute URLs are rewritten only when opts.IncludeAbsoluteURLs is set
// and the value starts with opts.OriginalBaseURL, in which case that prefix
// is replaced with opts.BaseURL.
func RewriteURLsInPlace(document any, opts Options) int {
	changes := 0
	walkRewrite(document, opts, &changes)
	return changes
}

func walkRewrite(node any, opts Options, changes *int) {
	switch v := node.(type) {
	case map[string]any:
		for key, child := range v {
			if isRefKey(key, false) {
				if s, ok := child.(string); ok {
					if trimmedNonEmpty(s) {
						if rewritten, changed := rewriteOne(s, opts); changed {
							v[key] = rewritten
							*changes++
						}
					}
					continue
				}
			}
			walkRewrite(child, opts, changes)
		}
	case []any:
		for _, child := range v {
			walkRewrite(child, opts, changes)
		}
	}
}

func rewriteOne(value string, opts Options) (string, bool) {
	switch uriref.Classify(value) {
	case uriref.FragmentOnly:
		return value, false

	case uriref.RelativePath, uriref.AbsolutePosixPath, uriref.WindowsDrivePath, uriref.WindowsUNC:
		base := opts.BaseURL
		resolved, err := uriref.ResolveToAbsolute(value, &base)
		if err != nil {
			return value, false
		}
		return resolved, resolved != value

	case uriref.SchemeRelative:
		bu, err := url.Parse(opts.BaseURL)
		if err != nil || bu.Scheme == "" {
			return value, false
		}
		combined := bu.Scheme + ":" + value
		return combined, true

	case uriref.AbsoluteHTTP:
		if !opts.IncludeAbsoluteURLs || opts.OriginalBaseURL == nil {
			return value, false
		}
		if !strings.HasPrefix(value, *opts.OriginalBaseURL) {
			return value, false
		}
		replaced := opts.BaseURL + strings.TrimPrefix(value, *opts.OriginalBaseURL)
		return replaced, replaced != value

	default:
		return value, false
	}
}

// SetOrReplaceTopLevelJSONID sets the top-level "$id" field on a 3.1
// document to id, overwriting any prior value. On a 3.0.x document this is a
// no-op unless forceOn30 is set. Documents without a recognizable "openapi"
// string field are left untouched.
func SetOrReplaceTopLevelJSONID(document any, id string, forceOn30 bool) {
	m, ok := document.(map[string]any)
	if !ok {
		return
	}
	version, ok := m["openapi"].(string)
	if !ok {
		return
	}
	switch {
	case strings.HasPrefix(version, "3.1"):
		m["$id"] = id
	case strings.HasPrefix(version, "3.0"):
		if forceOn30 {
			m["$id"] = id
		}
	}
}
