package uriref

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/oasgraph/oasast/oaserrors"
)

// ResolveToAbsolute resolves value to an absolute form against an optional
// base. baseURI is nil when no base was supplied. The empty string is a
// valid, non-nil value meaning "the current directory".
//
// Absolute HTTP URLs are normalized (dot segments collapsed, empty path
// becomes "/"). File URIs and filesystem-path-like values resolve to an
// absolute platform path. Scheme-relative values require an HTTP(S) base.
// Values carrying an explicit non-http/file scheme (mailto:, data:, …) pass
// through unchanged.
func ResolveToAbsolute(value string, baseURI *string) (string, error) {
	if strings.ContainsAny(value, "\n\r") {
		return "", &oaserrors.UriResolutionError{Value: value, Message: "multi-line input is not a valid reference"}
	}

	kind := Classify(value)
	if kind == RelativePath {
		if m := schemePattern.FindStringSubmatch(value); m != nil {
			if s := strings.ToLower(m[1]); s == "http" || s == "https" {
				return "", &oaserrors.UriResolutionError{Value: value, Message: "malformed HTTP URL: missing host"}
			}
		}
	}
	var baseKind Kind
	if baseURI != nil {
		baseKind = Classify(*baseURI)
	}

	switch kind {
	case AbsoluteHTTP:
		return normalizeHTTPURL(value)

	case FileURI:
		return fileURIToPath(value)

	case OtherAbsolute:
		return value, nil

	case FragmentOnly:
		return value, nil

	case SchemeRelative:
		if baseURI == nil {
			return "", &oaserrors.UriResolutionError{Value: value, Message: "scheme-relative reference requires a base URI"}
		}
		if baseKind != AbsoluteHTTP {
			return "", &oaserrors.UriResolutionError{Value: value, Base: *baseURI, Message: "scheme-relative reference requires an HTTP(S) base"}
		}
		bu, err := url.Parse(*baseURI)
		if err != nil {
			return "", &oaserrors.UriResolutionError{Value: value, Base: *baseURI, Message: "malformed base URL"}
		}
		return normalizeHTTPURL(bu.Scheme + ":" + value)

	case WindowsDrivePath, WindowsUNC:
		if baseURI != nil && baseKind == AbsoluteHTTP {
			return "", &oaserrors.UriResolutionError{Value: value, Base: *baseURI, Message: "Windows path cannot be resolved against an HTTP base"}
		}
		return filepath.Abs(filepath.FromSlash(value))

	case AbsolutePosixPath:
		if baseURI != nil && baseKind == AbsoluteHTTP {
			return joinHTTPPath(*baseURI, value)
		}
		return filepath.Abs(filepath.FromSlash(value))

	case RelativePath, Empty:
		v := value
		if kind == Empty {
			v = "."
		}
		if baseURI == nil {
			return filepath.Abs(filepath.FromSlash(v))
		}
		if baseKind == AbsoluteHTTP {
			return joinHTTPPath(*baseURI, v)
		}
		baseDir := *baseURI
		if baseKind == FileURI {
			baseDir = strings.TrimPrefix(baseDir, "file://")
		}
		baseDir = filepath.Dir(filepath.FromSlash(baseDir))
		return filepath.Abs(filepath.Join(baseDir, filepath.FromSlash(v)))

	default:
		return "", &oaserrors.UriResolutionError{Value: value, Message: "unclassifiable reference"}
	}
}

func normalizeHTTPURL(value string) (string, error) {
	u, err := url.Parse(value)
	if err != nil || u.Host == "" {
		return "", &oaserrors.UriResolutionError{Value: value, Message: "malformed HTTP URL: missing host"}
	}
	u.Path = cleanURLPath(u.Path)
	return u.String(), nil
}

func joinHTTPPath(base, ref string) (string, error) {
	bu, err := url.Parse(base)
	if err != nil || bu.Host == "" {
		return "", &oaserrors.UriResolutionError{Value: ref, Base: base, Message: "malformed HTTP base URL"}
	}
	ru, err := url.Parse(ref)
	if err != nil {
		return "", &oaserrors.UriResolutionError{Value: ref, Base: base, Message: "malformed reference"}
	}
	resolved := bu.ResolveReference(ru)
	resolved.Path = cleanURLPath(resolved.Path)
	return resolved.String(), nil
}

// cleanURLPath collapses "." and ".." segments per RFC 3986 §5.2.4 and maps
// an empty path to "/".
func cleanURLPath(p string) string {
	if p == "" {
		return "/"
	}
	segments := strings.Split(p, "/")
	out := make([]string, 0, len(segments))
	for _, seg := range segments {
		switch seg {
		case ".":
			continue
		case "..":
			if len(out) > 1 {
				out = out[:len(out)-1]
			}
		default:
			out = append(out, seg)
		}
	}
	cleaned := strings.Join(out, "/")
	if cleaned == "" {
		return "/"
	}
	return cleaned
}

func fileURIToPath(value string) (string, error) {
	rest := strings.TrimPrefix(value, "file://")
	if rest == "" {
		return "", &oaserrors.UriResolutionError{Value: value, Message: "file URI has no path"}
	}
	return filepath.Abs(filepath.FromSlash(rest))
}
