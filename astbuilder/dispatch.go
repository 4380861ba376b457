package astbuilder

import (
	"github.com/oasgraph/oasast/node"
	"github.com/oasgraph/oasast/oaserrors"
	"github.com/oasgraph/oasast/oasver"
)

// Build dispatches a parsed document root to the version-specific builder,
// classifying the document's declared openapi field first. sourcePath is
// used only to annotate UnsupportedVersionError; pass "" for in-memory
// input.
//
// The returned value is either *ast30.OpenAPI or *ast31.OpenAPI; callers
// distinguish the two with a type switch.
func Build(n *node.Node, sourcePath string) (any, error) {
	token, _ := oasver.GetVersionFromMapping(n)
	switch oasver.ClassifySeries(token) {
	case oasver.OAS30:
		return Build30(n), nil
	case oasver.OAS31:
		return Build31(n), nil
	default:
		return nil, &oaserrors.UnsupportedVersionError{Token: token, Source: sourcePath}
	}
}
