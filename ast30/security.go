package ast30

import (
	"github.com/oasgraph/oasast/node"
	"github.com/oasgraph/oasast/source"
)

// OAuthFlow describes configuration details for a single OAuth2 flow.
type OAuthFlow struct {
	RootNode *node.Node
	Invalid  *source.Invalid

	AuthorizationURL source.FieldSource[string]
	TokenURL         source.FieldSource[string]
	RefreshURL       source.FieldSource[string]
	Scopes           source.FieldSource[source.OrderedMap[string]]

	Extensions source.Extensions
}

// OAuthFlows holds configuration for the supported OAuth2 flows.
type OAuthFlows struct {
	RootNode *node.Node
	Invalid  *source.Invalid

	Implicit          source.FieldSource[*OAuthFlow]
	Password          source.FieldSource[*OAuthFlow]
	ClientCredentials source.FieldSource[*OAuthFlow]
	AuthorizationCode source.FieldSource[*OAuthFlow]

	Extensions source.Extensions
}

// SecurityScheme defines a security scheme that can be used by operations.
type SecurityScheme struct {
	RootNode *node.Node
	Invalid  *source.Invalid

	Type             source.FieldSource[string]
	Description      source.FieldSource[string]
	Name             source.FieldSource[string]
	In               source.FieldSource[string]
	Scheme           source.FieldSource[string]
	BearerFormat     source.FieldSource[string]
	Flows            source.FieldSource[*OAuthFlows]
	OpenIDConnectURL source.FieldSource[string]

	Extensions source.Extensions
}
