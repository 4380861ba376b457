package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpan_IsKnown(t *testing.T) {
	tests := []struct {
		name string
		span Span
		want bool
	}{
		{"known", Span{Line: 1, Column: 1}, true},
		{"zero line", Span{Line: 0, Column: 1}, false},
		{"zero value", Span{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.span.IsKnown())
		})
	}
}

func TestParse_MappingPreservesOrderAndSpans(t *testing.T) {
	src := []byte("openapi: 3.0.4\ninfo:\n  title: T\n  version: 1\npaths: {}\n")
	n, err := Parse(src, "api.yaml")
	require.NoError(t, err)
	require.True(t, n.IsMapping())

	require.Len(t, n.Entries, 3)
	assert.Equal(t, "openapi", n.Entries[0].Key.Value)
	assert.Equal(t, "info", n.Entries[1].Key.Value)
	assert.Equal(t, "paths", n.Entries[2].Key.Value)

	openapiVal, ok := n.Get("openapi")
	require.True(t, ok)
	assert.Equal(t, "3.0.4", openapiVal.Value)
	assert.Equal(t, "!!str", openapiVal.Tag)
	assert.True(t, openapiVal.Span.IsKnown())
	assert.Equal(t, 1, openapiVal.Span.Line)

	info, ok := n.Get("info")
	require.True(t, ok)
	require.True(t, info.IsMapping())
	versionVal, ok := info.Get("version")
	require.True(t, ok)
	assert.Equal(t, "!!int", versionVal.Tag)
	v, ok := versionVal.ScalarValue()
	require.True(t, ok)
	assert.Equal(t, int64(1), v)
}

func TestParse_DistinguishesStringFromFloatVersion(t *testing.T) {
	n, err := Parse([]byte(`swagger: "2.0"`), "")
	require.NoError(t, err)
	v, ok := n.Get("swagger")
	require.True(t, ok)
	assert.Equal(t, "!!str", v.Tag)

	n2, err := Parse([]byte(`swagger: 2.0`), "")
	require.NoError(t, err)
	v2, ok := n2.Get("swagger")
	require.True(t, ok)
	assert.Equal(t, "!!float", v2.Tag)
}

func TestParse_Sequence(t *testing.T) {
	n, err := Parse([]byte("- a\n- b\n- c\n"), "")
	require.NoError(t, err)
	require.True(t, n.IsSequence())
	require.Len(t, n.Items, 3)
	assert.Equal(t, "b", n.Items[1].Value)
}

func TestParse_AnchorAliasSharesDefinitionSpan(t *testing.T) {
	src := []byte("base: &b\n  name: shared\nuse:\n  extra: 1\n  <<: *b\n")
	n, err := Parse(src, "")
	require.NoError(t, err)

	base, ok := n.Get("base")
	require.True(t, ok)

	use, ok := n.Get("use")
	require.True(t, ok)
	var aliasTarget *Node
	for _, e := range use.Entries {
		if e.Key.Value == "<<" {
			aliasTarget = e.Value
		}
	}
	require.NotNil(t, aliasTarget)
	assert.Equal(t, base.Span, aliasTarget.Span)
	assert.Same(t, base, aliasTarget)
}

func TestParse_MalformedYamlReturnsYamlParseError(t *testing.T) {
	_, err := Parse([]byte("key: [unterminated"), "broken.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.yaml")
}

func TestParse_StripsUTF8BOM(t *testing.T) {
	src := append([]byte{0xEF, 0xBB, 0xBF}, []byte("openapi: 3.1.0\n")...)
	n, err := Parse(src, "")
	require.NoError(t, err)
	v, ok := n.Get("openapi")
	require.True(t, ok)
	assert.Equal(t, "3.1.0", v.Value)
}

func TestNode_ToAny(t *testing.T) {
	n, err := Parse([]byte("title: Pet Store\ncount: 3\ntags:\n  - a\n  - b\nactive: true\nnote: null\n"), "")
	require.NoError(t, err)
	got := n.ToAny()
	m, ok := got.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Pet Store", m["title"])
	assert.Equal(t, int64(3), m["count"])
	assert.Equal(t, []any{"a", "b"}, m["tags"])
	assert.Equal(t, true, m["active"])
	assert.Nil(t, m["note"])
}

func TestNode_IsNull(t *testing.T) {
	var nilNode *Node
	assert.True(t, nilNode.IsNull())

	n, err := Parse([]byte("key: null\n"), "")
	require.NoError(t, err)
	v, ok := n.Get("key")
	require.True(t, ok)
	assert.True(t, v.IsNull())
}
