package oasver

import (
	"testing"

	"github.com/oasgraph/oasast/node"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetVersionFromText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{"plain", "openapi: 3.0.4\ninfo: {}\n", "3.0.4", true},
		{"quoted", "swagger: '2.0'\n", "2.0", true},
		{"double quoted", `openapi: "3.1.0"` + "\n", "3.1.0", true},
		{"trailing comment", "openapi: 3.1.0 # latest\n", "3.1.0", true},
		{"indented", "  openapi: 3.0.0\n", "3.0.0", true},
		{"no match", "title: x\n", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := GetVersionFromText(tt.text)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetVersionFromJSON(t *testing.T) {
	v, ok := GetVersionFromJSON([]byte(`{"openapi":"3.1.2","info":{}}`))
	require.True(t, ok)
	assert.Equal(t, "3.1.2", v)

	_, ok = GetVersionFromJSON([]byte(`not json`))
	assert.False(t, ok)
}

func TestGetVersionFromMapping(t *testing.T) {
	n, err := node.Parse([]byte("openapi: 3.0.4\ninfo: {}\n"), "")
	require.NoError(t, err)
	v, ok := GetVersionFromMapping(n)
	require.True(t, ok)
	assert.Equal(t, "3.0.4", v)

	n2, err := node.Parse([]byte("openapi: 3\n"), "")
	require.NoError(t, err)
	_, ok = GetVersionFromMapping(n2)
	assert.False(t, ok, "numeric scalar is not a string field")
}

func TestClassifySeries(t *testing.T) {
	tests := []struct {
		version string
		want    Series
	}{
		{"2.0", Swagger20},
		{"3.0.0", OAS30},
		{"3.0.4", OAS30},
		{"3.0.01", Unknown}, // leading zero rejected
		{"3.1.0", OAS31},
		{"3.1.2", OAS31},
		{"3.2.0", OAS32},
		{"3.0.0-rc1", Unknown},
		{"4.0.0", Unknown},
		{"", Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifySeries(tt.version))
		})
	}
}

func TestVersionExclusivity(t *testing.T) {
	// Property 4: at most one of IsOpenAPI20/30/31/32 is true for any string.
	candidates := []string{"2.0", "3.0.4", "3.1.2", "3.2.0", "3.0.0-rc1", "garbage", ""}
	for _, v := range candidates {
		count := 0
		if IsOpenAPI20(v) {
			count++
		}
		if IsOpenAPI30(v) {
			count++
		}
		if IsOpenAPI31(v) {
			count++
		}
		if IsOpenAPI32(v) {
			count++
		}
		assert.LessOrEqual(t, count, 1, "version %q matched more than one series", v)
	}
}

func TestIsOpenAPI3x(t *testing.T) {
	assert.True(t, IsOpenAPI3x("3.0.4"))
	assert.True(t, IsOpenAPI3x("3.1.0"))
	assert.False(t, IsOpenAPI3x("2.0"))
	assert.False(t, IsOpenAPI3x("3.0.01"))
}
