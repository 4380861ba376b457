package source

import (
	"testing"

	"github.com/oasgraph/oasast/node"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldSource_ValidEquality(t *testing.T) {
	n, err := node.Parse([]byte("title: Pet Store\n"), "")
	require.NoError(t, err)
	v, _ := n.Get("title")

	a := NewFieldSource("Pet Store", n.Entries[0].Key, v)
	b := NewFieldSource("Pet Store", nil, &node.Node{Kind: node.Scalar, Value: "Pet Store"})
	assert.True(t, a.Equal(b), "location differs but logical value is equal")
	assert.True(t, a.IsValid())
}

func TestFieldSource_InvalidPreservesRaw(t *testing.T) {
	n, err := node.Parse([]byte("title: 42\n"), "")
	require.NoError(t, err)
	v, _ := n.Get("title")

	f := NewInvalidFieldSource[string](int64(42), n.Entries[0].Key, v)
	assert.False(t, f.IsValid())
	assert.Equal(t, "", f.Value, "zero value, not a coerced default")
	assert.Equal(t, int64(42), f.Invalid.Raw)
}

func TestFieldSource_IsPresent(t *testing.T) {
	var absent FieldSource[string]
	assert.False(t, absent.IsPresent())

	present := NewFieldSource("x", nil, &node.Node{Kind: node.Scalar, Value: "x"})
	assert.True(t, present.IsPresent())
}

func TestExtensions_PreservesInsertionOrder(t *testing.T) {
	n, err := node.Parse([]byte("x-b: 1\nx-a: 2\nx-z: 3\n"), "")
	require.NoError(t, err)

	var ext Extensions
	for _, e := range n.Entries {
		ext = append(ext, ExtensionEntry{
			Key:   NewKeySource(e.Key.Value, e.Key),
			Value: NewValueSource[any](e.Value.Value, e.Value),
		})
	}

	assert.Equal(t, []string{"x-b", "x-a", "x-z"}, ext.Keys())

	v, ok := ext.Get("x-a")
	require.True(t, ok)
	assert.Equal(t, "2", v.Value)
}
