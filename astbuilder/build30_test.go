package astbuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oasgraph/oasast/node"
)

func parse30(t *testing.T, text string) *node.Node {
	t.Helper()
	n, err := node.Parse([]byte(text), "test.yaml")
	require.NoError(t, err)
	return n
}

const petstore30 = `
openapi: 3.0.3
info:
  title: Petstore
  version: 1.0.0
paths:
  /pets/{petId}:
    get:
      operationId: getPet
      parameters:
        - name: petId
          in: path
          required: true
          schema:
            type: string
      responses:
        '200':
          description: ok
          content:
            application/json:
              schema:
                $ref: '#/components/schemas/Pet'
        default:
          description: error
components:
  schemas:
    Pet:
      type: object
      properties:
        id:
          type: integer
        name:
          type: string
      required: [id, name]
`

func TestBuild30_Petstore(t *testing.T) {
	n := parse30(t, petstore30)
	doc := Build30(n)
	require.Nil(t, doc.Invalid)
	assert.Equal(t, "1.0.0", doc.Info.Value.Version.Value)

	require.Len(t, doc.Paths.Value.Items, 1)
	pathEntry := doc.Paths.Value.Items[0]
	assert.Equal(t, "/pets/{petId}", pathEntry.Key.Value)

	get := pathEntry.Value.Get.Value
	require.NotNil(t, get)
	assert.Equal(t, "getPet", get.OperationID.Value)

	require.Len(t, get.Responses.Value.StatusCodes, 1)
	assert.Equal(t, "200", get.Responses.Value.StatusCodes[0].Key.Value)
	require.NotNil(t, get.Responses.Value.Default.Value)

	schemaRef, ok := doc.Components.Value.Schemas.Value.Get("Pet")
	require.True(t, ok)
	assert.False(t, schemaRef.IsReference())
	assert.Equal(t, "id", schemaRef.Value.Properties.Value[0].Key.Value)
}

func TestBuild30_InvalidRootPreserved(t *testing.T) {
	n := parse30(t, "- just\n- a\n- list\n")
	doc := Build30(n)
	require.NotNil(t, doc.Invalid)
	assert.Equal(t, []any{"just", "a", "list"}, doc.Invalid.Raw)
}

func TestBuild30_StatusCodeFilteringDropsJunkKeys(t *testing.T) {
	n := parse30(t, `
description: container
'200':
  description: ok
'999':
  description: not a status code
x-foo: bar
`)
	responses := buildResponses30(n)
	require.Len(t, responses.StatusCodes, 1)
	assert.Equal(t, "200", responses.StatusCodes[0].Key.Value)
	require.Len(t, responses.Extensions, 1)
	assert.Equal(t, "x-foo", responses.Extensions[0].Key.Value)
}

func TestBuild30_ScalarTypeMismatchPreservesRaw(t *testing.T) {
	n := parse30(t, `
title: 12345
version: 1.0.0
`)
	info := buildInfo30(n)
	assert.False(t, info.Title.IsValid())
	assert.Equal(t, int64(12345), info.Title.Invalid.Raw)
	assert.Equal(t, "", info.Title.Value)
	assert.True(t, info.Version.IsValid())
	assert.Equal(t, "1.0.0", info.Version.Value)
}

func TestBuild30_ReferenceDiscrimination(t *testing.T) {
	n := parse30(t, `$ref: '#/components/schemas/Pet'`)
	ref := buildSchemaRef30(n)
	assert.True(t, ref.IsReference())
	assert.Equal(t, "#/components/schemas/Pet", ref.Ref.Ref.Value)

	n2 := parse30(t, `type: string`)
	ref2 := buildSchemaRef30(n2)
	assert.False(t, ref2.IsReference())
	assert.Equal(t, "string", ref2.Value.Type.Value)
}

func TestBuild30_PathKeyKeptRegardlessOfTemplateShape(t *testing.T) {
	n := parse30(t, `
/pets/{:
  get:
    operationId: broken
`)
	paths := buildPaths30(n)
	require.Len(t, paths.Items, 1)
	assert.Equal(t, "/pets/{", paths.Items[0].Key.Value)
	assert.Equal(t, "broken", paths.Items[0].Value.Get.Value.OperationID.Value)
}

func TestBuild30_ExtensionsCollected(t *testing.T) {
	n := parse30(t, `
name: widget
x-internal-id: 42
x-team: platform
`)
	c := buildContact30(n)
	require.Len(t, c.Extensions, 2)
	assert.Equal(t, "x-internal-id", c.Extensions[0].Key.Value)
	assert.Equal(t, "x-team", c.Extensions[1].Key.Value)
}
