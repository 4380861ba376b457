package astbuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const webhookOnly31 = `
openapi: 3.1.0
info:
  title: Webhook-only API
  summary: no paths, only webhooks
  version: 2.0.0
webhooks:
  newPet:
    post:
      operationId: newPetWebhook
      requestBody:
        content:
          application/json:
            schema:
              $ref: '#/components/schemas/Pet'
      responses:
        '200':
          description: acknowledged
components:
  schemas:
    Pet:
      type: object
      properties:
        id:
          type: integer
      $id: 'https://example.com/schemas/pet'
`

func TestBuild31_WebhooksWithoutPaths(t *testing.T) {
	n := parse30(t, webhookOnly31)
	doc := Build31(n)
	require.Nil(t, doc.Invalid)
	assert.False(t, doc.Paths.IsPresent())
	assert.Equal(t, "no paths, only webhooks", doc.Info.Value.Summary.Value)

	hook, ok := doc.Webhooks.Value.Get("newPet")
	require.True(t, ok)
	assert.Equal(t, "newPetWebhook", hook.Post.Value.OperationID.Value)

	petSchema, ok := doc.Components.Value.Schemas.Value.Get("Pet")
	require.True(t, ok)
	assert.Equal(t, "https://example.com/schemas/pet", petSchema.ID.Value)
}

func TestBuild31_SchemaRefCarriesSiblingKeywords(t *testing.T) {
	n := parse30(t, `
$ref: '#/components/schemas/Base'
description: an override description
`)
	s := buildSchema31(n)
	assert.Equal(t, "#/components/schemas/Base", s.Ref.Value)
	assert.Equal(t, "an override description", s.Description.Value)
}

func TestBuild31_SchemaOrBoolAdditionalProperties(t *testing.T) {
	n := parse30(t, `
type: object
additionalProperties: false
`)
	s := buildSchema31(n)
	require.NotNil(t, s.AdditionalProperties.Value)
	require.NotNil(t, s.AdditionalProperties.Value.Bool)
	assert.False(t, *s.AdditionalProperties.Value.Bool)
}

func TestBuild31_PrefixItemsAndContains(t *testing.T) {
	n := parse30(t, `
type: array
prefixItems:
  - type: string
  - type: integer
contains:
  type: boolean
minContains: 1
`)
	s := buildSchema31(n)
	require.Len(t, s.PrefixItems.Value, 2)
	assert.Equal(t, "string", s.PrefixItems.Value[0].Type.Value)
	assert.Equal(t, "integer", s.PrefixItems.Value[1].Type.Value)
	require.NotNil(t, s.Contains.Value)
	assert.Equal(t, "boolean", s.Contains.Value.Type.Value)
	assert.Equal(t, 1, s.MinContains.Value)
}

func TestBuild31_DependentRequiredAndVocabulary(t *testing.T) {
	n := parse30(t, `
dependentRequired:
  creditCard: [billingAddress]
$vocabulary:
  'https://json-schema.org/draft/2020-12/vocab/core': true
`)
	s := buildSchema31(n)
	dr, ok := s.DependentRequired.Value.Get("creditCard")
	require.True(t, ok)
	assert.Equal(t, []string{"billingAddress"}, dr)
	vocab, ok := s.Vocabulary.Value.Get("https://json-schema.org/draft/2020-12/vocab/core")
	require.True(t, ok)
	assert.True(t, vocab)
}

func TestBuild31_ComponentsPathItems(t *testing.T) {
	n := parse30(t, `
pathItems:
  commonPath:
    get:
      operationId: shared
`)
	c := buildComponents31(n)
	pi, ok := c.PathItems.Value.Get("commonPath")
	require.True(t, ok)
	assert.Equal(t, "shared", pi.Get.Value.OperationID.Value)
}
