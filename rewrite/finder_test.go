package rewrite

import "testing"

func valuesOf(found []Found) []string {
	out := make([]string, len(found))
	for i, f := range found {
		out[i] = f.Value
	}
	return out
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}

func TestFindAbsoluteHTTPURLs_Mixed(t *testing.T) {
	doc := map[string]any{
		"openapi": "3.0.3",
		"info": map[string]any{
			"title":          "Test",
			"version":        "1.0.0",
			"contact":        map[string]any{"url": "https://example.com/contact"},
			"termsOfService": "http://example.com/terms",
		},
		"externalDocs": map[string]any{"url": "./docs/api.html"},
		"paths": map[string]any{
			"/test": map[string]any{
				"get": map[string]any{
					"responses": map[string]any{
						"200": map[string]any{
							"content": map[string]any{
								"application/json": map[string]any{
									"schema": map[string]any{"$ref": "#/components/schemas/User"},
								},
							},
						},
						"404": map[string]any{"$ref": "./common.json#/NotFound"},
					},
				},
			},
		},
		"components": map[string]any{
			"examples": map[string]any{
				"example1": map[string]any{"externalValue": "https://api.example.com/examples/test.json"},
			},
		},
	}

	found := FindAbsoluteHTTPURLs(doc, false)
	if len(found) != 3 {
		t.Fatalf("got %d absolute URLs, want 3: %v", len(found), found)
	}
	values := valuesOf(found)
	for _, want := range []string{"https://example.com/contact", "http://example.com/terms", "https://api.example.com/examples/test.json"} {
		if !contains(values, want) {
			t.Fatalf("missing %q in %v", want, values)
		}
	}
	for _, excluded := range []string{"./docs/api.html", "#/components/schemas/User", "./common.json#/NotFound"} {
		if contains(values, excluded) {
			t.Fatalf("should not include %q, got %v", excluded, values)
		}
	}
}

func TestFindAbsoluteHTTPURLs_IgnoresNonHTTPAndSchemeRelative(t *testing.T) {
	doc := map[string]any{
		"info": map[string]any{
			"contact": map[string]any{"url": "mailto:ops@example.com"},
			"license": map[string]any{"url": "file:///opt/docs/license.html"},
		},
		"externalDocs": map[string]any{"url": "//cdn.example.com/assets"},
	}
	if found := FindAbsoluteHTTPURLs(doc, false); len(found) != 0 {
		t.Fatalf("expected no absolute HTTP URLs, got %v", found)
	}
}

func TestFindAbsoluteHTTPURLs_RefsOnly(t *testing.T) {
	doc := map[string]any{
		"info": map[string]any{
			"contact": map[string]any{"url": "https://example.com/contact"},
		},
		"paths": map[string]any{
			"/test": map[string]any{
				"$ref": "https://example.com/shared.json#/PathItem",
			},
		},
	}
	found := FindAbsoluteHTTPURLs(doc, true)
	if len(found) != 1 || found[0].Key != "$ref" {
		t.Fatalf("refs-only should find only $ref fields, got %v", found)
	}
}

func TestFindRelativeURLs_Simple(t *testing.T) {
	doc := map[string]any{
		"paths": map[string]any{
			"/pets": map[string]any{
				"get": map[string]any{
					"responses": map[string]any{
						"200": map[string]any{"$ref": "./responses/pet-list.yaml"},
					},
				},
			},
		},
		"externalDocs": map[string]any{"url": "//cdn.example.com/assets"},
	}
	found := FindRelativeURLs(doc, false)
	values := valuesOf(found)
	if !contains(values, "./responses/pet-list.yaml") {
		t.Fatalf("missing relative ref, got %v", values)
	}
	if !contains(values, "//cdn.example.com/assets") {
		t.Fatalf("missing scheme-relative url, got %v", values)
	}
}

func TestFindRelativeURLs_IgnoresFragmentOnly(t *testing.T) {
	doc := map[string]any{
		"schema": map[string]any{"$ref": "#/components/schemas/Pet"},
	}
	if found := FindRelativeURLs(doc, false); len(found) != 0 {
		t.Fatalf("fragment-only refs should be ignored, got %v", found)
	}
}

func TestFindRelativeURLs_SkipsEmptyAndWhitespace(t *testing.T) {
	doc := map[string]any{
		"a": map[string]any{"$ref": ""},
		"b": map[string]any{"$ref": "   "},
	}
	if found := FindRelativeURLs(doc, false); len(found) != 0 {
		t.Fatalf("empty/whitespace refs should be skipped, got %v", found)
	}
}

func TestFindRelativeURLs_RejectsNonStringValues(t *testing.T) {
	doc := map[string]any{
		"x": map[string]any{"$ref": 42},
	}
	if found := FindRelativeURLs(doc, false); len(found) != 0 {
		t.Fatalf("non-string ref values should be rejected silently, got %v", found)
	}
}
