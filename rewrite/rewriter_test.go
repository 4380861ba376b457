package rewrite

import "testing"

func TestRewriteURLsInPlace_RelativeRefResolvesAgainstBase(t *testing.T) {
	doc := map[string]any{
		"paths": map[string]any{
			"/pets": map[string]any{
				"get": map[string]any{
					"responses": map[string]any{
						"200": map[string]any{"$ref": "./responses/pet-list.yaml#/Response"},
					},
				},
			},
		},
	}
	changes := RewriteURLsInPlace(doc, Options{BaseURL: "https://api.example.com/specs/root.yaml"})
	if changes != 1 {
		t.Fatalf("changes = %d, want 1", changes)
	}
	got := doc["paths"].(map[string]any)["/pets"].(map[string]any)["get"].(map[string]any)["responses"].(map[string]any)["200"].(map[string]any)["$ref"]
	want := "https://api.example.com/specs/responses/pet-list.yaml#/Response"
	if got != want {
		t.Fatalf("$ref = %v, want %q", got, want)
	}
}

func TestRewriteURLsInPlace_FragmentOnlyUnchanged(t *testing.T) {
	doc := map[string]any{"schema": map[string]any{"$ref": "#/components/schemas/Pet"}}
	changes := RewriteURLsInPlace(doc, Options{BaseURL: "https://api.example.com/root.yaml"})
	if changes != 0 {
		t.Fatalf("changes = %d, want 0", changes)
	}
	if got := doc["schema"].(map[string]any)["$ref"]; got != "#/components/schemas/Pet" {
		t.Fatalf("$ref mutated: %v", got)
	}
}

func TestRewriteURLsInPlace_SchemeRelativeCombinesWithBaseScheme(t *testing.T) {
	doc := map[string]any{"externalDocs": map[string]any{"url": "//cdn.example.com/assets"}}
	changes := RewriteURLsInPlace(doc, Options{BaseURL: "https://api.example.com/root.yaml"})
	if changes != 1 {
		t.Fatalf("changes = %d, want 1", changes)
	}
	want := "https:" + "//cdn.example.com/assets"
	if got := doc["externalDocs"].(map[string]any)["url"]; got != want {
		t.Fatalf("url = %v, want %q", got, want)
	}
}

func TestRewriteURLsInPlace_SchemeRelativeLeftAloneWithoutSchemeBase(t *testing.T) {
	doc := map[string]any{"externalDocs": map[string]any{"url": "//cdn.example.com/assets"}}
	changes := RewriteURLsInPlace(doc, Options{BaseURL: "not-a-url"})
	if changes != 0 {
		t.Fatalf("changes = %d, want 0 (base has no scheme)", changes)
	}
}

func TestRewriteURLsInPlace_AbsoluteURLReplacedOnlyWhenIncluded(t *testing.T) {
	original := "https://old.example.com/v1/spec.yaml#/Pet"
	doc := map[string]any{"schema": map[string]any{"$ref": original}}

	unchanged := RewriteURLsInPlace(doc, Options{BaseURL: "https://new.example.com/v2/spec.yaml"})
	if unchanged != 0 {
		t.Fatalf("expected no change without IncludeAbsoluteURLs, got %d", unchanged)
	}

	origBase := "https://old.example.com/v1/spec.yaml"
	changed := RewriteURLsInPlace(doc, Options{
		BaseURL:             "https://new.example.com/v2/spec.yaml",
		OriginalBaseURL:     &origBase,
		IncludeAbsoluteURLs: true,
	})
	if changed != 1 {
		t.Fatalf("changes = %d, want 1", changed)
	}
	want := "https://new.example.com/v2/spec.yaml#/Pet"
	if got := doc["schema"].(map[string]any)["$ref"]; got != want {
		t.Fatalf("$ref = %v, want %q", got, want)
	}
}

func TestRewriteURLsInPlace_AbsoluteURLNotMatchingOriginalBaseLeftAlone(t *testing.T) {
	doc := map[string]any{"schema": map[string]any{"$ref": "https://other.example.com/spec.yaml#/Pet"}}
	origBase := "https://old.example.com/v1/spec.yaml"
	changed := RewriteURLsInPlace(doc, Options{
		BaseURL:             "https://new.example.com/v2/spec.yaml",
		OriginalBaseURL:     &origBase,
		IncludeAbsoluteURLs: true,
	})
	if changed != 0 {
		t.Fatalf("changes = %d, want 0 (value doesn't start with original base)", changed)
	}
}

func TestRewriteURLsInPlace_Idempotent(t *testing.T) {
	doc := map[string]any{
		"paths": map[string]any{
			"/pets": map[string]any{"get": map[string]any{"responses": map[string]any{
				"200": map[string]any{"$ref": "./responses/pet-list.yaml#/Response"},
			}}},
		},
	}
	opts := Options{BaseURL: "https://api.example.com/specs/root.yaml"}
	first := RewriteURLsInPlace(doc, opts)
	if first == 0 {
		t.Fatalf("expected first pass to make changes")
	}
	second := RewriteURLsInPlace(doc, opts)
	if second != 0 {
		t.Fatalf("second pass should be a no-op once all refs are absolute, got %d changes", second)
	}
}

func TestSetOrReplaceTopLevelJSONID_31SetsID(t *testing.T) {
	doc := map[string]any{"openapi": "3.1.0"}
	SetOrReplaceTopLevelJSONID(doc, "https://example.com/spec", false)
	if got := doc["$id"]; got != "https://example.com/spec" {
		t.Fatalf("$id = %v, want set", got)
	}
}

func TestSetOrReplaceTopLevelJSONID_31OverwritesExisting(t *testing.T) {
	doc := map[string]any{"openapi": "3.1.0", "$id": "https://old.example.com/spec"}
	SetOrReplaceTopLevelJSONID(doc, "https://new.example.com/spec", false)
	if got := doc["$id"]; got != "https://new.example.com/spec" {
		t.Fatalf("$id = %v, want overwritten", got)
	}
}

func TestSetOrReplaceTopLevelJSONID_30NoopWithoutForce(t *testing.T) {
	doc := map[string]any{"openapi": "3.0.3"}
	SetOrReplaceTopLevelJSONID(doc, "https://example.com/spec", false)
	if _, ok := doc["$id"]; ok {
		t.Fatalf("$id should not be set on 3.0.x without forceOn30")
	}
}

func TestSetOrReplaceTopLevelJSONID_30ForceSetsID(t *testing.T) {
	doc := map[string]any{"openapi": "3.0.3"}
	SetOrReplaceTopLevelJSONID(doc, "https://example.com/spec", true)
	if got := doc["$id"]; got != "https://example.com/spec" {
		t.Fatalf("$id = %v, want set under forceOn30", got)
	}
}
