package traverse

import "testing"

func TestNodePath_FormatJSONPointer(t *testing.T) {
	root := newRootPath("doc", "OpenAPI")
	paths := root.CreateChild("paths", "Paths", "paths", nil)
	users := paths.CreateChild("pathitem", "PathItem", "", "/users")
	post := users.CreateChild("op", "Operation", "post", nil)

	got := post.FormatPath(JSONPointer)
	want := "/paths/~1users/post"
	if got != want {
		t.Fatalf("FormatPath(JSONPointer) = %q, want %q", got, want)
	}
}

func TestNodePath_FormatNormalizedJSONPath(t *testing.T) {
	root := newRootPath("doc", "OpenAPI")
	paths := root.CreateChild("paths", "Paths", "paths", nil)
	users := paths.CreateChild("pathitem", "PathItem", "", "/users")

	got := users.FormatPath(NormalizedJSONPath)
	want := "$['paths']['/users']"
	if got != want {
		t.Fatalf("FormatPath(NormalizedJSONPath) = %q, want %q", got, want)
	}
}

func TestNodePath_IndexTokenBothFormats(t *testing.T) {
	root := newRootPath("doc", "OpenAPI")
	tags := root.CreateChild("tags", "Tag", "tags", nil)
	first := tags.CreateChild("tag0", "Tag", "", 0)

	if got, want := first.FormatPath(JSONPointer), "/tags/0"; got != want {
		t.Fatalf("JSONPointer index = %q, want %q", got, want)
	}
	if got, want := first.FormatPath(NormalizedJSONPath), "$['tags'][0]"; got != want {
		t.Fatalf("NormalizedJSONPath index = %q, want %q", got, want)
	}
}

func TestNodePath_GetRootAndAncestors(t *testing.T) {
	root := newRootPath("doc", "OpenAPI")
	info := root.CreateChild("info", "Info", "info", nil)
	contact := info.CreateChild("contact", "Contact", "contact", nil)

	if contact.GetRoot() != "doc" {
		t.Fatalf("GetRoot() = %v, want %q", contact.GetRoot(), "doc")
	}
	if len(contact.Ancestors) != 2 || contact.Ancestors[0] != "doc" || contact.Ancestors[1] != "info" {
		t.Fatalf("Ancestors = %v, want [doc info]", contact.Ancestors)
	}
}

func TestNodePath_EscapesSpecialCharacters(t *testing.T) {
	root := newRootPath("doc", "Callback")
	child := root.CreateChild("v", "PathItem", "", "{$request.body#/callbackUrl}")

	got := child.FormatPath(JSONPointer)
	want := "/{$request.body#~1callbackUrl}"
	if got != want {
		t.Fatalf("FormatPath(JSONPointer) = %q, want %q", got, want)
	}
}
