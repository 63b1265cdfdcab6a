package domain

import (
	"encoding/json"
	"strings"
	"testing"
)

// decode parses a JSON object literal the way the feed client would.
func decode(t *testing.T, raw string) any {
	t.Helper()
	var record any
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		t.Fatalf("bad test JSON: %v", err)
	}
	return record
}

func TestNewItem_NonObjectYieldsDefaults(t *testing.T) {
	item := newItem("not an object")

	if item.HasIdentifier() {
		t.Error("HasIdentifier() should be false for a non-object record")
	}
	if item.Name() != "Unnamed" {
		t.Errorf("Name() = %q, want %q", item.Name(), "Unnamed")
	}
	if item.HasImage() || item.HasLocation() || item.HasDescription() {
		t.Error("all optional fields should be empty for a non-object record")
	}
}

func TestNewItem_IdentifierKeepsAlphanumericsOnly(t *testing.T) {
	item := newItem(decode(t, `{"identifier": "abc-123_XY!"}`))

	if item.Identifier() != "abc123XY" {
		t.Errorf("Identifier() = %q, want %q", item.Identifier(), "abc123XY")
	}
	if !item.HasIdentifier() {
		t.Error("HasIdentifier() should be true")
	}
}

func TestNewItem_NameIsEscaped(t *testing.T) {
	item := newItem(decode(t, `{"name": "Fish & Chips <Night>"}`))

	want := "Fish &amp; Chips &lt;Night&gt;"
	if item.Name() != want {
		t.Errorf("Name() = %q, want %q", item.Name(), want)
	}
}

func TestNewItem_MissingNameDefaultsToUnnamed(t *testing.T) {
	item := newItem(decode(t, `{"identifier": "abc"}`))

	if item.Name() != "Unnamed" {
		t.Errorf("Name() = %q, want %q", item.Name(), "Unnamed")
	}
}

func TestNewItem_ImageValidation(t *testing.T) {
	tests := []struct {
		name    string
		record  string
		wantTag string
	}{
		{
			"valid https url",
			`{"images": {"lg": {"url": "https://cdn.example.com/a.jpg"}}}`,
			`<img src="https://cdn.example.com/a.jpg">`,
		},
		{
			"valid http url",
			`{"images": {"lg": {"url": "http://cdn.example.com/a.jpg"}}}`,
			`<img src="http://cdn.example.com/a.jpg">`,
		},
		{"javascript scheme rejected", `{"images": {"lg": {"url": "javascript:alert(1)"}}}`, ""},
		{"relative url rejected", `{"images": {"lg": {"url": "/a.jpg"}}}`, ""},
		{"not a url", `{"images": {"lg": {"url": "nonsense"}}}`, ""},
		{"images is an empty array", `{"images": []}`, ""},
		{"images is null", `{"images": null}`, ""},
		{"missing lg size", `{"images": {"sm": {"url": "https://cdn.example.com/a.jpg"}}}`, ""},
		{"missing url field", `{"images": {"lg": {}}}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := newItem(decode(t, tt.record))
			if item.ImageTag() != tt.wantTag {
				t.Errorf("ImageTag() = %q, want %q", item.ImageTag(), tt.wantTag)
			}
			if item.HasImage() != (tt.wantTag != "") {
				t.Errorf("HasImage() = %v, want %v", item.HasImage(), tt.wantTag != "")
			}
		})
	}
}

func TestNewItem_LocationNameIsEscaped(t *testing.T) {
	item := newItem(decode(t, `{"location": {"name": "St Mary's <Hall>"}}`))

	want := "St Mary&#39;s &lt;Hall&gt;"
	if item.Location() != want {
		t.Errorf("Location() = %q, want %q", item.Location(), want)
	}
}

func TestNewItem_DescriptionKeepsAllowedTagsOnly(t *testing.T) {
	item := newItem(decode(t, `{"description": "Hello <strong>world</strong> <script>alert(1)</script>"}`))

	if !strings.Contains(item.Description(), "<strong>world</strong>") {
		t.Errorf("Description() should keep <strong>, got %q", item.Description())
	}
	if strings.Contains(item.Description(), "<script>") {
		t.Errorf("Description() should strip <script>, got %q", item.Description())
	}
}

func TestNewItem_DescriptionNewlinesBecomeBreaks(t *testing.T) {
	item := newItem(decode(t, `{"description": "line one\nline two"}`))

	if !strings.Contains(item.Description(), "<br>") {
		t.Errorf("Description() should convert newlines to <br>, got %q", item.Description())
	}
}

func TestNewItem_BlankDescriptionIsEmpty(t *testing.T) {
	item := newItem(decode(t, `{"description": "   "}`))

	if item.HasDescription() {
		t.Errorf("HasDescription() should be false, got %q", item.Description())
	}
}
