// ABOUTME: Item carries the sanitized fields common to events and groups
// ABOUTME: Every field is sanitized once at construction and immutable after

package domain

import (
	"html"
	"net/url"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// descriptionPolicy allow-lists the inline tags a feed description may keep.
// Everything else is stripped, standing in for the original embed's
// server-side HTML filter.
var descriptionPolicy = func() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("br", "p", "strong", "i", "b")
	return p
}()

// tagStripPolicy removes all markup, used for plain-text fields.
var tagStripPolicy = bluemonday.StrictPolicy()

var identifierPattern = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// Item holds the sanitized fields shared by every record in the ChurchSuite
// feeds. Records live for a single render cycle: constructed from one decoded
// JSON record, read by a view, then discarded. No code path holds an
// unsanitized value.
type Item struct {
	identifier  string
	name        string
	imageTag    string
	location    string
	description string
}

// newItem sanitizes the shared fields out of one decoded JSON record.
// A record that is not a JSON object yields the zero Item, whose accessors
// return the documented defaults.
func newItem(record any) Item {
	obj, ok := record.(map[string]any)
	if !ok {
		return Item{}
	}
	return Item{
		identifier:  sanitizeIdentifier(obj),
		name:        sanitizeName(obj),
		imageTag:    sanitizeImage(obj),
		location:    sanitizeLocation(obj),
		description: sanitizeDescription(obj),
	}
}

// sanitizeIdentifier keeps only [A-Za-z0-9] from the identifier field.
func sanitizeIdentifier(obj map[string]any) string {
	s, _ := obj["identifier"].(string)
	return identifierPattern.ReplaceAllString(s, "")
}

// sanitizeName escapes the name for HTML output, defaulting to "Unnamed"
// when the field is absent, null or empty.
func sanitizeName(obj map[string]any) string {
	s, _ := obj["name"].(string)
	if s == "" {
		return "Unnamed"
	}
	return html.EscapeString(s)
}

// sanitizeImage resolves images.lg.url and, only if it is a valid absolute
// http(s) URL, wraps it in a minimal img tag. Anything else yields "".
// An item without images arrives as null or as an empty JSON array, so the
// field must be an object before descending into it.
func sanitizeImage(obj map[string]any) string {
	images, ok := obj["images"].(map[string]any)
	if !ok {
		return ""
	}
	lg, ok := images["lg"].(map[string]any)
	if !ok {
		return ""
	}
	raw, _ := lg["url"].(string)
	if raw == "" {
		return ""
	}
	u, err := url.ParseRequestURI(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ""
	}
	return `<img src="` + raw + `">`
}

// sanitizeLocation escapes location.name, or returns "" if absent.
func sanitizeLocation(obj map[string]any) string {
	loc, ok := obj["location"].(map[string]any)
	if !ok {
		return ""
	}
	s, _ := loc["name"].(string)
	return html.EscapeString(s)
}

// sanitizeDescription trims the description, converts newlines to <br> tags
// and strips the result down to the allow-listed inline tags.
func sanitizeDescription(obj map[string]any) string {
	s, _ := obj["description"].(string)
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\n", "<br>\n")
	return descriptionPolicy.Sanitize(s)
}

// stripTags removes all markup and trims the result.
func stripTags(s string) string {
	return strings.TrimSpace(tagStripPolicy.Sanitize(s))
}

// Identifier returns the alphanumeric item identifier, or "".
func (i Item) Identifier() string { return i.identifier }

// HasIdentifier reports whether the item can be linked to on ChurchSuite.
func (i Item) HasIdentifier() bool { return i.identifier != "" }

// Name returns the escaped item name, or "Unnamed".
func (i Item) Name() string { return i.name }

// ImageTag returns a pre-rendered img tag for the item image, or "".
func (i Item) ImageTag() string { return i.imageTag }

// HasImage reports whether the item carried a valid image URL.
func (i Item) HasImage() bool { return i.imageTag != "" }

// Location returns the escaped location name, or "".
func (i Item) Location() string { return i.location }

// HasLocation reports whether the item has a named location.
func (i Item) HasLocation() bool { return i.location != "" }

// Description returns the filtered description HTML, or "".
func (i Item) Description() string { return i.description }

// HasDescription reports whether the item has a description.
func (i Item) HasDescription() bool { return i.description != "" }
