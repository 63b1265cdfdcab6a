// ABOUTME: Event specializes Item with dates, status, address and category
// ABOUTME: Preserves the feed's defaulting rules, including the status asymmetry

package domain

import (
	"html"
	"regexp"
	"strings"
	"time"
)

// Event status values as ChurchSuite defines them.
const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusPending   = "pending"
)

// eventDateLayouts are the datetime shapes the feed emits. Tried in order;
// the first match wins.
var eventDateLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02",
}

var (
	nonClassChars = regexp.MustCompile(`[^a-zA-Z0-9-]`)
	hyphenRuns    = regexp.MustCompile(`[ -]+`)
)

// classPrefix namespaces every category-derived CSS class.
const classPrefix = "cs-"

// Event is one sanitized calendar feed record.
//
// The defaulting of status is deliberately asymmetric, matching upstream
// behavior: a record that is an object with a missing or unrecognized status
// defaults to confirmed, while a record that is not an object at all defaults
// to cancelled.
type Event struct {
	Item
	startDate *time.Time
	endDate   *time.Time
	address   string
	status    string
	category  string
}

// NewEvent sanitizes one decoded JSON record from the events feed.
func NewEvent(record any) Event {
	obj, ok := record.(map[string]any)
	if !ok {
		return Event{status: StatusCancelled}
	}
	return Event{
		Item:      newItem(record),
		startDate: sanitizeDate(obj, "datetime_start"),
		endDate:   sanitizeDate(obj, "datetime_end"),
		address:   sanitizeAddress(obj),
		status:    sanitizeStatus(obj),
		category:  sanitizeCategory(obj),
	}
}

// sanitizeDate parses the named datetime field, or returns nil when the field
// is absent or unparseable. An absent date is valid input, not an error.
func sanitizeDate(obj map[string]any, field string) *time.Time {
	s, _ := obj[field].(string)
	if s == "" {
		return nil
	}
	for _, layout := range eventDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

func sanitizeAddress(obj map[string]any) string {
	loc, ok := obj["location"].(map[string]any)
	if !ok {
		return ""
	}
	s, _ := loc["address"].(string)
	return html.EscapeString(s)
}

func sanitizeStatus(obj map[string]any) string {
	s, _ := obj["status"].(string)
	switch strings.ToLower(s) {
	case StatusCancelled:
		return StatusCancelled
	case StatusPending:
		return StatusPending
	default:
		return StatusConfirmed
	}
}

func sanitizeCategory(obj map[string]any) string {
	cat, ok := obj["category"].(map[string]any)
	if !ok {
		return ""
	}
	s, _ := cat["name"].(string)
	return stripTags(s)
}

// URL returns the public ChurchSuite page for this event, or "" when the
// record had no identifier to link to.
func (e Event) URL(cs ChurchSuite) string {
	if !e.HasIdentifier() {
		return ""
	}
	return cs.EventsURL() + e.Identifier()
}

// StartDate returns the event start, or nil if none was supplied.
func (e Event) StartDate() *time.Time { return e.startDate }

// HasStartDate reports whether the event has a start date/time.
func (e Event) HasStartDate() bool { return e.startDate != nil }

// EndDate returns the event end, or nil if none was supplied.
func (e Event) EndDate() *time.Time { return e.endDate }

// HasEndDate reports whether the event has an end date/time.
func (e Event) HasEndDate() bool { return e.endDate != nil }

// Address returns the escaped event address, or "".
func (e Event) Address() string { return e.address }

// HasAddress reports whether the event has an address.
func (e Event) HasAddress() bool { return e.address != "" }

// Status returns the sanitized event status.
func (e Event) Status() string { return e.status }

// IsConfirmed reports whether the event status is confirmed.
func (e Event) IsConfirmed() bool { return e.status == StatusConfirmed }

// IsCancelled reports whether the event status is cancelled.
func (e Event) IsCancelled() bool { return e.status == StatusCancelled }

// IsPending reports whether the event status is pending.
func (e Event) IsPending() bool { return e.status == StatusPending }

// Category returns the sanitized category name, or "".
func (e Event) Category() string { return e.category }

// HasCategory reports whether the event has a category.
func (e Event) HasCategory() bool { return e.category != "" }

// CategoryHTMLClass renders the category as a CSS class token: lowercased,
// runs of non-alphanumerics collapsed to single hyphens, no leading or
// trailing hyphen, with a "cs-" prefix. Returns "" when there is no category.
func (e Event) CategoryHTMLClass() string {
	if !e.HasCategory() {
		return ""
	}
	s := strings.TrimSpace(e.category)
	s = nonClassChars.ReplaceAllString(s, "-")
	s = hyphenRuns.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	return classPrefix + strings.ToLower(s)
}
