package render

import (
	"strings"

	"cs-embed-api/core/domain"
)

// CompactEventView renders an event as a single list row: start time, linked
// name and location. Used by the date-grouped event list, where the date
// itself is rendered once per group by the controller.
type CompactEventView struct {
	cs    domain.ChurchSuite
	event domain.Event
}

// NewCompactEventView creates a compact row view over one sanitized event.
func NewCompactEventView(cs domain.ChurchSuite, event domain.Event) CompactEventView {
	return CompactEventView{cs: cs, event: event}
}

// Display returns the row HTML.
func (v CompactEventView) Display() string {
	ev := v.event
	var b strings.Builder

	b.WriteString(`<div`)
	if ev.HasIdentifier() {
		b.WriteString(` id="cs-event-` + ev.Identifier() + `"`)
	}
	b.WriteString(` class="cs-compact-event cs-event-status-` + ev.Status() + `">` + "\n")

	if ev.HasStartDate() {
		b.WriteString(`  <div class="cs-time"><span class="cs-start-time">` + ClockTime(*ev.StartDate()) + `</span></div>` + "\n")
	}

	b.WriteString(`  <div class="cs-compact-event-details">` + "\n")
	b.WriteString(`    <h3 class="cs-event-name">` + linkedName(ev.Name(), ev.URL(v.cs), "cs-event-link", false) + `</h3>` + "\n")
	if ev.HasLocation() {
		b.WriteString(`    <div class="cs-location">` + ev.Location() + `</div>` + "\n")
	}
	if ev.HasAddress() {
		b.WriteString(`    <p class="cs-address">` + ev.Address() + `</p>` + "\n")
	}
	b.WriteString(`  </div>` + "\n")

	b.WriteString(`</div>` + "\n")
	return b.String()
}
