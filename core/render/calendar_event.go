package render

import (
	"strings"

	"cs-embed-api/core/domain"
)

// caretSVG is the inline toggle glyph on calendar entries. Kept inline so the
// fragment needs no icon assets from the embedding page.
const caretSVG = `<svg class="cs-caret" viewBox="0 0 16 16" width="12" height="12" aria-hidden="true"><path d="M4 6l4 4 4-4" fill="none" stroke="currentColor" stroke-width="2"/></svg>`

// CalendarEventView renders an event inside a month-grid day cell: a compact
// time-and-name line with a hidden details block the embedding page reveals
// through the cs_revealEventDetails/cs_hideEventDetails hooks.
type CalendarEventView struct {
	cs    domain.ChurchSuite
	event domain.Event
}

// NewCalendarEventView creates a calendar entry view over one sanitized event.
func NewCalendarEventView(cs domain.ChurchSuite, event domain.Event) CalendarEventView {
	return CalendarEventView{cs: cs, event: event}
}

// Display returns the calendar entry HTML.
func (v CalendarEventView) Display() string {
	ev := v.event
	var b strings.Builder

	b.WriteString(`<div`)
	if ev.HasIdentifier() {
		b.WriteString(` id="cs-event-` + ev.Identifier() + `"`)
	}
	b.WriteString(` class="cs-calendar-event cs-event-status-` + ev.Status())
	if class := ev.CategoryHTMLClass(); class != "" {
		b.WriteString(` ` + class)
	}
	b.WriteString(`">` + "\n")

	b.WriteString(`  <button type="button" class="cs-event-opener" onclick="cs_revealEventDetails(this)">` + caretSVG + `</button>` + "\n")
	b.WriteString(`  ` + v.timeAndName() + "\n")

	b.WriteString(`  <div class="cs-event-hover-block">` + "\n")
	b.WriteString(`    <button type="button" class="cs-event-closer" onclick="cs_hideEventDetails(this)">` + caretSVG + `</button>` + "\n")
	b.WriteString(`    ` + v.timeAndName() + "\n")
	if ev.HasLocation() {
		b.WriteString(`    <div class="cs-location">` + ev.Location() + `</div>` + "\n")
	}
	if ev.HasAddress() {
		b.WriteString(`    <div class="cs-address">` + ev.Address() + `</div>` + "\n")
	}
	if ev.HasDescription() {
		b.WriteString(`    <div class="cs-description">` + ev.Description() + `</div>` + "\n")
	}
	b.WriteString(`  </div>` + "\n")

	b.WriteString(`</div>` + "\n")
	return b.String()
}

// timeAndName is the line shown both collapsed and inside the hover block.
func (v CalendarEventView) timeAndName() string {
	ev := v.event
	var b strings.Builder
	if ev.HasStartDate() {
		b.WriteString(`<span class="cs-time">` + ClockTime(*ev.StartDate()) + `</span> `)
	}
	b.WriteString(`<span class="cs-event-name">` + linkedName(ev.Name(), ev.URL(v.cs), "cs-event-link", true) + `</span>`)
	return b.String()
}
