package render

import (
	"strings"

	"cs-embed-api/core/domain"
)

// EventCardView renders an event as a card: image area plus a details area
// with the linked name, date/time and location. The description is omitted
// at this size.
type EventCardView struct {
	cs    domain.ChurchSuite
	event domain.Event
}

// NewEventCardView creates a card view over one sanitized event.
func NewEventCardView(cs domain.ChurchSuite, event domain.Event) EventCardView {
	return EventCardView{cs: cs, event: event}
}

// Display returns the card HTML. All field values were sanitized at record
// construction, so they are embedded directly.
func (v EventCardView) Display() string {
	ev := v.event
	var b strings.Builder

	b.WriteString(`<div`)
	if ev.HasIdentifier() {
		b.WriteString(` id="cs-event-` + ev.Identifier() + `"`)
	}
	b.WriteString(` class="cs-card cs-event-card cs-event-status-` + ev.Status() + `">` + "\n")

	b.WriteString(`  <div class="cs-event-card-image-area">` + "\n")
	b.WriteString(`    ` + ev.ImageTag() + "\n")
	b.WriteString(`  </div>` + "\n")

	b.WriteString(`  <div class="cs-event-card-details-area">` + "\n")
	b.WriteString(`    <div class="cs-event-name">` + linkedName(ev.Name(), ev.URL(v.cs), "cs-event-link", true) + `</div>` + "\n")

	if ev.HasStartDate() {
		b.WriteString(`    <div class="cs-date"><span class="cs-date-gliph">` + LongDate(*ev.StartDate()) + `</span></div>` + "\n")
		b.WriteString(`    <div class="cs-time"><span class="cs-time-gliph cs-start-time">` + ClockTime(*ev.StartDate()) + `</span>`)
		if ev.HasEndDate() {
			b.WriteString(` - <span class="cs-end-time">` + ClockTime(*ev.EndDate()) + `</span>`)
		}
		b.WriteString(`</div>` + "\n")
	}

	if ev.HasLocation() {
		b.WriteString(`    <div class="cs-location"><span class="cs-location-gliph">` + ev.Location() + `</span></div>` + "\n")
	}
	if ev.HasAddress() {
		b.WriteString(`    <div class="cs-address">` + ev.Address() + `</div>` + "\n")
	}

	b.WriteString(`  </div>` + "\n")
	b.WriteString(`</div>` + "\n")
	return b.String()
}

// linkedName wraps an item name in its ChurchSuite link when one exists.
func linkedName(name, url, class string, newTab bool) string {
	if url == "" {
		return name
	}
	target := ""
	if newTab {
		target = ` target="_blank"`
	}
	return `<a class="` + class + `"` + target + ` href="` + url + `">` + name + `</a>`
}
