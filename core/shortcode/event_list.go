package shortcode

import (
	"context"
	"strings"
	"time"

	"cs-embed-api/core/calendar"
	"cs-embed-api/core/domain"
	"cs-embed-api/core/interfaces"
	"cs-embed-api/core/render"
)

// eventListHorizon bounds the feed query when the caller gave no end date.
// An unbounded query returns every future event the tenant has, which is
// slow upstream and useless for a sidebar list.
const eventListHorizon = 5 * 24 * time.Hour

// EventList renders events as a compact list grouped by day: a styled date
// column appears only for the first event of each date.
type EventList struct {
	shortcode
}

// NewEventList builds the date-grouped list controller from raw attributes.
func NewEventList(deps interfaces.Dependencies, atts map[string]string) *EventList {
	return newEventList(deps, atts, time.Now)
}

func newEventList(deps interfaces.Dependencies, atts map[string]string, now func() time.Time) *EventList {
	if _, ok := atts["date_end"]; !ok {
		atts = withAtt(atts, "date_end", now().Add(eventListHorizon).Format("2006-01-02"))
	}
	c := &EventList{shortcode: newShortcode(NameEventList, deps, domain.Events, atts)}
	c.now = now
	return c
}

// withAtt copies the attribute map with one key set, leaving the caller's
// map untouched.
func withAtt(atts map[string]string, key, value string) map[string]string {
	out := make(map[string]string, len(atts)+1)
	for k, v := range atts {
		out[k] = v
	}
	out[key] = value
	return out
}

// Run returns the event-list fragment, from cache when possible.
func (c *EventList) Run(ctx context.Context) string {
	return c.run(ctx, c.assemble)
}

// assemble walks the date-ordered events, emitting the date column only when
// the date changes. An event without a start date inherits the previous
// event's date - an upstream quirk that is kept, not fixed. The tracking date
// starts one day before today so the first event always gets a date column.
func (c *EventList) assemble(records []any) string {
	var b strings.Builder
	b.WriteString(`<div class="cs-event-list">` + "\n")

	currentDate := calendar.DateOnly(c.now()).AddDate(0, 0, -1)
	for _, record := range records {
		event := domain.NewEvent(record)
		eventDate := currentDate
		if event.HasStartDate() {
			eventDate = calendar.DateOnly(*event.StartDate())
		}

		b.WriteString(`  <div class="cs-event-row">` + "\n")
		b.WriteString(`    <div class="cs-date-column">` + "\n")
		if !eventDate.Equal(currentDate) {
			b.WriteString(`      <div class="cs-date">` + render.DateSpans(eventDate) + `</div>` + "\n")
			currentDate = eventDate
		}
		b.WriteString(`    </div>` + "\n")
		b.WriteString(`    <div class="cs-event-column">` + "\n")
		b.WriteString(render.NewCompactEventView(c.cs, event).Display())
		b.WriteString(`    </div>` + "\n")
		b.WriteString(`  </div>` + "\n")
	}

	b.WriteString(`</div>` + "\n")
	return b.String()
}
