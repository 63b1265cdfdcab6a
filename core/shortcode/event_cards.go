package shortcode

import (
	"context"
	"strings"

	"cs-embed-api/core/domain"
	"cs-embed-api/core/interfaces"
	"cs-embed-api/core/render"
)

// EventCards renders a small set of events as styleable cards in a flex row.
type EventCards struct {
	shortcode
}

// NewEventCards builds the card-grid controller from raw attributes.
func NewEventCards(deps interfaces.Dependencies, atts map[string]string) *EventCards {
	return &EventCards{shortcode: newShortcode(NameEventCards, deps, domain.Events, atts)}
}

// Run returns the card-grid fragment, from cache when possible.
func (c *EventCards) Run(ctx context.Context) string {
	return c.run(ctx, c.assemble)
}

func (c *EventCards) assemble(records []any) string {
	var b strings.Builder
	b.WriteString(`<div class="cs-event-cards cs-row">` + "\n")
	for _, record := range records {
		event := domain.NewEvent(record)
		b.WriteString(render.NewEventCardView(c.cs, event).Display())
	}
	b.WriteString(`</div>` + "\n")
	return b.String()
}
