package shortcode

import (
	"context"
	"strings"

	"cs-embed-api/core/domain"
	"cs-embed-api/core/interfaces"
	"cs-embed-api/core/render"
)

// SmallGroups renders the tenant's small groups as cards in a flex row.
type SmallGroups struct {
	shortcode
}

// NewSmallGroups builds the group-grid controller from raw attributes.
func NewSmallGroups(deps interfaces.Dependencies, atts map[string]string) *SmallGroups {
	return &SmallGroups{shortcode: newShortcode(NameSmallGroups, deps, domain.Groups, atts)}
}

// Run returns the group-grid fragment, from cache when possible.
func (c *SmallGroups) Run(ctx context.Context) string {
	return c.run(ctx, c.assemble)
}

func (c *SmallGroups) assemble(records []any) string {
	var b strings.Builder
	b.WriteString(`<div class="cs-smallgroups cs-row">` + "\n")
	for _, record := range records {
		group := domain.NewGroup(record)
		b.WriteString(render.NewGroupView(c.cs, group).Display())
	}
	b.WriteString(`</div>` + "\n")
	return b.String()
}
