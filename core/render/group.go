package render

import (
	"strings"

	"cs-embed-api/core/domain"
)

// GroupView renders a small group as a card: image, linked name, meeting
// schedule, location, time and description.
type GroupView struct {
	cs    domain.ChurchSuite
	group domain.Group
}

// NewGroupView creates a card view over one sanitized group.
func NewGroupView(cs domain.ChurchSuite, group domain.Group) GroupView {
	return GroupView{cs: cs, group: group}
}

// Display returns the group card HTML.
func (v GroupView) Display() string {
	g := v.group
	var b strings.Builder

	b.WriteString(`<div`)
	if g.HasIdentifier() {
		b.WriteString(` id="cs-group-` + g.Identifier() + `"`)
	}
	b.WriteString(` class="cs-card cs-group">` + "\n")

	b.WriteString(`  <div class="cs-group-image-area">` + "\n")
	b.WriteString(`    ` + g.ImageTag() + "\n")
	b.WriteString(`  </div>` + "\n")

	b.WriteString(`  <div class="cs-group-details-area">` + "\n")
	b.WriteString(`    <div class="cs-group-name">` + linkedName(g.Name(), g.URL(v.cs), "cs-group-link", true) + `</div>` + "\n")

	if schedule := v.schedule(); schedule != "" {
		b.WriteString(`    <div class="cs-calendar"><span class="cs-calendar-gliph">` + schedule + `</span></div>` + "\n")
	}
	if g.HasLocation() {
		b.WriteString(`    <div class="cs-location"><span class="cs-location-gliph">` + g.Location() + `</span></div>` + "\n")
	}
	if g.HasTimeOfMeeting() {
		b.WriteString(`    <div class="cs-time"><span class="cs-time-gliph">` + g.TimeOfMeeting() + `</span></div>` + "\n")
	}
	if g.HasDescription() {
		b.WriteString(`    <div class="cs-description">` + g.Description() + `</div>` + "\n")
	}

	b.WriteString(`  </div>` + "\n")
	b.WriteString(`</div>` + "\n")
	return b.String()
}

// schedule describes when the group meets: a regular frequency plus its
// weekday when known, or the custom frequency text verbatim.
func (v GroupView) schedule() string {
	g := v.group
	switch {
	case g.HasFrequency():
		s := capitalize(g.Frequency())
		if g.HasDayOfWeek() {
			s += " on " + g.DayOfWeek()
		}
		return s
	case g.HasCustomFrequency():
		return g.CustomFrequency()
	default:
		return ""
	}
}

// capitalize upper-cases the first byte of an ASCII frequency word.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
