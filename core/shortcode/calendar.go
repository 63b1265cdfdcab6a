package shortcode

import (
	"context"
	"strconv"
	"strings"
	"time"

	"cs-embed-api/core/calendar"
	"cs-embed-api/core/domain"
	"cs-embed-api/core/interfaces"
	"cs-embed-api/core/render"
)

// Calendar renders a full month of events as a 7-column grid with
// previous/next month navigation. The wanted month is any date inside it:
// the cs-date query parameter wins, then the date_start attribute, then
// today's month.
type Calendar struct {
	shortcode
	month   calendar.Month
	pageURL string
}

// NewCalendar builds the month-grid controller from raw attributes. pageURL
// is the address the navigation links lead back to.
func NewCalendar(deps interfaces.Dependencies, atts map[string]string, pageURL string) *Calendar {
	return newCalendar(deps, atts, pageURL, time.Now)
}

func newCalendar(deps interfaces.Dependencies, atts map[string]string, pageURL string, now func() time.Time) *Calendar {
	today := calendar.DateOnly(now())
	month := calendar.NewMonth(requestedDate(atts, today), today)

	// The feed query must cover the whole displayed grid: widen the date
	// range to the grid bounds unless the caller pinned one, lift the result
	// limit and expand merged sequences so every occurrence lands on its day.
	if _, ok := atts["date_start"]; !ok {
		atts = withAtt(atts, "date_start", month.GridStart.Format("2006-01-02"))
	}
	if _, ok := atts["date_end"]; !ok {
		atts = withAtt(atts, "date_end", month.GridEnd.Format("2006-01-02"))
	}
	atts = withAtt(atts, "num_results", "0")
	atts = withAtt(atts, "merge", "show_all")

	c := &Calendar{
		shortcode: newShortcode(NameCalendar, deps, domain.Events, atts),
		month:     month,
		pageURL:   pageURL,
	}
	c.now = now
	return c
}

// requestedDate resolves which month to display: a valid cs-date query value
// first, then a valid date_start attribute, then today.
func requestedDate(atts map[string]string, today time.Time) time.Time {
	if t, err := time.Parse("2006-01-02", atts["cs-date"]); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", atts["date_start"]); err == nil {
		return t
	}
	return today
}

// Run returns the calendar fragment, from cache when possible.
func (c *Calendar) Run(ctx context.Context) string {
	return c.run(ctx, c.assemble)
}

func (c *Calendar) assemble(records []any) string {
	events := make([]domain.Event, 0, len(records))
	for _, record := range records {
		events = append(events, domain.NewEvent(record))
	}

	var b strings.Builder
	b.WriteString(`<div class="cs-calendar">` + "\n")
	c.writeTableTop(&b)
	b.WriteString(`    <tbody>` + "\n")
	for _, week := range c.month.Grid(events) {
		b.WriteString(`      <tr class="cs-calendar-row">` + "\n")
		for _, cell := range week {
			c.writeDayCell(&b, cell)
		}
		b.WriteString(`      </tr>` + "\n")
	}
	b.WriteString(`    </tbody>` + "\n")
	b.WriteString(`  </table>` + "\n")
	b.WriteString(`</div>` + "\n")
	b.WriteString(`</div>` + "\n")
	return b.String()
}

// writeTableTop emits the month header, the navigation links and the weekday
// header row. The weekday names come from the grid's first week, so the
// header always lines up with the cells below it.
func (c *Calendar) writeTableTop(b *strings.Builder) {
	b.WriteString(`<div class="cs-calendar-month-header">` + c.month.MonthStart.Format("January") + `</div>` + "\n")
	b.WriteString(`<div class="cs-calendar-month-nav">`)
	b.WriteString(`<span class="cs-calendar-previous-link">` + c.navLink(c.month.Previous(), "Previous") + `</span>`)
	b.WriteString(`<span class="cs-calendar-next-link">` + c.navLink(c.month.Next(), "Next") + `</span>`)
	b.WriteString(`</div>` + "\n")
	b.WriteString(`<div class="cs-calendar-table">` + "\n")
	b.WriteString(`  <table class="cs-responsive-table">` + "\n")
	b.WriteString(`    <thead>` + "\n")
	b.WriteString(`      <tr class="cs-calendar-days-header">` + "\n")
	for day := c.month.GridStart; !day.After(c.month.GridStart.AddDate(0, 0, 6)); day = day.AddDate(0, 0, 1) {
		b.WriteString(`        <th class="cs-day-header">` + day.Format("Mon") + `</th>` + "\n")
	}
	b.WriteString(`      </tr>` + "\n")
	b.WriteString(`    </thead>` + "\n")
}

func (c *Calendar) navLink(month time.Time, label string) string {
	return `<a href="` + c.pageURL + `?cs-date=` + month.Format("2006-01-02") + `">` + label + `</a>`
}

// writeDayCell emits one day: the cell with its in-month/today classes, the
// styleable date spans and every event laid onto that date.
func (c *Calendar) writeDayCell(b *strings.Builder, cell calendar.DayCell) {
	b.WriteString(`        <td class="cs-calendar-date-cell`)
	if cell.InMonth {
		b.WriteString(` cs-calendar-in-month`)
	} else {
		b.WriteString(` cs-calendar-outside-month`)
	}
	if cell.IsToday {
		b.WriteString(` cs-calendar-today`)
	}
	b.WriteString(`">` + "\n")

	b.WriteString(`          <div class="cs-date`)
	if cell.FirstOfMonth {
		b.WriteString(` cs-first-day`)
	}
	b.WriteString(`">`)
	b.WriteString(`<span class="cs-day">` + cell.Date.Format("Mon") + `</span>`)
	b.WriteString(`<span class="cs-date-number">` + strconv.Itoa(cell.Date.Day()) + `</span>`)
	b.WriteString(`<span class="cs-month">` + cell.Date.Format("January") + `</span>`)
	b.WriteString(`<span class="cs-year">` + cell.Date.Format("2006") + `</span>`)
	b.WriteString(`</div>` + "\n")

	b.WriteString(`          <div class="cs-calendar-date-cell-inner">` + "\n")
	b.WriteString(`            <div class="cs-day-content">` + "\n")
	for _, event := range cell.Events {
		b.WriteString(render.NewCalendarEventView(c.cs, event).Display())
	}
	b.WriteString(`            </div>` + "\n")
	b.WriteString(`          </div>` + "\n")
	b.WriteString(`        </td>` + "\n")
}
