// ABOUTME: Views turn sanitized records into HTML fragments, one per style
// ABOUTME: Shared date/time formatting helpers live here too

package render

import (
	"strconv"
	"time"
)

// View is any renderer producing the HTML fragment for a single record.
// Different views present the same record differently (card, compact row,
// calendar entry), so a controller picks the view matching its output shape.
type View interface {
	Display() string
}

// ClockTime formats a time of day as h:mma, e.g. 7:30pm.
func ClockTime(t time.Time) string {
	return t.Format("3:04pm")
}

// LongDate formats a date as e.g. "Jun 15th, 2025".
func LongDate(t time.Time) string {
	return t.Format("Jan ") + Ordinal(t.Day()) + t.Format(", 2006")
}

// Ordinal renders a day number with its English ordinal suffix.
func Ordinal(n int) string {
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
		// teens all take th
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return strconv.Itoa(n) + suffix
}

// DateSpans renders a date as the stack of styled spans used by the event
// list layout: short weekday, padded day number, short month and year.
func DateSpans(t time.Time) string {
	return `<span class="cs-day">` + t.Format("Mon") + `</span>` +
		`<span class="cs-date-number">` + t.Format("02") + `</span>` +
		`<span class="cs-month">` + t.Format("Jan") + `</span>` +
		`<span class="cs-year">` + t.Format("2006") + `</span>`
}
