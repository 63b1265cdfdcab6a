// ABOUTME: Group specializes Item with meeting frequency, weekday and time
// ABOUTME: Day and time fields sanitize to "" on any malformed input

package domain

import (
	"html"
	"strconv"
	"time"
)

// groupTimeLayouts are the time-of-day shapes the groups feed emits.
var groupTimeLayouts = []string{
	"15:04:05",
	"15:04",
}

// Group is one sanitized small groups feed record.
type Group struct {
	Item
	frequency       string
	customFrequency string
	dayOfWeek       string
	timeOfMeeting   string
}

// NewGroup sanitizes one decoded JSON record from the groups feed.
func NewGroup(record any) Group {
	obj, ok := record.(map[string]any)
	if !ok {
		return Group{}
	}
	return Group{
		Item:            newItem(record),
		frequency:       escapeField(obj, "frequency"),
		customFrequency: escapeField(obj, "custom_frequency"),
		dayOfWeek:       sanitizeDayOfWeek(obj),
		timeOfMeeting:   sanitizeTimeOfMeeting(obj),
	}
}

func escapeField(obj map[string]any, field string) string {
	s, _ := obj[field].(string)
	return html.EscapeString(s)
}

// sanitizeDayOfWeek accepts only a numeric 0-6 (0 = Sunday) and resolves it
// to the weekday name. Any other value yields "". The feed sends the day as
// either a JSON number or a numeric string.
func sanitizeDayOfWeek(obj map[string]any) string {
	var day int
	switch v := obj["day"].(type) {
	case float64:
		if v != float64(int(v)) {
			return ""
		}
		day = int(v)
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return ""
		}
		day = n
	default:
		return ""
	}
	if day < 0 || day > 6 {
		return ""
	}
	return time.Weekday(day).String()
}

// sanitizeTimeOfMeeting parses the meeting time and reformats it as h:mma
// (e.g. 7:30pm). Absent or unparseable times yield "".
func sanitizeTimeOfMeeting(obj map[string]any) string {
	s, _ := obj["time"].(string)
	if s == "" {
		return ""
	}
	for _, layout := range groupTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("3:04pm")
		}
	}
	return ""
}

// URL returns the public ChurchSuite page for this group, or "" when the
// record had no identifier to link to.
func (g Group) URL(cs ChurchSuite) string {
	if !g.HasIdentifier() {
		return ""
	}
	return cs.GroupsURL() + g.Identifier()
}

// Frequency returns the escaped frequency string, or "".
func (g Group) Frequency() string { return g.frequency }

// HasFrequency reports whether the group has a regular meeting schedule.
// The literal "custom" frequency is not a regular schedule.
func (g Group) HasFrequency() bool {
	return g.frequency != "" && g.frequency != "custom"
}

// CustomFrequency returns the escaped custom frequency string, or "".
func (g Group) CustomFrequency() string { return g.customFrequency }

// HasCustomFrequency reports whether the group has a custom meeting schedule:
// frequency is the literal "custom" and a custom description was supplied.
func (g Group) HasCustomFrequency() bool {
	return g.frequency == "custom" && g.customFrequency != ""
}

// DayOfWeek returns the weekday name the group meets on, or "".
func (g Group) DayOfWeek() string { return g.dayOfWeek }

// HasDayOfWeek reports whether a valid meeting day was supplied.
func (g Group) HasDayOfWeek() bool { return g.dayOfWeek != "" }

// TimeOfMeeting returns the meeting time formatted h:mma, or "".
func (g Group) TimeOfMeeting() string { return g.timeOfMeeting }

// HasTimeOfMeeting reports whether a valid meeting time was supplied.
func (g Group) HasTimeOfMeeting() bool { return g.timeOfMeeting != "" }
