// ABOUTME: Month grid layout: maps a sorted event list onto a 7-column calendar
// ABOUTME: Forward-fills empty days and wraps rows every seven cells

package calendar

import (
	"time"

	"cs-embed-api/core/domain"
)

// Month holds the date bounds for one rendered calendar month. The grid
// always spans whole weeks: GridStart is the Sunday on or before the first of
// the month and GridEnd the Saturday on or after its last day.
type Month struct {
	Requested  time.Time
	Today      time.Time
	MonthStart time.Time
	MonthEnd   time.Time
	GridStart  time.Time
	GridEnd    time.Time
}

// DayCell is one grid unit: a single date and the events on it, plus the
// flags the stylesheet keys off.
type DayCell struct {
	Date         time.Time
	InMonth      bool
	IsToday      bool
	FirstOfMonth bool
	Events       []domain.Event
}

// NewMonth computes the month bounds around any date inside the wanted month.
// Both arguments are truncated to dates; time of day never influences layout.
func NewMonth(requested, today time.Time) Month {
	requested = DateOnly(requested)
	monthStart := time.Date(requested.Year(), requested.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := time.Date(requested.Year(), requested.Month(), DaysInMonth(requested.Year(), requested.Month()), 0, 0, 0, 0, time.UTC)
	return Month{
		Requested:  requested,
		Today:      DateOnly(today),
		MonthStart: monthStart,
		MonthEnd:   monthEnd,
		GridStart:  monthStart.AddDate(0, 0, -int(monthStart.Weekday())),
		GridEnd:    monthEnd.AddDate(0, 0, int(time.Saturday-monthEnd.Weekday())),
	}
}

// DaysInMonth returns the length of a month under the Gregorian rule:
// February has 29 days in years divisible by 4 but not by 100, or divisible
// by 400; the other months alternate 30/31 in the standard pattern.
func DaysInMonth(year int, month time.Month) int {
	if month == time.February {
		if (year%4 == 0 && year%100 != 0) || year%400 == 0 {
			return 29
		}
		return 28
	}
	if (int(month)-1)%7%2 == 1 {
		return 30
	}
	return 31
}

// DateOnly truncates a time to its date in UTC.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Contains reports whether the date lies within the displayed month.
func (m Month) Contains(date time.Time) bool {
	return !date.Before(m.MonthStart) && !date.After(m.MonthEnd)
}

// Previous returns the first day of the preceding month.
func (m Month) Previous() time.Time {
	return m.MonthStart.AddDate(0, -1, 0)
}

// Next returns the first day of the following month.
func (m Month) Next() time.Time {
	return m.MonthStart.AddDate(0, 1, 0)
}

func (m Month) newCell(date time.Time) DayCell {
	return DayCell{
		Date:         date,
		InMonth:      m.Contains(date),
		IsToday:      date.Equal(m.Today),
		FirstOfMonth: date.Day() == 1,
	}
}

// Grid lays the events out over the month, producing rows of exactly seven
// day cells covering [GridStart, GridEnd].
//
// Events must be pre-sorted ascending by start date, as the upstream feed
// delivers them. A cursor walks the grid: days before the next event's date
// are closed empty, and every event whose date matches the cursor lands in
// the open cell, so a day keeps all its events. An event without a start
// date inherits the cursor's current date - an upstream quirk that is kept,
// not fixed. Events dated outside the grid are never matched by the cursor
// and are skipped.
func (m Month) Grid(events []domain.Event) [][]DayCell {
	weeks := make([][]DayCell, 0, 6)
	week := make([]DayCell, 0, 7)
	cursor := m.GridStart
	cell := m.newCell(cursor)

	closeCell := func() {
		week = append(week, cell)
		if len(week) == 7 {
			weeks = append(weeks, week)
			week = make([]DayCell, 0, 7)
		}
	}
	advance := func() {
		closeCell()
		cursor = cursor.AddDate(0, 0, 1)
		cell = m.newCell(cursor)
	}

	for _, event := range events {
		eventDate := cursor
		if event.HasStartDate() {
			eventDate = DateOnly(*event.StartDate())
		}
		for cursor.Before(eventDate) && cursor.Before(m.GridEnd) {
			advance()
		}
		if cursor.Equal(eventDate) {
			cell.Events = append(cell.Events, event)
		}
	}

	for cursor.Before(m.GridEnd) {
		advance()
	}
	closeCell()

	return weeks
}
