// Package dates provides the calendar arithmetic shared by the CLI and TUI:
// same-day comparison, week derivation, and day enumeration for months and
// years.
package dates

import (
	"strings"
	"time"
)

// WeekStart names the first day of the week. The original app derived this
// from the device locale; here it comes from configuration.
type WeekStart int

const (
	WeekStartMonday WeekStart = iota
	WeekStartSunday
)

// WeekStripLen is the number of cells in the week strip. The strip has
// historically been 8 cells for a 7-day week; screens render all 8.
const WeekStripLen = 8

// ParseWeekStart maps a config string to a WeekStart, defaulting to Monday.
func ParseWeekStart(s string) WeekStart {
	if strings.EqualFold(s, "sunday") {
		return WeekStartSunday
	}
	return WeekStartMonday
}

// String returns the config spelling of the week start.
func (w WeekStart) String() string {
	if w == WeekStartSunday {
		return "sunday"
	}
	return "monday"
}

// Weekday returns the time.Weekday the week begins on.
func (w WeekStart) Weekday() time.Weekday {
	if w == WeekStartSunday {
		return time.Sunday
	}
	return time.Monday
}

// SameDay reports whether a and b fall on the same calendar day,
// ignoring time-of-day. Both are compared in their own locations.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Midnight truncates t to the start of its calendar day.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns the first day of the week containing t.
func StartOfWeek(t time.Time, ws WeekStart) time.Time {
	day := Midnight(t)
	offset := (int(day.Weekday()) - int(ws.Weekday()) + 7) % 7
	return day.AddDate(0, 0, -offset)
}

// WeekStrip returns WeekStripLen consecutive days starting at the week start
// of t. The 8th cell spills into the next week; callers render it as-is.
func WeekStrip(t time.Time, ws WeekStart) []time.Time {
	start := StartOfWeek(t, ws)
	days := make([]time.Time, WeekStripLen)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// DaysInMonth enumerates every calendar day of the given month by stepping
// one day forward until the month changes.
func DaysInMonth(month time.Month, year int) []time.Time {
	var days []time.Time
	d := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	for d.Month() == month {
		days = append(days, d)
		d = d.AddDate(0, 0, 1)
	}
	return days
}

// DaysInYear enumerates every calendar day of the given year.
func DaysInYear(year int) []time.Time {
	var days []time.Time
	d := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
	for d.Year() == year {
		days = append(days, d)
		d = d.AddDate(0, 0, 1)
	}
	return days
}

// IsLeapYear implements the Gregorian rule: divisible by 4 and not by 100,
// unless also divisible by 400.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}
