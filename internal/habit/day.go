// Package habit implements the schedule evaluation and streak engine.
//
// All functions are pure: they take a habit snapshot and an explicit
// reference date, and never consult the wall clock. Dates are local
// calendar days in canonical YYYY-MM-DD form.
package habit

import "time"

// DayFormat is the canonical calendar-day layout.
const DayFormat = "2006-01-02"

// FormatDay returns the canonical day string for a time.
func FormatDay(t time.Time) string {
	return t.Format(DayFormat)
}

// ParseDay parses a canonical day string into a local midnight time.
func ParseDay(day string) (time.Time, error) {
	t, err := time.ParseInLocation(DayFormat, day, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// Midnight truncates a time to the start of its calendar day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekBounds returns the Monday and Sunday of the week containing t,
// both at midnight. Every schedule computation uses this convention.
func WeekBounds(t time.Time) (time.Time, time.Time) {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday
	}
	start := Midnight(t).AddDate(0, 0, -(weekday - 1))
	return start, start.AddDate(0, 0, 6)
}
