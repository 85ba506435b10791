package habit

import (
	"time"

	"github.com/mkenter/habitkeep/internal/model"
)

// IsDue reports whether the habit should be tracked on the given date.
//
// Daily habits (including habits with no schedule) are due every day.
// Custom habits are due on their scheduled weekdays. Weekly habits are due
// as long as the week's quota has not yet been met; the result depends on
// the habit's current entries, so it must be recomputed after every write
// within the same week.
func IsDue(h *model.Habit, date time.Time) bool {
	switch h.ScheduleKind() {
	case model.ScheduleCustom:
		return h.Schedule.HasDay(int(date.Weekday()))
	case model.ScheduleWeekly:
		weekStart, weekEnd := WeekBounds(date)
		completed := CompletedDaysInWeek(h, weekStart, weekEnd)
		return completed < h.Schedule.WeeklyFrequency()
	default:
		return true
	}
}

// CompletedDaysInWeek counts the dates in [weekStart, weekEnd] whose logged
// value meets the habit's target. Partial credit never counts.
func CompletedDaysInWeek(h *model.Habit, weekStart, weekEnd time.Time) int {
	completed := 0
	for d := weekStart; !d.After(weekEnd); d = d.AddDate(0, 0, 1) {
		if h.EntryValue(FormatDay(d)) >= h.Target {
			completed++
		}
	}
	return completed
}

// CompletedForPeriod reports whether the habit counts as done for the period
// containing the date: the day itself for daily and custom habits, the
// Monday-start week for weekly ones. Custom habits are vacuously complete on
// days they are not scheduled, so off days never count against them.
func CompletedForPeriod(h *model.Habit, date time.Time) bool {
	day := FormatDay(date)

	switch h.ScheduleKind() {
	case model.ScheduleCustom:
		if !IsDue(h, date) {
			return true
		}
		return h.EntryValue(day) >= h.Target
	case model.ScheduleWeekly:
		weekStart, weekEnd := WeekBounds(date)
		return CompletedDaysInWeek(h, weekStart, weekEnd) >= h.Schedule.WeeklyFrequency()
	default:
		return h.EntryValue(day) >= h.Target
	}
}

// RemainingDaysInWeek returns how many more days must meet target this week
// for a weekly habit. Zero for other schedule types.
func RemainingDaysInWeek(h *model.Habit, date time.Time) int {
	if h.ScheduleKind() != model.ScheduleWeekly {
		return 0
	}
	weekStart, weekEnd := WeekBounds(date)
	remaining := h.Schedule.WeeklyFrequency() - CompletedDaysInWeek(h, weekStart, weekEnd)
	if remaining < 0 {
		return 0
	}
	return remaining
}
