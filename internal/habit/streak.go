package habit

import (
	"time"

	"github.com/mkenter/habitkeep/internal/model"
)

// Iteration caps for the backward streak walks. They exist only to bound the
// loops and are generous enough to never truncate a realistic streak.
const (
	maxStreakDays  = 365
	maxStreakWeeks = 52
)

// Streak returns the habit's current streak ending at the given reference
// date: consecutive completed days for daily and custom habits (skipping
// non-scheduled days), consecutive satisfied weeks for weekly habits.
//
// The current period not yet being complete does not break the streak, it
// simply is not counted yet. A habit with no entries has a streak of zero.
func Streak(h *model.Habit, today time.Time) int {
	switch h.ScheduleKind() {
	case model.ScheduleCustom:
		return customStreak(h, today)
	case model.ScheduleWeekly:
		return weeklyStreak(h, today)
	default:
		return dailyStreak(h, today)
	}
}

func dailyStreak(h *model.Habit, today time.Time) int {
	streak := 0
	for i := 0; i < maxStreakDays; i++ {
		day := FormatDay(today.AddDate(0, 0, -i))
		if h.HasEntry(day) && h.EntryValue(day) >= h.Target {
			streak++
		} else if i > 0 {
			break
		}
	}
	return streak
}

func customStreak(h *model.Habit, today time.Time) int {
	streak := 0
	for i := 0; i < maxStreakDays; i++ {
		date := today.AddDate(0, 0, -i)
		if !IsDue(h, date) {
			continue
		}
		day := FormatDay(date)
		if h.HasEntry(day) && h.EntryValue(day) >= h.Target {
			streak++
		} else if i > 0 {
			break
		}
	}
	return streak
}

func weeklyStreak(h *model.Habit, today time.Time) int {
	streak := 0
	for i := 0; i < maxStreakWeeks; i++ {
		anchor := today.AddDate(0, 0, -7*i)
		if CompletedForPeriod(h, anchor) {
			streak++
		} else if i > 0 {
			break
		}
	}
	return streak
}
