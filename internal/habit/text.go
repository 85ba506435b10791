package habit

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mkenter/habitkeep/internal/model"
)

var dayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// FormatValue renders a logged value without trailing zeros.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ProgressText returns the display string for a habit's progress on a date.
func ProgressText(h *model.Habit, date time.Time) string {
	day := FormatDay(date)
	value := h.EntryValue(day)

	switch h.ScheduleKind() {
	case model.ScheduleCustom:
		if !IsDue(h, date) {
			return "Not scheduled today"
		}
		return fmt.Sprintf("%s / %s %s", FormatValue(value), FormatValue(h.Target), h.Unit)
	case model.ScheduleWeekly:
		weekStart, weekEnd := WeekBounds(date)
		completed := CompletedDaysInWeek(h, weekStart, weekEnd)
		return fmt.Sprintf("%d / %d days this week", completed, h.Schedule.WeeklyFrequency())
	default:
		return fmt.Sprintf("%s / %s %s", FormatValue(value), FormatValue(h.Target), h.Unit)
	}
}

// ScheduleText returns the display string for a habit's schedule.
func ScheduleText(h *model.Habit) string {
	switch h.ScheduleKind() {
	case model.ScheduleWeekly:
		frequency := h.Schedule.WeeklyFrequency()
		plural := ""
		if frequency > 1 {
			plural = "s"
		}
		return fmt.Sprintf("%d time%s per week", frequency, plural)
	case model.ScheduleCustom:
		if len(h.Schedule.Days) == 0 {
			return "Custom"
		}
		names := make([]string, 0, len(h.Schedule.Days))
		for _, d := range h.Schedule.Days {
			names = append(names, dayNames[d])
		}
		return "Custom: " + strings.Join(names, ", ")
	default:
		return "Daily"
	}
}
