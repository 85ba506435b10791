package habit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkenter/habitkeep/internal/model"
)

// mustDay parses a YYYY-MM-DD fixture date.
func mustDay(t *testing.T, day string) time.Time {
	t.Helper()
	date, err := ParseDay(day)
	require.NoError(t, err)
	return date
}

func newHabit(target float64, schedule *model.Schedule, entries map[string]float64) *model.Habit {
	h := model.NewHabit("test-id", "Test", target, "times")
	h.Schedule = schedule
	for day, v := range entries {
		h.SetEntry(day, v)
	}
	return h
}

func TestWeekBounds(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		wantStart string
		wantEnd   string
	}{
		{"monday", "2024-01-01", "2024-01-01", "2024-01-07"},
		{"midweek", "2024-01-03", "2024-01-01", "2024-01-07"},
		{"sunday belongs to the preceding monday", "2024-01-07", "2024-01-01", "2024-01-07"},
		{"next monday starts a fresh week", "2024-01-08", "2024-01-08", "2024-01-14"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := WeekBounds(mustDay(t, tt.date))
			assert.Equal(t, tt.wantStart, FormatDay(start))
			assert.Equal(t, tt.wantEnd, FormatDay(end))
		})
	}
}

func TestIsDueDaily(t *testing.T) {
	// No schedule means daily.
	h := newHabit(1, nil, nil)
	assert.True(t, IsDue(h, mustDay(t, "2024-01-01")))
	assert.True(t, IsDue(h, mustDay(t, "2024-01-07")))

	h.Schedule = &model.Schedule{Type: model.ScheduleDaily}
	assert.True(t, IsDue(h, mustDay(t, "2024-01-03")))
}

func TestIsDueCustom(t *testing.T) {
	// Mon and Wed (2024-01-01 is a Monday).
	h := newHabit(1, &model.Schedule{Type: model.ScheduleCustom, Days: []int{1, 3}}, nil)

	assert.True(t, IsDue(h, mustDay(t, "2024-01-01")), "Monday")
	assert.False(t, IsDue(h, mustDay(t, "2024-01-02")), "Tuesday")
	assert.True(t, IsDue(h, mustDay(t, "2024-01-03")), "Wednesday")
	assert.False(t, IsDue(h, mustDay(t, "2024-01-07")), "Sunday")
}

func TestIsDueWeekly(t *testing.T) {
	h := newHabit(1, &model.Schedule{Type: model.ScheduleWeekly, Frequency: 2}, nil)

	// Quota unmet, due every day of the week.
	assert.True(t, IsDue(h, mustDay(t, "2024-01-01")))
	assert.True(t, IsDue(h, mustDay(t, "2024-01-05")))

	// Tue and Thu done, quota met: Friday is no longer due.
	h.SetEntry("2024-01-02", 1)
	h.SetEntry("2024-01-04", 1)
	assert.False(t, IsDue(h, mustDay(t, "2024-01-05")))

	// The next Monday starts a fresh week and is due again.
	assert.True(t, IsDue(h, mustDay(t, "2024-01-08")))
}

func TestIsDueWeeklyDefaultFrequency(t *testing.T) {
	h := newHabit(1, &model.Schedule{Type: model.ScheduleWeekly}, nil)

	assert.True(t, IsDue(h, mustDay(t, "2024-01-01")))
	h.SetEntry("2024-01-01", 1)
	assert.False(t, IsDue(h, mustDay(t, "2024-01-02")))
}

func TestIsDueWeeklyRecomputedAfterWrites(t *testing.T) {
	// Each write within the week can flip due-ness; it is never cached.
	h := newHabit(10, &model.Schedule{Type: model.ScheduleWeekly, Frequency: 1}, nil)
	wed := mustDay(t, "2024-01-03")

	assert.True(t, IsDue(h, wed))
	h.SetEntry("2024-01-03", 10)
	assert.False(t, IsDue(h, wed))
	h.SetEntry("2024-01-03", 5) // replaced below target
	assert.True(t, IsDue(h, wed))
}

func TestCompletedDaysInWeek(t *testing.T) {
	h := newHabit(10, nil, map[string]float64{
		"2024-01-01": 10, // counts
		"2024-01-02": 5,  // partial credit never counts
		"2024-01-03": 12, // counts
		"2024-01-08": 10, // next week, out of range
	})

	start, end := WeekBounds(mustDay(t, "2024-01-03"))
	assert.Equal(t, 2, CompletedDaysInWeek(h, start, end))
}

func TestCompletedDaysInWeekMonotonic(t *testing.T) {
	h := newHabit(1, nil, nil)
	start, end := WeekBounds(mustDay(t, "2024-01-01"))

	prev := CompletedDaysInWeek(h, start, end)
	for _, day := range []string{"2024-01-02", "2024-01-04", "2024-01-06"} {
		h.SetEntry(day, 1)
		got := CompletedDaysInWeek(h, start, end)
		assert.Equal(t, prev+1, got)
		prev = got
	}
}

func TestCompletedForPeriodDaily(t *testing.T) {
	h := newHabit(10, nil, map[string]float64{"2024-01-01": 10, "2024-01-02": 9.5})

	assert.True(t, CompletedForPeriod(h, mustDay(t, "2024-01-01")))
	assert.False(t, CompletedForPeriod(h, mustDay(t, "2024-01-02")))
	assert.False(t, CompletedForPeriod(h, mustDay(t, "2024-01-03")))
}

func TestCompletedForPeriodCustomVacuous(t *testing.T) {
	// Mon and Wed; Tuesday is an off day and counts as complete with no entry.
	h := newHabit(1, &model.Schedule{Type: model.ScheduleCustom, Days: []int{1, 3}}, nil)

	assert.True(t, CompletedForPeriod(h, mustDay(t, "2024-01-02")), "off day is vacuously complete")
	assert.False(t, CompletedForPeriod(h, mustDay(t, "2024-01-01")), "scheduled day needs an entry")

	h.SetEntry("2024-01-01", 1)
	assert.True(t, CompletedForPeriod(h, mustDay(t, "2024-01-01")))
}

func TestCompletedForPeriodWeekly(t *testing.T) {
	h := newHabit(1, &model.Schedule{Type: model.ScheduleWeekly, Frequency: 2}, nil)

	assert.False(t, CompletedForPeriod(h, mustDay(t, "2024-01-05")))

	h.SetEntry("2024-01-02", 1)
	assert.False(t, CompletedForPeriod(h, mustDay(t, "2024-01-05")))

	h.SetEntry("2024-01-04", 1)
	// The whole week reads as complete, any day of it.
	assert.True(t, CompletedForPeriod(h, mustDay(t, "2024-01-01")))
	assert.True(t, CompletedForPeriod(h, mustDay(t, "2024-01-05")))
	assert.True(t, CompletedForPeriod(h, mustDay(t, "2024-01-07")))
	// But not the next week.
	assert.False(t, CompletedForPeriod(h, mustDay(t, "2024-01-08")))
}

func TestRemainingDaysInWeek(t *testing.T) {
	h := newHabit(1, &model.Schedule{Type: model.ScheduleWeekly, Frequency: 3}, nil)
	wed := mustDay(t, "2024-01-03")

	assert.Equal(t, 3, RemainingDaysInWeek(h, wed))
	h.SetEntry("2024-01-01", 1)
	h.SetEntry("2024-01-02", 1)
	assert.Equal(t, 1, RemainingDaysInWeek(h, wed))
	h.SetEntry("2024-01-03", 1)
	h.SetEntry("2024-01-04", 1) // beyond quota never goes negative
	assert.Equal(t, 0, RemainingDaysInWeek(h, wed))

	daily := newHabit(1, nil, nil)
	assert.Equal(t, 0, RemainingDaysInWeek(daily, wed))
}
