package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkenter/habitkeep/internal/habit"
	"github.com/mkenter/habitkeep/internal/model"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := habit.ParseDay(s)
	require.NoError(t, err)
	return d
}

func TestSummarizeHabit(t *testing.T) {
	h := model.NewHabit("id", "Read", 10, "pages")
	h.SetEntry("2024-01-29", 10)
	h.SetEntry("2024-01-30", 10)
	h.SetEntry("2024-01-31", 12)
	h.SetEntry("2024-01-15", 5) // partial, does not count

	s := SummarizeHabit(h, day(t, "2024-01-31"), 30)
	assert.Equal(t, 3, s.Streak)
	assert.Equal(t, 3, s.TotalCompletions)
	assert.InDelta(t, 0.1, s.CompletionRate, 0.001)
	assert.Equal(t, 30, s.WindowDays)
}

func TestSummarizeHabitDefaultWindow(t *testing.T) {
	h := model.NewHabit("id", "Read", 1, "pages")
	s := SummarizeHabit(h, day(t, "2024-01-31"), 0)
	assert.Equal(t, DefaultWindowDays, s.WindowDays)
	assert.Equal(t, 0.0, s.CompletionRate)
}

func TestSummarizeHabitCustomOffDaysCount(t *testing.T) {
	// Mondays only: every other day of the window is vacuously complete.
	h := model.NewHabit("id", "Piano", 1, "session")
	h.Schedule = &model.Schedule{Type: model.ScheduleCustom, Days: []int{1}}
	h.SetEntry("2024-01-29", 1) // the Monday in the window

	s := SummarizeHabit(h, day(t, "2024-01-31"), 7)
	assert.Equal(t, 1.0, s.CompletionRate)
}

func TestSummarizeSleepEmpty(t *testing.T) {
	s := SummarizeSleep(nil)
	assert.Equal(t, TrendStable, s.RecentTrend)
	assert.Equal(t, 0, s.Nights)
}

func TestSummarizeSleepAverages(t *testing.T) {
	entries := []*model.SleepEntry{
		model.NewSleepEntry("2024-01-01", 7, 8),
		model.NewSleepEntry("2024-01-02", 8, 6),
		model.NewSleepEntry("2024-01-03", 0, 5), // no hours, skipped
	}
	s := SummarizeSleep(entries)
	assert.Equal(t, 7.5, s.AvgHours)
	assert.Equal(t, 7, s.AvgScore)
	assert.Equal(t, 2, s.Nights)
	assert.Equal(t, TrendStable, s.RecentTrend, "too few nights for a trend")
}

func TestSummarizeSleepTrend(t *testing.T) {
	mk := func(dates []string, hours []float64) []*model.SleepEntry {
		entries := make([]*model.SleepEntry, len(dates))
		for i := range dates {
			entries[i] = model.NewSleepEntry(dates[i], hours[i], 5)
		}
		return entries
	}
	dates := []string{"2024-01-01", "2024-01-02", "2024-01-03",
		"2024-01-04", "2024-01-05", "2024-01-06"}

	improving := SummarizeSleep(mk(dates, []float64{6, 6, 6, 8, 8, 8}))
	assert.Equal(t, TrendImproving, improving.RecentTrend)

	declining := SummarizeSleep(mk(dates, []float64{8, 8, 8, 6, 6, 6}))
	assert.Equal(t, TrendDeclining, declining.RecentTrend)

	stable := SummarizeSleep(mk(dates, []float64{7, 7, 7, 7.2, 7.2, 7.2}))
	assert.Equal(t, TrendStable, stable.RecentTrend)
}

func TestSummarizeWeight(t *testing.T) {
	assert.Equal(t, WeightSummary{}, SummarizeWeight(nil))

	entries := []*model.WeightEntry{
		model.NewWeightEntry("2024-01-01", 75),
		model.NewWeightEntry("2024-01-15", 74),
		model.NewWeightEntry("2024-02-01", 72.5),
	}
	s := SummarizeWeight(entries)
	assert.Equal(t, 72.5, s.Latest)
	assert.Equal(t, 75.0, s.First)
	assert.Equal(t, -2.5, s.Delta)
	assert.Equal(t, 3, s.Entries)
}
