package habit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkenter/habitkeep/internal/model"
)

func TestStreakNoEntries(t *testing.T) {
	assert.Equal(t, 0, Streak(newHabit(1, nil, nil), mustDay(t, "2024-01-03")))
}

func TestDailyStreak(t *testing.T) {
	tests := []struct {
		name    string
		target  float64
		entries map[string]float64
		today   string
		want    int
	}{
		{
			name:    "today pending does not break the run",
			target:  10,
			entries: map[string]float64{"2024-01-01": 10, "2024-01-02": 10, "2024-01-03": 5},
			today:   "2024-01-03",
			want:    2,
		},
		{
			name:    "today complete extends the run",
			target:  10,
			entries: map[string]float64{"2024-01-01": 10, "2024-01-02": 10, "2024-01-03": 10},
			today:   "2024-01-03",
			want:    3,
		},
		{
			name:    "gap yesterday breaks it",
			target:  10,
			entries: map[string]float64{"2024-01-01": 10, "2024-01-03": 10},
			today:   "2024-01-03",
			want:    1,
		},
		{
			name:    "partial credit counts as a miss",
			target:  10,
			entries: map[string]float64{"2024-01-01": 10, "2024-01-02": 9, "2024-01-03": 10},
			today:   "2024-01-03",
			want:    1,
		},
		{
			name:    "run ended days ago",
			target:  1,
			entries: map[string]float64{"2024-01-01": 1},
			today:   "2024-01-05",
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHabit(tt.target, nil, tt.entries)
			assert.Equal(t, tt.want, Streak(h, mustDay(t, tt.today)))
		})
	}
}

func TestCustomStreakSkipsOffDays(t *testing.T) {
	// Mon, Wed, Fri. Completed Fri 2024-01-05 and Mon 2024-01-08; evaluated
	// on Tuesday the 9th, the weekend and Tuesday itself are skipped, not
	// counted as misses.
	h := newHabit(1, &model.Schedule{Type: model.ScheduleCustom, Days: []int{1, 3, 5}},
		map[string]float64{"2024-01-05": 1, "2024-01-08": 1})

	assert.Equal(t, 2, Streak(h, mustDay(t, "2024-01-09")))
}

func TestCustomStreakMissedScheduledDayBreaks(t *testing.T) {
	// Mon, Wed. Wed the 3rd was missed, so only Mon the 8th counts.
	h := newHabit(1, &model.Schedule{Type: model.ScheduleCustom, Days: []int{1, 3}},
		map[string]float64{"2024-01-01": 1, "2024-01-08": 1})

	assert.Equal(t, 1, Streak(h, mustDay(t, "2024-01-08")))
}

func TestCustomStreakPendingScheduledToday(t *testing.T) {
	h := newHabit(1, &model.Schedule{Type: model.ScheduleCustom, Days: []int{1, 3}},
		map[string]float64{"2024-01-01": 1})

	// Wednesday the 3rd is due but not yet logged.
	assert.Equal(t, 1, Streak(h, mustDay(t, "2024-01-03")))
}

func TestWeeklyStreak(t *testing.T) {
	h := newHabit(1, &model.Schedule{Type: model.ScheduleWeekly, Frequency: 2}, nil)

	// Two satisfied weeks back to back.
	h.SetEntry("2024-01-01", 1)
	h.SetEntry("2024-01-03", 1)
	h.SetEntry("2024-01-09", 1)
	h.SetEntry("2024-01-11", 1)

	assert.Equal(t, 2, Streak(h, mustDay(t, "2024-01-12")))
}

func TestWeeklyStreakCurrentWeekPending(t *testing.T) {
	h := newHabit(1, &model.Schedule{Type: model.ScheduleWeekly, Frequency: 2}, nil)

	// Last week satisfied, this week only half way.
	h.SetEntry("2024-01-01", 1)
	h.SetEntry("2024-01-03", 1)
	h.SetEntry("2024-01-09", 1)

	assert.Equal(t, 1, Streak(h, mustDay(t, "2024-01-10")))
}

func TestWeeklyStreakBrokenWeek(t *testing.T) {
	h := newHabit(1, &model.Schedule{Type: model.ScheduleWeekly, Frequency: 1}, nil)

	// Week of Jan 1 satisfied, week of Jan 8 empty, week of Jan 15 satisfied.
	h.SetEntry("2024-01-02", 1)
	h.SetEntry("2024-01-16", 1)

	assert.Equal(t, 1, Streak(h, mustDay(t, "2024-01-17")))
}
