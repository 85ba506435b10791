package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleValidate(t *testing.T) {
	tests := []struct {
		name     string
		schedule Schedule
		wantErr  bool
	}{
		{"daily", Schedule{Type: ScheduleDaily}, false},
		{"daily with days", Schedule{Type: ScheduleDaily, Days: []int{1}}, true},
		{"daily with frequency", Schedule{Type: ScheduleDaily, Frequency: 2}, true},
		{"weekly", Schedule{Type: ScheduleWeekly, Frequency: 3}, false},
		{"weekly without frequency", Schedule{Type: ScheduleWeekly}, false},
		{"weekly with days", Schedule{Type: ScheduleWeekly, Days: []int{1}}, true},
		{"weekly negative frequency", Schedule{Type: ScheduleWeekly, Frequency: -1}, true},
		{"custom", Schedule{Type: ScheduleCustom, Days: []int{0, 6}}, false},
		{"custom without days", Schedule{Type: ScheduleCustom}, true},
		{"custom with frequency", Schedule{Type: ScheduleCustom, Days: []int{1}, Frequency: 2}, true},
		{"custom day out of range", Schedule{Type: ScheduleCustom, Days: []int{7}}, true},
		{"custom negative day", Schedule{Type: ScheduleCustom, Days: []int{-1}}, true},
		{"unknown type", Schedule{Type: "monthly"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.schedule.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWeeklyFrequencyDefaults(t *testing.T) {
	var nilSchedule *Schedule
	assert.Equal(t, 1, nilSchedule.WeeklyFrequency())
	assert.Equal(t, 1, (&Schedule{Type: ScheduleWeekly}).WeeklyFrequency())
	assert.Equal(t, 4, (&Schedule{Type: ScheduleWeekly, Frequency: 4}).WeeklyFrequency())
}

func TestScheduleKind(t *testing.T) {
	h := NewHabit("id", "Test", 1, "times")
	assert.Equal(t, ScheduleDaily, h.ScheduleKind())

	h.Schedule = &Schedule{Type: ScheduleWeekly, Frequency: 2}
	assert.Equal(t, ScheduleWeekly, h.ScheduleKind())
}

func TestHabitEntries(t *testing.T) {
	h := NewHabit("id", "Test", 10, "min")

	assert.False(t, h.HasEntry("2024-01-01"))
	assert.Equal(t, 0.0, h.EntryValue("2024-01-01"))

	h.SetEntry("2024-01-01", 5)
	assert.True(t, h.HasEntry("2024-01-01"))
	assert.Equal(t, 5.0, h.EntryValue("2024-01-01"))

	// Replacement, not accumulation.
	h.SetEntry("2024-01-01", 12)
	assert.Equal(t, 12.0, h.EntryValue("2024-01-01"))
}

func TestSetEntryNilMap(t *testing.T) {
	h := &Habit{}
	h.SetEntry("2024-01-01", 1)
	assert.True(t, h.HasEntry("2024-01-01"))
}

func TestHabitJSONRoundTrip(t *testing.T) {
	h := NewHabit("id-1", "Drink Water", 2000, "ml")
	h.TrackingType = TrackingQuantity
	h.Schedule = &Schedule{Type: ScheduleCustom, Days: []int{1, 3, 5}}
	h.SetEntry("2024-01-01", 1500)

	data, err := json.Marshal(h)
	require.NoError(t, err)

	var got Habit
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, h.Name, got.Name)
	assert.Equal(t, h.Schedule.Days, got.Schedule.Days)
	assert.Equal(t, 1500.0, got.EntryValue("2024-01-01"))
}
