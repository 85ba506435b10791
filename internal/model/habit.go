package model

import (
	"fmt"
	"time"
)

// ScheduleType represents the recurrence form of a habit.
type ScheduleType string

const (
	ScheduleDaily  ScheduleType = "daily"
	ScheduleWeekly ScheduleType = "weekly"
	ScheduleCustom ScheduleType = "custom"
)

// TrackingType governs how a logged value is interpreted by quick entry.
// It has no effect on schedule or streak logic.
type TrackingType string

const (
	TrackingIncrement  TrackingType = "increment"
	TrackingCompletion TrackingType = "completion"
	TrackingDuration   TrackingType = "duration"
	TrackingQuantity   TrackingType = "quantity"
)

// Schedule describes when a habit is due. The Type field discriminates the
// variant: Days is meaningful only for custom schedules, Frequency only for
// weekly ones. Validate rejects any other combination.
type Schedule struct {
	Type      ScheduleType `json:"type"`
	Days      []int        `json:"days,omitempty"`      // 0=Sunday .. 6=Saturday
	Frequency int          `json:"frequency,omitempty"` // days per week, default 1
}

// Validate checks that the schedule is a well-formed variant.
func (s *Schedule) Validate() error {
	switch s.Type {
	case ScheduleDaily:
		if len(s.Days) > 0 || s.Frequency != 0 {
			return fmt.Errorf("daily schedule takes no parameters")
		}
	case ScheduleWeekly:
		if len(s.Days) > 0 {
			return fmt.Errorf("weekly schedule does not take days")
		}
		if s.Frequency < 0 {
			return fmt.Errorf("weekly frequency must be positive")
		}
	case ScheduleCustom:
		if s.Frequency != 0 {
			return fmt.Errorf("custom schedule does not take a frequency")
		}
		if len(s.Days) == 0 {
			return fmt.Errorf("custom schedule requires at least one day")
		}
		for _, d := range s.Days {
			if d < 0 || d > 6 {
				return fmt.Errorf("invalid weekday index %d (use 0=Sunday .. 6=Saturday)", d)
			}
		}
	default:
		return fmt.Errorf("unknown schedule type %q", s.Type)
	}
	return nil
}

// WeeklyFrequency returns the weekly quota, defaulting to 1.
func (s *Schedule) WeeklyFrequency() int {
	if s == nil || s.Frequency <= 0 {
		return 1
	}
	return s.Frequency
}

// HasDay reports whether the given weekday index is a scheduled day.
func (s *Schedule) HasDay(weekday int) bool {
	if s == nil {
		return false
	}
	for _, d := range s.Days {
		if d == weekday {
			return true
		}
	}
	return false
}

// Habit represents a named trackable goal with a recurrence schedule and a
// per-day log of recorded values.
type Habit struct {
	Key            string             `json:"key"`
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	Icon           string             `json:"icon,omitempty"`
	Target         float64            `json:"target"`
	Unit           string             `json:"unit"`
	TrackingType   TrackingType       `json:"tracking_type,omitempty"`
	TargetFlexible bool               `json:"is_target_flexible,omitempty"`
	QuickValues    []float64          `json:"quick_values,omitempty"`
	Schedule       *Schedule          `json:"schedule,omitempty"` // nil means daily
	Entries        map[string]float64 `json:"entries"`            // YYYY-MM-DD -> logged value
	CreatedAt      time.Time          `json:"created_at"`
}

// SetKey sets the database key for this habit.
func (h *Habit) SetKey(key string) {
	h.Key = key
}

// GetKey returns the database key for this habit.
func (h *Habit) GetKey() string {
	return h.Key
}

// GenerateHabitKey generates a database key for a habit.
func GenerateHabitKey(id string) string {
	return fmt.Sprintf("%s:%s", PrefixHabit, id)
}

// NewHabit creates a new habit with an empty entries map.
func NewHabit(id, name string, target float64, unit string) *Habit {
	return &Habit{
		Key:       GenerateHabitKey(id),
		ID:        id,
		Name:      name,
		Target:    target,
		Unit:      unit,
		Entries:   map[string]float64{},
		CreatedAt: time.Now(),
	}
}

// ScheduleKind returns the schedule type, treating a nil schedule as daily.
func (h *Habit) ScheduleKind() ScheduleType {
	if h.Schedule == nil {
		return ScheduleDaily
	}
	return h.Schedule.Type
}

// EntryValue returns the logged value for a day, zero if absent.
func (h *Habit) EntryValue(day string) float64 {
	return h.Entries[day]
}

// HasEntry reports whether a value was logged for the day.
func (h *Habit) HasEntry(day string) bool {
	_, ok := h.Entries[day]
	return ok
}

// SetEntry records a value for a day, replacing any prior value.
func (h *Habit) SetEntry(day string, value float64) {
	if h.Entries == nil {
		h.Entries = map[string]float64{}
	}
	h.Entries[day] = value
}
