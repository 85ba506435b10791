// Package tracker is the owning layer for the habit collection. It validates
// writes against the schedule engine before committing them to storage.
package tracker

import (
	"time"

	"github.com/google/uuid"

	apperrors "github.com/mkenter/habitkeep/internal/errors"
	"github.com/mkenter/habitkeep/internal/habit"
	"github.com/mkenter/habitkeep/internal/logging"
	"github.com/mkenter/habitkeep/internal/model"
	"github.com/mkenter/habitkeep/internal/storage"
	"github.com/mkenter/habitkeep/internal/validate"
)

// Tracker coordinates habit mutations.
type Tracker struct {
	habits *storage.HabitRepo
}

// New creates a tracker backed by the given habit repository.
func New(habits *storage.HabitRepo) *Tracker {
	return &Tracker{habits: habits}
}

// Draft holds the user-editable fields of a habit.
type Draft struct {
	Name           string
	Icon           string
	Target         float64
	Unit           string
	TrackingType   model.TrackingType
	TargetFlexible bool
	QuickValues    []float64
	Schedule       *model.Schedule
}

func (d *Draft) validate() error {
	if err := validate.HabitName(d.Name); err != nil {
		return err
	}
	if err := validate.Target(d.Target); err != nil {
		return err
	}
	if err := validate.Unit(d.Unit); err != nil {
		return err
	}
	if err := validate.TrackingType(d.TrackingType); err != nil {
		return err
	}
	return validate.Schedule(d.Schedule)
}

// Create validates the draft and persists a new habit with a fresh ID and an
// empty entries map.
func (t *Tracker) Create(draft Draft) (*model.Habit, error) {
	if err := draft.validate(); err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	h := model.NewHabit(id.String(), draft.Name, draft.Target, draft.Unit)
	h.Icon = draft.Icon
	h.TrackingType = draft.TrackingType
	h.TargetFlexible = draft.TargetFlexible
	h.QuickValues = draft.QuickValues
	h.Schedule = draft.Schedule

	if err := t.habits.Create(h); err != nil {
		return nil, err
	}

	logging.Info("habit created", "id", h.ID, "name", h.Name)
	return h, nil
}

// Edit replaces a habit's user-editable fields, leaving its entries untouched.
func (t *Tracker) Edit(id string, draft Draft) (*model.Habit, error) {
	if err := draft.validate(); err != nil {
		return nil, err
	}

	h, err := t.Get(id)
	if err != nil {
		return nil, err
	}

	h.Name = draft.Name
	h.Icon = draft.Icon
	h.Target = draft.Target
	h.Unit = draft.Unit
	h.TrackingType = draft.TrackingType
	h.TargetFlexible = draft.TargetFlexible
	h.QuickValues = draft.QuickValues
	h.Schedule = draft.Schedule

	if err := t.habits.Update(h); err != nil {
		return nil, err
	}
	return h, nil
}

// Delete removes a habit and its entries.
func (t *Tracker) Delete(id string) error {
	if _, err := t.Get(id); err != nil {
		return err
	}
	return t.habits.Delete(id)
}

// Get retrieves a habit by ID, mapping storage misses to ErrHabitNotFound.
func (t *Tracker) Get(id string) (*model.Habit, error) {
	h, err := t.habits.Get(id)
	if err != nil {
		if storage.IsErrKeyNotFound(err) {
			return nil, apperrors.ErrHabitNotFound
		}
		return nil, err
	}
	return h, nil
}

// Resolve finds a habit by ID or by case-insensitive name.
func (t *Tracker) Resolve(ref string) (*model.Habit, error) {
	h, err := t.habits.Get(ref)
	if err == nil {
		return h, nil
	}
	if !storage.IsErrKeyNotFound(err) {
		return nil, err
	}

	h, err = t.habits.FindByName(ref)
	if err != nil {
		if storage.IsErrKeyNotFound(err) {
			return nil, apperrors.ErrHabitNotFound
		}
		return nil, err
	}
	return h, nil
}

// List retrieves all habits.
func (t *Tracker) List() ([]*model.Habit, error) {
	return t.habits.List()
}

// RecordEntry logs a value for a habit on a calendar day, replacing any prior
// value for that day. The write is refused when the habit is not due on that
// day; callers are expected to check IsDue first, this re-validates
// defensively and leaves prior state unchanged on refusal. Negative values
// are clamped to zero.
func (t *Tracker) RecordEntry(id, day string, value float64) (*model.Habit, error) {
	if err := validate.Day(day); err != nil {
		return nil, err
	}
	if err := validate.EntryValue(value); err != nil {
		return nil, err
	}

	h, err := t.Get(id)
	if err != nil {
		return nil, err
	}

	date, err := habit.ParseDay(day)
	if err != nil {
		return nil, apperrors.ErrInvalidDate
	}

	if !habit.IsDue(h, date) {
		logging.Warn("entry refused: habit not scheduled",
			"habit", h.Name, "date", day)
		return nil, apperrors.WrapUserError(apperrors.ErrNotScheduled,
			"Habit '"+h.Name+"' is not scheduled for "+day,
			"Check the schedule with 'habitkeep habit show "+h.Name+"'")
	}

	if value < 0 {
		value = 0
	}
	h.SetEntry(day, value)

	if err := t.habits.Update(h); err != nil {
		return nil, err
	}

	logging.Info("entry recorded", "habit", h.Name, "date", day, "value", value)
	return h, nil
}

// Complete performs a quick completion for a habit on a day, interpreting the
// optional value according to the habit's tracking type: completion habits
// jump straight to target, increment habits add to the day's prior value, and
// duration/quantity habits take the value as-is (defaulting to target).
func (t *Tracker) Complete(id, day string, value float64, hasValue bool) (*model.Habit, error) {
	h, err := t.Get(id)
	if err != nil {
		return nil, err
	}

	var completion float64
	switch h.TrackingType {
	case model.TrackingCompletion:
		completion = h.Target
	case model.TrackingIncrement:
		step := 1.0
		if hasValue {
			step = value
		}
		completion = h.EntryValue(day) + step
	default: // duration, quantity, unset
		completion = h.Target
		if hasValue {
			completion = value
		}
	}

	return t.RecordEntry(id, day, completion)
}

// DueToday returns the habits due on the given date, in list order.
func (t *Tracker) DueToday(date time.Time) ([]*model.Habit, error) {
	habits, err := t.List()
	if err != nil {
		return nil, err
	}
	due := make([]*model.Habit, 0, len(habits))
	for _, h := range habits {
		if habit.IsDue(h, date) {
			due = append(due, h)
		}
	}
	return due, nil
}
