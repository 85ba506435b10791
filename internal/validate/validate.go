// Package validate provides input validation helpers for the Habitkeep CLI.
package validate

import (
	"math"
	"regexp"
	"unicode/utf8"

	"github.com/mkenter/habitkeep/internal/errors"
	"github.com/mkenter/habitkeep/internal/model"
)

const (
	// MaxNameLength is the maximum length for a habit name.
	MaxNameLength = 64
	// MaxUnitLength is the maximum length for a unit label.
	MaxUnitLength = 24
	// MaxMomentLength is the maximum length for a memorable moment.
	MaxMomentLength = 1024
)

// dayRegex matches canonical YYYY-MM-DD day strings.
var dayRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// HabitName validates a habit display name.
func HabitName(name string) error {
	if name == "" {
		return errors.NewUserError("Habit name cannot be empty", "Provide a habit name")
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return errors.NewUserErrorWithField("name", name,
			"Habit name too long",
			"Habit names must be 64 characters or fewer")
	}
	return nil
}

// Target validates a habit target.
func Target(target float64) error {
	if math.IsNaN(target) || math.IsInf(target, 0) || target <= 0 {
		return errors.WrapUserError(errors.ErrInvalidTarget,
			"Target must be a positive number",
			"Use a target greater than zero, like 10 or 2.5")
	}
	return nil
}

// Unit validates a unit label.
func Unit(unit string) error {
	if utf8.RuneCountInString(unit) > MaxUnitLength {
		return errors.NewUserErrorWithField("unit", unit,
			"Unit label too long",
			"Unit labels must be 24 characters or fewer")
	}
	return nil
}

// EntryValue validates a logged value.
func EntryValue(value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return errors.NewUserError("Entry value must be a number", "Provide a numeric value")
	}
	if value < 0 {
		return errors.WrapUserError(errors.ErrNegativeValue,
			"Entry value cannot be negative",
			"Log zero or a positive value")
	}
	return nil
}

// TrackingType validates a tracking type string.
func TrackingType(tt model.TrackingType) error {
	switch tt {
	case "", model.TrackingIncrement, model.TrackingCompletion,
		model.TrackingDuration, model.TrackingQuantity:
		return nil
	}
	return errors.NewUserErrorWithField("type", string(tt),
		"Invalid tracking type",
		"Use one of: increment, completion, duration, quantity")
}

// Schedule validates a habit schedule. A nil schedule is valid (daily).
func Schedule(s *model.Schedule) error {
	if s == nil {
		return nil
	}
	if err := s.Validate(); err != nil {
		return errors.WrapUserError(errors.ErrInvalidSchedule,
			err.Error(),
			"Use 'daily', 'weekly --frequency N', or 'custom --days 1,3,5'")
	}
	return nil
}

// Day validates a canonical YYYY-MM-DD day string.
func Day(day string) error {
	if !dayRegex.MatchString(day) {
		return errors.WrapUserError(errors.ErrInvalidDate,
			"Invalid date format",
			"Use YYYY-MM-DD, 'today', or natural language like 'yesterday'")
	}
	return nil
}

// Moment validates a memorable moment text.
func Moment(text string) error {
	if text == "" {
		return errors.NewUserError("Moment text cannot be empty", "Provide some text")
	}
	if utf8.RuneCountInString(text) > MaxMomentLength {
		return errors.NewUserError("Moment text too long",
			"Moments must be 1024 characters or fewer")
	}
	return nil
}

// SleepScore validates a sleep quality score.
func SleepScore(score int) error {
	if score < 1 || score > 10 {
		return errors.NewUserError("Sleep score must be between 1 and 10",
			"Rate the night from 1 (poor) to 10 (great)")
	}
	return nil
}

// Hours validates a sleep hours value.
func Hours(hours float64) error {
	if math.IsNaN(hours) || hours <= 0 || hours > 24 {
		return errors.NewUserError("Sleep hours must be between 0 and 24",
			"Provide the number of hours slept")
	}
	return nil
}

// Weight validates a weight measurement.
func Weight(weight float64) error {
	if math.IsNaN(weight) || weight <= 0 {
		return errors.NewUserError("Weight must be a positive number",
			"Provide a weight like 72.5")
	}
	return nil
}
