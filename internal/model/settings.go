package model

import "fmt"

// Settings is the singleton application settings record.
type Settings struct {
	Key          string `json:"key"`
	ReminderTime string `json:"reminder_time"` // HH:MM, informational only
	Theme        string `json:"theme"`
	WeekStartsOn int    `json:"week_starts_on"` // 1 = Monday
	WeightUnit   string `json:"weight_unit"`
	DistanceUnit string `json:"distance_unit"`
}

// SetKey sets the database key for the settings record.
func (s *Settings) SetKey(key string) {
	s.Key = key
}

// GetKey returns the database key for the settings record.
func (s *Settings) GetKey() string {
	return s.Key
}

// DefaultSettings returns the default application settings.
func DefaultSettings() *Settings {
	return &Settings{
		Key:          KeySettings,
		ReminderTime: "09:00",
		Theme:        "light",
		WeekStartsOn: 1,
		WeightUnit:   "kg",
		DistanceUnit: "km",
	}
}

// Set updates a settings field by name.
func (s *Settings) Set(field, value string) error {
	switch field {
	case "reminder_time":
		s.ReminderTime = value
	case "theme":
		if value != "light" && value != "dark" {
			return fmt.Errorf("theme must be 'light' or 'dark'")
		}
		s.Theme = value
	case "weight_unit":
		s.WeightUnit = value
	case "distance_unit":
		s.DistanceUnit = value
	default:
		return fmt.Errorf("unknown setting %q", field)
	}
	return nil
}

// Get returns a settings field by name.
func (s *Settings) Get(field string) (string, error) {
	switch field {
	case "reminder_time":
		return s.ReminderTime, nil
	case "theme":
		return s.Theme, nil
	case "weight_unit":
		return s.WeightUnit, nil
	case "distance_unit":
		return s.DistanceUnit, nil
	default:
		return "", fmt.Errorf("unknown setting %q", field)
	}
}
