package model

import "fmt"

// Moment is a short memorable note attached to a calendar day.
// At most one moment is kept per day; later writes replace earlier ones.
type Moment struct {
	Key  string `json:"key"`
	Date string `json:"date"` // YYYY-MM-DD
	Text string `json:"text"`
}

// SetKey sets the database key for this moment.
func (m *Moment) SetKey(key string) {
	m.Key = key
}

// GetKey returns the database key for this moment.
func (m *Moment) GetKey() string {
	return m.Key
}

// GenerateMomentKey generates a database key for a moment by date.
func GenerateMomentKey(date string) string {
	return fmt.Sprintf("%s:%s", PrefixMoment, date)
}

// NewMoment creates a new moment for the given day.
func NewMoment(date, text string) *Moment {
	return &Moment{
		Key:  GenerateMomentKey(date),
		Date: date,
		Text: text,
	}
}
