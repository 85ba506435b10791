package model

import (
	"fmt"
	"time"
)

// SleepEntry records a night of sleep for a calendar day.
type SleepEntry struct {
	Key       string  `json:"key"`
	Date      string  `json:"date"` // YYYY-MM-DD
	Hours     float64 `json:"hours"`
	Score     int     `json:"score"` // subjective quality, 1-10
	Timestamp int64   `json:"timestamp,omitempty"`
}

// SetKey sets the database key for this sleep entry.
func (s *SleepEntry) SetKey(key string) {
	s.Key = key
}

// GetKey returns the database key for this sleep entry.
func (s *SleepEntry) GetKey() string {
	return s.Key
}

// GenerateSleepKey generates a database key for a sleep entry by date.
func GenerateSleepKey(date string) string {
	return fmt.Sprintf("%s:%s", PrefixSleep, date)
}

// NewSleepEntry creates a new sleep entry for the given day.
func NewSleepEntry(date string, hours float64, score int) *SleepEntry {
	return &SleepEntry{
		Key:       GenerateSleepKey(date),
		Date:      date,
		Hours:     hours,
		Score:     score,
		Timestamp: time.Now().Unix(),
	}
}
