package model

import "fmt"

// WeightEntry records a body weight measurement for a calendar day.
type WeightEntry struct {
	Key    string  `json:"key"`
	Date   string  `json:"date"` // YYYY-MM-DD
	Weight float64 `json:"weight"`
}

// SetKey sets the database key for this weight entry.
func (w *WeightEntry) SetKey(key string) {
	w.Key = key
}

// GetKey returns the database key for this weight entry.
func (w *WeightEntry) GetKey() string {
	return w.Key
}

// GenerateWeightKey generates a database key for a weight entry by date.
func GenerateWeightKey(date string) string {
	return fmt.Sprintf("%s:%s", PrefixWeight, date)
}

// NewWeightEntry creates a new weight entry for the given day.
func NewWeightEntry(date string, weight float64) *WeightEntry {
	return &WeightEntry{
		Key:    GenerateWeightKey(date),
		Date:   date,
		Weight: weight,
	}
}
