// Package model defines the domain models for Habitkeep.
package model

// Model is the interface that all database models must implement.
type Model interface {
	// SetKey sets the database key for this model.
	SetKey(key string)
	// GetKey returns the database key for this model.
	GetKey() string
}

// KeyPrefix constants for database key generation.
const (
	PrefixHabit  = "habit"
	PrefixMoment = "moment"
	PrefixSleep  = "sleep"
	PrefixWeight = "weight"
	KeyProfile   = "profile"
	KeySettings  = "settings"
)
