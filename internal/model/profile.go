package model

import "time"

// Profile is the singleton user profile record.
type Profile struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	JoinDate string `json:"join_date"` // YYYY-MM-DD
	Timezone string `json:"timezone"`
}

// SetKey sets the database key for this profile.
func (p *Profile) SetKey(key string) {
	p.Key = key
}

// GetKey returns the database key for this profile.
func (p *Profile) GetKey() string {
	return p.Key
}

// NewProfile creates a profile with the join date set to today.
func NewProfile(name string) *Profile {
	now := time.Now()
	zone, _ := now.Zone()
	return &Profile{
		Key:      KeyProfile,
		Name:     name,
		JoinDate: now.Format("2006-01-02"),
		Timezone: zone,
	}
}
