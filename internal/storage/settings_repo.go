package storage

import (
	"github.com/mkenter/habitkeep/internal/model"
)

// ProfileRepo provides operations for the Profile singleton.
type ProfileRepo struct {
	db *DB
}

// NewProfileRepo creates a new profile repository.
func NewProfileRepo(db *DB) *ProfileRepo {
	return &ProfileRepo{db: db}
}

// Get retrieves the profile, creating a default one if it doesn't exist.
func (r *ProfileRepo) Get() (*model.Profile, error) {
	profile := &model.Profile{}
	err := r.db.Get(model.KeyProfile, profile)
	if err == nil {
		return profile, nil
	}

	if !IsErrKeyNotFound(err) {
		return nil, err
	}

	profile = model.NewProfile("")
	if err := r.db.Set(profile); err != nil {
		return nil, err
	}

	return profile, nil
}

// Update updates the profile.
func (r *ProfileRepo) Update(profile *model.Profile) error {
	return r.db.Set(profile)
}

// SettingsRepo provides operations for the Settings singleton.
type SettingsRepo struct {
	db *DB
}

// NewSettingsRepo creates a new settings repository.
func NewSettingsRepo(db *DB) *SettingsRepo {
	return &SettingsRepo{db: db}
}

// Get retrieves the settings, returning defaults if not set.
func (r *SettingsRepo) Get() (*model.Settings, error) {
	settings := &model.Settings{}
	err := r.db.Get(model.KeySettings, settings)
	if err == nil {
		return settings, nil
	}

	if !IsErrKeyNotFound(err) {
		return nil, err
	}

	// Don't persist defaults until explicitly set
	return model.DefaultSettings(), nil
}

// Update updates the settings.
func (r *SettingsRepo) Update(settings *model.Settings) error {
	settings.Key = model.KeySettings
	return r.db.Set(settings)
}
