package storage

import (
	"sort"

	"github.com/mkenter/habitkeep/internal/model"
)

// MomentRepo provides operations for Moment entities.
type MomentRepo struct {
	db *DB
}

// NewMomentRepo creates a new moment repository.
func NewMomentRepo(db *DB) *MomentRepo {
	return &MomentRepo{db: db}
}

// Upsert creates or replaces the moment for its date.
func (r *MomentRepo) Upsert(moment *model.Moment) error {
	moment.Key = model.GenerateMomentKey(moment.Date)
	return r.db.Set(moment)
}

// Get retrieves the moment for a date.
func (r *MomentRepo) Get(date string) (*model.Moment, error) {
	moment := &model.Moment{}
	if err := r.db.Get(model.GenerateMomentKey(date), moment); err != nil {
		return nil, err
	}
	return moment, nil
}

// Delete removes the moment for a date.
func (r *MomentRepo) Delete(date string) error {
	return r.db.Delete(model.GenerateMomentKey(date))
}

// List retrieves all moments, newest first.
func (r *MomentRepo) List() ([]*model.Moment, error) {
	moments, err := GetAllByPrefix(r.db, model.PrefixMoment+":", func() *model.Moment {
		return &model.Moment{}
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(moments, func(i, j int) bool {
		return moments[i].Date > moments[j].Date
	})
	return moments, nil
}

// SleepRepo provides operations for SleepEntry entities.
type SleepRepo struct {
	db *DB
}

// NewSleepRepo creates a new sleep repository.
func NewSleepRepo(db *DB) *SleepRepo {
	return &SleepRepo{db: db}
}

// Upsert creates or replaces the sleep entry for its date.
func (r *SleepRepo) Upsert(entry *model.SleepEntry) error {
	entry.Key = model.GenerateSleepKey(entry.Date)
	return r.db.Set(entry)
}

// Get retrieves the sleep entry for a date.
func (r *SleepRepo) Get(date string) (*model.SleepEntry, error) {
	entry := &model.SleepEntry{}
	if err := r.db.Get(model.GenerateSleepKey(date), entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// List retrieves all sleep entries, newest first.
func (r *SleepRepo) List() ([]*model.SleepEntry, error) {
	entries, err := GetAllByPrefix(r.db, model.PrefixSleep+":", func() *model.SleepEntry {
		return &model.SleepEntry{}
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date > entries[j].Date
	})
	return entries, nil
}

// WeightRepo provides operations for WeightEntry entities.
type WeightRepo struct {
	db *DB
}

// NewWeightRepo creates a new weight repository.
func NewWeightRepo(db *DB) *WeightRepo {
	return &WeightRepo{db: db}
}

// Upsert creates or replaces the weight entry for its date.
func (r *WeightRepo) Upsert(entry *model.WeightEntry) error {
	entry.Key = model.GenerateWeightKey(entry.Date)
	return r.db.Set(entry)
}

// Get retrieves the weight entry for a date.
func (r *WeightRepo) Get(date string) (*model.WeightEntry, error) {
	entry := &model.WeightEntry{}
	if err := r.db.Get(model.GenerateWeightKey(date), entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// List retrieves all weight entries, oldest first.
func (r *WeightRepo) List() ([]*model.WeightEntry, error) {
	entries, err := GetAllByPrefix(r.db, model.PrefixWeight+":", func() *model.WeightEntry {
		return &model.WeightEntry{}
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date < entries[j].Date
	})
	return entries, nil
}
