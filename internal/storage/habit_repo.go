package storage

import (
	"sort"
	"strings"

	"github.com/mkenter/habitkeep/internal/model"
)

// HabitRepo provides operations for Habit entities.
type HabitRepo struct {
	db *DB
}

// NewHabitRepo creates a new habit repository.
func NewHabitRepo(db *DB) *HabitRepo {
	return &HabitRepo{db: db}
}

// Create creates a new habit.
func (r *HabitRepo) Create(habit *model.Habit) error {
	habit.Key = model.GenerateHabitKey(habit.ID)
	return r.db.Set(habit)
}

// Get retrieves a habit by ID.
func (r *HabitRepo) Get(id string) (*model.Habit, error) {
	habit := &model.Habit{}
	key := model.GenerateHabitKey(id)
	if err := r.db.Get(key, habit); err != nil {
		return nil, err
	}
	return habit, nil
}

// Update updates an existing habit.
func (r *HabitRepo) Update(habit *model.Habit) error {
	return r.db.Set(habit)
}

// Delete removes a habit by ID.
func (r *HabitRepo) Delete(id string) error {
	key := model.GenerateHabitKey(id)
	return r.db.Delete(key)
}

// List retrieves all habits, oldest first.
func (r *HabitRepo) List() ([]*model.Habit, error) {
	habits, err := GetAllByPrefix(r.db, model.PrefixHabit+":", func() *model.Habit {
		return &model.Habit{}
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(habits, func(i, j int) bool {
		return habits[i].CreatedAt.Before(habits[j].CreatedAt)
	})
	return habits, nil
}

// Exists checks if a habit exists.
func (r *HabitRepo) Exists(id string) (bool, error) {
	key := model.GenerateHabitKey(id)
	return r.db.Exists(key)
}

// FindByName retrieves a habit by case-insensitive display name.
func (r *HabitRepo) FindByName(name string) (*model.Habit, error) {
	habits, err := r.List()
	if err != nil {
		return nil, err
	}
	for _, h := range habits {
		if strings.EqualFold(h.Name, name) {
			return h, nil
		}
	}
	return nil, ErrKeyNotFound
}
