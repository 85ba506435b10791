package tracker

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/mkenter/habitkeep/internal/errors"
	"github.com/mkenter/habitkeep/internal/habit"
	"github.com/mkenter/habitkeep/internal/model"
	"github.com/mkenter/habitkeep/internal/storage"
)

func setupTracker(t *testing.T) *Tracker {
	t.Helper()
	db, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return New(storage.NewHabitRepo(db))
}

func mustCreate(t *testing.T, tr *Tracker, draft Draft) *model.Habit {
	t.Helper()
	h, err := tr.Create(draft)
	require.NoError(t, err)
	return h
}

func TestCreateValidatesDraft(t *testing.T) {
	tr := setupTracker(t)

	_, err := tr.Create(Draft{Name: "", Target: 1, Unit: "times"})
	assert.Error(t, err)

	_, err = tr.Create(Draft{Name: "Water", Target: 0, Unit: "ml"})
	assert.True(t, errors.Is(err, apperrors.ErrInvalidTarget))

	_, err = tr.Create(Draft{Name: "Water", Target: 1, Unit: "ml",
		Schedule: &model.Schedule{Type: model.ScheduleCustom}})
	assert.True(t, errors.Is(err, apperrors.ErrInvalidSchedule))
}

func TestCreateAssignsID(t *testing.T) {
	tr := setupTracker(t)

	h := mustCreate(t, tr, Draft{Name: "Water", Target: 2000, Unit: "ml"})
	assert.NotEmpty(t, h.ID)
	assert.NotNil(t, h.Entries)

	got, err := tr.Get(h.ID)
	require.NoError(t, err)
	assert.Equal(t, "Water", got.Name)
}

func TestGetUnknownHabit(t *testing.T) {
	tr := setupTracker(t)

	_, err := tr.Get("missing")
	assert.True(t, errors.Is(err, apperrors.ErrHabitNotFound))
}

func TestResolveByIDAndName(t *testing.T) {
	tr := setupTracker(t)
	h := mustCreate(t, tr, Draft{Name: "Drink Water", Target: 2000, Unit: "ml"})

	byID, err := tr.Resolve(h.ID)
	require.NoError(t, err)
	assert.Equal(t, h.ID, byID.ID)

	byName, err := tr.Resolve("drink water")
	require.NoError(t, err)
	assert.Equal(t, h.ID, byName.ID)

	_, err = tr.Resolve("unknown")
	assert.True(t, errors.Is(err, apperrors.ErrHabitNotFound))
}

func TestEditKeepsEntries(t *testing.T) {
	tr := setupTracker(t)
	h := mustCreate(t, tr, Draft{Name: "Water", Target: 2000, Unit: "ml"})

	_, err := tr.RecordEntry(h.ID, "2024-01-01", 1500)
	require.NoError(t, err)

	updated, err := tr.Edit(h.ID, Draft{Name: "Hydration", Target: 2500, Unit: "ml"})
	require.NoError(t, err)
	assert.Equal(t, "Hydration", updated.Name)
	assert.Equal(t, 2500.0, updated.Target)
	assert.Equal(t, 1500.0, updated.EntryValue("2024-01-01"))
}

func TestRecordEntryReplacesValue(t *testing.T) {
	tr := setupTracker(t)
	h := mustCreate(t, tr, Draft{Name: "Water", Target: 2000, Unit: "ml"})

	_, err := tr.RecordEntry(h.ID, "2024-01-01", 500)
	require.NoError(t, err)
	updated, err := tr.RecordEntry(h.ID, "2024-01-01", 1200)
	require.NoError(t, err)

	assert.Equal(t, 1200.0, updated.EntryValue("2024-01-01"))
}

func TestRecordEntryRejectsBadInput(t *testing.T) {
	tr := setupTracker(t)
	h := mustCreate(t, tr, Draft{Name: "Water", Target: 2000, Unit: "ml"})

	_, err := tr.RecordEntry(h.ID, "jan 1", 500)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidDate))

	_, err = tr.RecordEntry(h.ID, "2024-01-01", -5)
	assert.True(t, errors.Is(err, apperrors.ErrNegativeValue))
}

func TestRecordEntryRefusesNonDueDay(t *testing.T) {
	tr := setupTracker(t)
	// Mondays only; 2024-01-02 is a Tuesday.
	h := mustCreate(t, tr, Draft{Name: "Piano", Target: 20, Unit: "min",
		Schedule: &model.Schedule{Type: model.ScheduleCustom, Days: []int{1}}})

	_, err := tr.RecordEntry(h.ID, "2024-01-02", 20)
	assert.True(t, errors.Is(err, apperrors.ErrNotScheduled))

	// Nothing was written.
	got, err := tr.Get(h.ID)
	require.NoError(t, err)
	assert.False(t, got.HasEntry("2024-01-02"))
}

func TestRecordEntryWeeklyQuotaMet(t *testing.T) {
	tr := setupTracker(t)
	h := mustCreate(t, tr, Draft{Name: "Gym", Target: 1, Unit: "session",
		Schedule: &model.Schedule{Type: model.ScheduleWeekly, Frequency: 2}})

	_, err := tr.RecordEntry(h.ID, "2024-01-02", 1)
	require.NoError(t, err)
	_, err = tr.RecordEntry(h.ID, "2024-01-04", 1)
	require.NoError(t, err)

	// Quota met, Friday of the same week is no longer due.
	_, err = tr.RecordEntry(h.ID, "2024-01-05", 1)
	assert.True(t, errors.Is(err, apperrors.ErrNotScheduled))

	// A fresh week accepts entries again.
	_, err = tr.RecordEntry(h.ID, "2024-01-08", 1)
	assert.NoError(t, err)
}

func TestCompleteDispatch(t *testing.T) {
	tr := setupTracker(t)

	completion := mustCreate(t, tr, Draft{Name: "Meditate", Target: 1, Unit: "session",
		TrackingType: model.TrackingCompletion})
	updated, err := tr.Complete(completion.ID, "2024-01-01", 99, true)
	require.NoError(t, err)
	assert.Equal(t, 1.0, updated.EntryValue("2024-01-01"), "completion ignores the value")

	increment := mustCreate(t, tr, Draft{Name: "Pushups", Target: 50, Unit: "reps",
		TrackingType: model.TrackingIncrement})
	_, err = tr.Complete(increment.ID, "2024-01-01", 0, false)
	require.NoError(t, err)
	_, err = tr.Complete(increment.ID, "2024-01-01", 20, true)
	require.NoError(t, err)
	updated, err = tr.Complete(increment.ID, "2024-01-01", 0, false)
	require.NoError(t, err)
	assert.Equal(t, 22.0, updated.EntryValue("2024-01-01"), "increments accumulate")

	quantity := mustCreate(t, tr, Draft{Name: "Water", Target: 2000, Unit: "ml",
		TrackingType: model.TrackingQuantity})
	updated, err = tr.Complete(quantity.ID, "2024-01-01", 1500, true)
	require.NoError(t, err)
	assert.Equal(t, 1500.0, updated.EntryValue("2024-01-01"))
	updated, err = tr.Complete(quantity.ID, "2024-01-01", 0, false)
	require.NoError(t, err)
	assert.Equal(t, 2000.0, updated.EntryValue("2024-01-01"), "no value means target")
}

func TestCompleteBuildsStreak(t *testing.T) {
	tr := setupTracker(t)
	h := mustCreate(t, tr, Draft{Name: "Read", Target: 10, Unit: "pages",
		TrackingType: model.TrackingQuantity})

	_, err := tr.RecordEntry(h.ID, "2024-01-01", 10)
	require.NoError(t, err)
	_, err = tr.RecordEntry(h.ID, "2024-01-02", 10)
	require.NoError(t, err)
	updated, err := tr.RecordEntry(h.ID, "2024-01-03", 5)
	require.NoError(t, err)

	today, err := habit.ParseDay("2024-01-03")
	require.NoError(t, err)
	assert.Equal(t, 2, habit.Streak(updated, today))
	assert.False(t, habit.CompletedForPeriod(updated, today))
}

func TestDeleteHabit(t *testing.T) {
	tr := setupTracker(t)
	h := mustCreate(t, tr, Draft{Name: "Water", Target: 1, Unit: "ml"})

	require.NoError(t, tr.Delete(h.ID))
	_, err := tr.Get(h.ID)
	assert.True(t, errors.Is(err, apperrors.ErrHabitNotFound))

	err = tr.Delete(h.ID)
	assert.True(t, errors.Is(err, apperrors.ErrHabitNotFound))
}

func TestDueToday(t *testing.T) {
	tr := setupTracker(t)

	mustCreate(t, tr, Draft{Name: "Daily", Target: 1, Unit: "times"})
	mustCreate(t, tr, Draft{Name: "Mondays", Target: 1, Unit: "times",
		Schedule: &model.Schedule{Type: model.ScheduleCustom, Days: []int{1}}})

	tuesday, err := habit.ParseDay("2024-01-02")
	require.NoError(t, err)

	due, err := tr.DueToday(tuesday)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, "Daily", due[0].Name)
}
