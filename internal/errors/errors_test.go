package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserErrorMessage(t *testing.T) {
	err := NewUserError("Habit name cannot be empty", "Provide a name")
	assert.Equal(t, "Habit name cannot be empty", err.Error())

	withField := NewUserErrorWithField("value", "abc", "Invalid value", "Use a number")
	assert.Equal(t, "Invalid value: 'abc'", withField.Error())
}

func TestWrapUserErrorMatchesSentinel(t *testing.T) {
	err := WrapUserError(ErrNotScheduled, "Habit 'Piano' is not scheduled for 2024-01-02", "")
	assert.True(t, stderrors.Is(err, ErrNotScheduled))
	assert.False(t, stderrors.Is(err, ErrHabitNotFound))

	ue, ok := AsUserError(err)
	require.True(t, ok)
	assert.Contains(t, ue.Message, "Piano")
}

func TestSystemError(t *testing.T) {
	cause := stderrors.New("disk full")
	err := NewSystemErrorWithOp("write", "storage failure", cause)
	assert.Equal(t, "storage failure during write", err.Error())
	assert.True(t, stderrors.Is(err, cause))
	assert.True(t, IsSystemError(err))
	assert.False(t, IsUserError(err))
}
