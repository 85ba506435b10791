package parser

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/mkenter/habitkeep/internal/errors"
	"github.com/mkenter/habitkeep/internal/habit"
)

var now = time.Date(2024, 1, 15, 14, 30, 0, 0, time.Local)

func TestParseDayDefaults(t *testing.T) {
	for _, input := range []string{"", "today", "Today", "  today  "} {
		got, err := ParseDay(input, now)
		require.NoError(t, err, input)
		assert.Equal(t, "2024-01-15", habit.FormatDay(got))
		assert.Equal(t, 0, got.Hour())
	}
}

func TestParseDayCanonical(t *testing.T) {
	got, err := ParseDay("2024-01-03", now)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-03", habit.FormatDay(got))
}

func TestParseDayNaturalLanguage(t *testing.T) {
	got, err := ParseDay("yesterday", now)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-14", habit.FormatDay(got))
}

func TestParseDayInvalid(t *testing.T) {
	_, err := ParseDay("definitely not a date zzz", now)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidDate))
}
