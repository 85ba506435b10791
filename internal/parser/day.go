// Package parser turns user-supplied date expressions into calendar days.
package parser

import (
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"

	apperrors "github.com/mkenter/habitkeep/internal/errors"
	"github.com/mkenter/habitkeep/internal/habit"
)

// ParseDay parses a date expression into a local calendar day. Accepts the
// canonical YYYY-MM-DD form, an empty string or "today" for the reference
// date, and natural language like "yesterday" or "last monday".
func ParseDay(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" || strings.EqualFold(input, "today") {
		return habit.Midnight(now), nil
	}

	if t, err := habit.ParseDay(input); err == nil {
		return t, nil
	}

	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}
	result, err := dateparser.Parse(cfg, input)
	if err != nil {
		return time.Time{}, apperrors.WrapUserError(apperrors.ErrInvalidDate,
			"Could not parse date '"+input+"'",
			"Use YYYY-MM-DD or natural language like 'yesterday'")
	}

	return habit.Midnight(result.Time), nil
}
