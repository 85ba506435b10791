package runtime

import (
	stderrors "errors"

	"github.com/mkenter/habitkeep/internal/errors"
)

// Suggestions provides helpful suggestions for common errors.
var Suggestions = map[error]string{
	errors.ErrHabitNotFound:    "Use 'habitkeep habit list' to see your habits.",
	errors.ErrNotScheduled:     "Check the habit's schedule with 'habitkeep habit show <name>'.",
	errors.ErrInvalidTarget:    "Targets must be greater than zero, like 10 or 2.5.",
	errors.ErrNegativeValue:    "Log zero or a positive value.",
	errors.ErrInvalidDate:      "Use YYYY-MM-DD, 'today', or natural language like 'yesterday'.",
	errors.ErrInvalidSchedule:  "Use 'daily', 'weekly --frequency N', or 'custom --days 1,3,5'.",
	errors.ErrTemplateNotFound: "Use 'habitkeep templates' to see available templates.",
}

// GetSuggestion returns a suggestion for an error, if available.
func GetSuggestion(err error) string {
	if ue, ok := errors.AsUserError(err); ok && ue.Suggestion != "" {
		return ue.Suggestion
	}
	for knownErr, suggestion := range Suggestions {
		if stderrors.Is(err, knownErr) {
			return suggestion
		}
	}
	return ""
}

// FormatError formats an error with an optional suggestion.
func FormatError(err error) string {
	msg := err.Error()
	if suggestion := GetSuggestion(err); suggestion != "" {
		msg += "\n" + suggestion
	}
	return msg
}
