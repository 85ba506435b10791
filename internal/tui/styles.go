// Package tui provides the terminal dashboard for Habitkeep.
package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette for the TUI dashboard.
var (
	ColorPrimary = lipgloss.Color("#7C3AED") // Purple
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
	ColorWarning = lipgloss.Color("#F59E0B") // Yellow
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorSuccess = lipgloss.Color("#10B981") // Green
	ColorStreak  = lipgloss.Color("#F97316") // Orange
)

// Base styles for the TUI.
var (
	// StyleTitle is used for section titles.
	StyleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	// StyleHabit is used for habit names.
	StyleHabit = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// StyleSelected is used for the selected row.
	StyleSelected = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSuccess)

	// StyleMuted is used for secondary information.
	StyleMuted = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StyleStreak is used for streak counts.
	StyleStreak = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorStreak)

	// StyleDone is used for completed habits.
	StyleDone = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// StyleWarning is used for status messages.
	StyleWarning = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// StyleError is used for error messages.
	StyleError = lipgloss.NewStyle().
			Foreground(ColorError)

	// StyleHelp is used for help text at the bottom.
	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)
)
