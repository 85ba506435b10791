package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles for CLI output.
var (
	// Colors
	colorPrimary = lipgloss.Color("#7C3AED") // Purple
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorWarning = lipgloss.Color("#F59E0B") // Yellow
	colorError   = lipgloss.Color("#EF4444") // Red
	colorSuccess = lipgloss.Color("#10B981") // Green
	colorStreak  = lipgloss.Color("#F97316") // Orange

	// Styles
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleHabit = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleStreak = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorStreak)
)

// CLIFormatter provides CLI-specific formatting.
type CLIFormatter struct {
	*Formatter
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f}
}

// Title prints a title.
func (c *CLIFormatter) Title(text string) {
	if c.IsColorEnabled() {
		c.Println(styleTitle.Render(text))
	} else {
		c.Println(text)
	}
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	if c.IsColorEnabled() {
		c.Println(styleSuccess.Render("✓ " + text))
	} else {
		c.Println("✓ " + text)
	}
}

// Warning prints a warning message.
func (c *CLIFormatter) Warning(text string) {
	if c.IsColorEnabled() {
		c.Println(styleWarning.Render("⚠ " + text))
	} else {
		c.Println("⚠ " + text)
	}
}

// Error prints an error message.
func (c *CLIFormatter) Error(text string) {
	if c.IsColorEnabled() {
		c.Println(styleError.Render("✗ " + text))
	} else {
		c.Println("✗ " + text)
	}
}

// Muted prints muted text.
func (c *CLIFormatter) Muted(text string) {
	if c.IsColorEnabled() {
		c.Println(styleMuted.Render(text))
	} else {
		c.Println(text)
	}
}

// HabitName formats a habit name.
func (c *CLIFormatter) HabitName(name string) string {
	if c.IsColorEnabled() {
		return styleHabit.Render(name)
	}
	return name
}

// Streak formats a streak count with a flame marker.
func (c *CLIFormatter) Streak(streak int) string {
	text := fmt.Sprintf("%d", streak)
	if streak > 0 {
		text = "🔥 " + text
	}
	if c.IsColorEnabled() {
		return styleStreak.Render(text)
	}
	return text
}

// CheckMark returns a completion marker for a habit.
func (c *CLIFormatter) CheckMark(done bool) string {
	if done {
		if c.IsColorEnabled() {
			return styleSuccess.Render("✓")
		}
		return "✓"
	}
	if c.IsColorEnabled() {
		return styleMuted.Render("·")
	}
	return "·"
}

// ProgressBar renders a simple progress bar of the given width.
func (c *CLIFormatter) ProgressBar(ratio float64, width int) string {
	if width < 4 {
		width = 4
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio * float64(width))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	if c.IsColorEnabled() {
		if ratio >= 1 {
			return styleSuccess.Render(bar)
		}
		return styleMuted.Render(bar)
	}
	return bar
}

// Percent formats a 0..1 ratio as a percentage.
func Percent(ratio float64) string {
	return fmt.Sprintf("%.0f%%", ratio*100)
}
