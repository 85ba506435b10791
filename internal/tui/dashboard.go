package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkenter/habitkeep/internal/habit"
	"github.com/mkenter/habitkeep/internal/model"
	"github.com/mkenter/habitkeep/internal/tracker"
)

// tickMsg is sent when the refresh timer ticks.
type tickMsg time.Time

// errMsg is sent when an error occurs.
type errMsg struct {
	err error
}

// DashboardModel is the main bubbletea model for the dashboard.
type DashboardModel struct {
	// Data
	habits []*model.Habit
	today  time.Time

	// Dependencies
	tracker *tracker.Tracker

	// UI state
	cursor     int
	width      int
	height     int
	err        error
	message    string
	messageExp time.Time

	refreshInterval time.Duration
}

// DashboardConfig holds configuration for the dashboard.
type DashboardConfig struct {
	Tracker         *tracker.Tracker
	RefreshInterval time.Duration
}

// NewDashboardModel creates a new dashboard model.
func NewDashboardModel(config DashboardConfig) *DashboardModel {
	if config.RefreshInterval == 0 {
		config.RefreshInterval = time.Second
	}

	return &DashboardModel{
		tracker:         config.Tracker,
		today:           time.Now(),
		refreshInterval: config.RefreshInterval,
	}
}

// Init initializes the model.
func (m *DashboardModel) Init() tea.Cmd {
	m.loadData()
	return m.tickCmd()
}

func (m *DashboardModel) tickCmd() tea.Cmd {
	return tea.Tick(m.refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *DashboardModel) loadData() {
	m.today = time.Now()
	habits, err := m.tracker.List()
	if err != nil {
		m.err = err
		return
	}
	m.habits = habits
	if m.cursor >= len(m.habits) {
		m.cursor = len(m.habits) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *DashboardModel) setMessage(text string, duration time.Duration) {
	m.message = text
	m.messageExp = time.Now().Add(duration)
}

// Update handles messages and updates the model.
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if !m.messageExp.IsZero() && time.Now().After(m.messageExp) {
			m.message = ""
			m.messageExp = time.Time{}
		}
		return m, m.tickCmd()

	case errMsg:
		m.err = msg.err
		return m, nil
	}

	return m, nil
}

// handleKeyPress handles keyboard input.
func (m *DashboardModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "j", "down":
		if m.cursor < len(m.habits)-1 {
			m.cursor++
		}
		return m, nil

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case " ", "enter":
		if len(m.habits) == 0 {
			return m, nil
		}
		h := m.habits[m.cursor]
		if !habit.IsDue(h, m.today) {
			m.setMessage(fmt.Sprintf("%s is not scheduled today", h.Name), 2*time.Second)
			return m, nil
		}
		day := habit.FormatDay(m.today)
		if _, err := m.tracker.Complete(h.ID, day, 0, false); err != nil {
			m.err = err
		} else {
			m.setMessage(fmt.Sprintf("Logged %s", h.Name), 2*time.Second)
			m.loadData()
		}
		return m, nil

	case "r":
		m.loadData()
		m.setMessage("Refreshed", time.Second)
		return m, nil
	}

	return m, nil
}

// View renders the dashboard.
func (m *DashboardModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var sections []string

	sections = append(sections,
		StyleTitle.Render(fmt.Sprintf("Habitkeep — %s", m.today.Format("Mon, Jan 2"))))

	if m.err != nil {
		sections = append(sections, StyleError.Render(fmt.Sprintf("Error: %v", m.err)))
	}
	if m.message != "" {
		sections = append(sections, StyleWarning.Render(m.message))
	}

	if len(m.habits) == 0 {
		sections = append(sections, StyleMuted.Render("No habits yet. Add one with 'habitkeep habit add'."))
	} else {
		sections = append(sections, m.renderHabits())
	}

	sections = append(sections,
		StyleHelp.Render("j/k: move • space: log • r: refresh • q: quit"))

	return strings.Join(sections, "\n")
}

func (m *DashboardModel) renderHabits() string {
	var b strings.Builder

	for i, h := range m.habits {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		name := h.Name
		if i == m.cursor {
			name = StyleSelected.Render(name)
		} else {
			name = StyleHabit.Render(name)
		}

		var status string
		switch {
		case habit.CompletedForPeriod(h, m.today):
			status = StyleDone.Render("✓")
		case !habit.IsDue(h, m.today):
			status = StyleMuted.Render("—")
		default:
			status = StyleMuted.Render("·")
		}

		progress := StyleMuted.Render(habit.ProgressText(h, m.today))
		streak := ""
		if s := habit.Streak(h, m.today); s > 0 {
			streak = StyleStreak.Render(fmt.Sprintf("🔥 %d", s))
		}

		b.WriteString(fmt.Sprintf("%s%s %s  %s  %s\n", cursor, status, name, progress, streak))
	}

	return b.String()
}

// Run starts the dashboard program.
func Run(config DashboardConfig) error {
	m := NewDashboardModel(config)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
