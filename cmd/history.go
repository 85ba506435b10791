package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mkenter/habitkeep/internal/habit"
	"github.com/mkenter/habitkeep/internal/model"
)

var historyFlagDays int

// historyCmd shows a completion grid for recent days.
var historyCmd = &cobra.Command{
	Use:     "history [HABIT]",
	Aliases: []string{"hist"},
	Short:   "Show a completion grid for recent days",
	Long: `Show a per-day completion grid, newest day on the right. A filled
cell is a completed day, a dot is a missed day, and a dash is a day the habit
was not scheduled.

Examples:
  habitkeep history
  habitkeep history water --days 60`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyFlagDays, "days", 30, "Number of days to show")
	rootCmd.AddCommand(historyCmd)
}

// gridWidth caps the number of day columns to the terminal width, leaving
// room for the habit name column.
func gridWidth(requested, nameWidth int) int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return requested
	}
	available := width - nameWidth - 2
	if available < 7 {
		available = 7
	}
	if requested > available {
		return available
	}
	return requested
}

type historyDay struct {
	Date      string `json:"date"`
	Due       bool   `json:"due"`
	Completed bool   `json:"completed"`
}

type habitHistory struct {
	Name string       `json:"name"`
	Days []historyDay `json:"days"`
}

func buildHistory(h *model.Habit, today time.Time, days int) habitHistory {
	out := habitHistory{Name: h.Name, Days: make([]historyDay, 0, days)}
	for i := days - 1; i >= 0; i-- {
		date := today.AddDate(0, 0, -i)
		out.Days = append(out.Days, historyDay{
			Date:      habit.FormatDay(date),
			Due:       habit.IsDue(h, date),
			Completed: habit.CompletedForPeriod(h, date),
		})
	}
	return out
}

func runHistory(cmd *cobra.Command, args []string) error {
	now := time.Now()

	var habits []*model.Habit
	if len(args) == 1 {
		h, err := ctx.Tracker.Resolve(args[0])
		if err != nil {
			return err
		}
		habits = []*model.Habit{h}
	} else {
		var err error
		habits, err = ctx.Tracker.List()
		if err != nil {
			return err
		}
	}

	if ctx.IsJSON() {
		histories := make([]habitHistory, len(habits))
		for i, h := range habits {
			histories[i] = buildHistory(h, now, historyFlagDays)
		}
		return ctx.Formatter.JSON(map[string]any{"habits": histories})
	}

	cli := ctx.CLIFormatter()
	if len(habits) == 0 {
		cli.Muted("No habits yet.")
		return nil
	}

	nameWidth := 0
	for _, h := range habits {
		if len(h.Name) > nameWidth {
			nameWidth = len(h.Name)
		}
	}
	days := gridWidth(historyFlagDays, nameWidth)

	cli.Title(now.AddDate(0, 0, -(days-1)).Format("Jan 2") + " to " + now.Format("Jan 2"))
	for _, h := range habits {
		hist := buildHistory(h, now, days)
		row := ""
		for _, d := range hist.Days {
			switch {
			case d.Completed && d.Due:
				row += "█"
			case d.Completed:
				row += "░" // vacuously complete off day
			case !d.Due:
				row += "—"
			default:
				row += "·"
			}
		}
		cli.Printf("%-*s  %s\n", nameWidth, h.Name, row)
	}
	return nil
}
