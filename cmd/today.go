package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkenter/habitkeep/internal/habit"
	"github.com/mkenter/habitkeep/internal/output"
	"github.com/mkenter/habitkeep/internal/parser"
)

var todayFlagDate string

// todayCmd shows today's due habits and their progress.
var todayCmd = &cobra.Command{
	Use:     "today",
	Aliases: []string{"t"},
	Short:   "Show habits due today",
	Long: `Show the habits due today with their progress and streaks. This is
also the default command when habitkeep is run with no arguments.

Examples:
  habitkeep today
  habitkeep today --date yesterday
  habitkeep today --format json`,
	RunE: runToday,
}

func init() {
	todayCmd.Flags().StringVarP(&todayFlagDate, "date", "d", "",
		"Evaluate a different day (YYYY-MM-DD or natural language)")
	rootCmd.AddCommand(todayCmd)
}

func runToday(cmd *cobra.Command, args []string) error {
	date, err := parser.ParseDay(todayFlagDate, time.Now())
	if err != nil {
		return err
	}

	due, err := ctx.Tracker.DueToday(date)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewHabitsResponse(due, date))
	}

	cli := ctx.CLIFormatter()
	cli.Title(date.Format("Monday, Jan 2"))

	if len(due) == 0 {
		cli.Muted("Nothing due today.")
		return nil
	}

	completed := 0
	for _, h := range due {
		done := habit.CompletedForPeriod(h, date)
		if done {
			completed++
		}
		line := fmt.Sprintf("%s %s  %s",
			cli.CheckMark(done),
			cli.HabitName(h.Name),
			habit.ProgressText(h, date))
		if s := habit.Streak(h, date); s > 0 {
			line += "  " + cli.Streak(s)
		}
		cli.Println(line)
	}

	cli.Println("")
	ratio := float64(completed) / float64(len(due))
	cli.Printf("%s %d/%d done (%s)\n",
		cli.ProgressBar(ratio, 20), completed, len(due), output.Percent(ratio))
	return nil
}
