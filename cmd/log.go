package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	apperrors "github.com/mkenter/habitkeep/internal/errors"
	"github.com/mkenter/habitkeep/internal/habit"
	"github.com/mkenter/habitkeep/internal/output"
	"github.com/mkenter/habitkeep/internal/parser"
)

var logFlagDate string

// logCmd records an explicit value for a habit.
var logCmd = &cobra.Command{
	Use:     "log HABIT VALUE",
	Aliases: []string{"l"},
	Short:   "Log a value for a habit",
	Long: `Log a value for a habit on a day, replacing any value already logged
for that day. Use 'done' instead to jump straight to the target.

Examples:
  habitkeep log water 500
  habitkeep log reading 25 --date yesterday
  habitkeep log running 5.5 --date 2026-08-28`,
	Args: cobra.ExactArgs(2),
	RunE: runLog,
}

func init() {
	logCmd.Flags().StringVarP(&logFlagDate, "date", "d", "",
		"Day to log for (YYYY-MM-DD or natural language, default today)")
	rootCmd.AddCommand(logCmd)
}

func runLog(cmd *cobra.Command, args []string) error {
	h, err := ctx.Tracker.Resolve(args[0])
	if err != nil {
		return err
	}

	value, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return apperrors.NewUserErrorWithField("value", args[1],
			"Invalid value", "Use a number like 500 or 2.5")
	}

	date, err := parser.ParseDay(logFlagDate, time.Now())
	if err != nil {
		return err
	}
	day := habit.FormatDay(date)

	updated, err := ctx.Tracker.RecordEntry(h.ID, day, value)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(&output.EntryResponse{
			Status: "logged",
			Date:   day,
			Value:  updated.EntryValue(day),
			Habit:  output.NewHabitOutput(updated, date),
		})
	}

	cli := ctx.CLIFormatter()
	cli.Success(fmt.Sprintf("Logged %s %s for %s on %s",
		habit.FormatValue(updated.EntryValue(day)), updated.Unit,
		cli.HabitName(updated.Name), day))
	if habit.CompletedForPeriod(updated, date) {
		cli.Printf("  %s  %s\n", habit.ProgressText(updated, date),
			cli.Streak(habit.Streak(updated, date)))
	} else {
		cli.Muted("  " + habit.ProgressText(updated, date))
	}
	return nil
}
