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

var doneFlagDate string

// doneCmd marks a habit complete for a day.
var doneCmd = &cobra.Command{
	Use:     "done HABIT [VALUE]",
	Aliases: []string{"d", "check"},
	Short:   "Mark a habit done",
	Long: `Mark a habit done for a day. How the optional value is interpreted
depends on the habit's tracking type: completion habits jump straight to
target, increment habits add the value (default 1) to the day's count, and
duration or quantity habits take the value as the day's total.

Examples:
  habitkeep done meditation
  habitkeep done pushups 20
  habitkeep done water 2000 --date yesterday`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runDone,
}

func init() {
	doneCmd.Flags().StringVarP(&doneFlagDate, "date", "d", "",
		"Day to complete (YYYY-MM-DD or natural language, default today)")
	rootCmd.AddCommand(doneCmd)
}

func runDone(cmd *cobra.Command, args []string) error {
	h, err := ctx.Tracker.Resolve(args[0])
	if err != nil {
		return err
	}

	var value float64
	hasValue := len(args) == 2
	if hasValue {
		value, err = strconv.ParseFloat(args[1], 64)
		if err != nil {
			return apperrors.NewUserErrorWithField("value", args[1],
				"Invalid value", "Use a number like 20 or 2.5")
		}
	}

	date, err := parser.ParseDay(doneFlagDate, time.Now())
	if err != nil {
		return err
	}
	day := habit.FormatDay(date)

	updated, err := ctx.Tracker.Complete(h.ID, day, value, hasValue)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(&output.EntryResponse{
			Status: "done",
			Date:   day,
			Value:  updated.EntryValue(day),
			Habit:  output.NewHabitOutput(updated, date),
		})
	}

	cli := ctx.CLIFormatter()
	if habit.CompletedForPeriod(updated, date) {
		cli.Success(fmt.Sprintf("%s done for %s  %s",
			cli.HabitName(updated.Name), day,
			cli.Streak(habit.Streak(updated, date))))
	} else {
		cli.Success(fmt.Sprintf("Logged %s on %s", cli.HabitName(updated.Name), day))
		cli.Muted("  " + habit.ProgressText(updated, date))
	}
	return nil
}
