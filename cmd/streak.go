package cmd

import (
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkenter/habitkeep/internal/habit"
	"github.com/mkenter/habitkeep/internal/model"
	"github.com/mkenter/habitkeep/internal/output"
)

// streakCmd shows streaks for all habits or one habit.
var streakCmd = &cobra.Command{
	Use:   "streak [HABIT]",
	Short: "Show current streaks",
	Long: `Show current streaks, longest first. Daily and custom habits count
consecutive scheduled days; weekly habits count consecutive weeks that met
their quota. Today still being in progress does not break a streak.

Examples:
  habitkeep streak
  habitkeep streak meditation`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStreak,
}

func init() {
	rootCmd.AddCommand(streakCmd)
}

func runStreak(cmd *cobra.Command, args []string) error {
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
		sort.SliceStable(habits, func(i, j int) bool {
			return habit.Streak(habits[i], now) > habit.Streak(habits[j], now)
		})
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewHabitsResponse(habits, now))
	}

	cli := ctx.CLIFormatter()
	if len(habits) == 0 {
		cli.Muted("No habits yet.")
		return nil
	}

	cli.Title("Streaks")
	for _, h := range habits {
		unit := "days"
		if h.ScheduleKind() == model.ScheduleWeekly {
			unit = "weeks"
		}
		cli.Printf("%s %s  %s\n",
			cli.Streak(habit.Streak(h, now)), unit, cli.HabitName(h.Name))
	}
	return nil
}
