package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkenter/habitkeep/internal/habit"
	"github.com/mkenter/habitkeep/internal/model"
	"github.com/mkenter/habitkeep/internal/output"
	"github.com/mkenter/habitkeep/internal/stats"
)

var statsFlagWindow int

// statsCmd shows aggregate statistics.
var statsCmd = &cobra.Command{
	Use:   "stats [HABIT]",
	Short: "Show habit statistics",
	Long: `Show completion rates, streaks, and journal summaries. With a habit
argument, only that habit's statistics are shown.

Examples:
  habitkeep stats
  habitkeep stats water
  habitkeep stats --window 90`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStats,
}

func init() {
	statsCmd.Flags().IntVarP(&statsFlagWindow, "window", "w", stats.DefaultWindowDays,
		"Trailing window in days for completion rates")
	rootCmd.AddCommand(statsCmd)
}

type habitStats struct {
	Name string `json:"name"`
	stats.HabitSummary
}

type statsResponse struct {
	Habits []habitStats         `json:"habits"`
	Sleep  *stats.SleepSummary  `json:"sleep,omitempty"`
	Weight *stats.WeightSummary `json:"weight,omitempty"`
}

func runStats(cmd *cobra.Command, args []string) error {
	now := time.Now()

	var habits []*model.Habit
	single := len(args) == 1
	if single {
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

	resp := statsResponse{}
	for _, h := range habits {
		resp.Habits = append(resp.Habits, habitStats{
			Name:         h.Name,
			HabitSummary: stats.SummarizeHabit(h, now, statsFlagWindow),
		})
	}

	if !single {
		if entries, err := ctx.SleepRepo.List(); err == nil && len(entries) > 0 {
			s := stats.SummarizeSleep(entries)
			resp.Sleep = &s
		}
		if entries, err := ctx.WeightRepo.List(); err == nil && len(entries) > 0 {
			w := stats.SummarizeWeight(entries)
			resp.Weight = &w
		}
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(resp)
	}

	cli := ctx.CLIFormatter()
	if len(resp.Habits) == 0 {
		cli.Muted("No habits yet.")
		return nil
	}

	cli.Title(fmt.Sprintf("Last %d days", statsFlagWindow))
	for i, hs := range resp.Habits {
		cli.Printf("%s\n", cli.HabitName(hs.Name))
		cli.Printf("  %s %s  streak %s  %d total completions\n",
			cli.ProgressBar(hs.CompletionRate, 20),
			output.Percent(hs.CompletionRate),
			cli.Streak(hs.Streak),
			hs.TotalCompletions)
		if single {
			cli.Printf("  Schedule: %s\n", habit.ScheduleText(habits[i]))
		}
	}

	if resp.Sleep != nil {
		cli.Println("")
		cli.Title("Sleep")
		cli.Printf("  %.1fh average over %d nights, score %d/10, trend %s\n",
			resp.Sleep.AvgHours, resp.Sleep.Nights, resp.Sleep.AvgScore,
			resp.Sleep.RecentTrend)
	}
	if resp.Weight != nil {
		cli.Println("")
		cli.Title("Weight")
		settings, err := ctx.SettingsRepo.Get()
		unit := "kg"
		if err == nil {
			unit = settings.WeightUnit
		}
		cli.Printf("  %s %s latest, %+.1f %s over %d entries\n",
			habit.FormatValue(resp.Weight.Latest), unit,
			resp.Weight.Delta, unit, resp.Weight.Entries)
	}
	return nil
}
