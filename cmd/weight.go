package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	apperrors "github.com/mkenter/habitkeep/internal/errors"
	"github.com/mkenter/habitkeep/internal/habit"
	"github.com/mkenter/habitkeep/internal/model"
	"github.com/mkenter/habitkeep/internal/output"
	"github.com/mkenter/habitkeep/internal/parser"
	"github.com/mkenter/habitkeep/internal/validate"
)

var (
	weightFlagDate  string
	weightFlagLimit int
)

// weightCmd records and lists weight measurements.
var weightCmd = &cobra.Command{
	Use:   "weight [VALUE]",
	Short: "Record a weight measurement",
	Long: `Record a body weight measurement for a day. Each day keeps one
measurement; writing again replaces it. Without arguments, recent
measurements are listed oldest first.

Examples:
  habitkeep weight 72.4
  habitkeep weight 72.8 --date yesterday
  habitkeep weight`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWeight,
}

func init() {
	weightCmd.Flags().StringVarP(&weightFlagDate, "date", "d", "",
		"Day to record for (default today)")
	weightCmd.Flags().IntVar(&weightFlagLimit, "limit", 30,
		"Number of measurements to list")
	rootCmd.AddCommand(weightCmd)
}

func runWeight(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return listWeight()
	}

	value, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return apperrors.NewUserErrorWithField("weight", args[0],
			"Invalid weight", "Use a number like 72.4")
	}
	if err := validate.Weight(value); err != nil {
		return err
	}

	date, err := parser.ParseDay(weightFlagDate, time.Now())
	if err != nil {
		return err
	}
	day := habit.FormatDay(date)

	entry := model.NewWeightEntry(day, value)
	if err := ctx.WeightRepo.Upsert(entry); err != nil {
		return err
	}

	settings, _ := ctx.SettingsRepo.Get()
	unit := "kg"
	if settings != nil {
		unit = settings.WeightUnit
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(&output.WeightOutput{Date: day, Weight: value})
	}

	ctx.CLIFormatter().Success(fmt.Sprintf("Recorded %s %s on %s",
		habit.FormatValue(value), unit, day))
	return nil
}

func listWeight() error {
	entries, err := ctx.WeightRepo.List()
	if err != nil {
		return err
	}
	if weightFlagLimit > 0 && len(entries) > weightFlagLimit {
		entries = entries[len(entries)-weightFlagLimit:]
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewWeightResponse(entries))
	}

	cli := ctx.CLIFormatter()
	if len(entries) == 0 {
		cli.Muted("No weight entries yet.")
		return nil
	}

	settings, _ := ctx.SettingsRepo.Get()
	unit := "kg"
	if settings != nil {
		unit = settings.WeightUnit
	}

	cli.Title("Weight")
	for _, e := range entries {
		cli.Printf("%s  %s %s\n", e.Date, habit.FormatValue(e.Weight), unit)
	}
	return nil
}
