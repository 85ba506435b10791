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
	sleepFlagDate  string
	sleepFlagLimit int
)

// sleepCmd records and lists sleep entries.
var sleepCmd = &cobra.Command{
	Use:   "sleep [HOURS] [SCORE]",
	Short: "Record last night's sleep",
	Long: `Record hours slept and a quality score from 1 to 10 for a day. Each
day keeps one entry; writing again replaces it. Without arguments, recent
entries are listed.

Examples:
  habitkeep sleep 7.5 8
  habitkeep sleep 6 4 --date yesterday
  habitkeep sleep`,
	Args: cobra.MaximumNArgs(2),
	RunE: runSleep,
}

func init() {
	sleepCmd.Flags().StringVarP(&sleepFlagDate, "date", "d", "",
		"Day to record for (default today)")
	sleepCmd.Flags().IntVar(&sleepFlagLimit, "limit", 14,
		"Number of entries to list")
	rootCmd.AddCommand(sleepCmd)
}

func runSleep(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return listSleep()
	}

	hours, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return apperrors.NewUserErrorWithField("hours", args[0],
			"Invalid hours", "Use a number like 7.5")
	}
	if err := validate.Hours(hours); err != nil {
		return err
	}

	score := 5
	if len(args) == 2 {
		score, err = strconv.Atoi(args[1])
		if err != nil {
			return apperrors.NewUserErrorWithField("score", args[1],
				"Invalid score", "Use a whole number from 1 to 10")
		}
	}
	if err := validate.SleepScore(score); err != nil {
		return err
	}

	date, err := parser.ParseDay(sleepFlagDate, time.Now())
	if err != nil {
		return err
	}
	day := habit.FormatDay(date)

	entry := model.NewSleepEntry(day, hours, score)
	if err := ctx.SleepRepo.Upsert(entry); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(&output.SleepOutput{Date: day, Hours: hours, Score: score})
	}

	ctx.CLIFormatter().Success(fmt.Sprintf("Slept %sh (score %d/10) on %s",
		habit.FormatValue(hours), score, day))
	return nil
}

func listSleep() error {
	entries, err := ctx.SleepRepo.List()
	if err != nil {
		return err
	}
	if sleepFlagLimit > 0 && len(entries) > sleepFlagLimit {
		entries = entries[:sleepFlagLimit]
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewSleepResponse(entries))
	}

	cli := ctx.CLIFormatter()
	if len(entries) == 0 {
		cli.Muted("No sleep entries yet.")
		return nil
	}

	cli.Title("Sleep")
	for _, e := range entries {
		cli.Printf("%s  %sh  score %d/10\n",
			e.Date, habit.FormatValue(e.Hours), e.Score)
	}
	return nil
}
