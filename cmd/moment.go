package cmd

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkenter/habitkeep/internal/habit"
	"github.com/mkenter/habitkeep/internal/model"
	"github.com/mkenter/habitkeep/internal/output"
	"github.com/mkenter/habitkeep/internal/parser"
	"github.com/mkenter/habitkeep/internal/validate"
)

var (
	momentFlagDate  string
	momentFlagLimit int
)

// momentCmd manages daily moments.
var momentCmd = &cobra.Command{
	Use:     "moment [TEXT...]",
	Aliases: []string{"m"},
	Short:   "Record a memorable moment for the day",
	Long: `Record a short memorable note for a day. Each day keeps one moment;
writing again replaces it. Without arguments, recent moments are listed.

Examples:
  habitkeep moment "First 5k without stopping"
  habitkeep moment --date yesterday "Cooked for friends"
  habitkeep moment`,
	RunE: runMoment,
}

func init() {
	momentCmd.Flags().StringVarP(&momentFlagDate, "date", "d", "",
		"Day to record for (default today)")
	momentCmd.Flags().IntVar(&momentFlagLimit, "limit", 14,
		"Number of moments to list")
	rootCmd.AddCommand(momentCmd)
}

func runMoment(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return listMoments()
	}

	text := strings.TrimSpace(strings.Join(args, " "))
	if err := validate.Moment(text); err != nil {
		return err
	}

	date, err := parser.ParseDay(momentFlagDate, time.Now())
	if err != nil {
		return err
	}
	day := habit.FormatDay(date)

	moment := model.NewMoment(day, text)
	if err := ctx.MomentRepo.Upsert(moment); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(&output.MomentOutput{Date: day, Text: text})
	}

	ctx.CLIFormatter().Success("Moment saved for " + day)
	return nil
}

func listMoments() error {
	moments, err := ctx.MomentRepo.List()
	if err != nil {
		return err
	}
	if momentFlagLimit > 0 && len(moments) > momentFlagLimit {
		moments = moments[:momentFlagLimit]
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewMomentsResponse(moments))
	}

	cli := ctx.CLIFormatter()
	if len(moments) == 0 {
		cli.Muted("No moments yet.")
		return nil
	}

	cli.Title("Moments")
	for _, m := range moments {
		cli.Printf("%s  %s\n", m.Date, m.Text)
	}
	return nil
}
