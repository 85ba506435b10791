package cmd

import (
	"encoding/json"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkenter/habitkeep/internal/model"
)

var exportFlagOutput string

// exportCmd dumps all data as JSON.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all data as JSON",
	Long: `Export every habit, moment, sleep entry, weight measurement, and the
profile and settings records as a single JSON document.

Examples:
  habitkeep export
  habitkeep export -o backup.json`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFlagOutput, "output", "o", "",
		"Write to a file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

type exportDocument struct {
	ExportedAt string               `json:"exported_at"`
	Habits     []*model.Habit       `json:"habits"`
	Moments    []*model.Moment      `json:"moments"`
	Sleep      []*model.SleepEntry  `json:"sleep"`
	Weight     []*model.WeightEntry `json:"weight"`
	Profile    *model.Profile       `json:"profile"`
	Settings   *model.Settings      `json:"settings"`
}

func runExport(cmd *cobra.Command, args []string) error {
	doc := exportDocument{ExportedAt: time.Now().Format(time.RFC3339)}

	var err error
	if doc.Habits, err = ctx.Tracker.List(); err != nil {
		return err
	}
	if doc.Moments, err = ctx.MomentRepo.List(); err != nil {
		return err
	}
	if doc.Sleep, err = ctx.SleepRepo.List(); err != nil {
		return err
	}
	if doc.Weight, err = ctx.WeightRepo.List(); err != nil {
		return err
	}
	if doc.Profile, err = ctx.ProfileRepo.Get(); err != nil {
		return err
	}
	if doc.Settings, err = ctx.SettingsRepo.Get(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if exportFlagOutput == "" {
		_, err = os.Stdout.Write(data)
		return err
	}

	if err := os.WriteFile(exportFlagOutput, data, 0o600); err != nil {
		return err
	}
	ctx.CLIFormatter().Success("Exported to " + exportFlagOutput)
	return nil
}
