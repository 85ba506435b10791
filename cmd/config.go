package cmd

import (
	"github.com/spf13/cobra"

	apperrors "github.com/mkenter/habitkeep/internal/errors"
)

// configCmd manages application settings.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage settings",
	Long: `View and change settings. Available settings: reminder_time, theme,
weight_unit, distance_unit.

Examples:
  habitkeep config list
  habitkeep config get theme
  habitkeep config set theme dark`,
	RunE: runConfigList,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all settings",
	RunE:  runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get FIELD",
	Short: "Show a setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set FIELD VALUE",
	Short: "Change a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigList(cmd *cobra.Command, args []string) error {
	settings, err := ctx.SettingsRepo.Get()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(settings)
	}

	cli := ctx.CLIFormatter()
	cli.Title("Settings")
	cli.Printf("  reminder_time  %s\n", settings.ReminderTime)
	cli.Printf("  theme          %s\n", settings.Theme)
	cli.Printf("  weight_unit    %s\n", settings.WeightUnit)
	cli.Printf("  distance_unit  %s\n", settings.DistanceUnit)
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	settings, err := ctx.SettingsRepo.Get()
	if err != nil {
		return err
	}

	value, err := settings.Get(args[0])
	if err != nil {
		return apperrors.NewUserErrorWithField("setting", args[0],
			"Unknown setting",
			"Available: reminder_time, theme, weight_unit, distance_unit")
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]string{args[0]: value})
	}

	ctx.Formatter.Println(value)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	settings, err := ctx.SettingsRepo.Get()
	if err != nil {
		return err
	}

	if err := settings.Set(args[0], args[1]); err != nil {
		return apperrors.NewUserErrorWithField("setting", args[0]+"="+args[1],
			err.Error(),
			"Available: reminder_time, theme, weight_unit, distance_unit")
	}

	if err := ctx.SettingsRepo.Update(settings); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(settings)
	}

	ctx.CLIFormatter().Success("Set " + args[0] + " to " + args[1])
	return nil
}
