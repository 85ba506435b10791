package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

// profileCmd shows or updates the user profile.
var profileCmd = &cobra.Command{
	Use:   "profile [NAME...]",
	Short: "Show or set the user profile",
	Long: `Show the user profile, or set the display name by passing it as an
argument.

Examples:
  habitkeep profile
  habitkeep profile "Marieke"`,
	RunE: runProfile,
}

func init() {
	rootCmd.AddCommand(profileCmd)
}

func runProfile(cmd *cobra.Command, args []string) error {
	profile, err := ctx.ProfileRepo.Get()
	if err != nil {
		return err
	}

	if len(args) > 0 {
		profile.Name = strings.TrimSpace(strings.Join(args, " "))
		if err := ctx.ProfileRepo.Update(profile); err != nil {
			return err
		}
		if !ctx.IsJSON() {
			ctx.CLIFormatter().Success("Profile updated")
		}
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(profile)
	}

	cli := ctx.CLIFormatter()
	name := profile.Name
	if name == "" {
		name = "(unnamed)"
	}
	cli.Title(name)
	cli.Printf("  Member since: %s\n", profile.JoinDate)
	if profile.Timezone != "" {
		cli.Printf("  Timezone:     %s\n", profile.Timezone)
	}
	return nil
}
