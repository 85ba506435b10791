package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mkenter/habitkeep/internal/tui"
)

// dashboardCmd launches the interactive terminal dashboard.
var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash", "ui"},
	Short:   "Open the interactive dashboard",
	Long: `Open a full-screen dashboard showing today's habits. Move with j/k,
log a habit with space or enter, refresh with r, quit with q.`,
	RunE: runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	return tui.Run(tui.DashboardConfig{Tracker: ctx.Tracker})
}
