package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mkenter/habitkeep/internal/habit"
	"github.com/mkenter/habitkeep/internal/template"
)

var templatesFlagCategory string

// templatesCmd lists the built-in habit templates.
var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List built-in habit templates",
	Long: `List the built-in habit templates. Use a template with
'habitkeep habit add --template <name>'.

Examples:
  habitkeep templates
  habitkeep templates --category Fitness`,
	RunE: runTemplates,
}

func init() {
	templatesCmd.Flags().StringVarP(&templatesFlagCategory, "category", "c", "",
		"Only show templates in this category")
	rootCmd.AddCommand(templatesCmd)
}

func runTemplates(cmd *cobra.Command, args []string) error {
	var templates []template.Template
	if templatesFlagCategory != "" {
		templates = template.ByCategory(templatesFlagCategory)
	} else {
		templates = template.All()
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]any{
			"templates": templates,
			"count":     len(templates),
		})
	}

	cli := ctx.CLIFormatter()
	if len(templates) == 0 {
		cli.Muted("No templates in category '" + templatesFlagCategory + "'.")
		return nil
	}

	for _, category := range template.Categories() {
		if templatesFlagCategory != "" && category != templatesFlagCategory {
			continue
		}
		cli.Title(category)
		for _, t := range template.ByCategory(category) {
			cli.Printf("  %s  %s %s\n",
				cli.HabitName(t.Name), habit.FormatValue(t.Target), t.Unit)
			cli.Muted("    " + t.Description)
		}
	}
	return nil
}
