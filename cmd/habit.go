package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	apperrors "github.com/mkenter/habitkeep/internal/errors"
	"github.com/mkenter/habitkeep/internal/habit"
	"github.com/mkenter/habitkeep/internal/model"
	"github.com/mkenter/habitkeep/internal/output"
	"github.com/mkenter/habitkeep/internal/template"
	"github.com/mkenter/habitkeep/internal/tracker"
)

// Habit command flags.
var (
	habitFlagIcon        string
	habitFlagTarget      float64
	habitFlagUnit        string
	habitFlagType        string
	habitFlagFlexible    bool
	habitFlagQuick       string
	habitFlagSchedule    string
	habitFlagFrequency   int
	habitFlagDays        string
	habitFlagTemplate    string
	habitFlagInteractive bool
)

// habitCmd represents the habit command.
var habitCmd = &cobra.Command{
	Use:     "habit",
	Aliases: []string{"habits", "h"},
	Short:   "Manage habits",
	Long: `View and manage habits.

Examples:
  habitkeep habit list
  habitkeep habit add "Drink Water" --target 2000 --unit ml
  habitkeep habit add --template "Meditation"
  habitkeep habit add --interactive
  habitkeep habit show water
  habitkeep habit delete water`,
	RunE: runHabitList,
}

// habitListCmd lists all habits.
var habitListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all habits",
	RunE:    runHabitList,
}

// habitAddCmd creates a new habit.
var habitAddCmd = &cobra.Command{
	Use:   "add [NAME]",
	Short: "Add a new habit",
	Long: `Add a new habit. Schedules take three forms: daily (the default),
weekly (due until a number of days per week have met target), and custom
(due on fixed weekdays, 0=Sunday .. 6=Saturday).

Examples:
  habitkeep habit add "Drink Water" --target 2000 --unit ml --type quantity
  habitkeep habit add "Gym" --target 1 --unit session --schedule weekly --frequency 3
  habitkeep habit add "Piano" --target 20 --unit min --schedule custom --days 1,3,5
  habitkeep habit add --template "Running"
  habitkeep habit add --interactive`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHabitAdd,
}

// habitShowCmd shows a single habit in detail.
var habitShowCmd = &cobra.Command{
	Use:   "show HABIT",
	Short: "Show a habit's schedule, progress, and streak",
	Args:  cobra.ExactArgs(1),
	RunE:  runHabitShow,
}

// habitEditCmd edits a habit's fields, leaving entries untouched.
var habitEditCmd = &cobra.Command{
	Use:   "edit HABIT",
	Short: "Edit a habit",
	Long: `Edit a habit's name, target, unit, or schedule. Logged entries are
kept as they are. Only the flags you pass are changed.`,
	Args: cobra.ExactArgs(1),
	RunE: runHabitEdit,
}

// habitDeleteCmd removes a habit and all its entries.
var habitDeleteCmd = &cobra.Command{
	Use:     "delete HABIT",
	Aliases: []string{"rm", "remove"},
	Short:   "Delete a habit and its history",
	Args:    cobra.ExactArgs(1),
	RunE:    runHabitDelete,
}

func init() {
	addFlags := func(cmd *cobra.Command) {
		cmd.Flags().StringVar(&habitFlagIcon, "icon", "", "Icon name")
		cmd.Flags().Float64VarP(&habitFlagTarget, "target", "t", 1, "Daily target (must be > 0)")
		cmd.Flags().StringVarP(&habitFlagUnit, "unit", "u", "times", "Unit label")
		cmd.Flags().StringVar(&habitFlagType, "type", "completion",
			"Tracking type: increment, completion, duration, quantity")
		cmd.Flags().BoolVar(&habitFlagFlexible, "flexible", false, "Allow logging beyond target")
		cmd.Flags().StringVar(&habitFlagQuick, "quick", "", "Comma-separated quick entry values")
		cmd.Flags().StringVarP(&habitFlagSchedule, "schedule", "s", "daily",
			"Schedule type: daily, weekly, custom")
		cmd.Flags().IntVar(&habitFlagFrequency, "frequency", 1, "Days per week (weekly schedule)")
		cmd.Flags().StringVar(&habitFlagDays, "days", "",
			"Comma-separated weekday indices, 0=Sunday (custom schedule)")
	}

	addFlags(habitAddCmd)
	habitAddCmd.Flags().StringVar(&habitFlagTemplate, "template", "", "Pre-fill from a template")
	habitAddCmd.Flags().BoolVarP(&habitFlagInteractive, "interactive", "i", false,
		"Create the habit through an interactive form")
	addFlags(habitEditCmd)

	habitCmd.AddCommand(habitListCmd)
	habitCmd.AddCommand(habitAddCmd)
	habitCmd.AddCommand(habitShowCmd)
	habitCmd.AddCommand(habitEditCmd)
	habitCmd.AddCommand(habitDeleteCmd)
	rootCmd.AddCommand(habitCmd)
}

// parseSchedule builds a schedule from the habit flags. Returns nil for daily.
func parseSchedule(scheduleType string, frequency int, days string) (*model.Schedule, error) {
	switch scheduleType {
	case "", "daily":
		return nil, nil
	case "weekly":
		return &model.Schedule{Type: model.ScheduleWeekly, Frequency: frequency}, nil
	case "custom":
		var indices []int
		for _, part := range strings.Split(days, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			idx, err := strconv.Atoi(part)
			if err != nil {
				return nil, apperrors.NewUserErrorWithField("days", part,
					"Invalid weekday index",
					"Use numbers 0-6, like '--days 1,3,5' for Mon, Wed, Fri")
			}
			indices = append(indices, idx)
		}
		sort.Ints(indices)
		return &model.Schedule{Type: model.ScheduleCustom, Days: indices}, nil
	default:
		return nil, apperrors.WrapUserError(apperrors.ErrInvalidSchedule,
			"Unknown schedule type '"+scheduleType+"'",
			"Use 'daily', 'weekly', or 'custom'")
	}
}

// parseQuickValues parses a comma-separated list of quick entry values.
func parseQuickValues(quick string) ([]float64, error) {
	if strings.TrimSpace(quick) == "" {
		return nil, nil
	}
	var values []float64
	for _, part := range strings.Split(quick, ",") {
		part = strings.TrimSpace(part)
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, apperrors.NewUserErrorWithField("quick", part,
				"Invalid quick value",
				"Use comma-separated numbers, like '--quick 250,500,1000'")
		}
		values = append(values, v)
	}
	return values, nil
}

func draftFromFlags(name string) (tracker.Draft, error) {
	schedule, err := parseSchedule(habitFlagSchedule, habitFlagFrequency, habitFlagDays)
	if err != nil {
		return tracker.Draft{}, err
	}
	quick, err := parseQuickValues(habitFlagQuick)
	if err != nil {
		return tracker.Draft{}, err
	}
	return tracker.Draft{
		Name:           name,
		Icon:           habitFlagIcon,
		Target:         habitFlagTarget,
		Unit:           habitFlagUnit,
		TrackingType:   model.TrackingType(habitFlagType),
		TargetFlexible: habitFlagFlexible,
		QuickValues:    quick,
		Schedule:       schedule,
	}, nil
}

func draftFromTemplate(t template.Template) tracker.Draft {
	return tracker.Draft{
		Name:           t.Name,
		Icon:           t.Icon,
		Target:         t.Target,
		Unit:           t.Unit,
		TrackingType:   t.TrackingType,
		TargetFlexible: t.TargetFlexible,
		QuickValues:    t.QuickValues,
	}
}

func runHabitAdd(cmd *cobra.Command, args []string) error {
	var draft tracker.Draft

	switch {
	case habitFlagInteractive:
		d, err := habitForm()
		if err != nil {
			return err
		}
		draft = d

	case habitFlagTemplate != "":
		t, ok := template.Find(habitFlagTemplate)
		if !ok {
			return apperrors.WrapUserError(apperrors.ErrTemplateNotFound,
				"No template named '"+habitFlagTemplate+"'",
				"Use 'habitkeep templates' to see available templates")
		}
		draft = draftFromTemplate(t)
		if len(args) > 0 {
			draft.Name = args[0]
		}

	default:
		if len(args) == 0 {
			return apperrors.NewUserError("Habit name is required",
				"Pass a name, or use --template or --interactive")
		}
		d, err := draftFromFlags(args[0])
		if err != nil {
			return err
		}
		draft = d
	}

	h, err := ctx.Tracker.Create(draft)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewHabitOutput(h, time.Now()))
	}

	cli := ctx.CLIFormatter()
	if draft.Schedule != nil && draft.Schedule.Type == model.ScheduleWeekly &&
		draft.Schedule.Frequency > 7 {
		cli.Warning("A weekly frequency above 7 can never be met.")
	}
	cli.Success(fmt.Sprintf("Added habit %s (%s)", cli.HabitName(h.Name), habit.ScheduleText(h)))
	return nil
}

// habitForm runs the interactive creation form, optionally pre-filled from a
// template picked in the form itself.
func habitForm() (tracker.Draft, error) {
	var (
		templateName string
		name         string
		targetStr    string
		unit         string
		trackingType model.TrackingType
		scheduleType model.ScheduleType
		frequencyStr string
		days         []int
	)

	templateOptions := []huh.Option[string]{huh.NewOption("Start from scratch", "")}
	for _, t := range template.All() {
		label := fmt.Sprintf("%s (%s, %s %s)", t.Name, t.Category,
			habit.FormatValue(t.Target), t.Unit)
		templateOptions = append(templateOptions, huh.NewOption(label, t.Name))
	}

	pick := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Template").
				Options(templateOptions...).
				Value(&templateName),
		),
	)
	if err := pick.Run(); err != nil {
		return tracker.Draft{}, err
	}

	if t, ok := template.Find(templateName); ok {
		name = t.Name
		targetStr = habit.FormatValue(t.Target)
		unit = t.Unit
		trackingType = t.TrackingType
	} else {
		targetStr = "1"
		unit = "times"
		trackingType = model.TrackingCompletion
	}
	scheduleType = model.ScheduleDaily
	frequencyStr = "1"

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("habit name cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Target").
				Value(&targetStr).
				Validate(func(s string) error {
					v, err := strconv.ParseFloat(s, 64)
					if err != nil {
						return err
					}
					if v <= 0 {
						return fmt.Errorf("target must be greater than zero")
					}
					return nil
				}),
			huh.NewInput().
				Title("Unit").
				Value(&unit),
			huh.NewSelect[model.TrackingType]().
				Title("Tracking type").
				Options(
					huh.NewOption("Completion", model.TrackingCompletion),
					huh.NewOption("Increment", model.TrackingIncrement),
					huh.NewOption("Duration", model.TrackingDuration),
					huh.NewOption("Quantity", model.TrackingQuantity),
				).
				Value(&trackingType),
		),
		huh.NewGroup(
			huh.NewSelect[model.ScheduleType]().
				Title("Schedule").
				Options(
					huh.NewOption("Daily", model.ScheduleDaily),
					huh.NewOption("Weekly quota", model.ScheduleWeekly),
					huh.NewOption("Fixed weekdays", model.ScheduleCustom),
				).
				Value(&scheduleType),
			huh.NewInput().
				Title("Days per week").
				Description("For weekly schedules").
				Value(&frequencyStr),
			huh.NewMultiSelect[int]().
				Title("Weekdays").
				Description("For fixed-weekday schedules").
				Options(
					huh.NewOption("Monday", 1),
					huh.NewOption("Tuesday", 2),
					huh.NewOption("Wednesday", 3),
					huh.NewOption("Thursday", 4),
					huh.NewOption("Friday", 5),
					huh.NewOption("Saturday", 6),
					huh.NewOption("Sunday", 0),
				).
				Value(&days),
		),
	)
	if err := form.Run(); err != nil {
		return tracker.Draft{}, err
	}

	target, err := strconv.ParseFloat(targetStr, 64)
	if err != nil {
		return tracker.Draft{}, apperrors.NewUserError("Invalid target", "Use a number like 10 or 2.5")
	}

	var schedule *model.Schedule
	switch scheduleType {
	case model.ScheduleWeekly:
		frequency, err := strconv.Atoi(strings.TrimSpace(frequencyStr))
		if err != nil || frequency < 1 {
			return tracker.Draft{}, apperrors.NewUserError("Invalid frequency",
				"Use a whole number of days per week")
		}
		schedule = &model.Schedule{Type: model.ScheduleWeekly, Frequency: frequency}
	case model.ScheduleCustom:
		sort.Ints(days)
		schedule = &model.Schedule{Type: model.ScheduleCustom, Days: days}
	}

	draft := tracker.Draft{
		Name:         strings.TrimSpace(name),
		Target:       target,
		Unit:         strings.TrimSpace(unit),
		TrackingType: trackingType,
		Schedule:     schedule,
	}
	if t, ok := template.Find(templateName); ok {
		draft.Icon = t.Icon
		draft.TargetFlexible = t.TargetFlexible
		draft.QuickValues = t.QuickValues
	}
	return draft, nil
}

func runHabitList(cmd *cobra.Command, args []string) error {
	habits, err := ctx.Tracker.List()
	if err != nil {
		return err
	}

	now := time.Now()

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewHabitsResponse(habits, now))
	}

	cli := ctx.CLIFormatter()
	if len(habits) == 0 {
		cli.Muted("No habits yet.")
		cli.Muted("Use 'habitkeep habit add <name>' to create one.")
		return nil
	}

	cli.Title(fmt.Sprintf("Habits (%d)", len(habits)))
	for _, h := range habits {
		cli.Printf("%s %s  %s  %s\n",
			cli.CheckMark(habit.CompletedForPeriod(h, now)),
			cli.HabitName(h.Name),
			habit.ScheduleText(h),
			cli.Streak(habit.Streak(h, now)))
	}
	return nil
}

func runHabitShow(cmd *cobra.Command, args []string) error {
	h, err := ctx.Tracker.Resolve(args[0])
	if err != nil {
		return err
	}

	now := time.Now()

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewHabitOutput(h, now))
	}

	cli := ctx.CLIFormatter()
	cli.Title(h.Name)
	cli.Printf("  Schedule:  %s\n", habit.ScheduleText(h))
	cli.Printf("  Target:    %s %s\n", habit.FormatValue(h.Target), h.Unit)
	if h.TrackingType != "" {
		cli.Printf("  Tracking:  %s\n", h.TrackingType)
	}
	cli.Printf("  Today:     %s\n", habit.ProgressText(h, now))
	if !habit.IsDue(h, now) {
		cli.Muted("  Not due today.")
	}
	cli.Printf("  Streak:    %s\n", cli.Streak(habit.Streak(h, now)))
	cli.Printf("  Entries:   %d\n", len(h.Entries))
	return nil
}

func runHabitEdit(cmd *cobra.Command, args []string) error {
	h, err := ctx.Tracker.Resolve(args[0])
	if err != nil {
		return err
	}

	// Start from the habit's current fields, then apply only changed flags.
	draft := tracker.Draft{
		Name:           h.Name,
		Icon:           h.Icon,
		Target:         h.Target,
		Unit:           h.Unit,
		TrackingType:   h.TrackingType,
		TargetFlexible: h.TargetFlexible,
		QuickValues:    h.QuickValues,
		Schedule:       h.Schedule,
	}

	flags := cmd.Flags()
	if flags.Changed("icon") {
		draft.Icon = habitFlagIcon
	}
	if flags.Changed("target") {
		draft.Target = habitFlagTarget
	}
	if flags.Changed("unit") {
		draft.Unit = habitFlagUnit
	}
	if flags.Changed("type") {
		draft.TrackingType = model.TrackingType(habitFlagType)
	}
	if flags.Changed("flexible") {
		draft.TargetFlexible = habitFlagFlexible
	}
	if flags.Changed("quick") {
		quick, err := parseQuickValues(habitFlagQuick)
		if err != nil {
			return err
		}
		draft.QuickValues = quick
	}
	if flags.Changed("schedule") || flags.Changed("frequency") || flags.Changed("days") {
		scheduleType := habitFlagSchedule
		if !flags.Changed("schedule") {
			scheduleType = string(h.ScheduleKind())
		}
		schedule, err := parseSchedule(scheduleType, habitFlagFrequency, habitFlagDays)
		if err != nil {
			return err
		}
		draft.Schedule = schedule
	}

	updated, err := ctx.Tracker.Edit(h.ID, draft)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewHabitOutput(updated, time.Now()))
	}

	ctx.CLIFormatter().Success(fmt.Sprintf("Updated habit %s", updated.Name))
	return nil
}

func runHabitDelete(cmd *cobra.Command, args []string) error {
	h, err := ctx.Tracker.Resolve(args[0])
	if err != nil {
		return err
	}

	if err := ctx.Tracker.Delete(h.ID); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]string{"status": "deleted", "id": h.ID})
	}

	ctx.CLIFormatter().Success(fmt.Sprintf("Deleted habit %s", h.Name))
	return nil
}
