// Package runtime provides the application runtime context for Habitkeep.
package runtime

import (
	"os"

	"github.com/mkenter/habitkeep/internal/output"
	"github.com/mkenter/habitkeep/internal/storage"
	"github.com/mkenter/habitkeep/internal/tracker"
)

// Context holds the application runtime context.
type Context struct {
	DB        *storage.DB
	Formatter *output.Formatter
	Tracker   *tracker.Tracker

	// Repositories
	HabitRepo    *storage.HabitRepo
	MomentRepo   *storage.MomentRepo
	SleepRepo    *storage.SleepRepo
	WeightRepo   *storage.WeightRepo
	ProfileRepo  *storage.ProfileRepo
	SettingsRepo *storage.SettingsRepo

	// Debug mode
	Debug bool
}

// Options configures the runtime context.
type Options struct {
	DBPath    string
	InMemory  bool
	Format    output.Format
	ColorMode output.ColorMode
	Debug     bool
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	return Options{
		DBPath:    storage.DefaultPath(),
		InMemory:  false,
		Format:    output.FormatCLI,
		ColorMode: output.ColorAuto,
		Debug:     false,
	}
}

// New creates a new runtime context.
func New(opts Options) (*Context, error) {
	// Check for environment variable override
	if envPath := os.Getenv("HABITKEEP_DATABASE"); envPath != "" {
		if envPath == ":memory:" {
			opts.InMemory = true
		} else {
			opts.DBPath = envPath
		}
	}

	db, err := storage.Open(storage.Options{
		Path:     opts.DBPath,
		InMemory: opts.InMemory,
	})
	if err != nil {
		return nil, err
	}

	habitRepo := storage.NewHabitRepo(db)

	formatter := output.NewFormatter()
	formatter.Format = opts.Format
	formatter.ColorMode = opts.ColorMode

	return &Context{
		DB:           db,
		Formatter:    formatter,
		Tracker:      tracker.New(habitRepo),
		HabitRepo:    habitRepo,
		MomentRepo:   storage.NewMomentRepo(db),
		SleepRepo:    storage.NewSleepRepo(db),
		WeightRepo:   storage.NewWeightRepo(db),
		ProfileRepo:  storage.NewProfileRepo(db),
		SettingsRepo: storage.NewSettingsRepo(db),
		Debug:        opts.Debug,
	}, nil
}

// Close closes the runtime context.
func (c *Context) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

// CLIFormatter returns a CLI formatter.
func (c *Context) CLIFormatter() *output.CLIFormatter {
	return output.NewCLIFormatter(c.Formatter)
}

// JSONFormatter returns a JSON formatter.
func (c *Context) JSONFormatter() *output.JSONFormatter {
	return output.NewJSONFormatter(c.Formatter)
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.Format == output.FormatJSON
}
