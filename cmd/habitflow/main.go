package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/habitflow/habitflow/internal/cli"
	"github.com/habitflow/habitflow/internal/errors"
	"github.com/habitflow/habitflow/internal/habits"
	"github.com/habitflow/habitflow/internal/logger"
	"github.com/habitflow/habitflow/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Data    string `help:"Data location: a directory for file-backed storage, or a .db path for SQLite." env:"HABITFLOW_DATA" default:"~/.config/habitflow"`
	Debug   bool   `help:"Enable debug logging to stderr." env:"HABITFLOW_DEBUG"`

	Init    cli.InitCmd    `cmd:"" help:"Initialize habitflow storage."`
	Habit   cli.HabitCmd   `cmd:"" help:"Manage the habit catalog."`
	Track   cli.TrackCmd   `cmd:"" help:"Mark and review daily completions."`
	Log     cli.LogCmd     `cmd:"" help:"Show habit history (ASCII grid)."`
	Stats   cli.StatsCmd   `cmd:"" help:"Show consistency statistics."`
	Profile cli.ProfileCmd `cmd:"" help:"Manage the user profile."`
	DataCmd cli.DataCmd    `cmd:"" name:"data" help:"Export or import all data."`
	Remind  cli.RemindCmd  `cmd:"" help:"Run the reminder loop."`
	Doctor  cli.DoctorCmd  `cmd:"" help:"Run health checks and diagnostics."`
}

func main() {
	// Optional .env for HABITFLOW_* variables; missing file is fine.
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name("habitflow"),
		kong.Description("Personal habit tracker with streaks and consistency stats"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": "v0.1.0"},
	)

	dataPath := expandHome(CLI.Data)

	var store storage.Provider
	var dataDir string
	if strings.HasSuffix(dataPath, ".db") {
		dataDir = filepath.Dir(dataPath)
		s, err := storage.NewSQLiteStore(dataPath)
		if err != nil {
			errors.Fatal(err)
		}
		store = s
	} else {
		dataDir = dataPath
		store = storage.NewFileStore(dataPath)
	}
	defer store.Close()

	if err := logger.Init(logger.Config{Debug: CLI.Debug, DataDir: dataDir}); err != nil {
		errors.Fatal(err)
	}

	repo := habits.NewRepository(store)
	if err := repo.Load(); err != nil {
		errors.Fatal(err)
	}

	appCtx := &cli.Context{
		Repo:    repo,
		Store:   store,
		DataDir: dataDir,
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
