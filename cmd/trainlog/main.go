package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	_ "time/tzdata"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/trainlog/internal/cli"
	"github.com/julianstephens/trainlog/internal/cli/backups"
	"github.com/julianstephens/trainlog/internal/cli/completions"
	"github.com/julianstephens/trainlog/internal/cli/settings"
	"github.com/julianstephens/trainlog/internal/cli/system"
	"github.com/julianstephens/trainlog/internal/cli/workouts"
	"github.com/julianstephens/trainlog/internal/constants"
	"github.com/julianstephens/trainlog/internal/errors"
	"github.com/julianstephens/trainlog/internal/keyring"
	"github.com/julianstephens/trainlog/internal/logger"
	"github.com/julianstephens/trainlog/internal/notifier"
	"github.com/julianstephens/trainlog/internal/schedule"
	"github.com/julianstephens/trainlog/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database path, PostgreSQL connection string, or 'keyring' to read the connection string from the OS keyring. Passwords must not be embedded in the connection string." type:"string" env:"TRAINLOG_CONFIG" default:"~/.config/trainlog/trainlog.db"`
	Debug   bool   `help:"Log debug output to stderr."`

	Init     system.InitCmd         `cmd:"" help:"Initialize trainlog storage."`
	Migrate  system.MigrateCmd      `cmd:"" help:"Run database migrations."`
	Doctor   system.DoctorCmd       `cmd:"" help:"Run health checks and diagnostics."`
	Tui      system.TuiCmd          `cmd:"" help:"Launch the interactive calendar." default:"1"`
	Day      workouts.DayCmd        `cmd:"" help:"Show the workout for a day."`
	Week     workouts.WeekCmd       `cmd:"" help:"Show the training week covering a day."`
	Calendar workouts.CalendarCmd   `cmd:"" help:"Show a month of the schedule."`
	Log      completions.LogCmd     `cmd:"" help:"Record how a day went."`
	Unlog    completions.UnlogCmd   `cmd:"" help:"Remove a day's record."`
	History  completions.HistoryCmd `cmd:"" help:"List logged days."`
	Stats    completions.StatsCmd   `cmd:"" help:"Show adherence per week and the current streak."`
	Validate workouts.ValidateCmd   `cmd:"" help:"Check the schedule for conflicts."`
	Export   workouts.ExportCmd     `cmd:"" help:"Export the schedule as JSON or YAML."`
	Backup   struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`
	DebugCmd system.DebugCmd      `cmd:"" name:"debug" help:"Debug commands for troubleshooting."`
	Keyring  system.KeyringCmd    `cmd:"" help:"Manage the PostgreSQL connection string in the OS keyring."`
	Remind   system.RemindCmd     `cmd:"" help:"Send today's workout reminder."`
	Notify   system.NotifyCmd     `cmd:"" hidden:"" help:"Send a notification (used internally)."`
}

// Commands that manage their own storage or never touch it.
var skipLoad = map[string]bool{
	"init":     true,
	"validate": true,
	"export":   true,
	"keyring":  true,
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Training block calendar and workout log"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: logDir(CLI.Config)}); err != nil {
		fmt.Fprintf(os.Stderr, "warning: file logging disabled: %v\n", err)
	}

	command := strings.Fields(ctx.Command())[0]
	store, err := openStore(CLI.Config)
	if err != nil {
		errors.Fatal(err)
	}
	logger.Debug("storage selected", "command", command, "path", keyring.Mask(store.GetConfigPath()))

	if !skipLoad[command] {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
	}
	defer store.Close()

	appCtx := &cli.Context{
		Store:    store,
		Schedule: schedule.Default(),
		Notifier: notifier.New(),
	}
	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		errors.Fatal(err)
	}
}

// openStore resolves --config into a provider. A connection string read from
// the keyring may carry a password, so it skips the embedded-password check.
func openStore(config string) (storage.Provider, error) {
	if config == keyring.ConfigValue {
		conn, err := keyring.ResolveConfig(config)
		if err != nil {
			return nil, err
		}
		return storage.NewPostgresStore(conn), nil
	}
	return storage.NewProvider(config)
}

// logDir keeps logs beside a local database and under the default config
// directory otherwise.
func logDir(config string) string {
	if config != keyring.ConfigValue && !storage.IsPostgresURL(config) {
		if path, err := storage.ExpandPath(config); err == nil {
			return filepath.Dir(path)
		}
	}
	path, err := storage.ExpandPath(constants.DefaultConfigPath)
	if err != nil {
		return os.TempDir()
	}
	return filepath.Dir(path)
}
