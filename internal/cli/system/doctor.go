package system

import (
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/trainlog/internal/backup"
	"github.com/julianstephens/trainlog/internal/cli"
	"github.com/julianstephens/trainlog/internal/constants"
	"github.com/julianstephens/trainlog/internal/utils"
	"github.com/julianstephens/trainlog/internal/validation"
)

type DoctorCmd struct{}

type check struct {
	name     string
	run      func(*cli.Context) error
	warnOnly bool
	needsDB  bool
}

var errSkipped = errors.New("not applicable")

func doctorChecks() []check {
	return []check{
		{name: "Database reachable", run: checkDBReachable},
		{name: "Schema version", run: checkSchemaVersion, needsDB: true},
		{name: "Migrations complete", run: checkMigrationsComplete, needsDB: true},
		{name: "Settings", run: checkSettings, needsDB: true},
		{name: "Backups present", run: checkBackupsPresent, warnOnly: true},
		{name: "Schedule validation", run: checkSchedule},
		{name: "Clock/timezone", run: checkClock},
	}
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	failed := 0
	dbReachable := true
	for _, c := range doctorChecks() {
		if c.needsDB && !dbReachable {
			ctx.Printf("⊘ %s: SKIPPED (database not reachable)\n", c.name)
			continue
		}

		err := c.run(ctx)
		switch {
		case err == nil:
			ctx.Printf("✓ %s: OK\n", c.name)
		case errors.Is(err, errSkipped):
			ctx.Printf("⊘ %s: SKIPPED (%v)\n", c.name, err)
		case c.warnOnly:
			ctx.Printf("⚠ %s: WARNING\n   %v\n", c.name, err)
		default:
			ctx.Printf("❌ %s: FAIL\n   Error: %v\n", c.name, err)
			failed++
			if c.name == "Database reachable" {
				dbReachable = false
			}
		}
	}

	ctx.Println()
	if failed > 0 {
		return fmt.Errorf("%d check(s) failed", failed)
	}
	ctx.Println("All checks passed.")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	if ctx.Store == nil {
		return fmt.Errorf("no storage configured")
	}
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	_, err := ctx.Store.GetSettings()
	return err
}

func checkSchemaVersion(ctx *cli.Context) error {
	store, ok := ctx.Store.(migratable)
	if !ok {
		return fmt.Errorf("%w: JSON storage has no schema", errSkipped)
	}
	runner, err := store.MigrationRunner()
	if err != nil {
		return err
	}
	return runner.Validate()
}

func checkMigrationsComplete(ctx *cli.Context) error {
	store, ok := ctx.Store.(migratable)
	if !ok {
		return fmt.Errorf("%w: JSON storage has no schema", errSkipped)
	}
	runner, err := store.MigrationRunner()
	if err != nil {
		return err
	}
	current, err := runner.CurrentVersion()
	if err != nil {
		return err
	}
	latest, err := runner.LatestVersion()
	if err != nil {
		return err
	}
	if current < latest {
		return fmt.Errorf("schema at version %d, latest is %d - run '%s migrate'", current, latest, constants.AppName)
	}
	return nil
}

func checkSettings(ctx *cli.Context) error {
	s, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	if !utils.ValidateTimezone(s.Timezone) {
		return fmt.Errorf("unknown timezone %q", s.Timezone)
	}
	if !utils.ValidateTimeFormat(s.ReminderTime) {
		return fmt.Errorf("invalid reminder time %q", s.ReminderTime)
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	if !ctx.SupportsBackups() {
		return fmt.Errorf("%w: backups cover SQLite storage only", errSkipped)
	}
	list, err := backup.NewManager(ctx.Store.GetConfigPath()).List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(list) == 0 {
		return fmt.Errorf("no backups found - consider creating one with '%s backup create'", constants.AppName)
	}
	return nil
}

func checkSchedule(ctx *cli.Context) error {
	result := validation.New().ValidateSchedule(ctx.Schedule.Weeks(), ctx.Schedule.Workouts())
	if result.HasErrors() {
		return fmt.Errorf("%d conflict(s), run '%s validate' for details", len(result.Conflicts), constants.AppName)
	}
	return nil
}

func checkClock(ctx *cli.Context) error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	_, err := utils.NowInTimezone(ctx.Settings().Timezone)
	return err
}
