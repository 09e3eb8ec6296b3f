package system

import (
	"fmt"

	"github.com/julianstephens/trainlog/internal/cli"
	"github.com/julianstephens/trainlog/internal/migration"
)

// migratable is implemented by the SQL-backed stores.
type migratable interface {
	MigrationRunner() (*migration.Runner, error)
}

type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	store, ok := ctx.Store.(migratable)
	if !ok {
		return fmt.Errorf("migrate only applies to SQLite and PostgreSQL storage")
	}
	runner, err := store.MigrationRunner()
	if err != nil {
		return err
	}

	count, err := runner.Apply()
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	if count == 0 {
		ctx.Println("No migrations to apply. Database is up to date.")
		return nil
	}
	ctx.Printf("Successfully applied %d migration(s).\n", count)
	return nil
}
