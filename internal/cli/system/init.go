package system

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/trainlog/internal/cli"
	"github.com/julianstephens/trainlog/internal/keyring"
	"github.com/julianstephens/trainlog/internal/storage"
)

// Completions are copied over this whole range when migrating between stores.
const (
	minDate = "0001-01-01"
	maxDate = "9999-12-31"
)

type InitCmd struct {
	Force  bool   `help:"Delete an existing local database before initialization."`
	Source string `help:"Database path, connection string or 'keyring' to copy settings and completions from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if err := c.reset(ctx); err != nil {
			return err
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	ctx.Printf("Initialized trainlog storage at: %s\n", ctx.Store.GetConfigPath())

	if c.Source == "" {
		return nil
	}
	ctx.Printf("Migrating data from: %s\n", keyring.Mask(c.Source))
	if err := c.copyFrom(ctx); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	ctx.Println("Migration completed successfully!")
	return nil
}

func (c *InitCmd) reset(ctx *cli.Context) error {
	path := ctx.Store.GetConfigPath()
	if _, remote := ctx.Store.(*storage.PostgresStore); remote {
		return fmt.Errorf("--force only removes local databases")
	}
	if c.Source != "" {
		src, _ := filepath.Abs(c.Source)
		dst, _ := filepath.Abs(path)
		if src == dst {
			return fmt.Errorf("cannot use --force when source and destination are the same: %s", path)
		}
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return fmt.Errorf("failed to access existing database: %w", err)
	}
	if err := ctx.Store.Close(); err != nil {
		return fmt.Errorf("failed to close existing database: %w", err)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to delete existing database: %w", err)
	}
	ctx.Printf("Deleted existing database at: %s\n", path)
	return nil
}

func (c *InitCmd) copyFrom(ctx *cli.Context) error {
	var src storage.Provider
	if c.Source == keyring.ConfigValue {
		conn, err := keyring.ResolveConfig(c.Source)
		if err != nil {
			return err
		}
		src = storage.NewPostgresStore(conn)
	} else {
		p, err := storage.NewProvider(c.Source)
		if err != nil {
			return err
		}
		src = p
	}

	if err := src.Load(); err != nil {
		return fmt.Errorf("failed to load source database: %w", err)
	}
	defer src.Close()

	settings, err := src.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings from source: %w", err)
	}
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings to destination: %w", err)
	}
	ctx.Println("  Migrated settings")

	completions, err := src.GetCompletionsInRange(minDate, maxDate)
	if err != nil {
		return fmt.Errorf("failed to get completions from source: %w", err)
	}
	for _, comp := range completions {
		if err := ctx.Store.SaveCompletion(comp); err != nil {
			return fmt.Errorf("failed to copy completion for %s: %w", comp.Date, err)
		}
	}
	ctx.Printf("  Migrated %d completion(s)\n", len(completions))
	return nil
}
