package system

import (
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/trainlog/internal/cli"
	"github.com/julianstephens/trainlog/internal/constants"
	"github.com/julianstephens/trainlog/internal/keyring"
	"github.com/julianstephens/trainlog/internal/storage"
)

type KeyringCmd struct {
	Set    KeyringSetCmd    `cmd:"" help:"Store a PostgreSQL connection string in the OS keyring."`
	Get    KeyringGetCmd    `cmd:"" help:"Show the stored connection string with the password masked."`
	Delete KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
	Status KeyringStatusCmd `cmd:"" help:"Check whether the OS keyring is usable."`
}

type KeyringSetCmd struct {
	ConnectionString string `arg:"" help:"PostgreSQL connection string (URL or key=value form)."`
}

func (cmd *KeyringSetCmd) Run(ctx *cli.Context) error {
	conn := strings.TrimSpace(cmd.ConnectionString)
	if !storage.IsPostgresURL(conn) && !strings.Contains(conn, "host=") {
		return errors.New("connection string must be a valid PostgreSQL connection string")
	}
	if storage.HasEmbeddedPassword(conn) {
		ctx.Println("⚠ Connection string contains a password; it is kept only in the encrypted OS keyring.")
	}

	if err := keyring.Set(conn); err != nil {
		return err
	}
	ctx.Println("✓ Connection string stored in OS keyring")
	ctx.Printf("  Use it with: %s --config %s\n", constants.AppName, keyring.ConfigValue)
	return nil
}

type KeyringGetCmd struct{}

func (cmd *KeyringGetCmd) Run(ctx *cli.Context) error {
	conn, err := keyring.Get()
	if errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("no connection string found in keyring, use '%s keyring set' to store one", constants.AppName)
	}
	if err != nil {
		return err
	}
	ctx.Println(keyring.Mask(conn))
	return nil
}

type KeyringDeleteCmd struct{}

func (cmd *KeyringDeleteCmd) Run(ctx *cli.Context) error {
	if err := keyring.Delete(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no connection string found in keyring")
		}
		return err
	}
	ctx.Println("✓ Connection string deleted from OS keyring")
	return nil
}

type KeyringStatusCmd struct{}

func (cmd *KeyringStatusCmd) Run(ctx *cli.Context) error {
	if !keyring.Available() {
		ctx.Println("❌ OS keyring is not available on this system")
		return keyring.ErrKeyringUnavailable
	}
	ctx.Println("✓ OS keyring is available")
	if _, err := keyring.Get(); err == nil {
		ctx.Println("✓ Connection string is stored in keyring")
	} else {
		ctx.Println("ℹ No connection string stored in keyring")
	}
	return nil
}
