// Package keyring keeps the Postgres connection string in the OS credential
// store so it never has to appear in shell history or config files.
package keyring

import (
	"errors"
	"fmt"
	"strings"

	gokeyring "github.com/zalando/go-keyring"

	"github.com/julianstephens/trainlog/internal/constants"
)

// ConfigValue is the --config value that selects the stored connection string.
const ConfigValue = "keyring"

var (
	ErrNotFound    = errors.New("no connection string stored in keyring")
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

func Get() (string, error) {
	conn, err := gokeyring.Get(constants.AppName, constants.DefaultKeyringUser)
	switch {
	case errors.Is(err, gokeyring.ErrNotFound):
		return "", ErrNotFound
	case err != nil:
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return conn, nil
}

func Set(conn string) error {
	conn = strings.TrimSpace(conn)
	if conn == "" {
		return errors.New("connection string cannot be empty")
	}
	if err := gokeyring.Set(constants.AppName, constants.DefaultKeyringUser, conn); err != nil {
		return fmt.Errorf("failed to store connection string: %w", err)
	}
	return nil
}

func Delete() error {
	err := gokeyring.Delete(constants.AppName, constants.DefaultKeyringUser)
	switch {
	case errors.Is(err, gokeyring.ErrNotFound):
		return ErrNotFound
	case err != nil:
		return fmt.Errorf("failed to delete connection string: %w", err)
	}
	return nil
}

// Available reports whether the keyring answers at all. A missing probe
// entry counts as available.
func Available() bool {
	_, err := gokeyring.Get(constants.AppName, "probe")
	return err == nil || errors.Is(err, gokeyring.ErrNotFound)
}

// ResolveConfig swaps the literal "keyring" config value for the stored
// connection string. Any other value is returned unchanged.
func ResolveConfig(config string) (string, error) {
	if config != ConfigValue {
		return config, nil
	}
	conn, err := Get()
	if err != nil {
		return "", fmt.Errorf("--config keyring: %w", err)
	}
	return conn, nil
}

// Mask replaces any password in a URL or key=value connection string with
// asterisks so it can be printed.
func Mask(conn string) string {
	if scheme, rest, ok := strings.Cut(conn, "://"); ok {
		at := strings.LastIndex(rest, "@")
		if at < 0 {
			return conn
		}
		user, _, hasPass := strings.Cut(rest[:at], ":")
		if !hasPass {
			return conn
		}
		return scheme + "://" + user + ":****" + rest[at:]
	}

	fields := strings.Fields(conn)
	for i, f := range fields {
		if strings.HasPrefix(f, "password=") {
			fields[i] = "password=****"
		}
	}
	return strings.Join(fields, " ")
}
