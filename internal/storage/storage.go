package storage

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/trainlog/internal/constants"
	"github.com/julianstephens/trainlog/internal/models"
)

var (
	// ErrNotFound is returned when no completion is recorded for a date
	ErrNotFound = errors.New("not found")
	// ErrNotLoaded is returned by the JSON store before Init or Load
	ErrNotLoaded = errors.New("storage not loaded")
)

// DefaultSettings returns the settings written by Init.
func DefaultSettings() models.Settings {
	return models.Settings{
		Timezone:             constants.DefaultTimezone,
		ReminderTime:         constants.DefaultReminderTime,
		NotificationsEnabled: constants.DefaultNotificationsEnabled,
	}
}

// IsPostgresURL reports whether config names a Postgres database rather than a file.
func IsPostgresURL(config string) bool {
	return strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://")
}

// HasEmbeddedPassword reports whether a Postgres URL or key=value DSN carries a password.
func HasEmbeddedPassword(connStr string) bool {
	if !IsPostgresURL(connStr) {
		for _, field := range strings.Fields(connStr) {
			if k, _, ok := strings.Cut(field, "="); ok && strings.EqualFold(k, "password") {
				return true
			}
		}
		return false
	}
	u, err := url.Parse(connStr)
	if err != nil || u.User == nil {
		return false
	}
	_, set := u.User.Password()
	return set
}

// ExpandPath resolves a leading "~/" against the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
	}
	return path, nil
}

// NewProvider picks a backend from the --config value: a postgres:// URL,
// a .json file, or anything else as a SQLite database path.
func NewProvider(config string) (Provider, error) {
	if IsPostgresURL(config) {
		if HasEmbeddedPassword(config) {
			return nil, fmt.Errorf("postgres connection strings must not embed a password; store it with 'trainlog keyring set' or use .pgpass")
		}
		return NewPostgresStore(config), nil
	}

	path, err := ExpandPath(config)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return NewJSONStore(path), nil
	}
	return NewSQLiteStore(path), nil
}

// prepareCompletion validates c and stamps UpdatedAt, plus CreatedAt on first save.
func prepareCompletion(c models.Completion) (models.Completion, error) {
	if _, err := time.Parse(constants.DateFormat, c.Date); err != nil {
		return c, fmt.Errorf("invalid completion date %q: %w", c.Date, err)
	}
	if !c.Status.Valid() {
		return c, fmt.Errorf("invalid completion status %q", c.Status)
	}
	if c.ID == "" {
		return c, fmt.Errorf("completion for %s has no id", c.Date)
	}
	now := time.Now().UTC().Format(time.RFC3339)
	if c.CreatedAt == "" {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
	return c, nil
}

// settingsToPairs and settingsFromPairs map Settings onto the key/value
// settings table shared by the SQL backends.
func settingsToPairs(s models.Settings) [][2]string {
	return [][2]string{
		{"timezone", s.Timezone},
		{"reminder_time", s.ReminderTime},
		{"notifications_enabled", strconv.FormatBool(s.NotificationsEnabled)},
	}
}

func settingsFromPairs(pairs map[string]string) (models.Settings, error) {
	if len(pairs) == 0 {
		return models.Settings{}, fmt.Errorf("settings not found")
	}
	s := DefaultSettings()
	if v, ok := pairs["timezone"]; ok {
		s.Timezone = v
	}
	if v, ok := pairs["reminder_time"]; ok {
		s.ReminderTime = v
	}
	if v, ok := pairs["notifications_enabled"]; ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return models.Settings{}, fmt.Errorf("parsing notifications_enabled: %w", err)
		}
		s.NotificationsEnabled = b
	}
	return s, nil
}
