package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/julianstephens/trainlog/internal/backup"
	"github.com/julianstephens/trainlog/internal/logger"
	"github.com/julianstephens/trainlog/internal/models"
	"github.com/julianstephens/trainlog/internal/notifier"
	"github.com/julianstephens/trainlog/internal/schedule"
	"github.com/julianstephens/trainlog/internal/storage"
	"github.com/julianstephens/trainlog/internal/utils"
)

// Context is handed to every command's Run method.
type Context struct {
	Store    storage.Provider
	Schedule *schedule.Schedule
	Notifier notifier.Sender
	Out      io.Writer
}

func (c *Context) Stdout() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) Printf(format string, a ...any) {
	fmt.Fprintf(c.Stdout(), format, a...)
}

func (c *Context) Print(a ...any) {
	fmt.Fprint(c.Stdout(), a...)
}

func (c *Context) Println(a ...any) {
	fmt.Fprintln(c.Stdout(), a...)
}

// Settings returns the stored settings, falling back to defaults when the
// store cannot supply them.
func (c *Context) Settings() models.Settings {
	if c.Store == nil {
		return storage.DefaultSettings()
	}
	s, err := c.Store.GetSettings()
	if err != nil {
		logger.Warn("using default settings", "error", err)
		return storage.DefaultSettings()
	}
	return s
}

// ResolveDate turns a date argument into a key, reading "today" in the
// configured timezone.
func (c *Context) ResolveDate(arg string) (string, error) {
	return utils.ResolveDateArg(arg, c.Settings().Timezone)
}

// Completion returns the logged completion for date, or nil when the day
// has not been logged.
func (c *Context) Completion(date string) (*models.Completion, error) {
	comp, err := c.Store.GetCompletion(date)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comp, nil
}

// CompletionMap loads the completions in [start, end] keyed by date.
func (c *Context) CompletionMap(start, end string) (map[string]models.Completion, error) {
	list, err := c.Store.GetCompletionsInRange(start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load completions: %w", err)
	}
	out := make(map[string]models.Completion, len(list))
	for _, comp := range list {
		out[comp.Date] = comp
	}
	return out, nil
}

// SupportsBackups reports whether the store is a local SQLite file.
func (c *Context) SupportsBackups() bool {
	_, ok := c.Store.(*storage.SQLiteStore)
	return ok
}

// PerformAutomaticBackup snapshots a SQLite store and only logs failures.
func (c *Context) PerformAutomaticBackup() {
	if !c.SupportsBackups() {
		return
	}
	if _, err := backup.NewManager(c.Store.GetConfigPath()).Create(); err != nil {
		logger.Warn("automatic backup failed", "error", err)
	}
}
