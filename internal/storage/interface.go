package storage

import "github.com/julianstephens/trainlog/internal/models"

// Provider persists the athlete's completion log and runtime settings. The
// workout schedule itself is compiled in and never stored.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Completions, keyed by YYYY-MM-DD date
	SaveCompletion(models.Completion) error
	GetCompletion(date string) (models.Completion, error)
	GetCompletionsInRange(start, end string) ([]models.Completion, error)
	DeleteCompletion(date string) error

	// Utils
	GetConfigPath() string
}
