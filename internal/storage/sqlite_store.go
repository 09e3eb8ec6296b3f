package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/trainlog/internal/constants"
	"github.com/julianstephens/trainlog/internal/migration"
	"github.com/julianstephens/trainlog/internal/models"
	"github.com/julianstephens/trainlog/migrations"
)

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if s.db == nil {
		db, err := sql.Open("sqlite", s.path)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		s.db = db
	}

	runner, err := s.MigrationRunner()
	if err != nil {
		return err
	}
	if _, err := runner.Apply(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if _, err := s.GetSettings(); err != nil {
		if err := s.SaveSettings(DefaultSettings()); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}
	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run '%s init' first", constants.AppName)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	runner, err := s.MigrationRunner()
	if err != nil {
		return err
	}
	return runner.Validate()
}

func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// DB exposes the connection for diagnostics.
func (s *SQLiteStore) DB() *sql.DB {
	return s.db
}

// MigrationRunner returns a runner over the embedded SQLite migrations.
func (s *SQLiteStore) MigrationRunner() (*migration.Runner, error) {
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return nil, fmt.Errorf("failed to access sqlite migrations: %w", err)
	}
	return migration.NewRunner(s.db, subFS, migration.DialectSQLite), nil
}

func (s *SQLiteStore) GetSettings() (models.Settings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.Settings{}, err
	}
	defer rows.Close()

	pairs := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, err
		}
		pairs[key] = value
	}
	if err := rows.Err(); err != nil {
		return models.Settings{}, err
	}
	return settingsFromPairs(pairs)
}

func (s *SQLiteStore) SaveSettings(settings models.Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, kv := range settingsToPairs(settings) {
		if _, err := stmt.Exec(kv[0], kv[1]); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// SaveCompletion upserts by date; an existing row keeps its id and created_at.
func (s *SQLiteStore) SaveCompletion(c models.Completion) error {
	c, err := prepareCompletion(c)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT INTO completions (date, id, status, note, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			status = excluded.status,
			note = excluded.note,
			updated_at = excluded.updated_at`,
		c.Date, c.ID, string(c.Status), c.Note, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save completion for %s: %w", c.Date, err)
	}
	return nil
}

func (s *SQLiteStore) GetCompletion(date string) (models.Completion, error) {
	row := s.db.QueryRow(`
		SELECT id, date, status, note, created_at, updated_at
		FROM completions WHERE date = ?`, date)
	c, err := scanCompletion(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Completion{}, fmt.Errorf("completion for %s: %w", date, ErrNotFound)
	}
	return c, err
}

func (s *SQLiteStore) GetCompletionsInRange(start, end string) ([]models.Completion, error) {
	rows, err := s.db.Query(`
		SELECT id, date, status, note, created_at, updated_at
		FROM completions WHERE date >= ? AND date <= ?
		ORDER BY date`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCompletions(rows)
}

func (s *SQLiteStore) DeleteCompletion(date string) error {
	res, err := s.db.Exec("DELETE FROM completions WHERE date = ?", date)
	if err != nil {
		return err
	}
	return requireAffected(res, date)
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCompletion(row rowScanner) (models.Completion, error) {
	var c models.Completion
	var status string
	if err := row.Scan(&c.ID, &c.Date, &status, &c.Note, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return models.Completion{}, err
	}
	c.Status = models.CompletionStatus(status)
	return c, nil
}

func scanCompletions(rows *sql.Rows) ([]models.Completion, error) {
	var out []models.Completion
	for rows.Next() {
		c, err := scanCompletion(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func requireAffected(res sql.Result, date string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("completion for %s: %w", date, ErrNotFound)
	}
	return nil
}
