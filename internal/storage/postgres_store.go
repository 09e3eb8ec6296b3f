package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/julianstephens/trainlog/internal/constants"
	"github.com/julianstephens/trainlog/internal/logger"
	"github.com/julianstephens/trainlog/internal/migration"
	"github.com/julianstephens/trainlog/internal/models"
	"github.com/julianstephens/trainlog/migrations"
)

// PostgresStore keeps the completion log in a dedicated "trainlog" schema.
type PostgresStore struct {
	connStr string
	db      *sql.DB
}

func NewPostgresStore(connStr string) *PostgresStore {
	return &PostgresStore{connStr: withSearchPath(connStr)}
}

// withSearchPath pins unqualified table names to the app schema unless the
// caller already chose a search_path.
func withSearchPath(connStr string) string {
	if !IsPostgresURL(connStr) {
		for _, field := range strings.Fields(connStr) {
			if k, _, ok := strings.Cut(field, "="); ok && strings.EqualFold(k, "search_path") {
				return connStr
			}
		}
		return strings.TrimSpace(connStr) + " search_path=" + constants.AppName
	}

	u, err := url.Parse(connStr)
	if err != nil {
		logger.Warn("failed to parse postgres connection string", "error", err)
		return connStr
	}
	q := u.Query()
	if q.Get("search_path") != "" {
		return connStr
	}
	q.Set("search_path", constants.AppName)
	u.RawQuery = q.Encode()
	return u.String()
}

// ValidateConnString rejects strings lib/pq cannot parse and URLs that embed a password.
func ValidateConnString(connStr string) error {
	if strings.TrimSpace(connStr) == "" {
		return errors.New("connection string cannot be empty")
	}
	if _, err := pq.NewConnector(connStr); err != nil {
		return fmt.Errorf("invalid postgres connection string: %w", err)
	}
	if HasEmbeddedPassword(connStr) {
		return errors.New("connection string must not contain a password")
	}
	return nil
}

func (s *PostgresStore) open() error {
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		if strings.Contains(err.Error(), "SSL is not enabled on the server") {
			return fmt.Errorf("failed to connect to database: %w (hint: add sslmode=disable)", err)
		}
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	s.db = db
	return nil
}

func (s *PostgresStore) Init() error {
	if s.db == nil {
		if err := s.open(); err != nil {
			return err
		}
	}
	if _, err := s.db.Exec("CREATE SCHEMA IF NOT EXISTS " + pq.QuoteIdentifier(constants.AppName)); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
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

func (s *PostgresStore) Load() error {
	if s.db != nil {
		return nil
	}
	if err := s.open(); err != nil {
		return err
	}
	runner, err := s.MigrationRunner()
	if err != nil {
		return err
	}
	return runner.Validate()
}

func (s *PostgresStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *PostgresStore) DB() *sql.DB {
	return s.db
}

func (s *PostgresStore) MigrationRunner() (*migration.Runner, error) {
	subFS, err := fs.Sub(migrations.FS, "postgres")
	if err != nil {
		return nil, fmt.Errorf("failed to access postgres migrations: %w", err)
	}
	return migration.NewRunner(s.db, subFS, migration.DialectPostgres), nil
}

func (s *PostgresStore) GetSettings() (models.Settings, error) {
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

func (s *PostgresStore) SaveSettings(settings models.Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, kv := range settingsToPairs(settings) {
		_, err := tx.Exec(`
			INSERT INTO settings (key, value) VALUES ($1, $2)
			ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`, kv[0], kv[1])
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *PostgresStore) SaveCompletion(c models.Completion) error {
	c, err := prepareCompletion(c)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT INTO completions (date, id, status, note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (date) DO UPDATE SET
			status = EXCLUDED.status,
			note = EXCLUDED.note,
			updated_at = EXCLUDED.updated_at`,
		c.Date, c.ID, string(c.Status), c.Note, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save completion for %s: %w", c.Date, err)
	}
	return nil
}

func (s *PostgresStore) GetCompletion(date string) (models.Completion, error) {
	row := s.db.QueryRow(`
		SELECT id, date, status, note, created_at, updated_at
		FROM completions WHERE date = $1`, date)
	c, err := scanCompletion(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Completion{}, fmt.Errorf("completion for %s: %w", date, ErrNotFound)
	}
	return c, err
}

func (s *PostgresStore) GetCompletionsInRange(start, end string) ([]models.Completion, error) {
	rows, err := s.db.Query(`
		SELECT id, date, status, note, created_at, updated_at
		FROM completions WHERE date >= $1 AND date <= $2
		ORDER BY date`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCompletions(rows)
}

func (s *PostgresStore) DeleteCompletion(date string) error {
	res, err := s.db.Exec("DELETE FROM completions WHERE date = $1", date)
	if err != nil {
		return err
	}
	return requireAffected(res, date)
}

// GetConfigPath returns a non-sensitive identifier rather than the connection string.
func (s *PostgresStore) GetConfigPath() string {
	return "postgresql"
}
