package storage

import (
	"os"
	"testing"
)

// Set TRAINLOG_TEST_POSTGRES_URL to a password-less URL (credentials via
// .pgpass or PGPASSWORD) to run the provider contract against Postgres.
func TestPostgresStore_Integration(t *testing.T) {
	connStr := os.Getenv("TRAINLOG_TEST_POSTGRES_URL")
	if connStr == "" {
		t.Skip("TRAINLOG_TEST_POSTGRES_URL not set")
	}

	runProviderContract(t, func(t *testing.T) Provider {
		store := NewPostgresStore(connStr)
		if err := store.Init(); err != nil {
			t.Fatalf("Init() error: %v", err)
		}
		if _, err := store.DB().Exec("TRUNCATE completions"); err != nil {
			t.Fatalf("failed to reset completions: %v", err)
		}
		if err := store.SaveSettings(DefaultSettings()); err != nil {
			t.Fatalf("failed to reset settings: %v", err)
		}
		t.Cleanup(func() { store.Close() })
		return store
	})
}
