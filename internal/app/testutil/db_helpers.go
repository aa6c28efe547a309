package testutil

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// SetupTestSQLite opens an empty SQLite database in a temp dir, closed on cleanup.
func SetupTestSQLite(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "test.sqlite"))
	if err != nil {
		t.Fatalf("Failed to create SQLite test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// PostgresTestURL returns POSTGRES_TEST_URL or skips the test when unset.
func PostgresTestURL(t *testing.T) string {
	t.Helper()

	url := os.Getenv("POSTGRES_TEST_URL")
	if url == "" {
		t.Skip("POSTGRES_TEST_URL not set")
	}
	return url
}

// RedisTestAddr returns REDIS_TEST_ADDR or skips the test when unset.
func RedisTestAddr(t *testing.T) string {
	t.Helper()

	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}
	return addr
}
