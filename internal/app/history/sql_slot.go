package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

const createKVTableSQL = `CREATE TABLE IF NOT EXISTS kv_store (
	name  TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

// Dialect holds the statements that differ between SQL backends.
type Dialect struct {
	Name   string
	Select string
	Upsert string
}

var (
	SQLiteDialect = Dialect{
		Name:   "sqlite3",
		Select: `SELECT value FROM kv_store WHERE name = ?`,
		Upsert: `INSERT INTO kv_store (name, value) VALUES (?, ?)
			ON CONFLICT(name) DO UPDATE SET value = excluded.value`,
	}
	PostgresDialect = Dialect{
		Name:   "postgres",
		Select: `SELECT value FROM kv_store WHERE name = $1`,
		Upsert: `INSERT INTO kv_store (name, value) VALUES ($1, $2)
			ON CONFLICT (name) DO UPDATE SET value = EXCLUDED.value`,
	}
)

// SQLSlot stores the slot as one row of a kv_store table.
type SQLSlot struct {
	db      *sql.DB
	name    string
	dialect Dialect
}

// NewSQLSlot wraps an open database. Call EnsureSchema before first use on a
// fresh database.
func NewSQLSlot(db *sql.DB, dialect Dialect, name string) *SQLSlot {
	if name == "" {
		name = DefaultSlotName
	}
	return &SQLSlot{db: db, name: name, dialect: dialect}
}

// OpenSQLite opens (creating if needed) a sqlite database file and returns a
// slot with its schema in place.
func OpenSQLite(ctx context.Context, path, name string) (*SQLSlot, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?cache=shared&mode=rwc", path))
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	return openSQL(ctx, db, SQLiteDialect, name)
}

// OpenPostgres connects to dsn and returns a slot with its schema in place.
func OpenPostgres(ctx context.Context, dsn, name string) (*SQLSlot, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres database: %w", err)
	}
	return openSQL(ctx, db, PostgresDialect, name)
}

func openSQL(ctx context.Context, db *sql.DB, dialect Dialect, name string) (*SQLSlot, error) {
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s database: %w", dialect.Name, err)
	}
	slot := NewSQLSlot(db, dialect, name)
	if err := slot.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return slot, nil
}

// EnsureSchema creates the kv_store table when missing.
func (s *SQLSlot) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createKVTableSQL); err != nil {
		return fmt.Errorf("create kv_store table: %w", err)
	}
	return nil
}

func (s *SQLSlot) Read(ctx context.Context) ([]byte, error) {
	var value string
	err := s.db.QueryRowContext(ctx, s.dialect.Select, s.name).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query history slot: %w", err)
	}
	return []byte(value), nil
}

func (s *SQLSlot) Write(ctx context.Context, data []byte) error {
	if _, err := s.db.ExecContext(ctx, s.dialect.Upsert, s.name, string(data)); err != nil {
		return fmt.Errorf("upsert history slot: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLSlot) Close() error {
	return s.db.Close()
}
