package db

import (
	"fmt"
	"os"
	"path/filepath"

	_ "embed"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // The database driver
)

// DB is the global database connection.
var DB *sqlx.DB

//go:embed schema.sql
var schemaSQL string

// DefaultPath returns the database location used when PODCAST_DB_PATH is
// not set.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "podcast_platform.db"
	}
	return filepath.Join(home, ".blackroad", "podcast_platform.db")
}

// InitDB opens the SQLite database and creates the schema if needed. It is
// safe to call against an already-initialized database.
func InitDB() error {
	path := os.Getenv("PODCAST_DB_PATH")
	if path == "" {
		path = DefaultPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create database directory: %w", err)
	}

	conn, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return fmt.Errorf("open sqlite db: %w", err)
	}

	// Referential integrity is advisory in this schema, so foreign_keys
	// stays off.
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := conn.Exec(pragma); execErr != nil {
			_ = conn.Close()
			return fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := conn.Exec(schemaSQL); err != nil {
		_ = conn.Close()
		return fmt.Errorf("create schema: %w", err)
	}

	DB = conn
	return nil
}

// Close closes the global connection.
func Close() error {
	if DB == nil {
		return nil
	}
	return DB.Close()
}
