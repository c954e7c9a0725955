// Package storage provides the SQLite cache for built pruning tables.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DB wraps the SQLite cache connection.
type DB struct {
	*sql.DB
	path string
}

// DefaultPath returns the default cache path in the user's home directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	dir := filepath.Join(home, ".fmctrainer")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return filepath.Join(dir, "tables.db"), nil
}

// Open opens (or creates) the cache database at the given path.
func Open(dbPath string) (*DB, error) {
	// Ensure parent directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS pruning_tables (
			stage      TEXT NOT NULL,
			version    INTEGER NOT NULL,
			data       BLOB NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (stage, version)
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &DB{DB: db, path: dbPath}, nil
}

// OpenDefault opens the cache at the default path.
func OpenDefault() (*DB, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return Open(path)
}

// Path returns the database file path.
func (db *DB) Path() string {
	return db.path
}

// LoadTable returns the cached blob for a stage, or nil if absent.
func (db *DB) LoadTable(stage string, version int) ([]byte, error) {
	var data []byte
	err := db.QueryRow(
		"SELECT data FROM pruning_tables WHERE stage = ? AND version = ?",
		stage, version,
	).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load table: %w", err)
	}
	return data, nil
}

// SaveTable stores a table blob, replacing any previous entry.
func (db *DB) SaveTable(stage string, version int, data []byte) error {
	_, err := db.Exec(
		"INSERT OR REPLACE INTO pruning_tables (stage, version, data) VALUES (?, ?, ?)",
		stage, version, data,
	)
	if err != nil {
		return fmt.Errorf("failed to save table: %w", err)
	}
	return nil
}

// Clear removes every cached table.
func (db *DB) Clear() error {
	if _, err := db.Exec("DELETE FROM pruning_tables"); err != nil {
		return fmt.Errorf("failed to clear tables: %w", err)
	}
	return nil
}
