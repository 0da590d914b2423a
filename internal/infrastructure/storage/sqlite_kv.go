// Package storage provides the key-value adapters behind the state
// container: a SQLite file for durable deployments and an in-memory map for
// tests and ephemeral runs.
package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/eesaa/retail-suite/internal/application/ports"
)

var _ ports.KV = (*SQLiteKV)(nil)

// SQLiteKV stores each collection as one row of a two-column table. The
// whole-collection-per-key model keeps reads and writes to a single row, so
// one connection is enough and avoids SQLITE_BUSY churn.
type SQLiteKV struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the store file and prepares the schema.
func OpenSQLite(path string) (*SQLiteKV, error) {
	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	const schema = `
	CREATE TABLE IF NOT EXISTS collections (
		key  TEXT PRIMARY KEY,
		data BLOB NOT NULL
	);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: create schema: %w", err)
	}
	return &SQLiteKV{db: db}, nil
}

// Load reads one collection. ok is false when the key has never been saved.
func (s *SQLiteKV) Load(key string) ([]byte, bool, error) {
	var data []byte
	err := s.db.QueryRow(`SELECT data FROM collections WHERE key = ?`, key).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("storage: load %s: %w", key, err)
	}
	return data, true, nil
}

// Save overwrites one collection.
func (s *SQLiteKV) Save(key string, data []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO collections (key, data) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET data = excluded.data`, key, data)
	if err != nil {
		return fmt.Errorf("storage: save %s: %w", key, err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *SQLiteKV) Close() error {
	return s.db.Close()
}
