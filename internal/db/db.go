// Package db opens the SQLite session store and owns its schema.
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// migrations are idempotent; Open re-runs them on every start.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS user_profile (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		age INTEGER NOT NULL,
		income REAL NOT NULL,
		occupation TEXT NOT NULL,
		financial_goals TEXT NOT NULL,
		risk_tolerance TEXT NOT NULL,
		savings_amount REAL NOT NULL,
		monthly_expenses REAL NOT NULL,
		user_type TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS expenses (
		category TEXT PRIMARY KEY,
		amount REAL NOT NULL,
		seq INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS conversation_turns (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		role TEXT NOT NULL,
		content TEXT NOT NULL,
		at TEXT NOT NULL
	)`,
}

// Open opens the SQLite store at the given path, or in memory for
// ":memory:". Sets WAL mode, enables foreign keys, and applies the schema.
func Open(path string) (*sql.DB, error) {
	if path != ":memory:" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}
	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	for i, stmt := range migrations {
		if _, err := conn.Exec(stmt); err != nil {
			conn.Close()
			return nil, fmt.Errorf("migration %d: %w", i, err)
		}
	}

	return conn, nil
}
