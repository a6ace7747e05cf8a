// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: history/store.go
// Summary: SQLite persistence for history entries.

package history

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// ErrClosed is returned by operations on a closed Store.
var ErrClosed = errors.New("history: store closed")

// Current schema version - increment when the layout changes.
const storeSchemaVersion = 1

const storeSchema = `
CREATE TABLE IF NOT EXISTS schema_version (
    version INTEGER PRIMARY KEY
);

CREATE TABLE IF NOT EXISTS entries (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    class TEXT NOT NULL,
    text TEXT NOT NULL,
    created INTEGER NOT NULL          -- UnixNano
);

CREATE INDEX IF NOT EXISTS idx_entries_class ON entries(class, id);
`

// Store keeps the newest entries of each class in an SQLite database.
type Store struct {
	mu     sync.Mutex
	db     *sql.DB
	size   int
	closed bool
}

// OpenStore opens (creating if needed) the database at path. At most size
// entries are kept per class.
func OpenStore(path string, size int) (*Store, error) {
	if size <= 0 {
		size = DefaultSize
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	dsn := path +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=synchronous(NORMAL)" +
		"&_pragma=busy_timeout(2000)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s := &Store{db: db, size: size}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) initSchema() error {
	if _, err := s.db.Exec(storeSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	var version int
	err := s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if _, err := s.db.Exec("INSERT INTO schema_version (version) VALUES (?)", storeSchemaVersion); err != nil {
			return fmt.Errorf("failed to record schema version: %w", err)
		}
	case err != nil:
		return fmt.Errorf("failed to read schema version: %w", err)
	case version != storeSchemaVersion:
		log.Printf("History: Schema version %d differs from %d, keeping existing entries", version, storeSchemaVersion)
	}
	return nil
}

// Append stores text under class c and trims the class to the store size.
func (s *Store) Append(c Class, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		"INSERT INTO entries (class, text, created) VALUES (?, ?, ?)",
		c.String(), text, time.Now().UnixNano(),
	); err != nil {
		return fmt.Errorf("failed to insert entry: %w", err)
	}
	if _, err := tx.Exec(`
		DELETE FROM entries WHERE class = ? AND id NOT IN (
			SELECT id FROM entries WHERE class = ? ORDER BY id DESC LIMIT ?
		)`, c.String(), c.String(), s.size); err != nil {
		return fmt.Errorf("failed to trim entries: %w", err)
	}
	return tx.Commit()
}

// Load returns the newest entries of class c, oldest first.
func (s *Store) Load(c Class) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrClosed
	}

	rows, err := s.db.Query(`
		SELECT text FROM (
			SELECT id, text FROM entries WHERE class = ? ORDER BY id DESC LIMIT ?
		) ORDER BY id ASC`, c.String(), s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		out = append(out, text)
	}
	return out, rows.Err()
}

// Clear deletes every entry of class c.
func (s *Store) Clear(c Class) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if _, err := s.db.Exec("DELETE FROM entries WHERE class = ?", c.String()); err != nil {
		return fmt.Errorf("failed to clear %s entries: %w", c, err)
	}
	return nil
}

// Close closes the database. Further calls return ErrClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}
