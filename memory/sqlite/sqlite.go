// Package sqlite provides a SQLite backed memory store using the pure Go
// modernc.org/sqlite driver, so no cgo or system library is needed.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/agentloop/agentloop/core"
	_ "modernc.org/sqlite"
)

// Store persists memory items in a single SQLite database file.
type Store struct {
	db *sql.DB
}

var _ core.MemoryStore = (*Store)(nil)

// Open opens (creating if necessary) the database at path and ensures the
// schema exists. The parent directory is created as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	s := &Store{db: db}
	if err := s.init(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) init() error {
	stmts := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		`CREATE TABLE IF NOT EXISTS memories (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			ts DATETIME DEFAULT CURRENT_TIMESTAMP,
			kind TEXT,
			text TEXT
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("sqlite init: %w", err)
		}
	}
	return nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Add implements core.MemoryStore. All items are inserted in one
// transaction; the count of inserted rows is returned.
func (s *Store) Add(items []core.MemoryItem) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO memories (kind, text) VALUES (?, ?)`)
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("prepare: %w", err)
	}
	defer stmt.Close()

	for _, it := range items {
		if _, err := stmt.Exec(it.Kind, it.Text); err != nil {
			_ = tx.Rollback()
			return 0, fmt.Errorf("insert memory: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return len(items), nil
}

// Search implements core.MemoryStore. Matching is a LIKE substring test
// against the item text; results come back newest-first.
func (s *Store) Search(query string, limit int) ([]core.MemoryHit, error) {
	if limit <= 0 {
		limit = 5
	}
	rows, err := s.db.Query(
		`SELECT id, kind, text FROM memories WHERE text LIKE ? ORDER BY id DESC LIMIT ?`,
		"%"+query+"%", limit,
	)
	if err != nil {
		return nil, fmt.Errorf("search memories: %w", err)
	}
	defer rows.Close()

	var hits []core.MemoryHit
	for rows.Next() {
		var h core.MemoryHit
		if err := rows.Scan(&h.ID, &h.Kind, &h.Text); err != nil {
			return nil, fmt.Errorf("scan memory: %w", err)
		}
		hits = append(hits, h)
	}
	return hits, rows.Err()
}
