package probe

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Cache persists probe outcomes in SQLite so repeated checks of the same
// resource URLs stay cheap across sessions. Only derived reachability results
// live here; mindmap documents are never persisted.
type Cache struct {
	conn *sql.DB
	Path string
}

// OpenCache opens (creating if needed) the probe cache at path with WAL mode
// enabled.
func OpenCache(path string) (*Cache, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening probe cache: %w", err)
	}

	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	if _, err := conn.Exec(`
		CREATE TABLE IF NOT EXISTS probe_results (
			url        TEXT PRIMARY KEY,
			reachable  INTEGER NOT NULL,
			checked_at INTEGER NOT NULL
		)
	`); err != nil {
		conn.Close()
		return nil, fmt.Errorf("creating probe_results table: %w", err)
	}

	return &Cache{conn: conn, Path: path}, nil
}

// Close closes the cache connection.
func (c *Cache) Close() error {
	return c.conn.Close()
}

// Get returns a cached result for url no older than ttl. The second return
// reports whether a fresh entry was found.
func (c *Cache) Get(url string, ttl time.Duration) (bool, bool, error) {
	var reachable bool
	var checkedAt int64
	err := c.conn.QueryRow(
		`SELECT reachable, checked_at FROM probe_results WHERE url = ?`, url,
	).Scan(&reachable, &checkedAt)
	if err == sql.ErrNoRows {
		return false, false, nil
	}
	if err != nil {
		return false, false, fmt.Errorf("reading probe cache: %w", err)
	}

	age := time.Since(time.UnixMilli(checkedAt))
	if ttl > 0 && age > ttl {
		return false, false, nil
	}
	return reachable, true, nil
}

// Put records a probe outcome for url, replacing any prior entry.
func (c *Cache) Put(url string, reachable bool) error {
	_, err := c.conn.Exec(`
		INSERT INTO probe_results (url, reachable, checked_at)
		VALUES (?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			reachable = excluded.reachable,
			checked_at = excluded.checked_at
	`, url, reachable, time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("writing probe cache: %w", err)
	}
	return nil
}
