// Package storage provides the on-disk cache for registry lookups.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"refcheck/internal/crossref"
)

// Cache is a SQLite-backed store of registry responses, keyed by lookup
// kind (identifier or search) and normalized key. It lets repeated runs
// over the same bibliography skip network round-trips.
type Cache struct {
	db *sql.DB
	mu sync.Mutex
}

// OpenCache opens or creates the cache database at the given path.
func OpenCache(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache schema: %w", err)
	}

	return &Cache{db: db}, nil
}

// Close closes the cache database.
func (c *Cache) Close() error {
	return c.db.Close()
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS lookups (
			kind TEXT NOT NULL,
			key TEXT NOT NULL,
			body TEXT NOT NULL,
			fetched_at INTEGER NOT NULL,
			PRIMARY KEY (kind, key)
		);
	`
	_, err := db.Exec(schema)
	return err
}

// Get returns the cached works for a lookup, if present.
func (c *Cache) Get(kind, key string) ([]crossref.Work, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var body string
	err := c.db.QueryRow(
		`SELECT body FROM lookups WHERE kind = ? AND key = ?`, kind, key,
	).Scan(&body)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading cache: %w", err)
	}

	var works []crossref.Work
	if err := json.Unmarshal([]byte(body), &works); err != nil {
		return nil, false, fmt.Errorf("decoding cached lookup: %w", err)
	}
	return works, true, nil
}

// Put stores the works for a lookup, replacing any prior entry.
func (c *Cache) Put(kind, key string, works []crossref.Work) error {
	body, err := json.Marshal(works)
	if err != nil {
		return fmt.Errorf("encoding lookup: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	_, err = c.db.Exec(
		`INSERT OR REPLACE INTO lookups (kind, key, body, fetched_at) VALUES (?, ?, ?, ?)`,
		kind, key, string(body), time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("writing cache: %w", err)
	}
	return nil
}
