// Package store provides the SQLite-backed key-value area and the tracking
// store that mirrors its in-memory collections into it.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver
)

// ErrNotFound is returned by KV.Get when the key has never been written.
var ErrNotFound = errors.New("key not found")

// KV is a string-key to byte-blob store backed by SQLite.
type KV struct {
	db *sql.DB
}

// OpenKV opens or creates the key-value database at the given path.
func OpenKV(dbPath string) (*KV, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening kv db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &KV{db: db}, nil
}

// Close closes the underlying database.
func (k *KV) Close() error {
	return k.db.Close()
}

// Get returns the blob stored under key, or ErrNotFound.
func (k *KV) Get(key string) ([]byte, error) {
	var value []byte
	err := k.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Put overwrites the blob stored under key.
func (k *KV) Put(key string, value []byte) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := k.db.Exec(`INSERT OR REPLACE INTO kv (key, value, updated_at)
		VALUES (?, ?, ?)`, key, value, now)
	return err
}

// Delete removes a key. Deleting an absent key is not an error.
func (k *KV) Delete(key string) error {
	_, err := k.db.Exec("DELETE FROM kv WHERE key = ?", key)
	return err
}

// Keys returns all keys currently present.
func (k *KV) Keys() ([]string, error) {
	rows, err := k.db.Query("SELECT key FROM kv ORDER BY key")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}
