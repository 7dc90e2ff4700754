package internal

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS chatKV (
	key TEXT PRIMARY KEY,
	value BLOB
)`

// OpenDatabase opens (creating if needed) the app's SQLite database
func OpenDatabase(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &StorageError{Path: path, Op: "open", Err: err}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &StorageError{Path: path, Op: "open", Err: err}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, &StorageError{Path: path, Op: "open", Err: fmt.Errorf("create schema: %w", err)}
	}

	return db, nil
}

// KeyValuePair is one row from the chatKV table
type KeyValuePair struct {
	Key   string
	Value []byte
}

// BlobStore is the durable key->bytes primitive every store is built on.
// It is the only component that touches the database.
type BlobStore struct {
	db *sql.DB
}

// NewBlobStore creates a BlobStore over an opened database
func NewBlobStore(db *sql.DB) *BlobStore {
	return &BlobStore{db: db}
}

// Get returns the value for key, or false when the key is absent
func (s *BlobStore) Get(key string) ([]byte, bool) {
	var value []byte
	err := s.db.QueryRow("SELECT value FROM chatKV WHERE key = ?", key).Scan(&value)
	if err != nil {
		if err != sql.ErrNoRows {
			LogWarn("blob get %s: %v", key, err)
		}
		return nil, false
	}
	return value, true
}

// Set stores value under key, replacing any prior value
func (s *BlobStore) Set(key string, value []byte) error {
	_, err := s.db.Exec(
		"INSERT INTO chatKV (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value)
	if err != nil {
		return &StorageError{Path: key, Op: "set", Err: err}
	}
	return nil
}

// Remove deletes key; removing an absent key is not an error
func (s *BlobStore) Remove(key string) error {
	_, err := s.db.Exec("DELETE FROM chatKV WHERE key = ?", key)
	if err != nil {
		return &StorageError{Path: key, Op: "remove", Err: err}
	}
	return nil
}

// List returns all rows whose key starts with prefix, in key order
func (s *BlobStore) List(prefix string) ([]KeyValuePair, error) {
	rows, err := s.db.Query(
		"SELECT key, value FROM chatKV WHERE key LIKE ? || '%' AND value IS NOT NULL ORDER BY key",
		prefix)
	if err != nil {
		return nil, &StorageError{Path: prefix, Op: "get", Err: err}
	}
	defer rows.Close()

	var pairs []KeyValuePair
	for rows.Next() {
		var pair KeyValuePair
		if err := rows.Scan(&pair.Key, &pair.Value); err != nil {
			return nil, &StorageError{Path: prefix, Op: "get", Err: err}
		}
		pairs = append(pairs, pair)
	}

	if err := rows.Err(); err != nil {
		return nil, &StorageError{Path: prefix, Op: "get", Err: err}
	}

	return pairs, nil
}
