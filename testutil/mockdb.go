package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

// CreateInMemoryDB creates an in-memory SQLite database with the chatKV schema
func CreateInMemoryDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create in-memory database: %v", err)
	}

	createTableSQL := `
	CREATE TABLE IF NOT EXISTS chatKV (
		key TEXT PRIMARY KEY,
		value BLOB
	)`
	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		t.Fatalf("Failed to create chatKV table: %v", err)
	}

	return db
}

// InsertRaw inserts a raw key/value row, bypassing the store layer.
// Used to seed corrupt or hand-crafted entries.
func InsertRaw(t *testing.T, db *sql.DB, key string, value []byte) {
	t.Helper()
	if _, err := db.Exec(
		"INSERT INTO chatKV (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value); err != nil {
		t.Fatalf("Failed to insert row %s: %v", key, err)
	}
}
