package sqlitedb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// DBTX is the statement-execution surface shared by *sql.DB and *sql.Tx.
// Stores are built against it so the batch loader can scope a whole file
// to a single transaction while the live path runs against the raw handle.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

const schema = `
CREATE TABLE IF NOT EXISTS customers (
	id     INTEGER PRIMARY KEY,
	name   TEXT NOT NULL,
	active INTEGER NOT NULL DEFAULT 1
);

CREATE TABLE IF NOT EXISTS ip_blacklist (
	ip TEXT PRIMARY KEY
);

CREATE TABLE IF NOT EXISTS ua_blacklist (
	ua TEXT PRIMARY KEY
);

CREATE TABLE IF NOT EXISTS hourly_stats (
	customer_id   INTEGER NOT NULL,
	hour_start    INTEGER NOT NULL,
	request_count INTEGER NOT NULL DEFAULT 0,
	invalid_count INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (customer_id, hour_start)
);
`

// Open opens (creating if necessary) the SQLite database at path and applies
// the schema. WAL mode keeps readers off the writer's lock; the busy timeout
// makes short lock waits block instead of failing immediately.
func Open(path string) (*sql.DB, error) {
	if path == "" {
		return nil, errors.New("database path cannot be empty")
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %q: %w", path, err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return db, nil
}

// IsContention reports whether err is a transient SQLite lock conflict
// (SQLITE_BUSY or SQLITE_LOCKED) that a caller may retry.
func IsContention(err error) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	switch sqliteErr.Code() {
	case sqlite3.SQLITE_BUSY, sqlite3.SQLITE_LOCKED:
		return true
	}
	return false
}
