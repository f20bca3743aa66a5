package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLDB is the database interface used by all stores.
// Both *sql.DB and *TimedDB satisfy this interface.
type SQLDB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

// Compile-time check that *sql.DB satisfies SQLDB.
var _ SQLDB = (*sql.DB)(nil)

// InitDB initializes the database schema.
// Table names bill_track_50, provider_alerts, state_plan_amendments and User
// are fixed by the upstream data pipeline that also writes to this database.
// PRE: db is a valid database connection
// POST: All tables are created, WAL mode enabled
func InitDB(db *sql.DB) error {
	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	// Enable foreign key enforcement
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Create tables
	schema := `
	CREATE TABLE IF NOT EXISTS account (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL,
		created_at TEXT NOT NULL,
		failed_logins INTEGER NOT NULL DEFAULT 0,
		locked_until TEXT
	);

	CREATE TABLE IF NOT EXISTS bill_track_50 (
		url TEXT PRIMARY KEY,
		state TEXT,
		bill_name TEXT,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS provider_alerts (
		id TEXT PRIMARY KEY,
		subject TEXT NOT NULL,
		body TEXT NOT NULL DEFAULT '',
		state TEXT,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS state_plan_amendments (
		id TEXT PRIMARY KEY,
		state TEXT,
		title TEXT,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS User (
		UserID TEXT PRIMARY KEY,
		Email TEXT NOT NULL UNIQUE,
		Role TEXT NOT NULL DEFAULT 'user',
		UpdatedAt TEXT
	);

	CREATE TABLE IF NOT EXISTS transferred_subscriptions (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL,
		stripe_customer_id TEXT NOT NULL,
		stripe_subscription_id TEXT NOT NULL,
		created_at TEXT NOT NULL
	);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}
