package sqlite

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	// Import the SQLite driver.
	_ "modernc.org/sqlite"

	"github.com/rahulnsecc/agenthub/internal/profile"
	"github.com/rahulnsecc/agenthub/store"
)

type DB struct {
	db      *sql.DB
	profile *profile.Profile
}

// NewDB opens the SQLite database identified by the profile DSN.
func NewDB(profile *profile.Profile) (store.Driver, error) {
	// Ensure a DSN is set before attempting to open the database.
	if profile.DSN == "" {
		return nil, errors.New("dsn required")
	}

	// Connect to the database with some sane settings:
	// - No foreign key constraints: there is a single table, be explicit anyway.
	// - busy_timeout so concurrent turn appends wait instead of failing.
	// - Journal mode set to WAL: it's the recommended journal mode for most
	//   applications as it prevents locking issues.
	//
	// Note: with the `modernc.org/sqlite` driver, each pragma must be prefixed
	// with `_pragma=`.
	sqliteDB, err := sql.Open("sqlite", profile.DSN+"?_pragma=foreign_keys(0)&_pragma=busy_timeout(10000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open db with dsn: %s", profile.DSN)
	}

	// SQLite handles concurrency differently; a single connection is optimal
	// with WAL mode, and it serializes appends at the driver level.
	sqliteDB.SetMaxOpenConns(1)
	sqliteDB.SetMaxIdleConns(1)
	sqliteDB.SetConnMaxLifetime(0)
	sqliteDB.SetConnMaxIdleTime(0)

	driver := DB{db: sqliteDB, profile: profile}

	return &driver, nil
}

func (d *DB) GetDB() *sql.DB {
	return d.db
}

func (d *DB) Close() error {
	return d.db.Close()
}

// Migrate creates the turn_record table if it does not exist.
func (d *DB) Migrate(ctx context.Context) error {
	stmt := `
		CREATE TABLE IF NOT EXISTS turn_record (
			id TEXT PRIMARY KEY,
			user_input TEXT NOT NULL,
			role TEXT NOT NULL,
			response TEXT NOT NULL,
			created_ts BIGINT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_turn_record_created_ts ON turn_record (created_ts);
	`
	if _, err := d.db.ExecContext(ctx, stmt); err != nil {
		return errors.Wrap(err, "failed to migrate turn_record")
	}
	return nil
}
