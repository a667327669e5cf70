// Package db provides the database driver factory.
package db

import (
	"github.com/pkg/errors"

	"github.com/rahulnsecc/agenthub/internal/profile"
	"github.com/rahulnsecc/agenthub/store"
	"github.com/rahulnsecc/agenthub/store/db/postgres"
	"github.com/rahulnsecc/agenthub/store/db/sqlite"
)

// NewDBDriver creates a new database driver based on the profile.
func NewDBDriver(profile *profile.Profile) (store.Driver, error) {
	switch profile.Driver {
	case "sqlite":
		return sqlite.NewDB(profile)
	case "postgres":
		return postgres.NewDB(profile)
	default:
		return nil, errors.Errorf("unsupported driver: %s", profile.Driver)
	}
}
