package store

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/matheus3301/chatshell/internal/store/migrations"
)

// Catalog migration versions.
const (
	SchemaVersion   uint = 1 // empty tables
	FixturesVersion uint = 2 // built-in conversations and the seeded thread
)

// MigrateResult reports the catalog version after a migration run.
type MigrateResult struct {
	Version uint
	Dirty   bool
	Changed bool // false when the catalog was already at the target
}

// Migrate brings the catalog to the latest version, fixtures included.
func (db *DB) Migrate() (*MigrateResult, error) {
	m, err := db.migrator()
	if err != nil {
		return nil, err
	}
	return finish(m, m.Up())
}

// MigrateTo moves the catalog to an exact version. SchemaVersion yields an
// empty catalog for callers that bring their own fixtures.
func (db *DB) MigrateTo(version uint) (*MigrateResult, error) {
	if version < SchemaVersion || version > FixturesVersion {
		return nil, fmt.Errorf("unknown catalog version %d", version)
	}
	m, err := db.migrator()
	if err != nil {
		return nil, err
	}
	return finish(m, m.Migrate(version))
}

// migrator wires the embedded SQL files to this connection. The migrate
// instance is not closed: that would close the shared *sql.DB too.
func (db *DB) migrator() (*migrate.Migrate, error) {
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return nil, fmt.Errorf("migration source: %w", err)
	}
	driver, err := sqlite3.WithInstance(db.DB, &sqlite3.Config{})
	if err != nil {
		return nil, fmt.Errorf("migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return nil, fmt.Errorf("migration instance: %w", err)
	}
	return m, nil
}

func finish(m *migrate.Migrate, runErr error) (*MigrateResult, error) {
	changed := true
	if errors.Is(runErr, migrate.ErrNoChange) {
		changed, runErr = false, nil
	}
	if runErr != nil {
		return nil, fmt.Errorf("migrate: %w", runErr)
	}
	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return nil, fmt.Errorf("migration version: %w", err)
	}
	return &MigrateResult{Version: version, Dirty: dirty, Changed: changed}, nil
}
