// Package migrations holds the embedded schema for the task store and applies
// it with golang-migrate.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	msqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// SchemaVersion is the version the embedded migrations bring the database to.
const SchemaVersion uint = 1

//go:embed *.sql
var migrationsFS embed.FS

// newMigrate builds a migrator over an existing connection pool. The returned
// cleanup closes only the migration source: closing the migrate instance
// would also close db.
func newMigrate(db *sql.DB) (*migrate.Migrate, func(), error) {
	src, err := iofs.New(migrationsFS, ".")
	if err != nil {
		return nil, nil, fmt.Errorf("open embedded migrations: %w", err)
	}

	driver, err := msqlite.WithInstance(db, &msqlite.Config{})
	if err != nil {
		src.Close()
		return nil, nil, fmt.Errorf("create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		src.Close()
		return nil, nil, fmt.Errorf("create migrator: %w", err)
	}
	return m, func() { src.Close() }, nil
}

// RunMigrations applies all pending up migrations. An already current schema
// is not an error.
func RunMigrations(db *sql.DB) error {
	m, cleanup, err := newMigrate(db)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// Reset migrates all the way down and back up, dropping every task. This is
// the only destructive schema operation and is never run implicitly.
func Reset(db *sql.DB) error {
	m, cleanup, err := newMigrate(db)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("revert migrations: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("reapply migrations: %w", err)
	}
	return nil
}

// Version returns the applied schema version. A database with no migrations
// applied reports 0. A dirty database is an error.
func Version(db *sql.DB) (uint, error) {
	m, cleanup, err := newMigrate(db)
	if err != nil {
		return 0, err
	}
	defer cleanup()

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	if dirty {
		return version, fmt.Errorf("database is in a dirty state at version %d", version)
	}
	return version, nil
}
