package sqlite

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"

	"github.com/dkachur/poker-nights/db"
)

// Migrate applies the embedded schema migrations. Running it on an
// up-to-date database is a no-op, so every startup calls it.
func Migrate(conn *sqlx.DB) error {
	m, err := newMigrator(conn)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}

// NewMigrator exposes the underlying migrator for the manual migration
// command.
func NewMigrator(conn *sqlx.DB) (*migrate.Migrate, error) {
	return newMigrator(conn)
}

func newMigrator(conn *sqlx.DB) (*migrate.Migrate, error) {
	source, err := iofs.New(db.MigrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("open embedded migration source: %w", err)
	}

	driver, err := migratesqlite.WithInstance(conn.DB, &migratesqlite.Config{})
	if err != nil {
		return nil, fmt.Errorf("create sqlite migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return nil, fmt.Errorf("create migrator: %w", err)
	}

	return m, nil
}
