// Package dbmigrate applies the versioned SQL schema embedded in the binary.
package dbmigrate

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres" // registers postgres:// URLs
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// Direction selects which way Run migrates.
type Direction string

const (
	DirectionUp Direction = "up"
	Down        Direction = "down"
)

// ErrNoChange is returned by Run when the schema is already at the target version.
var ErrNoChange = migrate.ErrNoChange

// Run migrates the database at dsn in the given direction.
func Run(dsn string, direction Direction) error {
	if dsn == "" {
		return errors.New("dbmigrate: database url is empty; set database.url or DATABASE_URL")
	}
	if direction != DirectionUp && direction != Down {
		return fmt.Errorf("dbmigrate: direction must be up or down, got %q", direction)
	}

	src, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		return fmt.Errorf("dbmigrate: source: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, dsn)
	if err != nil {
		return fmt.Errorf("dbmigrate: %w", err)
	}
	defer func() { _, _ = m.Close() }()

	if direction == DirectionUp {
		return m.Up()
	}
	return m.Down()
}

// Up applies every pending migration. An up-to-date schema is not an error.
func Up(dsn string) error {
	if err := Run(dsn, DirectionUp); err != nil && !errors.Is(err, ErrNoChange) {
		return err
	}
	return nil
}
