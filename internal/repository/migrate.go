package repository

import (
	"embed"
	"errors"
	"fmt"
	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate applies the embedded migrations to db, or rolls them back when down
// is set. migrate.ErrNoChange is returned wrapped when there is nothing to do.
func Migrate(db *sqlx.DB, down bool) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	driver, err := migratesqlite.WithInstance(db.DB, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("failed to init migration driver: %w", err)
	}

	// m.Close is not called: it would close the shared *sql.DB
	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("failed to initialize migrations: %w", err)
	}

	if !down {
		if err := m.Up(); err != nil {
			return fmt.Errorf("failed to apply up migrations: %w", err)
		}
		return nil
	}

	err = m.Down()
	var dirty migrate.ErrDirty
	if errors.As(err, &dirty) {
		if err := m.Force(dirty.Version); err != nil {
			return fmt.Errorf("failed to force dirty version %d: %w", dirty.Version, err)
		}
		err = m.Down()
	}
	if err != nil {
		return fmt.Errorf("failed to apply down migrations: %w", err)
	}
	return nil
}
