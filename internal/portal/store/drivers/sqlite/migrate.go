package sqlite

import (
	"errors"

	"github.com/golang-migrate/migrate/v4"
	sqlitemigrate "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/aussiebroadwan/clientportal/internal/portal/store/drivers/sqlite/migrations"
)

// ApplyMigrations runs every pending embedded migration.
func (s *Store) ApplyMigrations() error {
	return s.MigrateTo(0)
}

// MigrateTo applies migrations up to version, or all of them when version is
// 0. A partial schema lacks the archive tables.
func (s *Store) MigrateTo(version uint) error {
	driver, err := sqlitemigrate.WithInstance(s.DB(), &sqlitemigrate.Config{})
	if err != nil {
		return err
	}
	src, err := iofs.New(migrations.Files, ".")
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return err
	}

	if version == 0 {
		err = m.Up()
	} else {
		err = m.Migrate(version)
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
