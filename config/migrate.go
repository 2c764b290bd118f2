package config

import (
	"embed"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// Schema files are kept per dialect: mysql and sqlite auto-increment
// syntax differ.
//
//go:embed migrations/mysql/*.sql migrations/sqlite/*.sql
var migrationsFS embed.FS

// RunMigrations applies all pending schema migrations for the connected
// database.
func RunMigrations(driver string) error {
	if DB == nil {
		return fmt.Errorf("database not initialised")
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	dir := "migrations/mysql"
	if driver == "sqlite" {
		dir = "migrations/sqlite"
	}
	source, err := iofs.New(migrationsFS, dir)
	if err != nil {
		return err
	}

	var m *migrate.Migrate
	switch driver {
	case "sqlite":
		instance, err := migratesqlite.WithInstance(sqlDB, &migratesqlite.Config{})
		if err != nil {
			return err
		}
		m, err = migrate.NewWithInstance("iofs", source, "sqlite3", instance)
		if err != nil {
			return err
		}
	default:
		instance, err := migratemysql.WithInstance(sqlDB, &migratemysql.Config{})
		if err != nil {
			return err
		}
		m, err = migrate.NewWithInstance("iofs", source, "mysql", instance)
		if err != nil {
			return err
		}
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}
