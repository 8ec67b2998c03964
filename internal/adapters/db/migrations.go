// internal/adapters/db/migrations.go
package db

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Migrator applies the embedded schema to an open database.
//
// The underlying migrate instance is never closed here: its database
// driver would close the shared *sql.DB, which Database owns.
type Migrator struct {
	migrate *migrate.Migrate
	logger  *slog.Logger
}

// NewMigrator creates a migrator bound to database.
func NewMigrator(database *Database, logger *slog.Logger) (*Migrator, error) {
	table := database.config.MigrationsTable
	if table == "" {
		table = "schema_migrations"
	}

	driver, err := sqlite3.WithInstance(database.db, &sqlite3.Config{
		MigrationsTable: table,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create sqlite3 migration driver: %w", err)
	}

	source, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to create embedded source driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration instance: %w", err)
	}

	logger = logger.With(slog.String("component", "migrator"))
	m.Log = &migrateLogger{logger: logger, verbose: database.config.EnableQueryLogging}

	return &Migrator{migrate: m, logger: logger}, nil
}

// Up runs all available migrations
func (m *Migrator) Up(ctx context.Context) error {
	version, dirty, err := m.migrate.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get current version: %w", err)
	}
	if dirty {
		m.logger.WarnContext(ctx, "forcing dirty migration",
			slog.Uint64("version", uint64(version)))
		if err := m.migrate.Force(int(version)); err != nil {
			return fmt.Errorf("failed to force version: %w", err)
		}
	}

	if err := m.migrate.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			m.logger.DebugContext(ctx, "schema up to date")
			return nil
		}
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	newVersion, _, err := m.migrate.Version()
	if err != nil {
		m.logger.WarnContext(ctx, "failed to get new version", slog.String("error", err.Error()))
	} else {
		m.logger.InfoContext(ctx, "migrations completed",
			slog.Uint64("version", uint64(newVersion)))
	}

	return nil
}

// Down rolls every migration back, dropping the inventory table.
func (m *Migrator) Down(ctx context.Context) error {
	m.logger.WarnContext(ctx, "rolling back all migrations")

	if err := m.migrate.Down(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return nil
		}
		return fmt.Errorf("failed to roll back migrations: %w", err)
	}
	return nil
}

// Recreate drops and recreates the schema. All rows are lost.
func (m *Migrator) Recreate(ctx context.Context) error {
	if err := m.Down(ctx); err != nil {
		return err
	}
	return m.Up(ctx)
}

// Version returns current migration version
func (m *Migrator) Version(ctx context.Context) (uint, bool, error) {
	version, dirty, err := m.migrate.Version()
	if err != nil {
		if errors.Is(err, migrate.ErrNilVersion) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to get version: %w", err)
	}
	return version, dirty, nil
}

// EnsureSchema creates the schema if it is absent. It is idempotent.
func EnsureSchema(ctx context.Context, database *Database, logger *slog.Logger) error {
	migrator, err := NewMigrator(database, logger)
	if err != nil {
		return err
	}
	return migrator.Up(ctx)
}

// migrateLogger adapts slog for golang-migrate
type migrateLogger struct {
	logger  *slog.Logger
	verbose bool
}

func (l *migrateLogger) Printf(format string, v ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, v...))
}

func (l *migrateLogger) Verbose() bool {
	return l.verbose
}
