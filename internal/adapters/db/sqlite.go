// internal/adapters/db/sqlite.go
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Config holds database configuration
type Config struct {
	Path               string
	MaxOpenConns       int
	BusyTimeout        time.Duration
	EnableQueryLogging bool
	MigrationsTable    string
}

// DefaultConfig returns default database configuration
func DefaultConfig() *Config {
	return &Config{
		Path:               "inventory.db",
		MaxOpenConns:       1,
		BusyTimeout:        5 * time.Second,
		EnableQueryLogging: false,
		MigrationsTable:    "schema_migrations",
	}
}

// Database owns the single embedded database handle.
type Database struct {
	db     *sql.DB
	config *Config
	logger *slog.Logger
}

// NewDatabase opens the database file and verifies it is usable.
// It does not touch the schema; see Open.
func NewDatabase(ctx context.Context, config *Config, logger *slog.Logger) (*Database, error) {
	if config == nil {
		config = DefaultConfig()
	}

	sqlDB, err := sql.Open("sqlite3", buildDSN(config))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	database, err := NewDatabaseFromDB(ctx, sqlDB, config, logger)
	if err != nil {
		sqlDB.Close()
		return nil, err
	}

	logger.Info("database opened",
		slog.String("path", config.Path),
		slog.Int("max_open_conns", config.MaxOpenConns),
	)

	return database, nil
}

// NewDatabaseFromDB wraps an existing handle. It is used by tests that
// substitute a mock driver.
func NewDatabaseFromDB(ctx context.Context, sqlDB *sql.DB, config *Config, logger *slog.Logger) (*Database, error) {
	if config == nil {
		config = DefaultConfig()
	}

	maxConns := config.MaxOpenConns
	if maxConns <= 0 {
		maxConns = 1
	}
	sqlDB.SetMaxOpenConns(maxConns)
	sqlDB.SetMaxIdleConns(maxConns)
	sqlDB.SetConnMaxLifetime(0)

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Database{
		db:     sqlDB,
		config: config,
		logger: logger.With(slog.String("component", "sqlite")),
	}, nil
}

func buildDSN(config *Config) string {
	params := url.Values{}
	params.Set("_busy_timeout", strconv.FormatInt(config.BusyTimeout.Milliseconds(), 10))
	params.Set("_foreign_keys", "on")

	path := config.Path
	if path == "" || path == ":memory:" {
		path = ":memory:"
	} else {
		params.Set("_journal_mode", "WAL")
	}

	return "file:" + path + "?" + params.Encode()
}

// DB returns the underlying handle.
func (db *Database) DB() *sql.DB {
	return db.db
}

// Config returns the configuration the database was opened with.
func (db *Database) Config() *Config {
	return db.config
}

// Close closes the database handle.
func (db *Database) Close() error {
	if err := db.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	db.logger.Info("database closed")
	return nil
}

// Ping verifies database connectivity
func (db *Database) Ping(ctx context.Context) error {
	return db.db.PingContext(ctx)
}

// Health returns database health information
func (db *Database) Health(ctx context.Context) map[string]interface{} {
	stats := db.db.Stats()
	health := map[string]interface{}{
		"status":           "healthy",
		"path":             db.config.Path,
		"open_connections": stats.OpenConnections,
		"in_use":           stats.InUse,
		"idle":             stats.Idle,
		"wait_count":       stats.WaitCount,
	}

	ctx, cancel := context.WithTimeout(ctx, time.Second*2)
	defer cancel()

	var result int
	if err := db.db.QueryRowContext(ctx, "SELECT 1").Scan(&result); err != nil {
		health["status"] = "unhealthy"
		health["error"] = err.Error()
	}

	return health
}
