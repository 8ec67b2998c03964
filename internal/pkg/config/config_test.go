package config_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/inventory-catalog/internal/core/domain"
	"github.com/ammerola/inventory-catalog/internal/pkg/config"
	"github.com/ammerola/inventory-catalog/test/helpers"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Chdir(t.TempDir())

	cfg, err := config.Load(discardLogger())
	require.NoError(t, err)

	assert.Equal(t, "inventory-catalog", cfg.App.Name)
	assert.Equal(t, "test", cfg.App.Environment)
	assert.Equal(t, "inventory.db", cfg.Database.Path)
	assert.Equal(t, 1, cfg.Database.MaxOpenConns)
	assert.Equal(t, 5*time.Second, cfg.Database.BusyTimeout)
	assert.False(t, cfg.Database.EnableQueryLogging)
	assert.Equal(t, "schema_migrations", cfg.Database.MigrationsTable)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, domain.DefaultContract, cfg.Contract())
	assert.Equal(t, 2, cfg.Worker.Concurrency)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_PATH", "/var/lib/inventory/catalog.db")
	t.Setenv("DB_MAX_OPEN_CONNS", "4")
	t.Setenv("DB_BUSY_TIMEOUT", "250ms")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_ADDR", "cache:6380")
	t.Setenv("CONTENT_AUTHORITY", "org.example.shop")
	t.Setenv("LOG_FORMAT", "json")
	t.Chdir(t.TempDir())

	cfg, err := config.Load(discardLogger())
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "/var/lib/inventory/catalog.db", cfg.DB().Path)
	assert.Equal(t, 4, cfg.DB().MaxOpenConns)
	assert.Equal(t, 250*time.Millisecond, cfg.DB().BusyTimeout)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "cache:6380", cfg.Redis.Addr)
	assert.Equal(t, "content://org.example.shop/inventory", cfg.Contract().CollectionURI())
	assert.Equal(t, "json", cfg.App.LogFormat)
}

func TestLoad_ConfigFile(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	dir := t.TempDir()
	t.Chdir(dir)

	yaml := []byte("db:\n  path: from-file.db\nworker:\n  queue: imports\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "inventory.yaml"), yaml, 0o600))

	cfg, err := config.Load(discardLogger())
	require.NoError(t, err)
	assert.Equal(t, "from-file.db", cfg.Database.Path)
	assert.Equal(t, "imports", cfg.Worker.Queue)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("LOG_LEVEL", "chatty")
	t.Chdir(t.TempDir())

	_, err := config.Load(discardLogger())
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*config.Config)
		wantError     bool
		wantErr       error
		errorContains string
	}{
		{
			name:   "valid_test_config",
			mutate: func(*config.Config) {},
		},
		{
			name:          "missing_db_path",
			mutate:        func(c *config.Config) { c.Database.Path = "" },
			wantError:     true,
			wantErr:       config.ErrMissingRequiredConfig,
			errorContains: "Database.Path",
		},
		{
			name:          "missing_authority",
			mutate:        func(c *config.Config) { c.Content.Authority = "  " },
			wantError:     true,
			wantErr:       config.ErrMissingRequiredConfig,
			errorContains: "Content.Authority",
		},
		{
			name:          "authority_with_path",
			mutate:        func(c *config.Config) { c.Content.Authority = "example.com/inventory" },
			wantError:     true,
			wantErr:       config.ErrInvalidConfig,
			errorContains: "content authority",
		},
		{
			name:          "zero_connections",
			mutate:        func(c *config.Config) { c.Database.MaxOpenConns = 0 },
			wantError:     true,
			wantErr:       config.ErrInvalidConfig,
			errorContains: "max_open_conns",
		},
		{
			name:          "bad_log_format",
			mutate:        func(c *config.Config) { c.App.LogFormat = "xml" },
			wantError:     true,
			wantErr:       config.ErrInvalidConfig,
			errorContains: "log format",
		},
		{
			name: "redis_enabled_without_addr",
			mutate: func(c *config.Config) {
				c.Redis.Enabled = true
				c.Redis.Addr = ""
			},
			wantError:     true,
			wantErr:       config.ErrMissingRequiredConfig,
			errorContains: "redis addr",
		},
		{
			name:      "zero_worker_concurrency",
			mutate:    func(c *config.Config) { c.Worker.Concurrency = 0 },
			wantError: true,
			wantErr:   config.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := helpers.LoadTestConfig(t)
			tt.mutate(cfg)

			err := cfg.Validate()
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.errorContains != "" {
				assert.Contains(t, err.Error(), tt.errorContains)
			}
		})
	}
}
