// internal/pkg/config/config.go
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/ammerola/inventory-catalog/internal/adapters/db"
	"github.com/ammerola/inventory-catalog/internal/core/domain"
)

// Config holds all application configuration
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Content  ContentConfig
	Worker   WorkerConfig
	Export   ExportConfig
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	Name        string `required:"true"`
	Environment string // development, test, production
	Version     string
	LogLevel    string
	LogFormat   string // json, text
}

// DatabaseConfig holds the embedded store configuration
type DatabaseConfig struct {
	Path               string `required:"true"`
	MaxOpenConns       int
	BusyTimeout        time.Duration
	EnableQueryLogging bool
	MigrationsTable    string `required:"true"`
}

// RedisConfig holds Redis configuration. Redis backs the product cache
// and the background worker queue; both are off unless Enabled.
type RedisConfig struct {
	Enabled     bool
	Addr        string
	Password    string
	DB          int
	TTL         time.Duration
	DialTimeout time.Duration
}

// ContentConfig holds the URI addressing values.
type ContentConfig struct {
	Scheme    string `required:"true"`
	Authority string `required:"true"`
}

// WorkerConfig holds asynq server configuration
type WorkerConfig struct {
	Concurrency     int
	Queue           string
	ShutdownTimeout time.Duration
}

// ExportConfig holds spreadsheet file settings
type ExportConfig struct {
	Dir string
}

// Configuration errors
var (
	ErrMissingRequiredConfig = errors.New("missing required configuration")
	ErrInvalidConfig         = errors.New("invalid configuration")
)

// Load reads configuration from the environment, an optional .env file in
// development, and an optional inventory.yaml in the working directory.
func Load(logger *slog.Logger) (*Config, error) {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	if env == "development" || env == "local" {
		if err := godotenv.Load(); err != nil {
			logger.Debug("no .env file found, using environment variables",
				slog.String("error", err.Error()))
		} else {
			logger.Info(".env file loaded successfully")
		}
	}

	v := viper.New()
	v.SetConfigName("inventory")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v, env)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		logger.Info("config file loaded", slog.String("file", v.ConfigFileUsed()))
	}

	cfg := FromViper(v)
	cfg.App.Environment = env

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// FromViper builds a Config from v without validating it.
func FromViper(v *viper.Viper) *Config {
	return &Config{
		App: AppConfig{
			Name:        v.GetString("app.name"),
			Environment: v.GetString("app.env"),
			Version:     v.GetString("app.version"),
			LogLevel:    v.GetString("log.level"),
			LogFormat:   v.GetString("log.format"),
		},
		Database: DatabaseConfig{
			Path:               v.GetString("db.path"),
			MaxOpenConns:       v.GetInt("db.max_open_conns"),
			BusyTimeout:        v.GetDuration("db.busy_timeout"),
			EnableQueryLogging: v.GetBool("db.query_logging"),
			MigrationsTable:    v.GetString("db.migrations_table"),
		},
		Redis: RedisConfig{
			Enabled:     v.GetBool("redis.enabled"),
			Addr:        v.GetString("redis.addr"),
			Password:    v.GetString("redis.password"),
			DB:          v.GetInt("redis.db"),
			TTL:         v.GetDuration("redis.ttl"),
			DialTimeout: v.GetDuration("redis.dial_timeout"),
		},
		Content: ContentConfig{
			Scheme:    v.GetString("content.scheme"),
			Authority: v.GetString("content.authority"),
		},
		Worker: WorkerConfig{
			Concurrency:     v.GetInt("worker.concurrency"),
			Queue:           v.GetString("worker.queue"),
			ShutdownTimeout: v.GetDuration("worker.shutdown_timeout"),
		},
		Export: ExportConfig{
			Dir: v.GetString("export.dir"),
		},
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := validateRequiredFields(c); err != nil {
		return err
	}
	return (&RangeValidator{}).Validate(c)
}

// DB returns the store configuration.
func (c *Config) DB() *db.Config {
	return &db.Config{
		Path:               c.Database.Path,
		MaxOpenConns:       c.Database.MaxOpenConns,
		BusyTimeout:        c.Database.BusyTimeout,
		EnableQueryLogging: c.Database.EnableQueryLogging,
		MigrationsTable:    c.Database.MigrationsTable,
	}
}

// Contract returns the URI addressing contract.
func (c *Config) Contract() domain.Contract {
	return domain.NewContract(c.Content.Scheme, c.Content.Authority)
}

// IsProduction returns true if running in production
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// IsDevelopment returns true if running in development
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development" || c.App.Environment == "local"
}

func setDefaults(v *viper.Viper, env string) {
	v.SetDefault("app.name", "inventory-catalog")
	v.SetDefault("app.env", env)
	v.SetDefault("app.version", "dev")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("db.path", "inventory.db")
	v.SetDefault("db.max_open_conns", 1)
	v.SetDefault("db.busy_timeout", 5*time.Second)
	v.SetDefault("db.query_logging", env == "development")
	v.SetDefault("db.migrations_table", "schema_migrations")

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", 10*time.Minute)
	v.SetDefault("redis.dial_timeout", 5*time.Second)

	v.SetDefault("content.scheme", domain.DefaultScheme)
	v.SetDefault("content.authority", domain.DefaultAuthority)

	v.SetDefault("worker.concurrency", 2)
	v.SetDefault("worker.queue", "default")
	v.SetDefault("worker.shutdown_timeout", 30*time.Second)

	v.SetDefault("export.dir", os.TempDir())
}
