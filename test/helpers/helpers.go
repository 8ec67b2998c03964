// test/helpers/helpers.go
package helpers

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/inventory-catalog/internal/adapters/db"
	"github.com/ammerola/inventory-catalog/internal/core/domain"
	"github.com/ammerola/inventory-catalog/internal/pkg/config"
)

// TestRedis represents a test Redis instance
type TestRedis struct {
	Client *redis.Client
	Server *miniredis.Miniredis
}

// TestLogger returns a test logger
func TestLogger() *slog.Logger {
	if testing.Verbose() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// TestDBConfig returns a database config pointing at a fresh temp file.
func TestDBConfig(t *testing.T) *db.Config {
	t.Helper()

	return &db.Config{
		Path:               filepath.Join(t.TempDir(), "inventory_test.db"),
		MaxOpenConns:       1,
		BusyTimeout:        time.Second,
		EnableQueryLogging: testing.Verbose(),
		MigrationsTable:    "schema_migrations",
	}
}

// SetupTestStore opens a schema-ready store on a temp file.
func SetupTestStore(t *testing.T) *db.SQLiteStore {
	t.Helper()

	store, err := db.Open(context.Background(), TestDBConfig(t), TestLogger())
	require.NoError(t, err, "Could not open test store")

	t.Cleanup(func() {
		store.Close()
	})

	return store
}

// SetupTestRedis creates a mock Redis instance for testing
func SetupTestRedis(t *testing.T) *TestRedis {
	t.Helper()

	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		client.Close()
	})

	return &TestRedis{
		Client: client,
		Server: mr,
	}
}

// SetupMockDB creates a mock database for unit testing
func SetupMockDB(t *testing.T) (sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err, "Failed to create mock DB")

	t.Cleanup(func() {
		db.Close()
	})

	return mock, db
}

// LoadTestConfig returns a test configuration
func LoadTestConfig(t *testing.T) *config.Config {
	t.Helper()

	dbCfg := TestDBConfig(t)
	return &config.Config{
		App: config.AppConfig{
			Name:        "inventory-test",
			Environment: "test",
			Version:     "test",
			LogLevel:    "debug",
			LogFormat:   "text",
		},
		Database: config.DatabaseConfig{
			Path:               dbCfg.Path,
			MaxOpenConns:       dbCfg.MaxOpenConns,
			BusyTimeout:        dbCfg.BusyTimeout,
			EnableQueryLogging: dbCfg.EnableQueryLogging,
			MigrationsTable:    dbCfg.MigrationsTable,
		},
		Redis: config.RedisConfig{
			Enabled: false,
			Addr:    "localhost:6379",
			TTL:     time.Minute,
		},
		Content: config.ContentConfig{
			Scheme:    domain.DefaultScheme,
			Authority: domain.DefaultAuthority,
		},
		Worker: config.WorkerConfig{
			Concurrency:     1,
			Queue:           "default",
			ShutdownTimeout: time.Second,
		},
		Export: config.ExportConfig{
			Dir: t.TempDir(),
		},
	}
}

// CreateTestProduct returns a product with realistic values.
func CreateTestProduct(overrides ...func(*domain.Product)) domain.Product {
	p := domain.Product{
		Name:          "Harry Potter",
		SupplierName:  "Magic BookPrint",
		SupplierPhone: "+48 888 888 888",
		Price:         20,
		Quantity:      50,
	}

	for _, override := range overrides {
		override(&p)
	}

	return p
}

// CreateTestPayload returns a full insert payload.
func CreateTestPayload(overrides ...func(*domain.Product)) domain.Payload {
	return CreateTestProduct(overrides...).Payload()
}

// CreateTestProducts creates multiple distinct products
func CreateTestProducts(count int) []domain.Product {
	products := make([]domain.Product, count)
	for i := 0; i < count; i++ {
		products[i] = CreateTestProduct(func(p *domain.Product) {
			p.Name = fmt.Sprintf("Test Book %d", i+1)
			p.SupplierName = fmt.Sprintf("Supplier %d", i%3+1)
			p.Price = int64(100 + i*25)
			p.Quantity = int64(i % 5)
		})
	}
	return products
}

// SeedProducts inserts products directly through the store.
func SeedProducts(t *testing.T, store *db.SQLiteStore, products []domain.Product) []int64 {
	t.Helper()

	ids := make([]int64, 0, len(products))
	for _, p := range products {
		id, err := store.Insert(context.Background(), domain.TableInventory, p.Payload().Columns())
		require.NoError(t, err, "Failed to seed test data")
		ids = append(ids, id)
	}
	return ids
}

// AssertEventuallyWithTimeout asserts that a condition is met within a timeout
func AssertEventuallyWithTimeout(t *testing.T, condition func() bool, timeout time.Duration, msg string) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}

	t.Errorf("Condition not met within %v: %s", timeout, msg)
}

// CreateTempFile creates a temporary file for testing
func CreateTempFile(t *testing.T, content []byte, extension string) string {
	t.Helper()

	file, err := os.CreateTemp(t.TempDir(), fmt.Sprintf("test-*%s", extension))
	require.NoError(t, err, "Failed to create temp file")

	_, err = file.Write(content)
	require.NoError(t, err, "Failed to write to temp file")

	require.NoError(t, file.Close())

	return file.Name()
}
