// cmd/worker/main.go
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"

	"github.com/ammerola/inventory-catalog/internal/adapters/db"
	redis_a "github.com/ammerola/inventory-catalog/internal/adapters/redis_adapter"
	"github.com/ammerola/inventory-catalog/internal/adapters/spreadsheet"
	"github.com/ammerola/inventory-catalog/internal/core/services"
	"github.com/ammerola/inventory-catalog/internal/pkg/config"
	"github.com/ammerola/inventory-catalog/internal/pkg/logger"
	"github.com/ammerola/inventory-catalog/internal/workers"
)

func main() {
	// Setup logger
	slogger := logger.SetupLogger("info", "json")

	// Load configuration
	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	if !cfg.Redis.Enabled {
		slogger.Error("worker needs redis, set REDIS_ENABLED=true")
		os.Exit(1)
	}

	// Reconfigure logger with loaded settings
	slogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	slogger.Info("starting worker",
		slog.String("environment", cfg.App.Environment),
		slog.String("redis_addr", cfg.Redis.Addr))

	ctx := context.Background()
	store, err := db.Open(ctx, cfg.DB(), slogger)
	if err != nil {
		slogger.Error("failed to open store", slog.Any("error", err))
		os.Exit(1)
	}
	defer store.Close()

	redisClient, err := redis_a.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.DialTimeout)
	if err != nil {
		slogger.Error("failed to connect to redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer redisClient.Close()

	// Initialize services
	provider := services.NewProvider(store, services.NewNotifier(slogger), cfg.Contract(), slogger)
	cache := redis_a.NewCache(redisClient, cfg.Redis.TTL, slogger)
	catalog := services.NewCatalog(provider, cache, spreadsheet.NewWorkbook(slogger), slogger)
	defer catalog.Close()

	// Create Asynq server
	srv := asynq.NewServerFromRedisClient(redisClient, asynq.Config{
		Concurrency:     cfg.Worker.Concurrency,
		Queues:          map[string]int{cfg.Worker.Queue: 1},
		ErrorHandler:    asynq.ErrorHandlerFunc(handleError),
		RetryDelayFunc:  exponentialBackoff,
		ShutdownTimeout: cfg.Worker.ShutdownTimeout,
		HealthCheckFunc: healthCheck,
		Logger:          newAsynqLogger(slogger),
	})

	// Create task handlers
	mux := asynq.NewServeMux()
	mux.HandleFunc(workers.TypeImport, workers.NewImportProcessor(catalog, slogger).ProcessImport)
	mux.HandleFunc(workers.TypeExport, workers.NewExportProcessor(catalog, slogger).ProcessExport)

	// Handle shutdown gracefully
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Run(mux); err != nil {
			slogger.Error("failed to run worker server", slog.Any("error", err))
			shutdown <- syscall.SIGTERM
		}
	}()

	slogger.Info("worker started successfully",
		slog.Int("concurrency", cfg.Worker.Concurrency),
		slog.String("queue", cfg.Worker.Queue))

	// Wait for shutdown signal
	sig := <-shutdown
	slogger.Info("shutdown signal received", slog.String("signal", sig.String()))

	srv.Shutdown()
	slogger.Info("worker shutdown complete")
}

func handleError(ctx context.Context, task *asynq.Task, err error) {
	slog.ErrorContext(ctx, "task processing failed",
		slog.String("type", task.Type()),
		slog.String("payload", string(task.Payload())),
		slog.Any("error", err))
}

func exponentialBackoff(n int, e error, t *asynq.Task) time.Duration {
	baseDelay := time.Second
	maxDelay := 10 * time.Minute
	delay := baseDelay * time.Duration(1<<uint(n))
	if delay > maxDelay || delay <= 0 {
		delay = maxDelay
	}
	return delay
}

func healthCheck(err error) {
	if err != nil {
		slog.Error("worker health check failed", slog.Any("error", err))
	}
}

// asynqLogger adapts slog for Asynq
type asynqLogger struct {
	logger *slog.Logger
}

func newAsynqLogger(logger *slog.Logger) *asynqLogger {
	return &asynqLogger{
		logger: logger.With(slog.String("component", "asynq")),
	}
}

func (l *asynqLogger) Debug(args ...interface{}) {
	l.logger.Debug(fmt.Sprint(args...))
}

func (l *asynqLogger) Info(args ...interface{}) {
	l.logger.Info(fmt.Sprint(args...))
}

func (l *asynqLogger) Warn(args ...interface{}) {
	l.logger.Warn(fmt.Sprint(args...))
}

func (l *asynqLogger) Error(args ...interface{}) {
	l.logger.Error(fmt.Sprint(args...))
}

func (l *asynqLogger) Fatal(args ...interface{}) {
	l.logger.Error(fmt.Sprint(args...))
	os.Exit(1)
}
