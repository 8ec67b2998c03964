// cmd/inventory/app.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/ammerola/inventory-catalog/internal/adapters/db"
	redis_a "github.com/ammerola/inventory-catalog/internal/adapters/redis_adapter"
	"github.com/ammerola/inventory-catalog/internal/adapters/spreadsheet"
	"github.com/ammerola/inventory-catalog/internal/core/ports"
	"github.com/ammerola/inventory-catalog/internal/core/services"
	"github.com/ammerola/inventory-catalog/internal/pkg/config"
)

// app holds the wired components shared by every subcommand.
type app struct {
	cfg      *config.Config
	store    *db.SQLiteStore
	notifier *services.Notifier
	provider *services.Provider
	catalog  *services.Catalog
	redis    *redis.Client
	queue    *asynq.Client
	logger   *slog.Logger
}

func newApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*app, error) {
	a := &app{cfg: cfg, logger: logger}

	logger.DebugContext(ctx, "opening store", slog.String("path", cfg.Database.Path))
	store, err := db.Open(ctx, cfg.DB(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	a.store = store

	var cache ports.CacheRepository
	if cfg.Redis.Enabled {
		client, err := redis_a.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.DialTimeout)
		if err != nil {
			// The catalog works without a cache.
			logger.WarnContext(ctx, "redis unavailable, running without cache",
				slog.Any("error", err))
		} else {
			a.redis = client
			cache = redis_a.NewCache(client, cfg.Redis.TTL, logger)
			a.queue = asynq.NewClientFromRedisClient(client)
		}
	}

	a.notifier = services.NewNotifier(logger)
	a.provider = services.NewProvider(store, a.notifier, cfg.Contract(), logger)
	a.catalog = services.NewCatalog(a.provider, cache, spreadsheet.NewWorkbook(logger), logger)

	return a, nil
}

func (a *app) enqueue(ctx context.Context, task *asynq.Task) (*asynq.TaskInfo, error) {
	if a.queue == nil {
		return nil, errors.New("background jobs need redis: set REDIS_ENABLED=true")
	}
	return a.queue.EnqueueContext(ctx, task, asynq.Queue(a.cfg.Worker.Queue))
}

func (a *app) Close() {
	a.catalog.Close()
	// The queue shares the redis connection.
	if a.redis != nil {
		a.redis.Close()
	}
	if err := a.store.Close(); err != nil {
		a.logger.Error("failed to close store", slog.Any("error", err))
	}
}
