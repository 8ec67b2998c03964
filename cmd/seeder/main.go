// cmd/seeder/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ammerola/inventory-catalog/internal/adapters/db"
	"github.com/ammerola/inventory-catalog/internal/core/domain"
	"github.com/ammerola/inventory-catalog/internal/core/ports"
	"github.com/ammerola/inventory-catalog/internal/core/services"
	"github.com/ammerola/inventory-catalog/internal/pkg/config"
	"github.com/ammerola/inventory-catalog/internal/pkg/logger"
)

// seedReport summarizes a run.
type seedReport struct {
	Inserted int
	Failed   int
	Deleted  int64
	Duration time.Duration
}

func main() {
	var (
		count    = flag.Int("count", 25, "Number of products to generate")
		seedVal  = flag.Uint64("seed", uint64(time.Now().UnixNano()), "Random seed for reproducible data")
		logLevel = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
		dryRun   = flag.Bool("dry-run", false, "Print generated products without modifying the store")
		reset    = flag.Bool("reset", false, "Delete every product before seeding")
	)
	flag.Parse()

	slogger := logger.SetupLogger(*logLevel, "text")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	products := newGenerator(*seedVal).products(*count)

	if *dryRun {
		for _, p := range products {
			fmt.Printf("%-40s %-18s %-18s %8s %3d\n",
				p.Name, p.SupplierName, p.SupplierPhone, p.DisplayPrice(), p.Quantity)
		}
		slogger.Info("dry run complete", slog.Int("products", len(products)))
		return
	}

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	store, err := db.Open(ctx, cfg.DB(), slogger)
	if err != nil {
		slogger.Error("failed to open store", slog.Any("error", err))
		os.Exit(1)
	}
	defer store.Close()

	provider := services.NewProvider(store, services.NewNotifier(slogger), cfg.Contract(), slogger)

	report, err := seed(ctx, provider, products, *reset, slogger)
	if err != nil {
		slogger.Error("seeding failed", slog.Any("error", err))
		stop()
		store.Close()
		os.Exit(1)
	}

	slogger.Info("seeding complete",
		slog.Int("inserted", report.Inserted),
		slog.Int("failed", report.Failed),
		slog.Int64("deleted", report.Deleted),
		slog.Duration("duration", report.Duration))
}

// seed inserts products through the provider so every row is validated.
func seed(ctx context.Context, provider ports.InventoryProvider, products []domain.Product, reset bool, logger *slog.Logger) (*seedReport, error) {
	start := time.Now()
	report := &seedReport{}
	collection := provider.Contract().CollectionURI()

	if reset {
		n, err := provider.Delete(ctx, collection, "", nil)
		if err != nil {
			return nil, fmt.Errorf("failed to reset inventory: %w", err)
		}
		report.Deleted = n
		logger.InfoContext(ctx, "inventory reset", slog.Int64("deleted", n))
	}

	for i, p := range products {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		uri, err := provider.Insert(ctx, collection, p.Payload())
		if err != nil || uri == "" {
			report.Failed++
			logger.WarnContext(ctx, "failed to insert product",
				slog.Int("index", i),
				slog.String("name", p.Name),
				slog.Any("error", err))
			continue
		}
		report.Inserted++
		logger.DebugContext(ctx, "product inserted", slog.String("uri", uri))
	}

	report.Duration = time.Since(start)
	return report, nil
}
