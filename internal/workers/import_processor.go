// internal/workers/import_processor.go
package workers

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/hibiken/asynq"

	"github.com/ammerola/inventory-catalog/internal/core/ports"
	"github.com/ammerola/inventory-catalog/internal/pkg/logger"
)

// ImportProcessor handles spreadsheet import tasks
type ImportProcessor struct {
	catalog ports.CatalogService
	logger  *slog.Logger
}

// NewImportProcessor creates a new import processor
func NewImportProcessor(catalog ports.CatalogService, logger *slog.Logger) *ImportProcessor {
	return &ImportProcessor{
		catalog: catalog,
		logger:  logger.With(slog.String("processor", "import")),
	}
}

// ProcessImport inserts every valid row of the spreadsheet named by the task.
func (p *ImportProcessor) ProcessImport(ctx context.Context, t *asynq.Task) error {
	start := time.Now()

	payload, err := decodePayload(t)
	if err != nil {
		return err
	}
	ctx = logger.WithJobID(ctx, payload.JobID)

	p.logger.InfoContext(ctx, "processing spreadsheet import",
		slog.String("file_path", payload.FilePath))

	f, err := os.Open(payload.FilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("failed to open spreadsheet: %v: %w", err, asynq.SkipRetry)
		}
		return fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat spreadsheet: %w", err)
	}

	result, err := p.catalog.Import(ctx, f, info.Size())
	if err != nil {
		return fmt.Errorf("failed to import spreadsheet: %w", err)
	}

	if payload.RemoveAfter {
		if err := os.Remove(payload.FilePath); err != nil {
			p.logger.WarnContext(ctx, "failed to remove imported file", slog.Any("error", err))
		}
	}

	writeResult(t, result)

	p.logger.InfoContext(ctx, "spreadsheet import completed",
		slog.Int("inserted", result.Inserted),
		slog.Int("skipped", result.Skipped),
		slog.Duration("duration", time.Since(start)))

	return nil
}
