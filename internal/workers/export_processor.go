// internal/workers/export_processor.go
package workers

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hibiken/asynq"

	"github.com/ammerola/inventory-catalog/internal/core/ports"
	"github.com/ammerola/inventory-catalog/internal/pkg/logger"
)

// ExportResult is written as the task result.
type ExportResult struct {
	FilePath string `json:"file_path"`
	Products int    `json:"products"`
}

// ExportProcessor handles spreadsheet export tasks
type ExportProcessor struct {
	catalog ports.CatalogService
	logger  *slog.Logger
}

// NewExportProcessor creates a new export processor
func NewExportProcessor(catalog ports.CatalogService, logger *slog.Logger) *ExportProcessor {
	return &ExportProcessor{
		catalog: catalog,
		logger:  logger.With(slog.String("processor", "export")),
	}
}

// ProcessExport writes the whole catalog to the file named by the task.
// The file is written next to its destination and renamed into place.
func (p *ExportProcessor) ProcessExport(ctx context.Context, t *asynq.Task) error {
	payload, err := decodePayload(t)
	if err != nil {
		return err
	}
	ctx = logger.WithJobID(ctx, payload.JobID)

	p.logger.InfoContext(ctx, "processing spreadsheet export",
		slog.String("file_path", payload.FilePath))

	tmp, err := os.CreateTemp(filepath.Dir(payload.FilePath), ".export-*.xlsx")
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer os.Remove(tmp.Name())

	n, err := p.catalog.Export(ctx, tmp)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("failed to export catalog: %w", err)
	}

	if err := os.Rename(tmp.Name(), payload.FilePath); err != nil {
		return fmt.Errorf("failed to move export file: %w", err)
	}

	writeResult(t, ExportResult{FilePath: payload.FilePath, Products: n})

	p.logger.InfoContext(ctx, "spreadsheet export completed",
		slog.Int("products", n))

	return nil
}
