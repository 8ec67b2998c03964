// internal/core/ports/inventory_service.go
package ports

import (
	"context"
	"fmt"
	"io"

	"github.com/ammerola/inventory-catalog/internal/core/domain"
)

// InventoryProvider is the URI-addressed CRUD contract of the data layer.
type InventoryProvider interface {
	Query(ctx context.Context, uri string, projection []string, selection string, args []any, sort string) (*domain.ResultSet, error)
	// Insert returns the new item URI, or "" when the store rejected the row.
	Insert(ctx context.Context, uri string, values domain.Payload) (string, error)
	Update(ctx context.Context, uri string, values domain.Payload, selection string, args []any) (int64, error)
	Delete(ctx context.Context, uri string, selection string, args []any) (int64, error)
	TypeOf(uri string) (string, error)

	Contract() domain.Contract
	Notifier() domain.ChangeRegistry
}

// CatalogService is the consumer-facing set of catalog operations.
type CatalogService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Product(ctx context.Context, id int64) (*domain.Product, error)
	Save(ctx context.Context, id int64, values domain.Payload) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
	AddSample(ctx context.Context) (string, error)
	Sell(ctx context.Context, id int64) (int64, error)
	Export(ctx context.Context, w io.Writer) (int, error)
	Import(ctx context.Context, r io.ReaderAt, size int64) (*ImportResult, error)
}

// ImportResult summarizes a spreadsheet import.
type ImportResult struct {
	Inserted int      `json:"inserted"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

// Skip records a rejected row.
func (r *ImportResult) Skip(line int, err error) {
	r.Skipped++
	r.Errors = append(r.Errors, fmt.Sprintf("row %d: %v", line, err))
}
