// internal/core/ports/database.go
package ports

import (
	"context"

	"github.com/ammerola/inventory-catalog/internal/core/domain"
)

// Store is the row-level persistence port over the embedded database.
// Selections use positional "?" placeholders bound from args.
type Store interface {
	// Query returns a materialized result set. An empty projection selects
	// every column; an empty selection matches every row.
	Query(ctx context.Context, table string, projection []string, selection string, args []any, sort string) (*domain.ResultSet, error)
	// Insert returns the new row id, or -1 with an error when the engine
	// rejects the row.
	Insert(ctx context.Context, table string, values map[string]any) (int64, error)
	Update(ctx context.Context, table string, values map[string]any, selection string, args []any) (int64, error)
	Delete(ctx context.Context, table string, selection string, args []any) (int64, error)

	Ping(ctx context.Context) error
	Close() error
}
