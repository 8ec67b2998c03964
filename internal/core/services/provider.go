// internal/core/services/provider.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ammerola/inventory-catalog/internal/core/domain"
	"github.com/ammerola/inventory-catalog/internal/core/ports"
)

const itemSelection = domain.ColumnID + " = ?"

// Provider exposes the inventory table as URI-addressed resources.
type Provider struct {
	store     ports.Store
	notifier  domain.ChangeRegistry
	contract  domain.Contract
	validator *Validator
	resolve   func(uri string) domain.Match
	logger    *slog.Logger
}

// Statically assert that *Provider implements the InventoryProvider interface.
var _ ports.InventoryProvider = (*Provider)(nil)

// NewProvider creates a provider over an opened store.
func NewProvider(store ports.Store, notifier domain.ChangeRegistry, contract domain.Contract, logger *slog.Logger) *Provider {
	return &Provider{
		store:     store,
		notifier:  notifier,
		contract:  contract,
		validator: NewValidator(),
		resolve:   contract.Resolve,
		logger:    logger.With(slog.String("service", "provider")),
	}
}

// Contract returns the addressing contract the provider answers to.
func (p *Provider) Contract() domain.Contract {
	return p.contract
}

// Notifier returns the registry change events are published on.
func (p *Provider) Notifier() domain.ChangeRegistry {
	return p.notifier
}

// Query reads rows addressed by uri. For an item URI the caller's
// selection is replaced by the id filter.
func (p *Provider) Query(ctx context.Context, uri string, projection []string, selection string, args []any, sort string) (*domain.ResultSet, error) {
	match := p.resolve(uri)
	switch match.Kind {
	case domain.MatchCollection:
	case domain.MatchItem:
		selection, args = itemSelection, []any{match.ID}
	case domain.MatchUnknown:
		return nil, &domain.URIError{Op: "query", URI: uri, Err: domain.ErrInvalidURI}
	default:
		return nil, unexpectedMatch("query", match)
	}

	rs, err := p.store.Query(ctx, domain.TableInventory, projection, selection, args, sort)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query inventory: %w", domain.ErrStoreFailure, err)
	}

	rs.SetNotificationURI(p.notifier, uri)

	p.logger.DebugContext(ctx, "queried inventory",
		slog.String("uri", uri),
		slog.String("match", match.Kind.String()),
		slog.Int("rows", rs.Count()))

	return rs, nil
}

// Insert adds a product through the collection URI and returns its item
// URI. A row rejected by the store yields "" and a nil error.
func (p *Provider) Insert(ctx context.Context, uri string, values domain.Payload) (string, error) {
	match := p.resolve(uri)
	switch match.Kind {
	case domain.MatchCollection:
	case domain.MatchItem, domain.MatchUnknown:
		return "", &domain.URIError{Op: "insert", URI: uri, Err: domain.ErrUnsupportedOperation}
	default:
		return "", unexpectedMatch("insert", match)
	}

	if err := p.validator.ValidateForInsert(values); err != nil {
		return "", err
	}

	id, err := p.store.Insert(ctx, domain.TableInventory, values.Columns())
	if err != nil || id < 0 {
		p.logger.ErrorContext(ctx, "failed to insert row",
			slog.String("uri", uri),
			slog.Any("error", err))
		return "", nil
	}

	p.notifier.Notify(uri)

	itemURI := p.contract.ItemURI(id)
	p.logger.InfoContext(ctx, "inserted product",
		slog.Int64("id", id),
		slog.String("uri", itemURI))

	return itemURI, nil
}

// Update changes the rows addressed by uri and returns how many matched.
// An empty payload is a no-op.
func (p *Provider) Update(ctx context.Context, uri string, values domain.Payload, selection string, args []any) (int64, error) {
	selection, args, err := p.writeTarget("update", uri, selection, args)
	if err != nil {
		return 0, err
	}

	if values.IsEmpty() {
		return 0, nil
	}

	if err := p.validator.ValidateForUpdate(values); err != nil {
		return 0, err
	}

	count, err := p.store.Update(ctx, domain.TableInventory, values.Columns(), selection, args)
	if err != nil {
		p.logger.ErrorContext(ctx, "failed to update rows",
			slog.String("uri", uri),
			slog.Any("error", err))
		return 0, nil
	}

	if count > 0 {
		p.notifier.Notify(uri)
	}

	p.logger.DebugContext(ctx, "updated inventory",
		slog.String("uri", uri),
		slog.Int64("count", count))

	return count, nil
}

// Delete removes the rows addressed by uri and returns how many went.
func (p *Provider) Delete(ctx context.Context, uri string, selection string, args []any) (int64, error) {
	selection, args, err := p.writeTarget("delete", uri, selection, args)
	if err != nil {
		return 0, err
	}

	count, err := p.store.Delete(ctx, domain.TableInventory, selection, args)
	if err != nil {
		p.logger.ErrorContext(ctx, "failed to delete rows",
			slog.String("uri", uri),
			slog.Any("error", err))
		return 0, nil
	}

	if count > 0 {
		p.notifier.Notify(uri)
	}

	p.logger.InfoContext(ctx, "deleted from inventory",
		slog.String("uri", uri),
		slog.Int64("count", count))

	return count, nil
}

// TypeOf returns the content type tag for uri.
func (p *Provider) TypeOf(uri string) (string, error) {
	match := p.resolve(uri)
	switch match.Kind {
	case domain.MatchCollection:
		return p.contract.DirType(), nil
	case domain.MatchItem:
		return p.contract.ItemType(), nil
	case domain.MatchUnknown:
		return "", &domain.URIError{Op: "type", URI: uri, Err: domain.ErrInvalidURI}
	default:
		return "", unexpectedMatch("type", match)
	}
}

// writeTarget applies the update/delete URI rules to the caller's filter.
func (p *Provider) writeTarget(op, uri, selection string, args []any) (string, []any, error) {
	match := p.resolve(uri)
	switch match.Kind {
	case domain.MatchCollection:
		return selection, args, nil
	case domain.MatchItem:
		return itemSelection, []any{match.ID}, nil
	case domain.MatchUnknown:
		return "", nil, &domain.URIError{Op: op, URI: uri, Err: domain.ErrUnsupportedOperation}
	default:
		return "", nil, unexpectedMatch(op, match)
	}
}

func unexpectedMatch(op string, m domain.Match) error {
	return fmt.Errorf("%w: %s: unexpected uri match %d", domain.ErrInternal, op, int(m.Kind))
}
