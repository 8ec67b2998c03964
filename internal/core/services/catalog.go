// internal/core/services/catalog.go
package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/ammerola/inventory-catalog/internal/core/domain"
	"github.com/ammerola/inventory-catalog/internal/core/ports"
)

const invalidateTimeout = 2 * time.Second

// SampleProduct is the row inserted by AddSample.
var SampleProduct = domain.Product{
	Name:          "Harry Potter",
	SupplierName:  "Magic BookPrint",
	SupplierPhone: "+48 888 888 888",
	Price:         20,
	Quantity:      50,
}

// Catalog implements the consumer operations on top of the provider.
type Catalog struct {
	provider ports.InventoryProvider
	cache    ports.CacheRepository
	sheet    ports.ProductSheet
	logger   *slog.Logger

	// serializes read-modify-write sales
	mu      sync.Mutex
	unwatch func()

	// cacheMu orders product cache fills against invalidations; gen
	// counts invalidations so a fill that raced one is dropped.
	cacheMu sync.Mutex
	gen     uint64
}

// Statically assert that *Catalog implements the CatalogService interface.
var _ ports.CatalogService = (*Catalog)(nil)

// NewCatalog creates a catalog service. cache and sheet may be nil.
func NewCatalog(provider ports.InventoryProvider, cache ports.CacheRepository, sheet ports.ProductSheet, logger *slog.Logger) *Catalog {
	c := &Catalog{
		provider: provider,
		cache:    cache,
		sheet:    sheet,
		logger:   logger.With(slog.String("service", "catalog")),
	}

	if cache != nil {
		c.unwatch = provider.Notifier().Register(
			provider.Contract().CollectionURI(),
			domain.ObserverFunc(c.invalidate),
		)
	}

	return c
}

// Close stops cache invalidation.
func (c *Catalog) Close() {
	if c.unwatch != nil {
		c.unwatch()
	}
}

func (c *Catalog) invalidate(uri string) {
	ctx, cancel := context.WithTimeout(context.Background(), invalidateTimeout)
	defer cancel()

	c.cacheMu.Lock()
	defer c.cacheMu.Unlock()
	c.gen++

	if err := c.cache.DeletePattern(ctx, ports.ProductCachePattern()); err != nil {
		c.logger.WarnContext(ctx, "failed to invalidate product cache",
			slog.String("uri", uri),
			slog.Any("error", err))
	}
}

// List returns every product ordered by id.
func (c *Catalog) List(ctx context.Context) ([]domain.Product, error) {
	rs, err := c.provider.Query(ctx, c.provider.Contract().CollectionURI(),
		domain.AllColumns, "", nil, domain.ColumnID+" ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rs.Close()

	return domain.ScanProducts(rs)
}

// Product returns a single product, reading through the cache when one
// is configured.
func (c *Catalog) Product(ctx context.Context, id int64) (*domain.Product, error) {
	if c.cache == nil {
		return c.load(ctx, id)
	}

	key := ports.ProductCacheKey(id)

	c.cacheMu.Lock()
	gen := c.gen
	c.cacheMu.Unlock()

	var cached domain.Product
	if err := c.cache.Get(ctx, key, &cached); err == nil {
		return &cached, nil
	}

	p, err := c.load(ctx, id)
	if err != nil {
		return nil, err
	}

	c.fill(ctx, key, gen, p)
	return p, nil
}

// fill caches p unless an invalidation ran since gen was read.
func (c *Catalog) fill(ctx context.Context, key string, gen uint64, p *domain.Product) {
	c.cacheMu.Lock()
	defer c.cacheMu.Unlock()

	if c.gen != gen {
		c.logger.DebugContext(ctx, "skipping stale product cache fill",
			slog.Int64("id", p.ID))
		return
	}

	if err := c.cache.Set(ctx, key, p); err != nil {
		c.logger.WarnContext(ctx, "failed to cache product",
			slog.Int64("id", p.ID),
			slog.Any("error", err))
	}
}

func (c *Catalog) load(ctx context.Context, id int64) (*domain.Product, error) {
	rs, err := c.provider.Query(ctx, c.provider.Contract().ItemURI(id), domain.AllColumns, "", nil, "")
	if err != nil {
		return nil, fmt.Errorf("failed to get product %d: %w", id, err)
	}
	defer rs.Close()

	if !rs.Next() {
		return nil, fmt.Errorf("%w: %d", domain.ErrProductNotFound, id)
	}

	p, err := domain.ScanProduct(rs)
	if err != nil {
		return nil, fmt.Errorf("failed to scan product %d: %w", id, err)
	}
	return &p, nil
}

// AddSample inserts the demo product and returns its URI.
func (c *Catalog) AddSample(ctx context.Context) (string, error) {
	uri, err := c.provider.Insert(ctx, c.provider.Contract().CollectionURI(), SampleProduct.Payload())
	if err != nil {
		return "", fmt.Errorf("failed to insert sample product: %w", err)
	}
	if uri == "" {
		return "", fmt.Errorf("%w: sample product was not stored", domain.ErrStoreFailure)
	}
	return uri, nil
}

// Save inserts a product when id is 0 and updates it otherwise. It
// returns the product id.
func (c *Catalog) Save(ctx context.Context, id int64, values domain.Payload) (int64, error) {
	contract := c.provider.Contract()

	if id == 0 {
		uri, err := c.provider.Insert(ctx, contract.CollectionURI(), values)
		if err != nil {
			return 0, fmt.Errorf("failed to insert product: %w", err)
		}
		if uri == "" {
			return 0, fmt.Errorf("%w: product was not stored", domain.ErrStoreFailure)
		}
		match := contract.Resolve(uri)
		return match.ID, nil
	}

	n, err := c.provider.Update(ctx, contract.ItemURI(id), values, "", nil)
	if err != nil {
		return 0, fmt.Errorf("failed to update product %d: %w", id, err)
	}
	if n == 0 && !values.IsEmpty() {
		if _, err := c.load(ctx, id); err != nil {
			return 0, err
		}
		return 0, fmt.Errorf("%w: product %d was not updated", domain.ErrStoreFailure, id)
	}
	return id, nil
}

// Delete removes one product.
func (c *Catalog) Delete(ctx context.Context, id int64) (int64, error) {
	n, err := c.provider.Delete(ctx, c.provider.Contract().ItemURI(id), "", nil)
	if err != nil {
		return 0, fmt.Errorf("failed to delete product %d: %w", id, err)
	}
	return n, nil
}

// DeleteAll empties the catalog.
func (c *Catalog) DeleteAll(ctx context.Context) (int64, error) {
	n, err := c.provider.Delete(ctx, c.provider.Contract().CollectionURI(), "", nil)
	if err != nil {
		return 0, fmt.Errorf("failed to delete all products: %w", err)
	}
	return n, nil
}

// Sell takes one unit out of stock and returns the remaining quantity.
func (c *Catalog) Sell(ctx context.Context, id int64) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, err := c.load(ctx, id)
	if err != nil {
		return 0, err
	}
	if !p.InStock() {
		return 0, fmt.Errorf("%w: %s", domain.ErrOutOfStock, p.Name)
	}

	remaining := p.Quantity - 1
	n, err := c.provider.Update(ctx, c.provider.Contract().ItemURI(id),
		domain.Payload{Quantity: domain.Set(remaining)}, "", nil)
	if err != nil {
		return 0, fmt.Errorf("failed to record sale of product %d: %w", id, err)
	}
	if n == 0 {
		return 0, fmt.Errorf("%w: sale of product %d was not stored", domain.ErrStoreFailure, id)
	}

	c.logger.InfoContext(ctx, "product sold",
		slog.Int64("id", id),
		slog.Int64("remaining", remaining))

	return remaining, nil
}

// Export writes every product to w as a workbook and returns the count.
func (c *Catalog) Export(ctx context.Context, w io.Writer) (int, error) {
	if c.sheet == nil {
		return 0, errors.New("spreadsheet support is not configured")
	}

	products, err := c.List(ctx)
	if err != nil {
		return 0, err
	}

	if err := c.sheet.Write(w, products); err != nil {
		return 0, fmt.Errorf("failed to write workbook: %w", err)
	}

	c.logger.InfoContext(ctx, "exported products", slog.Int("count", len(products)))
	return len(products), nil
}

// Import inserts each valid row of a workbook. Rows that fail parsing,
// validation or storage are skipped and reported.
func (c *Catalog) Import(ctx context.Context, r io.ReaderAt, size int64) (*ports.ImportResult, error) {
	if c.sheet == nil {
		return nil, errors.New("spreadsheet support is not configured")
	}

	rows, err := c.sheet.Read(r, size)
	if err != nil {
		return nil, fmt.Errorf("failed to read workbook: %w", err)
	}

	result := &ports.ImportResult{}
	collection := c.provider.Contract().CollectionURI()

	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		if row.Err != nil {
			result.Skip(row.Line, row.Err)
			continue
		}

		uri, err := c.provider.Insert(ctx, collection, row.Payload)
		switch {
		case err != nil:
			result.Skip(row.Line, err)
		case uri == "":
			result.Skip(row.Line, domain.ErrStoreFailure)
		default:
			result.Inserted++
		}
	}

	c.logger.InfoContext(ctx, "imported products",
		slog.Int("inserted", result.Inserted),
		slog.Int("skipped", result.Skipped))

	return result, nil
}
