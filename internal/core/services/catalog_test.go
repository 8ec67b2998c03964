package services_test

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	redis_a "github.com/ammerola/inventory-catalog/internal/adapters/redis_adapter"
	"github.com/ammerola/inventory-catalog/internal/adapters/spreadsheet"
	"github.com/ammerola/inventory-catalog/internal/core/domain"
	"github.com/ammerola/inventory-catalog/internal/core/ports"
	"github.com/ammerola/inventory-catalog/internal/core/services"
	"github.com/ammerola/inventory-catalog/test/helpers"
	"github.com/ammerola/inventory-catalog/test/mocks"
)

type catalogFixture struct {
	catalog  *services.Catalog
	provider *services.Provider
	redis    *helpers.TestRedis
}

func newCatalog(t *testing.T, withCache bool) *catalogFixture {
	t.Helper()

	store := helpers.SetupTestStore(t)
	provider := services.NewProvider(store, services.NewNotifier(helpers.TestLogger()),
		domain.DefaultContract, helpers.TestLogger())

	f := &catalogFixture{provider: provider}

	var cache ports.CacheRepository
	if withCache {
		f.redis = helpers.SetupTestRedis(t)
		cache = redis_a.NewCache(f.redis.Client, time.Minute, helpers.TestLogger())
	}

	f.catalog = services.NewCatalog(provider, cache, spreadsheet.NewWorkbook(helpers.TestLogger()), helpers.TestLogger())
	t.Cleanup(f.catalog.Close)
	return f
}

func TestCatalog_AddSampleAndList(t *testing.T) {
	ctx := context.Background()
	f := newCatalog(t, false)

	uri, err := f.catalog.AddSample(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultContract.ItemURI(1), uri)

	_, err = f.catalog.AddSample(ctx)
	require.NoError(t, err)

	products, err := f.catalog.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, int64(1), products[0].ID)
	assert.Equal(t, int64(2), products[1].ID)
	assert.Equal(t, services.SampleProduct.Name, products[1].Name)
	assert.Equal(t, "0.20", products[0].DisplayPrice())
}

func TestCatalog_Save(t *testing.T) {
	tests := []struct {
		name          string
		id            int64
		payload       domain.Payload
		wantError     bool
		wantErr       error
		errorContains string
	}{
		{
			name:    "new_product_inserts",
			id:      0,
			payload: helpers.CreateTestPayload(func(p *domain.Product) { p.Name = "Dune" }),
		},
		{
			name:    "existing_product_updates",
			id:      1,
			payload: domain.Payload{Price: domain.Set[int64](1500)},
		},
		{
			name:      "missing_product",
			id:        42,
			payload:   domain.Payload{Price: domain.Set[int64](1500)},
			wantError: true,
			wantErr:   domain.ErrProductNotFound,
		},
		{
			name:          "invalid_insert",
			id:            0,
			payload:       domain.Payload{Name: domain.Set("No supplier")},
			wantError:     true,
			wantErr:       domain.ErrInvalidPayload,
			errorContains: "supplier_name is required",
		},
		{
			name:      "null_numeric_update_reported",
			id:        1,
			payload:   domain.Payload{Quantity: domain.Null[int64]()},
			wantError: true,
			wantErr:   domain.ErrStoreFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			f := newCatalog(t, false)
			_, err := f.catalog.AddSample(ctx)
			require.NoError(t, err)

			id, err := f.catalog.Save(ctx, tt.id, tt.payload)

			if tt.wantError {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				if tt.errorContains != "" {
					assert.Contains(t, err.Error(), tt.errorContains)
				}
				return
			}

			require.NoError(t, err)
			if tt.id == 0 {
				assert.Equal(t, int64(2), id)
			} else {
				assert.Equal(t, tt.id, id)
			}

			p, err := f.catalog.Product(ctx, id)
			require.NoError(t, err)
			if name, ok := tt.payload.Name.Get(); ok {
				assert.Equal(t, name, p.Name)
			}
			if price, ok := tt.payload.Price.Get(); ok {
				assert.Equal(t, price, p.Price)
			}
		})
	}
}

func TestCatalog_Sell(t *testing.T) {
	ctx := context.Background()
	f := newCatalog(t, false)

	id, err := f.catalog.Save(ctx, 0, helpers.CreateTestPayload(func(p *domain.Product) { p.Quantity = 2 }))
	require.NoError(t, err)

	remaining, err := f.catalog.Sell(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), remaining)

	remaining, err = f.catalog.Sell(ctx, id)
	require.NoError(t, err)
	assert.Zero(t, remaining)

	_, err = f.catalog.Sell(ctx, id)
	assert.ErrorIs(t, err, domain.ErrOutOfStock)

	_, err = f.catalog.Sell(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestCatalog_ConcurrentSalesDoNotLoseDecrements(t *testing.T) {
	ctx := context.Background()
	f := newCatalog(t, false)

	id, err := f.catalog.Save(ctx, 0, helpers.CreateTestPayload(func(p *domain.Product) { p.Quantity = 20 }))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.catalog.Sell(ctx, id)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	p, err := f.catalog.Product(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(10), p.Quantity)
}

func TestCatalog_DeleteAndDeleteAll(t *testing.T) {
	ctx := context.Background()
	f := newCatalog(t, false)

	for i := 0; i < 3; i++ {
		_, err := f.catalog.AddSample(ctx)
		require.NoError(t, err)
	}

	n, err := f.catalog.Delete(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = f.catalog.Delete(ctx, 2)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = f.catalog.Product(ctx, 2)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	n, err = f.catalog.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	products, err := f.catalog.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestCatalog_ProductCache(t *testing.T) {
	ctx := context.Background()
	f := newCatalog(t, true)

	id, err := f.catalog.Save(ctx, 0, helpers.CreateTestPayload())
	require.NoError(t, err)

	p, err := f.catalog.Product(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(50), p.Quantity)
	assert.True(t, f.redis.Server.Exists(ports.ProductCacheKey(id)), "product should be cached")

	// A write through the provider drops cached products.
	_, err = f.catalog.Sell(ctx, id)
	require.NoError(t, err)
	assert.False(t, f.redis.Server.Exists(ports.ProductCacheKey(id)))

	p, err = f.catalog.Product(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(49), p.Quantity)
}

func TestCatalog_ProductCacheFailuresFallBackToStore(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	store := helpers.SetupTestStore(t)
	provider := services.NewProvider(store, services.NewNotifier(helpers.TestLogger()),
		domain.DefaultContract, helpers.TestLogger())

	cache := mocks.NewMockCacheRepository(ctrl)
	catalog := services.NewCatalog(provider, cache, nil, helpers.TestLogger())
	defer catalog.Close()

	cache.EXPECT().DeletePattern(gomock.Any(), "inv:product:*").Return(nil)
	id, err := catalog.Save(ctx, 0, helpers.CreateTestPayload())
	require.NoError(t, err)

	cache.EXPECT().Get(gomock.Any(), "inv:product:1", gomock.Any()).Return(errors.New("connection refused"))
	cache.EXPECT().Set(gomock.Any(), "inv:product:1", gomock.Any()).Return(errors.New("connection refused"))

	p, err := catalog.Product(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Harry Potter", p.Name)
}

func TestCatalog_ProductSkipsFillAfterConcurrentWrite(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	store := helpers.SetupTestStore(t)
	provider := services.NewProvider(store, services.NewNotifier(helpers.TestLogger()),
		domain.DefaultContract, helpers.TestLogger())

	cache := mocks.NewMockCacheRepository(ctrl)
	catalog := services.NewCatalog(provider, cache, nil, helpers.TestLogger())
	defer catalog.Close()

	cache.EXPECT().DeletePattern(gomock.Any(), "inv:product:*").Return(nil).Times(2)
	id, err := catalog.Save(ctx, 0, helpers.CreateTestPayload())
	require.NoError(t, err)

	// A sale lands after the cache miss and before the fill.
	cache.EXPECT().Get(gomock.Any(), "inv:product:1", gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ interface{}) error {
			_, err := catalog.Sell(ctx, id)
			require.NoError(t, err)
			return redis_a.ErrCacheMiss
		})
	cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	p, err := catalog.Product(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(49), p.Quantity)

	// With no write in between the next read fills the cache.
	cache.EXPECT().Get(gomock.Any(), "inv:product:1", gomock.Any()).Return(redis_a.ErrCacheMiss)
	cache.EXPECT().Set(gomock.Any(), "inv:product:1", gomock.Any()).Return(nil)

	_, err = catalog.Product(ctx, id)
	require.NoError(t, err)
}

func TestCatalog_ExportImport(t *testing.T) {
	ctx := context.Background()
	source := newCatalog(t, false)

	for _, p := range helpers.CreateTestProducts(4) {
		_, err := source.catalog.Save(ctx, 0, p.Payload())
		require.NoError(t, err)
	}

	var buf bytes.Buffer
	n, err := source.catalog.Export(ctx, &buf)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	target := newCatalog(t, false)
	result, err := target.catalog.Import(ctx, bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	assert.Equal(t, 4, result.Inserted)
	assert.Zero(t, result.Skipped)

	want, err := source.catalog.List(ctx)
	require.NoError(t, err)
	got, err := target.catalog.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCatalog_ImportSkipsBadRows(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	store := helpers.SetupTestStore(t)
	provider := services.NewProvider(store, services.NewNotifier(helpers.TestLogger()),
		domain.DefaultContract, helpers.TestLogger())

	sheet := mocks.NewMockProductSheet(ctrl)
	catalog := services.NewCatalog(provider, nil, sheet, helpers.TestLogger())

	sheet.EXPECT().Read(gomock.Any(), int64(10)).Return([]ports.SheetRow{
		{Line: 2, Payload: helpers.CreateTestPayload()},
		{Line: 3, Err: errors.New("failed to parse price \"cheap\"")},
		{Line: 4, Payload: domain.Payload{Name: domain.Set("Orphan")}},
		{Line: 5, Payload: helpers.CreateTestPayload(func(p *domain.Product) { p.Quantity = -2 })},
	}, nil)

	result, err := catalog.Import(ctx, bytes.NewReader(make([]byte, 10)), 10)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Inserted)
	assert.Equal(t, 3, result.Skipped)
	require.Len(t, result.Errors, 3)
	assert.Contains(t, result.Errors[0], "row 3")
	assert.Contains(t, result.Errors[1], "supplier_name is required")
	assert.Contains(t, result.Errors[2], "quantity must be greater than or equal to 0")
}

func TestCatalog_SpreadsheetNotConfigured(t *testing.T) {
	store := helpers.SetupTestStore(t)
	provider := services.NewProvider(store, services.NewNotifier(helpers.TestLogger()),
		domain.DefaultContract, helpers.TestLogger())
	catalog := services.NewCatalog(provider, nil, nil, helpers.TestLogger())

	_, err := catalog.Export(context.Background(), &bytes.Buffer{})
	assert.ErrorContains(t, err, "not configured")

	_, err = catalog.Import(context.Background(), bytes.NewReader(nil), 0)
	assert.ErrorContains(t, err, "not configured")
}
