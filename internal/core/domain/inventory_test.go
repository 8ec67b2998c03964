package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/inventory-catalog/internal/core/domain"
)

func TestValue_States(t *testing.T) {
	absent := domain.Value[int64]{}
	null := domain.Null[int64]()
	set := domain.Set[int64](7)

	assert.True(t, absent.IsAbsent())
	assert.False(t, absent.IsNull())
	assert.Nil(t, absent.Ptr())

	assert.True(t, null.IsPresent())
	assert.True(t, null.IsNull())
	_, ok := null.Get()
	assert.False(t, ok)

	v, ok := set.Get()
	assert.True(t, ok)
	assert.Equal(t, int64(7), v)
	require.NotNil(t, set.Ptr())
	assert.Equal(t, int64(7), *set.Ptr())

	var p *string
	assert.True(t, domain.FromPtr(p).IsNull())
}

func TestPayload_Columns(t *testing.T) {
	tests := []struct {
		name    string
		payload domain.Payload
		want    map[string]any
	}{
		{
			name:    "empty_payload",
			payload: domain.Payload{},
			want:    map[string]any{},
		},
		{
			name: "partial_payload_keeps_only_present_keys",
			payload: domain.Payload{
				Quantity: domain.Set[int64](3),
			},
			want: map[string]any{"quantity": int64(3)},
		},
		{
			name: "explicit_null_maps_to_nil",
			payload: domain.Payload{
				Name:  domain.Set("Dune"),
				Price: domain.Null[int64](),
			},
			want: map[string]any{"name": "Dune", "price": nil},
		},
		{
			name: "full_payload",
			payload: domain.Product{
				Name: "a", SupplierName: "b", SupplierPhone: "c", Price: 1, Quantity: 2,
			}.Payload(),
			want: map[string]any{
				"name": "a", "supplier_name": "b", "supplier_phone": "c",
				"price": int64(1), "quantity": int64(2),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.payload.Columns())
			assert.Equal(t, len(tt.want), tt.payload.Len())
			assert.Equal(t, len(tt.want) == 0, tt.payload.IsEmpty())
		})
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      int64
		wantError bool
	}{
		{name: "whole_amount", input: "20", want: 2000},
		{name: "two_decimals", input: "12.50", want: 1250},
		{name: "dollar_prefix", input: "$3.99", want: 399},
		{name: "rounds_extra_precision", input: "0.125", want: 13},
		{name: "empty", input: " ", wantError: true},
		{name: "garbage", input: "abc", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParsePrice(tt.input)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, "0.20", domain.FormatPrice(20))
	assert.Equal(t, "12.50", domain.FormatPrice(1250))
}

func TestScanProduct(t *testing.T) {
	rs := domain.NewResultSet(domain.AllColumns, [][]any{
		{int64(1), "Harry Potter", "Magic BookPrint", "+48 888 888 888", int64(20), int64(50)},
		{int64(2), "Dune", "Chilton", "555", nil, "4"},
	})

	products, err := domain.ScanProducts(rs)
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, domain.Product{
		ID: 1, Name: "Harry Potter", SupplierName: "Magic BookPrint",
		SupplierPhone: "+48 888 888 888", Price: 20, Quantity: 50,
	}, products[0])
	assert.Equal(t, int64(0), products[1].Price)
	assert.Equal(t, int64(4), products[1].Quantity)
	assert.True(t, products[0].InStock())
}

func TestScanProduct_PartialProjection(t *testing.T) {
	rs := domain.NewResultSet([]string{domain.ColumnName}, [][]any{{"Only name"}})

	require.True(t, rs.Next())
	p, err := domain.ScanProduct(rs)
	require.NoError(t, err)
	assert.Equal(t, "Only name", p.Name)
	assert.Zero(t, p.ID)

	require.False(t, rs.Next())
	_, err = domain.ScanProduct(rs)
	assert.Error(t, err)
}

func TestErrors_Wrapping(t *testing.T) {
	var err error = &domain.PayloadError{Field: "name", Reason: "is required"}
	assert.ErrorIs(t, err, domain.ErrInvalidPayload)
	assert.Equal(t, "invalid payload: name is required", err.Error())

	err = &domain.URIError{Op: "insert", URI: "content://x/y", Err: domain.ErrUnsupportedOperation}
	assert.ErrorIs(t, err, domain.ErrUnsupportedOperation)
	assert.Contains(t, err.Error(), "insert content://x/y")
}
