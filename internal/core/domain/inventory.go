// internal/core/domain/inventory.go
package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Value is a payload field that can be absent, an explicit null, or set.
type Value[T any] struct {
	present bool
	valid   bool
	v       T
}

// Set returns a present, non-null value.
func Set[T any](v T) Value[T] {
	return Value[T]{present: true, valid: true, v: v}
}

// Null returns an explicit null.
func Null[T any]() Value[T] {
	return Value[T]{present: true}
}

// FromPtr maps nil to an explicit null.
func FromPtr[T any](p *T) Value[T] {
	if p == nil {
		return Null[T]()
	}
	return Set(*p)
}

func (v Value[T]) IsAbsent() bool  { return !v.present }
func (v Value[T]) IsPresent() bool { return v.present }
func (v Value[T]) IsNull() bool    { return v.present && !v.valid }

// Get returns the value and whether it is set and non-null.
func (v Value[T]) Get() (T, bool) {
	return v.v, v.present && v.valid
}

// Ptr returns nil for absent and null values.
func (v Value[T]) Ptr() *T {
	if !v.present || !v.valid {
		return nil
	}
	out := v.v
	return &out
}

func (v Value[T]) column() any {
	if !v.valid {
		return nil
	}
	return v.v
}

func (v Value[T]) String() string {
	switch {
	case !v.present:
		return "<absent>"
	case !v.valid:
		return "<null>"
	default:
		return fmt.Sprint(v.v)
	}
}

// Payload is a partial product record used for inserts and updates.
type Payload struct {
	Name          Value[string]
	SupplierName  Value[string]
	SupplierPhone Value[string]
	Price         Value[int64]
	Quantity      Value[int64]
}

// Len returns the number of present keys.
func (p Payload) Len() int {
	n := 0
	for _, present := range []bool{
		p.Name.IsPresent(),
		p.SupplierName.IsPresent(),
		p.SupplierPhone.IsPresent(),
		p.Price.IsPresent(),
		p.Quantity.IsPresent(),
	} {
		if present {
			n++
		}
	}
	return n
}

// IsEmpty reports whether no key is present.
func (p Payload) IsEmpty() bool {
	return p.Len() == 0
}

// Columns maps present keys to column values. Explicit nulls map to nil.
func (p Payload) Columns() map[string]any {
	cols := make(map[string]any, p.Len())
	if p.Name.IsPresent() {
		cols[ColumnName] = p.Name.column()
	}
	if p.SupplierName.IsPresent() {
		cols[ColumnSupplierName] = p.SupplierName.column()
	}
	if p.SupplierPhone.IsPresent() {
		cols[ColumnSupplierPhone] = p.SupplierPhone.column()
	}
	if p.Price.IsPresent() {
		cols[ColumnPrice] = p.Price.column()
	}
	if p.Quantity.IsPresent() {
		cols[ColumnQuantity] = p.Quantity.column()
	}
	return cols
}

func (p Payload) String() string {
	return fmt.Sprintf("Payload{name=%s supplier_name=%s supplier_phone=%s price=%s quantity=%s}",
		p.Name, p.SupplierName, p.SupplierPhone, p.Price, p.Quantity)
}

// Product is a stored inventory row.
type Product struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	SupplierName  string `json:"supplier_name"`
	SupplierPhone string `json:"supplier_phone"`
	Price         int64  `json:"price"`
	Quantity      int64  `json:"quantity"`
}

// Payload returns a full insert payload for the product.
func (p Product) Payload() Payload {
	return Payload{
		Name:          Set(p.Name),
		SupplierName:  Set(p.SupplierName),
		SupplierPhone: Set(p.SupplierPhone),
		Price:         Set(p.Price),
		Quantity:      Set(p.Quantity),
	}
}

// InStock reports whether at least one unit can be sold.
func (p Product) InStock() bool {
	return p.Quantity > 0
}

// DisplayPrice formats the price in major units.
func (p Product) DisplayPrice() string {
	return FormatPrice(p.Price)
}

// FormatPrice renders minor units as a two-decimal amount.
func FormatPrice(minor int64) string {
	return decimal.New(minor, -2).StringFixed(2)
}

// ParsePrice converts a major-unit amount like "12.50" or "$3" to minor units.
func ParsePrice(s string) (int64, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	if s == "" {
		return 0, fmt.Errorf("empty price")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("failed to parse price %q: %w", s, err)
	}
	return d.Shift(2).Round(0).IntPart(), nil
}

// ScanProduct reads the current row of rs. Columns missing from the
// projection are left at their zero value.
func ScanProduct(rs *ResultSet) (Product, error) {
	var p Product
	if rs == nil {
		return p, fmt.Errorf("nil result set")
	}
	if !rs.HasRow() {
		return p, fmt.Errorf("result set is not positioned on a row")
	}

	var err error
	if i := rs.ColumnIndex(ColumnID); i >= 0 {
		if p.ID, err = rs.Int64(i); err != nil {
			return p, err
		}
	}
	if i := rs.ColumnIndex(ColumnName); i >= 0 {
		p.Name = rs.String(i)
	}
	if i := rs.ColumnIndex(ColumnSupplierName); i >= 0 {
		p.SupplierName = rs.String(i)
	}
	if i := rs.ColumnIndex(ColumnSupplierPhone); i >= 0 {
		p.SupplierPhone = rs.String(i)
	}
	if i := rs.ColumnIndex(ColumnPrice); i >= 0 {
		if p.Price, err = rs.Int64(i); err != nil {
			return p, err
		}
	}
	if i := rs.ColumnIndex(ColumnQuantity); i >= 0 {
		if p.Quantity, err = rs.Int64(i); err != nil {
			return p, err
		}
	}
	return p, nil
}

// ScanProducts drains rs from its current position.
func ScanProducts(rs *ResultSet) ([]Product, error) {
	products := make([]Product, 0, rs.Count())
	for rs.Next() {
		p, err := ScanProduct(rs)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, nil
}
