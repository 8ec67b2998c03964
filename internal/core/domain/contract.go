// internal/core/domain/contract.go
package domain

import (
	"strconv"
	"strings"
)

// Table and column names of the persisted inventory.
const (
	TableInventory = "inventory"

	ColumnID            = "_id"
	ColumnName          = "name"
	ColumnSupplierName  = "supplier_name"
	ColumnSupplierPhone = "supplier_phone"
	ColumnPrice         = "price"
	ColumnQuantity      = "quantity"
)

// AllColumns lists every inventory column in schema order.
var AllColumns = []string{
	ColumnID,
	ColumnName,
	ColumnSupplierName,
	ColumnSupplierPhone,
	ColumnPrice,
	ColumnQuantity,
}

// Default addressing values.
const (
	DefaultScheme    = "content"
	DefaultAuthority = "com.example.android.inventory"

	PathInventory = "inventory"

	mimeDirPrefix  = "vnd.android.cursor.dir"
	mimeItemPrefix = "vnd.android.cursor.item"
)

// Contract describes how inventory resources are addressed.
type Contract struct {
	Scheme    string
	Authority string
}

// DefaultContract is the contract used when nothing is configured.
var DefaultContract = Contract{
	Scheme:    DefaultScheme,
	Authority: DefaultAuthority,
}

// NewContract builds a contract, falling back to defaults for empty values.
func NewContract(scheme, authority string) Contract {
	c := DefaultContract
	if scheme != "" {
		c.Scheme = scheme
	}
	if authority != "" {
		c.Authority = authority
	}
	return c
}

// BaseURI returns scheme://authority.
func (c Contract) BaseURI() string {
	return c.Scheme + "://" + c.Authority
}

// CollectionURI returns the URI of the whole product set.
func (c Contract) CollectionURI() string {
	return c.BaseURI() + "/" + PathInventory
}

// ItemURI returns the URI of a single product.
func (c Contract) ItemURI(id int64) string {
	return c.CollectionURI() + "/" + strconv.FormatInt(id, 10)
}

// DirType is the MIME-like tag for the collection.
func (c Contract) DirType() string {
	return strings.Join([]string{mimeDirPrefix, c.Authority, PathInventory}, "/")
}

// ItemType is the MIME-like tag for a single product.
func (c Contract) ItemType() string {
	return strings.Join([]string{mimeItemPrefix, c.Authority, PathInventory}, "/")
}
