// internal/core/ports/spreadsheet.go
package ports

import (
	"io"

	"github.com/ammerola/inventory-catalog/internal/core/domain"
)

// ProductSheet converts products to and from a spreadsheet workbook.
type ProductSheet interface {
	Write(w io.Writer, products []domain.Product) error
	Read(r io.ReaderAt, size int64) ([]SheetRow, error)
}

// SheetRow is one parsed data row. Err is set when the row could not be
// turned into a payload.
type SheetRow struct {
	Line    int
	Payload domain.Payload
	Err     error
}
