// internal/adapters/spreadsheet/xlsx.go
package spreadsheet

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/tealeg/xlsx/v3"

	"github.com/ammerola/inventory-catalog/internal/core/domain"
	"github.com/ammerola/inventory-catalog/internal/core/ports"
)

const SheetName = "Inventory"

// Headers is the column layout of exported workbooks. Imports read the
// same layout; the ID column is ignored.
var Headers = []string{"ID", "Name", "Supplier", "Phone", "Price", "Quantity"}

const (
	colID = iota
	colName
	colSupplier
	colPhone
	colPrice
	colQuantity
)

// Workbook reads and writes product sheets in xlsx format.
type Workbook struct {
	logger *slog.Logger
}

// Statically assert that *Workbook implements the ProductSheet interface.
var _ ports.ProductSheet = (*Workbook)(nil)

// NewWorkbook creates an xlsx product sheet adapter.
func NewWorkbook(logger *slog.Logger) *Workbook {
	return &Workbook{
		logger: logger.With(slog.String("component", "spreadsheet")),
	}
}

// Write renders products as a single-sheet workbook.
func (wb *Workbook) Write(w io.Writer, products []domain.Product) error {
	file := xlsx.NewFile()

	sheet, err := file.AddSheet(SheetName)
	if err != nil {
		return fmt.Errorf("failed to add worksheet: %w", err)
	}

	headerRow := sheet.AddRow()
	for _, header := range Headers {
		cell := headerRow.AddCell()
		cell.Value = header
		cell.GetStyle().Font.Bold = true
		cell.GetStyle().Fill.PatternType = "solid"
		cell.GetStyle().Fill.FgColor = "CCCCCC"
	}

	for _, p := range products {
		row := sheet.AddRow()
		row.AddCell().SetInt64(p.ID)
		row.AddCell().SetString(p.Name)
		row.AddCell().SetString(p.SupplierName)
		row.AddCell().SetString(p.SupplierPhone)
		row.AddCell().SetString(p.DisplayPrice())
		row.AddCell().SetInt64(p.Quantity)
	}

	for i := range Headers {
		sheet.SetColWidth(i+1, i+1, 18)
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	wb.logger.Debug("workbook written", slog.Int("rows", len(products)))
	return nil
}

// Read parses the first sheet of a workbook. The header row is skipped.
// Rows that cannot be parsed are returned with Err set.
func (wb *Workbook) Read(r io.ReaderAt, size int64) ([]ports.SheetRow, error) {
	file, err := xlsx.OpenReaderAt(r, size)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}

	if len(file.Sheets) == 0 {
		return nil, nil
	}

	var rows []ports.SheetRow

	err = file.Sheets[0].ForEachRow(func(r *xlsx.Row) error {
		if r.GetCoordinate() == 0 {
			return nil
		}
		payload, err := parseRow(r)
		rows = append(rows, ports.SheetRow{Line: r.GetCoordinate() + 1, Payload: payload, Err: err})
		return nil
	}, xlsx.SkipEmptyRows)
	if err != nil {
		return nil, fmt.Errorf("failed to read workbook rows: %w", err)
	}

	wb.logger.Debug("workbook read", slog.Int("rows", len(rows)))
	return rows, nil
}

// parseRow maps a data row to a payload. Empty text cells become absent
// fields so the validator reports them as missing; empty numeric cells
// fall back to the column default.
func parseRow(r *xlsx.Row) (domain.Payload, error) {
	get := func(i int) string {
		c := r.GetCell(i)
		if c == nil {
			return ""
		}
		return strings.TrimSpace(c.String())
	}

	var p domain.Payload
	if s := get(colName); s != "" {
		p.Name = domain.Set(s)
	}
	if s := get(colSupplier); s != "" {
		p.SupplierName = domain.Set(s)
	}
	if s := get(colPhone); s != "" {
		p.SupplierPhone = domain.Set(s)
	}

	if s := get(colPrice); s != "" {
		price, err := domain.ParsePrice(s)
		if err != nil {
			return p, err
		}
		p.Price = domain.Set(price)
	}

	if s := get(colQuantity); s != "" {
		qty, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return p, fmt.Errorf("failed to parse quantity %q: %w", s, err)
		}
		p.Quantity = domain.Set(qty)
	}

	return p, nil
}
