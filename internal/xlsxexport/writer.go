// Package xlsxexport renders a fully-resolved invoice as an Excel
// workbook. Section order is fixed: company header, invoice metadata,
// client, line items, totals, notes. Monetary values are formatted as
// two-decimal strings with a currency prefix here and nowhere earlier.
package xlsxexport

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"techinvoice/internal/config"
	"techinvoice/internal/domain"
)

// SheetName is the single worksheet holding the invoice.
const SheetName = "Invoice"

const dateLayout = "2006-01-02"

// Writer builds invoice workbooks with a fixed company letterhead.
type Writer struct {
	company config.CompanyConfig
}

// NewWriter creates a Writer using the given letterhead.
func NewWriter(company config.CompanyConfig) *Writer {
	return &Writer{company: company}
}

// Build renders the invoice into a new workbook and returns the xlsx
// bytes.
func (w *Writer) Build(inv *domain.ResolvedInvoice) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, fmt.Errorf("renaming sheet: %w", err)
	}

	row := 1
	write := func(cells ...interface{}) error {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &cells); err != nil {
			return err
		}
		row++
		return nil
	}
	blank := func() error { return write() }

	// Company header block
	sections := [][]interface{}{
		{"Company Name", w.company.Name},
		{"Company Address", w.company.Address},
		{"Company Phone", w.company.Phone},
		{"Company Email", w.company.Email},
		{"Company Website", w.company.Website},
	}
	for _, s := range sections {
		if err := write(s...); err != nil {
			return nil, fmt.Errorf("writing company block: %w", err)
		}
	}
	if err := blank(); err != nil {
		return nil, err
	}

	// Invoice metadata block
	meta := [][]interface{}{
		{"Invoice ID", inv.ID.String()},
		{"Date", inv.CreatedAt.Format(dateLayout)},
		{"Due Date", inv.DueDate.Format(dateLayout)},
		{"Status", string(inv.Status)},
	}
	for _, m := range meta {
		if err := write(m...); err != nil {
			return nil, fmt.Errorf("writing metadata block: %w", err)
		}
	}
	if err := blank(); err != nil {
		return nil, err
	}

	// Client block
	clientRows := [][]interface{}{
		{"Client Name", inv.Client.Name},
		{"Client Company", inv.Client.Company},
		{"Client Address", inv.Client.Address},
		{"Client Email", inv.Client.Email},
		{"Client Phone", inv.Client.Phone},
	}
	for _, c := range clientRows {
		if err := write(c...); err != nil {
			return nil, fmt.Errorf("writing client block: %w", err)
		}
	}
	if err := blank(); err != nil {
		return nil, err
	}

	// Line-item table, insertion order
	if err := write("Description", "Quantity", "Unit Price", "Total"); err != nil {
		return nil, fmt.Errorf("writing item header: %w", err)
	}
	for _, item := range inv.Items {
		if err := write(item.Description, item.Quantity, FormatMoney(item.UnitPrice), FormatMoney(item.Total)); err != nil {
			return nil, fmt.Errorf("writing item row: %w", err)
		}
	}
	if err := blank(); err != nil {
		return nil, err
	}

	// Totals block
	totals := [][]interface{}{
		{"", "", "Subtotal:", FormatMoney(inv.Subtotal)},
		{"", "", "Discount:", FormatMoney(inv.Discount)},
		{"", "", "Tax:", FormatMoney(inv.Tax)},
		{"", "", "Total:", FormatMoney(inv.Total)},
	}
	for _, t := range totals {
		if err := write(t...); err != nil {
			return nil, fmt.Errorf("writing totals block: %w", err)
		}
	}
	if err := blank(); err != nil {
		return nil, err
	}

	// Notes block
	if err := write("Notes", inv.Notes); err != nil {
		return nil, fmt.Errorf("writing notes block: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// FileName returns the export filename for an invoice.
func FileName(inv *domain.ResolvedInvoice) string {
	return fmt.Sprintf("Invoice_%s.xlsx", inv.ID)
}

// FormatMoney renders a decimal as a fixed two-decimal string with a
// currency prefix. This is the only place rounding happens.
func FormatMoney(v decimal.Decimal) string {
	return "$" + v.StringFixed(2)
}
