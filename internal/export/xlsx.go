package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/seyi-ajadi/invoiceflow/internal/entity"
)

// formatXLSX builds a single-sheet workbook, one row per invoice.
func formatXLSX(invoices []*entity.Invoice) ([]byte, error) {
	f := excelize.NewFile()
	const sheet = "Invoices"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Invoice Number",
		"Vendor",
		"Invoice Date",
		"Due Date",
		"Total",
		"Tax",
		"Subtotal",
		"Currency",
		"Status",
		"File URL",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, inv := range invoices {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, strOr(inv.InvoiceNumber))
		write(2, strOr(inv.VendorName))
		write(3, dateOr(inv.InvoiceDate))
		write(4, dateOr(inv.DueDate))
		write(5, numOr(inv.TotalAmount))
		write(6, numOr(inv.TaxAmount))
		write(7, numOr(inv.Subtotal))
		write(8, inv.Currency)
		write(9, inv.Status)
		write(10, inv.FileURL)
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 18)
	_ = f.SetColWidth(sheet, "B", "B", 28)
	_ = f.SetColWidth(sheet, "C", "D", 14)
	_ = f.SetColWidth(sheet, "E", "G", 12)
	_ = f.SetColWidth(sheet, "J", "J", 60)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}
