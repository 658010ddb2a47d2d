// Package export renders sets of invoices into flat downloadable formats.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/seyi-ajadi/invoiceflow/constants"
	"github.com/seyi-ajadi/invoiceflow/internal/common"
	"github.com/seyi-ajadi/invoiceflow/internal/entity"
)

const (
	placeholder = "N/A"
	divider     = "----------------------------------------"
)

// Artifact is one rendered export: bytes plus a suggested file name and the
// content type to store it under.
type Artifact struct {
	FileName    string
	ContentType string
	Data        []byte
}

// Format renders the invoices in input order into the requested format.
// Plan gating happens in the caller; this function only knows how to render.
func Format(invoices []*entity.Invoice, exportType string) (*Artifact, error) {
	stamp := time.Now().UTC().Format("20060102_150405")
	switch exportType {
	case constants.ExportTypeText:
		return &Artifact{
			FileName:    "invoices_" + stamp + ".txt",
			ContentType: "text/plain",
			Data:        formatText(invoices),
		}, nil
	case constants.ExportTypeCSV:
		data, err := formatCSV(invoices)
		if err != nil {
			return nil, common.WrapError(err, "render csv")
		}
		return &Artifact{
			FileName:    "invoices_" + stamp + ".csv",
			ContentType: "text/csv",
			Data:        data,
		}, nil
	case constants.ExportTypeJSON:
		data, err := json.MarshalIndent(jsonRows(invoices), "", "  ")
		if err != nil {
			return nil, common.WrapError(err, "render json")
		}
		return &Artifact{
			FileName:    "invoices_" + stamp + ".json",
			ContentType: "application/json",
			Data:        data,
		}, nil
	case constants.ExportTypeXLSX:
		data, err := formatXLSX(invoices)
		if err != nil {
			return nil, common.WrapError(err, "render xlsx")
		}
		return &Artifact{
			FileName:    "invoices_" + stamp + ".xlsx",
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Data:        data,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported export format %q: %w", exportType, common.ErrInvalidInput)
	}
}

// formatText emits one fixed block per invoice, separated by a divider line.
// Missing fields render as the N/A placeholder rather than being omitted.
func formatText(invoices []*entity.Invoice) []byte {
	var b strings.Builder
	for i, inv := range invoices {
		if i > 0 {
			b.WriteString(divider + "\n")
		}
		fmt.Fprintf(&b, "Invoice #%s\n", strOr(inv.InvoiceNumber))
		fmt.Fprintf(&b, "Vendor: %s\n", strOr(inv.VendorName))
		fmt.Fprintf(&b, "Date: %s\n", dateOr(inv.InvoiceDate))
		fmt.Fprintf(&b, "Due Date: %s\n", dateOr(inv.DueDate))
		fmt.Fprintf(&b, "Total: %s\n", moneyOr(inv.TotalAmount, inv.Currency))
		if len(inv.Items) > 0 {
			b.WriteString("Items:\n")
			for _, it := range inv.Items {
				fmt.Fprintf(&b, "  - %s: %s\n", it.Description, moneyOr(it.Total, inv.Currency))
			}
		}
	}
	return []byte(b.String())
}

var csvHeader = []string{
	"invoice_number", "vendor_name", "invoice_date", "due_date",
	"total_amount", "tax_amount", "subtotal", "currency", "status",
}

func formatCSV(invoices []*entity.Invoice) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, inv := range invoices {
		rec := []string{
			strOr(inv.InvoiceNumber),
			strOr(inv.VendorName),
			dateOr(inv.InvoiceDate),
			dateOr(inv.DueDate),
			numOr(inv.TotalAmount),
			numOr(inv.TaxAmount),
			numOr(inv.Subtotal),
			inv.Currency,
			inv.Status,
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type jsonItem struct {
	Description string   `json:"description"`
	Quantity    *float64 `json:"quantity"`
	UnitPrice   *float64 `json:"unit_price"`
	Total       *float64 `json:"total"`
}

type jsonRow struct {
	InvoiceNumber *string    `json:"invoice_number"`
	VendorName    *string    `json:"vendor_name"`
	InvoiceDate   *string    `json:"invoice_date"`
	DueDate       *string    `json:"due_date"`
	TotalAmount   *float64   `json:"total_amount"`
	TaxAmount     *float64   `json:"tax_amount"`
	Subtotal      *float64   `json:"subtotal"`
	Currency      string     `json:"currency"`
	Status        string     `json:"status"`
	Items         []jsonItem `json:"items,omitempty"`
}

func jsonRows(invoices []*entity.Invoice) []jsonRow {
	rows := make([]jsonRow, 0, len(invoices))
	for _, inv := range invoices {
		row := jsonRow{
			InvoiceNumber: inv.InvoiceNumber,
			VendorName:    inv.VendorName,
			InvoiceDate:   datePtr(inv.InvoiceDate),
			DueDate:       datePtr(inv.DueDate),
			TotalAmount:   inv.TotalAmount,
			TaxAmount:     inv.TaxAmount,
			Subtotal:      inv.Subtotal,
			Currency:      inv.Currency,
			Status:        inv.Status,
		}
		for _, it := range inv.Items {
			row.Items = append(row.Items, jsonItem{
				Description: it.Description,
				Quantity:    it.Quantity,
				UnitPrice:   it.UnitPrice,
				Total:       it.Total,
			})
		}
		rows = append(rows, row)
	}
	return rows
}

func strOr(p *string) string {
	if p == nil || *p == "" {
		return placeholder
	}
	return *p
}

func dateOr(t *time.Time) string {
	if t == nil || t.IsZero() {
		return placeholder
	}
	return t.Format("2006-01-02")
}

func datePtr(t *time.Time) *string {
	if t == nil || t.IsZero() {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

func moneyOr(amount *float64, currency string) string {
	if amount == nil {
		return placeholder
	}
	return fmt.Sprintf("%s%.2f", currency, *amount)
}

func numOr(p *float64) string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("%.2f", *p)
}
