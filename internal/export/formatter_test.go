package export

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/seyi-ajadi/invoiceflow/constants"
	"github.com/seyi-ajadi/invoiceflow/internal/entity"
)

func sptr(s string) *string   { return &s }
func fptr(v float64) *float64 { return &v }

func sampleInvoice() *entity.Invoice {
	d, _ := time.Parse("2006-01-02", "2024-01-15")
	return &entity.Invoice{
		ID:            uuid.New(),
		InvoiceNumber: sptr("INV-1"),
		VendorName:    sptr("Acme"),
		InvoiceDate:   &d,
		TotalAmount:   fptr(42.5),
		Currency:      "$",
		Status:        string(constants.InvoiceStatusProcessed),
	}
}

func TestTextBlock(t *testing.T) {
	art, err := Format([]*entity.Invoice{sampleInvoice()}, constants.ExportTypeText)
	if err != nil {
		t.Fatal(err)
	}
	out := string(art.Data)
	for _, want := range []string{"Invoice #INV-1", "Vendor: Acme", "$42.50", "Due Date: N/A"} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
	if !strings.HasSuffix(art.FileName, ".txt") {
		t.Errorf("file name = %q", art.FileName)
	}
}

func TestTextMissingFieldsRenderPlaceholder(t *testing.T) {
	inv := &entity.Invoice{ID: uuid.New(), Currency: "$"}
	art, err := Format([]*entity.Invoice{inv}, constants.ExportTypeText)
	if err != nil {
		t.Fatal(err)
	}
	out := string(art.Data)
	for _, want := range []string{"Invoice #N/A", "Vendor: N/A", "Date: N/A", "Due Date: N/A", "Total: N/A"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing field must render as placeholder, want %q in:\n%s", want, out)
		}
	}
}

func TestTextDividerAndOrder(t *testing.T) {
	first := sampleInvoice()
	second := sampleInvoice()
	second.InvoiceNumber = sptr("INV-2")
	second.VendorName = sptr("Globex")

	art, err := Format([]*entity.Invoice{first, second}, constants.ExportTypeText)
	if err != nil {
		t.Fatal(err)
	}
	out := string(art.Data)
	if strings.Count(out, divider) != 1 {
		t.Errorf("two invoices need exactly one divider:\n%s", out)
	}
	if strings.Index(out, "INV-1") > strings.Index(out, "INV-2") {
		t.Error("blocks must follow input order")
	}
}

func TestTextLineItems(t *testing.T) {
	inv := sampleInvoice()
	inv.Items = []entity.InvoiceItem{
		{Description: "Widget", Total: fptr(40.0)},
		{Description: "Shipping", Total: fptr(2.5)},
	}
	art, err := Format([]*entity.Invoice{inv}, constants.ExportTypeText)
	if err != nil {
		t.Fatal(err)
	}
	out := string(art.Data)
	for _, want := range []string{"Items:", "Widget: $40.00", "Shipping: $2.50"} {
		if !strings.Contains(out, want) {
			t.Errorf("line items missing %q:\n%s", want, out)
		}
	}
}

func TestCSVShape(t *testing.T) {
	art, err := Format([]*entity.Invoice{sampleInvoice()}, constants.ExportTypeCSV)
	if err != nil {
		t.Fatal(err)
	}
	rows, err := csv.NewReader(strings.NewReader(string(art.Data))).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want header + 1", len(rows))
	}
	if rows[0][0] != "invoice_number" {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][0] != "INV-1" || rows[1][1] != "Acme" || rows[1][4] != "42.50" {
		t.Errorf("data row = %v", rows[1])
	}
}

func TestJSONRoundTrip(t *testing.T) {
	art, err := Format([]*entity.Invoice{sampleInvoice()}, constants.ExportTypeJSON)
	if err != nil {
		t.Fatal(err)
	}
	var rows []map[string]any
	if err := json.Unmarshal(art.Data, &rows); err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d", len(rows))
	}
	if rows[0]["invoice_number"] != "INV-1" || rows[0]["total_amount"] != 42.5 {
		t.Errorf("row = %v", rows[0])
	}
	if rows[0]["due_date"] != nil {
		t.Errorf("missing due_date should be null, got %v", rows[0]["due_date"])
	}
}

func TestXLSXProducesWorkbook(t *testing.T) {
	art, err := Format([]*entity.Invoice{sampleInvoice()}, constants.ExportTypeXLSX)
	if err != nil {
		t.Fatal(err)
	}
	// XLSX is a zip container; check the magic instead of re-parsing the sheet.
	if len(art.Data) < 4 || art.Data[0] != 'P' || art.Data[1] != 'K' {
		t.Error("output is not a zip archive")
	}
}

func TestUnsupportedFormat(t *testing.T) {
	if _, err := Format([]*entity.Invoice{sampleInvoice()}, "PARQUET"); err == nil {
		t.Error("unknown format must fail")
	}
}
