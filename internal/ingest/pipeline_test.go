package ingest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/seyi-ajadi/invoiceflow/constants"
	"github.com/seyi-ajadi/invoiceflow/internal/common"
	"github.com/seyi-ajadi/invoiceflow/internal/entity"
	"github.com/seyi-ajadi/invoiceflow/internal/extract"
)

type fakeUploader struct {
	stored []string
}

func (f *fakeUploader) StoreUpload(_ context.Context, name string, _ []byte, _ string) (string, string, error) {
	f.stored = append(f.stored, name)
	key := uuid.New().String() + ".pdf"
	return key, "https://store.example/invoices/" + key, nil
}

// fakeExtractor fails for file names listed in failFor, succeeds otherwise.
type fakeExtractor struct {
	failFor map[string]struct{}
	fields  extract.InvoiceFields
	raw     string
}

func (f *fakeExtractor) ExtractFields(_ context.Context, req extract.ExtractRequest) (extract.InvoiceFields, []byte, error) {
	if _, bad := f.failFor[req.FilenameHint]; bad {
		return extract.InvoiceFields{}, nil, fmt.Errorf("oracle returned garbage: %w", common.ErrExtraction)
	}
	return f.fields, []byte(f.raw), nil
}

type fakeMappings struct {
	defs []*entity.FieldMapping
	err  error
}

func (f *fakeMappings) List(_ context.Context, _ uuid.UUID) ([]*entity.FieldMapping, error) {
	return f.defs, f.err
}

type fakeInvoices struct {
	created []*entity.Invoice
}

func (f *fakeInvoices) Create(_ context.Context, inv *entity.Invoice) (*entity.Invoice, error) {
	cp := *inv
	cp.ID = uuid.New()
	f.created = append(f.created, &cp)
	return &cp, nil
}

func goodExtractor() *fakeExtractor {
	return &fakeExtractor{
		failFor: map[string]struct{}{},
		fields: extract.InvoiceFields{
			VendorName:    "Acme",
			InvoiceNumber: "INV-1",
			InvoiceDate:   "2024-01-15",
			TotalAmount:   "42.50",
			Currency:      "USD",
		},
		raw: `{"vendor_name":"Acme","invoice_number":"INV-1","invoice_date":"2024-01-15","total_amount":"42.50","currency":"USD"}`,
	}
}

func newTestPipeline(up *fakeUploader, ex *fakeExtractor, maps *fakeMappings, invs *fakeInvoices) *Pipeline {
	return NewPipeline(up, ex, maps, invs, nil)
}

func TestBatchIsolation(t *testing.T) {
	ex := goodExtractor()
	ex.failFor["b.pdf"] = struct{}{}
	invs := &fakeInvoices{}
	p := newTestPipeline(&fakeUploader{}, ex, &fakeMappings{}, invs)

	results := p.Run(context.Background(), BatchRequest{
		ProfileID: uuid.New(),
		Files: []File{
			{Name: "a.pdf", ContentType: "application/pdf"},
			{Name: "b.pdf", ContentType: "application/pdf"},
			{Name: "c.pdf", ContentType: "application/pdf"},
		},
	})

	if len(results) != 3 {
		t.Fatalf("results = %d", len(results))
	}
	if results[0].Err != nil || results[2].Err != nil {
		t.Errorf("files 1 and 3 must succeed: %v, %v", results[0].Err, results[2].Err)
	}
	if !errors.Is(results[1].Err, common.ErrExtraction) {
		t.Errorf("file 2: got %v, want ErrExtraction", results[1].Err)
	}
	if len(invs.created) != 2 {
		t.Errorf("persisted invoices = %d, want 2", len(invs.created))
	}

	extractionErrs := 0
	for _, r := range results {
		if errors.Is(r.Err, common.ErrExtraction) {
			extractionErrs++
		}
	}
	if extractionErrs != 1 {
		t.Errorf("extraction errors = %d, want exactly 1", extractionErrs)
	}
}

func TestSequentialInputOrder(t *testing.T) {
	up := &fakeUploader{}
	p := newTestPipeline(up, goodExtractor(), &fakeMappings{}, &fakeInvoices{})

	p.Run(context.Background(), BatchRequest{
		ProfileID: uuid.New(),
		Files:     []File{{Name: "1.pdf"}, {Name: "2.pdf"}, {Name: "3.pdf"}},
	})

	if strings.Join(up.stored, ",") != "1.pdf,2.pdf,3.pdf" {
		t.Errorf("store order = %v", up.stored)
	}
}

func TestInvoicePersistedPending(t *testing.T) {
	invs := &fakeInvoices{}
	p := newTestPipeline(&fakeUploader{}, goodExtractor(), &fakeMappings{}, invs)

	results := p.Run(context.Background(), BatchRequest{
		ProfileID: uuid.New(),
		Files:     []File{{Name: "a.pdf"}},
	})
	if results[0].Err != nil {
		t.Fatal(results[0].Err)
	}

	inv := invs.created[0]
	if inv.Status != string(constants.InvoiceStatusPending) {
		t.Errorf("status = %s", inv.Status)
	}
	if inv.VendorName == nil || *inv.VendorName != "Acme" {
		t.Errorf("vendor = %v", inv.VendorName)
	}
	if inv.TotalAmount == nil || *inv.TotalAmount != 42.5 {
		t.Errorf("total = %v", inv.TotalAmount)
	}
	if inv.InvoiceDate == nil || inv.InvoiceDate.Format("2006-01-02") != "2024-01-15" {
		t.Errorf("date = %v", inv.InvoiceDate)
	}
	if inv.FileURL == "" {
		t.Error("file url must reference the stored upload")
	}
}

func TestExclusionsDropFields(t *testing.T) {
	invs := &fakeInvoices{}
	p := newTestPipeline(&fakeUploader{}, goodExtractor(), &fakeMappings{}, invs)

	results := p.Run(context.Background(), BatchRequest{
		ProfileID:  uuid.New(),
		Files:      []File{{Name: "a.pdf"}},
		Exclusions: map[string]struct{}{constants.FieldVendorName: {}},
	})
	if results[0].Err != nil {
		t.Fatal(results[0].Err)
	}
	if invs.created[0].VendorName != nil {
		t.Error("excluded field must not be persisted")
	}
	if invs.created[0].InvoiceNumber == nil {
		t.Error("non-excluded fields survive")
	}
}

func TestRequiredFieldMissingFailsFile(t *testing.T) {
	defs := &fakeMappings{defs: []*entity.FieldMapping{
		{FieldName: "purchase_order_number", Required: true},
	}}
	invs := &fakeInvoices{}
	p := newTestPipeline(&fakeUploader{}, goodExtractor(), defs, invs)

	results := p.Run(context.Background(), BatchRequest{
		ProfileID: uuid.New(),
		Files:     []File{{Name: "a.pdf"}},
	})
	if !errors.Is(results[0].Err, common.ErrInvalidInput) {
		t.Errorf("got %v, want ErrInvalidInput", results[0].Err)
	}
	if len(invs.created) != 0 {
		t.Error("file failing a required check must not persist")
	}
}

func TestSoftValidationWarns(t *testing.T) {
	kind := "date"
	defs := &fakeMappings{defs: []*entity.FieldMapping{
		{FieldName: constants.FieldInvoiceNumber, ValidationKind: &kind},
	}}
	invs := &fakeInvoices{}
	p := newTestPipeline(&fakeUploader{}, goodExtractor(), defs, invs)

	results := p.Run(context.Background(), BatchRequest{
		ProfileID: uuid.New(),
		Files:     []File{{Name: "a.pdf"}},
	})
	if results[0].Err != nil {
		t.Fatalf("rule failure must not block persistence: %v", results[0].Err)
	}
	if len(results[0].Warnings) != 1 {
		t.Errorf("warnings = %v", results[0].Warnings)
	}
	if len(invs.created) != 1 {
		t.Error("invoice should still be persisted")
	}
}

func TestMappingLoadFailureFailsBatch(t *testing.T) {
	defs := &fakeMappings{err: errors.New("db down")}
	p := newTestPipeline(&fakeUploader{}, goodExtractor(), defs, &fakeInvoices{})

	results := p.Run(context.Background(), BatchRequest{
		ProfileID: uuid.New(),
		Files:     []File{{Name: "a.pdf"}, {Name: "b.pdf"}},
	})
	for i, r := range results {
		if r.Err == nil {
			t.Errorf("file %d should fail when definitions cannot load", i)
		}
	}
}
