// Package ingest runs the per-upload pipeline: store the document, extract
// fields, apply mappings, validate, persist the invoice.
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/seyi-ajadi/invoiceflow/constants"
	"github.com/seyi-ajadi/invoiceflow/internal/common"
	"github.com/seyi-ajadi/invoiceflow/internal/entity"
	"github.com/seyi-ajadi/invoiceflow/internal/extract"
	"github.com/seyi-ajadi/invoiceflow/internal/mapping"
	"github.com/seyi-ajadi/invoiceflow/internal/validation"
)

// Uploader writes an uploaded document under a fresh key and returns
// (key, public URL).
type Uploader interface {
	StoreUpload(ctx context.Context, originalName string, data []byte, contentType string) (string, string, error)
}

// InvoiceWriter persists a new invoice with its line items.
type InvoiceWriter interface {
	Create(ctx context.Context, inv *entity.Invoice) (*entity.Invoice, error)
}

// MappingLister returns the profile's field-mapping definitions.
type MappingLister interface {
	List(ctx context.Context, profileID uuid.UUID) ([]*entity.FieldMapping, error)
}

// File is one upload in a batch.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// BatchRequest processes the files in order with one shared set of mapping
// decisions. Overrides map raw keys to canonical (or custom) target names;
// Exclusions drop raw keys entirely.
type BatchRequest struct {
	ProfileID       uuid.UUID
	Files           []File
	Overrides       map[string]string
	Exclusions      map[string]struct{}
	DefaultCurrency string
}

// FileResult is the per-file outcome. Err is nil on success; Warnings carry
// soft validation failures that did not block persistence.
type FileResult struct {
	FileName string
	Invoice  *entity.Invoice
	Warnings []string
	Err      error
}

// Pipeline executes upload batches. Processing is strictly sequential, one
// file at a time in input order; a file's failure never aborts the batch.
type Pipeline struct {
	uploader  Uploader
	extractor extract.DocumentExtractor
	mappings  MappingLister
	invoices  InvoiceWriter
	logger    *slog.Logger
}

func NewPipeline(uploader Uploader, extractor extract.DocumentExtractor, mappings MappingLister, invoices InvoiceWriter, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		uploader:  uploader,
		extractor: extractor,
		mappings:  mappings,
		invoices:  invoices,
		logger:    logger,
	}
}

// Run processes the batch. The result slice has one entry per input file, in
// input order.
func (p *Pipeline) Run(ctx context.Context, req BatchRequest) []FileResult {
	start := time.Now()
	results := make([]FileResult, len(req.Files))

	defs, err := p.mappings.List(ctx, req.ProfileID)
	if err != nil {
		// Without the mapping definitions nothing can be validated; fail the
		// whole batch uniformly rather than guessing.
		for i, f := range req.Files {
			results[i] = FileResult{FileName: f.Name, Err: common.WrapError(err, "load field mappings")}
		}
		return results
	}
	defsByName := make(map[string]*entity.FieldMapping, len(defs))
	for _, d := range defs {
		defsByName[d.FieldName] = d
	}

	failed := 0
	for i, f := range req.Files {
		results[i] = p.processOne(ctx, req, f, defsByName)
		if results[i].Err != nil {
			failed++
		}
	}

	p.logger.Info("ingest.batch.done",
		"profile_id", req.ProfileID,
		"files", len(req.Files),
		"failed", failed,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return results
}

func (p *Pipeline) processOne(ctx context.Context, req BatchRequest, f File, defs map[string]*entity.FieldMapping) FileResult {
	res := FileResult{FileName: f.Name}

	key, url, err := p.uploader.StoreUpload(ctx, f.Name, f.Data, f.ContentType)
	if err != nil {
		res.Err = err
		p.logger.Warn("ingest.store.fail", "file", f.Name, "error", err)
		return res
	}
	p.logger.Info("ingest.store.ok", "file", f.Name, "key", key)

	fields, raw, err := p.extractor.ExtractFields(ctx, extract.ExtractRequest{
		DocumentURL:     url,
		FilenameHint:    f.Name,
		DefaultCurrency: req.DefaultCurrency,
	})
	if err != nil {
		res.Err = err
		p.logger.Warn("ingest.extract.fail", "file", f.Name, "error", err)
		return res
	}

	fieldSet, err := extract.ToFieldSet(raw)
	if err != nil {
		res.Err = fmt.Errorf("decode extracted payload: %v: %w", err, common.ErrExtraction)
		return res
	}

	// Identity mapping for canonical keys the oracle already emits, then the
	// user's accepted overrides on top.
	mapped := make(map[string]string, len(fieldSet)+len(req.Overrides))
	for _, k := range fieldSet.Keys() {
		if isCanonical(k) {
			mapped[k] = k
		}
	}
	for k, v := range req.Overrides {
		mapped[k] = v
	}
	final := mapping.ApplyMappings(fieldSet, mapped, req.Exclusions)

	warnings, err := validateFields(final, defs)
	if err != nil {
		res.Err = err
		return res
	}
	res.Warnings = warnings

	inv := buildInvoice(req.ProfileID, url, fields, final)
	created, err := p.invoices.Create(ctx, inv)
	if err != nil {
		res.Err = common.WrapError(err, "persist invoice")
		return res
	}
	res.Invoice = created
	p.logger.Info("ingest.file.ok", "file", f.Name, "invoice_id", created.ID)
	return res
}

// validateFields evaluates each mapped value against the profile's rule for
// that field name. Rule failures are soft (warnings); a required field that
// is absent or empty fails the file.
func validateFields(final extract.FieldSet, defs map[string]*entity.FieldMapping) ([]string, error) {
	var warnings []string
	for name, def := range defs {
		v, present := final[name]
		text := valueText(v)
		if def.Required && text == "" {
			return nil, fmt.Errorf("required field %q is missing: %w", name, common.ErrInvalidInput)
		}
		if !present || text == "" {
			continue
		}
		if r := validation.Validate(text, def); !r.Valid {
			warnings = append(warnings, fmt.Sprintf("%s: %s", name, r.Message))
		}
	}
	return warnings, nil
}

// buildInvoice maps the oracle's typed fields into a pending invoice row.
// The mapped field set decides which fields survived exclusion; the typed
// struct provides the parsed values.
func buildInvoice(profileID uuid.UUID, fileURL string, fields extract.InvoiceFields, final extract.FieldSet) *entity.Invoice {
	inv := &entity.Invoice{
		ProfileID: profileID,
		Currency:  fields.Currency,
		FileURL:   fileURL,
		Status:    string(constants.InvoiceStatusPending),
	}

	setStr := func(name, v string, dst **string) {
		if _, ok := final[name]; ok && v != "" {
			*dst = &v
		}
	}
	setMoney := func(name, v string, dst **float64) {
		if _, ok := final[name]; !ok || v == "" {
			return
		}
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = &f
		}
	}
	setDate := func(name, v string, dst **time.Time) {
		if _, ok := final[name]; !ok || v == "" {
			return
		}
		if t, err := time.Parse("2006-01-02", v); err == nil {
			*dst = &t
		}
	}

	setStr(constants.FieldVendorName, fields.VendorName, &inv.VendorName)
	setStr(constants.FieldInvoiceNumber, fields.InvoiceNumber, &inv.InvoiceNumber)
	setDate(constants.FieldInvoiceDate, fields.InvoiceDate, &inv.InvoiceDate)
	setDate(constants.FieldDueDate, fields.DueDate, &inv.DueDate)
	setMoney(constants.FieldTotalAmount, fields.TotalAmount, &inv.TotalAmount)
	setMoney(constants.FieldTaxAmount, fields.TaxAmount, &inv.TaxAmount)
	setMoney(constants.FieldSubtotal, fields.Subtotal, &inv.Subtotal)
	setMoney(constants.FieldDiscountAmount, fields.DiscountAmount, &inv.DiscountAmount)
	setMoney(constants.FieldAdditionalFees, fields.AdditionalFees, &inv.AdditionalFees)
	setStr(constants.FieldPaymentTerms, fields.PaymentTerms, &inv.PaymentTerms)
	setStr(constants.FieldPurchaseOrderNumber, fields.PurchaseOrderNumber, &inv.PurchaseOrderNumber)
	setStr(constants.FieldBillingAddress, fields.BillingAddress, &inv.BillingAddress)
	setStr(constants.FieldShippingAddress, fields.ShippingAddress, &inv.ShippingAddress)
	setStr(constants.FieldNotes, fields.Notes, &inv.Notes)

	for _, it := range fields.Items {
		item := entity.InvoiceItem{Description: it.Description}
		if f, err := strconv.ParseFloat(it.Quantity, 64); err == nil {
			item.Quantity = &f
		}
		if f, err := strconv.ParseFloat(it.UnitPrice, 64); err == nil {
			item.UnitPrice = &f
		}
		if f, err := strconv.ParseFloat(it.Total, 64); err == nil {
			item.Total = &f
		}
		inv.Items = append(inv.Items, item)
	}
	return inv
}

func isCanonical(key string) bool {
	for _, f := range constants.KnownFields {
		if f == key {
			return true
		}
	}
	// The items array is structural, not a scalar field, but it survives
	// mapping untouched.
	return key == "items"
}

func valueText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", t)
	}
}
