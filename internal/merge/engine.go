// Package merge combines N persisted invoices into one numeric summary and
// one concatenated document.
package merge

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/seyi-ajadi/invoiceflow/constants"
	"github.com/seyi-ajadi/invoiceflow/internal/common"
	"github.com/seyi-ajadi/invoiceflow/internal/entity"
)

// InvoiceSource fetches the caller's invoices by id. Ids that do not resolve
// are simply absent from the result.
type InvoiceSource interface {
	ListByIDs(ctx context.Context, profileID uuid.UUID, ids []uuid.UUID) ([]*entity.Invoice, error)
}

// DocumentFetcher reads a stored document's raw bytes by its URL.
type DocumentFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// ObjectStore persists the merged artifact and returns its public URL.
type ObjectStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// HistoryRecorder implements the outbox: a pending record is written before
// document assembly and completed (or failed) afterwards, so a crash between
// upload and bookkeeping leaves a pending row instead of an untracked orphan.
type HistoryRecorder interface {
	CreatePending(ctx context.Context, rec *entity.ExportHistory) (*entity.ExportHistory, error)
	MarkCompleted(ctx context.Context, id uuid.UUID, fileName string, size int64, url string) error
	MarkFailed(ctx context.Context, id uuid.UUID, errMsg string) error
}

// DocumentMerger checks individual documents and appends the given documents'
// pages, in slice order, into one combined document. Merge is only handed
// documents that passed Validate.
type DocumentMerger interface {
	Validate(doc []byte) error
	Merge(docs [][]byte) ([]byte, error)
}

// DateRange is the [earliest, latest] span of invoice_date across the set.
type DateRange struct {
	Earliest time.Time `json:"earliest"`
	Latest   time.Time `json:"latest"`
}

// Summary is the derived aggregate over the merged set. It is not persisted
// as its own entity; only the export-history record is.
type Summary struct {
	RequestedCount     int             `json:"requested_count"`
	TotalInvoices      int             `json:"total_invoices"`
	TotalAmount        decimal.Decimal `json:"total_amount"`
	TotalTax           decimal.Decimal `json:"total_tax"`
	TotalSubtotal      decimal.Decimal `json:"total_subtotal"`
	TotalDiscount      decimal.Decimal `json:"total_discount"`
	TotalAdditionalFee decimal.Decimal `json:"total_additional_fees"`
	Currency           string          `json:"currency"`
	DateRange          *DateRange      `json:"date_range,omitempty"`
	SkippedDocuments   int             `json:"skipped_documents"`
	FileName           string          `json:"file_name"`
	FileURL            string          `json:"file_url"`
	FileSize           int64           `json:"file_size"`
	HistoryID          uuid.UUID       `json:"history_id"`
}

// Engine executes merges. It is plan-agnostic: the caller resolves the
// capability flag from the profile's current tier and passes it in.
type Engine struct {
	invoices     InvoiceSource
	docs         DocumentFetcher
	store        ObjectStore
	history      HistoryRecorder
	merger       DocumentMerger
	fetchTimeout time.Duration
	logger       *slog.Logger
}

func NewEngine(src InvoiceSource, docs DocumentFetcher, store ObjectStore, history HistoryRecorder, merger DocumentMerger, fetchTimeout time.Duration, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if fetchTimeout <= 0 {
		fetchTimeout = 20 * time.Second
	}
	return &Engine{
		invoices:     src,
		docs:         docs,
		store:        store,
		history:      history,
		merger:       merger,
		fetchTimeout: fetchTimeout,
		logger:       logger,
	}
}

// Merge combines the given invoices. Preconditions are checked before any
// external call: at least 2 distinct ids, and the merge capability granted by
// the caller's current plan tier. When some constituent documents could not be
// fetched or parsed, the completed summary is returned together with
// ErrPartialMerge; the caller decides whether that counts as a failure.
func (e *Engine) Merge(ctx context.Context, profileID uuid.UUID, ids []uuid.UUID, canMerge bool) (*Summary, error) {
	distinct := dedupe(ids)
	if len(distinct) < 2 {
		return nil, fmt.Errorf("merge requires at least 2 distinct invoices, got %d: %w", len(distinct), common.ErrInvalidInput)
	}
	if !canMerge {
		return nil, fmt.Errorf("merging invoices: %w", common.ErrPlanRestricted)
	}

	start := time.Now()
	fetched, err := e.invoices.ListByIDs(ctx, profileID, distinct)
	if err != nil {
		return nil, common.WrapError(err, "fetch invoices")
	}
	if len(fetched) == 0 {
		return nil, fmt.Errorf("none of the requested invoices exist: %w", common.ErrNotFound)
	}
	// Restore input-id order; the source may return rows in any order.
	ordered := reorder(distinct, fetched)

	sum := e.aggregate(ordered)
	sum.RequestedCount = len(distinct)
	sum.FileName = artifactName(start)

	mergedIDs := make([]uuid.UUID, len(ordered))
	for i, inv := range ordered {
		mergedIDs[i] = inv.ID
	}
	pending, err := e.history.CreatePending(ctx, &entity.ExportHistory{
		ProfileID:  profileID,
		InvoiceIDs: mergedIDs,
		ExportType: constants.ExportTypeMerge,
		FileName:   sum.FileName,
		Status:     string(constants.ExportStatusPending),
	})
	if err != nil {
		return nil, common.WrapError(err, "record pending merge")
	}
	sum.HistoryID = pending.ID

	docs, skipped := e.fetchDocuments(ctx, ordered)
	sum.SkippedDocuments = skipped

	if len(docs) == 0 {
		// No constituent document was retrievable: zero-page artifact, but the
		// numeric summary still stands.
		e.logger.Warn("merge.document.none_retrievable", "profile_id", profileID, "history_id", pending.ID)
		if err := e.history.MarkCompleted(ctx, pending.ID, sum.FileName, 0, ""); err != nil {
			return nil, common.WrapError(err, "complete merge record")
		}
		return sum, partial(sum)
	}

	combined, err := e.merger.Merge(docs)
	if err != nil {
		_ = e.history.MarkFailed(ctx, pending.ID, err.Error())
		return nil, fmt.Errorf("assemble merged document: %v: %w", err, common.ErrStorage)
	}

	url, err := e.store.Put(ctx, sum.FileName, combined, "application/pdf")
	if err != nil {
		_ = e.history.MarkFailed(ctx, pending.ID, err.Error())
		return nil, fmt.Errorf("store merged document: %v: %w", err, common.ErrStorage)
	}
	sum.FileURL = url
	sum.FileSize = int64(len(combined))

	if err := e.history.MarkCompleted(ctx, pending.ID, sum.FileName, sum.FileSize, url); err != nil {
		return nil, common.WrapError(err, "complete merge record")
	}

	e.logger.Info("merge.ok",
		"profile_id", profileID,
		"requested", sum.RequestedCount,
		"merged", sum.TotalInvoices,
		"skipped_documents", skipped,
		"bytes", sum.FileSize,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return sum, partial(sum)
}

// partial reports skipped constituents alongside an otherwise completed
// summary.
func partial(sum *Summary) error {
	if sum.SkippedDocuments == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d documents skipped: %w", sum.SkippedDocuments, sum.TotalInvoices, common.ErrPartialMerge)
}

// aggregate computes the numeric summary. Missing numeric fields count as
// zero; the representative currency is the first non-empty one in input-id
// order (no conversion is attempted).
func (e *Engine) aggregate(invoices []*entity.Invoice) *Summary {
	sum := &Summary{TotalInvoices: len(invoices)}
	var dr *DateRange
	for _, inv := range invoices {
		sum.TotalAmount = sum.TotalAmount.Add(dec(inv.TotalAmount))
		sum.TotalTax = sum.TotalTax.Add(dec(inv.TaxAmount))
		sum.TotalSubtotal = sum.TotalSubtotal.Add(dec(inv.Subtotal))
		sum.TotalDiscount = sum.TotalDiscount.Add(dec(inv.DiscountAmount))
		sum.TotalAdditionalFee = sum.TotalAdditionalFee.Add(dec(inv.AdditionalFees))

		if sum.Currency == "" && inv.Currency != "" {
			sum.Currency = inv.Currency
		}
		if inv.InvoiceDate != nil {
			if dr == nil {
				dr = &DateRange{Earliest: *inv.InvoiceDate, Latest: *inv.InvoiceDate}
			} else {
				if inv.InvoiceDate.Before(dr.Earliest) {
					dr.Earliest = *inv.InvoiceDate
				}
				if inv.InvoiceDate.After(dr.Latest) {
					dr.Latest = *inv.InvoiceDate
				}
			}
		}
	}
	sum.DateRange = dr
	return sum
}

// fetchDocuments retrieves the constituent documents concurrently. The fetches
// are read-only and order-independent, but page-append order must equal
// input-id order, so results land in an indexed slice and are compacted
// afterwards. A failed or timed-out fetch, or a document that does not parse,
// skips that invoice's pages only.
func (e *Engine) fetchDocuments(ctx context.Context, invoices []*entity.Invoice) ([][]byte, int) {
	results := make([][]byte, len(invoices))
	var wg sync.WaitGroup
	for i, inv := range invoices {
		if inv.FileURL == "" {
			continue
		}
		wg.Add(1)
		go func(i int, inv *entity.Invoice) {
			defer wg.Done()
			fctx, cancel := context.WithTimeout(ctx, e.fetchTimeout)
			defer cancel()
			data, err := e.docs.Fetch(fctx, inv.FileURL)
			if err != nil {
				e.logger.Warn("merge.document.skip", "invoice_id", inv.ID, "url", inv.FileURL, "error", err)
				return
			}
			if err := e.merger.Validate(data); err != nil {
				e.logger.Warn("merge.document.unreadable", "invoice_id", inv.ID, "url", inv.FileURL, "error", err)
				return
			}
			results[i] = data
		}(i, inv)
	}
	wg.Wait()

	docs := make([][]byte, 0, len(invoices))
	for _, r := range results {
		if r != nil {
			docs = append(docs, r)
		}
	}
	return docs, len(invoices) - len(docs)
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func reorder(ids []uuid.UUID, fetched []*entity.Invoice) []*entity.Invoice {
	byID := make(map[uuid.UUID]*entity.Invoice, len(fetched))
	for _, inv := range fetched {
		byID[inv.ID] = inv
	}
	out := make([]*entity.Invoice, 0, len(fetched))
	for _, id := range ids {
		if inv, ok := byID[id]; ok {
			out = append(out, inv)
		}
	}
	return out
}

func artifactName(t time.Time) string {
	return fmt.Sprintf("merged_invoices_%s_%s.pdf", t.UTC().Format("20060102_150405"), uuid.New().String()[:8])
}

func dec(p *float64) decimal.Decimal {
	if p == nil {
		return decimal.Zero
	}
	return decimal.NewFromFloat(*p)
}
