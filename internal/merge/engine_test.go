package merge

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/seyi-ajadi/invoiceflow/constants"
	"github.com/seyi-ajadi/invoiceflow/internal/common"
	"github.com/seyi-ajadi/invoiceflow/internal/entity"
)

type fakeSource struct {
	invoices map[uuid.UUID]*entity.Invoice
	calls    int
}

func (f *fakeSource) ListByIDs(_ context.Context, _ uuid.UUID, ids []uuid.UUID) ([]*entity.Invoice, error) {
	f.calls++
	var out []*entity.Invoice
	for _, id := range ids {
		if inv, ok := f.invoices[id]; ok {
			out = append(out, inv)
		}
	}
	return out, nil
}

type fakeFetcher struct {
	docs map[string][]byte // url -> bytes; absent url fails
}

func (f *fakeFetcher) Fetch(_ context.Context, url string) ([]byte, error) {
	if d, ok := f.docs[url]; ok {
		return d, nil
	}
	return nil, errors.New("fetch failed")
}

type fakeStore struct {
	key  string
	data []byte
	err  error
}

func (f *fakeStore) Put(_ context.Context, key string, data []byte, _ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.key = key
	f.data = data
	return "https://store.example/" + key, nil
}

type fakeHistory struct {
	pending   *entity.ExportHistory
	completed bool
	failed    bool
	errMsg    string
}

func (f *fakeHistory) CreatePending(_ context.Context, rec *entity.ExportHistory) (*entity.ExportHistory, error) {
	cp := *rec
	cp.ID = uuid.New()
	f.pending = &cp
	return &cp, nil
}

func (f *fakeHistory) MarkCompleted(_ context.Context, _ uuid.UUID, _ string, _ int64, _ string) error {
	f.completed = true
	return nil
}

func (f *fakeHistory) MarkFailed(_ context.Context, _ uuid.UUID, msg string) error {
	f.failed = true
	f.errMsg = msg
	return nil
}

// orderMerger records the order documents arrive in and concatenates them.
// Contents listed in bad fail validation, standing in for corrupt PDFs.
type orderMerger struct {
	got [][]byte
	bad map[string]struct{}
}

func (m *orderMerger) Validate(doc []byte) error {
	if _, ok := m.bad[string(doc)]; ok {
		return errors.New("unreadable document")
	}
	return nil
}

func (m *orderMerger) Merge(docs [][]byte) ([]byte, error) {
	m.got = docs
	var out []byte
	for _, d := range docs {
		out = append(out, d...)
	}
	return out, nil
}

func fptr(v float64) *float64 { return &v }

func dateOf(s string) *time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return &t
}

func invoiceWith(id uuid.UUID, total, tax *float64, date *time.Time, url string) *entity.Invoice {
	return &entity.Invoice{
		ID:          id,
		TotalAmount: total,
		TaxAmount:   tax,
		InvoiceDate: date,
		Currency:    "$",
		FileURL:     url,
	}
}

func newTestEngine(src *fakeSource, fetcher *fakeFetcher, store *fakeStore, hist *fakeHistory, merger DocumentMerger) *Engine {
	return NewEngine(src, fetcher, store, hist, merger, time.Second, nil)
}

func TestMergeMinimumInvoices(t *testing.T) {
	src := &fakeSource{invoices: map[uuid.UUID]*entity.Invoice{}}
	eng := newTestEngine(src, &fakeFetcher{}, &fakeStore{}, &fakeHistory{}, &orderMerger{})

	id := uuid.New()
	cases := [][]uuid.UUID{
		{},
		{id},
		{id, id}, // duplicates collapse to one
	}
	for _, ids := range cases {
		_, err := eng.Merge(context.Background(), uuid.New(), ids, true)
		if !errors.Is(err, common.ErrInvalidInput) {
			t.Errorf("Merge(%d ids) = %v, want ErrInvalidInput", len(ids), err)
		}
	}
	if src.calls != 0 {
		t.Errorf("precondition failure must precede any external call, source hit %d times", src.calls)
	}
}

func TestMergePlanRestricted(t *testing.T) {
	src := &fakeSource{invoices: map[uuid.UUID]*entity.Invoice{}}
	eng := newTestEngine(src, &fakeFetcher{}, &fakeStore{}, &fakeHistory{}, &orderMerger{})

	_, err := eng.Merge(context.Background(), uuid.New(), []uuid.UUID{uuid.New(), uuid.New()}, false)
	if !errors.Is(err, common.ErrPlanRestricted) {
		t.Errorf("got %v, want ErrPlanRestricted", err)
	}
	if src.calls != 0 {
		t.Error("capability refusal must precede any external call")
	}
}

func TestMergeAggregation(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	src := &fakeSource{invoices: map[uuid.UUID]*entity.Invoice{
		ids[0]: invoiceWith(ids[0], fptr(10.00), fptr(1.00), dateOf("2024-01-15"), "u1"),
		ids[1]: invoiceWith(ids[1], fptr(20.00), fptr(2.00), dateOf("2024-03-01"), "u2"),
		ids[2]: invoiceWith(ids[2], nil, fptr(0.50), nil, "u3"),
	}}
	fetcher := &fakeFetcher{docs: map[string][]byte{"u1": []byte("a"), "u2": []byte("b"), "u3": []byte("c")}}
	hist := &fakeHistory{}
	eng := newTestEngine(src, fetcher, &fakeStore{}, hist, &orderMerger{})

	sum, err := eng.Merge(context.Background(), uuid.New(), ids, true)
	if err != nil {
		t.Fatal(err)
	}
	if got := sum.TotalAmount.StringFixed(2); got != "30.00" {
		t.Errorf("total_amount = %s, want 30.00 (nil treated as zero)", got)
	}
	if got := sum.TotalTax.StringFixed(2); got != "3.50" {
		t.Errorf("total_tax = %s, want 3.50", got)
	}
	if sum.TotalInvoices != 3 || sum.RequestedCount != 3 {
		t.Errorf("counts = %d/%d", sum.TotalInvoices, sum.RequestedCount)
	}
	if sum.Currency != "$" {
		t.Errorf("currency = %q", sum.Currency)
	}
	if sum.DateRange == nil {
		t.Fatal("date range should be set")
	}
	if sum.DateRange.Earliest.Format("2006-01-02") != "2024-01-15" ||
		sum.DateRange.Latest.Format("2006-01-02") != "2024-03-01" {
		t.Errorf("date range = %+v", sum.DateRange)
	}
	if !hist.completed {
		t.Error("history record should be completed")
	}
}

func TestMergePartialDocumentTolerance(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	src := &fakeSource{invoices: map[uuid.UUID]*entity.Invoice{
		ids[0]: invoiceWith(ids[0], fptr(1), nil, nil, "u1"),
		ids[1]: invoiceWith(ids[1], fptr(2), nil, nil, "u2-missing"),
		ids[2]: invoiceWith(ids[2], fptr(3), nil, nil, "u3"),
	}}
	// u2-missing is not fetchable
	fetcher := &fakeFetcher{docs: map[string][]byte{"u1": []byte("one"), "u3": []byte("three")}}
	merger := &orderMerger{}
	store := &fakeStore{}
	eng := newTestEngine(src, fetcher, store, &fakeHistory{}, merger)

	sum, err := eng.Merge(context.Background(), uuid.New(), ids, true)
	if !errors.Is(err, common.ErrPartialMerge) {
		t.Fatalf("got %v, want ErrPartialMerge", err)
	}
	// Numeric summary reflects all three invoices.
	if got := sum.TotalAmount.StringFixed(2); got != "6.00" {
		t.Errorf("total_amount = %s, want 6.00", got)
	}
	if sum.SkippedDocuments != 1 {
		t.Errorf("skipped = %d, want 1", sum.SkippedDocuments)
	}
	// Pages come only from the two retrievable documents, in input-id order.
	if len(merger.got) != 2 || string(merger.got[0]) != "one" || string(merger.got[1]) != "three" {
		t.Errorf("merged docs = %q", merger.got)
	}
	if string(store.data) != "onethree" {
		t.Errorf("stored artifact = %q", store.data)
	}
}

func TestMergeUnparseableDocumentSkipped(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	src := &fakeSource{invoices: map[uuid.UUID]*entity.Invoice{
		ids[0]: invoiceWith(ids[0], fptr(1), nil, nil, "u1"),
		ids[1]: invoiceWith(ids[1], fptr(2), nil, nil, "u2"),
		ids[2]: invoiceWith(ids[2], fptr(3), nil, nil, "u3"),
	}}
	// All three documents fetch, but the middle one does not parse.
	fetcher := &fakeFetcher{docs: map[string][]byte{
		"u1": []byte("one"),
		"u2": []byte("not a pdf at all"),
		"u3": []byte("three"),
	}}
	merger := &orderMerger{bad: map[string]struct{}{"not a pdf at all": {}}}
	store := &fakeStore{}
	hist := &fakeHistory{}
	eng := newTestEngine(src, fetcher, store, hist, merger)

	sum, err := eng.Merge(context.Background(), uuid.New(), ids, true)
	if !errors.Is(err, common.ErrPartialMerge) {
		t.Fatalf("got %v, want ErrPartialMerge", err)
	}
	if sum.SkippedDocuments != 1 {
		t.Errorf("skipped = %d, want 1", sum.SkippedDocuments)
	}
	if len(merger.got) != 2 || string(merger.got[0]) != "one" || string(merger.got[1]) != "three" {
		t.Errorf("merged docs = %q, corrupt constituent must be skipped", merger.got)
	}
	if string(store.data) != "onethree" {
		t.Errorf("stored artifact = %q", store.data)
	}
	if !hist.completed || hist.failed {
		t.Error("history record should complete despite the skipped document")
	}
}

func TestMergeAbsentIDsReported(t *testing.T) {
	present := uuid.New()
	other := uuid.New()
	vanished := uuid.New()
	src := &fakeSource{invoices: map[uuid.UUID]*entity.Invoice{
		present: invoiceWith(present, fptr(5), nil, nil, "u1"),
		other:   invoiceWith(other, fptr(7), nil, nil, "u2"),
	}}
	fetcher := &fakeFetcher{docs: map[string][]byte{"u1": []byte("a"), "u2": []byte("b")}}
	eng := newTestEngine(src, fetcher, &fakeStore{}, &fakeHistory{}, &orderMerger{})

	sum, err := eng.Merge(context.Background(), uuid.New(), []uuid.UUID{present, vanished, other}, true)
	if err != nil {
		t.Fatal(err)
	}
	if sum.RequestedCount != 3 || sum.TotalInvoices != 2 {
		t.Errorf("requested/merged = %d/%d, want 3/2", sum.RequestedCount, sum.TotalInvoices)
	}
}

func TestMergeNoRetrievableDocuments(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New()}
	src := &fakeSource{invoices: map[uuid.UUID]*entity.Invoice{
		ids[0]: invoiceWith(ids[0], fptr(1), nil, nil, "gone1"),
		ids[1]: invoiceWith(ids[1], fptr(2), nil, nil, ""),
	}}
	hist := &fakeHistory{}
	store := &fakeStore{}
	eng := newTestEngine(src, &fakeFetcher{}, store, hist, &orderMerger{})

	sum, err := eng.Merge(context.Background(), uuid.New(), ids, true)
	if !errors.Is(err, common.ErrPartialMerge) {
		t.Fatalf("got %v, want ErrPartialMerge", err)
	}
	if got := sum.TotalAmount.StringFixed(2); got != "3.00" {
		t.Errorf("numeric summary must survive, total = %s", got)
	}
	if sum.SkippedDocuments != 2 {
		t.Errorf("skipped = %d, want 2", sum.SkippedDocuments)
	}
	if sum.FileURL != "" || sum.FileSize != 0 {
		t.Errorf("zero-page merge must not produce a stored artifact, got %q/%d", sum.FileURL, sum.FileSize)
	}
	if store.key != "" {
		t.Error("nothing should be uploaded")
	}
	if !hist.completed {
		t.Error("history record should still be completed")
	}
}

func TestMergeAllDatesNull(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New()}
	src := &fakeSource{invoices: map[uuid.UUID]*entity.Invoice{
		ids[0]: invoiceWith(ids[0], fptr(1), nil, nil, "u1"),
		ids[1]: invoiceWith(ids[1], fptr(2), nil, nil, "u2"),
	}}
	fetcher := &fakeFetcher{docs: map[string][]byte{"u1": []byte("a"), "u2": []byte("b")}}
	eng := newTestEngine(src, fetcher, &fakeStore{}, &fakeHistory{}, &orderMerger{})

	sum, err := eng.Merge(context.Background(), uuid.New(), ids, true)
	if err != nil {
		t.Fatal(err)
	}
	if sum.DateRange != nil {
		t.Errorf("date range should be empty when all dates are null, got %+v", sum.DateRange)
	}
}

func TestMergeStoreFailureMarksOutbox(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New()}
	src := &fakeSource{invoices: map[uuid.UUID]*entity.Invoice{
		ids[0]: invoiceWith(ids[0], fptr(1), nil, nil, "u1"),
		ids[1]: invoiceWith(ids[1], fptr(2), nil, nil, "u2"),
	}}
	fetcher := &fakeFetcher{docs: map[string][]byte{"u1": []byte("a"), "u2": []byte("b")}}
	hist := &fakeHistory{}
	store := &fakeStore{err: fmt.Errorf("bucket unavailable")}
	eng := newTestEngine(src, fetcher, store, hist, &orderMerger{})

	_, err := eng.Merge(context.Background(), uuid.New(), ids, true)
	if !errors.Is(err, common.ErrStorage) {
		t.Errorf("got %v, want ErrStorage", err)
	}
	if !hist.failed {
		t.Error("pending record must be marked failed for cleanup tooling")
	}
	if hist.pending == nil || hist.pending.ExportType != constants.ExportTypeMerge {
		t.Error("pending record should have been written before assembly")
	}
}
