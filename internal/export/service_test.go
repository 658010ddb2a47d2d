package export

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/seyi-ajadi/invoiceflow/constants"
	"github.com/seyi-ajadi/invoiceflow/internal/common"
	"github.com/seyi-ajadi/invoiceflow/internal/entity"
)

type fakeSource struct {
	invoices map[uuid.UUID]*entity.Invoice
}

func (f *fakeSource) ListByIDs(_ context.Context, _ uuid.UUID, ids []uuid.UUID) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, id := range ids {
		if inv, ok := f.invoices[id]; ok {
			out = append(out, inv)
		}
	}
	return out, nil
}

type fakeStore struct {
	key string
	err error
}

func (f *fakeStore) Put(_ context.Context, key string, _ []byte, _ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.key = key
	return "https://store.example/" + key, nil
}

type fakeHistory struct {
	created []*entity.ExportHistory
	deleted []uuid.UUID
}

func (f *fakeHistory) Create(_ context.Context, rec *entity.ExportHistory) (*entity.ExportHistory, error) {
	cp := *rec
	cp.ID = uuid.New()
	f.created = append(f.created, &cp)
	return &cp, nil
}

func (f *fakeHistory) ListByProfile(_ context.Context, _ uuid.UUID) ([]*entity.ExportHistory, error) {
	return f.created, nil
}

func (f *fakeHistory) DeleteByIDs(_ context.Context, _ uuid.UUID, ids []uuid.UUID) (int, error) {
	f.deleted = append(f.deleted, ids...)
	return len(ids), nil
}

func newTestService(src *fakeSource, store *fakeStore, hist *fakeHistory) *Service {
	return NewService(src, store, hist, nil)
}

func TestExportWritesArtifactAndHistory(t *testing.T) {
	inv := sampleInvoice()
	src := &fakeSource{invoices: map[uuid.UUID]*entity.Invoice{inv.ID: inv}}
	store := &fakeStore{}
	hist := &fakeHistory{}
	svc := newTestService(src, store, hist)

	rec, err := svc.Export(context.Background(), uuid.New(), []uuid.UUID{inv.ID}, constants.ExportTypeText, false)
	if err != nil {
		t.Fatal(err)
	}
	if store.key == "" {
		t.Error("artifact was not stored")
	}
	if len(hist.created) != 1 {
		t.Fatalf("history records = %d", len(hist.created))
	}
	if rec.ExportType != constants.ExportTypeText || rec.FileSize == nil || *rec.FileSize == 0 {
		t.Errorf("record = %+v", rec)
	}
	if rec.Status != string(constants.ExportStatusCompleted) {
		t.Errorf("status = %s", rec.Status)
	}
}

func TestExportTextAlwaysAvailable(t *testing.T) {
	inv := sampleInvoice()
	src := &fakeSource{invoices: map[uuid.UUID]*entity.Invoice{inv.ID: inv}}
	svc := newTestService(src, &fakeStore{}, &fakeHistory{})

	if _, err := svc.Export(context.Background(), uuid.New(), []uuid.UUID{inv.ID}, constants.ExportTypeText, false); err != nil {
		t.Errorf("text export must not be gated: %v", err)
	}
}

func TestExportGatedFormats(t *testing.T) {
	inv := sampleInvoice()
	src := &fakeSource{invoices: map[uuid.UUID]*entity.Invoice{inv.ID: inv}}
	svc := newTestService(src, &fakeStore{}, &fakeHistory{})

	for _, format := range []string{constants.ExportTypeCSV, constants.ExportTypeJSON, constants.ExportTypeXLSX} {
		_, err := svc.Export(context.Background(), uuid.New(), []uuid.UUID{inv.ID}, format, false)
		if !errors.Is(err, common.ErrPlanRestricted) {
			t.Errorf("%s without grant: got %v, want ErrPlanRestricted", format, err)
		}
		if _, err := svc.Export(context.Background(), uuid.New(), []uuid.UUID{inv.ID}, format, true); err != nil {
			t.Errorf("%s with grant: %v", format, err)
		}
	}
}

func TestExportMergeTypeRejected(t *testing.T) {
	inv := sampleInvoice()
	src := &fakeSource{invoices: map[uuid.UUID]*entity.Invoice{inv.ID: inv}}
	svc := newTestService(src, &fakeStore{}, &fakeHistory{})

	_, err := svc.Export(context.Background(), uuid.New(), []uuid.UUID{inv.ID}, constants.ExportTypeMerge, true)
	if !errors.Is(err, common.ErrInvalidInput) {
		t.Errorf("got %v, want ErrInvalidInput", err)
	}
}

func TestExportNotFound(t *testing.T) {
	svc := newTestService(&fakeSource{invoices: map[uuid.UUID]*entity.Invoice{}}, &fakeStore{}, &fakeHistory{})

	_, err := svc.Export(context.Background(), uuid.New(), []uuid.UUID{uuid.New()}, constants.ExportTypeText, false)
	if !errors.Is(err, common.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestExportStoreFailure(t *testing.T) {
	inv := sampleInvoice()
	src := &fakeSource{invoices: map[uuid.UUID]*entity.Invoice{inv.ID: inv}}
	hist := &fakeHistory{}
	svc := newTestService(src, &fakeStore{err: errors.New("bucket down")}, hist)

	_, err := svc.Export(context.Background(), uuid.New(), []uuid.UUID{inv.ID}, constants.ExportTypeText, false)
	if !errors.Is(err, common.ErrStorage) {
		t.Errorf("got %v, want ErrStorage", err)
	}
	if len(hist.created) != 0 {
		t.Error("failed export must not leave a history record")
	}
}

func TestDeleteHistory(t *testing.T) {
	hist := &fakeHistory{}
	svc := newTestService(&fakeSource{}, &fakeStore{}, hist)

	if _, err := svc.DeleteHistory(context.Background(), uuid.New(), nil); !errors.Is(err, common.ErrInvalidInput) {
		t.Errorf("empty selection: got %v, want ErrInvalidInput", err)
	}

	ids := []uuid.UUID{uuid.New(), uuid.New()}
	n, err := svc.DeleteHistory(context.Background(), uuid.New(), ids)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 || len(hist.deleted) != 2 {
		t.Errorf("deleted = %d/%d", n, len(hist.deleted))
	}
}
