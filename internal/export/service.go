package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/seyi-ajadi/invoiceflow/constants"
	"github.com/seyi-ajadi/invoiceflow/internal/common"
	"github.com/seyi-ajadi/invoiceflow/internal/entity"
)

// InvoiceSource fetches the caller's invoices by id, preserving ownership
// scoping. Ids that do not resolve are absent from the result.
type InvoiceSource interface {
	ListByIDs(ctx context.Context, profileID uuid.UUID, ids []uuid.UUID) ([]*entity.Invoice, error)
}

// ObjectStore persists the rendered artifact and returns its public URL.
type ObjectStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// HistoryStore records completed exports and serves the history surface.
type HistoryStore interface {
	Create(ctx context.Context, rec *entity.ExportHistory) (*entity.ExportHistory, error)
	ListByProfile(ctx context.Context, profileID uuid.UUID) ([]*entity.ExportHistory, error)
	DeleteByIDs(ctx context.Context, profileID uuid.UUID, ids []uuid.UUID) (int, error)
}

// Service renders exports and writes their history records.
type Service struct {
	invoices InvoiceSource
	store    ObjectStore
	history  HistoryStore
	logger   *slog.Logger
}

func NewService(invoices InvoiceSource, store ObjectStore, history HistoryStore, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{invoices: invoices, store: store, history: history, logger: logger}
}

// Export renders the given invoices into exportType, stores the artifact, and
// appends a history record. Plain text is always available; the caller
// resolves whether the profile's current tier grants the other formats and
// passes that in.
func (s *Service) Export(ctx context.Context, profileID uuid.UUID, ids []uuid.UUID, exportType string, formatsGranted bool) (*entity.ExportHistory, error) {
	start := time.Now()
	if len(ids) == 0 {
		return nil, fmt.Errorf("no invoices selected: %w", common.ErrInvalidInput)
	}
	if !validExportType(exportType) {
		return nil, fmt.Errorf("unsupported export format %q: %w", exportType, common.ErrInvalidInput)
	}
	if exportType != constants.ExportTypeText && !formatsGranted {
		return nil, fmt.Errorf("export format %s: %w", exportType, common.ErrPlanRestricted)
	}

	invoices, err := s.invoices.ListByIDs(ctx, profileID, ids)
	if err != nil {
		return nil, common.WrapError(err, "fetch invoices")
	}
	if len(invoices) == 0 {
		return nil, fmt.Errorf("none of the selected invoices exist: %w", common.ErrNotFound)
	}

	artifact, err := Format(invoices, exportType)
	if err != nil {
		return nil, err
	}

	url, err := s.store.Put(ctx, artifact.FileName, artifact.Data, artifact.ContentType)
	if err != nil {
		return nil, fmt.Errorf("store export artifact: %v: %w", err, common.ErrStorage)
	}

	size := int64(len(artifact.Data))
	invoiceIDs := make([]uuid.UUID, len(invoices))
	for i, inv := range invoices {
		invoiceIDs[i] = inv.ID
	}
	rec, err := s.history.Create(ctx, &entity.ExportHistory{
		ProfileID:  profileID,
		InvoiceIDs: invoiceIDs,
		ExportType: exportType,
		FileName:   artifact.FileName,
		FileSize:   &size,
		FileURL:    &url,
		Status:     string(constants.ExportStatusCompleted),
	})
	if err != nil {
		return nil, common.WrapError(err, "record export")
	}

	s.logger.Info("export.ok",
		"profile_id", profileID.String(),
		"format", exportType,
		"invoices", len(invoices),
		"bytes", size,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return rec, nil
}

// History lists the profile's export records, newest first per the store.
func (s *Service) History(ctx context.Context, profileID uuid.UUID) ([]*entity.ExportHistory, error) {
	recs, err := s.history.ListByProfile(ctx, profileID)
	if err != nil {
		return nil, common.WrapError(err, "list export history")
	}
	return recs, nil
}

// DeleteHistory bulk-deletes the selected records. Ids not owned by the
// profile are skipped, not errored; the count of deleted rows is returned.
func (s *Service) DeleteHistory(ctx context.Context, profileID uuid.UUID, ids []uuid.UUID) (int, error) {
	if len(ids) == 0 {
		return 0, fmt.Errorf("no history entries selected: %w", common.ErrInvalidInput)
	}
	n, err := s.history.DeleteByIDs(ctx, profileID, ids)
	if err != nil {
		return 0, common.WrapError(err, "delete export history")
	}
	s.logger.Info("export.history.delete", "profile_id", profileID.String(), "requested", len(ids), "deleted", n)
	return n, nil
}

// validExportType accepts the flat formats only; merged documents go through
// the merge engine and record their own history.
func validExportType(t string) bool {
	switch t {
	case constants.ExportTypeText, constants.ExportTypeCSV, constants.ExportTypeJSON, constants.ExportTypeXLSX:
		return true
	}
	return false
}
