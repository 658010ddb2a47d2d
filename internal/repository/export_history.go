package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/seyi-ajadi/invoiceflow/constants"
	"github.com/seyi-ajadi/invoiceflow/gen/ent"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/exporthistory"
	"github.com/seyi-ajadi/invoiceflow/internal/common"
	"github.com/seyi-ajadi/invoiceflow/internal/entity"
	"github.com/seyi-ajadi/invoiceflow/internal/utils"
)

// ExportHistoryRepository is the persistence surface for export records. It
// backs both the merge outbox (pending -> completed/failed) and the export
// service's direct writes.
type ExportHistoryRepository interface {
	Create(ctx context.Context, rec *entity.ExportHistory) (*entity.ExportHistory, error)
	CreatePending(ctx context.Context, rec *entity.ExportHistory) (*entity.ExportHistory, error)
	MarkCompleted(ctx context.Context, id uuid.UUID, fileName string, size int64, url string) error
	MarkFailed(ctx context.Context, id uuid.UUID, errMsg string) error
	ListByProfile(ctx context.Context, profileID uuid.UUID) ([]*entity.ExportHistory, error)
	DeleteByIDs(ctx context.Context, profileID uuid.UUID, ids []uuid.UUID) (int, error)
}

type exportHistoryRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewExportHistoryRepository(client *ent.Client, logger *slog.Logger) ExportHistoryRepository {
	return &exportHistoryRepository{client: client, logger: logger}
}

func (r *exportHistoryRepository) Create(ctx context.Context, rec *entity.ExportHistory) (*entity.ExportHistory, error) {
	builder := r.client.ExportHistory.Create().
		SetProfileID(rec.ProfileID).
		SetInvoiceIds(rec.InvoiceIDs).
		SetExportType(rec.ExportType).
		SetFileName(rec.FileName).
		SetNillableFileSize(rec.FileSize).
		SetNillableFileURL(rec.FileURL).
		SetNillableErrorMessage(rec.ErrorMessage)
	if rec.Status != "" {
		builder = builder.SetStatus(rec.Status)
	}
	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create export record", "profile_id", rec.ProfileID, "error", err)
		return nil, err
	}
	return utils.ToExportHistory(row), nil
}

func (r *exportHistoryRepository) CreatePending(ctx context.Context, rec *entity.ExportHistory) (*entity.ExportHistory, error) {
	cp := *rec
	cp.Status = string(constants.ExportStatusPending)
	return r.Create(ctx, &cp)
}

func (r *exportHistoryRepository) MarkCompleted(ctx context.Context, id uuid.UUID, fileName string, size int64, url string) error {
	builder := r.client.ExportHistory.UpdateOneID(id).
		SetStatus(string(constants.ExportStatusCompleted)).
		SetFileName(fileName).
		SetFileSize(size)
	if url != "" {
		builder = builder.SetFileURL(url)
	}
	if err := builder.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("export record %s: %w", id, common.ErrNotFound)
		}
		return err
	}
	return nil
}

func (r *exportHistoryRepository) MarkFailed(ctx context.Context, id uuid.UUID, errMsg string) error {
	err := r.client.ExportHistory.UpdateOneID(id).
		SetStatus(string(constants.ExportStatusFailed)).
		SetErrorMessage(errMsg).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("export record %s: %w", id, common.ErrNotFound)
		}
		return err
	}
	return nil
}

func (r *exportHistoryRepository) ListByProfile(ctx context.Context, profileID uuid.UUID) ([]*entity.ExportHistory, error) {
	rows, err := r.client.ExportHistory.Query().
		Where(exporthistory.ProfileID(profileID)).
		Order(ent.Desc(exporthistory.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list export history", "profile_id", profileID, "error", err)
		return nil, err
	}
	result := make([]*entity.ExportHistory, len(rows))
	for i, row := range rows {
		result[i] = utils.ToExportHistory(row)
	}
	return result, nil
}

// DeleteByIDs removes the caller's records among ids; rows owned by someone
// else are left untouched.
func (r *exportHistoryRepository) DeleteByIDs(ctx context.Context, profileID uuid.UUID, ids []uuid.UUID) (int, error) {
	n, err := r.client.ExportHistory.Delete().
		Where(exporthistory.ProfileID(profileID), exporthistory.IDIn(ids...)).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to delete export history", "profile_id", profileID, "error", err)
		return 0, err
	}
	return n, nil
}
