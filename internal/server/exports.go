package server

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	invoicespb "github.com/seyi-ajadi/invoiceflow/gen/proto/invoices/v1"
	"github.com/seyi-ajadi/invoiceflow/internal/billing"
	"github.com/seyi-ajadi/invoiceflow/internal/common"
	"github.com/seyi-ajadi/invoiceflow/internal/export"
	"github.com/seyi-ajadi/invoiceflow/internal/merge"
	"github.com/seyi-ajadi/invoiceflow/internal/utils"
)

type ExportsService struct {
	invoicespb.UnimplementedExportsServiceServer
	merges  *merge.Engine
	exports *export.Service
	billing *billing.Service
	logger  *slog.Logger
}

func NewExportsService(merges *merge.Engine, exports *export.Service, billingSvc *billing.Service, logger *slog.Logger) *ExportsService {
	return &ExportsService{merges: merges, exports: exports, billing: billingSvc, logger: logger}
}

// MergeInvoices resolves the caller's current capabilities and runs the merge.
func (s *ExportsService) MergeInvoices(ctx context.Context, req *invoicespb.MergeInvoicesRequest) (*invoicespb.MergeInvoicesResponse, error) {
	profileID, err := uuid.Parse(req.GetProfileId())
	if err != nil {
		return nil, common.InvalidArgumentError("profile_id must be a UUID")
	}
	ids, err := utils.ParseUUIDs(req.GetInvoiceIds())
	if err != nil {
		return nil, common.InvalidArgumentError("invoice_ids must be UUIDs")
	}

	caps, err := s.billing.Capabilities(ctx, profileID)
	if err != nil {
		return nil, common.GRPCStatus(err)
	}

	// A partial merge still produced a summary and an artifact; the skipped
	// count in the response is the client's signal.
	sum, err := s.merges.Merge(ctx, profileID, ids, caps.CanMerge)
	if err != nil && !errors.Is(err, common.ErrPartialMerge) {
		return nil, common.GRPCStatus(err)
	}

	resp := &invoicespb.MergeInvoicesResponse{
		RequestedCount:      int32(sum.RequestedCount),
		TotalInvoices:       int32(sum.TotalInvoices),
		TotalAmount:         sum.TotalAmount.StringFixed(2),
		TotalTax:            sum.TotalTax.StringFixed(2),
		TotalSubtotal:       sum.TotalSubtotal.StringFixed(2),
		TotalDiscount:       sum.TotalDiscount.StringFixed(2),
		TotalAdditionalFees: sum.TotalAdditionalFee.StringFixed(2),
		Currency:            sum.Currency,
		SkippedDocuments:    int32(sum.SkippedDocuments),
		FileName:            sum.FileName,
		FileUrl:             sum.FileURL,
		FileSize:            sum.FileSize,
		HistoryId:           sum.HistoryID.String(),
	}
	if sum.DateRange != nil {
		resp.DateRange = &invoicespb.DateRange{
			Earliest: sum.DateRange.Earliest.Format("2006-01-02"),
			Latest:   sum.DateRange.Latest.Format("2006-01-02"),
		}
	}
	return resp, nil
}

func (s *ExportsService) ExportInvoices(ctx context.Context, req *invoicespb.ExportInvoicesRequest) (*invoicespb.ExportInvoicesResponse, error) {
	profileID, err := uuid.Parse(req.GetProfileId())
	if err != nil {
		return nil, common.InvalidArgumentError("profile_id must be a UUID")
	}
	ids, err := utils.ParseUUIDs(req.GetInvoiceIds())
	if err != nil {
		return nil, common.InvalidArgumentError("invoice_ids must be UUIDs")
	}

	caps, err := s.billing.Capabilities(ctx, profileID)
	if err != nil {
		return nil, common.GRPCStatus(err)
	}

	rec, err := s.exports.Export(ctx, profileID, ids, req.GetExportType(), caps.ExportFormats)
	if err != nil {
		return nil, common.GRPCStatus(err)
	}
	return &invoicespb.ExportInvoicesResponse{Record: utils.ToPBExportHistory(rec)}, nil
}

func (s *ExportsService) ListExportHistory(ctx context.Context, req *invoicespb.ListExportHistoryRequest) (*invoicespb.ListExportHistoryResponse, error) {
	profileID, err := uuid.Parse(req.GetProfileId())
	if err != nil {
		return nil, common.InvalidArgumentError("profile_id must be a UUID")
	}
	recs, err := s.exports.History(ctx, profileID)
	if err != nil {
		return nil, common.GRPCStatus(err)
	}
	out := make([]*invoicespb.ExportHistoryRecord, 0, len(recs))
	for _, rec := range recs {
		out = append(out, utils.ToPBExportHistory(rec))
	}
	return &invoicespb.ListExportHistoryResponse{Records: out}, nil
}

func (s *ExportsService) DeleteExportHistory(ctx context.Context, req *invoicespb.DeleteExportHistoryRequest) (*invoicespb.DeleteExportHistoryResponse, error) {
	profileID, err := uuid.Parse(req.GetProfileId())
	if err != nil {
		return nil, common.InvalidArgumentError("profile_id must be a UUID")
	}
	ids, err := utils.ParseUUIDs(req.GetRecordIds())
	if err != nil {
		return nil, common.InvalidArgumentError("record_ids must be UUIDs")
	}
	n, err := s.exports.DeleteHistory(ctx, profileID, ids)
	if err != nil {
		return nil, common.GRPCStatus(err)
	}
	return &invoicespb.DeleteExportHistoryResponse{Deleted: int32(n)}, nil
}
