package server

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	invoicespb "github.com/seyi-ajadi/invoiceflow/gen/proto/invoices/v1"
	"github.com/seyi-ajadi/invoiceflow/internal/common"
	"github.com/seyi-ajadi/invoiceflow/internal/ingest"
	"github.com/seyi-ajadi/invoiceflow/internal/repository"
	"github.com/seyi-ajadi/invoiceflow/internal/utils"
)

type InvoicesService struct {
	invoicespb.UnimplementedInvoicesServiceServer
	pipeline *ingest.Pipeline
	invoices repository.InvoiceRepository
	logger   *slog.Logger
}

func NewInvoicesService(pipeline *ingest.Pipeline, invoices repository.InvoiceRepository, logger *slog.Logger) *InvoicesService {
	return &InvoicesService{pipeline: pipeline, invoices: invoices, logger: logger}
}

// IngestBatch runs the sequential upload pipeline. Per-file failures are
// reported in the corresponding result entry, never as an RPC error.
func (s *InvoicesService) IngestBatch(ctx context.Context, req *invoicespb.IngestBatchRequest) (*invoicespb.IngestBatchResponse, error) {
	profileID, err := uuid.Parse(req.GetProfileId())
	if err != nil {
		return nil, common.InvalidArgumentError("profile_id must be a UUID")
	}
	if len(req.GetFiles()) == 0 {
		return nil, common.InvalidArgumentError("at least one file is required")
	}

	batch := ingest.BatchRequest{
		ProfileID:       profileID,
		Overrides:       req.GetOverrides(),
		Exclusions:      make(map[string]struct{}, len(req.GetExclusions())),
		DefaultCurrency: req.GetDefaultCurrency(),
	}
	for _, k := range req.GetExclusions() {
		batch.Exclusions[k] = struct{}{}
	}
	for _, f := range req.GetFiles() {
		batch.Files = append(batch.Files, ingest.File{
			Name:        f.GetName(),
			ContentType: f.GetContentType(),
			Data:        f.GetData(),
		})
	}

	results := s.pipeline.Run(ctx, batch)

	out := make([]*invoicespb.IngestFileResult, len(results))
	for i, r := range results {
		pb := &invoicespb.IngestFileResult{
			FileName: r.FileName,
			Warnings: r.Warnings,
		}
		if r.Invoice != nil {
			pb.Invoice = utils.ToPBInvoice(r.Invoice)
		}
		if r.Err != nil {
			pb.Error = r.Err.Error()
		}
		out[i] = pb
	}
	return &invoicespb.IngestBatchResponse{Results: out}, nil
}

func (s *InvoicesService) ListInvoices(ctx context.Context, req *invoicespb.ListInvoicesRequest) (*invoicespb.ListInvoicesResponse, error) {
	profileID, err := uuid.Parse(req.GetProfileId())
	if err != nil {
		return nil, common.InvalidArgumentError("profile_id must be a UUID")
	}
	list, err := s.invoices.ListByProfile(ctx, profileID)
	if err != nil {
		s.logger.Error("list invoices failed", "profile_id", profileID, "error", err)
		return nil, common.GRPCStatus(err)
	}
	out := make([]*invoicespb.Invoice, 0, len(list))
	for _, inv := range list {
		out = append(out, utils.ToPBInvoice(inv))
	}
	return &invoicespb.ListInvoicesResponse{Invoices: out}, nil
}

func (s *InvoicesService) GetInvoice(ctx context.Context, req *invoicespb.GetInvoiceRequest) (*invoicespb.GetInvoiceResponse, error) {
	profileID, err := uuid.Parse(req.GetProfileId())
	if err != nil {
		return nil, common.InvalidArgumentError("profile_id must be a UUID")
	}
	invoiceID, err := uuid.Parse(req.GetInvoiceId())
	if err != nil {
		return nil, common.InvalidArgumentError("invoice_id must be a UUID")
	}
	inv, err := s.invoices.GetByID(ctx, profileID, invoiceID)
	if err != nil {
		return nil, common.GRPCStatus(err)
	}
	return &invoicespb.GetInvoiceResponse{Invoice: utils.ToPBInvoice(inv)}, nil
}
