package server

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	invoicespb "github.com/seyi-ajadi/invoiceflow/gen/proto/invoices/v1"
	"github.com/seyi-ajadi/invoiceflow/internal/common"
	"github.com/seyi-ajadi/invoiceflow/internal/mapping"
	"github.com/seyi-ajadi/invoiceflow/internal/utils"
)

type MappingsService struct {
	invoicespb.UnimplementedMappingsServiceServer
	mappings *mapping.Service
	logger   *slog.Logger
}

func NewMappingsService(mappings *mapping.Service, logger *slog.Logger) *MappingsService {
	return &MappingsService{mappings: mappings, logger: logger}
}

func (s *MappingsService) CreateFieldMapping(ctx context.Context, req *invoicespb.CreateFieldMappingRequest) (*invoicespb.CreateFieldMappingResponse, error) {
	profileID, err := uuid.Parse(req.GetProfileId())
	if err != nil {
		return nil, common.InvalidArgumentError("profile_id must be a UUID")
	}
	m, err := s.mappings.Create(ctx, profileID, req.GetFieldName())
	if err != nil {
		return nil, common.GRPCStatus(err)
	}
	return &invoicespb.CreateFieldMappingResponse{Mapping: utils.ToPBFieldMapping(m)}, nil
}

func (s *MappingsService) UpdateFieldMapping(ctx context.Context, req *invoicespb.UpdateFieldMappingRequest) (*invoicespb.UpdateFieldMappingResponse, error) {
	profileID, err := uuid.Parse(req.GetProfileId())
	if err != nil {
		return nil, common.InvalidArgumentError("profile_id must be a UUID")
	}
	mappingID, err := uuid.Parse(req.GetMappingId())
	if err != nil {
		return nil, common.InvalidArgumentError("mapping_id must be a UUID")
	}

	update := mapping.UpdateRequest{
		ValidationKind:    req.ValidationKind,
		ValidationPattern: req.ValidationPattern,
		ValidationMessage: req.ValidationMessage,
		Required:          req.Required,
	}
	if req.CustomRulesJson != nil {
		raw := json.RawMessage(*req.CustomRulesJson)
		if !json.Valid(raw) {
			return nil, common.InvalidArgumentError("custom_rules_json must be valid JSON")
		}
		update.CustomRules = raw
	}

	m, err := s.mappings.Update(ctx, profileID, mappingID, update)
	if err != nil {
		return nil, common.GRPCStatus(err)
	}
	return &invoicespb.UpdateFieldMappingResponse{Mapping: utils.ToPBFieldMapping(m)}, nil
}

func (s *MappingsService) DeleteFieldMapping(ctx context.Context, req *invoicespb.DeleteFieldMappingRequest) (*invoicespb.DeleteFieldMappingResponse, error) {
	profileID, err := uuid.Parse(req.GetProfileId())
	if err != nil {
		return nil, common.InvalidArgumentError("profile_id must be a UUID")
	}
	mappingID, err := uuid.Parse(req.GetMappingId())
	if err != nil {
		return nil, common.InvalidArgumentError("mapping_id must be a UUID")
	}
	if err := s.mappings.Delete(ctx, profileID, mappingID); err != nil {
		return nil, common.GRPCStatus(err)
	}
	return &invoicespb.DeleteFieldMappingResponse{}, nil
}

func (s *MappingsService) ListFieldMappings(ctx context.Context, req *invoicespb.ListFieldMappingsRequest) (*invoicespb.ListFieldMappingsResponse, error) {
	profileID, err := uuid.Parse(req.GetProfileId())
	if err != nil {
		return nil, common.InvalidArgumentError("profile_id must be a UUID")
	}
	list, err := s.mappings.List(ctx, profileID)
	if err != nil {
		return nil, common.GRPCStatus(err)
	}
	out := make([]*invoicespb.FieldMapping, 0, len(list))
	for _, m := range list {
		out = append(out, utils.ToPBFieldMapping(m))
	}
	return &invoicespb.ListFieldMappingsResponse{Mappings: out}, nil
}

func (s *MappingsService) SuggestMappings(_ context.Context, req *invoicespb.SuggestMappingsRequest) (*invoicespb.SuggestMappingsResponse, error) {
	return &invoicespb.SuggestMappingsResponse{
		Suggestions: mapping.SuggestMappings(req.GetRawKeys()),
	}, nil
}
