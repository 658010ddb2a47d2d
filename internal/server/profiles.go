// Package server hosts the thin gRPC layer: parse, delegate, convert.
package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	invoicespb "github.com/seyi-ajadi/invoiceflow/gen/proto/invoices/v1"
	"github.com/seyi-ajadi/invoiceflow/internal/common"
	"github.com/seyi-ajadi/invoiceflow/internal/repository"
	"github.com/seyi-ajadi/invoiceflow/internal/utils"
)

type ProfilesService struct {
	invoicespb.UnimplementedProfilesServiceServer
	profiles repository.ProfileRepository
	logger   *slog.Logger
}

func NewProfilesService(profiles repository.ProfileRepository, logger *slog.Logger) *ProfilesService {
	return &ProfilesService{profiles: profiles, logger: logger}
}

func (s *ProfilesService) CreateProfile(ctx context.Context, req *invoicespb.CreateProfileRequest) (*invoicespb.CreateProfileResponse, error) {
	email := strings.TrimSpace(req.GetEmail())
	name := strings.TrimSpace(req.GetName())
	if email == "" || name == "" {
		return nil, common.InvalidArgumentError("email and name are required")
	}

	p, err := s.profiles.Create(ctx, email, name, req.GetDefaultCurrency())
	if err != nil {
		s.logger.Error("create profile failed", "email", email, "error", err)
		return nil, common.GRPCStatus(err)
	}
	return &invoicespb.CreateProfileResponse{Profile: utils.ToPBProfile(p)}, nil
}

func (s *ProfilesService) GetProfile(ctx context.Context, req *invoicespb.GetProfileRequest) (*invoicespb.GetProfileResponse, error) {
	id, err := uuid.Parse(req.GetProfileId())
	if err != nil {
		return nil, common.InvalidArgumentError("profile_id must be a UUID")
	}
	p, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		return nil, common.GRPCStatus(err)
	}
	return &invoicespb.GetProfileResponse{Profile: utils.ToPBProfile(p)}, nil
}
