package mapping

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/seyi-ajadi/invoiceflow/internal/cache"
	"github.com/seyi-ajadi/invoiceflow/internal/common"
	"github.com/seyi-ajadi/invoiceflow/internal/entity"
)

// Repository is the persistence surface the service needs. The ent-backed
// implementation lives in internal/repository.
type Repository interface {
	Create(ctx context.Context, m *entity.FieldMapping) (*entity.FieldMapping, error)
	GetByID(ctx context.Context, profileID, id uuid.UUID) (*entity.FieldMapping, error)
	Update(ctx context.Context, m *entity.FieldMapping) (*entity.FieldMapping, error)
	Delete(ctx context.Context, profileID, id uuid.UUID) error
	ListByProfile(ctx context.Context, profileID uuid.UUID) ([]*entity.FieldMapping, error)
	ExistsByName(ctx context.Context, profileID uuid.UUID, fieldName string) (bool, error)
}

// Service handles field-mapping business logic: CRUD scoped to the owning
// profile, with a read-your-writes listing cache.
type Service struct {
	repo   Repository
	cache  *cache.Cache
	logger *slog.Logger
}

func NewService(repo Repository, c *cache.Cache, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if c == nil {
		c = cache.New()
	}
	return &Service{repo: repo, cache: c, logger: logger}
}

// Create adds a canonical field definition. Field names are unique per
// profile; duplicates fail with ErrDuplicateField.
func (s *Service) Create(ctx context.Context, profileID uuid.UUID, fieldName string) (*entity.FieldMapping, error) {
	fieldName = strings.TrimSpace(fieldName)
	if fieldName == "" {
		return nil, fmt.Errorf("field name is required: %w", common.ErrInvalidInput)
	}

	exists, err := s.repo.ExistsByName(ctx, profileID, fieldName)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("field %q: %w", fieldName, common.ErrDuplicateField)
	}

	created, err := s.repo.Create(ctx, &entity.FieldMapping{
		ProfileID: profileID,
		FieldName: fieldName,
		Required:  false,
	})
	if err != nil {
		return nil, err
	}
	s.cache.InvalidateOwner(profileID)
	s.logger.Info("mapping.create.ok", "profile_id", profileID, "field_name", fieldName)
	return created, nil
}

// UpdateRequest carries the partial update for a field mapping. Nil pointers
// leave the stored value untouched.
type UpdateRequest struct {
	ValidationKind    *string
	ValidationPattern *string
	ValidationMessage *string
	Required          *bool
	CustomRules       json.RawMessage
}

// Update applies a partial update to a mapping owned by the caller.
func (s *Service) Update(ctx context.Context, profileID, id uuid.UUID, req UpdateRequest) (*entity.FieldMapping, error) {
	m, err := s.repo.GetByID(ctx, profileID, id)
	if err != nil {
		return nil, err
	}
	if req.ValidationKind != nil {
		m.ValidationKind = req.ValidationKind
	}
	if req.ValidationPattern != nil {
		m.ValidationPattern = req.ValidationPattern
	}
	if req.ValidationMessage != nil {
		m.ValidationMessage = req.ValidationMessage
	}
	if req.Required != nil {
		m.Required = *req.Required
	}
	if req.CustomRules != nil {
		m.CustomRules = req.CustomRules
	}

	updated, err := s.repo.Update(ctx, m)
	if err != nil {
		return nil, err
	}
	s.cache.InvalidateOwner(profileID)
	s.logger.Info("mapping.update.ok", "profile_id", profileID, "mapping_id", id)
	return updated, nil
}

// Delete removes a mapping. Already-persisted invoices are untouched; the
// mapping is applied at ingestion time only.
func (s *Service) Delete(ctx context.Context, profileID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, profileID, id); err != nil {
		return err
	}
	s.cache.InvalidateOwner(profileID)
	s.logger.Info("mapping.delete.ok", "profile_id", profileID, "mapping_id", id)
	return nil
}

// List returns the profile's mappings, served from the cache when warm.
func (s *Service) List(ctx context.Context, profileID uuid.UUID) ([]*entity.FieldMapping, error) {
	key := cache.Key("field_mappings.list", profileID)
	if v, ok := s.cache.Get(key); ok {
		return v.([]*entity.FieldMapping), nil
	}
	list, err := s.repo.ListByProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}
	s.cache.Set(key, profileID, list)
	return list, nil
}
