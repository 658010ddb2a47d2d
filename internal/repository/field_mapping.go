package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/seyi-ajadi/invoiceflow/gen/ent"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/fieldmapping"
	"github.com/seyi-ajadi/invoiceflow/internal/common"
	"github.com/seyi-ajadi/invoiceflow/internal/entity"
	"github.com/seyi-ajadi/invoiceflow/internal/mapping"
	"github.com/seyi-ajadi/invoiceflow/internal/utils"
)

type fieldMappingRepository struct {
	client *ent.Client
	logger *slog.Logger
}

// NewFieldMappingRepository returns the ent-backed mapping.Repository.
func NewFieldMappingRepository(client *ent.Client, logger *slog.Logger) mapping.Repository {
	return &fieldMappingRepository{client: client, logger: logger}
}

func (r *fieldMappingRepository) Create(ctx context.Context, m *entity.FieldMapping) (*entity.FieldMapping, error) {
	builder := r.client.FieldMapping.Create().
		SetProfileID(m.ProfileID).
		SetFieldName(m.FieldName).
		SetRequired(m.Required)
	if m.ValidationKind != nil {
		builder = builder.SetValidationKind(*m.ValidationKind)
	}
	if m.ValidationPattern != nil {
		builder = builder.SetValidationPattern(*m.ValidationPattern)
	}
	if m.ValidationMessage != nil {
		builder = builder.SetValidationMessage(*m.ValidationMessage)
	}
	if m.CustomRules != nil {
		builder = builder.SetCustomRules(m.CustomRules)
	}
	row, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("field %q: %w", m.FieldName, common.ErrDuplicateField)
		}
		r.logger.Error("failed to create field mapping", "profile_id", m.ProfileID, "field_name", m.FieldName, "error", err)
		return nil, err
	}
	return utils.ToFieldMapping(row), nil
}

func (r *fieldMappingRepository) GetByID(ctx context.Context, profileID, id uuid.UUID) (*entity.FieldMapping, error) {
	row, err := r.client.FieldMapping.Query().
		Where(fieldmapping.ID(id), fieldmapping.ProfileID(profileID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("field mapping %s: %w", id, common.ErrNotFound)
		}
		return nil, err
	}
	return utils.ToFieldMapping(row), nil
}

func (r *fieldMappingRepository) Update(ctx context.Context, m *entity.FieldMapping) (*entity.FieldMapping, error) {
	builder := r.client.FieldMapping.UpdateOneID(m.ID).
		SetRequired(m.Required)
	if m.ValidationKind != nil {
		builder = builder.SetValidationKind(*m.ValidationKind)
	} else {
		builder = builder.ClearValidationKind()
	}
	if m.ValidationPattern != nil {
		builder = builder.SetValidationPattern(*m.ValidationPattern)
	} else {
		builder = builder.ClearValidationPattern()
	}
	if m.ValidationMessage != nil {
		builder = builder.SetValidationMessage(*m.ValidationMessage)
	} else {
		builder = builder.ClearValidationMessage()
	}
	if m.CustomRules != nil {
		builder = builder.SetCustomRules(m.CustomRules)
	}
	row, err := builder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("field mapping %s: %w", m.ID, common.ErrNotFound)
		}
		r.logger.Error("failed to update field mapping", "mapping_id", m.ID, "error", err)
		return nil, err
	}
	return utils.ToFieldMapping(row), nil
}

func (r *fieldMappingRepository) Delete(ctx context.Context, profileID, id uuid.UUID) error {
	n, err := r.client.FieldMapping.Delete().
		Where(fieldmapping.ID(id), fieldmapping.ProfileID(profileID)).
		Exec(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("field mapping %s: %w", id, common.ErrNotFound)
	}
	return nil
}

func (r *fieldMappingRepository) ListByProfile(ctx context.Context, profileID uuid.UUID) ([]*entity.FieldMapping, error) {
	rows, err := r.client.FieldMapping.Query().
		Where(fieldmapping.ProfileID(profileID)).
		Order(fieldmapping.ByFieldName()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list field mappings", "profile_id", profileID, "error", err)
		return nil, err
	}
	result := make([]*entity.FieldMapping, len(rows))
	for i, row := range rows {
		result[i] = utils.ToFieldMapping(row)
	}
	return result, nil
}

func (r *fieldMappingRepository) ExistsByName(ctx context.Context, profileID uuid.UUID, fieldName string) (bool, error) {
	return r.client.FieldMapping.Query().
		Where(fieldmapping.ProfileID(profileID), fieldmapping.FieldName(fieldName)).
		Exist(ctx)
}
