package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/seyi-ajadi/invoiceflow/gen/ent"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/profile"
	"github.com/seyi-ajadi/invoiceflow/internal/common"
	"github.com/seyi-ajadi/invoiceflow/internal/entity"
	"github.com/seyi-ajadi/invoiceflow/internal/utils"
)

type ProfileRepository interface {
	Create(ctx context.Context, email, name, defaultCurrency string) (*entity.Profile, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
	GetByEmail(ctx context.Context, email string) (*entity.Profile, error)
	SetTier(ctx context.Context, profileID uuid.UUID, tier string) error
}

type profileRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewProfileRepository(client *ent.Client, logger *slog.Logger) ProfileRepository {
	return &profileRepository{client: client, logger: logger}
}

func (r *profileRepository) Create(ctx context.Context, email, name, defaultCurrency string) (*entity.Profile, error) {
	builder := r.client.Profile.Create().
		SetEmail(email).
		SetName(name)
	if defaultCurrency != "" {
		builder = builder.SetDefaultCurrency(defaultCurrency)
	}
	row, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("profile %s already exists: %w", email, common.ErrDuplicateField)
		}
		r.logger.Error("failed to create profile", "email", email, "error", err)
		return nil, err
	}
	return utils.ToProfile(row), nil
}

func (r *profileRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	row, err := r.client.Profile.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("profile %s: %w", id, common.ErrNotFound)
		}
		return nil, err
	}
	return utils.ToProfile(row), nil
}

func (r *profileRepository) GetByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	row, err := r.client.Profile.Query().
		Where(profile.Email(email)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("profile %s: %w", email, common.ErrNotFound)
		}
		return nil, err
	}
	return utils.ToProfile(row), nil
}

func (r *profileRepository) SetTier(ctx context.Context, profileID uuid.UUID, tier string) error {
	err := r.client.Profile.UpdateOneID(profileID).
		SetSubscriptionTier(tier).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("profile %s: %w", profileID, common.ErrNotFound)
		}
		r.logger.Error("failed to set tier", "profile_id", profileID, "tier", tier, "error", err)
		return err
	}
	return nil
}
