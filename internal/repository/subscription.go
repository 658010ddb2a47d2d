package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/seyi-ajadi/invoiceflow/gen/ent"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/subscription"
	"github.com/seyi-ajadi/invoiceflow/gen/ent/subscriptiontier"
	"github.com/seyi-ajadi/invoiceflow/internal/common"
	"github.com/seyi-ajadi/invoiceflow/internal/entity"
	"github.com/seyi-ajadi/invoiceflow/internal/utils"
)

// SubscriptionRepository mirrors billing-provider state, keyed by customer
// email.
type SubscriptionRepository interface {
	UpsertByEmail(ctx context.Context, sub *entity.Subscription) (*entity.Subscription, error)
	GetByEmail(ctx context.Context, email string) (*entity.Subscription, error)
}

type subscriptionRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewSubscriptionRepository(client *ent.Client, logger *slog.Logger) SubscriptionRepository {
	return &subscriptionRepository{client: client, logger: logger}
}

func (r *subscriptionRepository) UpsertByEmail(ctx context.Context, sub *entity.Subscription) (*entity.Subscription, error) {
	existing, err := r.client.Subscription.Query().
		Where(subscription.CustomerEmail(sub.CustomerEmail)).
		Only(ctx)
	switch {
	case err == nil:
		row, err := existing.Update().
			SetPriceID(sub.PriceID).
			SetStatus(sub.Status).
			SetNillableCurrentPeriodEnd(sub.CurrentPeriod).
			Save(ctx)
		if err != nil {
			r.logger.Error("failed to update subscription", "email", sub.CustomerEmail, "error", err)
			return nil, err
		}
		return utils.ToSubscription(row), nil
	case ent.IsNotFound(err):
		row, err := r.client.Subscription.Create().
			SetProfileID(sub.ProfileID).
			SetCustomerEmail(sub.CustomerEmail).
			SetPriceID(sub.PriceID).
			SetStatus(sub.Status).
			SetNillableCurrentPeriodEnd(sub.CurrentPeriod).
			Save(ctx)
		if err != nil {
			r.logger.Error("failed to create subscription", "email", sub.CustomerEmail, "error", err)
			return nil, err
		}
		return utils.ToSubscription(row), nil
	default:
		return nil, err
	}
}

func (r *subscriptionRepository) GetByEmail(ctx context.Context, email string) (*entity.Subscription, error) {
	row, err := r.client.Subscription.Query().
		Where(subscription.CustomerEmail(email)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("subscription %s: %w", email, common.ErrNotFound)
		}
		return nil, err
	}
	return utils.ToSubscription(row), nil
}

// TierRepository reads subscription_tiers rows for gating decisions.
type TierRepository interface {
	GetByName(ctx context.Context, name string) (*entity.SubscriptionTier, error)
}

type tierRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewTierRepository(client *ent.Client, logger *slog.Logger) TierRepository {
	return &tierRepository{client: client, logger: logger}
}

func (r *tierRepository) GetByName(ctx context.Context, name string) (*entity.SubscriptionTier, error) {
	row, err := r.client.SubscriptionTier.Query().
		Where(subscriptiontier.Name(name)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("tier %s: %w", name, common.ErrNotFound)
		}
		return nil, err
	}
	return utils.ToSubscriptionTier(row), nil
}
