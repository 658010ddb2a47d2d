// Package billing consumes subscription lifecycle events and answers plan
// gating questions.
package billing

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

// ProfileStore is the profile surface billing needs: lookup by the billing
// provider's customer email and tier rewrite.
type ProfileStore interface {
	GetByEmail(ctx context.Context, email string) (*entity.Profile, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
	SetTier(ctx context.Context, profileID uuid.UUID, tier string) error
}

// SubscriptionStore upserts the provider's view of a customer, keyed by email.
type SubscriptionStore interface {
	UpsertByEmail(ctx context.Context, sub *entity.Subscription) (*entity.Subscription, error)
}

// TierStore reads plan metadata rows.
type TierStore interface {
	GetByName(ctx context.Context, name string) (*entity.SubscriptionTier, error)
}

// Tier feature flags stored in subscription_tiers.features.
const (
	FeatureMerge         = "merge"
	FeatureExportFormats = "export_formats"
)

// Event is one subscription lifecycle notification from the billing provider.
type Event struct {
	Type             string     `json:"type"` // subscription.created | subscription.updated | subscription.deleted
	CustomerEmail    string     `json:"customer_email"`
	PriceID          string     `json:"price_id"`
	Status           string     `json:"status"`
	CurrentPeriodEnd *time.Time `json:"current_period_end,omitempty"`
}

// Capabilities is the gating decision set derived from a profile's current
// tier. It is computed fresh per call and must not be cached across
// operations; the webhook may change the tier at any time.
type Capabilities struct {
	Tier               string
	CanMerge           bool
	ExportFormats      bool
	MonthlyExportLimit int
	FileSizeLimitMB    int
}

// Service applies subscription events to profiles and resolves capabilities.
type Service struct {
	profiles      ProfileStore
	subscriptions SubscriptionStore
	tiers         TierStore
	proPriceID    string
	logger        *slog.Logger
}

func NewService(profiles ProfileStore, subscriptions SubscriptionStore, tiers TierStore, proPriceID string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		profiles:      profiles,
		subscriptions: subscriptions,
		tiers:         tiers,
		proPriceID:    proPriceID,
		logger:        logger,
	}
}

// HandleEvent upserts the subscription row and rewrites the owning profile's
// tier. Deleted events force a non-active status regardless of payload.
func (s *Service) HandleEvent(ctx context.Context, ev Event) error {
	if ev.CustomerEmail == "" {
		return fmt.Errorf("event has no customer email: %w", common.ErrInvalidInput)
	}
	profile, err := s.profiles.GetByEmail(ctx, ev.CustomerEmail)
	if err != nil {
		return common.WrapError(err, "resolve profile by email")
	}

	status := ev.Status
	if ev.Type == "subscription.deleted" {
		status = "canceled"
	}

	if _, err := s.subscriptions.UpsertByEmail(ctx, &entity.Subscription{
		ProfileID:     profile.ID,
		CustomerEmail: ev.CustomerEmail,
		PriceID:       ev.PriceID,
		Status:        status,
		CurrentPeriod: ev.CurrentPeriodEnd,
	}); err != nil {
		return common.WrapError(err, "upsert subscription")
	}

	tier := s.resolveTier(status, ev.PriceID)
	if err := s.profiles.SetTier(ctx, profile.ID, tier); err != nil {
		return common.WrapError(err, "rewrite profile tier")
	}

	s.logger.Info("billing.event.ok",
		"type", ev.Type,
		"email", ev.CustomerEmail,
		"status", status,
		"tier", tier,
	)
	return nil
}

// resolveTier maps subscription state to a plan tier: active at the pro price
// is pro, active at any other price is enterprise, everything else is free.
func (s *Service) resolveTier(status, priceID string) string {
	if status != "active" {
		return string(constants.TierFree)
	}
	if priceID == s.proPriceID && s.proPriceID != "" {
		return string(constants.TierPro)
	}
	return string(constants.TierEnterprise)
}

// Capabilities re-reads the profile's tier and resolves its capability set.
// Callers invoke this per gated decision instead of holding on to a result.
func (s *Service) Capabilities(ctx context.Context, profileID uuid.UUID) (*Capabilities, error) {
	profile, err := s.profiles.GetByID(ctx, profileID)
	if err != nil {
		return nil, common.WrapError(err, "resolve profile")
	}

	caps := &Capabilities{Tier: profile.SubscriptionTier}
	tier, err := s.tiers.GetByName(ctx, profile.SubscriptionTier)
	if err != nil || tier == nil {
		// No metadata row: free gets nothing extra, paid tiers get everything.
		if profile.SubscriptionTier != string(constants.TierFree) {
			caps.CanMerge = true
			caps.ExportFormats = true
		}
		return caps, nil
	}

	caps.MonthlyExportLimit = tier.MonthlyExportLimit
	caps.FileSizeLimitMB = tier.FileSizeLimitMB
	for _, f := range tier.Features {
		switch f {
		case FeatureMerge:
			caps.CanMerge = true
		case FeatureExportFormats:
			caps.ExportFormats = true
		}
	}
	return caps, nil
}
