package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile represents an owning user account for data transfer between layers.
type Profile struct {
	ID               uuid.UUID `json:"id"`
	Email            string    `json:"email"`
	Name             string    `json:"name"`
	SubscriptionTier string    `json:"subscription_tier"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// SubscriptionTier carries plan metadata for gating decisions.
type SubscriptionTier struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	MonthlyExportLimit int       `json:"monthly_export_limit"`
	FileSizeLimitMB    int       `json:"file_size_limit_mb"`
	Features           []string  `json:"features"`
}

// Subscription mirrors the billing provider's view of a customer.
type Subscription struct {
	ID            uuid.UUID  `json:"id"`
	ProfileID     uuid.UUID  `json:"profile_id"`
	CustomerEmail string     `json:"customer_email"`
	PriceID       string     `json:"price_id"`
	Status        string     `json:"status"`
	CurrentPeriod *time.Time `json:"current_period_end,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
