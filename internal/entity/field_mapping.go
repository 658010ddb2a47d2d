package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// FieldMapping represents a user-owned canonical field definition.
type FieldMapping struct {
	ID                uuid.UUID       `json:"id"`
	ProfileID         uuid.UUID       `json:"profile_id"`
	FieldName         string          `json:"field_name"`
	ValidationKind    *string         `json:"validation_kind,omitempty"`
	ValidationPattern *string         `json:"validation_pattern,omitempty"`
	ValidationMessage *string         `json:"validation_message,omitempty"`
	Required          bool            `json:"required"`
	CustomRules       json.RawMessage `json:"custom_rules,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}
