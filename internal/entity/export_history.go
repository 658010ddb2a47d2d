package entity

import (
	"time"

	"github.com/google/uuid"
)

// ExportHistory represents one completed (or in-flight) export or merge.
type ExportHistory struct {
	ID           uuid.UUID   `json:"id"`
	ProfileID    uuid.UUID   `json:"profile_id"`
	InvoiceIDs   []uuid.UUID `json:"invoice_ids"`
	ExportType   string      `json:"export_type"`
	FileName     string      `json:"file_name"`
	FileSize     *int64      `json:"file_size,omitempty"`
	FileURL      *string     `json:"file_url,omitempty"`
	Status       string      `json:"status"`
	ErrorMessage *string     `json:"error_message,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
