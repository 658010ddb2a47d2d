package entity

import (
	"time"

	"github.com/google/uuid"
)

// Invoice represents a persisted invoice for data transfer between layers.
type Invoice struct {
	ID                  uuid.UUID     `json:"id"`
	ProfileID           uuid.UUID     `json:"profile_id"`
	VendorName          *string       `json:"vendor_name,omitempty"`
	InvoiceNumber       *string       `json:"invoice_number,omitempty"`
	InvoiceDate         *time.Time    `json:"invoice_date,omitempty"`
	DueDate             *time.Time    `json:"due_date,omitempty"`
	TotalAmount         *float64      `json:"total_amount,omitempty"`
	Currency            string        `json:"currency"`
	TaxAmount           *float64      `json:"tax_amount,omitempty"`
	Subtotal            *float64      `json:"subtotal,omitempty"`
	DiscountAmount      *float64      `json:"discount_amount,omitempty"`
	AdditionalFees      *float64      `json:"additional_fees,omitempty"`
	PaymentTerms        *string       `json:"payment_terms,omitempty"`
	PurchaseOrderNumber *string       `json:"purchase_order_number,omitempty"`
	BillingAddress      *string       `json:"billing_address,omitempty"`
	ShippingAddress     *string       `json:"shipping_address,omitempty"`
	PaymentMethod       *string       `json:"payment_method,omitempty"`
	Notes               *string       `json:"notes,omitempty"`
	FileURL             string        `json:"file_url"`
	Status              string        `json:"status"`
	Items               []InvoiceItem `json:"items,omitempty"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
}

// InvoiceItem is a single line item on an invoice.
type InvoiceItem struct {
	ID          uuid.UUID `json:"id"`
	InvoiceID   uuid.UUID `json:"invoice_id"`
	Description string    `json:"description"`
	Quantity    *float64  `json:"quantity,omitempty"`
	UnitPrice   *float64  `json:"unit_price,omitempty"`
	Total       *float64  `json:"total,omitempty"`
}
