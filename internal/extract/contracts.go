package extract

import (
	"context"
	"encoding/json"
)

// LineItem is one row of an invoice's item table.
type LineItem struct {
	Description string `json:"description"`
	Quantity    string `json:"quantity,omitempty"`   // decimal
	UnitPrice   string `json:"unit_price,omitempty"` // decimal
	Total       string `json:"total,omitempty"`      // decimal
}

// InvoiceFields is the normalized shape we want from the oracle.
type InvoiceFields struct {
	VendorName          string     `json:"vendor_name"`
	InvoiceNumber       string     `json:"invoice_number,omitempty"`
	InvoiceDate         string     `json:"invoice_date,omitempty"` // YYYY-MM-DD
	DueDate             string     `json:"due_date,omitempty"`     // YYYY-MM-DD
	TotalAmount         string     `json:"total_amount"`           // decimal
	Currency            string     `json:"currency"`               // code or symbol, best effort
	TaxAmount           string     `json:"tax_amount,omitempty"`   // decimal
	Subtotal            string     `json:"subtotal,omitempty"`     // decimal
	DiscountAmount      string     `json:"discount_amount,omitempty"`
	AdditionalFees      string     `json:"additional_fees,omitempty"`
	PaymentTerms        string     `json:"payment_terms,omitempty"`
	PurchaseOrderNumber string     `json:"purchase_order_number,omitempty"`
	BillingAddress      string     `json:"billing_address,omitempty"`
	ShippingAddress     string     `json:"shipping_address,omitempty"`
	Notes               string     `json:"notes,omitempty"`
	Items               []LineItem `json:"items,omitempty"`
}

// FieldSet is the raw extracted payload: raw field key -> value. It exists
// only between extraction and mapping; it is never persisted.
type FieldSet map[string]any

// Keys returns the raw field keys. Order is unspecified; callers that need
// determinism sort.
func (fs FieldSet) Keys() []string {
	keys := make([]string, 0, len(fs))
	for k := range fs {
		keys = append(keys, k)
	}
	return keys
}

// ToFieldSet decodes the validated raw JSON into a FieldSet.
func ToFieldSet(raw []byte) (FieldSet, error) {
	var fs FieldSet
	if err := json.Unmarshal(raw, &fs); err != nil {
		return nil, err
	}
	return fs, nil
}

// ExtractRequest carries everything the oracle call needs.
type ExtractRequest struct {
	DocumentURL     string // public URL of the stored upload
	FilenameHint    string
	DefaultCurrency string
}

// DocumentExtractor is the interface the ingestion pipeline depends on.
// Implementations either return a payload that validated against the declared
// schema, or fail the whole extraction; there is no partial success.
type DocumentExtractor interface {
	ExtractFields(ctx context.Context, req ExtractRequest) (InvoiceFields, []byte /*rawJSON*/, error)
}
