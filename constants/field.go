package constants

// Canonical invoice field names. Extracted raw keys are mapped onto these
// slots; users may also map onto free-text names not listed here.
const (
	FieldVendorName          = "vendor_name"
	FieldInvoiceNumber       = "invoice_number"
	FieldInvoiceDate         = "invoice_date"
	FieldDueDate             = "due_date"
	FieldTotalAmount         = "total_amount"
	FieldCurrency            = "currency"
	FieldTaxAmount           = "tax_amount"
	FieldSubtotal            = "subtotal"
	FieldDiscountAmount      = "discount_amount"
	FieldAdditionalFees      = "additional_fees"
	FieldPaymentTerms        = "payment_terms"
	FieldPurchaseOrderNumber = "purchase_order_number"
	FieldBillingAddress      = "billing_address"
	FieldShippingAddress     = "shipping_address"
	FieldPaymentMethod       = "payment_method"
	FieldNotes               = "notes"
)

// Unmapped is the sentinel target for raw keys with no suggested canonical field.
const Unmapped = "unmapped"

// KnownFields lists the fixed field-type slots in display order.
var KnownFields = []string{
	FieldVendorName,
	FieldInvoiceNumber,
	FieldInvoiceDate,
	FieldDueDate,
	FieldTotalAmount,
	FieldCurrency,
	FieldTaxAmount,
	FieldSubtotal,
	FieldDiscountAmount,
	FieldAdditionalFees,
	FieldPaymentTerms,
	FieldPurchaseOrderNumber,
	FieldBillingAddress,
	FieldShippingAddress,
	FieldPaymentMethod,
	FieldNotes,
}
