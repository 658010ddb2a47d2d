package extract

// BuildInvoiceJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. We pass this to the model as a structured output constraint and
// also use it locally to validate the response.
func BuildInvoiceJSONSchema() map[string]any {
	item := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"description": map[string]any{"type": "string", "minLength": 1},
			"quantity":    decimalProp(),
			"unit_price":  decimalProp(),
			"total":       decimalProp(),
		},
		"required": []string{"description"},
	}

	props := map[string]any{
		"vendor_name":           map[string]any{"type": "string", "minLength": 1},
		"invoice_number":        map[string]any{"type": "string"},
		"invoice_date":          map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`},
		"due_date":              map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`},
		"total_amount":          decimalProp(),
		"currency":              map[string]any{"type": "string", "minLength": 1},
		"tax_amount":            decimalProp(),
		"subtotal":              decimalProp(),
		"discount_amount":       decimalProp(),
		"additional_fees":       decimalProp(),
		"payment_terms":         map[string]any{"type": "string"},
		"purchase_order_number": map[string]any{"type": "string"},
		"billing_address":       map[string]any{"type": "string"},
		"shipping_address":      map[string]any{"type": "string"},
		"notes":                 map[string]any{"type": "string"},
		"items":                 map[string]any{"type": "array", "items": item},
	}

	required := []string{"vendor_name", "total_amount", "currency"}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             required,
	}
}

func decimalProp() map[string]any {
	return map[string]any{
		"type":    "string",
		"pattern": `^-?\d+(\.\d{1,2})?$`, // allow negatives for discounts
	}
}
