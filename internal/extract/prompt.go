package extract

import "strings"

// BuildSystemPrompt composes the fixed system instruction enumerating the
// exact field set the oracle must extract.
func BuildSystemPrompt(req ExtractRequest) string {
	defCur := strings.TrimSpace(req.DefaultCurrency)
	if defCur == "" {
		defCur = "USD"
	}

	parts := []string{
		"You are an invoice parser. Return ONLY JSON that matches the provided JSON Schema.",
		"Extract: vendor_name, invoice_number, invoice_date, due_date, total_amount, currency, " +
			"payment_terms, purchase_order_number, billing_address, shipping_address, notes, " +
			"tax_amount, subtotal, discount_amount, additional_fees, and the line items " +
			"({description, quantity, unit_price, total}) if an item table is visible.",
		"Use ISO-8601 dates (YYYY-MM-DD).",
		"All money fields are decimal strings without thousands separators.",
		"For 'currency', report the symbol or code as printed on the document; default to " + defCur + " if uncertain.",
		"If taxes appear, put them in 'tax_amount' (never in 'additional_fees').",
		"Sum non-tax surcharges (shipping, handling, service fees) into 'additional_fees'.",
		"Include 'discount_amount' if visible (positive amount representing the discount magnitude).",
		"Never output null. If a field is not present, omit it.",
	}
	return strings.Join(parts, " ")
}

// BuildUserPrompt packages the filename hint. The document itself is attached
// as an image/file content part, so no text rendition is inlined here.
func BuildUserPrompt(req ExtractRequest) string {
	var b strings.Builder
	if fn := strings.TrimSpace(req.FilenameHint); fn != "" {
		b.WriteString("Filename: ")
		b.WriteString(fn)
		b.WriteString("\n")
	}
	b.WriteString("The invoice document is attached. Read every visible field and return the JSON object.")
	return b.String()
}
