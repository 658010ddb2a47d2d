package extract

import (
	"encoding/json"
	"testing"
)

func decode(t *testing.T, b []byte) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatal(err)
	}
	return m
}

func TestSanitizeDropsBadOptionalDates(t *testing.T) {
	in := []byte(`{"vendor_name":"Acme","total_amount":"10.00","currency":"USD","invoice_date":"Jan 15 2024","due_date":"2024-02-01"}`)
	out, dropped, err := SanitizeOptionalFields(in)
	if err != nil {
		t.Fatal(err)
	}
	m := decode(t, out)
	if _, ok := m["invoice_date"]; ok {
		t.Error("malformed invoice_date should be dropped")
	}
	if m["due_date"] != "2024-02-01" {
		t.Errorf("due_date = %v", m["due_date"])
	}
	if len(dropped) != 1 || dropped[0] != "invoice_date" {
		t.Errorf("dropped = %v", dropped)
	}
}

func TestSanitizeNormalizesCurrency(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{" usd ", "USD"},
		{"EUR", "EUR"},
		{"$", "$"},
		{"kr.", "kr."}, // not a 3-letter code, left as-is
	}
	for _, tt := range tests {
		in := []byte(`{"vendor_name":"A","total_amount":"1.00","currency":"` + tt.in + `"}`)
		out, _, err := SanitizeOptionalFields(in)
		if err != nil {
			t.Fatal(err)
		}
		if got := decode(t, out)["currency"]; got != tt.want {
			t.Errorf("currency %q -> %v, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSanitizeCoercesOptionalMoney(t *testing.T) {
	in := []byte(`{"vendor_name":"A","total_amount":"1.00","currency":"USD",` +
		`"subtotal":12.5,"tax_amount":"  3.4 ","discount_amount":null,"additional_fees":"garbage"}`)
	out, dropped, err := SanitizeOptionalFields(in)
	if err != nil {
		t.Fatal(err)
	}
	m := decode(t, out)
	if m["subtotal"] != "12.50" {
		t.Errorf("numeric subtotal should become a decimal string, got %v", m["subtotal"])
	}
	if m["tax_amount"] != "3.40" {
		t.Errorf("tax_amount = %v", m["tax_amount"])
	}
	for _, k := range []string{"discount_amount", "additional_fees"} {
		if _, ok := m[k]; ok {
			t.Errorf("%s should be dropped", k)
		}
	}
	if len(dropped) != 2 {
		t.Errorf("dropped = %v", dropped)
	}
}

func TestSanitizedPayloadValidates(t *testing.T) {
	in := []byte(`{"vendor_name":"Acme","total_amount":"10.00","currency":" usd ",` +
		`"invoice_date":"someday","subtotal":9.99}`)
	schema := BuildInvoiceJSONSchema()

	if err := ValidateJSONAgainstSchema(schema, in); err == nil {
		t.Fatal("raw payload should fail strict validation")
	}
	cleaned, _, err := SanitizeOptionalFields(in)
	if err != nil {
		t.Fatal(err)
	}
	if err := ValidateJSONAgainstSchema(schema, cleaned); err != nil {
		t.Errorf("sanitized payload should validate: %v", err)
	}
}

func TestSchemaRejectsMissingRequired(t *testing.T) {
	schema := BuildInvoiceJSONSchema()
	if err := ValidateJSONAgainstSchema(schema, []byte(`{"vendor_name":"Acme"}`)); err == nil {
		t.Error("payload without total_amount and currency must fail")
	}
	ok := []byte(`{"vendor_name":"Acme","total_amount":"42.50","currency":"$",` +
		`"items":[{"description":"Widget","total":"42.50"}]}`)
	if err := ValidateJSONAgainstSchema(schema, ok); err != nil {
		t.Errorf("well-formed payload must pass: %v", err)
	}
}
