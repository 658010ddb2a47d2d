package validation

import (
	"testing"

	"github.com/seyi-ajadi/invoiceflow/internal/entity"
)

func ruleOf(kind string) *entity.FieldMapping {
	k := kind
	return &entity.FieldMapping{FieldName: "f", ValidationKind: &k}
}

func TestDefaultPatterns(t *testing.T) {
	tests := []struct {
		kind  string
		value string
		valid bool
	}{
		{KindEmail, "a@b.co", true},
		{KindEmail, "user.name@example.com", true},
		{KindEmail, "not-an-email", false},
		{KindEmail, "a@b", false},

		{KindPhone, "+4915112345678", true},
		{KindPhone, "12345", true},
		{KindPhone, "0123", false},
		{KindPhone, "phone", false},

		{KindDate, "2024-01-15", true},
		{KindDate, "2024-12-31", true},
		{KindDate, "2024-13-40", false},
		{KindDate, "15/01/2024", false},

		{KindNumber, "42", true},
		{KindNumber, "-3.14159", true},
		{KindNumber, "1.2.3", false},
		{KindNumber, "abc", false},

		{KindCurrency, "42.50", true},
		{KindCurrency, "$42.50", true},
		{KindCurrency, "€100", true},
		{KindCurrency, "42.5", false},
		{KindCurrency, "$-5.00", false},
	}
	for _, tt := range tests {
		got := Validate(tt.value, ruleOf(tt.kind))
		if got.Valid != tt.valid {
			t.Errorf("Validate(%q, %s) = %v, want %v", tt.value, tt.kind, got.Valid, tt.valid)
		}
	}
}

func TestNoRuleAlwaysValid(t *testing.T) {
	if got := Validate("anything", nil); !got.Valid {
		t.Error("nil mapping must pass")
	}
	if got := Validate("anything", &entity.FieldMapping{FieldName: "f"}); !got.Valid {
		t.Error("absent kind must pass")
	}
}

func TestCustomPattern(t *testing.T) {
	kind := KindPattern
	pattern := `^INV-\d{3}$`
	m := &entity.FieldMapping{FieldName: "invoice_number", ValidationKind: &kind, ValidationPattern: &pattern}

	if got := Validate("INV-001", m); !got.Valid {
		t.Error("matching value should pass")
	}
	if got := Validate("001", m); got.Valid {
		t.Error("non-matching value should fail")
	}
}

func TestInvalidOrEmptyPatternIsInert(t *testing.T) {
	kind := KindPattern
	bad := `([unclosed`
	m := &entity.FieldMapping{FieldName: "f", ValidationKind: &kind, ValidationPattern: &bad}
	if got := Validate("whatever", m); !got.Valid {
		t.Error("uncompilable pattern must degrade to always-valid")
	}

	empty := ""
	m.ValidationPattern = &empty
	if got := Validate("whatever", m); !got.Valid {
		t.Error("empty pattern must degrade to always-valid")
	}
}

func TestCustomMessage(t *testing.T) {
	kind := KindEmail
	msg := "please enter a valid email"
	m := &entity.FieldMapping{FieldName: "contact", ValidationKind: &kind, ValidationMessage: &msg}

	got := Validate("nope", m)
	if got.Valid {
		t.Fatal("expected failure")
	}
	if got.Message != msg {
		t.Errorf("message = %q, want custom message", got.Message)
	}

	m.ValidationMessage = nil
	got = Validate("nope", m)
	if got.Message != "invalid value for field" {
		t.Errorf("generic message = %q", got.Message)
	}
}
