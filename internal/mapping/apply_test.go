package mapping

import (
	"testing"

	"github.com/seyi-ajadi/invoiceflow/internal/extract"
)

func TestApplyMappings(t *testing.T) {
	raw := extract.FieldSet{
		"Vendor":  "Acme Corp",
		"Total":   "42.50",
		"Remarks": "net 30",
	}
	mapped := map[string]string{
		"Vendor":  "vendor_name",
		"Total":   "total_amount",
		"Remarks": "unmapped",
	}

	out := ApplyMappings(raw, mapped, nil)

	if out["vendor_name"] != "Acme Corp" {
		t.Errorf("vendor_name = %v", out["vendor_name"])
	}
	if out["total_amount"] != "42.50" {
		t.Errorf("total_amount = %v", out["total_amount"])
	}
	if _, ok := out["Remarks"]; ok {
		t.Error("unmapped key should be discarded")
	}
	if len(out) != 2 {
		t.Errorf("expected 2 fields, got %d", len(out))
	}
}

func TestApplyMappingsExclusions(t *testing.T) {
	raw := extract.FieldSet{"Vendor": "Acme", "Total": "10.00"}
	mapped := map[string]string{"Vendor": "vendor_name", "Total": "total_amount"}
	excl := map[string]struct{}{"Total": {}}

	out := ApplyMappings(raw, mapped, excl)
	if _, ok := out["total_amount"]; ok {
		t.Error("excluded key must not be copied")
	}
	if out["vendor_name"] != "Acme" {
		t.Error("non-excluded key should survive")
	}
}

func TestApplyMappingsFirstWins(t *testing.T) {
	// Both raw keys target total_amount; sorted order makes "Amount Due" the
	// first visitor, and first wins.
	raw := extract.FieldSet{
		"Total Due":  "99.99",
		"Amount Due": "11.11",
	}
	mapped := map[string]string{
		"Total Due":  "total_amount",
		"Amount Due": "total_amount",
	}

	for i := 0; i < 20; i++ {
		out := ApplyMappings(raw, mapped, nil)
		if out["total_amount"] != "11.11" {
			t.Fatalf("run %d: total_amount = %v, want first (sorted) key's value", i, out["total_amount"])
		}
	}
}

func TestApplyMappingsCustomTarget(t *testing.T) {
	raw := extract.FieldSet{"VAT ID": "DE123456"}
	mapped := map[string]string{"VAT ID": "tax_registration"}

	out := ApplyMappings(raw, mapped, nil)
	if out["tax_registration"] != "DE123456" {
		t.Errorf("custom target should be carried verbatim, got %v", out)
	}
}
