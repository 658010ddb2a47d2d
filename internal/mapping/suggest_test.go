package mapping

import (
	"reflect"
	"testing"
)

func TestSuggestMappings(t *testing.T) {
	tests := []struct {
		rawKey string
		want   string
	}{
		{"Vendor Name", "vendor_name"},
		{"VENDOR", "vendor_name"},
		{"Total Amount", "total_amount"},
		{"amount_due", "total_amount"},
		{"grand total", "total_amount"},
		{"Invoice Date", "invoice_date"},
		{"due date", "invoice_date"},
		{"Invoice Number", "invoice_number"},
		{"PO Number", "invoice_number"},
		{"Remarks", "unmapped"},
		{"", "unmapped"},
	}
	for _, tt := range tests {
		got := SuggestMappings([]string{tt.rawKey})
		if got[tt.rawKey] != tt.want {
			t.Errorf("SuggestMappings(%q) = %q, want %q", tt.rawKey, got[tt.rawKey], tt.want)
		}
	}
}

func TestSuggestMappingsDeterministic(t *testing.T) {
	keys := []string{"Vendor", "Total Due", "Issue Date", "Ref Number", "Misc"}
	first := SuggestMappings(keys)
	for i := 0; i < 50; i++ {
		if again := SuggestMappings(keys); !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differed: %v vs %v", i, again, first)
		}
	}
}

func TestSuggestFirstRuleWins(t *testing.T) {
	// "total amount date" matches both the amount and date rules; the amount
	// rule sits earlier in the table.
	got := SuggestMappings([]string{"total amount date"})
	if got["total amount date"] != "total_amount" {
		t.Errorf("expected earlier rule to win, got %q", got["total amount date"])
	}
}
