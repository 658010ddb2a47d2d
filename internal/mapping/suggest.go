package mapping

import (
	"strings"

	"github.com/seyi-ajadi/invoiceflow/constants"
)

// suggestionRule pairs a predicate over the raw key with a target canonical
// field. Rules are evaluated top to bottom; the first match wins. New
// heuristics are added to the table, not the control flow.
type suggestionRule struct {
	keywords []string // case-insensitive substring match, any-of
	target   string
}

var suggestionRules = []suggestionRule{
	{keywords: []string{"vendor"}, target: constants.FieldVendorName},
	{keywords: []string{"amount", "total"}, target: constants.FieldTotalAmount},
	{keywords: []string{"date"}, target: constants.FieldInvoiceDate},
	{keywords: []string{"number"}, target: constants.FieldInvoiceNumber},
}

// SuggestMappings proposes a canonical field for each raw extracted key.
// Pure function of the key strings: identical input always yields identical
// output. Keys with no matching rule map to constants.Unmapped.
func SuggestMappings(rawKeys []string) map[string]string {
	out := make(map[string]string, len(rawKeys))
	for _, key := range rawKeys {
		out[key] = suggestOne(key)
	}
	return out
}

func suggestOne(rawKey string) string {
	lower := strings.ToLower(rawKey)
	for _, rule := range suggestionRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.target
			}
		}
	}
	return constants.Unmapped
}
