package extract

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	reCurrencyCode = regexp.MustCompile(`^[A-Za-z]{3}$`)
	optMoney       = []string{"subtotal", "tax_amount", "discount_amount", "additional_fees"} // optional only
)

// SanitizeOptionalFields removes or normalizes optional fields that don't meet
// our stricter schema, so the overall document can still validate. We only
// touch OPTIONALS.
func SanitizeOptionalFields(doc []byte) ([]byte, []string, error) {
	var m map[string]any
	if err := json.Unmarshal(doc, &m); err != nil {
		return nil, nil, err
	}

	var dropped []string

	// date-shaped optionals: drop when not YYYY-MM-DD
	reDate := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	for _, k := range []string{"invoice_date", "due_date"} {
		if v, ok := m[k].(string); ok {
			s := strings.TrimSpace(v)
			if !reDate.MatchString(s) {
				delete(m, k)
				dropped = append(dropped, k)
			} else {
				m[k] = s
			}
		}
	}

	// currency: normalize whitespace; uppercase only for 3-letter alphabetic
	// codes, symbols like "$" or "kr." pass through untouched
	if v, ok := m["currency"].(string); ok {
		s := strings.TrimSpace(v)
		if reCurrencyCode.MatchString(s) {
			s = strings.ToUpper(s)
		}
		m["currency"] = s
	}

	for _, k := range optMoney {
		if v, ok := m[k]; ok {
			switch t := v.(type) {
			case nil:
				delete(m, k)
				dropped = append(dropped, k)
			case float64:
				m[k] = fmt.Sprintf("%.2f", t)
			case string:
				s := strings.TrimSpace(t)
				if s == "" || strings.EqualFold(s, "null") {
					delete(m, k)
					dropped = append(dropped, k)
					continue
				}
				// always write back the reformatted value so trimming and
				// decimal-place normalization survive re-validation
				if f, err := strconv.ParseFloat(s, 64); err == nil {
					m[k] = fmt.Sprintf("%.2f", f)
				} else {
					delete(m, k)
					dropped = append(dropped, k)
				}
			default:
				// unknown type -> drop
				delete(m, k)
				dropped = append(dropped, k)
			}
		}
	}

	b, err := json.Marshal(m)
	if err != nil {
		return nil, nil, err
	}
	return b, dropped, nil
}
