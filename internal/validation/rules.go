// Package validation evaluates field values against user-configured rules.
package validation

import (
	"regexp"

	"github.com/seyi-ajadi/invoiceflow/internal/entity"
)

// Rule kinds. "pattern" uses the user-supplied regex verbatim; the typed kinds
// fall back to a fixed default pattern when none is supplied.
const (
	KindNone     = ""
	KindPattern  = "pattern"
	KindEmail    = "email"
	KindPhone    = "phone"
	KindDate     = "date"
	KindNumber   = "number"
	KindCurrency = "currency"
)

// Default patterns per rule kind.
var defaultPatterns = map[string]*regexp.Regexp{
	KindEmail:    regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[A-Za-z]{2,4}$`),
	KindPhone:    regexp.MustCompile(`^\+?[1-9]\d{1,14}$`),
	KindDate:     regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])-(0[1-9]|[12]\d|3[01])$`),
	KindNumber:   regexp.MustCompile(`^-?\d+(\.\d+)?$`),
	KindCurrency: regexp.MustCompile(`^\p{Sc}?\d+(\.\d{2})?$`),
}

const genericMessage = "invalid value for field"

// Result is the outcome of evaluating one value.
type Result struct {
	Valid   bool
	Message string // empty when valid
}

// Validate evaluates value against the mapping's rule. An absent kind, or a
// pattern rule whose regex is empty or does not compile, is inert and always
// passes.
func Validate(value string, m *entity.FieldMapping) Result {
	if m == nil || m.ValidationKind == nil {
		return Result{Valid: true}
	}

	re := resolvePattern(*m.ValidationKind, strPtr(m.ValidationPattern))
	if re == nil {
		return Result{Valid: true}
	}
	if re.MatchString(value) {
		return Result{Valid: true}
	}

	msg := genericMessage
	if m.ValidationMessage != nil && *m.ValidationMessage != "" {
		msg = *m.ValidationMessage
	}
	return Result{Valid: false, Message: msg}
}

// resolvePattern picks the regex for a rule: the custom pattern when present
// and compilable, else the kind's default, else nil (no validation).
func resolvePattern(kind, custom string) *regexp.Regexp {
	if custom != "" {
		if re, err := regexp.Compile(custom); err == nil {
			return re
		}
		// invalid custom pattern degrades to "no validation"
		if kind == KindPattern {
			return nil
		}
	}
	if kind == KindPattern {
		return nil
	}
	return defaultPatterns[kind]
}

func strPtr(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
