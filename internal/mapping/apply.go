package mapping

import (
	"sort"

	"github.com/seyi-ajadi/invoiceflow/constants"
	"github.com/seyi-ajadi/invoiceflow/internal/extract"
)

// ApplyMappings copies values from the raw field set into their mapped
// canonical names. Excluded keys and keys mapped to Unmapped are discarded.
// Custom free-text targets are carried through verbatim.
//
// When two raw keys map to the same canonical name, the first wins, with raw
// keys visited in sorted order so the result never depends on map iteration
// order.
func ApplyMappings(raw extract.FieldSet, mapped map[string]string, exclusions map[string]struct{}) extract.FieldSet {
	keys := raw.Keys()
	sort.Strings(keys)

	out := make(extract.FieldSet, len(keys))
	for _, key := range keys {
		if _, excluded := exclusions[key]; excluded {
			continue
		}
		target, ok := mapped[key]
		if !ok || target == "" || target == constants.Unmapped {
			continue
		}
		if _, taken := out[target]; taken {
			continue
		}
		out[target] = raw[key]
	}
	return out
}
