package merch

import "strings"

// EnvKeyPair names the two configuration entries behind one sellable variant:
// the Printful variant id and the price in euro.
type EnvKeyPair struct {
	VariantKey string
	PriceKey   string
}

// EnvKeys derives the entry names for a (product, size, color) triple. For
// example ("mug", "11oz", "white") ->
// PRINTFUL_MUG_11OZ_WHITE_VARIANT / PRICE_MUG_11OZ_WHITE_EUR.
// Derivation is pure and order-sensitive; empty parts are dropped.
func EnvKeys(product, size, color string) EnvKeyPair {
	parts := make([]string, 0, 3)
	for _, p := range []string{product, size, color} {
		if n := normalize(p); n != "" {
			parts = append(parts, n)
		}
	}
	norm := strings.Join(parts, "_")
	return EnvKeyPair{
		VariantKey: "PRINTFUL_" + norm + "_VARIANT",
		PriceKey:   "PRICE_" + norm + "_EUR",
	}
}

// normalize uppercases one part and collapses every run of characters outside
// [A-Z0-9] into a single underscore, with no leading or trailing underscore.
func normalize(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))

	var b strings.Builder
	b.Grow(len(s))
	pending := false
	for _, r := range s {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			if pending && b.Len() > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r)
			pending = false
		} else {
			pending = true
		}
	}
	return b.String()
}
