package sizechart

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)
	leadingNumber   = regexp.MustCompile(`^\s*[+-]?(\d+(\.\d*)?|\.\d+)`)
	labelNoise      = regexp.MustCompile(`[^\d.]`)
)

// NormalizeBrand lower-cases a brand and collapses every run of other characters to "_",
// so that "Nike", "nike" and "NIKE " compare equal.
func NormalizeBrand(brand string) string {
	return nonAlphanumeric.ReplaceAllString(strings.ToLower(strings.TrimSpace(brand)), "_")
}

// ParseSize reads the leading decimal number of s, ignoring trailing text
// ("9.5 US" -> 9.5, "9.5.1" -> 9.5). ok is false when s does not start with a number.
func ParseSize(s string) (decimal.Decimal, bool) {
	m := leadingNumber.FindString(s)
	if m == "" {
		return decimal.Zero, false
	}
	m = strings.TrimSuffix(strings.TrimSpace(m), ".")
	d, err := decimal.NewFromString(m)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// ParseLabel extracts the size from a variant option label by dropping every character
// that is not a digit or a decimal point. A zero or unparseable label yields ok == false,
// so a literal size "0" is never resolved.
func ParseLabel(label string) (decimal.Decimal, bool) {
	d, ok := ParseSize(labelNoise.ReplaceAllString(label, ""))
	if !ok || d.IsZero() {
		return decimal.Zero, false
	}
	return d, true
}
