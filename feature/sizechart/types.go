package sizechart

import (
	"fmt"
	"strings"
)

// Scale is a sizing system.
type Scale string

const (
	ScaleUS  Scale = "US"
	ScaleUSW Scale = "USW"
	ScaleUK  Scale = "UK"
	ScaleEUR Scale = "EUR"
	ScaleCM  Scale = "CM"
)

// Scales lists every known scale in mapping order.
var Scales = []Scale{ScaleUS, ScaleUSW, ScaleUK, ScaleEUR, ScaleCM}

// DefaultScale applies when a row carries no hint for the requested gender.
const DefaultScale = ScaleUS

// Gender selects which hint column of the chart applies.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

// Column returns the chart column holding the scale hint for g.
func (g Gender) Column() string {
	switch g {
	case GenderMale:
		return "UOMO"
	case GenderFemale:
		return "DONNA"
	default:
		return ""
	}
}

// ParseGender accepts the category names, the chart column names and common aliases.
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "man", "men", "uomo", "m":
		return GenderMale, nil
	case "female", "woman", "women", "donna", "f":
		return GenderFemale, nil
	default:
		return "", fmt.Errorf("unknown gender %q", s)
	}
}

// ReferenceRow is one brand/size point of the chart. Cells keep their raw text.
type ReferenceRow struct {
	Brand  string
	Scales map[Scale]string
	Hints  map[Gender]string
}

// Cell returns the raw cell for scale s.
func (r ReferenceRow) Cell(s Scale) (string, bool) {
	v, ok := r.Scales[s]
	return v, ok
}

// SizeMapping is a resolved cross reference. Empty strings mean no value.
type SizeMapping struct {
	ScaleMatched Scale  `json:"scale_matched"`
	US           string `json:"us"`
	USW          string `json:"usw"`
	UK           string `json:"uk"`
	EUR          string `json:"eur"`
	CM           string `json:"cm"`
}

// Value returns the mapping's value for scale s.
func (m SizeMapping) Value(s Scale) string {
	switch s {
	case ScaleUS:
		return m.US
	case ScaleUSW:
		return m.USW
	case ScaleUK:
		return m.UK
	case ScaleEUR:
		return m.EUR
	case ScaleCM:
		return m.CM
	default:
		return ""
	}
}

func mappingFromRow(scale Scale, row ReferenceRow) SizeMapping {
	return SizeMapping{
		ScaleMatched: scale,
		US:           row.Scales[ScaleUS],
		USW:          row.Scales[ScaleUSW],
		UK:           row.Scales[ScaleUK],
		EUR:          row.Scales[ScaleEUR],
		CM:           row.Scales[ScaleCM],
	}
}
