package sizechart

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Resolve finds the first row of brand whose gender-selected scale equals size and
// returns its cross reference. The second result is false when no row matches.
func (t *Table) Resolve(brand string, gender Gender, size decimal.Decimal) (*SizeMapping, bool) {
	if t == nil {
		return nil, false
	}
	for _, i := range t.index[NormalizeBrand(brand)] {
		row := t.rows[i]
		scale := rowScale(row, gender)

		cell, ok := row.Cell(scale)
		if !ok || strings.TrimSpace(cell) == "" {
			continue
		}
		value, ok := ParseSize(cell)
		if !ok || value.IsZero() {
			continue
		}
		// Exact decimal equality; the chart holds literal decimals, not computed values.
		if value.Equal(size) {
			mapping := mappingFromRow(scale, row)
			return &mapping, true
		}
	}
	return nil, false
}

func rowScale(row ReferenceRow, gender Gender) Scale {
	hint := strings.ToUpper(strings.TrimSpace(row.Hints[gender]))
	if hint == "" {
		return DefaultScale
	}
	return Scale(hint)
}
