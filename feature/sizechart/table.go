package sizechart

// Table is an immutable, brand-indexed snapshot of the size chart.
// It is safe for concurrent use.
type Table struct {
	rows  []ReferenceRow
	index map[string][]int
}

// NewTable indexes rows by normalized brand, keeping load order inside each brand.
func NewTable(rows []ReferenceRow) *Table {
	t := &Table{
		rows:  rows,
		index: make(map[string][]int),
	}
	for i, row := range rows {
		key := NormalizeBrand(row.Brand)
		t.index[key] = append(t.index[key], i)
	}
	return t
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

// Brands returns the number of distinct normalized brands.
func (t *Table) Brands() int {
	if t == nil {
		return 0
	}
	return len(t.index)
}
