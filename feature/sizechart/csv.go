package sizechart

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Column names of the chart header.
const (
	ColumnBrand = "Brand"
)

var (
	// ErrEmptyTable is returned when the chart has no header row.
	ErrEmptyTable = errors.New("size chart is empty")
	// ErrMissingColumn is returned when the header lacks the Brand column.
	ErrMissingColumn = errors.New("size chart is missing a required column")
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ParseCSV reads a size chart with a header row (Brand, UOMO, DONNA, US, USW, UK, EUR, CM).
// Header names are matched case-insensitively; unknown columns are ignored and rows with a
// blank Brand are dropped.
func ParseCSV(r io.Reader) ([]ReferenceRow, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	reader := csv.NewReader(br)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyTable
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read size chart header: %w", err)
	}

	cols := mapColumns(header)
	brandCol, ok := cols[strings.ToUpper(ColumnBrand)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, ColumnBrand)
	}

	var rows []ReferenceRow
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("failed to read size chart line %d: %w", line, err)
		}

		brand := field(record, brandCol)
		if strings.TrimSpace(brand) == "" {
			continue
		}

		row := ReferenceRow{
			Brand:  brand,
			Scales: make(map[Scale]string, len(Scales)),
			Hints:  make(map[Gender]string, 2),
		}
		for _, scale := range Scales {
			if idx, ok := cols[string(scale)]; ok {
				row.Scales[scale] = field(record, idx)
			}
		}
		for _, gender := range []Gender{GenderMale, GenderFemale} {
			if idx, ok := cols[gender.Column()]; ok {
				row.Hints[gender] = field(record, idx)
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func mapColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ToUpper(strings.TrimSpace(name))
		if _, seen := cols[key]; !seen {
			cols[key] = i
		}
	}
	return cols
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return record[idx]
}
