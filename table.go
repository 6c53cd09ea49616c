package folio

import (
	"fmt"
	"strconv"
	"strings"
)

// Table is a raw 2-D grid of string cells, exactly as handed over by the
// spreadsheet reader. Rows may have different lengths, the header position
// is unknown, and numeric cells are still strings.
type Table [][]string

// Rows returns the number of rows in the table.
func (t Table) Rows() int { return len(t) }

// Cell returns the cell at (row, col), or "" when the coordinates fall
// outside the grid. Ragged rows are common in real exports, so out-of-range
// access is not an error.
func (t Table) Cell(row, col int) string {
	if row < 0 || row >= len(t) {
		return ""
	}
	r := t[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// RowString returns the whole row joined into a single string. It is used
// by the format detector for its sentinel substring search.
func (t Table) RowString(row int) string {
	if row < 0 || row >= len(t) {
		return ""
	}
	return strings.Join(t[row], " ")
}

// RowEmpty reports whether every cell of the row is blank.
func (t Table) RowEmpty(row int) bool {
	if row < 0 || row >= len(t) {
		return true
	}
	for _, c := range t[row] {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// columnIndex returns the position of the column whose header cell equals
// label on the given header row, or -1.
func (t Table) columnIndex(headerRow int, label string) int {
	if headerRow < 0 || headerRow >= len(t) {
		return -1
	}
	for i, c := range t[headerRow] {
		if strings.TrimSpace(c) == label {
			return i
		}
	}
	return -1
}

// ParseNumber parses a numeric cell. Exports from Italian brokers commonly
// use a decimal comma and a dot as thousands separator ("1.234,56"), while
// re-saved files use plain machine formatting ("1234.56"). Currency symbols
// and spaces are ignored.
func ParseNumber(cell string) (float64, error) {
	s := strings.TrimSpace(cell)
	s = strings.Trim(s, "€$£ ")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.TrimSuffix(s, "%")
	if s == "" {
		return 0, fmt.Errorf("empty numeric cell")
	}
	if strings.Contains(s, ",") {
		// decimal comma: any dot is a thousands separator
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("cannot parse %q as a number: %w", cell, err)
	}
	return v, nil
}
