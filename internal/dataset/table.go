package dataset

import (
	"golang.org/x/text/cases"
)

// Column describes one header cell.
type Column struct {
	// Header is the header text as written in the file (trimmed).
	Header string

	// Occurrence is the 1-based count of how many times Header has been seen
	// when scanning the header row left to right.
	Occurrence int

	// Name is the field identifier used to address the column.
	// It starts as Header for the first occurrence and Header.N for later
	// ones, and is replaced by Normalize.
	Name string
}

// Table is the raw, string-typed weapon table.
type Table struct {
	// Columns are the header cells in file order.
	Columns []Column

	// Rows hold one slice of cell values per data line, aligned with Columns.
	Rows [][]string

	index map[string]int
	fold  cases.Caser
}

// newTable creates a table from a header row, assigning occurrence indexes.
func newTable(header []string) *Table {
	seen := make(map[string]int, len(header))
	cols := make([]Column, len(header))
	for i, h := range header {
		seen[h]++
		cols[i] = Column{
			Header:     h,
			Occurrence: seen[h],
			Name:       occurrenceName(h, seen[h]),
		}
	}

	t := &Table{Columns: cols, fold: cases.Fold()}
	t.reindex()
	return t
}

// reindex rebuilds the name lookup. The first column wins on duplicate names.
func (t *Table) reindex() {
	t.index = make(map[string]int, len(t.Columns))
	for i, c := range t.Columns {
		if _, ok := t.index[c.Name]; !ok {
			t.index[c.Name] = i
		}
	}
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Names returns the current column names in file order.
func (t *Table) Names() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Index returns the position of the named column.
// An exact match is preferred; otherwise names are compared case-insensitively.
func (t *Table) Index(name string) (int, bool) {
	if i, ok := t.index[name]; ok {
		return i, true
	}
	want := t.fold.String(name)
	for i, c := range t.Columns {
		if t.fold.String(c.Name) == want {
			return i, true
		}
	}
	return -1, false
}

// Has reports whether the named column exists.
func (t *Table) Has(name string) bool {
	_, ok := t.Index(name)
	return ok
}

// Value returns the cell of the given row in the named column.
func (t *Table) Value(row int, name string) (string, bool) {
	i, ok := t.Index(name)
	if !ok || row < 0 || row >= len(t.Rows) {
		return "", false
	}
	return t.Rows[row][i], true
}
