// Package models defines the tabular data passed between pipeline stages.
package models

// Table is one CSV export held in memory.
type Table struct {
	// Name is the source file base name without extension (e.g. "configurations").
	Name string
	// Header holds the column names in file order.
	Header []string
	// Rows holds the data rows; every row has len(Header) cells.
	Rows [][]string
}

// ColumnIndex returns the position of the first column with the given name,
// or -1 when the table has no such column.
func (t *Table) ColumnIndex(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// Width returns the number of columns.
func (t *Table) Width() int {
	return len(t.Header)
}

