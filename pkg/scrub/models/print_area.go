package models

// PrintArea represents cell coordinate bounds of a written table.
type PrintArea struct {
	// R1 is the start row (1-based).
	R1 int
	// C1 is the start column (1-based).
	C1 int
	// R2 is the end row (1-based, inclusive).
	R2 int
	// C2 is the end column (1-based, inclusive).
	C2 int
}

// TableArea returns the bounds of a table written at A1 with its header.
// A table without data rows still spans one empty row below the header,
// since a spreadsheet table needs at least one body row.
func TableArea(t *Table) PrintArea {
	rows := len(t.Rows)
	if rows == 0 {
		rows = 1
	}
	return PrintArea{R1: 1, C1: 1, R2: rows + 1, C2: t.Width()}
}
