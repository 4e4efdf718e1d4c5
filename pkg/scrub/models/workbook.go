package models

// ClientWorkbook is the per-customer output: one sheet per surviving table.
type ClientWorkbook struct {
	// Customer is the name the output artifacts are named after.
	Customer string
	// Sheets are written in order; the first one becomes the active sheet.
	Sheets []Sheet
}

// SheetNames returns the worksheet names in write order.
func (wb *ClientWorkbook) SheetNames() []string {
	names := make([]string, len(wb.Sheets))
	for i, s := range wb.Sheets {
		names[i] = s.Name
	}
	return names
}
