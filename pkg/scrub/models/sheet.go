package models

// Sheet is a table ready to be written as one worksheet.
type Sheet struct {
	// Name is the worksheet name.
	Name string
	// Table holds the header and rows to write.
	Table *Table
	// SortedBy is the header the rows were sorted by, empty when unsorted.
	SortedBy string
}
