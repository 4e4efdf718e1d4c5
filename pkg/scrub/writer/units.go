package writer

import "unicode/utf8"

// MaxWidthChars caps the content length considered for a column's width.
const MaxWidthChars = 50

// WidthPadding and WidthFactor turn a character count into a column width:
// (chars + WidthPadding) * WidthFactor. This matches the widths of
// workbooks produced by earlier releases, so it is not a glyph measurement.
const (
	WidthPadding = 2
	WidthFactor  = 1.2
)

// ColumnWidth converts the longest cell length of a column (in characters)
// to a column width, capping the length at MaxWidthChars.
func ColumnWidth(maxLen int) float64 {
	if maxLen > MaxWidthChars {
		maxLen = MaxWidthChars
	}
	return float64(maxLen+WidthPadding) * WidthFactor
}

// DisplayLength returns the length of a cell as counted for column widths.
func DisplayLength(s string) int {
	return utf8.RuneCountInString(s)
}
