package writer

import (
	"fmt"
	"strconv"

	"github.com/ukaji3/itgscrub-go/pkg/scrub/models"
	"github.com/xuri/excelize/v2"
)

// TableStyle is the built-in style applied to every sheet table.
const TableStyle = "TableStyleMedium9"

// rangeRef converts an area to a reference such as "A1:D10".
func rangeRef(area models.PrintArea) (string, error) {
	startCell, err := excelize.CoordinatesToCellName(area.C1, area.R1)
	if err != nil {
		return "", err
	}
	endCell, err := excelize.CoordinatesToCellName(area.C2, area.R2)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%s", startCell, endCell), nil
}

// absoluteRef converts an area to an absolute, sheet-qualified reference
// such as 'lan'!$A$1:$D$10.
func absoluteRef(sheet string, area models.PrintArea) (string, error) {
	startCell, err := excelize.CoordinatesToCellName(area.C1, area.R1, true)
	if err != nil {
		return "", err
	}
	endCell, err := excelize.CoordinatesToCellName(area.C2, area.R2, true)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("'%s'!%s:%s", sheet, startCell, endCell), nil
}

// columnLengths returns, per column, the longest display length over the
// header and all data cells.
func columnLengths(t *models.Table) []int {
	lengths := make([]int, t.Width())
	for colIdx, h := range t.Header {
		lengths[colIdx] = DisplayLength(h)
	}
	for _, row := range t.Rows {
		for colIdx, cell := range row {
			if colIdx >= len(lengths) {
				break
			}
			if l := DisplayLength(cell); l > lengths[colIdx] {
				lengths[colIdx] = l
			}
		}
	}
	return lengths
}

// tableHeader returns header labels usable as table column names: blank
// labels get a placeholder and repeated labels get a numeric suffix, since
// a spreadsheet table rejects both.
func tableHeader(header []string) []string {
	out := make([]string, len(header))
	seen := make(map[string]int, len(header))
	for i, h := range header {
		if h == "" {
			h = "Column" + strconv.Itoa(i+1)
		}
		seen[h]++
		if n := seen[h]; n > 1 {
			h = h + " " + strconv.Itoa(n)
		}
		out[i] = h
	}
	return out
}

// tableName returns the workbook-unique name of the n-th table (1-based).
func tableName(n int) string {
	return "Table" + strconv.Itoa(n)
}
