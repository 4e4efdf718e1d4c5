// Package assemble names the client workbook and arranges filtered tables
// into sheets.
package assemble

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ukaji3/itgscrub-go/pkg/scrub/models"
	"github.com/ukaji3/itgscrub-go/pkg/scrub/policy"
)

// MaxSheetName is the longest worksheet name a spreadsheet accepts.
const MaxSheetName = 31

// ErrCustomerName indicates the customer name could not be determined.
var ErrCustomerName = errors.New("cannot determine customer name")

// CustomerName reads the customer from the second column of the first data
// row of t. t must be the unsanitized first table of the export.
func CustomerName(t *models.Table) (string, error) {
	if t == nil || len(t.Rows) == 0 {
		return "", fmt.Errorf("%w: first table has no rows", ErrCustomerName)
	}
	if t.Width() <= policy.CustomerColumn {
		return "", fmt.Errorf("%w: %s has no column %d", ErrCustomerName, t.Name, policy.CustomerColumn+1)
	}

	name := safeFileName(strings.TrimSpace(t.Rows[0][policy.CustomerColumn]))
	if name == "" {
		return "", fmt.Errorf("%w: %s has a blank customer value", ErrCustomerName, t.Name)
	}
	return name, nil
}

// safeFileName replaces characters that cannot appear in a file name.
func safeFileName(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) || strings.ContainsRune(`/\:*?"<>|`, r) {
			return '_'
		}
		return r
	}, s)
}

// Assemble builds the client workbook from filtered tables, keeping their
// order. Tables without columns are left out. When sortRows is set, a table
// whose first column is a sortable label is sorted by it.
func Assemble(customer string, tables []*models.Table, sortRows bool) *models.ClientWorkbook {
	wb := &models.ClientWorkbook{Customer: customer}
	for _, t := range tables {
		if t.Width() == 0 {
			continue
		}
		sheet := models.Sheet{Name: SheetName(t.Name), Table: t}
		if sortRows && policy.IsSortColumn(t.Header[0]) {
			SortRows(t, 0)
			sheet.SortedBy = t.Header[0]
		}
		wb.Sheets = append(wb.Sheets, sheet)
	}
	return wb
}

// SortRows sorts t's rows by column col, ascending and stable.
func SortRows(t *models.Table, col int) {
	sort.SliceStable(t.Rows, func(i, j int) bool {
		return t.Rows[i][col] < t.Rows[j][col]
	})
}

// SheetName truncates a table name to the worksheet name limit.
func SheetName(name string) string {
	if utf8.RuneCountInString(name) <= MaxSheetName {
		return name
	}
	return string([]rune(name)[:MaxSheetName])
}
