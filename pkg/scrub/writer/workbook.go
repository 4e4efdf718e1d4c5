// Package writer renders a client workbook to an .xlsx file: one formatted
// table per sheet with a frozen, styled header row and content-fit widths.
package writer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ukaji3/itgscrub-go/pkg/scrub/models"
	"github.com/xuri/excelize/v2"
)

// ErrStaleWorkbook indicates an existing workbook at the target path could
// not be removed.
var ErrStaleWorkbook = errors.New("cannot replace existing workbook")

const defaultSheet = "Sheet1"

// Write renders wb to path. An existing file at path is removed first; if
// that fails, nothing is written and the error wraps ErrStaleWorkbook.
// The workbook is saved to a temporary file next to path and renamed into
// place, so path never holds a partially written workbook.
func Write(wb *models.ClientWorkbook, path string) error {
	if err := removeStale(path); err != nil {
		return err
	}

	f, err := Build(wb)
	if err != nil {
		return err
	}
	defer f.Close()

	tmp, err := os.CreateTemp(filepath.Dir(path), ".itgscrub-*.xlsx")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if err := f.Write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

func removeStale(path string) error {
	err := os.Remove(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("%w %s: %w", ErrStaleWorkbook, path, err)
}

// Build lays out wb in a new in-memory workbook. The caller must Close it.
// A workbook without sheets keeps a single empty default sheet.
func Build(wb *models.ClientWorkbook) (*excelize.File, error) {
	f := excelize.NewFile()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
	})
	if err != nil {
		f.Close()
		return nil, err
	}

	for i, sheet := range wb.Sheets {
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, sheet.Name); err != nil {
				f.Close()
				return nil, err
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			f.Close()
			return nil, err
		}

		if err := writeSheet(f, sheet, i+1, headerStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("sheet %s: %w", sheet.Name, err)
		}
	}
	f.SetActiveSheet(0)

	return f, nil
}

// writeSheet writes one table with its formatting. n numbers the table
// within the workbook.
func writeSheet(f *excelize.File, sheet models.Sheet, n, headerStyle int) error {
	t := sheet.Table
	header := tableHeader(t.Header)

	if err := f.SetSheetRow(sheet.Name, "A1", &header); err != nil {
		return err
	}
	for i := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet.Name, cell, &t.Rows[i]); err != nil {
			return err
		}
	}

	area := models.TableArea(t)
	ref, err := rangeRef(area)
	if err != nil {
		return err
	}
	showStripes := true
	if err := f.AddTable(sheet.Name, &excelize.Table{
		Range:          ref,
		Name:           tableName(n),
		StyleName:      TableStyle,
		ShowRowStripes: &showStripes,
	}); err != nil {
		return fmt.Errorf("table: %w", err)
	}

	lastHeader, err := excelize.CoordinatesToCellName(area.C2, 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet.Name, "A1", lastHeader, headerStyle); err != nil {
		return err
	}

	if err := f.SetPanes(sheet.Name, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
		Selection: []excelize.Selection{
			{SQRef: "A2", ActiveCell: "A2", Pane: "bottomLeft"},
		},
	}); err != nil {
		return fmt.Errorf("freeze header: %w", err)
	}

	for colIdx, l := range columnLengths(t) {
		col, err := excelize.ColumnNumberToName(colIdx + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet.Name, col, col, ColumnWidth(l)); err != nil {
			return err
		}
	}

	return setPrintLayout(f, sheet.Name, area)
}
