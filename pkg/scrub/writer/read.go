package writer

import (
	"github.com/ukaji3/itgscrub-go/pkg/scrub/models"
	"github.com/xuri/excelize/v2"
)

// SheetInfo summarizes one sheet of a written workbook.
type SheetInfo struct {
	Name       string
	Header     []string
	DataRows   int
	Widths     []float64
	Frozen     bool
	// PrintArea is nil when the sheet has no print area.
	PrintArea *models.PrintArea
	// HeaderRepeats reports whether row 1 is printed on every page.
	HeaderRepeats bool
}

// ReadSheet returns all rows of a sheet, header included.
func ReadSheet(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return f.GetRows(sheet)
}

// Inspect summarizes every sheet of the workbook at path, in sheet order.
func Inspect(path string) ([]SheetInfo, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	layouts := readPrintLayouts(f)

	var infos []SheetInfo
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, err
		}

		layout := layouts[name]
		info := SheetInfo{
			Name:          name,
			PrintArea:     layout.area,
			HeaderRepeats: layout.headerRepeats,
		}
		if len(rows) > 0 {
			info.Header = rows[0]
			info.DataRows = len(rows) - 1
		}
		for colIdx := range info.Header {
			col, err := excelize.ColumnNumberToName(colIdx + 1)
			if err != nil {
				return nil, err
			}
			w, err := f.GetColWidth(name, col)
			if err != nil {
				return nil, err
			}
			info.Widths = append(info.Widths, w)
		}
		if panes, err := f.GetPanes(name); err == nil {
			info.Frozen = panes.Freeze && panes.YSplit == 1
		}
		infos = append(infos, info)
	}

	return infos, nil
}
