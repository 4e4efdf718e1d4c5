package writer

import (
	"fmt"
	"strings"

	"github.com/ukaji3/itgscrub-go/pkg/scrub/models"
	"github.com/xuri/excelize/v2"
)

const (
	printAreaName   = "_xlnm.Print_Area"
	printTitlesName = "_xlnm.Print_Titles"
)

// setPrintLayout limits printing to the table and repeats the header row
// on every printed page.
func setPrintLayout(f *excelize.File, sheet string, area models.PrintArea) error {
	ref, err := absoluteRef(sheet, area)
	if err != nil {
		return err
	}
	if err := f.SetDefinedName(&excelize.DefinedName{
		Name:     printAreaName,
		RefersTo: ref,
		Scope:    sheet,
	}); err != nil {
		return fmt.Errorf("print area: %w", err)
	}
	if err := f.SetDefinedName(&excelize.DefinedName{
		Name:     printTitlesName,
		RefersTo: fmt.Sprintf("'%s'!$1:$1", sheet),
		Scope:    sheet,
	}); err != nil {
		return fmt.Errorf("print titles: %w", err)
	}
	return nil
}

// printLayout is the print setup setPrintLayout records for one sheet.
type printLayout struct {
	area          *models.PrintArea
	headerRepeats bool
}

// readPrintLayouts returns the print setup of every sheet that has one.
func readPrintLayouts(f *excelize.File) map[string]printLayout {
	layouts := make(map[string]printLayout)
	for _, dn := range f.GetDefinedName() {
		sheet, rng, ok := splitSheetRef(dn.RefersTo)
		if !ok {
			continue
		}
		l := layouts[sheet]
		switch dn.Name {
		case printAreaName:
			if area, ok := parseAbsoluteRange(rng); ok {
				l.area = &area
			}
		case printTitlesName:
			l.headerRepeats = rng == "$1:$1"
		default:
			continue
		}
		layouts[sheet] = l
	}
	return layouts
}

// splitSheetRef splits 'sheet'!range into its sheet name and range.
func splitSheetRef(ref string) (string, string, bool) {
	idx := strings.LastIndex(ref, "!")
	if idx < 0 {
		return "", "", false
	}
	return strings.Trim(strings.TrimPrefix(ref[:idx], "="), "'"), ref[idx+1:], true
}

// parseAbsoluteRange parses a range such as $A$1:$D$10.
func parseAbsoluteRange(rng string) (models.PrintArea, bool) {
	start, end, ok := strings.Cut(strings.ReplaceAll(rng, "$", ""), ":")
	if !ok {
		return models.PrintArea{}, false
	}
	c1, r1, err := excelize.CellNameToCoordinates(start)
	if err != nil {
		return models.PrintArea{}, false
	}
	c2, r2, err := excelize.CellNameToCoordinates(end)
	if err != nil {
		return models.PrintArea{}, false
	}
	return models.PrintArea{R1: r1, C1: c1, R2: r2, C2: c2}, true
}
