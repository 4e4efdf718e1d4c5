package writer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/itgscrub-go/pkg/scrub/models"
	"github.com/xuri/excelize/v2"
)

func TestColumnWidth(t *testing.T) {
	tests := []struct {
		maxLen   int
		expected float64
	}{
		{0, 2.4},
		{10, 14.4},
		{50, 62.4},
		{80, 62.4},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.expected, ColumnWidth(tt.maxLen), 1e-9, "maxLen %d", tt.maxLen)
	}
}

func TestDisplayLengthCountsRunes(t *testing.T) {
	assert.Equal(t, 5, DisplayLength("héllo"))
	assert.Equal(t, 0, DisplayLength(""))
}

func TestColumnLengths(t *testing.T) {
	tbl := &models.Table{
		Header: []string{"Name", "Description"},
		Rows: [][]string{
			{"fw01", "edge"},
			{"core-switch", strings.Repeat("x", 80)},
		},
	}
	assert.Equal(t, []int{11, 80}, columnLengths(tbl))
}

func TestTableHeader(t *testing.T) {
	got := tableHeader([]string{"Name", "", "Name", "IP"})
	assert.Equal(t, []string{"Name", "Column2", "Name 2", "IP"}, got)
}

func TestRangeRefs(t *testing.T) {
	area := models.PrintArea{R1: 1, C1: 1, R2: 10, C2: 4}
	ref, err := rangeRef(area)
	require.NoError(t, err)
	assert.Equal(t, "A1:D10", ref)

	abs, err := absoluteRef("voice-pbx-fax", area)
	require.NoError(t, err)
	assert.Equal(t, "'voice-pbx-fax'!$A$1:$D$10", abs)
}

func TestSplitSheetRef(t *testing.T) {
	sheet, rng, ok := splitSheetRef("'voice-pbx-fax'!$A$1:$C$5")
	assert.True(t, ok)
	assert.Equal(t, "voice-pbx-fax", sheet)
	assert.Equal(t, "$A$1:$C$5", rng)

	_, _, ok = splitSheetRef("garbage")
	assert.False(t, ok)
}

func TestParseAbsoluteRange(t *testing.T) {
	area, ok := parseAbsoluteRange("$A$1:$C$5")
	assert.True(t, ok)
	assert.Equal(t, models.PrintArea{R1: 1, C1: 1, R2: 5, C2: 3}, area)

	for _, rng := range []string{"$1:$1", "$A$1", "A1:??"} {
		_, ok := parseAbsoluteRange(rng)
		assert.False(t, ok, rng)
	}
}

func sampleWorkbook() *models.ClientWorkbook {
	return &models.ClientWorkbook{
		Customer: "Acme",
		Sheets: []models.Sheet{
			{
				Name: "configurations",
				Table: &models.Table{
					Name:   "configurations",
					Header: []string{"name", "Notes"},
					Rows: [][]string{
						{"fw01", "0123456789"},
						{"sw01", strings.Repeat("n", 80)},
					},
				},
			},
			{
				Name: "email",
				Table: &models.Table{
					Name:   "email",
					Header: []string{"Domain"},
					Rows:   [][]string{{"acme.com"}},
				},
			},
		},
	}
}

func TestWriteAndInspect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Acme_export.xlsx")
	require.NoError(t, Write(sampleWorkbook(), path))

	infos, err := Inspect(path)
	require.NoError(t, err)
	require.Len(t, infos, 2)

	cfg := infos[0]
	assert.Equal(t, "configurations", cfg.Name)
	assert.Equal(t, []string{"name", "Notes"}, cfg.Header)
	assert.Equal(t, 2, cfg.DataRows)
	assert.True(t, cfg.Frozen)
	require.Len(t, cfg.Widths, 2)
	assert.InDelta(t, 7.2, cfg.Widths[0], 1e-6)
	assert.InDelta(t, 62.4, cfg.Widths[1], 1e-6)
	require.NotNil(t, cfg.PrintArea)
	assert.Equal(t, models.PrintArea{R1: 1, C1: 1, R2: 3, C2: 2}, *cfg.PrintArea)
	assert.True(t, cfg.HeaderRepeats)

	assert.Equal(t, "email", infos[1].Name)
	assert.Equal(t, 1, infos[1].DataRows)
	require.NotNil(t, infos[1].PrintArea)
	assert.Equal(t, models.PrintArea{R1: 1, C1: 1, R2: 2, C2: 1}, *infos[1].PrintArea)
	assert.True(t, infos[1].HeaderRepeats)

	rows, err := ReadSheet(path, "configurations")
	require.NoError(t, err)
	assert.Equal(t, []string{"fw01", "0123456789"}, rows[1])

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	tables, err := f.GetTables("configurations")
	require.NoError(t, err)
	require.Len(t, tables, 1)
	assert.Equal(t, "A1:B3", tables[0].Range)
	assert.Equal(t, TableStyle, tables[0].StyleName)
}

func TestWriteReplacesExistingWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Acme_export.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0644))

	require.NoError(t, Write(sampleWorkbook(), path))
	infos, err := Inspect(path)
	require.NoError(t, err)
	assert.Len(t, infos, 2)
}

func TestWriteStaleWorkbookNotRemovable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Acme_export.xlsx")
	// a non-empty directory at the target path cannot be removed
	require.NoError(t, os.MkdirAll(filepath.Join(path, "locked"), 0755))

	err := Write(sampleWorkbook(), path)
	assert.ErrorIs(t, err, ErrStaleWorkbook)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temporary or partial workbook may be left behind")
	assert.True(t, entries[0].IsDir())
}

func TestWriteEmptyWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Empty_export.xlsx")
	require.NoError(t, Write(&models.ClientWorkbook{Customer: "Empty"}, path))

	infos, err := Inspect(path)
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "Sheet1", infos[0].Name)
	assert.Zero(t, infos[0].DataRows)
	assert.Nil(t, infos[0].PrintArea)
	assert.False(t, infos[0].HeaderRepeats)
}

func TestWriteHeaderOnlyTable(t *testing.T) {
	wb := &models.ClientWorkbook{
		Customer: "Acme",
		Sheets: []models.Sheet{{
			Name:  "lan",
			Table: &models.Table{Name: "lan", Header: []string{"Name", "Subnet"}},
		}},
	}
	path := filepath.Join(t.TempDir(), "Acme_export.xlsx")
	require.NoError(t, Write(wb, path))

	rows, err := ReadSheet(path, "lan")
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.Equal(t, []string{"Name", "Subnet"}, rows[0])
}
