package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/itgscrub-go/pkg/scrub/models"
)

func TestApplyDropsArchivedRows(t *testing.T) {
	tbl := &models.Table{
		Name:   "lan",
		Header: []string{"Name", "Subnet", "archived"},
		Rows: [][]string{
			{"a", "10.0.0.0/24", "No"},
			{"b", "10.0.1.0/24", "Yes"},
			{"c", "10.0.2.0/24", "Yes"},
			{"d", "10.0.3.0/24", ""},
		},
	}

	out, dropped := Apply(tbl)
	assert.Equal(t, []string{"Name", "Subnet"}, out.Header)
	assert.Equal(t, [][]string{{"a", "10.0.0.0/24"}, {"d", "10.0.3.0/24"}}, out.Rows)
	assert.Equal(t, []string{"archived"}, dropped)

	// input untouched
	assert.Len(t, tbl.Rows, 4)
	assert.Len(t, tbl.Header, 3)
}

func TestApplyConsecutiveArchivedRows(t *testing.T) {
	tbl := &models.Table{
		Name:   "wireless",
		Header: []string{"SSID", "archived"},
		Rows:   [][]string{{"1", "Yes"}, {"2", "Yes"}, {"3", "Yes"}, {"4", "No"}},
	}
	out, _ := Apply(tbl)
	assert.Equal(t, [][]string{{"4"}}, out.Rows)
}

func TestApplyConfigurationStatus(t *testing.T) {
	tbl := &models.Table{
		Name:   "configurations",
		Header: []string{"organization", "name", "configuration_status", "archived"},
		Rows: [][]string{
			{"Acme", "fw01", "Active", "No"},
			{"Acme", "fw02", "Inactive", "No"},
			{"Acme", "sw01", "Active", "No"},
			{"Acme", "sw02", "Active", "Yes"},
		},
	}

	out, _ := Apply(tbl)
	assert.Equal(t, []string{"name"}, out.Header)
	assert.Equal(t, [][]string{{"fw01"}, {"sw01"}}, out.Rows)
}

func TestApplyStatusOnlyForConfigurations(t *testing.T) {
	tbl := &models.Table{
		Name:   "printing",
		Header: []string{"Printer Name", "configuration_status"},
		Rows:   [][]string{{"p1", "Inactive"}, {"p2", "Active"}},
	}
	out, _ := Apply(tbl)
	assert.Len(t, out.Rows, 2)
}

func TestApplyWithoutArchivedColumn(t *testing.T) {
	tbl := &models.Table{
		Name:   "vendors",
		Header: []string{"Vendor Name", "Flag"},
		Rows:   [][]string{{"v1", "Yes"}, {"v2", "No"}},
	}
	out, _ := Apply(tbl)
	assert.Equal(t, [][]string{{"v1", "Yes"}, {"v2", "No"}}, out.Rows)
}

func TestApplyDropsEmptyColumnsAfterRowFilter(t *testing.T) {
	tbl := &models.Table{
		Name:   "email",
		Header: []string{"Domain", "Business Impact", "Notes", "Owner", "archived"},
		Rows: [][]string{
			{"acme.com", "", "", "", "No"},
			{"old.com", "", "", "bob", "Yes"},
		},
	}

	out, dropped := Apply(tbl)
	assert.Equal(t, []string{"Domain"}, out.Header)
	assert.Equal(t, [][]string{{"acme.com"}}, out.Rows)
	assert.ElementsMatch(t, []string{"Business Impact", "Notes", "Owner", "archived"}, dropped)
}

func TestApplyNoSurvivingRows(t *testing.T) {
	tbl := &models.Table{
		Name:   "backup",
		Header: []string{"Name", "archived"},
		Rows:   [][]string{{"x", "Yes"}},
	}
	out, _ := Apply(tbl)
	assert.Empty(t, out.Header)
	assert.Empty(t, out.Rows)
}

func TestApplyColumnPresenceProperty(t *testing.T) {
	tbl := &models.Table{
		Name:   "lan",
		Header: []string{"id", "Name", "Gateway", "DNS Server(s)", "Notes"},
		Rows: [][]string{
			{"1", "office", "", "8.8.8.8", ""},
			{"2", "", "10.0.0.1", "", ""},
		},
	}
	out, _ := Apply(tbl)
	require.Equal(t, []string{"Name", "Gateway"}, out.Header)
	for _, row := range out.Rows {
		assert.Len(t, row, len(out.Header))
	}
}
