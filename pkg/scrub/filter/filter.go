// Package filter removes archived rows, inactive configurations, denied
// columns and empty columns from a sanitized table.
package filter

import (
	"github.com/ukaji3/itgscrub-go/pkg/scrub/models"
	"github.com/ukaji3/itgscrub-go/pkg/scrub/policy"
)

// Apply returns a filtered copy of t and the names of the dropped columns.
// t itself is not modified.
//
// Rows flagged archived are dropped, and for the configurations table so
// are rows whose status is not active. A column is dropped when its name is
// in the deny set or when it is empty in every surviving row. A table
// without surviving rows therefore ends up without columns.
func Apply(t *models.Table) (*models.Table, []string) {
	rows := Rows(t)
	drop := dropColumns(t.Header, rows)

	out := &models.Table{
		Name:   t.Name,
		Header: project(t.Header, drop),
		Rows:   make([][]string, len(rows)),
	}
	for i, row := range rows {
		out.Rows[i] = project(row, drop)
	}

	var dropped []string
	for i, h := range t.Header {
		if drop[i] {
			dropped = append(dropped, h)
		}
	}
	return out, dropped
}

// Rows returns the rows of t that survive archive and status filtering.
// The returned slice shares row storage with t.
func Rows(t *models.Table) [][]string {
	archived := t.ColumnIndex(policy.ArchivedColumn)
	status := -1
	if t.Name == policy.ConfigurationsTable {
		status = t.ColumnIndex(policy.StatusColumn)
	}

	kept := make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		if archived >= 0 && row[archived] == policy.ArchivedValue {
			continue
		}
		if status >= 0 && row[status] != policy.ActiveStatus {
			continue
		}
		kept = append(kept, row)
	}
	return kept
}

// dropColumns marks, by position, the columns to remove. The fixed deny set
// is never mutated; empty columns are computed per table.
func dropColumns(header []string, rows [][]string) []bool {
	drop := make([]bool, len(header))
	for i, h := range header {
		if policy.IsDenied(h) || isEmptyColumn(rows, i) {
			drop[i] = true
		}
	}
	return drop
}

// isEmptyColumn reports whether column i holds "" in every row.
func isEmptyColumn(rows [][]string, i int) bool {
	for _, row := range rows {
		if row[i] != "" {
			return false
		}
	}
	return true
}

// project returns the cells of row whose column is not dropped, in order.
func project(row []string, drop []bool) []string {
	out := make([]string, 0, len(row))
	for i, cell := range row {
		if !drop[i] {
			out = append(out, cell)
		}
	}
	return out
}
