// Package parser reads extracted export files into tables.
package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/itgscrub-go/pkg/scrub/models"
	"github.com/ukaji3/itgscrub-go/pkg/scrub/policy"
)

const bom = "\ufeff"

// ReadTable reads a CSV export with a single header line.
// The table is named after the file with its extension stripped.
// Rows are padded or truncated to the header width, so every row
// has exactly len(Header) cells.
func ReadTable(path string) (*models.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := ReadCells(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	t.Name = policy.TableName(filepath.Base(path))
	return t, nil
}

// ReadCells reads header and rows from r. Cell values are returned as-is;
// sanitizing is a separate step. A bare quote inside an unquoted field is
// kept as part of the cell.
func ReadCells(r io.Reader) (*models.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return &models.Table{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	header[0] = strings.TrimPrefix(header[0], bom)

	t := &models.Table{Header: header}
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}
		t.Rows = append(t.Rows, fitRow(row, len(header)))
	}

	return t, nil
}

// fitRow pads a short row with empty cells and truncates a long one.
func fitRow(row []string, width int) []string {
	switch {
	case len(row) == width:
		return row
	case len(row) > width:
		return row[:width]
	default:
		padded := make([]string, width)
		copy(padded, row)
		return padded
	}
}
