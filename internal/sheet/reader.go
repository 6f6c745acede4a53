package sheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/persistorai/mantle-explorer/internal/models"
)

const utf8BOM = "\ufeff"

// Read parses every record of a CSV export. Rows may have differing field
// counts and stray quotes are tolerated.
func Read(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var rows [][]string

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("reading csv record %d: %w", len(rows)+1, err)
		}

		rows = append(rows, rec)
	}

	if len(rows) == 0 {
		return nil, models.ErrEmptyInput
	}

	rows[0][0] = strings.TrimPrefix(rows[0][0], utf8BOM)

	return rows, nil
}

// Cell returns the trimmed value at col, or "" when the row is too short.
func Cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[col])
}

// IsBlank reports whether every cell of the row is empty.
func IsBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}

	return true
}
