// Package sheet reads spreadsheet-style CSV exports and maps their columns
// to logical fields.
package sheet

import (
	"fmt"
	"strings"

	"github.com/persistorai/mantle-explorer/internal/models"
)

// maxColumnLetters caps reference length so the index cannot overflow.
const maxColumnLetters = 7

// ColumnIndex converts an Excel-style column reference (A, B, AA, DF) to a
// zero-based index.
func ColumnIndex(ref string) (int, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" || len(ref) > maxColumnLetters {
		return 0, fmt.Errorf("%w: %q", models.ErrInvalidColumn, ref)
	}

	index := 0
	for _, r := range strings.ToUpper(ref) {
		if r < 'A' || r > 'Z' {
			return 0, fmt.Errorf("%w: %q", models.ErrInvalidColumn, ref)
		}

		index = index*26 + int(r-'A') + 1
	}

	return index - 1, nil
}

// ColumnName converts a zero-based index back to its Excel-style reference.
func ColumnName(index int) string {
	if index < 0 {
		return ""
	}

	var b []byte
	for n := index + 1; n > 0; n = (n - 1) / 26 {
		b = append([]byte{byte('A' + (n-1)%26)}, b...)
	}

	return string(b)
}

// Range is an inclusive span of column indices.
type Range struct {
	Kind  string
	Start int
	End   int
}

// ParseRange converts a pair of column references into a Range.
func ParseRange(kind, from, to string) (Range, error) {
	start, err := ColumnIndex(from)
	if err != nil {
		return Range{}, fmt.Errorf("range %s start: %w", kind, err)
	}

	end, err := ColumnIndex(to)
	if err != nil {
		return Range{}, fmt.Errorf("range %s end: %w", kind, err)
	}

	if end < start {
		return Range{}, fmt.Errorf("%w: %s %s..%s ends before it starts", models.ErrInvalidRange, kind, from, to)
	}

	return Range{Kind: kind, Start: start, End: end}, nil
}

// String renders the range with column letters.
func (r Range) String() string {
	return fmt.Sprintf("%s %s..%s", r.Kind, ColumnName(r.Start), ColumnName(r.End))
}
