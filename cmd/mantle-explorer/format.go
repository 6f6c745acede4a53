package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

func formatJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// formatTable writes headers, a dashed rule and rows as left-aligned columns
// two spaces apart.
func formatTable(w io.Writer, headers []string, rows [][]string) {
	widths := columnWidths(headers, rows)

	rule := make([]string, len(widths))
	for i, n := range widths {
		rule[i] = strings.Repeat("-", n)
	}

	fmt.Fprintln(w, padRow(headers, widths))
	fmt.Fprintln(w, padRow(rule, widths))
	for _, row := range rows {
		fmt.Fprintln(w, padRow(row, widths))
	}
}

// columnWidths sizes each header column to its widest cell. Cells beyond the
// header columns are not sized.
func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for _, row := range append([][]string{headers}, rows...) {
		for i := 0; i < min(len(row), len(widths)); i++ {
			widths[i] = max(widths[i], len(row[i]))
		}
	}
	return widths
}

func padRow(cells []string, widths []int) string {
	var b strings.Builder
	for i, cell := range cells {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(cell)
		if i < len(widths) {
			b.WriteString(strings.Repeat(" ", widths[i]-len(cell)))
		}
	}
	return strings.TrimRight(b.String(), " ")
}

func formatQuiet(w io.Writer, lines []string) {
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
}

// tabular is implemented by results that have a table rendering.
type tabular interface {
	table() (headers []string, rows [][]string)
	quiet() []string
}

func output(w io.Writer, v tabular) error {
	switch flagFmt {
	case "quiet":
		formatQuiet(w, v.quiet())
		return nil
	case "table":
		headers, rows := v.table()
		formatTable(w, headers, rows)
		return nil
	case "json", "":
		return formatJSON(w, v)
	default:
		return fmt.Errorf("unknown format %q, want json, table or quiet", flagFmt)
	}
}
