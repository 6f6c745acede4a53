package sheet

import "strings"

// Section is the block of a sheet holding the item rows.
type Section struct {
	Header      []string
	Rows        [][]string
	MarkerFound bool
	// HeaderLine is the 1-based source line of the header row, 0 without a marker.
	HeaderLine int
}

// Locate drops the first offset rows and finds the section introduced by the
// row containing marker. The row after the marker is the header; data runs
// until the first blank row. Without a marker every non-blank row after the
// offset is data and there is no header.
func Locate(rows [][]string, offset int, marker string) *Section {
	if offset < 0 {
		offset = 0
	}

	if offset >= len(rows) {
		return &Section{Rows: make([][]string, 0)}
	}

	body := rows[offset:]

	markerRow := -1
	if marker != "" {
		markerRow = findMarker(body, marker)
	}

	if markerRow < 0 {
		data := make([][]string, 0, len(body))
		for _, row := range body {
			if !IsBlank(row) {
				data = append(data, row)
			}
		}

		return &Section{Rows: data}
	}

	sec := &Section{MarkerFound: true, Rows: make([][]string, 0)}

	headerRow := markerRow + 1
	if headerRow >= len(body) {
		return sec
	}

	sec.Header = body[headerRow]
	sec.HeaderLine = offset + headerRow + 1

	for _, row := range body[headerRow+1:] {
		if IsBlank(row) {
			break
		}

		sec.Rows = append(sec.Rows, row)
	}

	return sec
}

func findMarker(rows [][]string, marker string) int {
	for i, row := range rows {
		for _, cell := range row {
			if strings.Contains(cell, marker) {
				return i
			}
		}
	}

	return -1
}

// HeaderColumns lists the non-empty header cells by column index.
func (s *Section) HeaderColumns() map[int]string {
	cols := make(map[int]string, len(s.Header))
	for i, h := range s.Header {
		if h = strings.TrimSpace(h); h != "" {
			cols[i] = h
		}
	}

	return cols
}
