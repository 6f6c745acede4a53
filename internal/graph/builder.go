package graph

import (
	"strconv"
	"strings"

	"github.com/persistorai/mantle-explorer/internal/models"
	"github.com/persistorai/mantle-explorer/internal/sheet"
)

type pendingRow struct {
	id  string
	row []string
}

// Build constructs the graph from the section rows using the resolved
// columns. Rows without an id are skipped, quote items are excluded and
// references to items outside the graph are dropped.
func Build(sec *sheet.Section, cols *sheet.Columns) (*Graph, *models.BuildReport) {
	g := New()
	report := &models.BuildReport{MarkerFound: sec.MarkerFound}
	quotes := make(map[string]bool)
	flagNames := cols.FlagNames()

	kept := make([]pendingRow, 0, len(sec.Rows))

	for _, row := range sec.Rows {
		report.RowsRead++

		id := cols.ID.Value(row)
		if id == "" {
			report.RowsSkipped++
			continue
		}

		if g.HasItem(id) || quotes[id] {
			report.DuplicateRows++
			continue
		}

		fields := models.ItemFields{
			ID:      id,
			Name:    cols.Name.Value(row),
			Type:    cols.Type.Value(row),
			EventID: cols.Event.Value(row),
			Group:   cols.Group.Value(row),
			IsQuote: IsTruthy(cols.Quote.Value(row)),
		}

		for _, name := range flagNames {
			if IsTruthy(cols.Flags[name].Value(row)) {
				fields.Flags = append(fields.Flags, name)
			}
		}

		item, err := models.NewItem(fields)
		if err != nil {
			report.RowsSkipped++
			continue
		}

		if item.IsQuote {
			quotes[id] = true
			report.QuotesFiltered++
			continue
		}

		g.AddItem(item)
		kept = append(kept, pendingRow{id: id, row: row})
	}

	for _, p := range kept {
		for _, rng := range cols.Relations {
			for col := rng.Start; col <= rng.End && col < len(p.row); col++ {
				cell := sheet.Cell(p.row, col)
				if cell == "" {
					continue
				}

				related := models.RelatedID(cell)
				if related == "" || related == p.id {
					continue
				}

				if !g.AddEdge(related, p.id, rng.Kind) {
					report.DanglingRefs++
				}
			}
		}
	}

	report.Items = g.Len()
	report.Edges = g.EdgeCount()

	return g, report
}

// IsTruthy reports whether a flag cell is set: 1, true, yes or y.
func IsTruthy(v string) bool {
	v = strings.ToLower(strings.TrimSpace(v))

	switch v {
	case "1", "true", "yes", "y":
		return true
	case "":
		return false
	}

	f, err := strconv.ParseFloat(v, 64)

	return err == nil && f == 1
}
