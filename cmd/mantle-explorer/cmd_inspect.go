package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/persistorai/mantle-explorer/internal/models"
	"github.com/persistorai/mantle-explorer/internal/service"
	"github.com/persistorai/mantle-explorer/internal/sheet"
)

type headerColumn struct {
	Column string `json:"column"`
	Title  string `json:"title"`
}

type fieldMapping struct {
	Field   string   `json:"field"`
	Columns []string `json:"columns"`
	Source  string   `json:"source"`
}

type inspectResult struct {
	Source      string             `json:"source"`
	MarkerFound bool               `json:"marker_found"`
	HeaderLine  int                `json:"header_line,omitempty"`
	Header      []headerColumn     `json:"header"`
	Mapping     []fieldMapping     `json:"mapping"`
	Relations   []string           `json:"relations"`
	Build       models.BuildReport `json:"build"`
}

func newInspectResult(ds *service.Dataset) inspectResult {
	res := inspectResult{
		Source:      ds.Source,
		MarkerFound: ds.Section.MarkerFound,
		HeaderLine:  ds.Section.HeaderLine,
		Header:      make([]headerColumn, 0, len(ds.Section.Header)),
		Mapping:     make([]fieldMapping, 0, len(ds.Columns.Report)),
		Relations:   make([]string, 0, len(ds.Columns.Relations)),
		Build:       *ds.Report,
	}

	for i, h := range ds.Section.Header {
		if h = strings.TrimSpace(h); h != "" {
			res.Header = append(res.Header, headerColumn{Column: sheet.ColumnName(i), Title: h})
		}
	}

	for _, r := range ds.Columns.Report {
		m := fieldMapping{Field: r.Field, Columns: make([]string, 0, len(r.Columns)), Source: r.Source}
		for _, c := range r.Columns {
			m.Columns = append(m.Columns, sheet.ColumnName(c))
		}
		if len(m.Columns) == 0 {
			m.Source = "unresolved"
		}
		res.Mapping = append(res.Mapping, m)
	}

	for _, rng := range ds.Columns.Relations {
		res.Relations = append(res.Relations, rng.String())
	}

	return res
}

func (r inspectResult) table() ([]string, [][]string) {
	rows := make([][]string, 0, len(r.Mapping)+len(r.Relations))
	for _, m := range r.Mapping {
		cols := strings.Join(m.Columns, ",")
		if cols == "" {
			cols = "-"
		}
		rows = append(rows, []string{m.Field, cols, m.Source})
	}
	for _, rel := range r.Relations {
		kind, span, _ := strings.Cut(rel, " ")
		rows = append(rows, []string{"relation " + kind, span, "config"})
	}
	return []string{"FIELD", "COLUMNS", "SOURCE"}, rows
}

func (r inspectResult) quiet() []string {
	lines := make([]string, 0, len(r.Mapping))
	for _, m := range r.Mapping {
		lines = append(lines, m.Field+"="+strings.Join(m.Columns, ","))
	}
	return lines
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <csv>",
		Short: "Show how the sheet's columns were mapped and what the build kept",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := explorer.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return output(cmd.OutOrStdout(), newInspectResult(ds))
		},
	}
}
