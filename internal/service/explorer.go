// Package service orchestrates reading a sheet, building the item graph and
// preparing its outputs.
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/persistorai/mantle-explorer/internal/config"
	"github.com/persistorai/mantle-explorer/internal/graph"
	"github.com/persistorai/mantle-explorer/internal/metrics"
	"github.com/persistorai/mantle-explorer/internal/models"
	"github.com/persistorai/mantle-explorer/internal/sheet"
)

// StdinName is the input path that reads the sheet from standard input.
const StdinName = "-"

// Dataset is one loaded sheet and the graph built from it.
type Dataset struct {
	Source  string
	Section *sheet.Section
	Columns *sheet.Columns
	Graph   *graph.Graph
	Report  *models.BuildReport
}

// Explorer loads sheets and answers traversal queries with logging and metrics.
type Explorer struct {
	cfg   *config.Config
	log   *logrus.Logger
	stdin io.Reader
}

// NewExplorer creates an Explorer.
func NewExplorer(cfg *config.Config, log *logrus.Logger) *Explorer {
	return &Explorer{cfg: cfg, log: log, stdin: os.Stdin}
}

// Load reads the sheet at path, or standard input for StdinName, and builds
// its graph.
func (e *Explorer) Load(ctx context.Context, path string) (*Dataset, error) {
	if path == StdinName {
		return e.LoadReader(ctx, "stdin", e.stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		metrics.ErrorsTotal.WithLabelValues("input").Inc()
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", models.ErrInputNotFound, path)
		}

		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	return e.LoadReader(ctx, filepath.Base(path), f)
}

// LoadReader builds a dataset from CSV content. name identifies the source
// in logs and outputs.
func (e *Explorer) LoadReader(ctx context.Context, name string, r io.Reader) (*Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()

	rows, err := sheet.Read(r)
	if err != nil {
		metrics.ErrorsTotal.WithLabelValues("read").Inc()
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	sec := sheet.Locate(rows, e.cfg.DataStartRow, e.cfg.SectionMarker)
	e.logSection(name, len(rows), sec)

	cols, err := sheet.Resolve(sec, e.cfg.Schema)
	if err != nil {
		metrics.ErrorsTotal.WithLabelValues("schema").Inc()
		return nil, fmt.Errorf("resolving columns of %s: %w", name, err)
	}

	for _, res := range cols.Report {
		e.log.WithField("source", name).Debug("sheet.column " + res.String())
	}

	g, report := graph.Build(sec, cols)

	if e.cfg.Focus.Enabled {
		g = e.focus(g, report)
	}

	metrics.RecordBuild(report, time.Since(start))

	e.log.WithFields(logrus.Fields{
		"source":   name,
		"rows":     report.RowsRead,
		"items":    report.Items,
		"edges":    report.Edges,
		"skipped":  report.RowsSkipped,
		"quotes":   report.QuotesFiltered,
		"dangling": report.DanglingRefs,
	}).Info("explorer.load")

	if g.Len() == 0 {
		e.log.WithField("source", name).Warn("no items found in sheet")
	}

	return &Dataset{Source: name, Section: sec, Columns: cols, Graph: g, Report: report}, nil
}

func (e *Explorer) logSection(name string, total int, sec *sheet.Section) {
	fields := logrus.Fields{
		"source":      name,
		"total_rows":  total,
		"data_rows":   len(sec.Rows),
		"marker":      e.cfg.SectionMarker,
		"header_line": sec.HeaderLine,
	}

	if !sec.MarkerFound && e.cfg.SectionMarker != "" {
		e.log.WithFields(fields).Warn("section marker not found, using every row after the data start row")
		return
	}

	e.log.WithFields(fields).Debug("sheet.section")
}

func (e *Explorer) focus(g *graph.Graph, report *models.BuildReport) *graph.Graph {
	focused, seeds := g.Focus(e.cfg.Focus.Flags, e.cfg.Focus.MaxDepth)

	report.FocusSeeds = seeds
	if seeds == 0 {
		e.log.WithField("flags", e.cfg.Focus.Flags).Warn("no flagged items, focus filter skipped")
		return g
	}

	report.FocusApplied = true
	report.FocusedOut = g.Len() - focused.Len()
	report.Items = focused.Len()
	report.Edges = focused.EdgeCount()

	e.log.WithFields(logrus.Fields{
		"seeds":    seeds,
		"kept":     focused.Len(),
		"excluded": report.FocusedOut,
	}).Info("explorer.focus")

	return focused
}

// Traverse explores ds from root to depth. Depth is clamped to the supported
// range and an unknown root yields an empty result.
func (e *Explorer) Traverse(ds *Dataset, root string, depth int) *models.TraverseResult {
	clamped := graph.ClampDepth(depth)
	metrics.RecordTraversal(clamped)

	fields := logrus.Fields{
		"item_id": root,
		"depth":   clamped,
	}

	if !ds.Graph.HasItem(root) {
		e.log.WithFields(fields).Warn("traverse from unknown item")
		return models.EmptyTraverseResult(root, clamped)
	}

	res := ds.Graph.Traverse(root, clamped)

	fields["nodes"] = len(res.Nodes)
	fields["edges"] = len(res.Edges)
	e.log.WithFields(fields).Debug("graph.traverse")

	return res
}

// Item returns the item with the given id.
func (e *Explorer) Item(ds *Dataset, id string) (models.Item, error) {
	item, ok := ds.Graph.Item(id)
	if !ok {
		return models.Item{}, fmt.Errorf("%w: %s", models.ErrItemNotFound, id)
	}

	return item, nil
}
