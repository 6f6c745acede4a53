// Package metrics defines Prometheus metrics for the explorer. The CLI runs
// once and exits, so metrics are written to a node_exporter textfile rather
// than served.
package metrics

import (
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/persistorai/mantle-explorer/internal/models"
)

// Registry holds every explorer metric.
var Registry = prometheus.NewRegistry()

var (
	BuildDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mantle_build_duration_seconds",
			Help:    "Time spent reading the sheet and building the graph",
			Buckets: prometheus.DefBuckets,
		},
	)

	RowsRead = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "mantle_rows_read",
			Help: "Data rows read from the items section",
		},
	)

	RowsSkipped = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "mantle_rows_skipped",
			Help: "Data rows left out of the graph by reason",
		},
		[]string{"reason"},
	)

	DanglingRefs = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "mantle_dangling_refs",
			Help: "Relationship cells naming an item not in the graph",
		},
	)

	ItemCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "mantle_items_total",
			Help: "Items in the graph",
		},
	)

	EdgeCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "mantle_edges_total",
			Help: "Deduplicated edges in the graph",
		},
	)

	TraversalsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mantle_traversals_total",
			Help: "Traversals run by depth",
		},
		[]string{"depth"},
	)

	OutputsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mantle_outputs_total",
			Help: "Outputs written by format",
		},
		[]string{"format"},
	)

	ErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mantle_errors_total",
			Help: "Total errors by type",
		},
		[]string{"type"},
	)
)

func init() {
	Registry.MustRegister(
		BuildDuration, RowsRead, RowsSkipped, DanglingRefs,
		ItemCount, EdgeCount,
		TraversalsTotal, OutputsTotal, ErrorsTotal,
	)
}

// RecordBuild publishes the outcome of one graph build.
func RecordBuild(r *models.BuildReport, elapsed time.Duration) {
	BuildDuration.Observe(elapsed.Seconds())
	RowsRead.Set(float64(r.RowsRead))
	RowsSkipped.WithLabelValues("missing_id").Set(float64(r.RowsSkipped))
	RowsSkipped.WithLabelValues("quote").Set(float64(r.QuotesFiltered))
	RowsSkipped.WithLabelValues("duplicate").Set(float64(r.DuplicateRows))
	RowsSkipped.WithLabelValues("focus").Set(float64(r.FocusedOut))
	DanglingRefs.Set(float64(r.DanglingRefs))
	ItemCount.Set(float64(r.Items))
	EdgeCount.Set(float64(r.Edges))
}

// RecordTraversal counts one traversal at the given depth.
func RecordTraversal(depth int) {
	TraversalsTotal.WithLabelValues(strconv.Itoa(depth)).Inc()
}

// WriteTextfile writes the registry in text exposition format to path.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, Registry); err != nil {
		return fmt.Errorf("writing metrics textfile: %w", err)
	}

	return nil
}
