package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/mantle-explorer/internal/config"
	"github.com/persistorai/mantle-explorer/internal/graph"
	"github.com/persistorai/mantle-explorer/internal/metrics"
	"github.com/persistorai/mantle-explorer/internal/models"
	"github.com/persistorai/mantle-explorer/internal/render"
)

// Export serialises the whole graph of ds into the portable export format.
func (e *Explorer) Export(ds *Dataset) *models.ExportFormat {
	items := ds.Graph.Items()
	edges := ds.Graph.Edges()

	out := &models.ExportFormat{
		SchemaVersion:   models.ExportSchemaVersion,
		ExplorerVersion: config.Version,
		RunID:           uuid.NewString(),
		ExportedAt:      time.Now().UTC(),
		Source:          ds.Source,
		Stats: models.ExportStats{
			ItemCount: len(items),
			EdgeCount: len(edges),
			Build:     *ds.Report,
		},
		Items: items,
		Edges: edges,
	}

	metrics.OutputsTotal.WithLabelValues("export").Inc()

	e.log.WithFields(logrus.Fields{
		"run_id": out.RunID,
		"items":  len(items),
		"edges":  len(edges),
	}).Info("explorer.export")

	return out
}

// Page assembles the data embedded in the explorer page. A non-empty root is
// preselected when the page opens.
func (e *Explorer) Page(ds *Dataset, root string) (*render.PageData, error) {
	if root != "" {
		if _, err := e.Item(ds, root); err != nil {
			return nil, err
		}
	}

	items := ds.Graph.Items()

	byID := make(map[string]models.Item, len(items))
	options := make([]models.ItemOption, 0, len(items))

	for i := range items {
		byID[items[i].ID] = items[i]
		options = append(options, items[i].Option())
	}

	data := &render.PageData{
		Title:        e.cfg.Title,
		Source:       ds.Source,
		Version:      config.Version,
		GeneratedAt:  time.Now().UTC(),
		Root:         root,
		DefaultDepth: e.cfg.DefaultDepth,
		MaxDepth:     graph.MaxDepth,
		Items:        byID,
		Options:      options,
		Edges:        ds.Graph.Edges(),
		Adjacency:    ds.Graph.Adjacency(),
		Stats:        *ds.Report,
	}

	metrics.OutputsTotal.WithLabelValues("page").Inc()

	e.log.WithFields(logrus.Fields{
		"items": len(items),
		"root":  root,
		"depth": data.DefaultDepth,
	}).Debug("explorer.page")

	return data, nil
}
