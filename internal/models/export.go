package models

import "time"

// ExportSchemaVersion is the version of the export document layout.
const ExportSchemaVersion = 1

// ExportFormat is the top-level structure of a graph export file.
type ExportFormat struct {
	SchemaVersion   int         `json:"schema_version"`
	ExplorerVersion string      `json:"explorer_version"`
	RunID           string      `json:"run_id"`
	ExportedAt      time.Time   `json:"exported_at"`
	Source          string      `json:"source"`
	Stats           ExportStats `json:"stats"`
	Items           []Item      `json:"items"`
	Edges           []Edge      `json:"edges"`
}

// ExportStats summarises the contents of an export.
type ExportStats struct {
	ItemCount int         `json:"item_count"`
	EdgeCount int         `json:"edge_count"`
	Build     BuildReport `json:"build"`
}
