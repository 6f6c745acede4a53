package models

// TraversedItem is an item reached by a traversal, with its BFS depth.
type TraversedItem struct {
	Item
	Depth int `json:"depth"`
}

// TraverseResult holds a subgraph discovered by BFS traversal.
type TraverseResult struct {
	Root  string          `json:"root"`
	Depth int             `json:"depth"`
	Nodes []TraversedItem `json:"nodes"`
	Edges []Edge          `json:"edges"`
}

// EmptyTraverseResult returns a result with no nodes and no edges.
func EmptyTraverseResult(root string, depth int) *TraverseResult {
	return &TraverseResult{
		Root:  root,
		Depth: depth,
		Nodes: make([]TraversedItem, 0),
		Edges: make([]Edge, 0),
	}
}

// NodeIDs returns the ids of the traversed nodes in BFS order.
func (r *TraverseResult) NodeIDs() []string {
	ids := make([]string, len(r.Nodes))
	for i, n := range r.Nodes {
		ids[i] = n.ID
	}

	return ids
}

// BuildReport summarises a graph build.
type BuildReport struct {
	RowsRead       int  `json:"rows_read"`
	RowsSkipped    int  `json:"rows_skipped"`
	DuplicateRows  int  `json:"duplicate_rows"`
	QuotesFiltered int  `json:"quotes_filtered"`
	Items          int  `json:"items"`
	Edges          int  `json:"edges"`
	DanglingRefs   int  `json:"dangling_refs"`
	MarkerFound    bool `json:"marker_found"`
	FocusApplied   bool `json:"focus_applied"`
	FocusSeeds     int  `json:"focus_seeds"`
	FocusedOut     int  `json:"focused_out"`
}
