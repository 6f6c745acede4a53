package models

import (
	"slices"
	"strings"
)

// Edge represents a relationship between two items. Source is the related
// item named in a relationship column and Target is the row's own item.
// Traversal treats edges as undirected.
type Edge struct {
	Source string   `json:"source"`
	Target string   `json:"target"`
	Kinds  []string `json:"kinds"`
}

// EdgeKey identifies an unordered item pair.
type EdgeKey struct {
	A string
	B string
}

// NewEdgeKey returns the key for the pair, independent of argument order.
func NewEdgeKey(x, y string) EdgeKey {
	if x > y {
		x, y = y, x
	}

	return EdgeKey{A: x, B: y}
}

// Key returns the unordered pair key of the edge.
func (e *Edge) Key() EdgeKey {
	return NewEdgeKey(e.Source, e.Target)
}

// AddKind records a relationship range that produced the edge.
func (e *Edge) AddKind(kind string) {
	if kind == "" || slices.Contains(e.Kinds, kind) {
		return
	}

	e.Kinds = append(e.Kinds, kind)
	slices.Sort(e.Kinds)
}

// CompareEdges orders edges by their unordered key.
func CompareEdges(a, b Edge) int {
	ka, kb := a.Key(), b.Key()
	if c := strings.Compare(ka.A, kb.A); c != 0 {
		return c
	}

	return strings.Compare(ka.B, kb.B)
}

// RelatedID extracts the item identifier from a relationship cell. Cells in
// the "id:name" form yield the part before the first colon.
func RelatedID(cell string) string {
	cell = strings.TrimSpace(cell)
	if id, _, ok := strings.Cut(cell, ":"); ok {
		return strings.TrimSpace(id)
	}

	return cell
}
