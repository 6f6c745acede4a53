// Package graph builds the benefit item dependency graph and answers
// bounded traversal queries over it.
package graph

import (
	"slices"

	"github.com/persistorai/mantle-explorer/internal/models"
)

// Graph is an undirected item graph. Every edge endpoint is a member item
// and no edge connects an item to itself.
type Graph struct {
	items map[string]*models.Item
	adj   map[string]map[string]struct{}
	edges map[models.EdgeKey]*models.Edge
}

// New creates an empty Graph.
func New() *Graph {
	return &Graph{
		items: make(map[string]*models.Item),
		adj:   make(map[string]map[string]struct{}),
		edges: make(map[models.EdgeKey]*models.Edge),
	}
}

// AddItem inserts item unless an item with the same id exists. It reports
// whether the item was added.
func (g *Graph) AddItem(item *models.Item) bool {
	if item == nil || item.ID == "" {
		return false
	}

	if _, ok := g.items[item.ID]; ok {
		return false
	}

	g.items[item.ID] = item
	g.adj[item.ID] = make(map[string]struct{})

	return true
}

// AddEdge connects source and target, merging kind into an existing edge
// for the same pair. It reports false when either endpoint is missing or
// both are the same item.
func (g *Graph) AddEdge(source, target, kind string) bool {
	if source == target || !g.HasItem(source) || !g.HasItem(target) {
		return false
	}

	key := models.NewEdgeKey(source, target)
	if e, ok := g.edges[key]; ok {
		e.AddKind(kind)
		return true
	}

	e := &models.Edge{Source: source, Target: target, Kinds: make([]string, 0, 1)}
	e.AddKind(kind)
	g.edges[key] = e
	g.adj[source][target] = struct{}{}
	g.adj[target][source] = struct{}{}

	return true
}

// HasItem reports whether id is a member of the graph.
func (g *Graph) HasItem(id string) bool {
	_, ok := g.items[id]
	return ok
}

// Item returns a copy of the item with the given id.
func (g *Graph) Item(id string) (models.Item, bool) {
	item, ok := g.items[id]
	if !ok {
		return models.Item{}, false
	}

	return cloneItem(item), true
}

// Items returns copies of all items ordered by id.
func (g *Graph) Items() []models.Item {
	out := make([]models.Item, 0, len(g.items))
	for _, id := range g.IDs() {
		out = append(out, cloneItem(g.items[id]))
	}

	return out
}

// IDs returns all item ids in sorted order.
func (g *Graph) IDs() []string {
	ids := make([]string, 0, len(g.items))
	for id := range g.items {
		ids = append(ids, id)
	}

	slices.Sort(ids)

	return ids
}

// Edges returns copies of all edges ordered by their unordered key.
func (g *Graph) Edges() []models.Edge {
	out := make([]models.Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, cloneEdge(e))
	}

	slices.SortFunc(out, models.CompareEdges)

	return out
}

// Neighbors returns the ids directly related to id in sorted order.
func (g *Graph) Neighbors(id string) []string {
	nbrs := make([]string, 0, len(g.adj[id]))
	for n := range g.adj[id] {
		nbrs = append(nbrs, n)
	}

	slices.Sort(nbrs)

	return nbrs
}

// Adjacency returns the sorted neighbour list of every item.
func (g *Graph) Adjacency() map[string][]string {
	out := make(map[string][]string, len(g.adj))
	for id := range g.adj {
		out[id] = g.Neighbors(id)
	}

	return out
}

// Len returns the number of items.
func (g *Graph) Len() int { return len(g.items) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Restrict returns a new graph holding only the items in keep and the
// edges between them.
func (g *Graph) Restrict(keep map[string]bool) *Graph {
	out := New()

	for id, item := range g.items {
		if keep[id] {
			out.AddItem(item)
		}
	}

	for _, e := range g.edges {
		if !out.HasItem(e.Source) || !out.HasItem(e.Target) {
			continue
		}

		out.AddEdge(e.Source, e.Target, "")
		for _, k := range e.Kinds {
			out.AddEdge(e.Source, e.Target, k)
		}
	}

	return out
}

func cloneItem(item *models.Item) models.Item {
	c := *item
	c.Flags = slices.Clone(item.Flags)

	return c
}

func cloneEdge(e *models.Edge) models.Edge {
	c := *e
	c.Kinds = slices.Clone(e.Kinds)

	return c
}
