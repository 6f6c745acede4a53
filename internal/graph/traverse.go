package graph

import (
	"slices"

	"github.com/persistorai/mantle-explorer/internal/models"
)

// Traversal depth bounds.
const (
	MinDepth     = 0
	MaxDepth     = 4
	DefaultDepth = 2
)

// ClampDepth bounds depth to [MinDepth, MaxDepth].
func ClampDepth(depth int) int {
	return min(max(depth, MinDepth), MaxDepth)
}

// Traverse performs BFS from root for at most depth hops and returns the
// visited items with the edges among them. An unknown root yields an empty
// result. The graph is not modified.
func (g *Graph) Traverse(root string, depth int) *models.TraverseResult {
	depth = ClampDepth(depth)

	if !g.HasItem(root) {
		return models.EmptyTraverseResult(root, depth)
	}

	levels := g.levels([]string{root}, depth)

	result := models.EmptyTraverseResult(root, depth)
	for _, id := range levels.order {
		result.Nodes = append(result.Nodes, models.TraversedItem{Item: cloneItem(g.items[id]), Depth: levels.depth[id]})
	}

	result.Edges = g.induced(levels.depth)

	return result
}

// Reachable returns every item within maxHops of any seed mapped to its hop
// distance. Unknown seeds are ignored.
func (g *Graph) Reachable(seeds []string, maxHops int) map[string]int {
	known := make([]string, 0, len(seeds))
	for _, s := range seeds {
		if g.HasItem(s) {
			known = append(known, s)
		}
	}

	return g.levels(known, max(maxHops, 0)).depth
}

type bfsLevels struct {
	order []string
	depth map[string]int
}

// levels expands the frontier one hop per iteration, visiting neighbours in
// sorted order so results are deterministic.
func (g *Graph) levels(start []string, maxHops int) *bfsLevels {
	l := &bfsLevels{depth: make(map[string]int, len(start))}

	frontier := make([]string, 0, len(start))
	for _, id := range start {
		if _, seen := l.depth[id]; seen {
			continue
		}

		l.depth[id] = 0
		l.order = append(l.order, id)
		frontier = append(frontier, id)
	}

	for hop := 0; hop < maxHops && len(frontier) > 0; hop++ {
		var next []string

		for _, id := range frontier {
			for _, n := range g.Neighbors(id) {
				if _, seen := l.depth[n]; seen {
					continue
				}

				l.depth[n] = hop + 1
				l.order = append(l.order, n)
				next = append(next, n)
			}
		}

		frontier = next
	}

	return l
}

// induced returns the edges whose endpoints are both in visited.
func (g *Graph) induced(visited map[string]int) []models.Edge {
	edges := make([]models.Edge, 0)

	for key, e := range g.edges {
		_, okA := visited[key.A]
		_, okB := visited[key.B]

		if okA && okB {
			edges = append(edges, cloneEdge(e))
		}
	}

	slices.SortFunc(edges, models.CompareEdges)

	return edges
}
