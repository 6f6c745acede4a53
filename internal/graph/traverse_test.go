package graph_test

import (
	"reflect"
	"slices"
	"testing"

	"github.com/persistorai/mantle-explorer/internal/graph"
	"github.com/persistorai/mantle-explorer/internal/models"
)

// chain builds ids[0]-ids[1]-...-ids[n-1] with one edge per consecutive pair.
func chain(t *testing.T, ids ...string) *graph.Graph {
	t.Helper()

	g := graph.New()
	for _, id := range ids {
		item, err := models.NewItem(models.ItemFields{ID: id, Name: "item " + id, Type: "Service"})
		if err != nil {
			t.Fatalf("NewItem(%s): %v", id, err)
		}
		g.AddItem(item)
	}

	for i := 1; i < len(ids); i++ {
		if !g.AddEdge(ids[i-1], ids[i], "params1") {
			t.Fatalf("AddEdge(%s, %s) failed", ids[i-1], ids[i])
		}
	}

	return g
}

func sortedIDs(r *models.TraverseResult) []string {
	ids := r.NodeIDs()
	slices.Sort(ids)
	return ids
}

func TestTraverse_Chain(t *testing.T) {
	g := chain(t, "A", "B", "C", "D")

	tests := []struct {
		depth     int
		wantNodes []string
		wantEdges []string
	}{
		{depth: 1, wantNodes: []string{"A", "B", "C"}, wantEdges: []string{"A-B", "B-C"}},
		{depth: 2, wantNodes: []string{"A", "B", "C", "D"}, wantEdges: []string{"A-B", "B-C", "C-D"}},
	}

	for _, tc := range tests {
		r := g.Traverse("B", tc.depth)

		if got := sortedIDs(r); !slices.Equal(got, tc.wantNodes) {
			t.Errorf("depth %d nodes = %v, want %v", tc.depth, got, tc.wantNodes)
		}
		if got := edgePairs(r.Edges); !slices.Equal(got, tc.wantEdges) {
			t.Errorf("depth %d edges = %v, want %v", tc.depth, got, tc.wantEdges)
		}
	}
}

func TestTraverse_DepthZero(t *testing.T) {
	g := chain(t, "A", "B", "C")

	r := g.Traverse("B", 0)
	if !slices.Equal(r.NodeIDs(), []string{"B"}) {
		t.Errorf("nodes = %v, want [B]", r.NodeIDs())
	}
	if len(r.Edges) != 0 {
		t.Errorf("edges = %v, want none", r.Edges)
	}
	if r.Nodes[0].Depth != 0 {
		t.Errorf("root depth = %d, want 0", r.Nodes[0].Depth)
	}
}

func TestTraverse_UnknownRoot(t *testing.T) {
	g := chain(t, "A", "B")

	r := g.Traverse("nope", 3)
	if len(r.Nodes) != 0 || len(r.Edges) != 0 {
		t.Errorf("expected empty result, got %d nodes %d edges", len(r.Nodes), len(r.Edges))
	}
	if r.Nodes == nil || r.Edges == nil {
		t.Error("expected empty, non-nil slices")
	}
}

func TestTraverse_Monotonic(t *testing.T) {
	g := graph.New()
	ids := []string{"r", "a", "b", "c", "d", "e", "f", "g"}
	for _, id := range ids {
		item, _ := models.NewItem(models.ItemFields{ID: id})
		g.AddItem(item)
	}
	for _, pair := range [][2]string{{"r", "a"}, {"r", "b"}, {"a", "b"}, {"a", "c"}, {"c", "d"}, {"d", "e"}, {"e", "f"}, {"b", "g"}} {
		g.AddEdge(pair[0], pair[1], "params1")
	}

	prev := g.Traverse("r", 0)
	for d := 1; d <= graph.MaxDepth; d++ {
		cur := g.Traverse("r", d)

		for _, id := range prev.NodeIDs() {
			if !slices.Contains(cur.NodeIDs(), id) {
				t.Errorf("depth %d lost node %s from depth %d", d, id, d-1)
			}
		}

		curEdges := edgePairs(cur.Edges)
		for _, e := range edgePairs(prev.Edges) {
			if !slices.Contains(curEdges, e) {
				t.Errorf("depth %d lost edge %s from depth %d", d, e, d-1)
			}
		}

		prev = cur
	}
}

func TestTraverse_Idempotent(t *testing.T) {
	g := chain(t, "A", "B", "C", "D", "E")

	first := g.Traverse("C", 2)
	second := g.Traverse("C", 2)

	if !reflect.DeepEqual(first, second) {
		t.Error("repeated traversal returned different results")
	}
	if g.Len() != 5 || g.EdgeCount() != 4 {
		t.Error("traversal modified the graph")
	}
}

func TestTraverse_DepthsAndClamp(t *testing.T) {
	g := chain(t, "A", "B", "C", "D", "E", "F", "G")

	r := g.Traverse("A", 99)
	if r.Depth != graph.MaxDepth {
		t.Errorf("depth = %d, want clamp to %d", r.Depth, graph.MaxDepth)
	}
	if got := r.NodeIDs(); !slices.Equal(got, []string{"A", "B", "C", "D", "E"}) {
		t.Errorf("nodes = %v, want A..E", got)
	}
	for i, n := range r.Nodes {
		if n.Depth != i {
			t.Errorf("node %s depth = %d, want %d", n.ID, n.Depth, i)
		}
	}

	neg := g.Traverse("D", -3)
	if !slices.Equal(neg.NodeIDs(), []string{"D"}) {
		t.Errorf("negative depth nodes = %v, want [D]", neg.NodeIDs())
	}
}

func TestTraverse_InducedEdges(t *testing.T) {
	g := chain(t, "A", "B", "C")
	g.AddEdge("A", "C", "params2")

	r := g.Traverse("A", 1)
	if got := edgePairs(r.Edges); !slices.Equal(got, []string{"A-B", "A-C", "B-C"}) {
		t.Errorf("edges = %v, want [A-B A-C B-C]", got)
	}
}

func TestTraverse_StopsWhenExhausted(t *testing.T) {
	g := chain(t, "A", "B")

	r := g.Traverse("A", graph.MaxDepth)
	if len(r.Nodes) != 2 || len(r.Edges) != 1 {
		t.Errorf("got %d nodes %d edges, want 2 and 1", len(r.Nodes), len(r.Edges))
	}
}

func TestClampDepth(t *testing.T) {
	for in, want := range map[int]int{-1: 0, 0: 0, 2: 2, 4: 4, 5: 4} {
		if got := graph.ClampDepth(in); got != want {
			t.Errorf("ClampDepth(%d) = %d, want %d", in, got, want)
		}
	}
}
