package graph

// Focus restricts the graph to items within maxHops of any item carrying
// one of flags. It returns the graph unchanged, with zero seeds, when no
// item is flagged.
func (g *Graph) Focus(flags []string, maxHops int) (*Graph, int) {
	var seeds []string

	for _, id := range g.IDs() {
		item := g.items[id]
		for _, f := range flags {
			if item.HasFlag(f) {
				seeds = append(seeds, id)
				break
			}
		}
	}

	if len(seeds) == 0 {
		return g, 0
	}

	reach := g.Reachable(seeds, maxHops)

	keep := make(map[string]bool, len(reach))
	for id := range reach {
		keep[id] = true
	}

	return g.Restrict(keep), len(seeds)
}
