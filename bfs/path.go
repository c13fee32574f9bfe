package bfs

import (
	"sort"

	"github.com/katalvlaran/socialnet/core"
)

// AverageShortestPathLength runs BFS from source and averages the distances
// to every reachable node other than source itself.
//
// Distance 0 (the source) is excluded. If source reaches nothing else,
// Mean is 0 and Defined is false.
//
// Errors are those of BFS.
func AverageShortestPathLength(g *core.Graph, source int, opts ...Option) (PathLength, error) {
	res, err := BFS(g, source, opts...)
	if err != nil {
		return PathLength{Source: source}, err
	}

	pl := PathLength{Source: source}
	for id, d := range res.Dist {
		if id == source {
			continue
		}
		pl.Total += d
		pl.Reached++
	}
	if pl.Reached > 0 {
		pl.Mean = float64(pl.Total) / float64(pl.Reached)
		pl.Defined = true
	}

	return pl, nil
}

// Components partitions the nodes of g into connected components.
// Each component is sorted ascending and components are ordered by their
// smallest member. A nil or empty graph yields nil.
//
// Complexity: O(V + E·log d).
func Components(g *core.Graph) [][]int {
	if g == nil || g.NodeCount() == 0 {
		return nil
	}

	var (
		comps [][]int
		seen  = make(map[int]struct{}, g.NodeCount())
	)
	// NodeIDs is ascending, so the first unseen id is the component minimum.
	for _, id := range g.NodeIDs() {
		if _, ok := seen[id]; ok {
			continue
		}
		w := newWalker(g, DefaultOptions(), id)
		w.enqueue(id, 0)
		_ = w.loop() // background context and no-op hooks: cannot fail

		comp := make([]int, 0, len(w.res.Order))
		for _, v := range w.res.Order {
			seen[v] = struct{}{}
			comp = append(comp, v)
		}
		sort.Ints(comp)
		comps = append(comps, comp)
	}

	return comps
}
