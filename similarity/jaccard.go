package similarity

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/socialnet/core"
)

// Jaccard returns |N(a) ∩ N(b)| / |N(a) ∪ N(b)|, or 0 when both sets are empty.
// Unknown ids have empty neighborhoods. Jaccard(g,a,a) is 1 for a node with
// neighbors and 0 otherwise. A nil graph scores 0.
func Jaccard(g *core.Graph, a, b int) float64 {
	if g == nil {
		return 0
	}
	return jaccardSets(g.NeighborSet(a), g.NeighborSet(b))
}

// jaccardSets probes the larger set with the smaller one.
func jaccardSets(x, y map[int]struct{}) float64 {
	if len(x) > len(y) {
		x, y = y, x
	}
	inter := 0
	for v := range x {
		if _, ok := y[v]; ok {
			inter++
		}
	}
	union := len(x) + len(y) - inter
	if union == 0 {
		return 0
	}

	return float64(inter) / float64(union)
}

// TopK scores target against every other node and returns the k best,
// sorted by score descending with ties broken by ascending node id.
// The result length is min(k, V-1). k == 0 yields an empty slice.
//
// Complexity: O(V · avg-degree + V·log V).
func TopK(g *core.Graph, target, k int) ([]Score, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if k < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidK, k)
	}
	if !g.HasNode(target) {
		return nil, fmt.Errorf("similarity: target %d: %w", target, core.ErrUnknownNode)
	}

	ids := g.NodeIDs()
	tset := g.NeighborSet(target)
	scores := make([]Score, 0, len(ids))
	for _, id := range ids {
		if id == target {
			continue
		}
		scores = append(scores, Score{Node: id, Value: jaccardSets(tset, g.NeighborSet(id))})
	}

	// ids are ascending, so a stable sort on score alone keeps node order on ties.
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].Value > scores[j].Value })
	if k < len(scores) {
		scores = scores[:k]
	}

	return scores, nil
}
