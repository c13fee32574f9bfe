package similarity

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/socialnet/core"
)

// MostSimilarPair scans the graph for the pair with the highest Jaccard score.
//
// The scan is seeded with the two smallest node ids, which is the answer
// whenever no pair scores above 0. Then only pairs sharing a neighbor are
// offered (or every pair, WithExhaustive). Parallel workers each reduce
// their share of outer nodes and the partial results are folded with the
// same tie-break, so the answer is independent of Workers.
//
// Errors:
//   - ErrGraphNil, ErrOptionViolation.
//   - core.ErrEmptyGraph (wrapped) when the graph has fewer than two nodes.
//   - ctx.Err() if the context is cancelled mid-scan.
func MostSimilarPair(g *core.Graph, opts ...Option) (Pair, error) {
	if g == nil {
		return Pair{}, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Pair{}, o.err
	}

	ids := g.NodeIDs()
	if len(ids) < 2 {
		return Pair{}, fmt.Errorf("similarity: %d node(s), need 2: %w", len(ids), core.ErrEmptyGraph)
	}

	seed := Pair{A: ids[0], B: ids[1], Value: Jaccard(g, ids[0], ids[1])}
	workers := o.Workers
	if workers < 2 {
		return scan(o.Ctx, g, ids, seed, 0, 1, o.Exhaustive)
	}
	if workers > len(ids) {
		workers = len(ids)
	}

	partial := make([]Pair, workers)
	eg, ctx := errgroup.WithContext(o.Ctx)
	for w := 0; w < workers; w++ {
		w := w
		eg.Go(func() error {
			best, err := scan(ctx, g, ids, seed, w, workers, o.Exhaustive)
			partial[w] = best
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return Pair{}, err
	}

	best := seed
	for _, p := range partial {
		if best.better(p.A, p.B, p.Value) {
			best = p
		}
	}

	return best, nil
}

// scan reduces the outer nodes ids[offset], ids[offset+stride], ... into a
// local best pair. Striding keeps heavy low-id hubs spread across workers.
func scan(ctx context.Context, g *core.Graph, ids []int, seed Pair, offset, stride int, exhaustive bool) (Pair, error) {
	best := seed
	offer := func(a, b int) {
		v := jaccardSets(g.NeighborSet(a), g.NeighborSet(b))
		if best.better(a, b, v) {
			best = Pair{A: a, B: b, Value: v}
		}
	}

	// seen[b] == a+1 marks b as already offered for the current a.
	var seen map[int]int
	if !exhaustive {
		seen = make(map[int]int)
	}

	for i := offset; i < len(ids); i += stride {
		if err := ctx.Err(); err != nil {
			return best, err
		}
		a := ids[i]

		if exhaustive {
			for _, b := range ids[i+1:] {
				offer(a, b)
			}
			continue
		}

		// Two-hop walk: every b > a that shares a neighbor w with a.
		for w := range g.NeighborSet(a) {
			for b := range g.NeighborSet(w) {
				if b <= a || seen[b] == a+1 {
					continue
				}
				seen[b] = a + 1
				offer(a, b)
			}
		}
	}

	return best, nil
}
