// Package similarity scores how much two nodes' neighborhoods overlap, using
// the Jaccard index |N(a) ∩ N(b)| / |N(a) ∪ N(b)| over core.Graph neighbor sets.
//
// What
//
//   - Jaccard(g, a, b):        one score in [0,1]. Two empty neighborhoods
//     score 0 (explicit policy, not a division by zero). An unknown id has
//     an empty neighborhood, exactly as core.Graph.Neighbors reports it.
//   - TopK(g, target, k):      the k nodes most similar to target, sorted by
//     score descending, ties by node id ascending. The target is excluded.
//   - MostSimilarPair(g, ...): the pair (a<b) with the maximum score over the
//     whole graph, ties broken by the lexicographically smallest (a, b).
//
// Cost
//
//   - Jaccard: O(min(deg a, deg b)); the smaller set probes the larger.
//   - TopK: O(V · avg-degree). This is the dominant cost for large graphs;
//     callers on millions of nodes should restrict the candidate set first.
//   - MostSimilarPair: O(V²) in the worst case, the bottleneck of the system.
//     Only pairs sharing at least one neighbor are scored (any other pair
//     scores 0), which on sparse social graphs cuts the work to
//     O(Σ_w deg(w)²). When no pair scores above 0 the result is the
//     lexicographically smallest pair with score 0, identical to the plain
//     all-pairs scan (WithExhaustive).
//
// Concurrency
//
//	core.Graph is immutable, so MostSimilarPair can partition the outer loop
//	across goroutines (WithWorkers) under an errgroup. Each worker keeps its own
//	best pair; the final reduction applies the same tie-break as the
//	sequential scan, so the result never depends on the worker count.
//
// Errors
//
//   - ErrGraphNil         nil graph.
//   - ErrInvalidK         negative k in TopK.
//   - ErrOptionViolation  invalid Option (e.g. negative worker count).
//   - core.ErrUnknownNode TopK target never seen (wrapped).
//   - core.ErrEmptyGraph  MostSimilarPair on fewer than two nodes (wrapped).
package similarity
