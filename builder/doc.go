// Package builder provides deterministic synthetic social graphs for tests,
// benchmarks and the `socialnet generate` command.
//
// The package offers the following key components:
//
//   - Constructors (func(*Dataset, builderConfig) error):
//     – Star(n):             hub idFn(0) connected to n-1 leaves.
//     – Path(n):             0–1–…–(n-1).
//     – Cycle(n):            Path(n) closed back to 0.
//     – Complete(n):         every unordered pair.
//     – RandomSparse(n, p):  Erdős–Rényi G(n,p) over unordered pairs.
//     – Shift(k, c):         runs c with every id shifted by k (disjoint unions).
//   - Configuration primitives:
//     – BuilderOption:       a function that mutates builderConfig before use.
//     – WithSeed / WithRand: RNG for stochastic constructors.
//     – WithIDScheme:        index → node id mapping (default identity).
//   - Entry points:
//     – Generate(bopts, cons...)             → *Dataset (edges + declared nodes).
//     – BuildGraph(gopts, bopts, cons...)    → *core.Graph.
//
// Guarantees:
//
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical
//     edge lists, in a documented emission order.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel runtime errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed) wrapped with the method name.
//   - Every constructor declares all of its nodes, so isolated nodes (e.g. from
//     RandomSparse with small p) survive into the built graph.
package builder
