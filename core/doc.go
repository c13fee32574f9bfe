// Package core provides the immutable in-memory Graph used by every analysis
// in socialnet.
//
// The Graph G = (V,E) is undirected and unweighted:
//
//   - Nodes are non-negative int ids, dense or sparse.
//   - Adjacency is stored as sets: adjacency[u][v] = struct{}{}, mirrored
//     for every edge, so membership is O(1) and symmetry holds by construction.
//   - Duplicate edges are idempotent (set semantics), they never double-count degree.
//   - Self-loops are ignored by default (LoopsIgnore); the endpoint is still
//     registered as a node with no neighbors. WithLoopPolicy(LoopsReject) turns
//     them into ErrInvalidEdge.
//
// Lifecycle:
//
//	Build(edges, opts...) is the only way to create a Graph. It validates the
//	whole edge list in one pass and either returns a complete Graph or an error;
//	a partially built Graph is never observable. There are no mutators, so a
//	Graph may be shared by any number of goroutines without locking.
//
// Core Methods:
//
//	// Construction
//	Build(edges []Edge, opts ...Option) (*Graph, error) // O(E)
//
//	// Query
//	Neighbors(id int) []int                  // O(d·log d), sorted copy, empty for unknown ids
//	NeighborSet(id int) map[int]struct{}     // O(1), live read-only view
//	HasNeighbor(u, v int) bool               // O(1)
//	Degree(id int) int                       // O(1)
//	DegreeDistribution() map[int]int         // O(V)
//	NodeIDs() []int                          // O(V·log V), ascending
//	HasNode(id int) bool                     // O(1)
//	NodeCount() int, EdgeCount() int         // O(1)
//	Stats() Stats                            // O(V)
//
// Errors:
//
//	ErrInvalidEdge   – negative node id, or self-loop under LoopsReject
//	ErrUnknownNode   – reserved for queries that require an existing node (bfs, similarity)
//	ErrEmptyGraph    – reserved for queries that need at least one (or two) nodes
//
// Unknown ids are NOT an error for neighbor or degree lookups: a node without
// recorded edges simply has an empty neighborhood.
package core
