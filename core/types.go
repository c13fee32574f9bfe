// SPDX-License-Identifier: MIT
// Package core defines the central Graph and Edge types, the functional
// options accepted by Build, and the sentinel errors shared by the analysis
// packages (bfs, similarity).
//
// Errors:
//
//	ErrInvalidEdge  - an edge endpoint is negative, or a self-loop was rejected.
//	ErrUnknownNode  - a query referenced a node id never seen in any edge.
//	ErrEmptyGraph   - a query needs nodes but the graph has none (or too few).
package core

import "errors"

// Sentinel errors for core graph construction and queries.
var (
	// ErrInvalidEdge indicates a malformed pair was supplied to Build.
	ErrInvalidEdge = errors.New("core: invalid edge")

	// ErrUnknownNode indicates an operation referenced a node that is not in the graph.
	ErrUnknownNode = errors.New("core: unknown node")

	// ErrEmptyGraph indicates an operation that needs nodes ran on an empty graph.
	ErrEmptyGraph = errors.New("core: empty graph")
)

// Edge is an unordered pair of node ids. U and V are interchangeable.
type Edge struct {
	U int `json:"u"`
	V int `json:"v"`
}

// LoopPolicy decides what Build does with an edge (u,u).
type LoopPolicy int

const (
	// LoopsIgnore drops the self-loop but registers u as a node.
	LoopsIgnore LoopPolicy = iota
	// LoopsReject aborts Build with ErrInvalidEdge.
	LoopsReject
)

// String implements fmt.Stringer.
func (p LoopPolicy) String() string {
	switch p {
	case LoopsIgnore:
		return "ignore"
	case LoopsReject:
		return "reject"
	default:
		return "unknown"
	}
}

// Option configures Build.
type Option func(*buildConfig)

// buildConfig is resolved once per Build call and never escapes it.
type buildConfig struct {
	loops    LoopPolicy
	isolated []int
}

// WithLoopPolicy selects how self-loops are handled (default LoopsIgnore).
func WithLoopPolicy(p LoopPolicy) Option {
	return func(c *buildConfig) { c.loops = p }
}

// WithNodes predeclares nodes that must exist even when no edge touches them.
// Repeated calls accumulate.
func WithNodes(ids ...int) Option {
	return func(c *buildConfig) { c.isolated = append(c.isolated, ids...) }
}

// Graph is the immutable undirected adjacency-set graph.
//
// adjacency[u] is the neighbor set of u; every known node has an entry,
// possibly empty. edgeCount counts distinct unordered pairs.
type Graph struct {
	adjacency map[int]map[int]struct{}
	edgeCount int

	// Build bookkeeping, reported by Stats.
	loopsSkipped int
	duplicates   int
}

// Stats is a read-only summary of a Graph.
type Stats struct {
	NodeCount     int     `json:"node_count"`
	EdgeCount     int     `json:"edge_count"`
	IsolatedCount int     `json:"isolated_count"`
	MinDegree     int     `json:"min_degree"`
	MaxDegree     int     `json:"max_degree"`
	MeanDegree    float64 `json:"mean_degree"`
	LoopsSkipped  int     `json:"loops_skipped"`
	Duplicates    int     `json:"duplicate_edges"`
}
