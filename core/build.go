// SPDX-License-Identifier: MIT
// File: build.go
// Role: The single constructor for Graph.
// Policy:
//   - One pass over the input; both endpoints are inserted into each other's set.
//   - Validation failures abort the whole build (nil graph, wrapped ErrInvalidEdge).
//   - Self-loops follow buildConfig.loops; duplicates are absorbed by set semantics.

package core

import "fmt"

// Build creates a Graph from the given edge list.
//
// Implementation:
//   - Stage 1: Resolve options.
//   - Stage 2: Register predeclared nodes (WithNodes).
//   - Stage 3: For every edge, validate ids, apply the loop policy and insert
//     u→v and v→u. An already-present pair is counted as a duplicate.
//
// Errors:
//   - ErrInvalidEdge (wrapped with the edge index and pair) for a negative id,
//     or for a self-loop under LoopsReject.
//
// Complexity:
//   - Time O(E + N) where N is the number of predeclared nodes, Space O(V + E).
func Build(edges []Edge, opts ...Option) (*Graph, error) {
	cfg := buildConfig{loops: LoopsIgnore}
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Graph{adjacency: make(map[int]map[int]struct{})}

	for _, id := range cfg.isolated {
		if id < 0 {
			return nil, fmt.Errorf("%w: node id %d is negative", ErrInvalidEdge, id)
		}
		g.ensure(id)
	}

	var (
		i    int
		e    Edge
		nbrs map[int]struct{}
	)
	for i, e = range edges {
		if e.U < 0 || e.V < 0 {
			return nil, fmt.Errorf("%w: edge #%d (%d,%d) has a negative id", ErrInvalidEdge, i, e.U, e.V)
		}
		if e.U == e.V {
			if cfg.loops == LoopsReject {
				return nil, fmt.Errorf("%w: edge #%d (%d,%d) is a self-loop", ErrInvalidEdge, i, e.U, e.V)
			}
			g.ensure(e.U)
			g.loopsSkipped++
			continue
		}

		nbrs = g.ensure(e.U)
		if _, dup := nbrs[e.V]; dup {
			g.duplicates++
			continue
		}
		nbrs[e.V] = struct{}{}
		g.ensure(e.V)[e.U] = struct{}{}
		g.edgeCount++
	}

	return g, nil
}

// ensure returns the neighbor set of id, creating an empty one if needed.
func (g *Graph) ensure(id int) map[int]struct{} {
	nbrs, ok := g.adjacency[id]
	if !ok {
		nbrs = make(map[int]struct{})
		g.adjacency[id] = nbrs
	}

	return nbrs
}
