// SPDX-License-Identifier: MIT
// File: methods.go
// Role: Read-only queries over a built Graph.
// Determinism:
//   - Neighbors() and NodeIDs() return ascending ids.
//   - DegreeDistribution() is a map; callers sort keys when order matters.
// Concurrency:
//   - No locks: the Graph is immutable after Build.

package core

import "sort"

// Neighbors returns the neighbor ids of id in ascending order.
//
// An unknown id is not an error: the result is an empty, non-nil slice,
// because a node without recorded edges simply has no neighbors.
//
// Complexity: O(d·log d) time, O(d) space.
func (g *Graph) Neighbors(id int) []int {
	nbrs := g.adjacency[id]
	out := make([]int, 0, len(nbrs))
	for v := range nbrs {
		out = append(out, v)
	}
	sort.Ints(out)

	return out
}

// NeighborSet returns the live neighbor set of id, or nil for an unknown id.
// The map must be treated as read-only; it is shared with the Graph.
//
// Complexity: O(1).
func (g *Graph) NeighborSet(id int) map[int]struct{} {
	return g.adjacency[id]
}

// HasNeighbor reports whether the edge {u,v} exists.
// Complexity: O(1).
func (g *Graph) HasNeighbor(u, v int) bool {
	_, ok := g.adjacency[u][v]
	return ok
}

// Degree returns |Neighbors(id)|, 0 for an unknown id.
// Complexity: O(1).
func (g *Graph) Degree(id int) int {
	return len(g.adjacency[id])
}

// DegreeDistribution maps each observed degree to the number of nodes having it.
// Isolated nodes contribute to degree 0. An empty graph yields an empty map.
//
// Complexity: O(V).
func (g *Graph) DegreeDistribution() map[int]int {
	dist := make(map[int]int)
	for _, nbrs := range g.adjacency {
		dist[len(nbrs)]++
	}

	return dist
}

// NodeIDs returns every known node id in ascending order.
// Complexity: O(V·log V).
func (g *Graph) NodeIDs() []int {
	ids := make([]int, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// HasNode reports whether id was seen as an edge endpoint or predeclared.
func (g *Graph) HasNode(id int) bool {
	_, ok := g.adjacency[id]
	return ok
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int { return len(g.adjacency) }

// EdgeCount returns the number of distinct undirected edges.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// Stats produces a summary of sizes and degree extremes, plus the number of
// self-loops and duplicate edges Build absorbed.
//
// On an empty graph every field is zero.
//
// Complexity: O(V).
func (g *Graph) Stats() Stats {
	s := Stats{
		NodeCount:    len(g.adjacency),
		EdgeCount:    g.edgeCount,
		LoopsSkipped: g.loopsSkipped,
		Duplicates:   g.duplicates,
	}
	if s.NodeCount == 0 {
		return s
	}

	s.MinDegree = -1
	var d, sum int
	for _, nbrs := range g.adjacency {
		d = len(nbrs)
		sum += d
		if d == 0 {
			s.IsolatedCount++
		}
		if s.MinDegree < 0 || d < s.MinDegree {
			s.MinDegree = d
		}
		if d > s.MaxDegree {
			s.MaxDegree = d
		}
	}
	s.MeanDegree = float64(sum) / float64(s.NodeCount)

	return s
}
