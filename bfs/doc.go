// Package bfs provides breadth-first search over a core.Graph, returning
// hop-count distances, parent links and visit order, plus the derived
// average shortest-path length and connected components.
//
// What
//
//   - Explore nodes in non-decreasing hop distance from a source node.
//   - Returns a Result containing:
//   - Order:  visit sequence
//   - Dist:   node → distance (edges) from source; unreachable nodes are ABSENT
//   - Parent: node → predecessor in the BFS tree (source has none)
//   - Supports functional hooks at three stages:
//   - OnEnqueue (when a node is discovered)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Derived analyses
//
//   - AverageShortestPathLength(g, source): mean of Dist over reachable nodes,
//     EXCLUDING the source itself. When nothing but the source is reachable
//     the mean is 0 and PathLength.Defined is false, never a division by zero.
//   - Components(g): connected components, each sorted ascending.
//
// Determinism
//
//	core.Graph.Neighbors returns ids in ascending order and BFS enqueues them in
//	that order, so Order is reproducible. Dist never depends on it: any
//	expansion order yields the same hop counts.
//
// Complexity (V = reachable nodes, E = reachable edges)
//
//   - Time:   O(V + E·log d) (neighbor lists are sorted per visit)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, 0)
//	if errors.Is(err, core.ErrUnknownNode) {
//	    // source never appeared in any edge
//	}
//	fmt.Println(res.Dist[42])
//
//	apl, _ := bfs.AverageShortestPathLength(g, 0)
//	if apl.Defined {
//	    fmt.Printf("%.2f\n", apl.Mean)
//	}
//
// Errors
//
//   - ErrGraphNil         if the graph pointer is nil.
//   - core.ErrUnknownNode if the source was never seen (wrapped).
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit, or ctx.Err().
package bfs
