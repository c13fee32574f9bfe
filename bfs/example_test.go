package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/socialnet/bfs"
	"github.com/katalvlaran/socialnet/core"
)

// ExampleBFS_gridTraversal demonstrates BFS layering on a 3×3 grid (9 nodes).
// Node i*3+j sits at row i, column j; the visit order follows Manhattan distance.
func ExampleBFS_gridTraversal() {
	var edges []core.Edge
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if j+1 < 3 {
				edges = append(edges, core.Edge{U: i*3 + j, V: i*3 + j + 1})
			}
			if i+1 < 3 {
				edges = append(edges, core.Edge{U: i*3 + j, V: (i+1)*3 + j})
			}
		}
	}
	g, _ := core.Build(edges)

	res, err := bfs.BFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	fmt.Println(res.Dist[8])
	// Output:
	// [0 1 3 2 4 6 5 7 8]
	// 4
}

// ExampleBFS_shortestPathNetwork finds the fewest-hop path when two routes compete:
// 0–1–2–3–10 (4 hops) and 0–4–5–10 (3 hops).
func ExampleBFS_shortestPathNetwork() {
	g, _ := core.Build([]core.Edge{
		{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 10},
		{U: 0, V: 4}, {U: 4, V: 5}, {U: 5, V: 10},
		{U: 2, V: 6}, {U: 6, V: 7},
	})

	res, _ := bfs.BFS(g, 0)
	path, err := res.PathTo(10)
	if err != nil {
		fmt.Println("no path:", err)
		return
	}
	fmt.Println(path)
	// Output:
	// [0 4 5 10]
}

// ExampleAverageShortestPathLength uses the disconnected scenario: only node 2
// is reachable from 1, so the mean is 1.
func ExampleAverageShortestPathLength() {
	g, _ := core.Build([]core.Edge{{U: 1, V: 2}, {U: 3, V: 4}})

	pl, err := bfs.AverageShortestPathLength(g, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("mean=%.2f reached=%d defined=%v\n", pl.Mean, pl.Reached, pl.Defined)
	// Output:
	// mean=1.00 reached=1 defined=true
}
