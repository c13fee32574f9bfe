package core_test

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/socialnet/core"
)

// ExampleBuild shows the triangle scenario: every node has degree 2.
func ExampleBuild() {
	g, err := core.Build([]core.Edge{{U: 1, V: 2}, {U: 2, V: 3}, {U: 1, V: 3}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("nodes:", g.NodeIDs())
	fmt.Println("neighbors of 2:", g.Neighbors(2))
	fmt.Println("distribution:", g.DegreeDistribution())
	// Output:
	// nodes: [1 2 3]
	// neighbors of 2: [1 3]
	// distribution: map[2:3]
}

// ExampleGraph_DegreeDistribution prints a star's distribution in degree order.
func ExampleGraph_DegreeDistribution() {
	g, _ := core.Build([]core.Edge{{U: 0, V: 1}, {U: 0, V: 2}, {U: 0, V: 3}, {U: 0, V: 4}})

	dist := g.DegreeDistribution()
	degrees := make([]int, 0, len(dist))
	for d := range dist {
		degrees = append(degrees, d)
	}
	sort.Ints(degrees)
	for _, d := range degrees {
		fmt.Printf("degree %d: %d node(s)\n", d, dist[d])
	}
	// Output:
	// degree 1: 4 node(s)
	// degree 4: 1 node(s)
}
