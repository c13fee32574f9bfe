// SPDX-License-Identifier: MIT
// Package: socialnet/builder
//
// impl_path.go - implementation of Path(n) and Cycle(n) constructors.
//
// Contract:
//   - Path: n ≥ 2, edges (i-1)–i for i=1..n-1.
//   - Cycle: n ≥ 3, Path edges plus (n-1)–0.
//   - Nodes are idFn(0..n-1) in ascending index order.
//
// Complexity:
//   - Time: O(n), Space: O(n).

package builder

import "fmt"

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	methodShift   = "Shift"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor that builds a simple path over n nodes.
func Path(n int) Constructor {
	return func(d *Dataset, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		nodes, err := ids(methodPath, n, cfg)
		if err != nil {
			return err
		}
		emitPath(d, nodes)

		return nil
	}
}

// Cycle returns a Constructor that builds the ring C_n.
func Cycle(n int) Constructor {
	return func(d *Dataset, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		nodes, err := ids(methodCycle, n, cfg)
		if err != nil {
			return err
		}
		emitPath(d, nodes)
		// close the ring
		d.addEdge(nodes[n-1], nodes[0])

		return nil
	}
}

// emitPath declares nodes and links consecutive ones.
func emitPath(d *Dataset, nodes []int) {
	for i, id := range nodes {
		d.addNode(id)
		if i > 0 {
			d.addEdge(nodes[i-1], id)
		}
	}
}
