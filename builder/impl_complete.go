// SPDX-License-Identifier: MIT
// Package: socialnet/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); K_1 is a single isolated node.
//   - Emits {i,j} for i<j, i ascending then j ascending.
//
// Complexity:
//   - Time: O(n²), Space: O(n²).

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(d *Dataset, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		nodes, err := ids(methodComplete, n, cfg)
		if err != nil {
			return err
		}

		for i, u := range nodes {
			d.addNode(u)
			for _, v := range nodes[i+1:] {
				d.addEdge(u, v)
			}
		}

		return nil
	}
}
