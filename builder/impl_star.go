// SPDX-License-Identifier: MIT
// Package: socialnet/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Hub is idFn(0); leaves are idFn(1..n-1).
//   - Emits spokes hub–leaf[i] in increasing i.
//
// Complexity:
//   - Time: O(n), Space: O(n) for the emitted edges.

package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star: one hub and n-1 leaves.
// Every pair of leaves has Jaccard similarity 1; hub–leaf pairs score 0.
func Star(n int) Constructor {
	return func(d *Dataset, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		nodes, err := ids(methodStar, n, cfg)
		if err != nil {
			return err
		}

		hub := nodes[0]
		d.addNode(hub)
		for _, leaf := range nodes[1:] {
			d.addNode(leaf)
			d.addEdge(hub, leaf)
		}

		return nil
	}
}
