// SPDX-License-Identifier: MIT
// Package: socialnet/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - Generate(bopts, cons...) resolves cfg once and runs cons in order
//     against one Dataset. BuildGraph adds core.Build on top.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical output.
//   - Safety: never panic at runtime; return wrapped sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/socialnet/core"
)

// Dataset is the product of a constructor run: the edge list plus every node
// the constructors declared (isolated ones included).
type Dataset struct {
	Edges []core.Edge
	Nodes []int
}

// addNode declares a node.
func (d *Dataset) addNode(id int) { d.Nodes = append(d.Nodes, id) }

// addEdge appends an undirected edge.
func (d *Dataset) addEdge(u, v int) { d.Edges = append(d.Edges, core.Edge{U: u, V: v}) }

// Constructor appends a deterministic topology to d using the resolved
// builderConfig. Constructors validate parameters before emitting anything.
type Constructor func(d *Dataset, cfg builderConfig) error

// Generate resolves bopts and applies all constructors in order.
// Any constructor error is wrapped with "Generate: %w" and returned at once.
func Generate(bopts []BuilderOption, cons ...Constructor) (*Dataset, error) {
	cfg := newBuilderConfig(bopts...)
	d := &Dataset{}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Generate: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return nil, fmt.Errorf("Generate: %w", err)
		}
	}

	return d, nil
}

// BuildGraph generates a Dataset and builds a core.Graph from it. Declared
// nodes are passed through core.WithNodes so isolated nodes are kept.
func BuildGraph(gopts []core.Option, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	d, err := Generate(bopts, cons...)
	if err != nil {
		return nil, err
	}

	opts := make([]core.Option, 0, len(gopts)+1)
	opts = append(opts, core.WithNodes(d.Nodes...))
	opts = append(opts, gopts...)
	g, err := core.Build(d.Edges, opts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// Shift returns a Constructor that runs c with every id offset by k.
// Used to place several topologies side by side as disjoint components.
func Shift(k int, c Constructor) Constructor {
	return func(d *Dataset, cfg builderConfig) error {
		if c == nil {
			return fmt.Errorf("%s: nil constructor: %w", methodShift, ErrConstructFailed)
		}
		inner := cfg.idFn
		cfg.idFn = func(idx int) int { return inner(idx) + k }

		return c(d, cfg)
	}
}

// ids resolves and validates the ids for indexes [0,n).
func ids(method string, n int, cfg builderConfig) ([]int, error) {
	out := make([]int, n)
	for i := range out {
		out[i] = cfg.idFn(i)
		if out[i] < 0 {
			return nil, fmt.Errorf("%s: index %d mapped to negative id %d: %w", method, i, out[i], ErrConstructFailed)
		}
	}

	return out, nil
}
