package bfs_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/katalvlaran/socialnet/bfs"
	"github.com/katalvlaran/socialnet/core"
)

const eps = 1e-9

func TestAverageShortestPathLength(t *testing.T) {
	tests := []struct {
		name    string
		edges   []core.Edge
		nodes   []int
		source  int
		mean    float64
		reached int
		defined bool
	}{
		{
			name:    "triangle",
			edges:   []core.Edge{{U: 1, V: 2}, {U: 2, V: 3}, {U: 1, V: 3}},
			source:  1,
			mean:    1.0,
			reached: 2,
			defined: true,
		},
		{
			name:    "disconnected counts only own component",
			edges:   []core.Edge{{U: 1, V: 2}, {U: 3, V: 4}},
			source:  1,
			mean:    1.0,
			reached: 1,
			defined: true,
		},
		{
			name:    "path from end",
			edges:   chain(4), // 0–1–2–3–4: (1+2+3+4)/4
			source:  0,
			mean:    2.5,
			reached: 4,
			defined: true,
		},
		{
			name:    "star leaf",
			edges:   []core.Edge{{U: 0, V: 1}, {U: 0, V: 2}, {U: 0, V: 3}, {U: 0, V: 4}},
			source:  1, // 0 at 1 hop, three leaves at 2 hops
			mean:    7.0 / 4.0,
			reached: 4,
			defined: true,
		},
		{
			name:    "isolated source is flagged, not divided",
			edges:   []core.Edge{{U: 1, V: 2}},
			nodes:   []int{9},
			source:  9,
			mean:    0,
			reached: 0,
			defined: false,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := mustBuild(t, tc.edges, core.WithNodes(tc.nodes...))
			pl, err := bfs.AverageShortestPathLength(g, tc.source)
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(pl.Mean-tc.mean) > eps {
				t.Errorf("Mean = %v; want %v", pl.Mean, tc.mean)
			}
			if pl.Reached != tc.reached {
				t.Errorf("Reached = %d; want %d", pl.Reached, tc.reached)
			}
			if pl.Defined != tc.defined {
				t.Errorf("Defined = %v; want %v", pl.Defined, tc.defined)
			}
			if pl.Source != tc.source {
				t.Errorf("Source = %d; want %d", pl.Source, tc.source)
			}
			if math.IsNaN(pl.Mean) || math.IsInf(pl.Mean, 0) {
				t.Errorf("Mean must be finite, got %v", pl.Mean)
			}
		})
	}
}

func TestAverageShortestPathLength_UnknownSource(t *testing.T) {
	g := mustBuild(t, []core.Edge{{U: 1, V: 2}})
	if _, err := bfs.AverageShortestPathLength(g, 3); !errors.Is(err, core.ErrUnknownNode) {
		t.Errorf("want ErrUnknownNode, got %v", err)
	}
}

func TestComponents(t *testing.T) {
	g := mustBuild(t,
		[]core.Edge{{U: 4, V: 3}, {U: 1, V: 2}, {U: 2, V: 10}, {U: 6, V: 6}},
	)
	want := [][]int{{1, 2, 10}, {3, 4}, {6}}
	if got := bfs.Components(g); !reflect.DeepEqual(got, want) {
		t.Errorf("Components = %v; want %v", got, want)
	}

	if got := bfs.Components(mustBuild(t, nil)); got != nil {
		t.Errorf("empty graph: Components = %v; want nil", got)
	}
	if got := bfs.Components(nil); got != nil {
		t.Errorf("nil graph: Components = %v; want nil", got)
	}
}
