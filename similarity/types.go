package similarity

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for similarity queries.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("similarity: graph is nil")

	// ErrInvalidK is returned by TopK for k < 0.
	ErrInvalidK = errors.New("similarity: k must be non-negative")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("similarity: invalid option supplied")
)

// Score is one ranked neighbor-overlap result.
type Score struct {
	Node  int     `json:"node"`
	Value float64 `json:"score"`
}

// Pair is an unordered node pair with its score; A < B always.
type Pair struct {
	A     int     `json:"a"`
	B     int     `json:"b"`
	Value float64 `json:"score"`
}

// better reports whether (a,b,v) should replace p: higher score wins,
// equal scores fall back to the lexicographically smaller pair.
func (p Pair) better(a, b int, v float64) bool {
	if v != p.Value {
		return v > p.Value
	}
	if a != p.A {
		return a < p.A
	}
	return b < p.B
}

// Option configures MostSimilarPair.
type Option func(*Options)

// Options holds the resolved MostSimilarPair settings.
type Options struct {
	// Ctx cancels a long scan. Checked once per outer node.
	Ctx context.Context

	// Workers is the number of goroutines scanning in parallel.
	// 0 and 1 both mean a sequential scan.
	Workers int

	// Exhaustive disables the shared-neighbor candidate restriction and
	// scores every pair.
	Exhaustive bool

	err error
}

// DefaultOptions returns a sequential, restricted scan with a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers partitions the scan across n goroutines.
//
//	n > 1: parallel scan
//	n == 0 or 1: sequential
//	n < 0: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithExhaustive scores all V·(V-1)/2 pairs instead of only pairs that share a neighbor.
func WithExhaustive() Option {
	return func(o *Options) { o.Exhaustive = true }
}
