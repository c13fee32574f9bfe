// Package bfs provides breadth-first search over a core.Graph,
// returning hop-count distances, parent links, and visit order.
//
// BFS explores nodes in increasing distance from a source node,
// with optional hooks and depth limiting.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/socialnet/core"
)

// queueItem pairs a node id with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g starting from source,
// applying any number of functional Options.
// Returns ErrGraphNil, a wrapped core.ErrUnknownNode for an unseen source,
// ErrOptionViolation for bad options, ctx.Err() on cancellation, or any
// user-supplied hook error.
func BFS(g *core.Graph, source int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if !g.HasNode(source) {
		return nil, fmt.Errorf("bfs: source %d: %w", source, core.ErrUnknownNode)
	}

	w := newWalker(g, o, source)
	// Seed queue with the source (no parent)
	w.enqueue(source, 0)
	w.opts.OnEnqueue(source, 0)

	return w.res, w.loop()
}

// newWalker sizes the buffers for the worst case, the whole graph.
func newWalker(g *core.Graph, o Options, source int) *walker {
	n := g.NodeCount()
	return &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Source: source,
			Order:  make([]int, 0, n),
			Dist:   make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}
}

// enqueue marks id discovered at depth d and adds it to the queue.
// Dist doubles as the visited set.
func (w *walker) enqueue(id, d int) {
	w.res.Dist[id] = d
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per node)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.id, item.depth)

	return item
}

// visit records the node in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
	}

	return nil
}

// enqueueNeighbors applies MaxDepth and enqueues each undiscovered neighbor.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.graph.Neighbors(item.id) {
		if _, seen := w.res.Dist[nbr]; seen {
			continue
		}
		w.enqueue(nbr, nextDepth)
		w.res.Parent[nbr] = item.id
		w.opts.OnEnqueue(nbr, nextDepth)
	}
}
