// Package bfs provides breadth-first search over a core.Graph.
package bfs

import (
	"github.com/katalvlaran/socialgraph/core"
)

// walker encapsulates mutable BFS state for a single run.
type walker[V comparable] struct {
	graph *core.Graph[V]
	opts  Options
	queue []V
	state *State[V]
	res   *Result[V]
}

// BFS runs breadth-first search on g from source, applying any number of
// functional Options.
// Returns ErrGraphNil or ErrSourceNotFound for invalid input.
func BFS[V comparable](g *core.Graph[V], source V, opts ...Option) (*Result[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(source) {
		return nil, ErrSourceNotFound
	}

	// Fresh table over every vertex: White, Infinite, no predecessor.
	vertices := g.Vertices()
	w := &walker[V]{
		graph: g,
		opts:  o,
		queue: make([]V, 0, len(vertices)),
		state: newState(vertices),
	}
	w.res = &Result[V]{
		Source:     source,
		MaxDepth:   o.MaxDepth,
		Discovered: make([]V, 0),
		State:      w.state,
	}

	w.state.rows[source] = record[V]{color: Gray, distance: 0}
	w.queue = append(w.queue, source)
	w.loop()

	return w.res, nil
}

// Reachable returns every vertex reachable from source by an unbounded
// traversal, excluding source itself.
func Reachable[V comparable](g *core.Graph[V], source V) (core.Set[V], error) {
	res, err := BFS(g, source)
	if err != nil {
		return nil, err
	}

	return core.NewSet(res.Discovered...), nil
}

// loop processes the queue until empty.
func (w *walker[V]) loop() {
	for len(w.queue) > 0 {
		u := w.dequeue()
		w.expand(u)
	}
}

// dequeue pops the first vertex and invokes OnExpand.
func (w *walker[V]) dequeue() V {
	u := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnExpand(u, w.state.rows[u].distance)

	return u
}

// expand discovers every White successor of u and then marks u Black.
// A successor at distance > MaxDepth is recorded Gray but is neither
// enqueued nor reported; its distance is already final, so it is never
// revisited.
func (w *walker[V]) expand(u V) {
	next := w.state.rows[u].distance + 1
	w.graph.ForEachSuccessor(u, func(v V) bool {
		if w.state.rows[v].color != White {
			return true
		}
		w.state.rows[v] = record[V]{color: Gray, distance: next, pred: u, hasPred: true}
		w.opts.OnDiscover(v, next)
		if next <= w.opts.MaxDepth {
			w.queue = append(w.queue, v)
			w.res.Discovered = append(w.res.Discovered, v)
		}

		return true
	})

	r := w.state.rows[u]
	r.color = Black
	w.state.rows[u] = r
}
