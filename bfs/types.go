// Package bfs provides tunable options, traversal state and error
// definitions for breadth-first search over a core.Graph.
package bfs

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for BFS execution.
var (
	// ErrSourceNotFound is returned when the source vertex is absent.
	ErrSourceNotFound = errors.New("bfs: source vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrNoPath is returned by PathTo for a vertex that was never discovered.
	ErrNoPath = errors.New("bfs: no path")
)

// Unbounded disables the depth limit.
const Unbounded = math.MaxInt

// Infinite is the distance reported for undiscovered vertices.
const Infinite = -1

// Color is the visitation status of a vertex within one traversal.
type Color uint8

const (
	// White: undiscovered.
	White Color = iota
	// Gray: discovered, not fully expanded (frontier or beyond the bound).
	Gray
	// Black: fully expanded.
	Black
)

// String implements fmt.Stringer.
func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Gray:
		return "gray"
	case Black:
		return "black"
	default:
		return fmt.Sprintf("color(%d)", uint8(c))
	}
}

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// MaxDepth bounds the distance of reported vertices (inclusive).
	// Unbounded disables the limit; negative values admit no vertex.
	MaxDepth int

	// OnDiscover is called on every White→Gray transition with the vertex
	// and its distance, whether or not the distance is within MaxDepth.
	OnDiscover func(v any, depth int)

	// OnExpand is called when a vertex is dequeued, before its successors
	// are scanned.
	OnExpand func(v any, depth int)
}

// DefaultOptions returns Options with no depth limit and no-op hooks.
func DefaultOptions() Options {
	return Options{
		MaxDepth:   Unbounded,
		OnDiscover: func(any, int) {},
		OnExpand:   func(any, int) {},
	}
}

// WithMaxDepth bounds reported vertices to distance ≤ d.
//
//	d ≥ 1:     limit to depth d
//	d == 0:    only the source is expanded; nothing is reported
//	d < 0:     nothing is reported (not an error)
//	Unbounded: no limit
func WithMaxDepth(d int) Option {
	return func(o *Options) { o.MaxDepth = d }
}

// WithOnDiscover registers a callback for vertex discovery.
func WithOnDiscover(fn func(v any, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDiscover = fn
		}
	}
}

// WithOnExpand registers a callback for vertex expansion.
func WithOnExpand(fn func(v any, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// record is one row of the traversal table.
type record[V comparable] struct {
	color    Color
	distance int
	pred     V
	hasPred  bool
}

// State is the per-traversal table keyed by vertex identity. It is created
// fresh by every BFS call and is safe to read after BFS returns.
type State[V comparable] struct {
	rows map[V]record[V]
}

// newState allocates a table with every vertex White, Infinite, no
// predecessor.
func newState[V comparable](vertices []V) *State[V] {
	s := &State[V]{rows: make(map[V]record[V], len(vertices))}
	for _, v := range vertices {
		s.rows[v] = record[V]{color: White, distance: Infinite}
	}

	return s
}

// Len returns the number of vertices tracked.
func (s *State[V]) Len() int { return len(s.rows) }

// Color returns the color of v; unknown vertices are White.
func (s *State[V]) Color(v V) Color { return s.rows[v].color }

// Distance returns v's distance from the source and true, or
// (Infinite, false) if v was never discovered.
func (s *State[V]) Distance(v V) (int, bool) {
	r, ok := s.rows[v]
	if !ok || r.color == White {
		return Infinite, false
	}

	return r.distance, true
}

// Predecessor returns the vertex v was discovered from. The source and
// undiscovered vertices have none.
func (s *State[V]) Predecessor(v V) (V, bool) {
	r := s.rows[v]
	return r.pred, r.hasPred
}

// Result holds the outcome of a BFS traversal.
type Result[V comparable] struct {
	// Source is the start vertex.
	Source V

	// MaxDepth is the bound the traversal ran with.
	MaxDepth int

	// Discovered lists vertices with 1 ≤ distance ≤ MaxDepth in discovery
	// order. The source is never included.
	Discovered []V

	// State is the traversal table for every vertex of the graph.
	State *State[V]
}

// PathTo reconstructs the predecessor chain from the source to dest.
// Vertices discovered beyond MaxDepth also have a path.
// Returns ErrNoPath if dest was not discovered.
func (r *Result[V]) PathTo(dest V) ([]V, error) {
	if _, ok := r.State.Distance(dest); !ok {
		return nil, fmt.Errorf("%w to %v", ErrNoPath, dest)
	}
	// build reversed path
	path := []V{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.State.Predecessor(cur)
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get source → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
