// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Edge and Set declarations plus the NewGraph constructor.
// Concurrency:
//   - mu guards adjacency and edgeCount; see doc.go for the traversal contract.

package core

import "sync"

// Edge is an ordered (From, To) pair. It is comparable, so it can be used
// directly as a Set element for exact-match edge comparison.
type Edge[V comparable] struct {
	From V
	To   V
}

// Reverse returns the edge with its endpoints swapped.
func (e Edge[V]) Reverse() Edge[V] { return Edge[V]{From: e.To, To: e.From} }

// IsLoop reports whether the edge starts and ends at the same vertex.
func (e Edge[V]) IsLoop() bool { return e.From == e.To }

// Graph is a directed, unweighted adjacency-set graph.
//
// The zero value is not usable; construct with NewGraph.
type Graph[V comparable] struct {
	mu sync.RWMutex // guards adjacency and edgeCount

	// adjacency[u] is the successor set of u; every known vertex has a
	// non-nil entry, even when it has no outgoing edges.
	adjacency map[V]Set[V]

	// edgeCount is kept equal to Σ len(adjacency[u]).
	edgeCount int
}

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	VertexCount   int `json:"vertices"`   // distinct vertex identities
	EdgeCount     int `json:"edges"`      // directed edges, self-loops included
	SelfLoopCount int `json:"self_loops"` // edges (v,v)
	SinkCount     int `json:"sinks"`      // vertices without outgoing edges
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph[V comparable]() *Graph[V] {
	return &Graph[V]{adjacency: make(map[V]Set[V])}
}

// FromEdges builds a Graph containing exactly the given edges and their
// endpoints. Duplicate edges collapse into one.
func FromEdges[V comparable](edges ...Edge[V]) *Graph[V] {
	g := NewGraph[V]()
	for _, e := range edges {
		g.AddEdge(e.From, e.To)
	}

	return g
}
