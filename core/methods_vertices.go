// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() order is unspecified; V is only comparable, not ordered.
//     Callers needing reproducible output sort the slice themselves.
//
// Concurrency:
//   - AddVertex takes the write lock; every query takes the read lock.
package core

// AddVertex inserts v if missing (idempotent).
//
// Implementation:
//   - Stage 1: Acquire the write lock.
//   - Stage 2: If v has no adjacency entry, register an empty successor set.
//
// Behavior highlights:
//   - Re-adding an existing vertex never touches its successor set.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph[V]) AddVertex(v V) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(v)
}

// HasVertex reports whether v was ever inserted.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph[V]) HasVertex(v V) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[v]

	return ok
}

// VertexCount returns the number of distinct vertices.
func (g *Graph[V]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// Vertices returns a snapshot of every vertex in unspecified order.
//
// Complexity:
//   - Time O(V), Space O(V) for the returned slice.
func (g *Graph[V]) Vertices() []V {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]V, 0, len(g.adjacency))
	for v := range g.adjacency {
		out = append(out, v)
	}

	return out
}

// ensureVertex registers v with an empty successor set. Caller holds mu.
func (g *Graph[V]) ensureVertex(v V) Set[V] {
	succ, ok := g.adjacency[v]
	if !ok {
		succ = make(Set[V])
		g.adjacency[v] = succ
	}

	return succ
}
