// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle, successor queries and edge-set materialization.
// Policy:
//   - All read paths are non-mutating: an unknown vertex is reported as
//     absent (false / empty / zero) and is never created.
//   - AddEdge is the only path that creates vertices implicitly.
// AI-HINT (file):
//   - Use ForEachSuccessor in hot loops; Successors allocates a copy.

package core

// AddEdge inserts the directed edge u→v (idempotent).
//
// Implementation:
//   - Stage 1: Acquire the write lock.
//   - Stage 2: Ensure both endpoints are registered (v first so a self-loop
//     and a plain edge take the same path).
//   - Stage 3: Insert v into successors(u) and bump edgeCount only if new.
//
// Behavior highlights:
//   - Parallel edges collapse: a repeated AddEdge(u, v) is a no-op.
//   - Self-loops (u == v) are stored, not filtered.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph[V]) AddEdge(u, v V) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(v)
	succ := g.ensureVertex(u)
	if succ.Has(v) {
		return
	}
	succ[v] = struct{}{}
	g.edgeCount++
}

// HasEdge reports whether u→v exists. It returns false for an unknown u
// and does not insert u.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph[V]) HasEdge(u, v V) bool {
	// AI-HINT: Indexing a missing key yields a nil Set; nil.Has is false.
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.adjacency[u].Has(v)
}

// Successors returns a copy of u's successor set, or an empty set when u is
// unknown. The graph is never modified.
//
// Complexity:
//   - Time O(deg(u)), Space O(deg(u)).
func (g *Graph[V]) Successors(u V) Set[V] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.adjacency[u].clone()
}

// ForEachSuccessor calls fn for each successor of u in unspecified order,
// stopping early when fn returns false. Unknown u yields no calls.
//
// The successors are snapshotted under the read lock before fn runs, so fn
// may itself call read methods on g.
func (g *Graph[V]) ForEachSuccessor(u V, fn func(v V) bool) {
	g.mu.RLock()
	succ := g.adjacency[u]
	buf := make([]V, 0, len(succ))
	for v := range succ {
		buf = append(buf, v)
	}
	g.mu.RUnlock()

	for _, v := range buf {
		if !fn(v) {
			return
		}
	}
}

// OutDegree returns |successors(u)|, 0 for an unknown u.
func (g *Graph[V]) OutDegree(u V) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[u])
}

// EdgeCount returns the number of directed edges.
//
// Complexity:
//   - Time O(1): the counter is maintained by AddEdge.
func (g *Graph[V]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// EdgeSet materializes every (u, successor) pair. It exists for exact-match
// comparison between graphs; traversals should use ForEachSuccessor.
//
// Complexity:
//   - Time O(V+E), Space O(E).
func (g *Graph[V]) EdgeSet() Set[Edge[V]] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(Set[Edge[V]], g.edgeCount)
	for u, succ := range g.adjacency {
		for v := range succ {
			out[Edge[V]{From: u, To: v}] = struct{}{}
		}
	}

	return out
}
