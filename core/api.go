// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Whole-graph operations: Clone snapshots and Stats summaries.
// Policy:
//   - Both operations are read-only on the receiver and run under a single
//     read lock, so the result reflects one consistent state.

package core

// Clone returns a deep copy of the vertex catalog and all successor sets.
//
// Implementation:
//   - Stage 1: Acquire the read lock on the source graph.
//   - Stage 2: Copy every successor set into a fresh map; carry edgeCount.
//
// Behavior highlights:
//   - The clone shares no mutable state with g, so it can be traversed while
//     g keeps receiving AddEdge calls (snapshot-before-traverse).
//
// Complexity:
//   - Time O(V+E), Space O(V+E).
func (g *Graph[V]) Clone() *Graph[V] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph[V]{
		adjacency: make(map[V]Set[V], len(g.adjacency)),
		edgeCount: g.edgeCount,
	}
	for u, succ := range g.adjacency {
		clone.adjacency[u] = succ.clone()
	}

	return clone
}

// Stats returns vertex, edge, self-loop and sink counts in one pass.
//
// Complexity:
//   - Time O(V), Space O(1).
func (g *Graph[V]) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		VertexCount: len(g.adjacency),
		EdgeCount:   g.edgeCount,
	}
	for u, succ := range g.adjacency {
		if len(succ) == 0 {
			stats.SinkCount++
		}
		if succ.Has(u) {
			stats.SelfLoopCount++
		}
	}

	return stats
}
