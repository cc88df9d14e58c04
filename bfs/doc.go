// Package bfs provides depth-bounded breadth-first search over a core.Graph,
// returning the vertices discovered within the bound and the per-run
// traversal state (color, distance, predecessor) of every vertex.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a source.
//   - Returns a Result containing:
//   - Discovered: vertices with 1 ≤ distance ≤ MaxDepth, in discovery order
//   - State: color, distance and predecessor for every vertex of the graph
//   - A vertex first seen at distance > MaxDepth is still marked Gray with its
//     distance and predecessor recorded, but it is neither enqueued nor
//     reported in Discovered.
//   - Supports functional hooks:
//   - OnDiscover (every White→Gray transition, including beyond the bound)
//   - OnExpand   (when a vertex is dequeued for expansion)
//
// Traversal state
//
//	State is allocated fresh for each BFS call and never stored on the graph
//	or on vertex values. Any number of BFS calls may run concurrently over
//	the same graph as long as nobody writes to it.
//
// Determinism
//
//	Successor iteration order is unspecified. Distances, colors and the set of
//	discovered vertices are deterministic; the order of Discovered within one
//	distance layer and the predecessor chosen among equal-distance parents are
//	not.
//
// Depth bound
//
//	Unbounded (the default) disables the limit. A negative bound is accepted
//	and simply admits nothing: distances of non-source vertices are ≥ 1.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (state reset is O(V), each edge scanned at most once)
//   - Memory: O(V)       (state table and queue)
//
// Usage
//
//	res, err := bfs.BFS(g, "alice", bfs.WithMaxDepth(2))
//	if err != nil {
//		// ErrGraphNil or ErrSourceNotFound
//	}
//	for _, v := range res.Discovered {
//		d, _ := res.State.Distance(v)
//		fmt.Println(v, d)
//	}
//
// Errors
//
//   - ErrGraphNil        if the graph pointer is nil.
//   - ErrSourceNotFound  if the source vertex does not exist.
//   - ErrNoPath          from Result.PathTo for an undiscovered destination.
package bfs
