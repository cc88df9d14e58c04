// Package core provides the directed adjacency-set Graph used by every
// other socialgraph package.
//
// A Graph[V] maps each vertex identity to the set of its successors:
//
//	adjacency[u] = {v | (u,v) ∈ E}
//
// Vertex identities are any comparable Go value (user names in the CLI).
// Two graphs refer to the same real-world entity iff their identities are
// equal under ==, so training, testing and recommendation graphs built from
// the same tokens share vertices automatically.
//
// Invariants:
//
//   - AddEdge(u, v) ensures both u and v exist as vertices.
//   - No parallel edges: a repeated AddEdge is a no-op.
//   - Self-loops are permitted and stored like any other edge.
//   - VertexCount() is the number of distinct identities ever inserted.
//   - EdgeCount() is the sum of successor-set sizes over all vertices.
//
// Read paths (HasVertex, HasEdge, Successors, ForEachSuccessor, OutDegree)
// never create vertices as a side effect; an unknown vertex yields
// false or an empty result.
//
// Concurrency:
//
//	A single sync.RWMutex guards the adjacency map. Readers may run in
//	parallel; AddVertex/AddEdge take the write lock. Traversals in package
//	bfs hold no lock between successor reads, so a writer running during a
//	traversal produces an unspecified (but memory-safe) result. Snapshot
//	with Clone when the graph must keep changing.
//
// Complexity:
//
//	AddVertex, AddEdge, HasVertex, HasEdge, OutDegree: O(1) amortized.
//	Successors: O(deg(u)). Vertices, Clone, EdgeSet, Stats: O(V+E).
package core
