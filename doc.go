// Package socialgraph is an in-memory friend recommender for directed
// social graphs: load an edge list, run a depth-bounded BFS from every
// user, pair each user with everyone within reach, and score the result
// against a held-out graph.
//
// What's inside:
//
//	core/           thread-safe directed Graph[V], Edge[V], Set[T]
//	bfs/            bounded BFS with per-run traversal State (color, distance, predecessor)
//	recommend/      ForSource and the concurrent, symmetric All
//	evaluate/       precision, recall and F1 of a recommendation graph
//	edgelist/       whitespace-separated "u v" loader and writer
//	config/         YAML/TOML run config, SOCIALREC_* env overrides, slog setup
//	observability/  Prometheus collectors on a private registry
//	cmd/socialrec   the CLI: recommend, evaluate, reach, stats
//
// Quick example:
//
//	ann ──► ben ──► cat
//
//	g := core.FromEdges(core.Edge[string]{From: "ann", To: "ben"}, core.Edge[string]{From: "ben", To: "cat"})
//	h, _ := recommend.All(ctx, g, 1)
//	// h: ann↔ben, ben↔cat
//
// With depth 2 the same call also pairs ann↔cat.
//
// Implementation: graph reads never mutate; every traversal owns its state,
// so BFS runs from different sources may proceed in parallel.
package socialgraph
