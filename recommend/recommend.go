// Package recommend turns a social graph into "mutual candidate" friend
// recommendations by running a depth-bounded BFS from every user.
//
// For each vertex v of G, every vertex u within 1..maxDepth hops of v is
// paired with v in both directions, so the recommendation graph H is
// always edge-symmetric regardless of the directionality of G.
//
// Complexity: O(V·(V+E)); each of the V sources triggers an independent
// traversal with its own O(V) state table.
package recommend

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/socialgraph/bfs"
	"github.com/katalvlaran/socialgraph/core"
)

// tracerName identifies spans emitted by this package.
const tracerName = "socialgraph/recommend"

// ForSource returns the vertices within 1..maxDepth hops of s, excluding s,
// in discovery order. A negative maxDepth yields an empty list.
// Returns ErrGraphNil, or bfs.ErrSourceNotFound when s is not in g.
func ForSource[V comparable](g *core.Graph[V], s V, maxDepth int, opts ...Option) ([]V, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := buildOptions(opts)

	return forSource(g, s, maxDepth, &o)
}

func forSource[V comparable](g *core.Graph[V], s V, maxDepth int, o *Options) ([]V, error) {
	expanded := 0
	start := time.Now()
	res, err := bfs.BFS(g, s,
		bfs.WithMaxDepth(maxDepth),
		bfs.WithOnExpand(func(any, int) { expanded++ }),
	)
	if err != nil {
		return nil, err
	}
	o.Metrics.ObserveTraversal(time.Since(start), len(res.Discovered), expanded)

	return res.Discovered, nil
}

// All runs ForSource from every vertex of g and assembles the symmetric
// recommendation graph H: for every reported u, both (v,u) and (u,v) are
// added.
//
// With WithWorkers(n > 1) traversals run concurrently; each allocates its
// own state, and H serializes writes through its own lock. g must not be
// written while All runs. ctx is checked between sources only; a started
// traversal always completes.
func All[V comparable](ctx context.Context, g *core.Graph[V], maxDepth int, opts ...Option) (*core.Graph[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := buildOptions(opts)
	stats := g.Stats()

	ctx, span := o.TracerProvider.Tracer(tracerName).Start(ctx, "recommend.All",
		trace.WithAttributes(
			attribute.Int("vertex_count", stats.VertexCount),
			attribute.Int("edge_count", stats.EdgeCount),
			attribute.Int("max_depth", maxDepth),
			attribute.Int("workers", o.Workers),
		),
	)
	defer span.End()

	start := time.Now()
	h := core.NewGraph[V]()
	sources := g.Vertices()

	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(o.Workers)
	for _, v := range sources {
		if egctx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egctx.Err(); err != nil {
				return err
			}
			recs, err := forSource(g, v, maxDepth, &o)
			if err != nil {
				return fmt.Errorf("recommend: source %v: %w", v, err)
			}
			for _, u := range recs {
				h.AddEdge(v, u)
				h.AddEdge(u, v)
			}

			return nil
		})
	}
	err := eg.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "recommendation run aborted")
		o.Logger.Warn("recommend: run aborted", slog.Any("error", err))

		return nil, err
	}

	out := h.Stats()
	span.AddEvent("recommendations_complete", trace.WithAttributes(
		attribute.Int("recommended_vertices", out.VertexCount),
		attribute.Int("recommended_edges", out.EdgeCount),
	))
	o.Logger.Info("recommend: run complete",
		slog.Int("sources", len(sources)),
		slog.Int("max_depth", maxDepth),
		slog.Int("workers", o.Workers),
		slog.Int("recommended_edges", out.EdgeCount),
		slog.Duration("elapsed", time.Since(start)),
	)

	return h, nil
}
