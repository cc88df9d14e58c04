// Package observability holds the Prometheus metrics emitted by a
// recommendation run.
//
// Every Metrics value owns a private registry, so independent runs (and
// tests) never collide on the global default registerer. A nil *Metrics is
// valid and records nothing.
package observability

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/socialgraph/core"
)

// Graph roles used as the "role" label.
const (
	RoleTraining       = "training"
	RoleTesting        = "testing"
	RoleRecommendation = "recommendation"
)

// Metrics groups the collectors of one run.
type Metrics struct {
	registry *prometheus.Registry

	Traversals       prometheus.Counter
	Discovered       prometheus.Counter
	Expanded         prometheus.Counter
	TraversalSeconds prometheus.Histogram
	GraphVertices    *prometheus.GaugeVec
	GraphEdges       *prometheus.GaugeVec
	Precision        prometheus.Gauge
	Recall           prometheus.Gauge
}

// NewMetrics registers all collectors on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		Traversals: f.NewCounter(prometheus.CounterOpts{
			Name: "socialrec_traversals_total",
			Help: "Total number of bounded BFS traversals run.",
		}),
		Discovered: f.NewCounter(prometheus.CounterOpts{
			Name: "socialrec_vertices_discovered_total",
			Help: "Total number of vertices reported within the depth bound.",
		}),
		Expanded: f.NewCounter(prometheus.CounterOpts{
			Name: "socialrec_vertices_expanded_total",
			Help: "Total number of vertices dequeued and expanded.",
		}),
		TraversalSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "socialrec_traversal_seconds",
			Help:    "Time spent in a single bounded BFS traversal.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
		}),
		GraphVertices: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "socialrec_graph_vertices",
			Help: "Number of vertices per graph role.",
		}, []string{"role"}),
		GraphEdges: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "socialrec_graph_edges",
			Help: "Number of directed edges per graph role.",
		}, []string{"role"}),
		Precision: f.NewGauge(prometheus.GaugeOpts{
			Name: "socialrec_precision",
			Help: "Precision of the last evaluated recommendation graph.",
		}),
		Recall: f.NewGauge(prometheus.GaugeOpts{
			Name: "socialrec_recall",
			Help: "Recall of the last evaluated recommendation graph.",
		}),
	}
}

// Registry exposes the underlying registry, e.g. for promhttp or testutil.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}

	return m.registry
}

// ObserveTraversal records one BFS run.
func (m *Metrics) ObserveTraversal(elapsed time.Duration, discovered, expanded int) {
	if m == nil {
		return
	}
	m.Traversals.Inc()
	m.Discovered.Add(float64(discovered))
	m.Expanded.Add(float64(expanded))
	m.TraversalSeconds.Observe(elapsed.Seconds())
}

// ObserveGraph sets the size gauges for a graph role.
func (m *Metrics) ObserveGraph(role string, stats core.GraphStats) {
	if m == nil {
		return
	}
	m.GraphVertices.WithLabelValues(role).Set(float64(stats.VertexCount))
	m.GraphEdges.WithLabelValues(role).Set(float64(stats.EdgeCount))
}

// ObserveScores sets the precision and recall gauges.
func (m *Metrics) ObserveScores(precision, recall float64) {
	if m == nil {
		return
	}
	m.Precision.Set(precision)
	m.Recall.Set(recall)
}

// WriteTextfile writes the registry in the node-exporter textfile format.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("observability: write %s: %w", path, err)
	}

	return nil
}
