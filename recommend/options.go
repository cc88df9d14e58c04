package recommend

import (
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/socialgraph/observability"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("recommend: graph is nil")

// Option configures a recommendation run via functional arguments.
type Option func(*Options)

// Options holds the knobs of a recommendation run.
type Options struct {
	// Workers bounds the number of concurrent per-source traversals in All.
	// Values < 1 are treated as 1.
	Workers int

	// Logger receives run-level progress; defaults to a discard logger.
	Logger *slog.Logger

	// Metrics, if non-nil, records one observation per traversal.
	Metrics *observability.Metrics

	// TracerProvider supplies the tracer for All; defaults to the global one.
	TracerProvider trace.TracerProvider
}

// DefaultOptions returns a sequential, silent configuration.
func DefaultOptions() Options {
	return Options{
		Workers:        1,
		Logger:         slog.New(slog.DiscardHandler),
		TracerProvider: otel.GetTracerProvider(),
	}
}

// WithWorkers sets the number of concurrent traversals.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Workers = n
		}
	}
}

// WithLogger sets the run logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics attaches a metrics sink.
func WithMetrics(m *observability.Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

// WithTracerProvider overrides the OpenTelemetry tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *Options) {
		if tp != nil {
			o.TracerProvider = tp
		}
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
