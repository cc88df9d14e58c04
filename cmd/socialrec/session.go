package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/socialgraph/config"
	"github.com/katalvlaran/socialgraph/observability"
	"github.com/katalvlaran/socialgraph/recommend"
)

// runFlags are the per-run knobs shared by recommend, evaluate and reach.
type runFlags struct {
	train       string
	test        string
	out         string
	depth       int
	workers     int
	metricsFile string
}

func (f *runFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.train, "train", "", "Training edge list")
	cmd.Flags().IntVar(&f.depth, "depth", 2, "Maximum BFS depth for recommendations")
	cmd.Flags().IntVar(&f.workers, "workers", 1, "Concurrent per-user traversals")
	cmd.Flags().StringVar(&f.metricsFile, "metrics-file", "", "Write Prometheus textfile metrics here after the run")
}

// session is the resolved configuration of one invocation.
type session struct {
	cfg     config.Config
	logger  *slog.Logger
	metrics *observability.Metrics
}

// resolveSession applies the precedence Default < file < env < flags and
// builds the logger. Only flags the user actually set override.
func resolveSession(cmd *cobra.Command, rf *rootFlags, f *runFlags, getenv func(string) string) (*session, error) {
	path := rf.configPath
	if path == "" {
		path = getenv(config.EnvPrefix + "CONFIG")
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(getenv); err != nil {
		return nil, err
	}

	if rf.logLevel != "" {
		cfg.Log.Level = rf.logLevel
	}
	if rf.logFormat != "" {
		cfg.Log.Format = rf.logFormat
	}
	if f != nil {
		flags := cmd.Flags()
		if flags.Changed("train") {
			cfg.Training = f.train
		}
		if flags.Changed("test") {
			cfg.Testing = f.test
		}
		if flags.Changed("out") {
			cfg.Output = f.out
		}
		if flags.Changed("depth") {
			cfg.MaxDepth = f.depth
			cfg.MaxDepthSet = true
		}
		if flags.Changed("workers") {
			cfg.Workers = f.workers
		}
		if flags.Changed("metrics-file") {
			cfg.MetricsFile = f.metricsFile
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := cfg.Log.NewLogger(cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	rt := &session{cfg: cfg, logger: logger}
	if cfg.MetricsFile != "" {
		rt.metrics = observability.NewMetrics()
	}

	return rt, nil
}

// recommendOptions maps the session onto engine options.
func (rt *session) recommendOptions() []recommend.Option {
	return []recommend.Option{
		recommend.WithWorkers(rt.cfg.Workers),
		recommend.WithLogger(rt.logger),
		recommend.WithMetrics(rt.metrics),
	}
}

// flushMetrics writes the textfile if one was requested.
func (rt *session) flushMetrics() error {
	if rt.metrics == nil {
		return nil
	}
	if err := rt.metrics.WriteTextfile(rt.cfg.MetricsFile); err != nil {
		return err
	}
	rt.logger.Debug("metrics written", slog.String("path", rt.cfg.MetricsFile))

	return nil
}
