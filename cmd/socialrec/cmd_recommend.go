package main

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/socialgraph/edgelist"
	"github.com/katalvlaran/socialgraph/observability"
	"github.com/katalvlaran/socialgraph/recommend"
)

var errTrainRequired = errors.New("a training edge list is required (--train or training: in config)")

type recommendSummary struct {
	Output   string `json:"output"`
	MaxDepth int    `json:"max_depth"`
	Vertices int    `json:"vertices"`
	Edges    int    `json:"edges"`
}

func newRecommendCmd(rf *rootFlags, getenv func(string) string) *cobra.Command {
	f := &runFlags{}
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Build the symmetric recommendation graph from a training edge list",
		Long: "Runs a depth-bounded BFS from every user of the training graph and pairs\n" +
			"each user with everyone within --depth hops, in both directions.\n" +
			"The result is written as an edge list to --out, or to stdout.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSession(cmd, rf, f, getenv)
			if err != nil {
				return err
			}
			if s.cfg.Training == "" {
				return errTrainRequired
			}

			g, err := edgelist.LoadFile(s.cfg.Training)
			if err != nil {
				return err
			}
			s.metrics.ObserveGraph(observability.RoleTraining, g.Stats())
			s.logger.Debug("training graph loaded",
				slog.String("path", s.cfg.Training),
				slog.Int("vertices", g.VertexCount()),
				slog.Int("edges", g.EdgeCount()),
			)

			h, err := recommend.All(cmd.Context(), g, s.cfg.MaxDepth, s.recommendOptions()...)
			if err != nil {
				return err
			}
			stats := h.Stats()
			s.metrics.ObserveGraph(observability.RoleRecommendation, stats)

			if s.cfg.Output == "" {
				if err := edgelist.Write(cmd.OutOrStdout(), h); err != nil {
					return err
				}
				return s.flushMetrics()
			}
			if err := edgelist.WriteFile(s.cfg.Output, h); err != nil {
				return err
			}
			if err := s.flushMetrics(); err != nil {
				return err
			}

			return output(cmd.OutOrStdout(), rf.format, recommendSummary{
				Output:   s.cfg.Output,
				MaxDepth: s.cfg.MaxDepth,
				Vertices: stats.VertexCount,
				Edges:    stats.EdgeCount,
			}, nil, nil)
		},
	}
	f.register(cmd)
	cmd.Flags().StringVar(&f.out, "out", "", "Write the recommendation graph here instead of stdout")

	return cmd
}
