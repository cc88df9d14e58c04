package main

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/socialgraph/core"
	"github.com/katalvlaran/socialgraph/edgelist"
	"github.com/katalvlaran/socialgraph/evaluate"
	"github.com/katalvlaran/socialgraph/observability"
	"github.com/katalvlaran/socialgraph/recommend"
)

type evaluation struct {
	RunID    string          `json:"run_id"`
	MaxDepth int             `json:"max_depth"`
	Training core.GraphStats `json:"training"`
	Testing  core.GraphStats `json:"testing"`
	evaluate.Report
}

func newEvaluateCmd(rf *rootFlags, getenv func(string) string) *cobra.Command {
	f := &runFlags{}
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Recommend from a training graph and score against a testing graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSession(cmd, rf, f, getenv)
			if err != nil {
				return err
			}
			if s.cfg.Training == "" {
				return errTrainRequired
			}
			if s.cfg.Testing == "" {
				return errors.New("a testing edge list is required (--test or testing: in config)")
			}

			runID := uuid.NewString()
			s.logger = s.logger.With(slog.String("run_id", runID))

			train, test, err := edgelist.LoadPair(s.cfg.Training, s.cfg.Testing)
			if err != nil {
				return err
			}
			ev := evaluation{
				RunID:    runID,
				MaxDepth: s.cfg.MaxDepth,
				Training: train.Stats(),
				Testing:  test.Stats(),
			}
			s.metrics.ObserveGraph(observability.RoleTraining, ev.Training)
			s.metrics.ObserveGraph(observability.RoleTesting, ev.Testing)

			h, err := recommend.All(cmd.Context(), train, s.cfg.MaxDepth, s.recommendOptions()...)
			if err != nil {
				return err
			}
			s.metrics.ObserveGraph(observability.RoleRecommendation, h.Stats())

			ev.Report = evaluate.Evaluate(h, test)
			s.metrics.ObserveScores(ev.Precision, ev.Recall)
			s.logger.Info("evaluation complete",
				slog.Float64("precision", ev.Precision),
				slog.Float64("recall", ev.Recall),
			)
			if err := s.flushMetrics(); err != nil {
				return err
			}

			return output(cmd.OutOrStdout(), rf.format, ev,
				[]string{"RUN", "DEPTH", "RECOMMENDED", "EXPECTED", "HITS", "PRECISION", "RECALL", "F1"},
				[][]string{{
					runID,
					strconv.Itoa(ev.MaxDepth),
					strconv.Itoa(ev.Recommended),
					strconv.Itoa(ev.Expected),
					strconv.Itoa(ev.TruePositives),
					strconv.FormatFloat(ev.Precision, 'f', 4, 64),
					strconv.FormatFloat(ev.Recall, 'f', 4, 64),
					strconv.FormatFloat(ev.F1, 'f', 4, 64),
				}},
			)
		},
	}
	f.register(cmd)
	cmd.Flags().StringVar(&f.test, "test", "", "Testing (held-out) edge list")

	return cmd
}
