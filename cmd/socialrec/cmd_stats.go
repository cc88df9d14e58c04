package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/socialgraph/core"
	"github.com/katalvlaran/socialgraph/edgelist"
)

type fileStats struct {
	Path string `json:"path"`
	core.GraphStats
}

func newStatsCmd(rf *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <edge-list>...",
		Short: "Print vertex, edge, self-loop and sink counts of edge lists",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			all := make([]fileStats, 0, len(args))
			rows := make([][]string, 0, len(args))
			for _, path := range args {
				g, err := edgelist.LoadFile(path)
				if err != nil {
					return err
				}
				st := fileStats{Path: path, GraphStats: g.Stats()}
				all = append(all, st)
				rows = append(rows, []string{
					path,
					strconv.Itoa(st.VertexCount),
					strconv.Itoa(st.EdgeCount),
					strconv.Itoa(st.SelfLoopCount),
					strconv.Itoa(st.SinkCount),
				})
			}

			return output(cmd.OutOrStdout(), rf.format, all,
				[]string{"PATH", "VERTICES", "EDGES", "SELF-LOOPS", "SINKS"}, rows)
		},
	}
}
