package main

import (
	"errors"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/socialgraph/bfs"
	"github.com/katalvlaran/socialgraph/edgelist"
)

type reachedVertex struct {
	Vertex   string   `json:"vertex"`
	Distance int      `json:"distance"`
	Path     []string `json:"path"`
}

type reachReport struct {
	Source    string          `json:"source"`
	MaxDepth  *int            `json:"max_depth,omitempty"` // nil when unbounded
	Reachable int             `json:"reachable"`           // ignoring the bound
	Reached   []reachedVertex `json:"reached"`
}

func newReachCmd(rf *rootFlags, getenv func(string) string) *cobra.Command {
	f := &runFlags{}
	var source string
	cmd := &cobra.Command{
		Use:   "reach",
		Short: "List the users reachable from one user, with distances and paths",
		Long: "Runs a single BFS from --source. The bound is --depth, max_depth in\n" +
			"the config file or SOCIALREC_MAX_DEPTH; when none is given the traversal\n" +
			"is unbounded and reports every reachable user.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSession(cmd, rf, f, getenv)
			if err != nil {
				return err
			}
			if s.cfg.Training == "" {
				return errTrainRequired
			}
			if source == "" {
				return errors.New("--source is required")
			}

			g, err := edgelist.LoadFile(s.cfg.Training)
			if err != nil {
				return err
			}
			depth := bfs.Unbounded
			rep := reachReport{Source: source, Reached: []reachedVertex{}}
			if s.cfg.MaxDepthSet {
				depth = s.cfg.MaxDepth
				rep.MaxDepth = &depth
			}
			res, err := bfs.BFS(g, source, bfs.WithMaxDepth(depth))
			if err != nil {
				return err
			}

			all, err := bfs.Reachable(g, source)
			if err != nil {
				return err
			}
			rep.Reachable = all.Len()

			rows := make([][]string, 0, len(res.Discovered))
			for _, v := range res.Discovered {
				d, _ := res.State.Distance(v)
				path, err := res.PathTo(v)
				if err != nil {
					return err
				}
				rep.Reached = append(rep.Reached, reachedVertex{Vertex: v, Distance: d, Path: path})
				rows = append(rows, []string{v, strconv.Itoa(d), strings.Join(path, " > ")})
			}

			return output(cmd.OutOrStdout(), rf.format, rep, []string{"VERTEX", "DISTANCE", "PATH"}, rows)
		},
	}
	cmd.Flags().StringVar(&f.train, "train", "", "Edge list to traverse")
	cmd.Flags().IntVar(&f.depth, "depth", 0, "Maximum depth (default unbounded)")
	cmd.Flags().StringVar(&source, "source", "", "Start user")

	return cmd
}
