package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ugraph/core"
	"github.com/katalvlaran/ugraph/dfs"
)

// errNoStart is returned by dfs without --start or --full.
var errNoStart = errors.New(`required flag "start" not set (or pass --full)`)

func (a *app) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats FILE",
		Short: "Print node, edge and component counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(args[0])
			if err != nil {
				return err
			}
			forest, err := dfs.DFS(g, 0, dfs.WithContext[string](cmd.Context()), dfs.WithFullTraversal[string]())
			if err != nil {
				return err
			}
			components := 0
			for _, id := range forest.Order {
				if forest.Depth[id] == 0 {
					components++
				}
			}

			return a.emit(cmd.OutOrStdout(), statsReport{
				Nodes:          g.NumberOfNodes(),
				NodesWithEdges: g.NumberOfEdges(),
				EdgeRecords:    g.NumberOfEdgeRecords(),
				Components:     components,
			})
		},
	}
}

// traverseFlags binds the flags common to bfs, dfs and dijkstra.
type traverseFlags struct {
	start    int64
	maxDepth int
	stopAt   int64
	target   int64
	full     bool
}

// params converts parsed flags into runParams; optional ids are set only
// when their flag was given.
func (f *traverseFlags) params(cmd *cobra.Command, algo string) runParams {
	s := runParams{algo: algo, start: core.NodeIndex(f.start), maxDepth: f.maxDepth, full: f.full}
	if cmd.Flags().Changed("stop-at") {
		id := core.NodeIndex(f.stopAt)
		s.stopAt = &id
	}
	if cmd.Flags().Changed("to") {
		id := core.NodeIndex(f.target)
		s.target = &id
	}

	return s
}

// runOne loads the graph, runs p and prints the report.
func (a *app) runOne(cmd *cobra.Command, path string, p runParams) error {
	g, err := a.loadGraph(path)
	if err != nil {
		return err
	}
	r, err := run(cmd.Context(), g, p)
	if err != nil {
		a.log.Error("traversal failed", "algo", p.algo, "start", p.start, "err", err)
		return err
	}
	a.log.Info("traversal finished", "algo", p.algo, "visited", len(r.Order), "stopped", r.Stopped)

	return a.emit(cmd.OutOrStdout(), r)
}

func (a *app) bfsCmd() *cobra.Command {
	var f traverseFlags
	cmd := &cobra.Command{
		Use:   "bfs FILE",
		Short: "Breadth-first search from a start node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runOne(cmd, args[0], f.params(cmd, algoBFS))
		},
	}
	cmd.Flags().Int64Var(&f.start, "start", 0, "start node id")
	cmd.Flags().IntVar(&f.maxDepth, "max-depth", 0, "stop discovering beyond this depth (0 = no limit)")
	cmd.Flags().Int64Var(&f.stopAt, "stop-at", 0, "stop as soon as this node is visited")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

func (a *app) dfsCmd() *cobra.Command {
	var f traverseFlags
	cmd := &cobra.Command{
		Use:   "dfs FILE",
		Short: "Depth-first search from a start node, or over every component",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !f.full && !cmd.Flags().Changed("start") {
				return errNoStart
			}
			return a.runOne(cmd, args[0], f.params(cmd, algoDFS))
		},
	}
	cmd.Flags().Int64Var(&f.start, "start", 0, "start node id")
	cmd.Flags().IntVar(&f.maxDepth, "max-depth", -1, "do not descend beyond this depth (-1 = no limit)")
	cmd.Flags().Int64Var(&f.stopAt, "stop-at", 0, "stop as soon as this node is visited")
	cmd.Flags().BoolVar(&f.full, "full", false, "visit every component, roots in ascending id order")

	return cmd
}

func (a *app) dijkstraCmd() *cobra.Command {
	var f traverseFlags
	cmd := &cobra.Command{
		Use:   "dijkstra FILE",
		Short: "Shortest distances from a start node",
		Long: `Shortest distances from a start node.

--mode finalize (default) settles a node when it leaves the queue and yields
true shortest distances. --mode discovery fixes a node's distance the first
time an edge reaches it, which can overestimate.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := f.params(cmd, algoDijkstra)
			p.mode = a.cfg.Mode
			return a.runOne(cmd, args[0], p)
		},
	}
	cmd.Flags().Int64Var(&f.start, "start", 0, "start node id")
	cmd.Flags().Int64Var(&f.target, "to", 0, "print the path to this node")
	cmd.Flags().Int64Var(&f.stopAt, "stop-at", 0, "stop as soon as this node is visited")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}
