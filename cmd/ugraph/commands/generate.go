package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ugraph/builder"
	"github.com/katalvlaran/ugraph/core"
	"github.com/katalvlaran/ugraph/internal/graphfile"
)

// generateFlags holds the topology knobs of the generate command.
type generateFlags struct {
	kind       string
	n          int
	rows, cols int
	p          float64
	seed       int64
	firstID    int64
	minCost    float64
	maxCost    float64
}

// constructor maps --kind to a builder topology.
func (f *generateFlags) constructor() (builder.Constructor[string, float64], error) {
	switch f.kind {
	case "path":
		return builder.Path[string, float64](f.n), nil
	case "cycle":
		return builder.Cycle[string, float64](f.n), nil
	case "star":
		return builder.Star[string, float64](f.n), nil
	case "wheel":
		return builder.Wheel[string, float64](f.n), nil
	case "complete":
		return builder.Complete[string, float64](f.n), nil
	case "grid":
		return builder.Grid[string, float64](f.rows, f.cols), nil
	case "random":
		return builder.RandomSparse[string, float64](f.n, f.p), nil
	default:
		return nil, fmt.Errorf("unknown kind %q (want path, cycle, star, wheel, complete, grid or random)", f.kind)
	}
}

// options maps the cost and id flags to builder options.
func (f *generateFlags) options() []builder.Option[string, float64] {
	opts := []builder.Option[string, float64]{
		builder.WithSeed[string, float64](f.seed),
		builder.WithFirstID[string, float64](core.NodeIndex(f.firstID)),
		builder.WithValueFn[string, float64](func(id core.NodeIndex) string { return fmt.Sprintf("n%d", id) }),
	}
	if f.maxCost > f.minCost {
		opts = append(opts, builder.WithCostRange[string, float64](f.minCost, f.maxCost))
	} else {
		opts = append(opts, builder.WithCost[string, float64](f.minCost))
	}

	return opts
}

func (a *app) generateCmd() *cobra.Command {
	var f generateFlags
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a generated graph as YAML to stdout",
		Example: `  ugraph generate --kind grid --rows 3 --cols 4 > grid.yaml
  ugraph generate --kind random --n 50 --p 0.1 --seed 7 --min-cost 1 --max-cost 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			con, err := f.constructor()
			if err != nil {
				return err
			}
			began := time.Now()
			g, err := builder.BuildGraph(nil, f.options(), con)
			if err != nil {
				return err
			}
			a.log.Info("graph generated",
				"kind", f.kind,
				"nodes", g.NumberOfNodes(),
				"edge_records", g.NumberOfEdgeRecords(),
				"elapsed", time.Since(began),
			)

			return graphfile.Encode(cmd.OutOrStdout(), graphfile.FromGraph(g, func(s string) string { return s }))
		},
	}
	cmd.Flags().StringVar(&f.kind, "kind", "path", "topology: path, cycle, star, wheel, complete, grid, random")
	cmd.Flags().IntVar(&f.n, "n", 5, "number of nodes")
	cmd.Flags().IntVar(&f.rows, "rows", 3, "grid rows")
	cmd.Flags().IntVar(&f.cols, "cols", 3, "grid columns")
	cmd.Flags().Float64Var(&f.p, "p", 0.3, "edge probability for random")
	cmd.Flags().Int64Var(&f.seed, "seed", 1, "random seed")
	cmd.Flags().Int64Var(&f.firstID, "first-id", 1, "id of the first node")
	cmd.Flags().Float64Var(&f.minCost, "min-cost", 1, "edge cost (lower bound when --max-cost is larger)")
	cmd.Flags().Float64Var(&f.maxCost, "max-cost", 0, "upper bound for uniform random costs")

	return cmd
}
