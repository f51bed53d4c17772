package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/ugraph/core"
)

func (a *app) batchCmd() *cobra.Command {
	var (
		algo   string
		starts []int64
	)
	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Run one traversal per start node concurrently over a shared graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(args[0])
			if err != nil {
				return err
			}

			ids := make([]core.NodeIndex, 0, len(starts))
			for _, s := range starts {
				ids = append(ids, core.NodeIndex(s))
			}
			if len(ids) == 0 {
				ids = g.Nodes()
			}

			maxDepth := 0
			if algo == algoDFS {
				maxDepth = -1
			}

			results := make(batchReport, len(ids))
			eg, ctx := errgroup.WithContext(cmd.Context())
			eg.SetLimit(a.cfg.Concurrency)
			began := time.Now()
			for i, id := range ids {
				eg.Go(func() error {
					r, err := run(ctx, g, runParams{algo: algo, start: id, maxDepth: maxDepth, mode: a.cfg.Mode})
					if err != nil {
						return fmt.Errorf("start %d: %w", id, err)
					}
					a.log.Debug("batch run finished", "algo", algo, "start", id, "visited", len(r.Order))
					results[i] = r
					return nil
				})
			}
			if err := eg.Wait(); err != nil {
				a.log.Error("batch failed", "algo", algo, "err", err)
				return err
			}
			a.log.Info("batch finished",
				"algo", algo,
				"runs", len(ids),
				"concurrency", a.cfg.Concurrency,
				"elapsed", time.Since(began),
			)

			return a.emit(cmd.OutOrStdout(), results)
		},
	}
	cmd.Flags().StringVar(&algo, "algo", algoBFS, "algorithm: bfs, dfs or dijkstra")
	cmd.Flags().Int64SliceVar(&starts, "starts", nil, "start node ids (default: every node)")

	return cmd
}
