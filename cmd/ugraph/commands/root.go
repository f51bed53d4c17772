// Package commands implements the ugraph command tree.
package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/ugraph/internal/config"
	"github.com/katalvlaran/ugraph/internal/graphfile"
	"github.com/katalvlaran/ugraph/internal/logging"
)

// Version is overridden at link time with -ldflags "-X ...commands.Version=v1.2.3".
var Version = "dev"

// app carries what every subcommand needs once the root has set up.
type app struct {
	v       *viper.Viper
	cfg     config.Config
	log     *slog.Logger
	cfgFile string
}

// Execute runs the command tree against the process streams.
func Execute() {
	if err := NewRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd builds a fresh command tree writing results to out and logs
// and errors to errOut.
func NewRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{v: config.New(), log: logging.Discard()}

	root := &cobra.Command{
		Use:   "ugraph",
		Short: "Traverse undirected graphs stored as YAML",
		Long: `ugraph loads an undirected graph from a YAML file and runs
breadth-first search, depth-first search or Dijkstra over it.`,
		Version:      Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd, errOut)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default $HOME/"+config.DefaultFile+")")
	pf.String(config.KeyLogLevel, "info", "log level: debug, info, warn, error")
	pf.String(config.KeyLogFormat, logging.FormatText, "log format: text or json")
	pf.StringP(config.KeyOutput, "o", config.OutputText, "result format: text or json")
	pf.String(config.KeyMode, "finalize", "dijkstra mode: finalize or discovery")
	pf.Int(config.KeyConcurrency, 4, "parallel runs for batch")
	for _, key := range []string{config.KeyLogLevel, config.KeyLogFormat, config.KeyOutput, config.KeyMode, config.KeyConcurrency} {
		_ = a.v.BindPFlag(key, pf.Lookup(key))
	}

	root.AddCommand(
		a.statsCmd(),
		a.bfsCmd(),
		a.dfsCmd(),
		a.dijkstraCmd(),
		a.batchCmd(),
		a.generateCmd(),
		versionCmd(),
	)

	return root
}

// setup resolves configuration and the per-invocation logger.
func (a *app) setup(cmd *cobra.Command, errOut io.Writer) error {
	if err := config.ReadFile(a.v, a.cfgFile); err != nil {
		return err
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	logger, err := logging.New(errOut, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logger.With("run_id", uuid.NewString(), "cmd", cmd.Name())
	a.log.Debug("configuration resolved",
		"config_file", a.v.ConfigFileUsed(),
		"output", cfg.Output,
		"mode", cfg.Mode.String(),
		"concurrency", cfg.Concurrency,
	)

	return nil
}

// loadGraph reads path and logs its size.
func (a *app) loadGraph(path string) (*graphfile.Graph, error) {
	began := time.Now()
	g, err := graphfile.Load(path)
	if err != nil {
		a.log.Error("graph load failed", "path", path, "err", err)
		return nil, err
	}
	a.log.Info("graph loaded",
		"path", path,
		"nodes", g.NumberOfNodes(),
		"edge_records", g.NumberOfEdgeRecords(),
		"elapsed", time.Since(began),
	)

	return g, nil
}

// versionCmd prints the version. It overrides the root's setup hook so a
// broken config file or environment cannot stop it.
func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "version",
		Short:             "Print the ugraph version",
		Args:              cobra.NoArgs,
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ugraph %s\n", Version)
		},
	}
}
