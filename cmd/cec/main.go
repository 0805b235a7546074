// Copyright 2026 The Eqc Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Command cec checks two combinational networks in ASCII AIGER
// format for equivalence by partitioned exhaustive simulation.
//
// Exit codes: 0 equivalent, 1 inequivalent, 2 no answer or error.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/go-air/eqc/aiger"
	"github.com/go-air/eqc/cec"
	"github.com/go-air/eqc/logic"
)

const (
	exitEquivalent   = 0
	exitInequivalent = 1
	exitUnknown      = 2
)

var (
	flagWorkers   int
	flagMemBudget uint64
	flagConfig    string
	flagStats     bool
	flagVerbose   bool

	exitCode = exitUnknown
)

var rootCmd = &cobra.Command{
	Use:   "cec [flags] A.aag B.aag",
	Short: "simulation-based combinational equivalence checking",
	Long: `cec decides whether two combinational networks compute the same
functions by exhaustive partitioned simulation of their miter.  It
handles networks with up to 40 primary inputs; beyond that it reports
"unknown" and a different method (e.g. a SAT-based checker) should be
used.`,
	Args:          cobra.ExactArgs(2),
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().IntVarP(&flagWorkers, "workers", "j", 1, "goroutines simulating rounds")
	rootCmd.Flags().Uint64Var(&flagMemBudget, "mem-budget", cec.DefaultMemBudget, "per-round memory budget in bytes")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "YAML file with checker options")
	rootCmd.Flags().BoolVar(&flagStats, "stats", false, "print split plan after checking")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")
}

func run(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	opts, err := options(cmd)
	if err != nil {
		return err
	}
	logger.Debug("options",
		zap.Uint64("mem_budget", opts.MemBudget),
		zap.Int("workers", opts.Workers))

	a, err := load(args[0])
	if err != nil {
		return err
	}
	b, err := load(args[1])
	if err != nil {
		return err
	}
	logger.Debug("loaded networks",
		zap.Int("a_pis", a.NumPIs()), zap.Int("a_gates", a.NumGates()),
		zap.Int("b_pis", b.NumPIs()), zap.Int("b_gates", b.NumGates()))

	var st cec.Stats
	eq, ok := opts.Check(cmd.Context(), a, b, &st)
	switch {
	case !ok:
		fmt.Println("unknown")
		exitCode = exitUnknown
	case eq:
		fmt.Println("equivalent")
		exitCode = exitEquivalent
	default:
		fmt.Println("inequivalent")
		exitCode = exitInequivalent
	}
	if flagStats {
		fmt.Printf("split_var %d\nrounds %d\n", st.SplitVar, st.Rounds)
	}
	return nil
}

func newLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if flagVerbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}

// options merges the config file, if any, with the command line;
// explicitly set flags win.
func options(cmd *cobra.Command) (cec.Options, error) {
	opts := cec.DefaultOptions()
	if flagConfig != "" {
		data, err := os.ReadFile(flagConfig)
		if err != nil {
			return opts, err
		}
		if err := yaml.Unmarshal(data, &opts); err != nil {
			return opts, fmt.Errorf("config %s: %w", flagConfig, err)
		}
	}
	if cmd.Flags().Changed("mem-budget") || flagConfig == "" {
		opts.MemBudget = flagMemBudget
	}
	if cmd.Flags().Changed("workers") || flagConfig == "" {
		opts.Workers = flagWorkers
	}
	return opts, nil
}

func load(path string) (*logic.C, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	c, err := aiger.Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "cec:", err)
		os.Exit(exitUnknown)
	}
	os.Exit(exitCode)
}
