package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/nngcluster/cmd/nngcluster/internal/clilog"
)

var (
	verbose bool
	logger  *clilog.Logger
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "nngcluster",
	Short: "Size-constrained clustering over a nearest-neighbor graph",
	Long: `nngcluster groups points into clusters built from a nearest-neighbor
relation: a seed point together with its nearest neighbors. It supports
two entry points - "cluster" runs live nearest-neighbor search over a
point set (a seed plus its k nearest neighbors), "graph" runs seed
selection directly over a precomputed nearest-neighbor digraph (a seed
plus its out-neighbors).`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := clilog.LevelInfo
		if verbose {
			level = clilog.LevelDebug
		}
		logger = clilog.New(level, os.Stdout)
		return nil
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Logger returns the CLI's configured logger, valid once rootCmd's
// PersistentPreRunE has run.
func Logger() *clilog.Logger { return logger }
