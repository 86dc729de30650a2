package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
	Level: slog.LevelWarn,
}))

var rootCmd = &cobra.Command{
	Use:   "frame2d",
	Short: "2D frame static analysis by the direct-stiffness method",
	Long: `frame2d solves plane frame structures (beam/column assemblies) with
Euler-Bernoulli beam elements: nodal and trapezoidal distributed loads,
per-DOF supports, support reactions, displacements and internal-force
diagrams.

Frames are described in YAML; see 'frame2d solve --help' for the format.`,
}

// Execute runs the root command and exits nonzero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	var verbose bool
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable progress logging")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if verbose {
			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}))
		}
	}
}
