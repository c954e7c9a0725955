// Package cli implements the command-line interface for fmctrainer.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cubetools/fmctrainer/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	cachePath string
	workers   int
	maxDepth  int
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "fmctrainer",
	Short: "FMC Stage Trainer",
	Long: `FMC Stage Trainer - A CLI tool for practicing Fewest Moves Challenge stages.

Solve the EO, DR, HTR, FR, slice and finish stages of any scramble optimally,
compare your own attempts against the optimal, and generate random-state
scrambles for practice.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cachePath, "cache", "", "Pruning table cache path (default: ~/.fmctrainer/tables.db)")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 0, "Worker goroutines for table builds and searches (0 = all CPUs)")
	rootCmd.PersistentFlags().IntVar(&maxDepth, "max-depth", 20, "Search depth limit")
}

// getCachePath returns the cache path from flag or default.
func getCachePath() (string, error) {
	if cachePath != "" {
		return cachePath, nil
	}
	return storage.DefaultPath()
}
