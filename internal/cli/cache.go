package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cubetools/fmctrainer"
	"github.com/cubetools/fmctrainer/internal/storage"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the pruning table cache",
	Long:  `Commands for building, inspecting and clearing the on-disk pruning table cache.`,
}

var cacheBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build and cache all pruning tables",
	Long: `Build the pruning table for every stage and persist them to the cache,
so later solves start instantly.`,
	RunE: runCacheBuild,
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached tables",
	RunE:  runCacheClear,
}

var cachePathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the cache file path",
	RunE:  runCachePath,
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheBuildCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cachePathCmd)
}

func runCacheBuild(cmd *cobra.Command, args []string) error {
	solver, err := newSolver()
	if err != nil {
		return err
	}

	// Solving the solved state for each stage forces every table build.
	state := fmctrainer.SolvedState()
	for _, stage := range fmctrainer.AllStages {
		fmt.Printf("Building %s table...\n", stage.DisplayName())
		if _, err := solver.SolveStage(cmd.Context(), state, stage); err != nil {
			return fmt.Errorf("failed to build %s table: %w", stage, err)
		}
	}

	path, _ := getCachePath()
	fmt.Printf("Done. Tables cached at %s\n", path)
	return nil
}

func runCacheClear(cmd *cobra.Command, args []string) error {
	path, err := getCachePath()
	if err != nil {
		return err
	}

	db, err := storage.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open cache: %w", err)
	}
	defer db.Close()

	if err := db.Clear(); err != nil {
		return err
	}
	fmt.Println("Cache cleared")
	return nil
}

func runCachePath(cmd *cobra.Command, args []string) error {
	path, err := getCachePath()
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}
