package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cubetools/fmctrainer"
)

var (
	solveStage   string
	solveCount   int
	solveExclude []string
	showPieces   bool
)

var solveCmd = &cobra.Command{
	Use:   "solve [scramble]",
	Short: "Find optimal stage solutions for a scramble",
	Long: `Find optimal solutions for one stage of a scramble.

Available stages:
  eo      - Edge Orientation
  dr      - Domino Reduction
  htr     - Half-Turn Reduction
  fr      - Floppy Reduction
  slice   - Slice
  finish  - Finish

The scramble is applied to a solved cube. Later stages require the
earlier stages' goals to already hold in the scrambled state.`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().StringVar(&solveStage, "stage", "eo", "Stage to solve (eo, dr, htr, fr, slice, finish)")
	solveCmd.Flags().IntVarP(&solveCount, "count", "n", 1, "Number of distinct solutions to find")
	solveCmd.Flags().StringArrayVar(&solveExclude, "exclude", nil, "Solution to exclude (repeatable)")
	solveCmd.Flags().BoolVar(&showPieces, "pieces", false, "Show the bad pieces blocking the stage")
}

func runSolve(cmd *cobra.Command, args []string) error {
	stage, err := fmctrainer.ParseStage(solveStage)
	if err != nil {
		return fmt.Errorf("unknown stage '%s'\nUse one of: eo, dr, htr, fr, slice, finish", solveStage)
	}

	state, err := fmctrainer.StateFromScramble(args[0])
	if err != nil {
		return fmt.Errorf("invalid scramble: %w", err)
	}

	solver, err := newSolver()
	if err != nil {
		return err
	}

	if !stage.Eligible(state) {
		return fmt.Errorf("scramble is not ready for %s: solve the earlier stages first", stage.DisplayName())
	}

	fmt.Printf("Stage: %s\n", stage.DisplayName())
	fmt.Printf("Case:  %s\n", solver.CaseName(state, stage))

	if showPieces {
		corners, edges := solver.BadPieces(state, stage)
		if len(corners) > 0 {
			fmt.Printf("Bad corners: %s\n", strings.Join(corners, " "))
		}
		if len(edges) > 0 {
			fmt.Printf("Bad edges:   %s\n", strings.Join(edges, " "))
		}
	}
	fmt.Println()

	exclude := make([]fmctrainer.Solution, 0, len(solveExclude))
	for _, raw := range solveExclude {
		moves, err := fmctrainer.ParseMoves(raw)
		if err != nil {
			return fmt.Errorf("invalid --exclude sequence %q: %w", raw, err)
		}
		exclude = append(exclude, fmctrainer.Solution{Moves: moves})
	}

	ctx := cmd.Context()
	found := 0
	for found < solveCount {
		sol, err := solver.SolveStage(ctx, state, stage, exclude...)
		if errors.Is(err, fmctrainer.ErrExhausted) {
			break
		}
		if err != nil {
			return err
		}
		found++
		if sol.Len() == 0 {
			fmt.Println("(already solved)")
		} else {
			fmt.Printf("%s  (%d moves)\n", sol, sol.Len())
		}
		exclude = append(exclude, sol)
	}

	if found == 0 {
		return fmt.Errorf("no solution within %d moves", maxDepth)
	}
	return nil
}

func newSolver() (*fmctrainer.Solver, error) {
	cache, err := getCachePath()
	if err != nil {
		return nil, err
	}
	return fmctrainer.NewSolver(
		fmctrainer.WithWorkers(workers),
		fmctrainer.WithMaxDepth(maxDepth),
		fmctrainer.WithTableCache(cache),
	), nil
}
