package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var scrambleCount int

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate random-state scrambles",
	Long: `Generate scrambles by drawing a uniformly random legal cube state and
inverting its stage-by-stage solution. Every legal state is equally
likely, matching WCA random-state scrambling.`,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVarP(&scrambleCount, "count", "n", 1, "Number of scrambles to generate")
}

func runScramble(cmd *cobra.Command, args []string) error {
	solver, err := newSolver()
	if err != nil {
		return err
	}

	for i := 0; i < scrambleCount; i++ {
		scramble, err := solver.Scramble(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(scramble)
	}
	return nil
}
