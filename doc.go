// Package fmctrainer provides a stage-solver engine for the Fewest
// Moves Challenge (FMC): it finds optimal solutions for each step of the
// EO > DR > HTR > finish solving progression.
//
// # Features
//
//   - Optimal stage solutions via IDA* over coordinate spaces
//   - Alternative solutions through canonical-form exclusion sets
//   - Deterministic results regardless of worker count
//   - Bad-piece readouts and case names per stage
//   - Random-state scramble generation
//   - On-disk pruning table cache
//
// # Quick Start
//
// Solve the EO stage of a scramble:
//
//	solver := fmctrainer.NewSolver()
//
//	state, err := fmctrainer.StateFromScramble("R' U' F D2 L2 F R2 U2 R2 B D2 L B2 R' U' F")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sol, err := solver.SolveStage(ctx, state, fmctrainer.StageEO)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("EO:", sol)
//
// # Alternative Solutions
//
// Passing previous solutions excludes them (and everything equivalent up
// to move reordering) from the next search:
//
//	first, _ := solver.SolveStage(ctx, state, fmctrainer.StageEO)
//	second, _ := solver.SolveStage(ctx, state, fmctrainer.StageEO, first)
//
// Or ask for several at once:
//
//	sols, _ := solver.SolveN(ctx, state, fmctrainer.StageEO, 5)
//
// # Stages
//
// The solving progression:
//
//   - StageEO: edges oriented on the F/B axis
//   - StageDR: domino reduction to ⟨U, D, F2, B2, R2, L2⟩
//   - StageHTR: half-turn reduction to ⟨U2, D2, F2, B2, R2, L2⟩
//   - StageFR: floppy reduction (optional)
//   - StageSlice: E-slice cycle only (optional)
//   - StageFinish: solved
//
// Each stage requires the previous goals to hold (StageFinish only needs
// HTR, StageSlice needs FR); SolveStage returns ErrNotEligible otherwise.
package fmctrainer
