package fmctrainer

import (
	"github.com/cubetools/fmctrainer/internal/stages"
)

// Stage represents a step in the EO > DR > HTR > finish solving
// progression. Stages are ordered, allowing comparison with < and >.
type Stage int

const (
	// StageEO orients every edge with respect to the F/B axis, after
	// which F and B quarter turns are never needed again.
	StageEO Stage = iota

	// StageDR reduces the cube to the U/D domino: corners oriented,
	// E-slice edges in the E slice.
	StageDR

	// StageHTR reduces the cube to the half-turn group: every remaining
	// case solvable with 180-degree turns only.
	StageHTR

	// StageFR pairs corners and edges vertically so the cube is
	// solvable by R2, L2, F2, B2 up to the E-slice permutation.
	StageFR

	// StageSlice leaves only the E-slice edge cycle.
	StageSlice

	// StageFinish solves the cube completely within the half-turn group.
	StageFinish

	numStages
)

// String returns a short identifier for the stage.
func (s Stage) String() string {
	switch s {
	case StageEO:
		return "eo"
	case StageDR:
		return "dr"
	case StageHTR:
		return "htr"
	case StageFR:
		return "fr"
	case StageSlice:
		return "slice"
	case StageFinish:
		return "finish"
	default:
		return "unknown"
	}
}

// DisplayName returns a human-readable name for the stage.
func (s Stage) DisplayName() string {
	switch s {
	case StageEO:
		return "Edge Orientation"
	case StageDR:
		return "Domino Reduction"
	case StageHTR:
		return "Half-Turn Reduction"
	case StageFR:
		return "Floppy Reduction"
	case StageSlice:
		return "Slice"
	case StageFinish:
		return "Finish"
	default:
		return "Unknown"
	}
}

// AllStages lists the stages in solving order.
var AllStages = []Stage{StageEO, StageDR, StageHTR, StageFR, StageSlice, StageFinish}

// ParseStage parses a stage identifier (as returned by String).
func ParseStage(s string) (Stage, error) {
	for _, st := range AllStages {
		if st.String() == s {
			return st, nil
		}
	}
	return 0, ErrUnknownStage
}

func (s Stage) kind() stages.Kind { return stages.Kind(s) }

// prerequisites lists the stages whose goals must already hold before
// this stage is searchable, in solving order.
func (s Stage) prerequisites() []Stage {
	switch s {
	case StageDR:
		return []Stage{StageEO}
	case StageHTR:
		return []Stage{StageEO, StageDR}
	case StageFR, StageFinish:
		return []Stage{StageEO, StageDR, StageHTR}
	case StageSlice:
		return []Stage{StageEO, StageDR, StageHTR, StageFR}
	}
	return nil
}

// Moves returns the moves legal within the stage, in the fixed
// enumeration order searches follow.
func (s Stage) Moves() []Move {
	return externalMoves(stages.MovesFor(s.kind()))
}

// Eligible reports whether the state satisfies the stage's prerequisites
// (every earlier stage's goal holds).
func (s Stage) Eligible(state CubeState) bool {
	return stages.Get(s.kind()).Eligible(&state.c)
}

// IsGoal reports whether the state satisfies the stage's goal.
func (s Stage) IsGoal(state CubeState) bool {
	d := stages.Get(s.kind())
	idx, ok := d.Encode(&state.c)
	return ok && d.IsGoal(idx)
}
