package fmctrainer

import (
	"errors"
	"testing"
)

func mustState(t *testing.T, scramble string) CubeState {
	t.Helper()
	state, err := StateFromScramble(scramble)
	if err != nil {
		t.Fatalf("StateFromScramble(%q): %v", scramble, err)
	}
	return state
}

func TestParseStage(t *testing.T) {
	for _, stage := range AllStages {
		got, err := ParseStage(stage.String())
		if err != nil {
			t.Errorf("ParseStage(%q): %v", stage.String(), err)
		}
		if got != stage {
			t.Errorf("ParseStage(%q) = %v, want %v", stage.String(), got, stage)
		}
	}
	if _, err := ParseStage("nope"); !errors.Is(err, ErrUnknownStage) {
		t.Error("unknown stage name should return ErrUnknownStage")
	}
}

func TestStage_Ordering(t *testing.T) {
	if !(StageEO < StageDR && StageDR < StageHTR && StageHTR < StageFinish) {
		t.Error("stages should be ordered EO < DR < HTR < finish")
	}
}

func TestStage_MoveCounts(t *testing.T) {
	cases := map[Stage]int{
		StageEO:     18,
		StageDR:     14,
		StageHTR:    10,
		StageFR:     6,
		StageSlice:  4,
		StageFinish: 6,
	}
	for stage, want := range cases {
		if got := len(stage.Moves()); got != want {
			t.Errorf("%s: %d legal moves, want %d", stage, got, want)
		}
	}
}

func TestStage_SolvedSatisfiesEverything(t *testing.T) {
	state := SolvedState()
	for _, stage := range AllStages {
		if !stage.Eligible(state) {
			t.Errorf("%s: solved state should be eligible", stage)
		}
		if !stage.IsGoal(state) {
			t.Errorf("%s: solved state should be a goal", stage)
		}
	}
}

func TestStage_EligibilityChain(t *testing.T) {
	afterF := mustState(t, "F")
	if !StageEO.Eligible(afterF) {
		t.Error("every valid state is eligible for EO")
	}
	if StageEO.IsGoal(afterF) {
		t.Error("F breaks edge orientation")
	}
	if StageDR.Eligible(afterF) {
		t.Error("bad EO blocks DR")
	}

	afterR := mustState(t, "R")
	if !StageDR.Eligible(afterR) {
		t.Error("R preserves EO, DR should be searchable")
	}
	if StageHTR.Eligible(afterR) {
		t.Error("R twists corners, HTR prerequisites fail")
	}

	afterU2 := mustState(t, "U2")
	for _, stage := range []Stage{StageEO, StageDR, StageHTR, StageFR, StageFinish} {
		if !stage.Eligible(afterU2) {
			t.Errorf("%s: half-turn states satisfy the prerequisite", stage)
		}
	}
	if !StageHTR.IsGoal(afterU2) {
		t.Error("U2 stays within the half-turn group")
	}
	if StageFinish.IsGoal(afterU2) {
		t.Error("U2 is not solved")
	}

	// U2 breaks the vertical corner pairs, so slice is not yet searchable.
	if StageSlice.Eligible(afterU2) {
		t.Error("slice needs FR first, U2 should not be eligible")
	}
	afterR2 := mustState(t, "R2")
	if !StageSlice.Eligible(afterR2) {
		t.Error("R2 preserves FR, slice should be searchable")
	}
}
