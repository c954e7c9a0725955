package search

import (
	"context"
	"testing"

	"github.com/cubetools/fmctrainer/internal/canon"
	"github.com/cubetools/fmctrainer/internal/cube"
	"github.com/cubetools/fmctrainer/internal/prune"
	"github.com/cubetools/fmctrainer/internal/stages"
)

func moveByName(t *testing.T, name string) cube.Move {
	t.Helper()
	for _, m := range cube.AllMoves {
		if m.String() == name {
			return m
		}
	}
	t.Fatalf("no move named %q", name)
	return 0
}

func eoParams(t *testing.T, scramble ...string) Params {
	t.Helper()
	d := stages.Get(stages.EO)
	table, err := prune.Build(context.Background(), d.Size, len(d.Moves), d.Apply, d.Goals, prune.Config{})
	if err != nil {
		t.Fatalf("prune.Build: %v", err)
	}

	c := cube.Solved()
	for _, n := range scramble {
		c = c.Apply(moveByName(t, n))
	}
	start, ok := d.Encode(&c)
	if !ok {
		t.Fatal("scramble should encode for EO")
	}
	return Params{
		Start:    start,
		Moves:    d.Moves,
		Apply:    d.Apply,
		IsGoal:   d.IsGoal,
		Table:    table,
		MaxDepth: 12,
	}
}

func TestRun_SolvedStateReturnsEmptySolution(t *testing.T) {
	moves, found, err := Run(context.Background(), eoParams(t))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !found {
		t.Fatal("solved state should be found")
	}
	if len(moves) != 0 {
		t.Errorf("solved state solution should be empty, got %v", moves)
	}
}

func TestRun_SingleMoveScramble(t *testing.T) {
	moves, found, err := Run(context.Background(), eoParams(t, "F"))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !found {
		t.Fatal("F scramble should be solvable")
	}
	if len(moves) != 1 {
		t.Fatalf("EO after F needs exactly 1 move, got %v", moves)
	}
	// Either F or F' fixes the orientation.
	if f := moves[0].Face(); f != cube.FaceF {
		t.Errorf("solution should turn the F face, got %s", moves[0])
	}
}

func TestRun_TwoMoveScramble(t *testing.T) {
	moves, found, err := Run(context.Background(), eoParams(t, "F", "B"))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !found {
		t.Fatal("scramble should be solvable")
	}
	// Eight edges are flipped across disjoint position sets, so one
	// quarter turn cannot fix them and two can.
	if len(moves) != 2 {
		t.Errorf("expected a 2-move EO, got %v (%d moves)", moves, len(moves))
	}
}

func TestRun_SolutionActuallySolvesStage(t *testing.T) {
	scramble := []string{"R", "U2", "F", "L'", "D", "B"}
	p := eoParams(t, scramble...)
	moves, found, err := Run(context.Background(), p)
	if err != nil || !found {
		t.Fatalf("Run: found=%v err=%v", found, err)
	}

	c := cube.Solved()
	for _, n := range scramble {
		c = c.Apply(moveByName(t, n))
	}
	c = c.ApplyAll(moves)
	d := stages.Get(stages.EO)
	idx, _ := d.Encode(&c)
	if !d.IsGoal(idx) {
		t.Errorf("solution %v does not reach the EO goal", moves)
	}
}

func TestRun_ExclusionForcesDifferentSolution(t *testing.T) {
	p := eoParams(t, "F", "R", "B")
	first, found, err := Run(context.Background(), p)
	if err != nil || !found {
		t.Fatalf("first Run: found=%v err=%v", found, err)
	}

	firstCanon := canon.String(canon.Canonicalize(first))
	p.Exclude = func(ms []cube.Move) bool {
		return canon.String(canon.Canonicalize(ms)) == firstCanon
	}
	second, found, err := Run(context.Background(), p)
	if err != nil || !found {
		t.Fatalf("second Run: found=%v err=%v", found, err)
	}

	if canon.String(canon.Canonicalize(second)) == firstCanon {
		t.Errorf("excluded solution returned again: %v", second)
	}
	if len(second) < len(first) {
		t.Errorf("excluding the optimum cannot shorten the result: %d < %d", len(second), len(first))
	}
}

func TestRun_Deterministic(t *testing.T) {
	p := eoParams(t, "R", "U2", "F", "L'", "D", "B")
	var first []cube.Move
	for i := 0; i < 5; i++ {
		for _, workers := range []int{1, 4} {
			p.Workers = workers
			moves, found, err := Run(context.Background(), p)
			if err != nil || !found {
				t.Fatalf("Run: found=%v err=%v", found, err)
			}
			if first == nil {
				first = moves
				continue
			}
			if canon.String(moves) != canon.String(first) {
				t.Fatalf("nondeterministic result: %v vs %v", moves, first)
			}
		}
	}
}

func TestRun_ExhaustedWithinMaxDepth(t *testing.T) {
	p := eoParams(t, "F")
	p.MaxDepth = 0
	_, found, err := Run(context.Background(), p)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if found {
		t.Error("depth limit 0 cannot solve a 1-move scramble")
	}
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := eoParams(t, "R", "U2", "F", "L'", "D", "B")
	if _, _, err := Run(ctx, p); err == nil {
		t.Error("Run with cancelled context should fail")
	}
}

func TestRun_NoSameFaceTwiceInSolution(t *testing.T) {
	p := eoParams(t, "R", "U2", "F", "L'", "D", "B")
	moves, found, err := Run(context.Background(), p)
	if err != nil || !found {
		t.Fatalf("Run: found=%v err=%v", found, err)
	}
	for i := 1; i < len(moves); i++ {
		if moves[i].Face() == moves[i-1].Face() {
			t.Errorf("solution repeats a face: %v", moves)
		}
		if moves[i].Face()^1 == moves[i-1].Face() && moves[i].Face() < moves[i-1].Face() {
			t.Errorf("opposite-face pair out of canonical order: %v", moves)
		}
	}
}
