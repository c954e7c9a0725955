package stages

import (
	"testing"

	"github.com/cubetools/fmctrainer/internal/coord"
	"github.com/cubetools/fmctrainer/internal/cube"
)

func applyNames(t *testing.T, c cube.Cube, names ...string) cube.Cube {
	t.Helper()
	byName := map[string]cube.Move{}
	for _, m := range cube.AllMoves {
		byName[m.String()] = m
	}
	for _, n := range names {
		m, ok := byName[n]
		if !ok {
			t.Fatalf("no move named %q", n)
		}
		c = c.Apply(m)
	}
	return c
}

func TestMovesFor_SubsetSizes(t *testing.T) {
	cases := map[Kind]int{
		EO:     18,
		DR:     14,
		HTR:    10,
		FR:     6,
		Slice:  4,
		Finish: 6,
	}
	for k, want := range cases {
		if got := len(MovesFor(k)); got != want {
			t.Errorf("%s: %d legal moves, want %d", k, got, want)
		}
	}
}

func TestMovesFor_InverseClosed(t *testing.T) {
	for k := EO; k < NumKinds; k++ {
		moves := MovesFor(k)
		in := map[cube.Move]bool{}
		for _, m := range moves {
			in[m] = true
		}
		for _, m := range moves {
			if !in[m.Inverse()] {
				t.Errorf("%s: move set contains %s but not %s", k, m, m.Inverse())
			}
		}
	}
}

func TestGet_SolvedIsGoalForEveryStage(t *testing.T) {
	solved := cube.Solved()
	for k := EO; k < NumKinds; k++ {
		d := Get(k)
		idx, ok := d.Encode(&solved)
		if !ok {
			t.Fatalf("%s: solved cube should encode", k)
		}
		if !d.IsGoal(idx) {
			t.Errorf("%s: solved cube should be a goal", k)
		}
	}
}

func TestGet_HTRGoalSetHas96Entries(t *testing.T) {
	d := Get(HTR)
	if len(d.Goals) != 96 {
		t.Errorf("HTR goal set has %d entries, want 96", len(d.Goals))
	}
}

func TestGet_ApplyMatchesEncode(t *testing.T) {
	// def.Apply on the packed coordinate must agree with applying the
	// move to the cube and re-encoding.
	for k := EO; k < NumKinds; k++ {
		d := Get(k)
		c := cube.Solved()
		idx, _ := d.Encode(&c)
		for mi, m := range d.Moves {
			nc := c.Apply(m)
			want, ok := d.Encode(&nc)
			if !ok {
				t.Fatalf("%s: %s left the stage space", k, m)
			}
			if got := d.Apply(idx, mi); got != want {
				t.Errorf("%s: Apply(solved, %s) = %d, want %d", k, m, got, want)
			}
		}
	}
}

func TestGet_ApplyMatchesEncode_Scrambled(t *testing.T) {
	// Same agreement from a state deep in each stage's space.
	scrambles := map[Kind][]string{
		EO:     {"R", "U2", "F", "L'", "D", "B2"},
		DR:     {"R", "U'", "L2", "F2", "D", "R'"},
		HTR:    {"U", "R2", "D'", "F2", "U2", "L2"},
		FR:     {"U2", "R2", "F2", "D2", "L2", "B2"},
		Slice:  {"R2", "F2", "B2", "L2", "F2", "R2"},
		Finish: {"F2", "U2", "R2", "B2", "D2", "L2"},
	}
	for k, names := range scrambles {
		d := Get(k)
		c := applyNames(t, cube.Solved(), names...)
		idx, ok := d.Encode(&c)
		if !ok {
			t.Fatalf("%s: scramble left the stage space", k)
		}
		for mi, m := range d.Moves {
			nc := c.Apply(m)
			want, _ := d.Encode(&nc)
			if got := d.Apply(idx, mi); got != want {
				t.Errorf("%s: Apply(%s) = %d, want %d", k, m, got, want)
			}
		}
	}
}

func TestEligible_Chain(t *testing.T) {
	solved := cube.Solved()
	for k := EO; k < NumKinds; k++ {
		if !Get(k).Eligible(&solved) {
			t.Errorf("%s: solved cube should be eligible", k)
		}
	}

	afterF := applyNames(t, cube.Solved(), "F")
	if !Get(EO).Eligible(&afterF) {
		t.Error("EO: every valid state is eligible")
	}
	if Get(DR).Eligible(&afterF) {
		t.Error("DR: state with bad EO should not be eligible")
	}

	afterR := applyNames(t, cube.Solved(), "R")
	if !Get(DR).Eligible(&afterR) {
		t.Error("DR: R preserves EO, state should be eligible")
	}
	if Get(HTR).Eligible(&afterR) {
		t.Error("HTR: R twists corners, state should not be eligible")
	}

	afterU := applyNames(t, cube.Solved(), "U")
	if Get(Finish).Eligible(&afterU) {
		t.Error("finish: U leaves the half-turn group, state should not be eligible")
	}
}

func TestIsGoal_HTRHoldsInsideHalfTurnGroup(t *testing.T) {
	c := applyNames(t, cube.Solved(), "U2", "R2", "F2", "D2", "L2", "B2")
	d := Get(HTR)
	idx, ok := d.Encode(&c)
	if !ok {
		t.Fatal("half-turn scramble should encode for HTR")
	}
	if !d.IsGoal(idx) {
		t.Error("every half-turn-group state satisfies the HTR goal")
	}
}

func TestIsGoal_SliceOnlyStatesSatisfySlice(t *testing.T) {
	// Any state whose only defect is the E-slice permutation is a slice
	// goal, whatever that permutation is.
	d := Get(Slice)
	for v := uint8(0); v < coord.Perm4Size; v++ {
		c := cube.Solved()
		coord.SetSlicePerm(&c, v)
		idx, ok := d.Encode(&c)
		if !ok {
			t.Fatalf("slice perm %d should encode", v)
		}
		if !d.IsGoal(idx) {
			t.Errorf("slice perm %d should satisfy the slice goal", v)
		}
	}
}

func TestBadPieces_EOCountsFlippedEdges(t *testing.T) {
	c := applyNames(t, cube.Solved(), "F")
	bad := BadEdges(EO, &c)
	if len(bad) != 4 {
		t.Errorf("F flips 4 edges, BadEdges found %d", len(bad))
	}
	if got := CaseName(EO, &c); got != "4e" {
		t.Errorf("CaseName(EO, after F) = %q, want \"4e\"", got)
	}
}

func TestBadPieces_DRCountsTwistsAndSliceEdges(t *testing.T) {
	c := applyNames(t, cube.Solved(), "F")
	if got := len(BadCorners(DR, &c)); got != 4 {
		t.Errorf("F twists 4 corners, BadCorners found %d", got)
	}
	if got := len(BadEdges(DR, &c)); got != 2 {
		t.Errorf("F strands 2 slice edges in the UD layers, BadEdges found %d", got)
	}
	if got := CaseName(DR, &c); got != "4c2e" {
		t.Errorf("CaseName(DR, after F) = %q, want \"4c2e\"", got)
	}
}

func TestCaseName_SolvedIsZero(t *testing.T) {
	c := cube.Solved()
	for k := EO; k < NumKinds; k++ {
		if got := CaseName(k, &c); got != "0" {
			t.Errorf("CaseName(%s, solved) = %q, want \"0\"", k, got)
		}
	}
}
