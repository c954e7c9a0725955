package coord

import (
	"testing"

	"github.com/cubetools/fmctrainer/internal/cube"
)

func TestEO_RoundTrip(t *testing.T) {
	for v := uint16(0); v < EOSize; v++ {
		c := cube.Solved()
		SetEO(&c, v)
		if err := c.Validate(); err != nil {
			t.Fatalf("SetEO(%d) produced invalid cube: %v", v, err)
		}
		if got := EO(&c); got != v {
			t.Fatalf("EO(SetEO(%d)) = %d", v, got)
		}
	}
}

func TestCO_RoundTrip(t *testing.T) {
	for v := uint16(0); v < COSize; v++ {
		c := cube.Solved()
		SetCO(&c, v)
		if err := c.Validate(); err != nil {
			t.Fatalf("SetCO(%d) produced invalid cube: %v", v, err)
		}
		if got := CO(&c); got != v {
			t.Fatalf("CO(SetCO(%d)) = %d", v, got)
		}
	}
}

func TestSlice_RoundTrip(t *testing.T) {
	for v := uint16(0); v < SliceSize; v++ {
		c := cube.Solved()
		SetSlice(&c, v)
		if got := Slice(&c); got != v {
			t.Fatalf("Slice(SetSlice(%d)) = %d", v, got)
		}
	}
}

func TestSlice_SolvedValue(t *testing.T) {
	c := cube.Solved()
	if got := Slice(&c); got != SolvedSlice {
		t.Errorf("Slice(solved) = %d, want %d", got, SolvedSlice)
	}
}

func TestCP_RoundTrip(t *testing.T) {
	for v := uint16(0); v < CPSize; v += 7 { // sample, full range is slow
		c := cube.Solved()
		SetCP(&c, v)
		if got := CP(&c); got != v {
			t.Fatalf("CP(SetCP(%d)) = %d", v, got)
		}
	}
	c := cube.Solved()
	if got := CP(&c); got != 0 {
		t.Errorf("CP(solved) = %d, want 0", got)
	}
}

func TestSep_RoundTrip(t *testing.T) {
	for v := uint16(0); v < SepSize; v++ {
		c := cube.Solved()
		SetSep(&c, v)
		if got := Sep(&c); got != v {
			t.Fatalf("Sep(SetSep(%d)) = %d", v, got)
		}
	}
}

func TestOrbitPerms_RoundTrip(t *testing.T) {
	type orbit struct {
		name string
		set  func(*cube.Cube, uint8)
		get  func(*cube.Cube) uint8
	}
	for _, o := range []orbit{
		{"fb", SetFBPerm, FBPerm},
		{"rl", SetRLPerm, RLPerm},
		{"slice", SetSlicePerm, SlicePerm},
	} {
		for v := uint8(0); v < Perm4Size; v++ {
			c := cube.Solved()
			o.set(&c, v)
			if got := o.get(&c); got != v {
				t.Fatalf("%s: get(set(%d)) = %d", o.name, v, got)
			}
		}
	}
}

func TestBuild16_MatchesDirectApplication(t *testing.T) {
	table := Build16(EOSize, cube.AllMoves, SetEO, EO)
	// Spot-check: the table must agree with encoding after a real move.
	for v := uint16(0); v < EOSize; v += 13 {
		c := cube.Solved()
		SetEO(&c, v)
		for mi, m := range cube.AllMoves {
			nc := c.Apply(m)
			if got, want := table.Apply(v, mi), EO(&nc); got != want {
				t.Fatalf("table[%d][%s] = %d, want %d", v, m, got, want)
			}
		}
	}
}

func TestBuild16_MoveThenInverse_Identity(t *testing.T) {
	table := Build16(COSize, cube.AllMoves, SetCO, CO)
	for v := uint16(0); v < COSize; v += 11 {
		for mi, m := range cube.AllMoves {
			var inv int
			for j, o := range cube.AllMoves {
				if o == m.Inverse() {
					inv = j
				}
			}
			if got := table.Apply(table.Apply(v, mi), inv); got != v {
				t.Fatalf("CO %d: %s then inverse gave %d", v, m, got)
			}
		}
	}
}
