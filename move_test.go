package fmctrainer

import (
	"errors"
	"testing"
)

func TestParseMove(t *testing.T) {
	cases := map[string]Move{
		"R":  {Face: FaceR, Turn: CW},
		"R'": {Face: FaceR, Turn: CCW},
		"R2": {Face: FaceR, Turn: Double},
		"u":  {Face: FaceU, Turn: CW},
		"f2": {Face: FaceF, Turn: Double},
	}
	for in, want := range cases {
		got, err := ParseMove(in)
		if err != nil {
			t.Errorf("ParseMove(%q): %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseMove(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParseMove_Invalid(t *testing.T) {
	for _, in := range []string{"", "X", "R3", "RR", "2R"} {
		if _, err := ParseMove(in); !errors.Is(err, ErrInvalidNotation) {
			t.Errorf("ParseMove(%q) should return ErrInvalidNotation, got %v", in, err)
		}
	}
}

func TestParseMoves_InvalidTokenFailsWhole(t *testing.T) {
	if _, err := ParseMoves("R U X R'"); !errors.Is(err, ErrInvalidNotation) {
		t.Errorf("invalid token should fail the sequence, got %v", err)
	}
}

func TestParseMoves_RoundTrip(t *testing.T) {
	in := "R U2 F' B2 L D'"
	moves, err := ParseMoves(in)
	if err != nil {
		t.Fatalf("ParseMoves: %v", err)
	}
	if got := FormatMoves(moves); got != in {
		t.Errorf("FormatMoves(ParseMoves(%q)) = %q", in, got)
	}
}

func TestMove_Inverse(t *testing.T) {
	cases := map[string]string{"R": "R'", "R'": "R", "R2": "R2", "U": "U'"}
	for in, want := range cases {
		m, _ := ParseMove(in)
		if got := m.Inverse().Notation(); got != want {
			t.Errorf("%s.Inverse() = %s, want %s", in, got, want)
		}
	}
}

func TestMove_InternalRoundTrip(t *testing.T) {
	for _, face := range []Face{FaceU, FaceD, FaceF, FaceB, FaceR, FaceL} {
		for _, turn := range []Turn{CW, CCW, Double} {
			m := Move{Face: face, Turn: turn}
			if got := externalMove(m.internal()); got != m {
				t.Errorf("externalMove(internal(%v)) = %v", m, got)
			}
		}
	}
}

func TestCanonicalize_PublicAPI(t *testing.T) {
	moves, _ := ParseMoves("L R F F")
	got := FormatMoves(Canonicalize(moves))
	if got != "R L F2" {
		t.Errorf("Canonicalize(L R F F) = %q, want \"R L F2\"", got)
	}
}
