// Package canon rewrites move sequences into a canonical form: same-face
// runs merged, commuting opposite-face pairs sorted, trivial turns
// dropped. Two sequences produce the same cube effect under reordering
// of commuting moves iff their canonical forms are equal.
package canon

import (
	"strings"

	"github.com/cubetools/fmctrainer/internal/cube"
)

// Canonicalize returns the canonical form of a move sequence. The input
// slice is not modified.
func Canonicalize(moves []cube.Move) []cube.Move {
	out := append([]cube.Move(nil), moves...)
	for {
		merged := mergePass(out)
		sorted := sortPass(merged)
		if len(sorted) == len(out) && equal(sorted, out) {
			return sorted
		}
		out = sorted
	}
}

// mergePass combines same-face runs, looking through a single commuting
// opposite-face move (F B F2 merges to F' B).
func mergePass(moves []cube.Move) []cube.Move {
	out := make([]cube.Move, 0, len(moves))
	for _, m := range moves {
		out = append(out, m)
		for {
			n := len(out)
			if n >= 2 && out[n-2].Face() == out[n-1].Face() {
				out = combine(out, n-2, n-1)
				continue
			}
			if n >= 3 && out[n-3].Face() == out[n-1].Face() && out[n-2].Face() == out[n-1].Face()^1 {
				out = combine(out, n-3, n-1)
				continue
			}
			break
		}
	}
	return out
}

// combine folds out[j] into out[i] (same face) and drops out[j], then
// drops out[i] too if the turns cancel.
func combine(out []cube.Move, i, j int) []cube.Move {
	q := (out[i].QuarterTurns() + out[j].QuarterTurns()) % 4
	out = append(out[:j], out[j+1:]...)
	if q == 0 {
		return append(out[:i], out[i+1:]...)
	}
	twist := cube.TwistCW
	switch q {
	case 3:
		twist = cube.TwistCCW
	case 2:
		twist = cube.TwistHalf
	}
	out[i] = cube.NewMove(out[i].Face(), twist)
	return out
}

// sortPass orders adjacent commuting opposite-face moves ascending by
// face (U before D, F before B, R before L).
func sortPass(moves []cube.Move) []cube.Move {
	out := append([]cube.Move(nil), moves...)
	for i := 0; i+1 < len(out); i++ {
		a, b := out[i].Face(), out[i+1].Face()
		if a == b^1 && a > b {
			out[i], out[i+1] = out[i+1], out[i]
		}
	}
	return out
}

func equal(a, b []cube.Move) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// String formats a sequence in standard notation.
func String(moves []cube.Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}
