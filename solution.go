package fmctrainer

import (
	"github.com/cubetools/fmctrainer/internal/canon"
)

// Solution is one move sequence reaching a stage goal.
type Solution struct {
	Moves []Move
}

// Len returns the move count.
func (s Solution) Len() int { return len(s.Moves) }

// String formats the solution in standard notation.
func (s Solution) String() string { return FormatMoves(s.Moves) }

// Canonical returns the solution's canonical form: same-face turns
// merged, commuting opposite-face pairs ordered U D, F B, R L. Two
// solutions differing only by such rewrites canonicalize identically.
func (s Solution) Canonical() Solution {
	return Solution{Moves: Canonicalize(s.Moves)}
}

// Canonicalize rewrites a move sequence into canonical form.
func Canonicalize(moves []Move) []Move {
	return externalMoves(canon.Canonicalize(internalMoves(moves)))
}
