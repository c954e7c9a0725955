package fmctrainer

import (
	"fmt"

	"github.com/cubetools/fmctrainer/internal/cube"
)

// CubeState is an immutable piece-level cube state. Applying moves
// returns a new state, so states can be shared freely across goroutines.
type CubeState struct {
	c cube.Cube
}

// SolvedState returns the solved cube.
func SolvedState() CubeState {
	return CubeState{c: cube.Solved()}
}

// StateFromScramble parses a scramble in standard notation and applies
// it to the solved cube.
func StateFromScramble(scramble string) (CubeState, error) {
	moves, err := ParseMoves(scramble)
	if err != nil {
		return CubeState{}, err
	}
	return SolvedState().ApplyMoves(moves), nil
}

// Apply returns the state after one move.
func (s CubeState) Apply(m Move) CubeState {
	return CubeState{c: s.c.Apply(m.internal())}
}

// ApplyMoves returns the state after a sequence of moves.
func (s CubeState) ApplyMoves(moves []Move) CubeState {
	c := s.c
	for _, m := range moves {
		c = c.Apply(m.internal())
	}
	return CubeState{c: c}
}

// IsSolved reports whether every piece is home and oriented.
func (s CubeState) IsSolved() bool {
	return s.c.IsSolved()
}

// Validate checks that the state is a legal cube: real permutations,
// twist and flip sums consistent, matching permutation parity.
func (s CubeState) Validate() error {
	if err := s.c.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidState, err)
	}
	return nil
}

// Piece describes one piece slot: the piece currently in a position and
// its orientation there.
type Piece struct {
	Position    string // slot name, e.g. "UF" or "URF"
	Piece       string // name of the piece occupying the slot
	Orientation int    // 0 = oriented; edges 0..1, corners 0..2
}

// Edges returns the twelve edge slots in position order.
func (s CubeState) Edges() []Piece {
	out := make([]Piece, 12)
	for i := range out {
		out[i] = Piece{
			Position:    cube.EdgeNames[i],
			Piece:       cube.EdgeNames[s.c.EP[i]],
			Orientation: int(s.c.EO[i]),
		}
	}
	return out
}

// Corners returns the eight corner slots in position order.
func (s CubeState) Corners() []Piece {
	out := make([]Piece, 8)
	for i := range out {
		out[i] = Piece{
			Position:    cube.CornerNames[i],
			Piece:       cube.CornerNames[s.c.CP[i]],
			Orientation: int(s.c.CO[i]),
		}
	}
	return out
}
