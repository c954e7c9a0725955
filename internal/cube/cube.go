// Package cube provides a piece-level 3x3 Rubik's cube model: corner and
// edge permutations with orientations. This is the representation the
// coordinate encoders and move tables are generated from.
package cube

import "fmt"

// Corner positions. The solved cube has corner piece i at position i.
const (
	URF = iota
	UFL
	ULB
	UBR
	DFR
	DLF
	DBL
	DRB
)

// Edge positions. The solved cube has edge piece i at position i.
// Positions FR..BR form the E slice.
const (
	UR = iota
	UF
	UL
	UB
	DR
	DF
	DL
	DB
	FR
	FL
	BL
	BR
)

// CornerNames maps corner positions to their standard names.
var CornerNames = [8]string{"URF", "UFL", "ULB", "UBR", "DFR", "DLF", "DBL", "DRB"}

// EdgeNames maps edge positions to their standard names.
var EdgeNames = [12]string{"UR", "UF", "UL", "UB", "DR", "DF", "DL", "DB", "FR", "FL", "BL", "BR"}

// Cube is the full piece-level configuration.
//
// CP[i] is the corner piece sitting at position i, CO[i] its twist
// (0..2, counted clockwise relative to the U/D axis). EP[i] is the edge
// piece at position i, EO[i] its flip (0..1, relative to the F/B axis:
// an edge is flipped exactly when it cannot be solved without F or B
// quarter turns).
//
// Cube is a value type. Apply returns a new Cube and never mutates the
// receiver, so states can be shared freely.
type Cube struct {
	CP [8]uint8
	CO [8]uint8
	EP [12]uint8
	EO [12]uint8
}

// Solved returns the identity cube.
func Solved() Cube {
	var c Cube
	for i := 0; i < 8; i++ {
		c.CP[i] = uint8(i)
	}
	for i := 0; i < 12; i++ {
		c.EP[i] = uint8(i)
	}
	return c
}

// IsSolved reports whether every piece is home and oriented.
func (c Cube) IsSolved() bool {
	return c == Solved()
}

// Multiply composes two cubes: the result is c with m applied afterwards.
// Both arguments are treated as permutation group elements.
func (c Cube) Multiply(m *Cube) Cube {
	var r Cube
	for i := 0; i < 8; i++ {
		r.CP[i] = c.CP[m.CP[i]]
		r.CO[i] = (c.CO[m.CP[i]] + m.CO[i]) % 3
	}
	for i := 0; i < 12; i++ {
		r.EP[i] = c.EP[m.EP[i]]
		r.EO[i] = (c.EO[m.EP[i]] + m.EO[i]) % 2
	}
	return r
}

// Apply returns the cube after one face turn.
func (c Cube) Apply(m Move) Cube {
	return c.Multiply(&moveCubes[m])
}

// ApplyAll returns the cube after a sequence of face turns.
func (c Cube) ApplyAll(moves []Move) Cube {
	for _, m := range moves {
		c = c.Apply(m)
	}
	return c
}

// Validate checks the group invariants: both piece arrays are
// permutations, orientation sums are balanced, and corner/edge
// permutation parities agree. A state violating any of these cannot be
// reached by face turns from solved.
func (c Cube) Validate() error {
	var seenC [8]bool
	var coSum int
	for i := 0; i < 8; i++ {
		if c.CP[i] > 7 || seenC[c.CP[i]] {
			return fmt.Errorf("corner permutation is not a permutation")
		}
		seenC[c.CP[i]] = true
		if c.CO[i] > 2 {
			return fmt.Errorf("corner orientation out of range at position %d", i)
		}
		coSum += int(c.CO[i])
	}
	if coSum%3 != 0 {
		return fmt.Errorf("corner twist parity violated")
	}

	var seenE [12]bool
	var eoSum int
	for i := 0; i < 12; i++ {
		if c.EP[i] > 11 || seenE[c.EP[i]] {
			return fmt.Errorf("edge permutation is not a permutation")
		}
		seenE[c.EP[i]] = true
		if c.EO[i] > 1 {
			return fmt.Errorf("edge orientation out of range at position %d", i)
		}
		eoSum += int(c.EO[i])
	}
	if eoSum%2 != 0 {
		return fmt.Errorf("edge flip parity violated")
	}

	if permParity(c.CP[:]) != permParity(c.EP[:]) {
		return fmt.Errorf("corner/edge permutation parity mismatch")
	}
	return nil
}

// permParity returns 0 for even permutations, 1 for odd.
func permParity(p []uint8) int {
	parity := 0
	for i := 0; i < len(p); i++ {
		for j := i + 1; j < len(p); j++ {
			if p[i] > p[j] {
				parity ^= 1
			}
		}
	}
	return parity
}
