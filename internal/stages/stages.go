// Package stages declares the six FMC solving stages: the coordinate
// space each stage searches in, the moves legal inside it, its goal set,
// and the eligibility rule tying it to the previous stage.
//
// The stage list is fixed. Each definition owns lazily built move tables
// shared by every search for that stage in the process.
package stages

import (
	"sync"

	"github.com/cubetools/fmctrainer/internal/coord"
	"github.com/cubetools/fmctrainer/internal/cube"
)

// Kind identifies a stage.
type Kind uint8

const (
	EO Kind = iota
	DR
	HTR
	FR
	Slice
	Finish
	NumKinds
)

var kindNames = [NumKinds]string{"eo", "dr", "htr", "fr", "slice", "finish"}

func (k Kind) String() string {
	if k < NumKinds {
		return kindNames[k]
	}
	return "unknown"
}

// Def is a stage definition. Coordinates are packed into a single dense
// index so pruning tables are flat byte slices.
type Def struct {
	Kind  Kind
	Moves []cube.Move // legal moves, in enumeration order
	Size  uint32      // packed coordinate range

	// Encode projects a cube into the stage's coordinate space. ok is
	// false when the state is outside the space (not eligible).
	Encode func(c *cube.Cube) (idx uint32, ok bool)
	// Apply advances a packed coordinate by Moves[moveIdx] in O(1).
	Apply func(idx uint32, moveIdx int) uint32
	// Goals enumerates the goal coordinates (the pruning BFS seeds).
	Goals []uint32
	// IsGoal reports whether a packed coordinate satisfies the stage goal.
	IsGoal func(idx uint32) bool
}

// Eligible reports whether a state may be searched for this stage: the
// previous stages' goals must already hold.
func (d *Def) Eligible(c *cube.Cube) bool {
	_, ok := d.Encode(c)
	return ok
}

// Move subsets. All are inverse-closed and listed in enumeration order.
var (
	allMoves = cube.AllMoves

	// EO-preserving: no F or B quarter turns.
	drMoves = subset("U", "U'", "U2", "D", "D'", "D2", "F2", "B2", "R", "R'", "R2", "L", "L'", "L2")

	// DR-preserving: no R or L quarter turns either.
	htrMoves = subset("U", "U'", "U2", "D", "D'", "D2", "F2", "B2", "R2", "L2")

	// HTR-preserving.
	halfMoves = subset("U2", "D2", "F2", "B2", "R2", "L2")

	// FR-preserving.
	sliceMoves = subset("F2", "B2", "R2", "L2")
)

func subset(notations ...string) []cube.Move {
	byName := map[string]cube.Move{}
	for _, m := range cube.AllMoves {
		byName[m.String()] = m
	}
	ms := make([]cube.Move, len(notations))
	for i, n := range notations {
		ms[i] = byName[n]
	}
	return ms
}

// MovesFor returns the legal move subset for a stage.
func MovesFor(k Kind) []cube.Move {
	switch k {
	case EO:
		return allMoves
	case DR:
		return drMoves
	case HTR:
		return htrMoves
	case FR, Finish:
		return halfMoves
	case Slice:
		return sliceMoves
	}
	return nil
}

var (
	defs  [NumKinds]*Def
	onces [NumKinds]sync.Once
)

// Get returns the stage definition, building its move tables on first use.
func Get(k Kind) *Def {
	onces[k].Do(func() {
		switch k {
		case EO:
			defs[k] = buildEO()
		case DR:
			defs[k] = buildDR()
		case HTR:
			defs[k] = buildHTR()
		case FR, Slice, Finish:
			defs[k] = buildHalfGroup(k)
		}
	})
	return defs[k]
}

func buildEO() *Def {
	t := coord.Build16(coord.EOSize, allMoves, coord.SetEO, coord.EO)
	return &Def{
		Kind:  EO,
		Moves: allMoves,
		Size:  coord.EOSize,
		Encode: func(c *cube.Cube) (uint32, bool) {
			return uint32(coord.EO(c)), true
		},
		Apply: func(idx uint32, mi int) uint32 {
			return uint32(t.Apply(uint16(idx), mi))
		},
		Goals:  []uint32{0},
		IsGoal: func(idx uint32) bool { return idx == 0 },
	}
}

func buildDR() *Def {
	coT := coord.Build16(coord.COSize, drMoves, coord.SetCO, coord.CO)
	slT := coord.Build16(coord.SliceSize, drMoves, coord.SetSlice, coord.Slice)
	goal := uint32(coord.SolvedSlice) // co part is 0
	return &Def{
		Kind:  DR,
		Moves: drMoves,
		Size:  coord.COSize * coord.SliceSize,
		Encode: func(c *cube.Cube) (uint32, bool) {
			if coord.EO(c) != 0 {
				return 0, false
			}
			return uint32(coord.CO(c))*coord.SliceSize + uint32(coord.Slice(c)), true
		},
		Apply: func(idx uint32, mi int) uint32 {
			co := uint16(idx / coord.SliceSize)
			sl := uint16(idx % coord.SliceSize)
			return uint32(coT.Apply(co, mi))*coord.SliceSize + uint32(slT.Apply(sl, mi))
		},
		Goals:  []uint32{goal},
		IsGoal: func(idx uint32) bool { return idx == goal },
	}
}

func buildHTR() *Def {
	cpT := coord.Build16(coord.CPSize, htrMoves, coord.SetCP, coord.CP)
	sepT := coord.Build16(coord.SepSize, htrMoves, coord.SetSep, coord.Sep)
	apply := func(idx uint32, mi int) uint32 {
		cp := uint16(idx / coord.SepSize)
		sep := uint16(idx % coord.SepSize)
		return uint32(cpT.Apply(cp, mi))*coord.SepSize + uint32(sepT.Apply(sep, mi))
	}

	// The goal set is everything reachable from solved by half turns:
	// 96 corner permutations, edges fully separated.
	halfIdx := moveIndices(htrMoves, halfMoves)
	start := uint32(coord.SolvedSep) // cp part is 0
	goalSet := map[uint32]struct{}{start: {}}
	goals := []uint32{start}
	for frontier := []uint32{start}; len(frontier) > 0; {
		var next []uint32
		for _, v := range frontier {
			for _, mi := range halfIdx {
				n := apply(v, mi)
				if _, seen := goalSet[n]; !seen {
					goalSet[n] = struct{}{}
					goals = append(goals, n)
					next = append(next, n)
				}
			}
		}
		frontier = next
	}

	return &Def{
		Kind:  HTR,
		Moves: htrMoves,
		Size:  coord.CPSize * coord.SepSize,
		Encode: func(c *cube.Cube) (uint32, bool) {
			if coord.EO(c) != 0 || coord.CO(c) != 0 || coord.Slice(c) != coord.SolvedSlice {
				return 0, false
			}
			return uint32(coord.CP(c))*coord.SepSize + uint32(coord.Sep(c)), true
		},
		Apply: apply,
		Goals: goals,
		IsGoal: func(idx uint32) bool {
			_, ok := goalSet[idx]
			return ok
		},
	}
}

// moveIndices maps each move in want to its index within have.
func moveIndices(have, want []cube.Move) []int {
	idx := make([]int, len(want))
	for i, w := range want {
		idx[i] = -1
		for j, h := range have {
			if h == w {
				idx[i] = j
			}
		}
	}
	return idx
}
