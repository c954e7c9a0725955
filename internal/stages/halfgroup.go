package stages

import (
	"sync"

	"github.com/cubetools/fmctrainer/internal/coord"
	"github.com/cubetools/fmctrainer/internal/cube"
)

// The FR, Slice and Finish stages all search inside the half-turn group
// ⟨U2,D2,R2,L2,F2,B2⟩. Its state space is small enough to index exactly:
// 96 reachable corner permutations times the three edge orbit
// permutations. Pruning bounds over this space are true distances.
type halfSpace struct {
	hcps  []uint16       // reachable corner permutation ranks, index = compact id
	cpToH []int16        // corner permutation rank -> compact id, -1 if outside
	hcpT  [][]uint8      // compact corner id transitions under halfMoves
	fbT   coord.Table8   // FB orbit transitions under halfMoves
	rlT   coord.Table8   // RL orbit transitions under halfMoves
	slT   coord.Table8   // slice orbit transitions under halfMoves
}

const halfSpaceSize = 96 * 24 * 24 * 24

var (
	hsOnce sync.Once
	hs     *halfSpace
)

func halfGroup() *halfSpace {
	hsOnce.Do(func() {
		cpT := coord.Build16(coord.CPSize, halfMoves, coord.SetCP, coord.CP)

		s := &halfSpace{cpToH: make([]int16, coord.CPSize)}
		for i := range s.cpToH {
			s.cpToH[i] = -1
		}
		// Discover the corner permutations reachable by half turns.
		s.cpToH[0] = 0
		s.hcps = []uint16{0}
		for frontier := []uint16{0}; len(frontier) > 0; {
			var next []uint16
			for _, v := range frontier {
				for mi := range halfMoves {
					n := cpT.Apply(v, mi)
					if s.cpToH[n] < 0 {
						s.cpToH[n] = int16(len(s.hcps))
						s.hcps = append(s.hcps, n)
						next = append(next, n)
					}
				}
			}
			frontier = next
		}

		s.hcpT = make([][]uint8, len(s.hcps))
		for h, cp := range s.hcps {
			row := make([]uint8, len(halfMoves))
			for mi := range halfMoves {
				row[mi] = uint8(s.cpToH[cpT.Apply(cp, mi)])
			}
			s.hcpT[h] = row
		}

		s.fbT = coord.Build8(coord.Perm4Size, halfMoves, coord.SetFBPerm, coord.FBPerm)
		s.rlT = coord.Build8(coord.Perm4Size, halfMoves, coord.SetRLPerm, coord.RLPerm)
		s.slT = coord.Build8(coord.Perm4Size, halfMoves, coord.SetSlicePerm, coord.SlicePerm)
		hs = s
	})
	return hs
}

func (s *halfSpace) encode(c *cube.Cube) (uint32, bool) {
	if coord.EO(c) != 0 || coord.CO(c) != 0 {
		return 0, false
	}
	// Every edge must sit inside its half-turn orbit.
	for pos := 0; pos < 12; pos++ {
		if edgeOrbit(c.EP[pos]) != edgeOrbit(uint8(pos)) {
			return 0, false
		}
	}
	h := s.cpToH[coord.CP(c)]
	if h < 0 {
		return 0, false
	}
	idx := uint32(h)
	idx = idx*24 + uint32(coord.FBPerm(c))
	idx = idx*24 + uint32(coord.RLPerm(c))
	idx = idx*24 + uint32(coord.SlicePerm(c))
	return idx, true
}

func (s *halfSpace) apply(idx uint32, mi int) uint32 {
	sl := uint8(idx % 24)
	idx /= 24
	rl := uint8(idx % 24)
	idx /= 24
	fb := uint8(idx % 24)
	h := idx / 24
	n := uint32(s.hcpT[h][mi])
	n = n*24 + uint32(s.fbT.Apply(fb, mi))
	n = n*24 + uint32(s.rlT.Apply(rl, mi))
	n = n*24 + uint32(s.slT.Apply(sl, mi))
	return n
}

// edgeOrbit classifies an edge position or piece: 0 = FB-type UD edge,
// 1 = RL-type UD edge, 2 = E slice.
func edgeOrbit(e uint8) int {
	switch {
	case e >= cube.FR:
		return 2
	case e%2 == 1:
		return 0 // UF, UB, DF, DB
	default:
		return 1 // UR, UL, DR, DL
	}
}

func buildHalfGroup(k Kind) *Def {
	s := halfGroup()

	d := &Def{
		Kind:   k,
		Size:   halfSpaceSize,
		Encode: s.encode,
	}

	switch k {
	case Finish:
		d.Moves = halfMoves
		d.Apply = s.apply
		d.Goals = []uint32{0}
		d.IsGoal = func(idx uint32) bool { return idx == 0 }

	case Slice:
		// Goal: everything solved except the slice orbit permutation.
		// With only F2, B2, R2, L2 legal, exactly the FR states can reach
		// it, so eligibility requires the FR goal on top of encoding.
		fr := Get(FR)
		d.Moves = sliceMoves
		d.Encode = func(c *cube.Cube) (uint32, bool) {
			idx, ok := s.encode(c)
			if !ok || !fr.IsGoal(idx) {
				return 0, false
			}
			return idx, true
		}
		sliceIdx := moveIndices(halfMoves, sliceMoves)
		d.Apply = func(idx uint32, mi int) uint32 {
			return s.apply(idx, sliceIdx[mi])
		}
		for v := uint32(0); v < 24; v++ {
			d.Goals = append(d.Goals, v)
		}
		d.IsGoal = func(idx uint32) bool { return idx < 24 }

	case FR:
		// Goal: solvable by ⟨R2,L2,F2,B2⟩ with the slice orbit ignored.
		// The move tables are slice-independent, so that is exactly the
		// states whose non-slice projection is reachable from solved.
		d.Moves = halfMoves
		d.Apply = s.apply
		sliceIdx := moveIndices(halfMoves, sliceMoves)
		proj := map[uint32]struct{}{0: {}}
		for frontier := []uint32{0}; len(frontier) > 0; {
			var next []uint32
			for _, v := range frontier {
				for _, mi := range sliceIdx {
					n := s.apply(v, mi)
					if _, seen := proj[n/24]; !seen {
						proj[n/24] = struct{}{}
						next = append(next, n)
					}
				}
			}
			frontier = next
		}
		for p := range proj {
			for sl := uint32(0); sl < 24; sl++ {
				d.Goals = append(d.Goals, p*24+sl)
			}
		}
		d.IsGoal = func(idx uint32) bool {
			_, ok := proj[idx/24]
			return ok
		}
	}
	return d
}
