// Package coord implements the compact numeric projections of cube state
// ("coordinates") used to index pruning tables, together with precomputed
// move-transition tables so a coordinate can be advanced in O(1) without
// touching the piece-level model.
//
// Every encoder has an exact inverse: the inverse is what the table
// generator uses to enumerate a coordinate's full value range.
package coord

import "github.com/cubetools/fmctrainer/internal/cube"

// Coordinate sizes.
const (
	EOSize    = 2048    // 2^11 edge orientations
	COSize    = 2187    // 3^7 corner orientations
	SliceSize = 495     // C(12,4) E-slice edge position sets
	CPSize    = 40320   // 8! corner permutations
	SepSize   = 70      // C(8,4) FB-edge separations within the UD layers
	Perm4Size = 24      // 4! orbit permutations
)

// SolvedSlice is the slice coordinate of a solved cube (pieces FR..BR at
// home, the lexicographically last 4-subset of the 12 positions).
const SolvedSlice = 494

// EO packs the flips of edges 0..10 into an 11-bit index. The 12th flip
// is implied by parity. Solved is 0.
func EO(c *cube.Cube) uint16 {
	var v uint16
	for i := 10; i >= 0; i-- {
		v = v<<1 | uint16(c.EO[i])
	}
	return v
}

// SetEO writes the edge orientations encoded by v, fixing the last edge
// by parity.
func SetEO(c *cube.Cube, v uint16) {
	parity := uint8(0)
	for i := 0; i < 11; i++ {
		c.EO[i] = uint8(v>>i) & 1
		parity ^= c.EO[i]
	}
	c.EO[11] = parity
}

// CO packs the twists of corners 0..6 into a base-3 index. The 8th twist
// is implied. Solved is 0.
func CO(c *cube.Cube) uint16 {
	var v uint16
	for i := 6; i >= 0; i-- {
		v = v*3 + uint16(c.CO[i])
	}
	return v
}

// SetCO writes the corner orientations encoded by v, fixing the last
// corner so the total twist is a multiple of 3.
func SetCO(c *cube.Cube, v uint16) {
	sum := 0
	for i := 0; i < 7; i++ {
		c.CO[i] = uint8(v % 3)
		sum += int(c.CO[i])
		v /= 3
	}
	c.CO[7] = uint8((3 - sum%3) % 3)
}

// binomial[n][k] for n <= 12.
var binomial = func() [13][5]uint16 {
	var b [13][5]uint16
	for n := 0; n <= 12; n++ {
		b[n][0] = 1
		for k := 1; k <= 4 && k <= n; k++ {
			b[n][k] = b[n-1][k-1]
			if n-1 >= k {
				b[n][k] += b[n-1][k]
			}
		}
	}
	return b
}()

// rank4 ranks a strictly ascending 4-subset of {0..n-1} by combinadic:
// rank = C(p0,1) + C(p1,2) + C(p2,3) + C(p3,4).
func rank4(p [4]int) uint16 {
	var r uint16
	for i, pos := range p {
		r += binomial[pos][i+1]
	}
	return r
}

// unrank4 inverts rank4 for subsets of {0..n-1}.
func unrank4(r uint16, n int) [4]int {
	var p [4]int
	for i := 3; i >= 0; i-- {
		pos := n - 1
		for binomial[pos][i+1] > r {
			pos--
		}
		p[i] = pos
		r -= binomial[pos][i+1]
	}
	return p
}

// Slice ranks the set of positions currently holding the four E-slice
// edge pieces (FR, FL, BL, BR). It ignores which slice piece is where.
func Slice(c *cube.Cube) uint16 {
	var p [4]int
	k := 0
	for pos := 0; pos < 12; pos++ {
		if c.EP[pos] >= cube.FR {
			p[k] = pos
			k++
		}
	}
	return rank4(p)
}

// SetSlice places the slice edge pieces at the positions encoded by v
// and the remaining edge pieces, in order, at the remaining positions.
func SetSlice(c *cube.Cube, v uint16) {
	p := unrank4(v, 12)
	taken := [12]bool{}
	for i, pos := range p {
		c.EP[pos] = uint8(cube.FR + i)
		taken[pos] = true
	}
	next := uint8(0)
	for pos := 0; pos < 12; pos++ {
		if !taken[pos] {
			c.EP[pos] = next
			next++
		}
	}
}

// fbEdge reports whether an edge piece belongs to the UF/UB/DF/DB orbit.
func fbEdge(piece uint8) bool {
	return piece == cube.UF || piece == cube.UB || piece == cube.DF || piece == cube.DB
}

// Sep ranks the set of UD-layer positions (0..7) currently holding
// FB-type edge pieces. Only meaningful for states where the E slice is
// populated by slice pieces, i.e. at DR and beyond.
func Sep(c *cube.Cube) uint16 {
	var p [4]int
	k := 0
	for pos := 0; pos < 8; pos++ {
		if fbEdge(c.EP[pos]) {
			p[k] = pos
			k++
		}
	}
	return rank4(p)
}

// SolvedSep is the separation coordinate of a solved cube.
var SolvedSep = func() uint16 {
	c := cube.Solved()
	return Sep(&c)
}()

// SetSep places FB-type edge pieces at the UD-layer positions encoded by
// v, RL-type pieces at the rest, and slice pieces at home.
func SetSep(c *cube.Cube, v uint16) {
	p := unrank4(v, 8)
	taken := [8]bool{}
	fb := []uint8{cube.UF, cube.UB, cube.DF, cube.DB}
	rl := []uint8{cube.UR, cube.UL, cube.DR, cube.DL}
	for i, pos := range p {
		c.EP[pos] = fb[i]
		taken[pos] = true
	}
	k := 0
	for pos := 0; pos < 8; pos++ {
		if !taken[pos] {
			c.EP[pos] = rl[k]
			k++
		}
	}
	for pos := 8; pos < 12; pos++ {
		c.EP[pos] = uint8(pos)
	}
}

// CP ranks the corner permutation by its Lehmer code. Solved is 0.
func CP(c *cube.Cube) uint16 {
	return uint16(lehmerRank(c.CP[:]))
}

// SetCP writes the corner permutation with rank v.
func SetCP(c *cube.Cube, v uint16) {
	lehmerUnrank(int(v), c.CP[:])
}

func lehmerRank(p []uint8) int {
	n := len(p)
	r := 0
	for i := 0; i < n; i++ {
		smaller := 0
		for j := i + 1; j < n; j++ {
			if p[j] < p[i] {
				smaller++
			}
		}
		r = r*(n-i) + smaller
	}
	return r
}

func lehmerUnrank(r int, p []uint8) {
	n := len(p)
	var digits = make([]int, n)
	for i := n - 1; i >= 0; i-- {
		digits[i] = r % (n - i)
		r /= (n - i)
	}
	var avail []uint8
	for i := 0; i < n; i++ {
		avail = append(avail, uint8(i))
	}
	for i := 0; i < n; i++ {
		p[i] = avail[digits[i]]
		avail = append(avail[:digits[i]], avail[digits[i]+1:]...)
	}
}

// Edge orbits within the half-turn group: FB-type UD edges, RL-type UD
// edges, and the E slice. Each orbit is closed under half turns.
var (
	fbPositions    = [4]int{cube.UF, cube.UB, cube.DF, cube.DB}
	rlPositions    = [4]int{cube.UR, cube.UL, cube.DR, cube.DL}
	slicePositions = [4]int{cube.FR, cube.FL, cube.BL, cube.BR}
)

func orbitPerm(c *cube.Cube, positions [4]int) uint8 {
	// slot[i] = orbit index of the piece at the orbit's i-th position.
	var perm [4]uint8
	for i, pos := range positions {
		for j, home := range positions {
			if c.EP[pos] == uint8(home) {
				perm[i] = uint8(j)
			}
		}
	}
	return uint8(lehmerRank(perm[:]))
}

func setOrbitPerm(c *cube.Cube, positions [4]int, v uint8) {
	var perm [4]uint8
	lehmerUnrank(int(v), perm[:])
	for i, pos := range positions {
		c.EP[pos] = uint8(positions[perm[i]])
	}
}

// FBPerm ranks the permutation of the FB-type UD edges within their
// orbit. Only meaningful for half-turn-group states.
func FBPerm(c *cube.Cube) uint8 { return orbitPerm(c, fbPositions) }

// SetFBPerm writes the FB orbit permutation with rank v.
func SetFBPerm(c *cube.Cube, v uint8) { setOrbitPerm(c, fbPositions, v) }

// RLPerm ranks the permutation of the RL-type UD edges within their orbit.
func RLPerm(c *cube.Cube) uint8 { return orbitPerm(c, rlPositions) }

// SetRLPerm writes the RL orbit permutation with rank v.
func SetRLPerm(c *cube.Cube, v uint8) { setOrbitPerm(c, rlPositions, v) }

// SlicePerm ranks the permutation of the E-slice edges within the slice.
func SlicePerm(c *cube.Cube) uint8 { return orbitPerm(c, slicePositions) }

// SetSlicePerm writes the slice orbit permutation with rank v.
func SetSlicePerm(c *cube.Cube, v uint8) { setOrbitPerm(c, slicePositions, v) }
