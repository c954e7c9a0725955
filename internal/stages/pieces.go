package stages

import (
	"strconv"

	"github.com/cubetools/fmctrainer/internal/cube"
)

// BadEdges returns the edge positions obstructing a stage, the pieces a
// solver would count when naming the case.
func BadEdges(k Kind, c *cube.Cube) []int {
	var bad []int
	switch k {
	case EO:
		for pos := 0; pos < 12; pos++ {
			if c.EO[pos] != 0 {
				bad = append(bad, pos)
			}
		}
	case DR:
		// E-slice pieces stranded in the UD layers.
		for pos := 0; pos < 8; pos++ {
			if c.EP[pos] >= cube.FR {
				bad = append(bad, pos)
			}
		}
	case HTR:
		for pos := 0; pos < 12; pos++ {
			if edgeOrbit(c.EP[pos]) != edgeOrbit(uint8(pos)) {
				bad = append(bad, pos)
			}
		}
	case FR:
		// Slice moves only ever swap a UD edge with its vertical
		// partner, so each must sit at home or directly above/below it.
		// The E-slice edges stay free.
		for pos := 0; pos < 8; pos++ {
			if c.EP[pos] != uint8(pos) && c.EP[pos] != uint8(pos)^4 {
				bad = append(bad, pos)
			}
		}
	case Slice:
		for pos := cube.FR; pos <= cube.BR; pos++ {
			if c.EP[pos] != uint8(pos) {
				bad = append(bad, pos)
			}
		}
	case Finish:
		for pos := 0; pos < 12; pos++ {
			if c.EP[pos] != uint8(pos) || c.EO[pos] != 0 {
				bad = append(bad, pos)
			}
		}
	}
	return bad
}

// tetrad splits the eight corner positions into the two tetrads preserved
// by half turns: {URF, ULB, DLF, DRB} and {UFL, UBR, DFR, DBL}.
func tetrad(i uint8) uint8 { return (i + i/4) % 2 }

// vertical maps a corner position to the one directly above or below it.
// Slice moves always move such columns together.
func vertical(p uint8) uint8 { return (p + 4) % 8 }

// BadCorners returns the corner positions obstructing a stage.
func BadCorners(k Kind, c *cube.Cube) []int {
	var bad []int
	switch k {
	case EO, Slice:
		// Corners never block these stages.
	case DR:
		for pos := 0; pos < 8; pos++ {
			if c.CO[pos] != 0 {
				bad = append(bad, pos)
			}
		}
	case HTR:
		for pos := 0; pos < 8; pos++ {
			if tetrad(c.CP[pos]) != tetrad(uint8(pos)) {
				bad = append(bad, pos)
			}
		}
	case FR:
		// Vertical corner pairs must move together.
		for pos := 0; pos < 8; pos++ {
			if c.CP[vertical(uint8(pos))] != vertical(c.CP[pos]) {
				bad = append(bad, pos)
			}
		}
	case Finish:
		for pos := 0; pos < 8; pos++ {
			if c.CP[pos] != uint8(pos) || c.CO[pos] != 0 {
				bad = append(bad, pos)
			}
		}
	}
	return bad
}

// CaseName names the stage case by its bad piece counts, the shorthand
// FMC solvers use ("4e" for a 4-flip EO, "4c4e" for a DR case, ...).
// Solved cases are named "0".
func CaseName(k Kind, c *cube.Cube) string {
	corners := len(BadCorners(k, c))
	edges := len(BadEdges(k, c))
	if corners == 0 && edges == 0 {
		return "0"
	}
	name := ""
	if corners > 0 {
		name += strconv.Itoa(corners) + "c"
	}
	if edges > 0 {
		name += strconv.Itoa(edges) + "e"
	}
	return name
}
