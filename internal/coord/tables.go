package coord

import "github.com/cubetools/fmctrainer/internal/cube"

// Table16 is a move-transition table over a coordinate with up to 2^16
// values: Table16[v][i] is the coordinate after applying the i-th move of
// the move list the table was built for.
type Table16 [][]uint16

// Apply advances a coordinate value by one move.
func (t Table16) Apply(v uint16, moveIdx int) uint16 { return t[v][moveIdx] }

// Table8 is a move-transition table over a small coordinate (< 256 values).
type Table8 [][]uint8

// Apply advances a coordinate value by one move.
func (t Table8) Apply(v uint8, moveIdx int) uint8 { return t[v][moveIdx] }

// Build16 generates a transition table by enumerating every coordinate
// value, reconstructing a representative cube, applying each move to it
// and re-encoding. set must be the exact inverse of get over the
// coordinate's range.
func Build16(size int, moves []cube.Move, set func(*cube.Cube, uint16), get func(*cube.Cube) uint16) Table16 {
	t := make(Table16, size)
	for v := 0; v < size; v++ {
		c := cube.Solved()
		set(&c, uint16(v))
		row := make([]uint16, len(moves))
		for i, m := range moves {
			nc := c.Apply(m)
			row[i] = get(&nc)
		}
		t[v] = row
	}
	return t
}

// Build8 is Build16 for small coordinates.
func Build8(size int, moves []cube.Move, set func(*cube.Cube, uint8), get func(*cube.Cube) uint8) Table8 {
	t := make(Table8, size)
	for v := 0; v < size; v++ {
		c := cube.Solved()
		set(&c, uint8(v))
		row := make([]uint8, len(moves))
		for i, m := range moves {
			nc := c.Apply(m)
			row[i] = get(&nc)
		}
		t[v] = row
	}
	return t
}
