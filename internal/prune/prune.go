// Package prune builds and queries the distance tables the stage
// searches use as admissible lower bounds. A table holds, for every
// coordinate within its depth cap, the exact number of stage moves
// needed to reach a goal coordinate.
package prune

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

var ErrCorruptTable = errors.New("prune: corrupt table data")

const unset = 0xFF

// sparseEntryBytes is the rough per-entry cost of the sparse map,
// key, value and bucket overhead included.
const sparseEntryBytes = 16

// Config bounds a table build.
type Config struct {
	// Workers caps the BFS expansion goroutines. Zero means GOMAXPROCS.
	Workers int
	// MaxDepth stops the BFS after this many layers, leaving deeper
	// coordinates unset. Zero means no cap.
	MaxDepth int
	// MemoryBudget is the byte budget above which the table falls back
	// to a sparse representation. When MaxDepth is zero the BFS also
	// stops at the first layer boundary where the recorded entries
	// exceed the budget, leaving deeper coordinates unset. Zero means
	// no budget.
	MemoryBudget int
}

// Table maps packed stage coordinates to goal distances. Dense tables
// hold one byte per coordinate; sparse tables only hold the visited
// frontier and answer depth+1 for everything else, which keeps the
// bound admissible.
type Table struct {
	size     uint32
	depth    uint8 // deepest layer committed
	complete bool  // every reachable coordinate is recorded
	dense    []uint8
	sparse   map[uint32]uint8
}

// Size returns the coordinate range the table covers.
func (t *Table) Size() uint32 { return t.size }

// Depth returns the deepest distance the table records.
func (t *Table) Depth() int { return int(t.depth) }

// Complete reports whether the BFS exhausted the space.
func (t *Table) Complete() bool { return t.complete }

// Dist returns an admissible lower bound on the moves needed to reach a
// goal from idx. For coordinates beyond the table's depth cap it returns
// depth+1, which is exact or an underestimate, never an overestimate.
func (t *Table) Dist(idx uint32) int {
	var d uint8 = unset
	if t.dense != nil {
		d = t.dense[idx]
	} else if v, ok := t.sparse[idx]; ok {
		d = v
	}
	if d == unset {
		return int(t.depth) + 1
	}
	return int(d)
}

func (t *Table) get(idx uint32) uint8 {
	if t.dense != nil {
		return t.dense[idx]
	}
	if v, ok := t.sparse[idx]; ok {
		return v
	}
	return unset
}

func (t *Table) set(idx uint32, d uint8) {
	if t.dense != nil {
		t.dense[idx] = d
		return
	}
	t.sparse[idx] = d
}

// Build runs a backward breadth-first search from the goal coordinates
// over the stage's inverse-closed move set. Layers are expanded in
// parallel; each layer is committed single-threaded so duplicate
// discoveries collapse deterministically.
func Build(ctx context.Context, size uint32, numMoves int, apply func(idx uint32, moveIdx int) uint32, goals []uint32, cfg Config) (*Table, error) {
	t := &Table{size: size}
	if cfg.MemoryBudget > 0 && int(size) > cfg.MemoryBudget {
		t.sparse = make(map[uint32]uint8)
	} else {
		t.dense = make([]uint8, size)
		for i := range t.dense {
			t.dense[i] = unset
		}
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	frontier := make([]uint32, 0, len(goals))
	for _, g := range goals {
		if t.get(g) == unset {
			t.set(g, 0)
			frontier = append(frontier, g)
		}
	}

	for depth := 1; len(frontier) > 0; depth++ {
		if cfg.MaxDepth > 0 && depth > cfg.MaxDepth {
			t.depth = uint8(depth - 1)
			t.complete = false
			return t, nil
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// Expand in parallel into per-worker slices, then commit.
		chunks := splitFrontier(frontier, workers)
		out := make([][]uint32, len(chunks))
		g, gctx := errgroup.WithContext(ctx)
		for w, chunk := range chunks {
			w, chunk := w, chunk
			g.Go(func() error {
				local := make([]uint32, 0, len(chunk)*numMoves/2)
				for i, v := range chunk {
					if i&4095 == 0 {
						if err := gctx.Err(); err != nil {
							return err
						}
					}
					for mi := 0; mi < numMoves; mi++ {
						n := apply(v, mi)
						if t.get(n) == unset {
							local = append(local, n)
						}
					}
				}
				out[w] = local
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}

		next := frontier[:0]
		for _, local := range out {
			for _, n := range local {
				if t.get(n) == unset {
					t.set(n, uint8(depth))
					next = append(next, n)
				}
			}
		}
		t.depth = uint8(depth - 1)
		if len(next) > 0 {
			t.depth = uint8(depth)
		}
		frontier = next

		// Without a depth cap a sparse table over the whole reachable
		// space would cost more than the dense one it replaced; stop
		// once the budget is spent. Layers stay whole, so Dist remains
		// admissible.
		if t.sparse != nil && cfg.MaxDepth == 0 && len(t.sparse)*sparseEntryBytes >= cfg.MemoryBudget && len(frontier) > 0 {
			t.complete = false
			return t, nil
		}
	}
	t.complete = true
	return t, nil
}

func splitFrontier(frontier []uint32, workers int) [][]uint32 {
	if workers > len(frontier) {
		workers = len(frontier)
	}
	if workers <= 1 {
		return [][]uint32{frontier}
	}
	chunks := make([][]uint32, 0, workers)
	per := (len(frontier) + workers - 1) / workers
	for start := 0; start < len(frontier); start += per {
		end := start + per
		if end > len(frontier) {
			end = len(frontier)
		}
		chunks = append(chunks, frontier[start:end])
	}
	return chunks
}

// Binary layout: magic, version, flags, depth, size, then the dense
// bytes or the sparse entry list.
const (
	tableMagic   = "FMCT"
	tableVersion = 1
)

// MarshalBinary serializes the table for on-disk caching.
func (t *Table) MarshalBinary() ([]byte, error) {
	var sparseLen int
	if t.dense == nil {
		sparseLen = len(t.sparse)
	}
	buf := make([]byte, 0, 16+len(t.dense)+sparseLen*5)
	buf = append(buf, tableMagic...)
	buf = append(buf, tableVersion)
	flags := uint8(0)
	if t.complete {
		flags |= 1
	}
	if t.dense == nil {
		flags |= 2
	}
	buf = append(buf, flags, t.depth)
	buf = appendUint32(buf, t.size)
	if t.dense != nil {
		buf = append(buf, t.dense...)
		return buf, nil
	}
	buf = appendUint32(buf, uint32(len(t.sparse)))
	for idx, d := range t.sparse {
		buf = appendUint32(buf, idx)
		buf = append(buf, d)
	}
	return buf, nil
}

// UnmarshalBinary restores a table serialized by MarshalBinary.
func (t *Table) UnmarshalBinary(data []byte) error {
	if len(data) < 11 || string(data[:4]) != tableMagic {
		return ErrCorruptTable
	}
	if data[4] != tableVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrCorruptTable, data[4])
	}
	flags := data[5]
	t.depth = data[6]
	t.complete = flags&1 != 0
	t.size = readUint32(data[7:])
	body := data[11:]
	if flags&2 == 0 {
		if uint32(len(body)) != t.size {
			return ErrCorruptTable
		}
		t.dense = append([]uint8(nil), body...)
		t.sparse = nil
		return nil
	}
	if len(body) < 4 {
		return ErrCorruptTable
	}
	n := readUint32(body)
	body = body[4:]
	if uint32(len(body)) != n*5 {
		return ErrCorruptTable
	}
	t.sparse = make(map[uint32]uint8, n)
	t.dense = nil
	for i := uint32(0); i < n; i++ {
		t.sparse[readUint32(body[i*5:])] = body[i*5+4]
	}
	return nil
}

func appendUint32(b []byte, v uint32) []byte {
	return append(b, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

func readUint32(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}
