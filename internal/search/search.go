// Package search runs iterative-deepening A* over a stage's packed
// coordinate space, bounded below by a pruning table.
package search

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/cubetools/fmctrainer/internal/cube"
	"github.com/cubetools/fmctrainer/internal/prune"
)

// checkEvery is how many expanded nodes pass between context polls.
const checkEvery = 4096

// Params describes one search.
type Params struct {
	Start    uint32
	Moves    []cube.Move
	Apply    func(idx uint32, moveIdx int) uint32
	IsGoal   func(idx uint32) bool
	Table    *prune.Table
	MaxDepth int
	// Exclude rejects a candidate solution at goal depth. Nil accepts all.
	Exclude func(moves []cube.Move) bool
	// Workers caps the goroutines splitting the top-level branches.
	Workers int
}

// Run searches for the shortest acceptable move sequence from Start to a
// goal. found is false when every sequence up to MaxDepth is excluded or
// no goal is reachable within it. The result is deterministic for fixed
// Params regardless of Workers.
func Run(ctx context.Context, p Params) (moves []cube.Move, found bool, err error) {
	if p.IsGoal(p.Start) {
		if p.Exclude == nil || !p.Exclude(nil) {
			return []cube.Move{}, true, nil
		}
	}

	lower := p.Table.Dist(p.Start)
	if lower == 0 {
		lower = 1 // start is goal but the empty sequence was excluded
	}
	for bound := lower; bound <= p.MaxDepth; bound++ {
		if err := ctx.Err(); err != nil {
			return nil, false, err
		}
		sol, err := searchBound(ctx, p, bound)
		if err != nil {
			return nil, false, err
		}
		if sol != nil {
			return sol, true, nil
		}
	}
	return nil, false, nil
}

// searchBound explores every path of exactly bound moves, splitting the
// first move across workers. Results are collected per first-move slot
// and scanned in enumeration order, so the winner does not depend on
// which goroutine finishes first.
func searchBound(ctx context.Context, p Params, bound int) ([]cube.Move, error) {
	results := make([][]cube.Move, len(p.Moves))

	g, gctx := errgroup.WithContext(ctx)
	if p.Workers > 0 {
		g.SetLimit(p.Workers)
	}
	for mi := range p.Moves {
		mi := mi
		g.Go(func() error {
			next := p.Apply(p.Start, mi)
			if p.Table.Dist(next) > bound-1 {
				return nil
			}
			w := &walker{p: p, ctx: gctx, path: make([]cube.Move, bound)}
			w.path[0] = p.Moves[mi]
			sol, err := w.descend(next, 1, bound-1)
			if err != nil {
				return err
			}
			results[mi] = sol
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, sol := range results {
		if sol != nil {
			return sol, nil
		}
	}
	return nil, nil
}

type walker struct {
	p     Params
	ctx   context.Context
	path  []cube.Move
	nodes int
}

// descend extends the path at depth with exactly remaining moves left.
func (w *walker) descend(idx uint32, depth, remaining int) ([]cube.Move, error) {
	if remaining == 0 {
		if !w.p.IsGoal(idx) {
			return nil, nil
		}
		sol := append([]cube.Move(nil), w.path[:depth]...)
		if w.p.Exclude != nil && w.p.Exclude(sol) {
			return nil, nil
		}
		return sol, nil
	}

	w.nodes++
	if w.nodes&(checkEvery-1) == 0 {
		if err := w.ctx.Err(); err != nil {
			return nil, err
		}
	}

	prev := w.path[depth-1].Face()
	for mi, m := range w.p.Moves {
		face := m.Face()
		if face == prev {
			continue
		}
		// Opposite faces commute; only the ascending order is explored.
		if face^1 == prev && face < prev {
			continue
		}
		next := w.p.Apply(idx, mi)
		if w.p.Table.Dist(next) > remaining-1 {
			continue
		}
		w.path[depth] = m
		sol, err := w.descend(next, depth+1, remaining-1)
		if sol != nil || err != nil {
			return sol, err
		}
	}
	return nil, nil
}
