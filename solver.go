package fmctrainer

import (
	"context"
	"errors"
	"math/rand"
	"sync"

	"github.com/google/uuid"

	"github.com/cubetools/fmctrainer/internal/canon"
	"github.com/cubetools/fmctrainer/internal/cube"
	"github.com/cubetools/fmctrainer/internal/prune"
	"github.com/cubetools/fmctrainer/internal/search"
	"github.com/cubetools/fmctrainer/internal/stages"
	"github.com/cubetools/fmctrainer/internal/storage"
)

// tableVersion invalidates cached pruning tables when their layout or
// the stage definitions change.
const tableVersion = 1

// Solver finds stage solutions. It lazily builds one pruning table per
// stage on first use and is safe for concurrent use.
type Solver struct {
	cfg config

	tables [numStages]struct {
		mu    sync.Mutex
		table *prune.Table
	}

	mu       sync.Mutex
	requests map[string]context.CancelFunc
}

// NewSolver creates a solver. Pruning tables are built (or loaded from
// the cache) on first use per stage.
func NewSolver(opts ...Option) *Solver {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Solver{
		cfg:      *cfg,
		requests: make(map[string]context.CancelFunc),
	}
}

// table returns the stage's pruning table, building it on first use.
// Failed builds (a cancelled context, usually) are not cached, so the
// next caller retries.
func (s *Solver) table(ctx context.Context, stage Stage) (*prune.Table, error) {
	slot := &s.tables[stage]
	slot.mu.Lock()
	defer slot.mu.Unlock()

	if slot.table != nil {
		return slot.table, nil
	}
	t, err := s.buildTable(ctx, stage)
	if err != nil {
		return nil, err
	}
	slot.table = t
	return t, nil
}

func (s *Solver) buildTable(ctx context.Context, stage Stage) (*prune.Table, error) {
	def := stages.Get(stage.kind())

	if s.cfg.cachePath != "" {
		if t, err := s.loadCached(stage); err == nil && t != nil {
			return t, nil
		}
	}

	t, err := prune.Build(ctx, def.Size, len(def.Moves), def.Apply, def.Goals, prune.Config{
		Workers:      s.cfg.workers,
		MaxDepth:     s.cfg.tableDepthCap,
		MemoryBudget: s.cfg.memoryBudget,
	})
	if err != nil {
		return nil, err
	}

	if s.cfg.cachePath != "" {
		// Cache failures only cost a rebuild next run.
		if data, err := t.MarshalBinary(); err == nil {
			if db, err := storage.Open(s.cfg.cachePath); err == nil {
				_ = db.SaveTable(stage.String(), tableVersion, data)
				db.Close()
			}
		}
	}
	return t, nil
}

func (s *Solver) loadCached(stage Stage) (*prune.Table, error) {
	db, err := storage.Open(s.cfg.cachePath)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	data, err := db.LoadTable(stage.String(), tableVersion)
	if err != nil || data == nil {
		return nil, err
	}
	t := &prune.Table{}
	if err := t.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return t, nil
}

// SolveStage finds the shortest solution for a stage whose canonical
// form is not in exclude. Ties between same-length solutions break by
// move enumeration order (U before U' before U2 before D ...), so the
// result is deterministic. Returns ErrNotEligible if the state does not
// satisfy the stage prerequisites, ErrExhausted if every sequence up to
// the depth limit is excluded or none reaches the goal.
func (s *Solver) SolveStage(ctx context.Context, state CubeState, stage Stage, exclude ...Solution) (Solution, error) {
	if err := state.Validate(); err != nil {
		return Solution{}, err
	}
	def := stages.Get(stage.kind())
	start, ok := def.Encode(&state.c)
	if !ok {
		return Solution{}, ErrNotEligible
	}
	table, err := s.table(ctx, stage)
	if err != nil {
		return Solution{}, err
	}

	excluded := make(map[string]struct{}, len(exclude))
	for _, sol := range exclude {
		excluded[canon.String(canon.Canonicalize(internalMoves(sol.Moves)))] = struct{}{}
	}

	moves, found, err := search.Run(ctx, search.Params{
		Start:    start,
		Moves:    def.Moves,
		Apply:    def.Apply,
		IsGoal:   def.IsGoal,
		Table:    table,
		MaxDepth: s.cfg.maxDepth,
		Workers:  s.cfg.workers,
		Exclude: func(ms []cube.Move) bool {
			_, bad := excluded[canon.String(canon.Canonicalize(ms))]
			return bad
		},
	})
	if err != nil {
		return Solution{}, err
	}
	if !found {
		return Solution{}, ErrExhausted
	}
	return Solution{Moves: externalMoves(moves)}, nil
}

// SetupFor solves the stages leading up to stage and returns the setup
// moves that make state eligible for it. The solution is empty when the
// state already qualifies.
func (s *Solver) SetupFor(ctx context.Context, state CubeState, stage Stage) (Solution, error) {
	var setup []Move
	for _, prior := range stage.prerequisites() {
		sol, err := s.SolveStage(ctx, state, prior)
		if err != nil {
			return Solution{}, err
		}
		state = state.ApplyMoves(sol.Moves)
		setup = append(setup, sol.Moves...)
	}
	return Solution{Moves: setup}, nil
}

// SolveN finds up to n distinct solutions in length order, shortest
// first. Solutions sharing a canonical form count as one. Returns
// ErrExhausted only when no solution exists at all.
func (s *Solver) SolveN(ctx context.Context, state CubeState, stage Stage, n int) ([]Solution, error) {
	var found []Solution
	for len(found) < n {
		sol, err := s.SolveStage(ctx, state, stage, found...)
		if errors.Is(err, ErrExhausted) {
			break
		}
		if err != nil {
			return nil, err
		}
		found = append(found, sol)
	}
	if len(found) == 0 {
		return nil, ErrExhausted
	}
	return found, nil
}

// Result is the outcome of a Start request.
type Result struct {
	Solution Solution
	Err      error
}

// Start launches a solve in the background and returns a request id and
// a channel that delivers the single result. Cancel the request with
// Cancel; a canceled request delivers context.Canceled.
func (s *Solver) Start(ctx context.Context, state CubeState, stage Stage, exclude ...Solution) (string, <-chan Result) {
	ctx, cancel := context.WithCancel(ctx)
	id := uuid.NewString()

	s.mu.Lock()
	s.requests[id] = cancel
	s.mu.Unlock()

	ch := make(chan Result, 1)
	go func() {
		defer cancel()
		sol, err := s.SolveStage(ctx, state, stage, exclude...)

		s.mu.Lock()
		delete(s.requests, id)
		s.mu.Unlock()

		ch <- Result{Solution: sol, Err: err}
	}()
	return id, ch
}

// Cancel aborts a running request. Returns ErrUnknownRequest if the id
// is unknown or the request already finished.
func (s *Solver) Cancel(id string) error {
	s.mu.Lock()
	cancel, ok := s.requests[id]
	delete(s.requests, id)
	s.mu.Unlock()

	if !ok {
		return ErrUnknownRequest
	}
	cancel()
	return nil
}

// BadPieces returns the names of the corner and edge positions
// obstructing a stage, the pieces a solver counts when reading a case.
func (s *Solver) BadPieces(state CubeState, stage Stage) (corners, edges []string) {
	k := stage.kind()
	for _, pos := range stages.BadCorners(k, &state.c) {
		corners = append(corners, cube.CornerNames[pos])
	}
	for _, pos := range stages.BadEdges(k, &state.c) {
		edges = append(edges, cube.EdgeNames[pos])
	}
	return corners, edges
}

// CaseName names the stage case by its bad piece counts, e.g. "4e" for
// a four-flip EO case or "4c4e" for a DR case. Solved cases are "0".
func (s *Solver) CaseName(state CubeState, stage Stage) string {
	return stages.CaseName(stage.kind(), &state.c)
}

// Scramble generates a random-state scramble: a uniformly random legal
// cube, solved stage by stage, with the combined solution inverted.
func (s *Solver) Scramble(ctx context.Context) (string, error) {
	state := CubeState{c: randomCube()}

	var solution []Move
	for _, stage := range []Stage{StageEO, StageDR, StageHTR, StageFinish} {
		sol, err := s.SolveStage(ctx, state, stage)
		if err != nil {
			return "", err
		}
		state = state.ApplyMoves(sol.Moves)
		solution = append(solution, sol.Moves...)
	}

	scramble := make([]Move, len(solution))
	for i, m := range solution {
		scramble[len(solution)-1-i] = m.Inverse()
	}
	return FormatMoves(Canonicalize(scramble)), nil
}

// randomCube draws a uniformly random legal cube state.
func randomCube() cube.Cube {
	c := cube.Solved()

	rand.Shuffle(8, func(i, j int) { c.CP[i], c.CP[j] = c.CP[j], c.CP[i] })
	rand.Shuffle(12, func(i, j int) { c.EP[i], c.EP[j] = c.EP[j], c.EP[i] })
	// Corner and edge permutation parity must match; a single swap flips
	// edge parity without biasing the distribution.
	if permParity(c.CP[:]) != permParity(c.EP[:]) {
		c.EP[0], c.EP[1] = c.EP[1], c.EP[0]
	}

	twist := 0
	for i := 0; i < 7; i++ {
		c.CO[i] = uint8(rand.Intn(3))
		twist += int(c.CO[i])
	}
	c.CO[7] = uint8((3 - twist%3) % 3)

	flip := 0
	for i := 0; i < 11; i++ {
		c.EO[i] = uint8(rand.Intn(2))
		flip += int(c.EO[i])
	}
	c.EO[11] = uint8(flip % 2)

	return c
}

func permParity(p []uint8) int {
	parity := 0
	for i := range p {
		for j := i + 1; j < len(p); j++ {
			if p[j] < p[i] {
				parity ^= 1
			}
		}
	}
	return parity
}
