package searcher

import (
	"context"
	"fmt"
	"sync"
	"time"

	"quoridor/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(mcts *MCTS)

// MCTS searches for a move by UCT over randomized playouts. An MCTS runs one
// search at a time.
type MCTS struct {
	goroutines          int
	simulations         int
	duration            time.Duration
	seed                uint64
	seeded              bool
	cutoff              int
	evaluate            game.Evaluate
	pawnMoveProbability float64
	distances           *game.DistanceCache
	metrics             Collector
}

// Result is the outcome of one search.
type Result struct {
	Move   game.Move
	Policy map[game.Move]float64 // Share of root simulations per move
	Metric SearchMetric
}

// WithSimulations sets the rollout budget. Zero means no rollouts unless a
// duration is also given, in which case the deadline alone bounds the search.
func WithSimulations(simulations int) Option {
	return func(m *MCTS) {
		m.simulations = max(simulations, 0)
	}
}

// WithDuration bounds the search by wall-clock time. Unless WithSimulations
// follows, the simulation count is then unbounded.
func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
			m.simulations = 0
		}
	}
}

// WithSeed fixes the random source. Searches with one goroutine are then
// reproducible.
func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.seed = seed
		m.seeded = true
	}
}

func WithCutoff(depth int) Option {
	return func(m *MCTS) {
		if depth > 0 {
			m.cutoff = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *MCTS) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithPawnMoveProbability(p float64) Option {
	return func(m *MCTS) {
		if p >= 0 && p <= 1 {
			m.pawnMoveProbability = p
		}
	}
}

// WithDistanceCache shares a distance cache between searches.
func WithDistanceCache(cache *game.DistanceCache) Option {
	return func(m *MCTS) {
		m.distances = cache
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = NewCollector()
	}
}

func NewMCTS(goroutines int, options ...Option) *MCTS {
	m := &MCTS{ // Default values
		goroutines:          max(goroutines, 1),
		simulations:         DefaultSimulations,
		evaluate:            game.EvaluateDistance,
		pawnMoveProbability: DefaultPawnMoveProbability,
		metrics:             NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.distances == nil {
		m.distances = game.NewDistanceCache(game.DefaultDistanceCacheSize)
	}
	if !m.seeded {
		m.seed = uint64(time.Now().UnixNano())
	}
	return m
}

// FindNextMove searches from state and returns the root move with the best
// win rate.
func (m *MCTS) FindNextMove(ctx context.Context, state *game.State) (game.Move, error) {
	result, err := m.Search(ctx, state)
	return result.Move, err
}

// Search grows a fresh tree below state until the budget, deadline or context
// runs out. Statistics gathered before cancellation are always usable.
func (m *MCTS) Search(ctx context.Context, state *game.State) (Result, error) {
	if state.IsOver() {
		return Result{}, fmt.Errorf("search: %w", game.ErrGameOver)
	}

	s := &search{
		tree:  newTree(),
		state: state.Clone(),
		rollout: &rollout{
			pawnMoveProbability: m.pawnMoveProbability,
			cutoff:              m.cutoff,
			evaluate:            m.evaluate,
			distances:           m.distances,
			metrics:             m.metrics,
		},
		metrics:    m.metrics,
		budget:     m.simulations,
		concurrent: m.goroutines > 1,
	}
	if m.duration > 0 {
		s.deadline = time.Now().Add(m.duration)
		if s.budget == 0 {
			s.budget = unlimited
		}
	}

	// Run simulations to collect statistics
	m.metrics.Start(m.goroutines, m.simulations)
	m.iterate(ctx, s)
	metric := m.metrics.Complete(s.tree.size(), s.tree.maxDepth())

	log.Debug().
		Int("simulations", metric.Simulations).
		Int("tree_size", metric.TreeSize).
		Int("max_depth", metric.MaxDepth).
		Dur("duration", metric.Duration).
		Msg("search complete")

	best, ok := s.tree.bestChild(root)
	if !ok {
		return Result{Metric: metric}, ErrNoMoves
	}
	return Result{
		Move:   s.tree.node(best).move,
		Policy: s.tree.policy(),
		Metric: metric,
	}, nil
}

func (m *MCTS) iterate(ctx context.Context, s *search) {
	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		rng := rand.New(rand.NewSource(m.seed + uint64(i)))
		wg.Add(1)
		go func() {
			defer wg.Done()

			for s.claim(ctx) {
				s.simulate(rng)
			}
		}()
	}
	wg.Wait()
}

const unlimited = -1

// search is the shared state of one tree search. The tree is guarded by mu;
// rollouts run outside the lock on their own state clones.
type search struct {
	mu         sync.Mutex
	tree       *tree
	state      *game.State
	rollout    *rollout
	metrics    Collector
	budget     int
	deadline   time.Time
	concurrent bool
}

// claim reserves one simulation from the budget.
func (s *search) claim(ctx context.Context) bool {
	if ctx.Err() != nil {
		return false
	}
	if !s.deadline.IsZero() && !time.Now().Before(s.deadline) {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.budget == 0 {
		return false
	}
	if s.budget > 0 {
		s.budget--
	}
	return true
}

// simulate runs one select, expand, rollout and backup episode.
func (s *search) simulate(rng *rand.Rand) {
	s.mu.Lock()
	target := s.selectThenExpand()
	if s.concurrent {
		s.tree.applyLoss(target)
	}
	moves := s.tree.moves(target)
	s.mu.Unlock()

	state := s.replay(moves)
	// The node belongs to the pawn that just moved into it.
	owner := state.InactivePawn().Index
	terminal := state.IsOver()
	winner := s.rollout.play(state, rng)

	s.mu.Lock()
	if terminal {
		s.tree.node(target).terminal = true
		s.metrics.AddTerminalRollout()
	}
	s.tree.backup(target, owner, winner, s.concurrent)
	s.mu.Unlock()
	s.metrics.AddSimulation()
}

// selectThenExpand picks the node to roll out from. Terminal nodes and
// never-sampled leaves are rolled out as they are; a leaf sampled before is
// expanded and its first child is rolled out. Must hold mu.
func (s *search) selectThenExpand() int32 {
	leaf := s.tree.descend()
	n := s.tree.node(leaf)
	if n.terminal || n.isNew() {
		return leaf
	}

	moves := childMoves(s.replay(s.tree.moves(leaf)))
	if len(moves) == 0 {
		return leaf
	}
	s.tree.expand(leaf, moves)
	s.metrics.AddExpansion()
	return s.tree.node(leaf).children[0]
}

// replay rebuilds the state at a node from the root state and the node's moves.
func (s *search) replay(moves []game.Move) *game.State {
	state := s.state.Clone()
	for _, move := range moves {
		if err := state.Apply(move); err != nil {
			panic(fmt.Sprintf("replaying tree move %v: %v", move, err))
		}
	}
	return state
}
