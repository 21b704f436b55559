package searcher

import (
	"time"

	"connect4/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(m *MCTS)

// MCTS runs a fresh UCT search for every decision. Searches are sequential
// and share nothing but the random source.
type MCTS struct {
	iterations  int
	exploration float64
	seed        uint64
	seeded      bool
	rng         *rand.Rand
	metrics     MetricsCollector
}

func WithIterations(iterations int) Option {
	return func(m *MCTS) {
		if iterations > 0 {
			m.iterations = iterations
		}
	}
}

// WithExploration sets the UCT exploration constant. Zero disables
// exploration.
func WithExploration(c float64) Option {
	return func(m *MCTS) {
		if c >= 0 {
			m.exploration = c
		}
	}
}

// WithSeed makes every search replay the same random sequence.
func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.seed = seed
		m.seeded = true
	}
}

// WithRand draws playout moves from rng.
func WithRand(rng *rand.Rand) Option {
	return func(m *MCTS) {
		if rng != nil {
			m.rng = rng
		}
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = NewMetricsCollector()
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		iterations:  DefaultIterations,
		exploration: DefaultExploration,
		metrics:     NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.iterations <= 0 {
		panic("Must specify a positive number of search iterations")
	}
	if m.rng == nil && !m.seeded {
		m.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return m
}

func (m *MCTS) Iterations() int {
	return m.iterations
}

func (m *MCTS) Exploration() float64 {
	return m.exploration
}

// Simulate searches from state and returns the most promising column, or
// game.NoMove when the root has no children. state is never modified.
func (m *MCTS) Simulate(state *game.State) (int, Stats) {
	rng := m.rng
	if m.seeded {
		rng = rand.New(rand.NewSource(m.seed))
	}

	t := newTree(state)
	m.metrics.Start()
	for i := 0; i < m.iterations; i++ {
		m.iterate(t, rng)
		m.metrics.AddIteration()
	}

	stats := Stats{
		SearchMetrics: m.metrics.Complete(),
		TreeSize:      len(t.nodes),
		Children:      t.rootStats(),
	}

	// Pure exploitation for the final choice
	best := t.bestChild(0, 0)
	if best == none {
		log.Warn().Msg("search root has no children")
		return game.NoMove, stats
	}

	move := t.nodes[best].move
	log.Debug().
		Int("iterations", m.iterations).
		Int("tree_size", stats.TreeSize).
		Int("move", move).
		Msg("search complete")
	return move, stats
}

func (m *MCTS) iterate(t *tree, rng *rand.Rand) {
	id := t.selectLeaf(m.exploration)
	if !t.isTerminal(id) {
		if child, ok := t.expand(id); ok {
			id = child
		}
	}
	result := rollout(t.nodes[id].state, rng)
	m.metrics.AddPlayout()
	t.backup(id, result)
}

// rollout plays uniformly random moves on a copy of state until the game
// ends and returns the result.
func rollout(state *game.State, rng *rand.Rand) game.Marker {
	s := state.Copy()
	for !s.IsTerminal() {
		moves := s.LegalMoves()
		if len(moves) == 0 {
			break
		}
		s.Advance(moves[rng.Intn(len(moves))])
	}
	return s.Result()
}
