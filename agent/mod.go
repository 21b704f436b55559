package agent

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"connect4/game"
	"connect4/searcher"

	"golang.org/x/exp/rand"
)

// NoMove is returned when an agent has no legal column to offer.
const NoMove = game.NoMove

// Agent picks a column for the player to act in state.
type Agent interface {
	Decide(state *game.State) int
}

// StatsReporter is implemented by agents that search, exposing the
// statistics of their most recent decision.
type StatsReporter interface {
	LastStats() searcher.Stats
}

type Kind string

const (
	Human     Kind = "human"
	Random    Kind = "random"
	Heuristic Kind = "heuristic"
	MCTS      Kind = "mcts"
)

var kinds = []Kind{Human, Random, Heuristic, MCTS}

func Kinds() []Kind {
	return append([]Kind(nil), kinds...)
}

func ParseKind(s string) (Kind, error) {
	kind := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(kinds, kind) {
		return "", fmt.Errorf("unknown agent kind %q", s)
	}
	return kind, nil
}

// Label is the display name used in result logs.
func (k Kind) Label() string {
	switch k {
	case Human:
		return "HumanPlayer"
	case Random:
		return "RandomAgent"
	case Heuristic:
		return "HeuristicAgent"
	case MCTS:
		return "MCTSAgent"
	}
	return string(k)
}

type Option func(o *options)

type options struct {
	rng         *rand.Rand
	iterations  int
	exploration float64
	in          io.Reader
	out         io.Writer
}

// WithRand sets the random source for move selection and tie breaks.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

func WithIterations(iterations int) Option {
	return func(o *options) {
		o.iterations = iterations
	}
}

func WithExploration(c float64) Option {
	return func(o *options) {
		o.exploration = c
	}
}

// WithIO sets where a human agent reads columns from and prompts to.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(o *options) {
		o.in = in
		o.out = out
	}
}

// New builds an agent of the given kind playing marker.
func New(kind Kind, marker game.Marker, opts ...Option) (Agent, error) {
	o := options{
		iterations:  searcher.DefaultIterations,
		exploration: searcher.DefaultExploration,
		in:          os.Stdin,
		out:         os.Stdout,
	}
	for _, opt := range opts {
		opt(&o)
	}

	switch kind {
	case Human:
		return NewHuman(marker, o.in, o.out), nil
	case Random:
		return NewRandom(o.rng), nil
	case Heuristic:
		return NewHeuristic(marker, o.rng), nil
	case MCTS:
		return NewMCTSAgent(searcher.NewMCTS(
			searcher.WithIterations(o.iterations),
			searcher.WithExploration(o.exploration),
			searcher.WithRand(o.rng),
			searcher.WithMetrics(),
		)), nil
	}
	return nil, fmt.Errorf("unknown agent kind %q", kind)
}

// intn draws from rng, or the shared source when rng is nil.
func intn(rng *rand.Rand, n int) int {
	if rng == nil {
		return rand.Intn(n)
	}
	return rng.Intn(n)
}
