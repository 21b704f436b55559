package experiments

import (
	"context"
	"fmt"

	"connect4/agent"
	"connect4/engine"
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/meta"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Matchup configures the two agents of a batch, X moving first.
type Matchup struct {
	X           agent.Kind
	O           agent.Kind
	Iterations  int
	Exploration float64
}

// DefaultMatchups pits the random and heuristic agents against MCTS with
// both starting orders.
var DefaultMatchups = []Matchup{
	{X: agent.Random, O: agent.MCTS, Iterations: meta.ITERATIONS, Exploration: meta.EXPLORATION},
	{X: agent.MCTS, O: agent.Random, Iterations: meta.ITERATIONS, Exploration: meta.EXPLORATION},
	{X: agent.Heuristic, O: agent.MCTS, Iterations: meta.ITERATIONS, Exploration: meta.EXPLORATION},
	{X: agent.MCTS, O: agent.Heuristic, Iterations: meta.ITERATIONS, Exploration: meta.EXPLORATION},
}

func (m Matchup) Label() string {
	return fmt.Sprintf("%s vs %s, %d iterations", m.X.Label(), m.O.Label(), m.Iterations)
}

// Batch holds the outcome of one matchup.
type Batch struct {
	Summary metrics.Summary
	Moves   []metrics.MoveRecord
}

// Simulate plays games headless games of the matchup. rng drives every
// agent; games are played one after another.
func Simulate(ctx context.Context, m Matchup, games int, rng *rand.Rand) (Batch, error) {
	if m.X == agent.Human || m.O == agent.Human {
		return Batch{}, fmt.Errorf("batch simulation needs automated agents, got %s", m.Label())
	}

	batch := Batch{Summary: metrics.Summary{Label: m.Label()}}
	for i := 0; i < games; i++ {
		if err := ctx.Err(); err != nil {
			return batch, fmt.Errorf("simulation interrupted after %d games: %w", i, err)
		}

		e, err := newGame(m, rng)
		if err != nil {
			return batch, err
		}
		_, gameMetric, moveMetrics := e.Run(ctx)
		if gameMetric.Aborted {
			return batch, fmt.Errorf("simulation interrupted after %d games: %w", i, ctx.Err())
		}

		batch.Summary.Add(gameMetric)
		for _, mm := range moveMetrics {
			batch.Moves = append(batch.Moves, metrics.MoveRecord{Game: i + 1, MoveMetric: mm})
		}
		log.Debug().Msgf("completed game %d of %d with winner: %s", i+1, games, gameMetric.Winner)
	}
	return batch, nil
}

// Run simulates every matchup in turn and returns their batches.
func Run(ctx context.Context, matchups []Matchup, games int, rng *rand.Rand) ([]Batch, error) {
	batches := make([]Batch, 0, len(matchups))

	for mi, matchup := range matchups {
		log.Info().Msgf("starting matchup %d of %d: %s...", mi+1, len(matchups), matchup.Label())

		batch, err := Simulate(ctx, matchup, games, rng)
		if err != nil {
			return batches, err
		}
		batches = append(batches, batch)

		s := batch.Summary
		log.Info().Msgf("completed matchup %d of %d: X won %d, O won %d, %d draws, %.4fs per game",
			mi+1, len(matchups), s.WinsX, s.WinsO, s.Draws, s.AverageDuration().Seconds())
	}
	return batches, nil
}

// Summaries extracts the tallies of batches.
func Summaries(batches []Batch) []metrics.Summary {
	summaries := make([]metrics.Summary, 0, len(batches))
	for _, b := range batches {
		summaries = append(summaries, b.Summary)
	}
	return summaries
}

func newGame(m Matchup, rng *rand.Rand) (*engine.Local, error) {
	players := [2]game.Player{
		{Marker: game.X, Kind: string(m.X)},
		{Marker: game.O, Kind: string(m.O)},
	}

	var agents [2]agent.Agent
	for i, p := range players {
		a, err := agent.New(agent.Kind(p.Kind), p.Marker,
			agent.WithRand(rng),
			agent.WithIterations(m.Iterations),
			agent.WithExploration(m.Exploration),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create agent for %s: %w", p.Marker, err)
		}
		agents[i] = a
	}
	return engine.LocalEngine(players, agents), nil
}
