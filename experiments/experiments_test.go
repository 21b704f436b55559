package experiments

import (
	"context"
	"testing"

	"connect4/agent"
	"connect4/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestSimulate(t *testing.T) {
	t.Run("tallying every game of a batch", func(t *testing.T) {
		m := Matchup{X: agent.Random, O: agent.Heuristic, Iterations: 10, Exploration: 1.41}
		batch, err := Simulate(context.Background(), m, 5, rand.New(rand.NewSource(3)))
		require.NoError(t, err)

		s := batch.Summary
		require.Equal(t, "RandomAgent vs HeuristicAgent, 10 iterations", s.Label)
		require.Equal(t, 5, s.Games)
		require.Equal(t, 5, s.WinsX+s.WinsO+s.Draws)
		require.NotEmpty(t, batch.Moves)
		require.Equal(t, 1, batch.Moves[0].Game)
		require.Equal(t, 5, batch.Moves[len(batch.Moves)-1].Game)
	})

	t.Run("recording search statistics for MCTS moves", func(t *testing.T) {
		m := Matchup{X: agent.MCTS, O: agent.Random, Iterations: 10, Exploration: 1.41}
		batch, err := Simulate(context.Background(), m, 1, rand.New(rand.NewSource(5)))
		require.NoError(t, err)

		for _, record := range batch.Moves {
			if record.Player == game.X {
				require.Equal(t, int64(10), record.Iterations)
				require.Positive(t, record.TreeSize)
			} else {
				require.Zero(t, record.Iterations)
			}
		}
	})

	t.Run("rejecting human players", func(t *testing.T) {
		_, err := Simulate(context.Background(), Matchup{X: agent.Human, O: agent.Random, Iterations: 10}, 1, nil)
		require.Error(t, err)
	})

	t.Run("stopping when the context is cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		batch, err := Simulate(ctx, Matchup{X: agent.Random, O: agent.Random, Iterations: 10}, 3, rand.New(rand.NewSource(1)))
		require.ErrorIs(t, err, context.Canceled)
		require.Zero(t, batch.Summary.Games)
	})
}

func TestRun(t *testing.T) {
	t.Run("running each matchup in order", func(t *testing.T) {
		matchups := []Matchup{
			{X: agent.Random, O: agent.Random, Iterations: 5},
			{X: agent.Heuristic, O: agent.Random, Iterations: 5},
		}
		batches, err := Run(context.Background(), matchups, 2, rand.New(rand.NewSource(9)))
		require.NoError(t, err)
		require.Len(t, batches, 2)

		summaries := Summaries(batches)
		require.Equal(t, matchups[0].Label(), summaries[0].Label)
		require.Equal(t, matchups[1].Label(), summaries[1].Label)
		require.Equal(t, 2, summaries[1].Games)
	})
}

func TestIterationSweep(t *testing.T) {
	t.Run("alternating the starting player per budget", func(t *testing.T) {
		matchups := IterationSweep(agent.Heuristic)
		require.Len(t, matchups, 2*len(sweepIterations))
		for i, iterations := range sweepIterations {
			require.Equal(t, agent.MCTS, matchups[2*i].X)
			require.Equal(t, agent.MCTS, matchups[2*i+1].O)
			require.Equal(t, iterations, matchups[2*i].Iterations)
			require.Equal(t, iterations, matchups[2*i+1].Iterations)
		}
	})
}
