package experiments

import (
	"connect4/agent"
	"connect4/meta"
)

var sweepIterations = []int{25, 50, 100, 200, 400}

// IterationSweep pairs MCTS at growing iteration budgets against opponent,
// alternating who moves first.
func IterationSweep(opponent agent.Kind) []Matchup {
	matchups := []Matchup{}
	for _, iterations := range sweepIterations {
		matchups = append(matchups,
			Matchup{X: agent.MCTS, O: opponent, Iterations: iterations, Exploration: meta.EXPLORATION},
			Matchup{X: opponent, O: agent.MCTS, Iterations: iterations, Exploration: meta.EXPLORATION},
		)
	}
	return matchups
}
