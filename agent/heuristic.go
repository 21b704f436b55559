package agent

import (
	"math"

	"connect4/game"

	"golang.org/x/exp/rand"
)

type heuristicAgent struct {
	marker game.Marker
	rng    *rand.Rand
}

// NewHeuristic returns an agent that scores every column by its own
// evaluation minus the opponent's best immediate reply.
func NewHeuristic(marker game.Marker, rng *rand.Rand) Agent {
	return heuristicAgent{marker: marker, rng: rng}
}

func (a heuristicAgent) Decide(state *game.State) int {
	opponent := state.Opponent(a.marker)

	best := []int{}
	bestScore := math.MinInt
	for _, col := range state.LegalMoves() {
		next := state.Copy()
		next.ApplyMove(col, a.marker)
		score := game.Evaluate(next, a.marker) - bestReply(next, opponent)

		if score > bestScore {
			bestScore = score
			best = []int{col}
		} else if score == bestScore {
			best = append(best, col)
		}
	}

	if len(best) == 0 {
		return NoMove
	}
	return best[intn(a.rng, len(best))]
}

// bestReply is the highest evaluation marker can reach with one move, or 0
// when the board is full.
func bestReply(state *game.State, marker game.Marker) int {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return 0
	}

	best := math.MinInt
	for _, col := range moves {
		next := state.Copy()
		next.ApplyMove(col, marker)
		if score := game.Evaluate(next, marker); score > best {
			best = score
		}
	}
	return best
}
