package agent

import (
	"connect4/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandom returns an agent playing uniformly random legal columns.
func NewRandom(rng *rand.Rand) Agent {
	return randomAgent{rng: rng}
}

func (a randomAgent) Decide(state *game.State) int {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return NoMove
	}
	return moves[intn(a.rng, len(moves))]
}
