package agent

import (
	"connect4/game"
	"connect4/searcher"
)

type mctsAgent struct {
	mcts  searcher.Searcher
	stats searcher.Stats
}

// NewMCTSAgent returns an agent that searches from scratch on every
// decision.
func NewMCTSAgent(mcts searcher.Searcher) Agent {
	return &mctsAgent{mcts: mcts}
}

func (a *mctsAgent) Decide(state *game.State) int {
	move, stats := a.mcts.Simulate(state)
	a.stats = stats
	return move
}

func (a *mctsAgent) LastStats() searcher.Stats {
	return a.stats
}
