package searcher

import "connect4/game"

// Searcher picks the next column to play from a position.
type Searcher interface {
	Simulate(state *game.State) (column int, stats Stats)
}

// ChildStats summarises one root child after a search.
type ChildStats struct {
	Move   int
	Visits int
	Wins   int
}

// Stats describes a finished search.
type Stats struct {
	SearchMetrics
	TreeSize int
	Children []ChildStats
}

// Visits returns the visit count of the root child reached by move, or 0.
func (s Stats) Visits(move int) int {
	for _, child := range s.Children {
		if child.Move == move {
			return child.Visits
		}
	}
	return 0
}

// credits reports whether a playout result counts as a win for mover.
func credits(result, mover game.Marker) bool {
	return result != game.Draw && result == mover
}
