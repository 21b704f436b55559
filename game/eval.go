package game

// TurnBonus is added to every evaluation.
const TurnBonus = 16

// Window scores by number of own pieces, the remaining cells being empty
var windowScores = [WinLength + 1]int{0, 1, 10, 50, 512}

// ScoreWindow scores one window for own against opp. Windows holding both
// markers can never be completed and score 0.
func ScoreWindow(w Window, own, opp Marker) int {
	mine, theirs, empty := w.Count(own), w.Count(opp), w.Count(Empty)
	switch {
	case mine > 0 && mine+empty == WinLength:
		return windowScores[mine]
	case theirs > 0 && theirs+empty == WinLength:
		return -windowScores[theirs]
	}
	return 0
}

// ScoreWindows sums ScoreWindow over every window of the board.
func ScoreWindows(b *Board, own, opp Marker) int {
	score := 0
	b.EachWindow(func(w Window) bool {
		score += ScoreWindow(w, own, opp)
		return true
	})
	return score
}

// Evaluate scores the position from marker's point of view.
func Evaluate(s *State, marker Marker) int {
	return ScoreWindows(&s.board, marker, s.Opponent(marker)) + TurnBonus
}
