package metrics

import (
	"time"

	"connect4/game"
)

type MoveMetric struct {
	Step       int
	Player     game.Marker
	Column     int
	Attempts   int // Decisions requested until a legal column was played
	Fallback   bool
	Duration   time.Duration
	Iterations int64 // Search statistics, zero for agents that do not search
	Playouts   int64
	TreeSize   int
}

type GameMetric struct {
	StartingPlayer game.Marker
	Winner         game.Marker // game.Draw when nobody won
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	InvalidMoves   int
	Aborted        bool
}

type MoveRecord struct {
	Game int
	MoveMetric
}

// Summary tallies a batch of games for one configuration.
type Summary struct {
	Label         string
	Games         int
	WinsX         int
	WinsO         int
	Draws         int
	TotalDuration time.Duration
}

func (s *Summary) Add(g GameMetric) {
	s.Games++
	s.TotalDuration += g.Duration
	switch g.Winner {
	case game.X:
		s.WinsX++
	case game.O:
		s.WinsO++
	default:
		s.Draws++
	}
}

func (s Summary) AverageDuration() time.Duration {
	if s.Games == 0 {
		return 0
	}
	return s.TotalDuration / time.Duration(s.Games)
}
