package engine

import (
	"context"

	"connect4/experiments/metrics"
	"connect4/game"
)

// MaxAttempts bounds how often an agent is asked again after an illegal
// column before the engine plays the first legal column for it.
const MaxAttempts = 3

type Engine interface {
	// Run plays a game to the end and returns the winning marker or game.Draw
	Run(ctx context.Context) (result game.Marker, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
