package engine

import (
	"context"
	"time"

	"connect4/agent"
	"connect4/experiments/metrics"
	"connect4/game"

	"github.com/rs/zerolog/log"
)

type Option func(e *Local)

// WithObserver calls observe with the live state before the first move
// and after every move played.
func WithObserver(observe func(state *game.State)) Option {
	return func(e *Local) {
		e.observe = observe
	}
}

type Local struct {
	State   *game.State
	Agents  [2]agent.Agent
	observe func(state *game.State)
}

// LocalEngine sets up a game between two agents, players[0] moving first.
func LocalEngine(players [2]game.Player, agents [2]agent.Agent, options ...Option) *Local {
	if players[0].Marker == players[1].Marker {
		panic("players need distinct markers")
	}
	for _, a := range agents {
		if a == nil {
			panic("need an agent for each player")
		}
	}

	e := &Local{
		State:   game.NewState(players[0], players[1]),
		Agents:  agents,
		observe: func(*game.State) {},
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the game loop until a win or a draw, or until ctx is done.
func (e *Local) Run(ctx context.Context) (game.Marker, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.State.Current().Marker,
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("player %s is starting", e.State.Current().Marker)
	e.observe(e.State)

	step := 1
	for !e.State.IsTerminal() {
		if ctx.Err() != nil {
			log.Warn().Err(ctx.Err()).Msg("game aborted")
			gameMetric.Aborted = true
			break
		}

		current := e.State.Current()
		moveMetric := e.playTurn(current)
		moveMetric.Step = step
		moveMetrics = append(moveMetrics, moveMetric)
		gameMetric.InvalidMoves += moveMetric.Attempts - 1

		switch {
		case e.State.CheckWin(current.Marker):
			e.State.SetTerminal()
		case e.State.IsDraw():
			e.State.SetTerminal()
		default:
			e.State.NextTurn()
		}

		e.observe(e.State)
		step++
	}

	result := game.Draw
	if !gameMetric.Aborted {
		result = e.State.Result()
	}

	gameMetric.Winner = result
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	log.Debug().Msgf("game over after %d moves, result: %s", gameMetric.TotalMoves, result)
	return result, gameMetric, moveMetrics
}

// playTurn asks the current agent for a column until one is legal, falling
// back to the first legal column after MaxAttempts.
func (e *Local) playTurn(current game.Player) metrics.MoveMetric {
	decider := e.Agents[e.State.Turn()]
	moveMetric := metrics.MoveMetric{Player: current.Marker}
	start := time.Now()

	for moveMetric.Attempts < MaxAttempts {
		moveMetric.Attempts++
		// Agents only ever see a snapshot of the live game
		column := decider.Decide(e.State.Copy())
		if e.State.ApplyMove(column, current.Marker) {
			moveMetric.Column = column
			moveMetric.Duration = time.Since(start)
			recordSearch(decider, &moveMetric)
			return moveMetric
		}
		log.Warn().Msgf("player %s chose invalid column %d, asking again", current.Marker, column)
	}

	column := e.State.LegalMoves()[0]
	log.Warn().Msgf("player %s returned no legal column, forcing column %d", current.Marker, column)
	e.State.ApplyMove(column, current.Marker)
	moveMetric.Column = column
	moveMetric.Fallback = true
	moveMetric.Duration = time.Since(start)
	return moveMetric
}

func recordSearch(decider agent.Agent, moveMetric *metrics.MoveMetric) {
	reporter, ok := decider.(agent.StatsReporter)
	if !ok {
		return
	}
	stats := reporter.LastStats()
	moveMetric.Iterations = stats.Iterations
	moveMetric.Playouts = stats.Playouts
	moveMetric.TreeSize = stats.TreeSize
}
