package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"connect4/agent"
	"connect4/config"
	"connect4/engine"
	"connect4/experiments"
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/ui"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

func main() {
	envFile := flag.String("env", ".env", "Environment file with C4_* settings")
	mode := flag.String("mode", "simulate", "One of simulate, sweep, play or watch")
	playerX := flag.String("x", "", "Agent kind for X (human, random, heuristic, mcts)")
	playerO := flag.String("o", "", "Agent kind for O (human, random, heuristic, mcts)")
	games := flag.Int("games", 0, "Number of games per matchup")
	iterations := flag.Int("iterations", 0, "Number of MCTS iterations per move")
	results := flag.String("results", "", "CSV file simulation results are appended to")
	chart := flag.String("chart", "", "HTML file for a chart of the simulation results")
	moves := flag.String("moves", "", "CSV file for per-move records")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	} else {
		log.Warn().Msgf("unknown log level %q, keeping info", cfg.LogLevel)
	}
	override(&cfg, *games, *iterations, *results, *chart, *moves)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	seed := uint64(cfg.Seed)
	if cfg.Seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))
	log.Debug().Msgf("seeding agents with %d", seed)

	switch *mode {
	case "simulate":
		matchups := experiments.DefaultMatchups
		if *playerX != "" || *playerO != "" {
			matchups = []experiments.Matchup{{
				X:           mustKind(*playerX, agent.MCTS),
				O:           mustKind(*playerO, agent.Random),
				Iterations:  cfg.Iterations,
				Exploration: cfg.Exploration,
			}}
		} else {
			matchups = withBudget(matchups, cfg)
		}
		err = runExperiments(ctx, matchups, cfg, rng)
	case "sweep":
		err = runExperiments(ctx, experiments.IterationSweep(mustKind(*playerO, agent.Heuristic)), cfg, rng)
	case "play":
		err = playGame(ctx, mustKind(*playerX, agent.Human), mustKind(*playerO, agent.MCTS), cfg, rng, false)
	case "watch":
		err = playGame(ctx, mustKind(*playerX, agent.MCTS), mustKind(*playerO, agent.Heuristic), cfg, rng, true)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("run failed")
	}
}

func override(cfg *config.Config, games, iterations int, results, chart, moves string) {
	if games > 0 {
		cfg.Games = games
	}
	if iterations > 0 {
		cfg.Iterations = iterations
	}
	if results != "" {
		cfg.ResultsFile = results
	}
	if chart != "" {
		cfg.ChartFile = chart
	}
	if moves != "" {
		cfg.MovesFile = moves
	}
}

func mustKind(s string, fallback agent.Kind) agent.Kind {
	if s == "" {
		return fallback
	}
	kind, err := agent.ParseKind(s)
	if err != nil {
		log.Fatal().Err(err).Msgf("expected one of %v", agent.Kinds())
	}
	return kind
}

func withBudget(matchups []experiments.Matchup, cfg config.Config) []experiments.Matchup {
	budgeted := make([]experiments.Matchup, len(matchups))
	for i, m := range matchups {
		m.Iterations = cfg.Iterations
		m.Exploration = cfg.Exploration
		budgeted[i] = m
	}
	return budgeted
}

func runExperiments(ctx context.Context, matchups []experiments.Matchup, cfg config.Config, rng *rand.Rand) error {
	log.Info().Msgf("running %d matchups of %d games...", len(matchups), cfg.Games)
	batches, err := experiments.Run(ctx, matchups, cfg.Games, rng)
	if len(batches) == 0 {
		return err
	}

	summaries := experiments.Summaries(batches)
	if werr := metrics.AppendResults(cfg.ResultsFile, summaries...); werr != nil {
		return werr
	}
	log.Info().Msgf("results appended to %s", cfg.ResultsFile)

	if cfg.ChartFile != "" {
		if werr := metrics.WriteChart(cfg.ChartFile, summaries); werr != nil {
			return werr
		}
		log.Info().Msgf("chart written to %s", cfg.ChartFile)
	}
	if cfg.MovesFile != "" {
		records := []metrics.MoveRecord{}
		for _, b := range batches {
			records = append(records, b.Moves...)
		}
		if werr := metrics.WriteMoveRecords(cfg.MovesFile, records); werr != nil {
			return werr
		}
		log.Info().Msgf("move records written to %s", cfg.MovesFile)
	}
	return err
}

func playGame(ctx context.Context, kindX, kindO agent.Kind, cfg config.Config, rng *rand.Rand, clear bool) error {
	players := [2]game.Player{
		{Marker: game.X, Kind: string(kindX)},
		{Marker: game.O, Kind: string(kindO)},
	}

	kinds := [2]agent.Kind{kindX, kindO}
	var agents [2]agent.Agent
	for i, p := range players {
		a, err := agent.New(kinds[i], p.Marker,
			agent.WithRand(rng),
			agent.WithIterations(cfg.Iterations),
			agent.WithExploration(cfg.Exploration),
		)
		if err != nil {
			return err
		}
		agents[i] = a
	}

	rendererOptions := []ui.Option{}
	if clear {
		rendererOptions = append(rendererOptions, ui.WithClear())
	}
	renderer := ui.NewRenderer(os.Stdout, rendererOptions...)

	e := engine.LocalEngine(players, agents, engine.WithObserver(renderer.Render))
	result, gameMetric, _ := e.Run(ctx)
	if gameMetric.Aborted {
		return ctx.Err()
	}
	renderer.Outcome(result)
	log.Info().Msgf("game finished after %d moves in %s", gameMetric.TotalMoves, gameMetric.Duration)
	return nil
}
