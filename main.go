package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"ludo/communication"
	"ludo/communication/client"
	"ludo/communication/server"
	"ludo/config"
	"ludo/engine"
	"ludo/experiments"
	"ludo/feedback"
	"ludo/gamemaster"
	"ludo/player"
	"ludo/telemetry"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := run(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("exiting")
		os.Exit(1)
	}
}

func run() error {
	auto := flag.Bool("auto", false, "Play a single game without input")
	games := flag.Int("games", 0, "Simulate this many games with a local die and print a summary")
	parallel := flag.Int("parallel", 4, "Games simulated at once")
	serve := flag.String("serve", "", "Serve plain-text die values from a local die on this address instead of playing")
	flag.Parse()

	// A missing .env is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := telemetry.SetupLogging(cfg.LogLevel, cfg.LogPretty); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := telemetry.SetupTracing(ctx, cfg.OtelEndpoint)
	if err != nil {
		return fmt.Errorf("set up tracing: %w", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Warn().Err(err).Msg("failed to flush traces")
		}
	}()

	switch {
	case *serve != "":
		return server.NewDieServer(client.NewLocalRandomSource(seed(cfg))).Start(ctx, *serve)
	case *games > 0:
		return simulate(ctx, cfg, *games, *parallel)
	case *auto:
		return play(ctx, cfg, true)
	default:
		return play(ctx, cfg, false)
	}
}

func play(ctx context.Context, cfg config.Config, auto bool) error {
	board, err := cfg.Board()
	if err != nil {
		return err
	}

	display := gamemaster.NewDisplay(os.Stdout, board)
	e, err := engine.New(board, randomSource(cfg),
		engine.WithRenderer(display),
		engine.WithControls(display),
		engine.WithFeedback(feedback.NewPlayer(feedback.DefaultClips, display.Play)),
		engine.WithStepDelay(cfg.StepDelay),
		engine.WithMoveCooldown(cfg.MoveCooldown),
		engine.WithAutoAdvance(cfg.AutoAdvance),
	)
	if err != nil {
		return err
	}
	defer e.Close()

	if auto {
		turns, err := player.NewAutoPlayer(e, cfg.MaxTurns).Play(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("reached %s in %d turns\n", board.Cell(board.Goal()).ID, turns)
		return nil
	}

	// Scanning stdin cannot be interrupted, so an interrupt returns without it.
	gm := gamemaster.NewGameMaster(e, display, os.Stdin, os.Stdout)
	done := make(chan error, 1)
	go func() { done <- gm.Run(ctx) }()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func simulate(ctx context.Context, cfg config.Config, games, parallel int) error {
	board, err := cfg.Board()
	if err != nil {
		return err
	}

	records, err := experiments.Run(ctx, experiments.Options{
		Games:       games,
		Parallel:    parallel,
		Seed:        seed(cfg),
		Cells:       board.Len(),
		MaxTurns:    cfg.MaxTurns,
		AutoAdvance: cfg.AutoAdvance,
	})
	if err != nil {
		return err
	}

	s := experiments.Summarize(records)
	fmt.Printf("games=%d finished=%d mean_rolls=%.1f max_rolls=%d blocked=%d throughput=%.0f/s\n",
		s.Games, s.Finished, s.MeanRolls, s.MaxRolls, s.Blocked, s.Throughput)

	if cfg.MetricsDir != "" {
		if _, err := experiments.Store(cfg.MetricsDir, "simulation", records); err != nil {
			return err
		}
	}
	return nil
}

func randomSource(cfg config.Config) communication.RandomSource {
	if cfg.RandomSource == config.SourceLocal {
		return client.NewLocalRandomSource(seed(cfg))
	}
	return client.NewHTTPRandomSource(cfg.RandomURL, cfg.UserAgent, cfg.RandomTimeout)
}

func seed(cfg config.Config) uint64 {
	if cfg.Seed != 0 {
		return cfg.Seed
	}
	return uint64(time.Now().UnixNano())
}
