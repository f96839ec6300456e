package experiments

import (
	"context"
	"errors"
	"fmt"
	"ludo/communication/client"
	"ludo/engine"
	"ludo/experiments/metrics"
	"ludo/game"
	"ludo/meta"
	"ludo/player"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const DefaultGames = 100

// Options configure a batch of automatic games.
type Options struct {
	Games       int
	Parallel    int    // Games in flight at once, zero or less means one
	Seed        uint64 // Game i rolls a local die seeded Seed+i
	Cells       int
	MaxTurns    int
	AutoAdvance bool
}

func (o Options) withDefaults() Options {
	if o.Games <= 0 {
		o.Games = DefaultGames
	}
	if o.Parallel <= 0 {
		o.Parallel = 1
	}
	if o.Cells <= 0 {
		o.Cells = meta.BOARD_CELLS
	}
	if o.MaxTurns <= 0 {
		o.MaxTurns = meta.MAX_TURNS
	}
	return o
}

// Run plays independent games with unpaced movement and returns one record
// per game, ordered by id. A game that hits the turn limit is recorded as
// unfinished; any other failure aborts the batch.
func Run(ctx context.Context, opts Options) ([]metrics.GameRecord, error) {
	opts = opts.withDefaults()
	board, err := game.NewNumberedBoard(opts.Cells)
	if err != nil {
		return nil, err
	}

	log.Info().Int("games", opts.Games).Int("parallel", opts.Parallel).Uint64("seed", opts.Seed).Msg("starting experiment...")

	records := make([]metrics.GameRecord, opts.Games)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Parallel)
	for i := 0; i < opts.Games; i++ {
		g.Go(func() error {
			metric, err := runGame(ctx, board, opts, opts.Seed+uint64(i))
			if err != nil {
				return fmt.Errorf("game %d: %w", i+1, err)
			}
			records[i] = metrics.GameRecord{ID: i + 1, GameMetric: metric}
			log.Debug().Int("game", i+1).Int("rolls", metric.Rolls).Bool("finished", metric.Finished).Msg("completed game")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Info().Int("games", opts.Games).Msg("completed experiment")
	return records, nil
}

// runGame plays a single game to the goal or the turn limit.
func runGame(ctx context.Context, board *game.Board, opts Options, seed uint64) (metrics.GameMetric, error) {
	collector := metrics.NewCollector()
	e, err := engine.New(board, client.NewLocalRandomSource(seed),
		engine.WithStepDelay(0),
		engine.WithMoveCooldown(0),
		engine.WithAutoAdvance(opts.AutoAdvance),
		engine.WithMetrics(collector),
	)
	if err != nil {
		return metrics.GameMetric{}, err
	}
	defer e.Close()

	start := time.Now()
	_, err = player.NewAutoPlayer(e, opts.MaxTurns).Play(ctx)
	if err != nil && !errors.Is(err, player.ErrTurnLimit) {
		return metrics.GameMetric{}, err
	}

	return metrics.GameMetric{
		Seed:       seed,
		StartTime:  start,
		EndTime:    time.Now(),
		TurnMetric: collector.Complete(),
	}, nil
}

// Store writes the records under root/name/<timestamp> and returns that
// directory.
func Store(root, name string, records []metrics.GameRecord) (string, error) {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteGameRecords(records); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Int("records", len(records)).Msg("stored game records")
	return writer.Dir(), nil
}
