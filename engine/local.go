package engine

import (
	"context"
	"fmt"
	"ludo/communication"
	"ludo/experiments/metrics"
	"ludo/feedback"
	"ludo/game"
	"ludo/meta"
	"ludo/movement"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// TurnEngine runs the roll, resolve and move cycle for a single token.
//
// The random fetch and the paced movement run in their own goroutines. All
// state lives behind mu, and collaborators are called with mu held, so they
// must not call back into the engine. Every Reset bumps gen; a continuation
// that wakes up with an older generation drops its result.
type TurnEngine struct {
	id           string
	board        *game.Board
	source       communication.RandomSource
	sequencer    *movement.Sequencer
	cooldown     *feedback.Cooldown
	feedback     communication.Feedback
	renderer     communication.Renderer
	controls     communication.Controls
	metrics      metrics.Collector
	moveCooldown time.Duration
	closeTimeout time.Duration
	autoAdvance  bool
	now          func() time.Time
	log          zerolog.Logger

	mu       sync.Mutex
	state    game.TurnState
	gen      uint64
	base     context.Context
	stop     context.CancelFunc
	cancel   context.CancelFunc // in-flight roll or movement
	closed   bool
	inflight int
	idle     chan struct{}
}

var _ Engine = (*TurnEngine)(nil)

// New builds an engine with the token at home and a roll allowed.
func New(board *game.Board, source communication.RandomSource, options ...Option) (*TurnEngine, error) {
	if board == nil {
		return nil, ErrNoBoard
	}
	if source == nil {
		return nil, ErrNoSource
	}

	base, stop := context.WithCancel(context.Background())
	e := &TurnEngine{ // Default values
		id:           uuid.NewString(),
		board:        board,
		source:       source,
		sequencer:    movement.NewSequencer(meta.STEP_DELAY),
		cooldown:     feedback.NewCooldown(),
		feedback:     communication.Nop{},
		renderer:     communication.Nop{},
		controls:     communication.Nop{},
		metrics:      metrics.NewDummyCollector(),
		moveCooldown: meta.MOVE_COOLDOWN,
		closeTimeout: meta.CLOSE_TIMEOUT,
		now:          time.Now,
		state:        game.NewTurnState(board),
		base:         base,
		stop:         stop,
	}
	for _, option := range options {
		option(e)
	}
	e.log = log.With().Str("game", e.id).Logger()

	e.metrics.Start()
	e.renderer.PlaceAt(board.Cell(board.Home()))
	e.pushControls()
	e.log.Info().Int("cells", board.Len()).Bool("auto_advance", e.autoAdvance).Msg("engine ready")
	return e, nil
}

func (e *TurnEngine) ID() string {
	return e.id
}

func (e *TurnEngine) Board() *game.Board {
	return e.board
}

// State returns a snapshot of the turn state.
func (e *TurnEngine) State() game.TurnState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// RequestRoll asks the random source for a die value. It returns immediately;
// the roll resolves once the source answers.
func (e *TurnEngine) RequestRoll() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed || e.state.Phase != game.Idle || !e.state.RollAllowed {
		e.log.Debug().Stringer("phase", e.state.Phase).Msg("roll ignored")
		return false
	}

	e.state.RollAllowed = false
	e.state.Phase = game.Rolling
	e.metrics.AddRoll()
	e.signal(game.SignalRoll, 0)
	e.pushControls()

	ctx, gen := e.begin()
	go func() {
		defer e.untrack()
		value, err := e.source.Roll(ctx)
		if err != nil {
			value = 0
		}
		e.resolve(gen, value, err)
	}()
	return true
}

func (e *TurnEngine) resolve(gen uint64, value int, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if gen != e.gen {
		e.log.Debug().Int("value", value).Msg("stale roll dropped")
		return
	}
	e.finish()

	outcome := game.Judge(e.board, e.state.CurrentCell, value)
	e.state.LastRoll = outcome.Value
	e.state.Phase = game.Resolved

	switch outcome.Verdict {
	case game.Wasted:
		e.metrics.AddWasted()
		e.log.Warn().Err(err).Int("value", value).Msg("roll wasted")
		e.toIdle()
	case game.BlockedAtHome, game.Overshoot:
		e.renderer.ShowRoll(outcome.Value - 1)
		e.metrics.AddBlocked()
		e.signal(game.SignalBlocked, 0)
		e.log.Info().Int("roll", outcome.Value).Int("cell", e.state.CurrentCell).Stringer("verdict", outcome.Verdict).Msg("roll blocked")
		e.toIdle()
	case game.Legal:
		e.renderer.ShowRoll(outcome.Value - 1)
		e.state.MoveAllowed = true
		e.state.RollAllowed = false
		e.log.Info().Int("roll", outcome.Value).Int("cell", e.state.CurrentCell).Msg("roll legal")
		if e.autoAdvance {
			e.startMove()
			return
		}
	}
	e.pushControls()
}

// RequestMove walks the token by the last legal roll.
func (e *TurnEngine) RequestMove() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed || e.state.Phase != game.Resolved || !e.state.MoveAllowed || e.state.LastRoll <= 0 {
		e.log.Debug().Stringer("phase", e.state.Phase).Msg("move ignored")
		return false
	}
	e.startMove()
	return true
}

func (e *TurnEngine) startMove() {
	from := e.state.CurrentCell
	to := from + game.Steps(e.board, from, e.state.LastRoll)

	e.state.MoveAllowed = false
	e.state.Phase = game.Moving
	e.pushControls()
	e.log.Debug().Int("from", from).Int("to", to).Msg("move started")

	ctx, gen := e.begin()
	arrivals := e.sequencer.Sequence(ctx, from, to)
	go func() {
		defer e.untrack()
		for a := range arrivals {
			if !e.arrive(gen, a) {
				return
			}
		}
		e.complete(gen)
	}()
}

func (e *TurnEngine) arrive(gen uint64, a movement.Arrival) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if gen != e.gen {
		return false
	}
	e.state.CurrentCell = a.Index
	e.metrics.AddStep()
	e.signal(game.SignalMove, e.moveCooldown)
	e.renderer.MoveTo(e.board.Cell(a.Index))
	return true
}

func (e *TurnEngine) complete(gen uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if gen != e.gen {
		return
	}
	e.finish()
	e.metrics.AddMove()

	if e.state.CurrentCell == e.board.Goal() {
		e.state.Phase = game.Finished
		e.state.Finished = true
		e.state.RollAllowed = false
		e.state.MoveAllowed = false
		e.metrics.SetFinished(true)
		e.signal(game.SignalComplete, 0)
		e.log.Info().Int("cell", e.state.CurrentCell).Msg("goal reached")
	} else {
		e.toIdle()
		e.renderer.HideRoll()
	}
	e.pushControls()
}

// Reset puts the token back home from any phase. An in-flight roll is
// discarded and an in-flight movement stops before its next cell.
func (e *TurnEngine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.gen++
	e.finish()
	e.state = game.NewTurnState(e.board)
	e.metrics.AddReset()
	e.metrics.SetFinished(false)
	e.renderer.PlaceAt(e.board.Cell(e.board.Home()))
	e.renderer.HideRoll()
	e.pushControls()
	e.log.Info().Msg("reset chip position")
}

// Wait blocks until no roll or movement is in flight, or ctx is done. It does
// not account for requests made while it is waiting.
func (e *TurnEngine) Wait(ctx context.Context) error {
	e.mu.Lock()
	if e.inflight == 0 {
		e.mu.Unlock()
		return nil
	}
	idle := e.idle
	e.mu.Unlock()

	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close abandons any in-flight work and rejects further requests. It waits
// for the cancelled work to return, at most the close timeout; a random
// source that ignores its context can only be waited for that long.
func (e *TurnEngine) Close() error {
	e.mu.Lock()
	e.closed = true
	e.gen++
	e.finish()
	e.stop()
	e.mu.Unlock()

	ctx := context.Background()
	if e.closeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.closeTimeout)
		defer cancel()
	}
	if err := e.Wait(ctx); err != nil {
		e.log.Warn().Err(err).Msg("gave up waiting for in-flight work")
		return fmt.Errorf("close: %w", err)
	}
	return nil
}

// begin opens a cancellable scope for one roll or movement. mu must be held.
func (e *TurnEngine) begin() (context.Context, uint64) {
	ctx, cancel := context.WithCancel(e.base)
	e.cancel = cancel
	if e.inflight == 0 {
		e.idle = make(chan struct{})
	}
	e.inflight++
	return ctx, e.gen
}

// finish cancels the current scope, if any. mu must be held.
func (e *TurnEngine) finish() {
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
}

func (e *TurnEngine) untrack() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.inflight--
	if e.inflight == 0 {
		close(e.idle)
	}
}

func (e *TurnEngine) toIdle() {
	e.state.RollAllowed = true
	e.state.MoveAllowed = false
	e.state.Phase = game.Idle
}

func (e *TurnEngine) signal(name string, interval time.Duration) {
	if e.cooldown.Allow(name, interval, e.now()) {
		e.feedback.Signal(name)
	}
}

func (e *TurnEngine) pushControls() {
	e.controls.SetInteractable(game.ComputeAvailability(e.state))
}
