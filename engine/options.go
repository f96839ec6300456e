package engine

import (
	"ludo/communication"
	"ludo/experiments/metrics"
	"ludo/feedback"
	"ludo/movement"
	"time"
)

type Option func(e *TurnEngine)

func WithFeedback(f communication.Feedback) Option {
	return func(e *TurnEngine) {
		if f != nil {
			e.feedback = f
		}
	}
}

func WithRenderer(r communication.Renderer) Option {
	return func(e *TurnEngine) {
		if r != nil {
			e.renderer = r
		}
	}
}

func WithControls(c communication.Controls) Option {
	return func(e *TurnEngine) {
		if c != nil {
			e.controls = c
		}
	}
}

// WithStepDelay sets the pause between two cells of a movement.
func WithStepDelay(delay time.Duration) Option {
	return func(e *TurnEngine) {
		e.sequencer = movement.NewSequencer(delay)
	}
}

func WithSequencer(s *movement.Sequencer) Option {
	return func(e *TurnEngine) {
		if s != nil {
			e.sequencer = s
		}
	}
}

// WithMoveCooldown sets the minimum interval between two "move" cues.
func WithMoveCooldown(interval time.Duration) Option {
	return func(e *TurnEngine) {
		if interval >= 0 {
			e.moveCooldown = interval
		}
	}
}

func WithCooldown(c *feedback.Cooldown) Option {
	return func(e *TurnEngine) {
		if c != nil {
			e.cooldown = c
		}
	}
}

// WithAutoAdvance starts the movement as soon as a roll is legal instead of
// waiting for RequestMove.
func WithAutoAdvance(enabled bool) Option {
	return func(e *TurnEngine) {
		e.autoAdvance = enabled
	}
}

func WithMetrics(c metrics.Collector) Option {
	return func(e *TurnEngine) {
		if c != nil {
			e.metrics = c
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(e *TurnEngine) {
		if now != nil {
			e.now = now
		}
	}
}

func WithID(id string) Option {
	return func(e *TurnEngine) {
		if id != "" {
			e.id = id
		}
	}
}

// WithCloseTimeout bounds how long Close waits for an in-flight roll or
// movement. Zero or less waits until it ends.
func WithCloseTimeout(d time.Duration) Option {
	return func(e *TurnEngine) {
		e.closeTimeout = d
	}
}
