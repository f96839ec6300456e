package player

import (
	"context"
	"errors"
	"fmt"
	"ludo/engine"
	"ludo/meta"

	"github.com/rs/zerolog/log"
)

var (
	ErrTurnLimit = errors.New("turn limit reached before the goal")
	ErrStuck     = errors.New("engine refused to roll")
)

// AutoPlayer drives an engine to the goal without user input.
type AutoPlayer struct {
	Engine   engine.Engine
	MaxTurns int
}

// NewAutoPlayer creates a player capped at maxTurns rolls; zero or less uses
// meta.MAX_TURNS.
func NewAutoPlayer(e engine.Engine, maxTurns int) *AutoPlayer {
	if maxTurns <= 0 {
		maxTurns = meta.MAX_TURNS
	}
	return &AutoPlayer{
		Engine:   e,
		MaxTurns: maxTurns,
	}
}

// Play rolls, moves whenever a move is allowed and repeats until the token
// finishes. It returns the number of turns taken.
func (p *AutoPlayer) Play(ctx context.Context) (int, error) {
	turns := 0
	for !p.Engine.State().Finished {
		if turns >= p.MaxTurns {
			return turns, fmt.Errorf("%w: %d turns", ErrTurnLimit, turns)
		}
		if err := ctx.Err(); err != nil {
			return turns, err
		}

		if !p.Engine.RequestRoll() {
			return turns, ErrStuck
		}
		turns++
		if err := p.Engine.Wait(ctx); err != nil {
			return turns, err
		}

		// With auto advance the move has already run.
		if p.Engine.State().MoveAllowed {
			p.Engine.RequestMove()
			if err := p.Engine.Wait(ctx); err != nil {
				return turns, err
			}
		}
	}

	log.Debug().Int("turns", turns).Msg("goal reached")
	return turns, nil
}
