package engine

import (
	"context"
	"errors"
	"ludo/game"
)

var (
	ErrNoBoard  = errors.New("engine needs a board")
	ErrNoSource = errors.New("engine needs a random source")
)

// Engine is the player-facing surface of a turn engine. Requests made in the
// wrong phase are ignored and report false.
type Engine interface {
	RequestRoll() bool
	RequestMove() bool
	Reset()
	State() game.TurnState
	// Wait blocks until no roll or movement is in flight
	Wait(ctx context.Context) error
}
