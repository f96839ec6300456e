package communication

import (
	"context"
	"ludo/game"
)

// RandomSource produces one die value per call. Implementations return an
// error instead of a value outside [1,6] and must return promptly once ctx is
// done. Callers must not call Roll concurrently on the same turn.
type RandomSource interface {
	Roll(ctx context.Context) (int, error)
}

// Renderer draws the die and the token. Calls are made while the engine holds
// its lock, so implementations must not call back into the engine.
type Renderer interface {
	ShowRoll(face int) // face index, roll value minus one
	HideRoll()
	MoveTo(cell game.Cell)  // animated step onto cell
	PlaceAt(cell game.Cell) // immediate placement, used on reset
}

// Controls enables and disables the player's actions.
type Controls interface {
	SetInteractable(a game.Availability)
}

// Feedback plays named cues. It never reports failures back to the engine.
type Feedback interface {
	Signal(name string)
}

// Nop implements Renderer, Controls and Feedback by doing nothing.
type Nop struct{}

func (Nop) ShowRoll(int)                      {}
func (Nop) HideRoll()                         {}
func (Nop) MoveTo(game.Cell)                  {}
func (Nop) PlaceAt(game.Cell)                 {}
func (Nop) SetInteractable(game.Availability) {}
func (Nop) Signal(string)                     {}
