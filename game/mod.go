package game

// Feedback signal names emitted by the turn engine.
const (
	SignalRoll     = "roll"
	SignalBlocked  = "blocked"
	SignalMove     = "move"
	SignalComplete = "complete"
)

const (
	DieMin = 1
	DieMax = 6

	// ExitRoll is the only roll that lets the token leave home.
	ExitRoll = 6
)

// Signals lists every feedback signal the engine may emit.
func Signals() []string {
	return []string{SignalRoll, SignalBlocked, SignalMove, SignalComplete}
}
