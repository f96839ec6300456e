package game

// Phase is the turn engine's position in the roll/resolve/move cycle.
type Phase int

const (
	Idle     Phase = iota // Waiting for a roll
	Rolling               // Waiting on the random source
	Resolved              // Legal roll received, waiting for a move
	Moving                // Consuming the movement sequence
	Finished              // Token reached the goal
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Rolling:
		return "rolling"
	case Resolved:
		return "resolved"
	case Moving:
		return "moving"
	case Finished:
		return "finished"
	}
	return "unknown"
}

// TurnState is the authoritative state of a single-token game.
//
// MoveAllowed is never true while LastRoll is 0, and Finished implies the
// token sits on the goal cell.
type TurnState struct {
	CurrentCell int   `json:"current_cell"`
	LastRoll    int   `json:"last_roll"` // 0 means no roll yet
	RollAllowed bool  `json:"roll_allowed"`
	MoveAllowed bool  `json:"move_allowed"`
	Finished    bool  `json:"finished"`
	Phase       Phase `json:"phase"`
}

// NewTurnState returns the state a game starts in, and the state a reset
// returns to.
func NewTurnState(b *Board) TurnState {
	return TurnState{
		CurrentCell: b.Home(),
		RollAllowed: true,
		Phase:       Idle,
	}
}
