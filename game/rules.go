package game

// Verdict classifies a roll against the token's current cell.
type Verdict int

const (
	Wasted        Verdict = iota // Random source failed, nothing rolled
	BlockedAtHome                // Needed a six to leave home
	Overshoot                    // Would move past the goal
	Legal
)

func (v Verdict) String() string {
	switch v {
	case Wasted:
		return "wasted"
	case BlockedAtHome:
		return "blocked_at_home"
	case Overshoot:
		return "overshoot"
	case Legal:
		return "legal"
	}
	return "unknown"
}

// Blocked reports whether the verdict is a rule violation the player should
// be warned about.
func (v Verdict) Blocked() bool {
	return v == BlockedAtHome || v == Overshoot
}

// RollOutcome is a die value together with its legality.
type RollOutcome struct {
	Value   int
	Verdict Verdict
}

// Judge evaluates roll for a token on cell current. A roll outside
// [DieMin, DieMax] counts as a failed fetch. Overshoot compares the full roll,
// not the steps taken, against the goal.
func Judge(b *Board, current, roll int) RollOutcome {
	out := RollOutcome{Value: roll}
	switch {
	case roll < DieMin || roll > DieMax:
		out.Value = 0
		out.Verdict = Wasted
	case current == b.Home() && roll != ExitRoll:
		out.Verdict = BlockedAtHome
	case current+roll > b.Goal():
		out.Verdict = Overshoot
	default:
		out.Verdict = Legal
	}
	return out
}

// Steps is the number of cells a legal roll advances the token. Leaving home
// on a six only reaches the first cell of the path.
func Steps(b *Board, current, roll int) int {
	if current == b.Home() && roll == ExitRoll {
		return 1
	}
	return roll
}
