package game

// Availability is the enabled state of the three player actions.
type Availability struct {
	Roll  bool `json:"roll"`
	Move  bool `json:"move"`
	Reset bool `json:"reset"`
}

// ComputeAvailability derives which actions the input boundary should offer.
// Reset stays available except while a roll or a move is in flight.
func ComputeAvailability(s TurnState) Availability {
	return Availability{
		Roll:  s.RollAllowed,
		Move:  s.MoveAllowed,
		Reset: s.Phase != Rolling && s.Phase != Moving,
	}
}
