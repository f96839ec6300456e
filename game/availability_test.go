package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeAvailability(t *testing.T) {
	tests := []struct {
		name  string
		state TurnState
		want  Availability
	}{
		{
			name:  "fresh game",
			state: TurnState{RollAllowed: true, Phase: Idle},
			want:  Availability{Roll: true, Reset: true},
		},
		{
			name:  "rolling",
			state: TurnState{Phase: Rolling},
			want:  Availability{},
		},
		{
			name:  "legal roll",
			state: TurnState{LastRoll: 4, MoveAllowed: true, Phase: Resolved},
			want:  Availability{Move: true, Reset: true},
		},
		{
			name:  "moving",
			state: TurnState{LastRoll: 4, Phase: Moving},
			want:  Availability{},
		},
		{
			name:  "finished",
			state: TurnState{Finished: true, Phase: Finished},
			want:  Availability{Reset: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ComputeAvailability(tt.state))
		})
	}
}

func TestPhaseString(t *testing.T) {
	require.Equal(t, "idle", Idle.String())
	require.Equal(t, "finished", Finished.String())
	require.Equal(t, "unknown", Phase(42).String())
}
