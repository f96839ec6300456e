package feedback

import (
	"ludo/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlayerSignal(t *testing.T) {
	t.Run("known signals resolve to clips", func(t *testing.T) {
		var played []string
		p := NewPlayer(DefaultClips, func(clip string) { played = append(played, clip) })

		for _, name := range game.Signals() {
			p.Signal(name)
		}

		require.Equal(t, []string{"DiceRoll", "Warning", "ChipMove", "GameOver"}, played)
	})

	t.Run("unknown signal is dropped", func(t *testing.T) {
		var played []string
		p := NewPlayer(DefaultClips, func(clip string) { played = append(played, clip) })

		p.Signal("fanfare")

		require.Empty(t, played)
	})

	t.Run("register adds a clip", func(t *testing.T) {
		var played []string
		p := NewPlayer(nil, func(clip string) { played = append(played, clip) })

		p.Register("fanfare", "Trumpet")
		p.Signal("fanfare")

		require.Equal(t, []string{"Trumpet"}, played)
	})

	t.Run("nil sink", func(t *testing.T) {
		p := NewPlayer(DefaultClips, nil)
		require.NotPanics(t, func() { p.Signal(game.SignalRoll) })
	})

	t.Run("clips are copied", func(t *testing.T) {
		clips := map[string]string{"roll": "DiceRoll"}
		var played []string
		p := NewPlayer(clips, func(clip string) { played = append(played, clip) })

		clips["roll"] = "Changed"
		p.Signal("roll")

		require.Equal(t, []string{"DiceRoll"}, played)
	})
}
