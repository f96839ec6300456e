package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestBoard(t *testing.T, n int) *Board {
	t.Helper()
	b, err := NewNumberedBoard(n)
	require.NoError(t, err)
	return b
}

func TestJudge(t *testing.T) {
	b := newTestBoard(t, 20) // goal is 19

	t.Run("legal rolls off home", func(t *testing.T) {
		for current := 1; current < b.Goal(); current++ {
			for roll := DieMin; roll <= DieMax; roll++ {
				if current+roll > b.Goal() {
					continue
				}
				got := Judge(b, current, roll)
				require.Equal(t, RollOutcome{Value: roll, Verdict: Legal}, got, "cell %d roll %d", current, roll)
			}
		}
	})

	t.Run("only a six leaves home", func(t *testing.T) {
		for roll := DieMin; roll < ExitRoll; roll++ {
			got := Judge(b, b.Home(), roll)
			require.Equal(t, BlockedAtHome, got.Verdict, "roll %d", roll)
			require.True(t, got.Verdict.Blocked())
		}
		require.Equal(t, Legal, Judge(b, b.Home(), ExitRoll).Verdict)
	})

	t.Run("overshoot is blocked", func(t *testing.T) {
		got := Judge(b, b.Goal()-2, 6)
		require.Equal(t, Overshoot, got.Verdict)
		require.True(t, got.Verdict.Blocked())
	})

	t.Run("landing exactly on goal is legal", func(t *testing.T) {
		require.Equal(t, Legal, Judge(b, b.Goal()-3, 3).Verdict)
	})

	t.Run("failed fetch is wasted", func(t *testing.T) {
		for _, roll := range []int{0, -1, 7} {
			got := Judge(b, 5, roll)
			require.Equal(t, RollOutcome{Value: 0, Verdict: Wasted}, got, "roll %d", roll)
			require.False(t, got.Verdict.Blocked())
		}
	})

	t.Run("six at home overshoots a short board", func(t *testing.T) {
		for _, n := range []int{2, 4, 6} {
			short := newTestBoard(t, n)
			got := Judge(short, short.Home(), ExitRoll)
			require.Equal(t, RollOutcome{Value: ExitRoll, Verdict: Overshoot}, got, "cells %d", n)
		}
		seven := newTestBoard(t, 7)
		require.Equal(t, Legal, Judge(seven, seven.Home(), ExitRoll).Verdict)
	})
}

func TestSteps(t *testing.T) {
	b := newTestBoard(t, 20)

	require.Equal(t, 1, Steps(b, b.Home(), ExitRoll), "Leaving home moves one cell")
	require.Equal(t, 6, Steps(b, 4, 6))
	require.Equal(t, 3, Steps(b, 4, 3))
}
