package experiments

import (
	"context"
	"ludo/experiments/metrics"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	opts := Options{Games: 8, Parallel: 3, Seed: 42, Cells: 12}

	records, err := Run(context.Background(), opts)
	require.NoError(t, err)
	require.Len(t, records, 8)

	for i, r := range records {
		require.Equal(t, i+1, r.ID)
		require.Equal(t, uint64(42+i), r.Seed)
		require.True(t, r.Finished)
		require.Equal(t, 11, r.Steps)
		require.GreaterOrEqual(t, r.Rolls, r.Moves+r.Blocked)
		require.False(t, r.EndTime.Before(r.StartTime))
	}
}

func TestRunIsReproducible(t *testing.T) {
	opts := Options{Games: 4, Parallel: 4, Seed: 7, Cells: 20}

	first, err := Run(context.Background(), opts)
	require.NoError(t, err)
	second, err := Run(context.Background(), Options{Games: 4, Parallel: 1, Seed: 7, Cells: 20})
	require.NoError(t, err)

	for i := range first {
		require.Equal(t, first[i].Rolls, second[i].Rolls)
		require.Equal(t, first[i].Blocked, second[i].Blocked)
		require.Equal(t, first[i].Moves, second[i].Moves)
	}
}

func TestRunTurnLimit(t *testing.T) {
	records, err := Run(context.Background(), Options{Games: 2, Seed: 1, Cells: 40, MaxTurns: 1})
	require.NoError(t, err)
	for _, r := range records {
		require.False(t, r.Finished)
		require.Equal(t, 1, r.Rolls)
	}
}

func TestRunInvalidBoard(t *testing.T) {
	_, err := Run(context.Background(), Options{Games: 1, Cells: 1})
	require.Error(t, err)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, Options{Games: 2, Seed: 1, Cells: 10})
	require.ErrorIs(t, err, context.Canceled)
}

func TestSummarize(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	records := []metrics.GameRecord{
		{ID: 1, GameMetric: metrics.GameMetric{StartTime: start, EndTime: start.Add(time.Second), TurnMetric: metrics.TurnMetric{Rolls: 10, Steps: 8, Blocked: 2, Finished: true}}},
		{ID: 2, GameMetric: metrics.GameMetric{StartTime: start, EndTime: start.Add(2 * time.Second), TurnMetric: metrics.TurnMetric{Rolls: 20, Steps: 4, Wasted: 1}}},
	}

	s := Summarize(records)
	require.Equal(t, 2, s.Games)
	require.Equal(t, 1, s.Finished)
	require.InDelta(t, 15.0, s.MeanRolls, 1e-9)
	require.InDelta(t, 6.0, s.MeanSteps, 1e-9)
	require.Equal(t, 20, s.MaxRolls)
	require.Equal(t, 2, s.Blocked)
	require.Equal(t, 1, s.Wasted)
	require.InDelta(t, 1.0, s.Throughput, 1e-9)

	require.Equal(t, Summary{}, Summarize(nil))
}

func TestStore(t *testing.T) {
	records, err := Run(context.Background(), Options{Games: 3, Seed: 5, Cells: 8})
	require.NoError(t, err)

	dir, err := Store(t.TempDir(), "batch", records)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "game_records.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 4)
	require.True(t, strings.HasPrefix(lines[0], "id,seed,"))
}
