package config

import (
	"ludo/game"
	"ludo/meta"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Equal(t, meta.RANDOM_URL, cfg.RandomURL)
	require.Equal(t, meta.STEP_DELAY, cfg.StepDelay)

	board, err := cfg.Board()
	require.NoError(t, err)
	require.Equal(t, meta.BOARD_CELLS, board.Len())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("LUDO_RANDOM_SOURCE", "local")
	t.Setenv("LUDO_SEED", "99")
	t.Setenv("LUDO_BOARD_CELLS", "start,a,b,goal")
	t.Setenv("LUDO_STEP_DELAY", "0s")
	t.Setenv("LUDO_MOVE_COOLDOWN", "250ms")
	t.Setenv("LUDO_AUTO_ADVANCE", "true")
	t.Setenv("LUDO_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, SourceLocal, cfg.RandomSource)
	require.Equal(t, uint64(99), cfg.Seed)
	require.Equal(t, []string{"start", "a", "b", "goal"}, cfg.BoardCells)
	require.Zero(t, cfg.StepDelay)
	require.Equal(t, 250*time.Millisecond, cfg.MoveCooldown)
	require.True(t, cfg.AutoAdvance)
	require.Equal(t, "debug", cfg.LogLevel)

	board, err := cfg.Board()
	require.NoError(t, err)
	require.Equal(t, "goal", board.Cell(board.Goal()).ID)
}

func TestLoadParseError(t *testing.T) {
	t.Setenv("LUDO_STEP_DELAY", "soon")

	_, err := Load()
	require.ErrorContains(t, err, "parse env")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"unknown source", func(c *Config) { c.RandomSource = "dice" }},
		{"relative url", func(c *Config) { c.RandomURL = "/integers" }},
		{"zero timeout", func(c *Config) { c.RandomTimeout = 0 }},
		{"short board", func(c *Config) { c.BoardSize = 1 }},
		{"negative delay", func(c *Config) { c.StepDelay = -time.Second }},
		{"negative cooldown", func(c *Config) { c.MoveCooldown = -time.Second }},
		{"no turns", func(c *Config) { c.MaxTurns = 0 }},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}

	t.Run("local source ignores url", func(t *testing.T) {
		cfg := Default()
		cfg.RandomSource = SourceLocal
		cfg.RandomURL = ""
		require.NoError(t, cfg.Validate())
	})
}

func TestBoardDuplicateCells(t *testing.T) {
	cfg := Default()
	cfg.BoardCells = []string{"a", "b", "a"}

	_, err := cfg.Board()
	require.ErrorIs(t, err, game.ErrDuplicateCell)
}
