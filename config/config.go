package config

import (
	"errors"
	"fmt"
	"ludo/game"
	"ludo/meta"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

const (
	SourceHTTP  = "http"
	SourceLocal = "local"
)

var ErrInvalid = errors.New("invalid config")

// Config is read from LUDO_* environment variables. Unset variables keep the
// values from Default.
type Config struct {
	RandomURL     string        `env:"RANDOM_URL"`
	UserAgent     string        `env:"USER_AGENT"`
	RandomTimeout time.Duration `env:"RANDOM_TIMEOUT"`
	RandomSource  string        `env:"RANDOM_SOURCE"` // http or local
	Seed          uint64        `env:"SEED"`          // local source only, zero picks one from the clock

	BoardCells   []string      `env:"BOARD_CELLS" envSeparator:","` // explicit cell ids, overrides BoardSize
	BoardSize    int           `env:"BOARD_SIZE"`
	StepDelay    time.Duration `env:"STEP_DELAY"`
	MoveCooldown time.Duration `env:"MOVE_COOLDOWN"`
	AutoAdvance  bool          `env:"AUTO_ADVANCE"`
	MaxTurns     int           `env:"MAX_TURNS"`

	LogLevel     string `env:"LOG_LEVEL"`
	LogPretty    bool   `env:"LOG_PRETTY"`
	MetricsDir   string `env:"METRICS_DIR"`
	OtelEndpoint string `env:"OTEL_ENDPOINT"`
}

func Default() Config {
	return Config{
		RandomURL:     meta.RANDOM_URL,
		UserAgent:     meta.USER_AGENT,
		RandomTimeout: meta.RANDOM_TIMEOUT,
		RandomSource:  SourceHTTP,
		BoardSize:     meta.BOARD_CELLS,
		StepDelay:     meta.STEP_DELAY,
		MoveCooldown:  meta.MOVE_COOLDOWN,
		MaxTurns:      meta.MAX_TURNS,
		LogLevel:      zerolog.LevelInfoValue,
		LogPretty:     true,
	}
}

// Load reads the environment over Default and validates the result.
func Load() (Config, error) {
	cfg := Default()
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "LUDO_"}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.RandomSource {
	case SourceHTTP:
		u, err := url.Parse(c.RandomURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: random url %q", ErrInvalid, c.RandomURL)
		}
		if c.RandomTimeout <= 0 {
			return fmt.Errorf("%w: random timeout must be positive", ErrInvalid)
		}
	case SourceLocal:
	default:
		return fmt.Errorf("%w: random source %q, want %s or %s", ErrInvalid, c.RandomSource, SourceHTTP, SourceLocal)
	}

	if len(c.BoardCells) == 0 && c.BoardSize < 2 {
		return fmt.Errorf("%w: board size %d", ErrInvalid, c.BoardSize)
	}
	if c.StepDelay < 0 || c.MoveCooldown < 0 {
		return fmt.Errorf("%w: delays must not be negative", ErrInvalid)
	}
	if c.MaxTurns <= 0 {
		return fmt.Errorf("%w: max turns %d", ErrInvalid, c.MaxTurns)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level: %v", ErrInvalid, err)
	}
	return nil
}

// Board builds the configured path.
func (c Config) Board() (*game.Board, error) {
	if len(c.BoardCells) > 0 {
		return game.NewBoard(c.BoardCells...)
	}
	return game.NewNumberedBoard(c.BoardSize)
}
