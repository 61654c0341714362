// Package config collects the run settings from flags, with defaults taken
// from SNAKE_* environment variables.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/brensch/pathsnake/engine"
	"github.com/brensch/pathsnake/logging"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Width         int
	Height        int
	InitialLength int
	Strategy      string
	// Seed 0 means seed from the clock.
	Seed     int64
	TickRate float64
	// MaxTurns 0 means unbounded.
	MaxTurns  int
	FeedAddr  string
	LogLevel  string
	LogFormat string
	LogPath   string
	Headless  bool
	Episodes  int
}

func DefaultConfig() Config {
	return Config{
		Width:         16,
		Height:        16,
		InitialLength: 3,
		Strategy:      engine.ShortestPath.Name(),
		TickRate:      15,
		LogLevel:      "info",
		LogFormat:     "text",
		Episodes:      1,
	}
}

// Load parses args (without the program name) into a Config and validates
// it. flag.ErrHelp is returned as is.
func Load(args []string, output io.Writer) (Config, error) {
	def := DefaultConfig()
	cfg := Config{}

	fs := flag.NewFlagSet("autosnake", flag.ContinueOnError)
	if output != nil {
		fs.SetOutput(output)
	}
	fs.IntVar(&cfg.Width, "width", getEnvIntOrDefault("SNAKE_WIDTH", def.Width), "Board width in cells")
	fs.IntVar(&cfg.Height, "height", getEnvIntOrDefault("SNAKE_HEIGHT", def.Height), "Board height in cells")
	fs.IntVar(&cfg.InitialLength, "length", getEnvIntOrDefault("SNAKE_LENGTH", def.InitialLength), "Initial snake length, must be below the width")
	fs.StringVar(&cfg.Strategy, "strategy", getEnvOrDefault("SNAKE_STRATEGY", def.Strategy), fmt.Sprintf("Path strategy %v", engine.StrategyNames()))
	fs.Int64Var(&cfg.Seed, "seed", getEnvInt64OrDefault("SNAKE_SEED", def.Seed), "Random seed for target placement (0 = from clock)")
	fs.Float64Var(&cfg.TickRate, "tick-rate", getEnvFloatOrDefault("SNAKE_TICK_RATE", def.TickRate), "Steps per second")
	fs.IntVar(&cfg.MaxTurns, "max-turns", getEnvIntOrDefault("SNAKE_MAX_TURNS", def.MaxTurns), "Stop an episode after this many turns (0 = no limit)")
	fs.StringVar(&cfg.FeedAddr, "feed-addr", getEnvOrDefault("SNAKE_FEED_ADDR", def.FeedAddr), "Serve a websocket frame feed on this address, e.g. :8090")
	fs.StringVar(&cfg.LogLevel, "log-level", getEnvOrDefault("SNAKE_LOG_LEVEL", def.LogLevel), "debug, info, warn or error")
	fs.StringVar(&cfg.LogFormat, "log-format", getEnvOrDefault("SNAKE_LOG_FORMAT", def.LogFormat), "text or json")
	fs.StringVar(&cfg.LogPath, "log-path", getEnvOrDefault("SNAKE_LOG_PATH", def.LogPath), "Write logs to this file instead of stderr")
	fs.BoolVar(&cfg.Headless, "headless", getEnvBoolOrDefault("SNAKE_HEADLESS", def.Headless), "Run without the terminal view")
	fs.IntVar(&cfg.Episodes, "episodes", getEnvIntOrDefault("SNAKE_EPISODES", def.Episodes), "Episodes to play in headless mode")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return cfg, err
		}
		return cfg, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("%w: unexpected arguments %v", ErrInvalidConfig, fs.Args())
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.InitialLength <= 0 || c.InitialLength >= c.Width {
		return fmt.Errorf("%w: length %d must be between 1 and width-1 (%d)", ErrInvalidConfig, c.InitialLength, c.Width-1)
	}
	if _, err := engine.StrategyByName(c.Strategy); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("%w: tick rate must be positive, got %g", ErrInvalidConfig, c.TickRate)
	}
	if c.MaxTurns < 0 {
		return fmt.Errorf("%w: max turns must not be negative, got %d", ErrInvalidConfig, c.MaxTurns)
	}
	if c.Episodes < 1 {
		return fmt.Errorf("%w: episodes must be at least 1, got %d", ErrInvalidConfig, c.Episodes)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if !logging.KnownFormat(c.LogFormat) {
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}

// TickInterval is the wall-clock time between two steps.
func (c Config) TickInterval() time.Duration {
	return time.Duration(float64(time.Second) / c.TickRate)
}

// ResolveSeed returns Seed, or a clock-derived seed when Seed is 0.
func (c Config) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
