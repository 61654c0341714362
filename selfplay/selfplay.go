// Package selfplay drives an engine through whole episodes and reports how
// each one ended.
package selfplay

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/brensch/pathsnake/config"
	"github.com/brensch/pathsnake/engine"
	"github.com/brensch/pathsnake/game"
	"github.com/brensch/pathsnake/rules"
)

type Config struct {
	// MaxTurns caps an episode; 0 means run until it ends on its own.
	MaxTurns int
}

type Result struct {
	Status    engine.Status
	Score     int
	Turns     int
	Cause     rules.DeathCause
	Truncated bool
	Strategy  string
	Duration  time.Duration
}

func (r Result) String() string {
	s := fmt.Sprintf("%s after %d turns, score %d (%s)", r.Status, r.Turns, r.Score, r.Strategy)
	if r.Cause != rules.CauseNone {
		s += ", cause " + string(r.Cause)
	}
	if r.Truncated {
		s += ", truncated"
	}
	return s
}

// NewEpisode builds an engine for cfg seeded with seed. The returned
// generator must be the one passed to every Step of that engine.
func NewEpisode(cfg config.Config, seed int64, logger *slog.Logger) (*engine.Engine, *rand.Rand, error) {
	strategy, err := engine.StrategyByName(cfg.Strategy)
	if err != nil {
		return nil, nil, err
	}
	rng := rand.New(rand.NewSource(seed))
	eng, err := engine.New(engine.Options{
		Grid:          game.Grid{Width: cfg.Width, Height: cfg.Height},
		InitialLength: cfg.InitialLength,
		Strategy:      strategy,
		Logger:        logger,
	}, rng)
	if err != nil {
		return nil, nil, fmt.Errorf("new episode: %w", err)
	}
	return eng, rng, nil
}

// PlayEpisode steps eng until the episode is over, MaxTurns is reached or
// ctx is cancelled. onFrame, when set, sees the frame after every step; it
// may block to pace the episode.
func PlayEpisode(ctx context.Context, eng *engine.Engine, rng game.RandSource, cfg Config, onFrame func(*game.Frame)) (Result, error) {
	start := time.Now()
	res := Result{Strategy: eng.StrategyName()}

	finish := func() Result {
		st := eng.State()
		res.Status = st.Status
		res.Score = st.Score
		res.Turns = st.Turn
		res.Cause = st.Cause
		res.Duration = time.Since(start)
		return res
	}

	for !eng.State().Status.Terminal() {
		if err := ctx.Err(); err != nil {
			return finish(), err
		}
		if cfg.MaxTurns > 0 && eng.State().Turn >= cfg.MaxTurns {
			res.Truncated = true
			break
		}
		eng.Step(rng)
		if onFrame != nil {
			onFrame(eng.Frame())
		}
	}
	return finish(), nil
}
