// Package engine runs one snake episode: it asks a Strategy for the next
// cell, checks it, moves the body and tracks score and outcome.
//
// The engine is single-threaded. The caller invokes Step once per tick and
// reads the result back through State, Body, Target or Frame.
package engine

import (
	"log/slog"

	"github.com/brensch/pathsnake/game"
	"github.com/brensch/pathsnake/rules"
)

// Status is the episode state. Dead and Won are terminal.
type Status int

const (
	Alive Status = iota
	Dead
	Won
)

func (s Status) String() string {
	switch s {
	case Alive:
		return "alive"
	case Dead:
		return "dead"
	case Won:
		return "won"
	default:
		return "unknown"
	}
}

func (s Status) Terminal() bool { return s == Dead || s == Won }

// State is what the engine reports after every step.
type State struct {
	Status Status
	Score  int
	Turn   int
	Cause  rules.DeathCause
}

// Options configures a new episode.
type Options struct {
	Grid          game.Grid
	InitialLength int
	// Strategy defaults to ShortestPath.
	Strategy Strategy
	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Engine owns the body, target and state of one episode.
type Engine struct {
	grid     game.Grid
	body     *game.Body
	target   game.Point
	hasTgt   bool
	state    State
	heading  game.Move
	plan     int
	strategy Strategy
	log      *slog.Logger
}

// New validates the options, lays out the initial body and places the first
// target with rng.
func New(opts Options, rng game.RandSource) (*Engine, error) {
	body, err := game.InitialBody(opts.Grid, opts.InitialLength)
	if err != nil {
		return nil, err
	}

	strategy := opts.Strategy
	if strategy == nil {
		strategy = ShortestPath
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	e := &Engine{
		grid:     opts.Grid,
		body:     body,
		heading:  game.MoveRight,
		strategy: strategy,
		log:      logger.With("strategy", strategy.Name()),
	}
	e.target, e.hasTgt = game.PlaceTarget(body, opts.Grid, rng)
	if !e.hasTgt {
		// Unreachable while length < width, kept so the state stays consistent.
		e.state.Status = Won
	}
	return e, nil
}

// Step advances the episode by one tick. It is a no-op once the episode is
// over.
func (e *Engine) Step(rng game.RandSource) State {
	if e.state.Status.Terminal() {
		return e.state
	}

	head := e.body.Head()
	next, steps, ok := e.strategy.Plan(View{
		Grid:   e.grid,
		Body:   e.body,
		Head:   head,
		Target: e.target,
	})
	if !ok {
		e.die(rules.CauseNoPath, "trapped", len(rules.LegalMoves(e.grid, e.body)) == 0)
		return e.state
	}
	e.plan = steps

	if cause, legal := rules.CheckMove(e.grid, e.body, next); !legal {
		e.die(cause, "next", next)
		return e.state
	}

	if m, ok := game.MoveBetween(head, next); ok {
		e.heading = m
	}
	e.body.Extend(next)
	e.state.Turn++

	if next == e.target {
		e.state.Score++
		e.target, e.hasTgt = game.PlaceTarget(e.body, e.grid, rng)
		if !e.hasTgt {
			e.state.Status = Won
			e.log.Info("board filled", "turn", e.state.Turn, "score", e.state.Score)
			return e.state
		}
		e.log.Info("ate target", "turn", e.state.Turn, "score", e.state.Score, "next_target", e.target)
		return e.state
	}

	e.body.Shrink()
	e.log.Debug("step", "turn", e.state.Turn, "next", next, "plan_steps", steps)
	return e.state
}

func (e *Engine) die(cause rules.DeathCause, args ...any) {
	e.state.Status = Dead
	e.state.Cause = cause
	attrs := append([]any{"turn", e.state.Turn, "score", e.state.Score, "cause", string(cause)}, args...)
	e.log.Info("snake died", attrs...)
}

func (e *Engine) State() State { return e.state }

// Body returns the occupied cells, tail first.
func (e *Engine) Body() []game.Point { return e.body.Cells() }

// Target returns the goal cell; ok is false once the board is full.
func (e *Engine) Target() (game.Point, bool) { return e.target, e.hasTgt }

func (e *Engine) Grid() game.Grid { return e.grid }

// Heading is the direction of the last move.
func (e *Engine) Heading() game.Move { return e.heading }

func (e *Engine) StrategyName() string { return e.strategy.Name() }

// Frame snapshots the episode for a renderer.
func (e *Engine) Frame() *game.Frame {
	f := &game.Frame{
		Turn:      e.state.Turn,
		Grid:      e.grid,
		Body:      e.body.Cells(),
		Head:      e.body.Head(),
		Status:    e.state.Status.String(),
		Score:     e.state.Score,
		Cause:     string(e.state.Cause),
		Strategy:  e.strategy.Name(),
		PlanSteps: e.plan,
	}
	if e.hasTgt {
		t := e.target
		f.Target = &t
	}
	return f
}
