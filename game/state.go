// Package game defines the board geometry, the snake body and the per-tick
// snapshots handed to renderers.
//
// Nothing here decides where the snake goes; that is the engine's job. The
// types are small and copyable so a frame can be handed to another goroutine
// (a websocket feed, a terminal view) without sharing engine state.
package game

// Frame is everything a renderer needs for one tick.
// Body is tail first; Head repeats its last element for convenience.
type Frame struct {
	Turn      int     `json:"turn"`
	Grid      Grid    `json:"grid"`
	Body      []Point `json:"body"`
	Head      Point   `json:"head"`
	Target    *Point  `json:"target"`
	Status    string  `json:"status"`
	Score     int     `json:"score"`
	Cause     string  `json:"cause,omitempty"`
	Strategy  string  `json:"strategy,omitempty"`
	PlanSteps int     `json:"plan_steps"`
}
