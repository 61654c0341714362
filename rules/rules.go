package rules

import (
	"github.com/brensch/pathsnake/game"
)

// DeathCause explains why a snake stopped.
type DeathCause string

const (
	// CauseNone is reported while the snake is alive or after a win.
	CauseNone DeathCause = ""
	// CauseWall is when the next cell is off the board.
	CauseWall DeathCause = "wall-collision"
	// CauseSelf is when the next cell is part of the body.
	CauseSelf DeathCause = "self-collision"
	// CauseIllegalStep is when the next cell is not a single step from the head.
	CauseIllegalStep DeathCause = "illegal-step"
	// CauseNoPath is when the move source could not reach the target.
	CauseNoPath DeathCause = "no-path"
)

// IsSafe reports whether the head may enter p this tick, assuming no growth:
// on the board and not on the body, the vacating tail excepted.
func IsSafe(g game.Grid, occ game.Occupancy, p game.Point) bool {
	if !g.InBounds(p) {
		return false
	}
	return !occ.Contains(p, true)
}

// CheckMove validates the next head cell against the current body.
// It returns the cause when the move is illegal.
func CheckMove(g game.Grid, body *game.Body, next game.Point) (DeathCause, bool) {
	// 1. Check Bounds
	if !g.InBounds(next) {
		return CauseWall, false
	}

	// 2. Must be a single orthogonal step
	if !body.Head().Adjacent(next) {
		return CauseIllegalStep, false
	}

	// 3. Check Collisions with self
	if body.Contains(next, true) {
		return CauseSelf, false
	}

	return CauseNone, true
}

// LegalMoves returns the safe moves from the head in game.Moves order.
func LegalMoves(g game.Grid, body *game.Body) []game.Move {
	head := body.Head()
	moves := make([]game.Move, 0, len(game.Moves))
	for _, m := range game.Moves {
		if IsSafe(g, body, head.Add(m.Delta())) {
			moves = append(moves, m)
		}
	}
	return moves
}
