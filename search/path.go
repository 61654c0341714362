// Package search finds routes from the snake's head to the target.
//
// Both searches are pure: they borrow the body occupancy read-only, keep all
// bookkeeping local to the call and can be rerun every tick. Neighbours are
// always expanded in game.Moves order, which fixes which of several equally
// good routes is returned.
package search

import (
	"fmt"

	"github.com/brensch/pathsnake/game"
)

// Path is an ordered route, head first and target last.
type Path []game.Point

// Len is the number of moves in the path.
func (p Path) Len() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Next returns the cell right after the head. ok is false for paths that do
// not move.
func (p Path) Next() (game.Point, bool) {
	if len(p) < 2 {
		return game.Point{}, false
	}
	return p[1], true
}

// Validate checks the path shape: on the board, unit steps, no repeats.
func (p Path) Validate(g game.Grid) error {
	seen := make(map[game.Point]struct{}, len(p))
	for i, c := range p {
		if !g.InBounds(c) {
			return fmt.Errorf("cell %d %v out of bounds", i, c)
		}
		if _, dup := seen[c]; dup {
			return fmt.Errorf("cell %d %v repeats", i, c)
		}
		seen[c] = struct{}{}
		if i > 0 && !p[i-1].Adjacent(c) {
			return fmt.Errorf("step %d %v->%v is not a unit move", i, p[i-1], c)
		}
	}
	return nil
}
