package search

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/brensch/pathsnake/game"
)

// Perpendicular detour directions tried for an edge, in order.
var (
	detoursForHorizontal = [2]game.Move{game.MoveUp, game.MoveDown}
	detoursForVertical   = [2]game.Move{game.MoveLeft, game.MoveRight}
)

// LongestPath stretches the shortest path into a longer one that fills free
// space near the route. It is a heuristic, not a true longest path.
//
// Each edge a->b is replaced by a->a+d->b+d->b when both detour cells are on
// the board, free and not already on the path. The same edge index is then
// examined again (it is now the a->a+d leg) before moving on, so detours
// nest until no edge can be widened.
func LongestPath(head game.Point, obstacles game.Occupancy, target game.Point, g game.Grid) (Path, bool) {
	base, ok := ShortestPath(head, obstacles, target, g)
	if !ok {
		return nil, false
	}

	path := make(Path, len(base), g.Size())
	copy(path, base)
	onPath := mapset.New[game.Point]()
	for _, c := range path {
		onPath.Put(c)
	}

	free := func(p game.Point) bool {
		return g.InBounds(p) && !obstacles.Contains(p, true) && !onPath.Has(p)
	}

	for i := 0; i < len(path)-1; {
		a, b := path[i], path[i+1]
		m, _ := game.MoveBetween(a, b)
		detours := detoursForVertical
		if m.Horizontal() {
			detours = detoursForHorizontal
		}

		extended := false
		for _, d := range detours {
			ad, bd := a.Add(d.Delta()), b.Add(d.Delta())
			if !free(ad) || !free(bd) {
				continue
			}
			onPath.Put(ad)
			onPath.Put(bd)
			path = splice(path, i+1, ad, bd)
			extended = true
			break
		}
		if !extended {
			i++
		}
	}

	return path, true
}

// splice inserts cells at index at.
func splice(p Path, at int, cells ...game.Point) Path {
	p = append(p, cells...)
	copy(p[at+len(cells):], p[at:len(p)-len(cells)])
	copy(p[at:], cells)
	return p
}
