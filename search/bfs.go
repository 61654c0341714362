package search

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/brensch/pathsnake/game"
)

// ShortestPath runs a breadth-first search from head to target.
//
// A neighbour is skipped when it is off the board, occupied (tail excluded,
// since it vacates on a non-growing move) or already visited. Each visited
// cell remembers its predecessor and the path is rebuilt backwards from the
// target, so memory stays linear in the board size. ok is false when the
// frontier runs dry before the target is reached.
func ShortestPath(head game.Point, obstacles game.Occupancy, target game.Point, g game.Grid) (Path, bool) {
	if head == target {
		return Path{head}, true
	}

	visited := mapset.New[game.Point]()
	parent := make(map[game.Point]game.Point, g.Size())
	visited.Put(head)

	queue := make([]game.Point, 0, g.Size())
	queue = append(queue, head)

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		if node == target {
			return rebuild(parent, head, target), true
		}

		for _, m := range game.Moves {
			n := node.Add(m.Delta())
			if !g.InBounds(n) || obstacles.Contains(n, true) || visited.Has(n) {
				continue
			}
			visited.Put(n)
			parent[n] = node
			queue = append(queue, n)
		}
	}

	return nil, false
}

func rebuild(parent map[game.Point]game.Point, head, target game.Point) Path {
	var rev Path
	for c := target; c != head; c = parent[c] {
		rev = append(rev, c)
	}
	rev = append(rev, head)

	out := make(Path, len(rev))
	for i, c := range rev {
		out[len(rev)-1-i] = c
	}
	return out
}
