// target.go implements goal-cell placement.

package game

// RandSource is the only source of randomness the core uses. *rand.Rand
// satisfies it; tests pass a seeded generator or a scripted stub.
type RandSource interface {
	Intn(n int) int
}

// PlaceTarget picks a uniformly random free cell. Free cells are enumerated
// in row-major order so a seeded source always yields the same cell.
// ok is false when the body covers the whole board.
func PlaceTarget(body Occupancy, g Grid, rng RandSource) (Point, bool) {
	if rng == nil {
		panic("game: nil random source")
	}

	free := make([]Point, 0, g.Size())
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := Point{X: x, Y: y}
			if body.Contains(p, false) {
				continue
			}
			free = append(free, p)
		}
	}
	if len(free) == 0 {
		return Point{}, false
	}
	return free[rng.Intn(len(free))], true
}
