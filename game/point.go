package game

import "fmt"

// Point is a board coordinate.
// (0,0) is bottom-left; Up increases Y.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Manhattan returns the grid distance between p and q.
func (p Point) Manhattan(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// Adjacent reports whether q is exactly one unit away from p along one axis.
func (p Point) Adjacent(q Point) bool {
	return p.Manhattan(q) == 1
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Move is a single step direction.
type Move int

const (
	MoveUp Move = iota
	MoveDown
	MoveLeft
	MoveRight
)

// Moves is the neighbour evaluation order used everywhere a search expands a
// cell. It decides which of several equally short paths wins, so it must not
// be reordered.
var Moves = [4]Move{MoveUp, MoveDown, MoveLeft, MoveRight}

var moveDeltas = [4]Point{
	MoveUp:    {X: 0, Y: 1},
	MoveDown:  {X: 0, Y: -1},
	MoveLeft:  {X: -1, Y: 0},
	MoveRight: {X: 1, Y: 0},
}

var moveNames = [4]string{"up", "down", "left", "right"}

func (m Move) Delta() Point { return moveDeltas[m] }

func (m Move) String() string {
	if m < 0 || int(m) >= len(moveNames) {
		return fmt.Sprintf("move(%d)", int(m))
	}
	return moveNames[m]
}

// Horizontal reports whether the move changes X.
func (m Move) Horizontal() bool {
	return m == MoveLeft || m == MoveRight
}

// MoveBetween returns the move that takes a to b. ok is false when the two
// points are not adjacent.
func MoveBetween(a, b Point) (Move, bool) {
	d := b.Sub(a)
	for _, m := range Moves {
		if m.Delta() == d {
			return m, true
		}
	}
	return 0, false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
