package game

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidGrid   = errors.New("invalid grid")
	ErrInvalidLength = errors.New("invalid initial length")
)

// Grid is the static board geometry.
type Grid struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (g Grid) Validate() error {
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidGrid, g.Width, g.Height)
	}
	return nil
}

func (g Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

func (g Grid) Size() int { return g.Width * g.Height }

// Cells lists every cell in row-major order (y outer, x inner).
func (g Grid) Cells() []Point {
	out := make([]Point, 0, g.Size())
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			out = append(out, Point{X: x, Y: y})
		}
	}
	return out
}

// InitialBody lays out a straight horizontal segment of length cells centred
// on the grid, tail on the left and head on the right.
func InitialBody(g Grid, length int) (*Body, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if length <= 0 || length >= g.Width {
		return nil, fmt.Errorf("%w: %d not in (0, %d)", ErrInvalidLength, length, g.Width)
	}

	x0 := (g.Width - length) / 2
	y := g.Height / 2
	cells := make([]Point, length)
	for i := range cells {
		cells[i] = Point{X: x0 + i, Y: y}
	}
	return NewBody(cells...), nil
}
