package game

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Occupancy is the read-only view of a body that searches borrow.
type Occupancy interface {
	// Contains reports whether p is occupied. With excludingTail the tail cell
	// counts as free, since it vacates on a move that does not grow.
	Contains(p Point, excludingTail bool) bool
}

// Body is the snake's occupied cells, tail first and head last.
// Cells are distinct; the set mirrors the slice for O(1) membership.
type Body struct {
	cells []Point
	occ   mapset.Set[Point]
}

// NewBody builds a body from cells given tail first. It panics on an empty
// or self-overlapping layout.
func NewBody(cells ...Point) *Body {
	if len(cells) == 0 {
		panic("game: empty body")
	}
	b := &Body{
		cells: make([]Point, 0, len(cells)),
		occ:   mapset.New[Point](),
	}
	for _, c := range cells {
		if b.occ.Has(c) {
			panic(fmt.Sprintf("game: duplicate body cell %v", c))
		}
		b.Extend(c)
	}
	return b
}

func (b *Body) Head() Point {
	if len(b.cells) == 0 {
		panic("game: head of empty body")
	}
	return b.cells[len(b.cells)-1]
}

func (b *Body) Tail() Point {
	if len(b.cells) == 0 {
		panic("game: tail of empty body")
	}
	return b.cells[0]
}

func (b *Body) Len() int { return len(b.cells) }

func (b *Body) Contains(p Point, excludingTail bool) bool {
	if excludingTail && len(b.cells) > 0 && p == b.cells[0] {
		return false
	}
	return b.occ.Has(p)
}

// Extend appends p as the new head. Legality is the caller's concern.
func (b *Body) Extend(p Point) {
	b.cells = append(b.cells, p)
	b.occ.Put(p)
}

// Shrink drops the tail cell.
func (b *Body) Shrink() {
	if len(b.cells) <= 1 {
		panic("game: shrink would empty body")
	}
	tail := b.cells[0]
	b.cells = b.cells[1:]
	// A head that just stepped into the vacating tail cell shares its value.
	if tail != b.cells[len(b.cells)-1] {
		b.occ.Remove(tail)
	}
}

// Cells returns a copy of the body, tail first.
func (b *Body) Cells() []Point {
	out := make([]Point, len(b.cells))
	copy(out, b.cells)
	return out
}
