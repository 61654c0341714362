package game

import (
	"testing"
)

func TestBody_HeadTailOrder(t *testing.T) {
	b := NewBody(Point{0, 0}, Point{0, 1}, Point{0, 2})
	if b.Head() != (Point{0, 2}) {
		t.Fatalf("head=%v want=(0,2)", b.Head())
	}
	if b.Tail() != (Point{0, 0}) {
		t.Fatalf("tail=%v want=(0,0)", b.Tail())
	}
	if b.Len() != 3 {
		t.Fatalf("len=%d want=3", b.Len())
	}
}

func TestBody_ContainsExcludingTail(t *testing.T) {
	b := NewBody(Point{0, 0}, Point{0, 1}, Point{0, 2})

	if !b.Contains(Point{0, 0}, false) {
		t.Fatalf("tail should be occupied without exclusion")
	}
	if b.Contains(Point{0, 0}, true) {
		t.Fatalf("tail should be free with exclusion")
	}
	if !b.Contains(Point{0, 1}, true) {
		t.Fatalf("middle cell must stay occupied with exclusion")
	}
	if b.Contains(Point{3, 3}, false) {
		t.Fatalf("free cell reported occupied")
	}
}

func TestBody_ExtendShrinkMoves(t *testing.T) {
	b := NewBody(Point{1, 1}, Point{2, 1}, Point{3, 1})
	b.Extend(Point{4, 1})
	b.Shrink()

	got := b.Cells()
	want := []Point{{2, 1}, {3, 1}, {4, 1}}
	if len(got) != len(want) {
		t.Fatalf("body len=%d want=%d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("body[%d]=%v want=%v", i, got[i], want[i])
		}
	}
	if b.Contains(Point{1, 1}, false) {
		t.Fatalf("vacated tail still occupied")
	}
}

func TestBody_StepIntoVacatingTail(t *testing.T) {
	// A 2x2 loop: the head moves onto the cell the tail leaves this tick.
	b := NewBody(Point{0, 0}, Point{0, 1}, Point{1, 1}, Point{1, 0})
	b.Extend(Point{0, 0})
	b.Shrink()

	if b.Head() != (Point{0, 0}) {
		t.Fatalf("head=%v want=(0,0)", b.Head())
	}
	if !b.Contains(Point{0, 0}, false) {
		t.Fatalf("head cell lost from occupancy after shrinking the old tail")
	}
	if b.Len() != 4 {
		t.Fatalf("len=%d want=4", b.Len())
	}
}

func TestBody_CellsIsCopy(t *testing.T) {
	b := NewBody(Point{0, 0}, Point{1, 0})
	cells := b.Cells()
	cells[0] = Point{9, 9}
	if b.Tail() != (Point{0, 0}) {
		t.Fatalf("Cells shares storage with body")
	}
}

func TestBody_ContractViolationsPanic(t *testing.T) {
	cases := []struct {
		name string
		fn   func()
	}{
		{"empty", func() { NewBody() }},
		{"duplicate", func() { NewBody(Point{0, 0}, Point{0, 0}) }},
		{"shrink-last", func() { NewBody(Point{0, 0}).Shrink() }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic")
				}
			}()
			tc.fn()
		})
	}
}
