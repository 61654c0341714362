// render.go - ASCII board output for terminals, logs and tests.

package game

import (
	"fmt"
	"strings"
)

const (
	glyphFree   = '.'
	glyphBody   = 'o'
	glyphHead   = 'H'
	glyphTarget = '*'
)

// Render draws the frame top row first, one character per cell.
func Render(f *Frame) string {
	if f == nil || f.Grid.Width <= 0 || f.Grid.Height <= 0 {
		return "<empty board>\n"
	}

	grid := make([][]byte, f.Grid.Height)
	for y := range grid {
		grid[y] = []byte(strings.Repeat(string(glyphFree), f.Grid.Width))
	}
	put := func(p Point, c byte) {
		if f.Grid.InBounds(p) {
			grid[p.Y][p.X] = c
		}
	}

	if f.Target != nil {
		put(*f.Target, glyphTarget)
	}
	for i, p := range f.Body {
		if i == len(f.Body)-1 {
			put(p, glyphHead)
		} else {
			put(p, glyphBody)
		}
	}

	var sb strings.Builder
	for y := f.Grid.Height - 1; y >= 0; y-- {
		sb.Write(grid[y])
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Summary is the one-line status shown under a rendered board.
func Summary(f *Frame) string {
	if f == nil {
		return ""
	}
	s := fmt.Sprintf("turn %d  score %d  len %d  %s", f.Turn, f.Score, len(f.Body), f.Status)
	if f.Cause != "" {
		s += " (" + f.Cause + ")"
	}
	return s
}
