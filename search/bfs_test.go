package search

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brensch/pathsnake/game"
)

func pts(xy ...int) Path {
	out := make(Path, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, game.Point{X: xy[i], Y: xy[i+1]})
	}
	return out
}

func dump(g game.Grid, body *game.Body, target game.Point, path Path) string {
	f := &game.Frame{Grid: g, Body: body.Cells(), Target: &target}
	board := []byte(game.Render(f))
	// Mark the route with '+' where the cell is otherwise free.
	for _, c := range path {
		row := g.Height - 1 - c.Y
		idx := row*(g.Width+1) + c.X
		if board[idx] == '.' {
			board[idx] = '+'
		}
	}
	return string(board)
}

func cornerBody() *game.Body {
	return game.NewBody(game.Point{X: 0, Y: 0}, game.Point{X: 0, Y: 1}, game.Point{X: 0, Y: 2})
}

func TestShortestPath_Pinned5x5(t *testing.T) {
	g := game.Grid{Width: 5, Height: 5}
	body := cornerBody()
	target := game.Point{X: 3, Y: 3}

	path, ok := ShortestPath(body.Head(), body, target, g)
	require.True(t, ok)
	t.Logf("route:\n%s", dump(g, body, target, path))

	assert.Equal(t, pts(0, 2, 0, 3, 1, 3, 2, 3, 3, 3), path)
}

func TestShortestPath_Pinned8x8(t *testing.T) {
	g := game.Grid{Width: 8, Height: 8}
	body := cornerBody()
	target := game.Point{X: 3, Y: 3}

	path, ok := ShortestPath(body.Head(), body, target, g)
	require.True(t, ok)
	assert.Equal(t, pts(0, 2, 0, 3, 1, 3, 2, 3, 3, 3), path)
}

func TestShortestPath_FreeGridIsManhattan(t *testing.T) {
	g := game.Grid{Width: 9, Height: 7}
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 200; i++ {
		head := game.Point{X: rng.Intn(g.Width), Y: rng.Intn(g.Height)}
		target := game.Point{X: rng.Intn(g.Width), Y: rng.Intn(g.Height)}
		body := game.NewBody(head)

		path, ok := ShortestPath(head, body, target, g)
		require.True(t, ok, "%v -> %v", head, target)
		require.Equal(t, head.Manhattan(target), path.Len(), "%v -> %v", head, target)
		require.NoError(t, path.Validate(g))
		require.Equal(t, head, path[0])
		require.Equal(t, target, path[len(path)-1])
	}
}

func TestShortestPath_ShapeAroundBody(t *testing.T) {
	g := game.Grid{Width: 7, Height: 7}
	// An L-shaped wall between head and target.
	body := game.NewBody(
		game.Point{X: 1, Y: 5},
		game.Point{X: 2, Y: 5},
		game.Point{X: 3, Y: 5},
		game.Point{X: 3, Y: 4},
		game.Point{X: 3, Y: 3},
		game.Point{X: 3, Y: 2},
		game.Point{X: 2, Y: 2},
	)
	target := game.Point{X: 5, Y: 4}

	path, ok := ShortestPath(body.Head(), body, target, g)
	require.True(t, ok)
	t.Logf("route:\n%s", dump(g, body, target, path))

	require.NoError(t, path.Validate(g))
	assert.Equal(t, body.Head(), path[0])
	assert.Equal(t, target, path[len(path)-1])
	for _, c := range path[1:] {
		assert.False(t, body.Contains(c, true), "path crosses body at %v", c)
	}
}

func TestShortestPath_EnclosedTarget(t *testing.T) {
	g := game.Grid{Width: 5, Height: 5}
	body := game.NewBody(
		game.Point{X: 1, Y: 4},
		game.Point{X: 2, Y: 4},
		game.Point{X: 3, Y: 4},
		game.Point{X: 3, Y: 3},
		game.Point{X: 4, Y: 3},
		game.Point{X: 4, Y: 2},
		game.Point{X: 3, Y: 2},
	)
	target := game.Point{X: 4, Y: 4}
	t.Logf("board:\n%s", dump(g, body, target, nil))

	path, ok := ShortestPath(body.Head(), body, target, g)
	assert.False(t, ok)
	assert.Nil(t, path)
}

func TestShortestPath_TailCellIsPassable(t *testing.T) {
	g := game.Grid{Width: 4, Height: 1}
	body := game.NewBody(game.Point{X: 1, Y: 0}, game.Point{X: 2, Y: 0})

	path, ok := ShortestPath(body.Head(), body, game.Point{X: 0, Y: 0}, g)
	require.True(t, ok)
	assert.Equal(t, pts(2, 0, 1, 0, 0, 0), path)
}

func TestShortestPath_Deterministic(t *testing.T) {
	g := game.Grid{Width: 12, Height: 12}
	body := game.NewBody(game.Point{X: 5, Y: 5}, game.Point{X: 5, Y: 6}, game.Point{X: 6, Y: 6})
	target := game.Point{X: 1, Y: 10}

	first, ok := ShortestPath(body.Head(), body, target, g)
	require.True(t, ok)
	for i := 0; i < 10; i++ {
		again, _ := ShortestPath(body.Head(), body, target, g)
		require.Equal(t, first, again)
	}
}

func TestShortestPath_HeadIsTarget(t *testing.T) {
	g := game.Grid{Width: 3, Height: 3}
	head := game.Point{X: 1, Y: 1}
	path, ok := ShortestPath(head, game.NewBody(head), head, g)
	require.True(t, ok)
	assert.Equal(t, 0, path.Len())
	_, moves := path.Next()
	assert.False(t, moves)
}

func TestPathValidate(t *testing.T) {
	g := game.Grid{Width: 3, Height: 3}
	assert.NoError(t, pts(0, 0, 1, 0, 1, 1).Validate(g))
	assert.Error(t, pts(0, 0, 1, 1).Validate(g), "diagonal")
	assert.Error(t, pts(0, 0, 1, 0, 0, 0).Validate(g), "repeat")
	assert.Error(t, pts(2, 2, 3, 2).Validate(g), "off board")
}
