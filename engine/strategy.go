package engine

import (
	"errors"
	"fmt"
	"sort"

	"github.com/brensch/pathsnake/game"
	"github.com/brensch/pathsnake/rules"
	"github.com/brensch/pathsnake/search"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

// View is the read-only state a Strategy plans against.
type View struct {
	Grid   game.Grid
	Body   game.Occupancy
	Head   game.Point
	Target game.Point
}

// Strategy is a move source: given the board it names the next head cell.
// ok is false when it has no move to offer.
type Strategy interface {
	Name() string
	Plan(v View) (next game.Point, steps int, ok bool)
}

// Searcher adapts a path search into a Strategy.
type Searcher struct {
	name string
	find func(head game.Point, obstacles game.Occupancy, target game.Point, g game.Grid) (search.Path, bool)
}

func (s Searcher) Name() string { return s.name }

func (s Searcher) Plan(v View) (game.Point, int, bool) {
	path, ok := s.find(v.Head, v.Body, v.Target, v.Grid)
	if !ok {
		return game.Point{}, 0, false
	}
	next, ok := path.Next()
	return next, path.Len(), ok
}

// ShortestPath chases the target along a breadth-first shortest route. It
// keeps no state and may be shared between engines.
var ShortestPath Strategy = Searcher{name: "shortest", find: search.ShortestPath}

// RouteFollower plans a widened route to the target once and walks it one
// cell per tick. Replanning from every new head splices fresh detours in
// front of the target and the snake never arrives.
//
// A RouteFollower remembers its route, so every engine needs its own.
type RouteFollower struct {
	route  search.Path
	target game.Point
}

func NewLongestPath() *RouteFollower { return &RouteFollower{} }

func (f *RouteFollower) Name() string { return "longest" }

// Plan continues the stored route while it still starts at the head, leads
// to the same target and its next cell is safe. Otherwise it replans.
func (f *RouteFollower) Plan(v View) (game.Point, int, bool) {
	if !f.follows(v) {
		path, ok := search.LongestPath(v.Head, v.Body, v.Target, v.Grid)
		if !ok {
			f.route = nil
			return game.Point{}, 0, false
		}
		f.route, f.target = path, v.Target
	}

	next, ok := f.route.Next()
	if !ok {
		f.route = nil
		return game.Point{}, 0, false
	}
	steps := f.route.Len()
	f.route = f.route[1:]
	return next, steps, true
}

func (f *RouteFollower) follows(v View) bool {
	if len(f.route) < 2 || f.route[0] != v.Head || f.target != v.Target {
		return false
	}
	return rules.IsSafe(v.Grid, v.Body, f.route[1])
}

var strategies = map[string]func() Strategy{
	ShortestPath.Name(): func() Strategy { return ShortestPath },
	"longest":           func() Strategy { return NewLongestPath() },
}

// StrategyByName resolves a configured strategy name to a fresh strategy.
func StrategyByName(name string) (Strategy, error) {
	build, ok := strategies[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknownStrategy, name, StrategyNames())
	}
	return build(), nil
}

func StrategyNames() []string {
	names := make([]string, 0, len(strategies))
	for n := range strategies {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
