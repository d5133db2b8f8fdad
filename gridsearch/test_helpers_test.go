package gridsearch_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/gridsearch"
)

// newGrid builds a grid, paints walls and fails the test on any error.
func newGrid(t testing.TB, columns, rows int, start, goal gridsearch.Coord, walls ...gridsearch.Coord) *gridsearch.Grid {
	t.Helper()
	g, err := gridsearch.NewGrid(columns, rows, start, goal)
	require.NoError(t, err)
	for _, w := range walls {
		require.NoError(t, g.ToggleWall(w.I, w.J, true))
	}
	return g
}

// c is shorthand for a coordinate literal.
func c(i, j int) gridsearch.Coord { return gridsearch.Coord{I: i, J: j} }

// detourWalls blocks row 2 of a 5×5 grid except for column 4.
//
//	S . . . .
//	. . . . .
//	# # # # .
//	. . . . .
//	G . . . .
func detourWalls() []gridsearch.Coord {
	return []gridsearch.Coord{c(0, 2), c(1, 2), c(2, 2), c(3, 2)}
}

// trapWalls is column 3 of a 5×5 grid open only at the top row.
// With start (0,2) and goal (4,3), greedy search heads straight at the wall.
//
//	. . . . .
//	. . . # .
//	S . . # .
//	. . . # G
//	. . . # .
func trapWalls() []gridsearch.Coord {
	return []gridsearch.Coord{c(3, 1), c(3, 2), c(3, 3), c(3, 4)}
}

// randomWalls paints roughly density×cells walls, skipping the markers.
func randomWalls(t testing.TB, g *gridsearch.Grid, r *rand.Rand, density float64) {
	t.Helper()
	for j := 0; j < g.Rows(); j++ {
		for i := 0; i < g.Columns(); i++ {
			if r.Float64() < density {
				require.NoError(t, g.ToggleWall(i, j, true))
			}
		}
	}
}

// shortestCost is an independent Dijkstra over the grid's neighbour lists,
// used to check CostFirst results. ok is false when goal is unreachable.
func shortestCost(t testing.TB, g *gridsearch.Grid) (uint, bool) {
	t.Helper()
	const inf = ^uint(0)
	dist := map[gridsearch.Coord]uint{}
	done := map[gridsearch.Coord]bool{}
	for j := 0; j < g.Rows(); j++ {
		for i := 0; i < g.Columns(); i++ {
			dist[c(i, j)] = inf
		}
	}
	dist[g.Start()] = 0
	for {
		var u gridsearch.Coord
		best := inf
		for k, d := range dist {
			if !done[k] && d < best {
				u, best = k, d
			}
		}
		if best == inf {
			return 0, false
		}
		if u == g.Goal() {
			return best, true
		}
		done[u] = true
		nbs, err := g.Neighbours(u.I, u.J)
		require.NoError(t, err)
		for _, v := range nbs {
			if nd := best + gridsearch.MovementCost(u, v); nd < dist[v] {
				dist[v] = nd
			}
		}
	}
}

// nodeState captures every observable per-node field.
type nodeState struct {
	G, F, H uint
	From    gridsearch.Coord
	HasFrom bool
	Wall    bool
	Open    bool
	Closed  bool
}

// runState captures the observable state of a grid and its active run.
type runState struct {
	Requested, Executed uint
	Outcome             gridsearch.Outcome
	Nodes               []nodeState
}

func capture(t testing.TB, g *gridsearch.Grid) runState {
	t.Helper()
	st := runState{
		Requested: g.RequestedSteps(),
		Executed:  g.ExecutedSteps(),
		Outcome:   g.Outcome(),
	}
	for j := 0; j < g.Rows(); j++ {
		for i := 0; i < g.Columns(); i++ {
			n, err := g.Node(i, j)
			require.NoError(t, err)
			from, has, err := g.CameFrom(i, j)
			require.NoError(t, err)
			open, err := g.InOpenSet(i, j)
			require.NoError(t, err)
			closed, err := g.InClosedSet(i, j)
			require.NoError(t, err)
			st.Nodes = append(st.Nodes, nodeState{
				G: n.GCost(), F: n.FCost(), H: n.Heuristic(),
				From: from, HasFrom: has, Wall: n.IsWall(),
				Open: open, Closed: closed,
			})
		}
	}
	return st
}
