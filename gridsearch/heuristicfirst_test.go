package gridsearch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/gridsearch"
)

// TestHeuristicFirst_LongerThanCostFirst runs both strategies on the same
// grid, where greedy search runs at a wall before climbing over it.
func TestHeuristicFirst_LongerThanCostFirst(t *testing.T) {
	run := func(kind gridsearch.StrategyKind) ([]gridsearch.Coord, uint) {
		g := newGrid(t, 5, 5, c(0, 2), c(4, 3), trapWalls()...)
		require.NoError(t, g.SelectStrategy(kind))
		require.NoError(t, g.ToEnd())
		require.Equal(t, gridsearch.Converged, g.Outcome())
		path, ok := g.Path()
		require.True(t, ok)
		cost, ok := g.PathCost()
		require.True(t, ok)
		return path, cost
	}

	optimal, optimalCost := run(gridsearch.CostFirst)
	greedy, greedyCost := run(gridsearch.HeuristicFirst)

	assert.Equal(t, []gridsearch.Coord{
		c(0, 2), c(1, 2), c(2, 1), c(3, 0), c(4, 1), c(4, 2), c(4, 3),
	}, optimal)
	assert.Equal(t, uint(72), optimalCost)

	assert.Equal(t, []gridsearch.Coord{
		c(0, 2), c(1, 3), c(2, 2), c(2, 1), c(3, 0), c(4, 1), c(4, 2), c(4, 3),
	}, greedy)
	assert.Equal(t, uint(86), greedyCost)

	assert.Greater(t, len(greedy)-1, len(optimal)-1, "greedy path must take more steps")
}

// TestHeuristicFirst_FirstPointerWins: a node keeps its first back-pointer even
// when a later expansion offers a cheaper one.
func TestHeuristicFirst_FirstPointerWins(t *testing.T) {
	g := newGrid(t, 5, 5, c(0, 2), c(4, 3), trapWalls()...)
	require.NoError(t, g.SelectStrategy(gridsearch.HeuristicFirst))
	require.NoError(t, g.ToEnd())

	// (2,2) was discovered from (1,3) and keeps that pointer although (1,2)
	// is one orthogonal move away from start.
	from, has, err := g.CameFrom(2, 2)
	require.NoError(t, err)
	require.True(t, has)
	assert.Equal(t, c(1, 3), from)

	gc, err := g.GCost(2, 2)
	require.NoError(t, err)
	assert.Equal(t, gridsearch.DiagonalCost*2, gc)
}

// TestHeuristicFirst_FewerExpansions: on an open grid greedy goes straight for the goal.
func TestHeuristicFirst_FewerExpansions(t *testing.T) {
	g := newGrid(t, 5, 5, c(0, 0), c(4, 4))
	require.NoError(t, g.SelectStrategy(gridsearch.HeuristicFirst))
	require.NoError(t, g.ToEnd())

	assert.Equal(t, uint(4), g.ExecutedSteps())
	path, ok := g.Path()
	require.True(t, ok)
	assert.Len(t, path, 5)
}
