package scenario_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/gridsearch"
	"github.com/katalvlaran/gridsearch/scenario"
)

// TestParseCommand covers every operation and its aliases.
func TestParseCommand(t *testing.T) {
	cases := []struct {
		line string
		want scenario.Command
	}{
		{"step", scenario.Command{Op: scenario.OpStepForward, Count: 1}},
		{"step-forward 4", scenario.Command{Op: scenario.OpStepForward, Count: 4}},
		{"back 2", scenario.Command{Op: scenario.OpStepBackward, Count: 2}},
		{"step-backward", scenario.Command{Op: scenario.OpStepBackward, Count: 1}},
		{"to-start", scenario.Command{Op: scenario.OpToStart, Count: 1}},
		{"END", scenario.Command{Op: scenario.OpToEnd, Count: 1}},
		{"wall 1 2", scenario.Command{Op: scenario.OpWall, Count: 1, Cell: scenario.Cell{I: 1, J: 2}, Wall: true}},
		{"wall 1 2 off", scenario.Command{Op: scenario.OpWall, Count: 1, Cell: scenario.Cell{I: 1, J: 2}}},
		{"unwall 3 4", scenario.Command{Op: scenario.OpWall, Count: 1, Cell: scenario.Cell{I: 3, J: 4}}},
		{"start 0 1", scenario.Command{Op: scenario.OpStart, Count: 1, Cell: scenario.Cell{I: 0, J: 1}}},
		{"goal 7 7", scenario.Command{Op: scenario.OpGoal, Count: 1, Cell: scenario.Cell{I: 7, J: 7}}},
		{"strategy greedy", scenario.Command{Op: scenario.OpStrategy, Count: 1, Strategy: gridsearch.HeuristicFirst}},
		{"clear-walls", scenario.Command{Op: scenario.OpClearWalls, Count: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.line, func(t *testing.T) {
			got, err := scenario.ParseCommand(tc.line)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestParseCommand_Errors covers malformed lines.
func TestParseCommand_Errors(t *testing.T) {
	cases := []struct {
		line string
		err  error
	}{
		{"", scenario.ErrBadCommand},
		{"fly 1 2", scenario.ErrBadCommand},
		{"step 0", scenario.ErrBadCommand},
		{"step x", scenario.ErrBadCommand},
		{"step 1 2", scenario.ErrBadCommand},
		{"to-end now", scenario.ErrBadCommand},
		{"wall 1 2 maybe", scenario.ErrBadCommand},
		{"wall 1", scenario.ErrBadCoord},
		{"start a 1", scenario.ErrBadCoord},
		{"goal 1 b", scenario.ErrBadCoord},
		{"strategy", scenario.ErrBadCommand},
		{"strategy bfs", gridsearch.ErrUnknownStrategy},
	}
	for _, tc := range cases {
		t.Run(tc.line, func(t *testing.T) {
			_, err := scenario.ParseCommand(tc.line)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

// TestApply runs parsed commands against a grid.
func TestApply(t *testing.T) {
	g, err := gridsearch.NewGrid(5, 5, gridsearch.Coord{}, gridsearch.Coord{I: 4, J: 4})
	require.NoError(t, err)

	run := func(line string) error {
		cmd, err := scenario.ParseCommand(line)
		require.NoError(t, err)
		return cmd.Apply(g)
	}

	require.ErrorIs(t, run("step"), gridsearch.ErrNoStrategySelected)
	require.NoError(t, run("strategy cost-first"))
	require.NoError(t, run("step 3"))
	assert.Equal(t, uint(3), g.RequestedSteps())
	require.NoError(t, run("back 5"))
	assert.Zero(t, g.RequestedSteps())

	require.NoError(t, run("wall 2 2"))
	wall, _ := g.IsWall(2, 2)
	assert.True(t, wall)
	require.NoError(t, run("unwall 2 2"))
	wall, _ = g.IsWall(2, 2)
	assert.False(t, wall)

	require.NoError(t, run("goal 3 0"))
	require.NoError(t, run("start 0 3"))
	require.NoError(t, run("to-end"))
	assert.Equal(t, gridsearch.Converged, g.Outcome())
	require.NoError(t, run("to-start"))
	assert.Zero(t, g.RequestedSteps())

	require.NoError(t, run("wall 1 1"))
	require.NoError(t, run("clear"))
	assert.Empty(t, g.Walls())
}
