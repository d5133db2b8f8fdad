// Package gridsearch is a stepwise pathfinding engine over a bounded 2D grid.
//
// What:
//
//   - Grid holds columns×rows Nodes (at most MaxDimension per side), movable
//     Start and Goal markers, wall flags, and the active search strategy.
//   - Cells link to all eight surrounding non-wall cells; links are symmetric.
//   - Each Node carries a Manhattan heuristic to the goal, g/f costs and a
//     back-pointer (cameFrom) written by the active strategy.
//   - Two strategies: CostFirst (A*, ranks by g+h, optimal) and
//     HeuristicFirst (greedy best-first, ranks by h, first back-pointer wins).
//
// Why:
//
//   - Teaching and visualisation: a UI paints walls, drags markers and steps
//     the search one expansion at a time, forwards and backwards, reading
//     node state after every command.
//
// Stepping:
//
//	Nothing is snapshotted. StepForward, StepBackward, ToStart and ToEnd change
//	the requested step count and replay the search from an empty frontier.
//	Expansion order depends only on node fields that are reset before each
//	replay, so "step back" always equals "run fresh to N-1". Ties between
//	equally ranked open nodes go to the smallest (i, j) lexicographically.
//
// Costs:
//
//	Orthogonal moves cost 10 and diagonal moves 14 (≈10·√2). Unreached nodes
//	hold InfCost.
//
// Complexity:
//
//   - Rebuild:  O(W×H) plus a replay.
//   - Replay:   O(N×W×H) for N expansions (linear scan of the frontier).
//   - Memory:   O(W×H).
//
// Errors:
//
//   - ErrInvalidIndex:       coordinate outside the grid.
//   - ErrInvalidPlacement:   marker onto a wall or onto the other marker.
//   - ErrNoStrategySelected: step command before SelectStrategy.
//   - ErrUnknownStrategy:    StrategyKind other than CostFirst/HeuristicFirst.
//   - ErrBadDimensions:      size outside [1, MaxDimension].
//
// Exhaustion (no path) is not an error: Outcome reports Exhausted and Path
// returns ok=false.
package gridsearch
