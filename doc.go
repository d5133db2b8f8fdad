// Command gridsearch drives a stepwise grid pathfinding engine from the
// terminal: paint walls, move the start and goal markers, pick a strategy
// and step the search forwards or backwards one expansion at a time.
//
// What is in here?
//
//	gridsearch/  the engine: Grid, Nodes, 8-connected adjacency, CostFirst (A*)
//	             and HeuristicFirst (greedy) strategies, replay-based stepping
//	scenario/    YAML scenario files, the line command language, JSON snapshots
//	logging/     slog setup (stderr or append-only file)
//	cmd/         cobra commands: run, session, watch, version
//
// Quick ASCII example (5×5, S=start, G=goal, #=wall):
//
//	S . . . .
//	. . . . .
//	# # # # .
//	. . . . .
//	G . . . .
//
//	gridsearch run detour.yaml   # path (0,0)…(4,2)…(0,4), cost 96
//
// Config is read from ./gridsearch.config.{yaml,json,toml} or --config, and
// from GRIDSEARCH_* environment variables.
//
//	go install github.com/katalvlaran/gridsearch@latest
package main
