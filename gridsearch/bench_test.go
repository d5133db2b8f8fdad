package gridsearch_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridsearch/gridsearch"
)

// benchGrid builds a 20×20 grid with ~25% walls from a fixed seed.
func benchGrid(b *testing.B, kind gridsearch.StrategyKind) *gridsearch.Grid {
	b.Helper()
	r := rand.New(rand.NewSource(42))
	g := newGrid(b, gridsearch.MaxDimension, gridsearch.MaxDimension, c(0, 0), c(19, 19))
	randomWalls(b, g, r, 0.25)
	if err := g.SelectStrategy(kind); err != nil {
		b.Fatalf("SelectStrategy: %v", err)
	}
	return g
}

// BenchmarkToEnd_CostFirst measures a full replay on the largest grid.
func BenchmarkToEnd_CostFirst(b *testing.B) {
	g := benchGrid(b, gridsearch.CostFirst)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.ToEnd()
	}
}

// BenchmarkToEnd_HeuristicFirst measures a full greedy replay on the largest grid.
func BenchmarkToEnd_HeuristicFirst(b *testing.B) {
	g := benchGrid(b, gridsearch.HeuristicFirst)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.ToEnd()
	}
}

// BenchmarkToggleWall measures a rebuild plus replay at a fixed step budget.
func BenchmarkToggleWall(b *testing.B) {
	g := benchGrid(b, gridsearch.CostFirst)
	for k := 0; k < 50; k++ {
		_ = g.StepForward()
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.ToggleWall(10, 10, i%2 == 0)
	}
}
