package zerosum_test

import (
	"testing"

	"github.com/katalvlaran/minimax/builder"
	"github.com/katalvlaran/minimax/zerosum"
)

// benchmarkSolve generates one reproducible game of the given shape and
// solves it repeatedly. Generation happens before the timer starts.
func benchmarkSolve(b *testing.B, rows, cols int, seed int64) {
	b.Helper()

	payoff, err := builder.RandomGame(rows, cols, builder.WithSeed(seed))
	if err != nil {
		b.Fatalf("RandomGame(%d, %d): %v", rows, cols, err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := zerosum.Solve(payoff); err != nil {
			b.Fatalf("Solve: %v", err)
		}
	}
}

func BenchmarkSolve_Small(b *testing.B)  { benchmarkSolve(b, 4, 4, 1) }
func BenchmarkSolve_Medium(b *testing.B) { benchmarkSolve(b, 8, 8, 2) }
func BenchmarkSolve_Large(b *testing.B)  { benchmarkSolve(b, 16, 16, 3) }
