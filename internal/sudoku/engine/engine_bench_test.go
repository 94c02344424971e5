package engine

import "testing"

// BenchmarkSolve mirrors the original's benches/bench_solver.rs, timing a
// full solve of one of the seed puzzles under the default configuration
// (SPEC_FULL.md §C.3).
func BenchmarkSolve(b *testing.B) {
	puzzle := "9.4.728.....8.36..8..9.....6.9....1..83..7.....7.....22...385.....729..6...6....."
	grid, err := ParsePuzzle(puzzle)
	if err != nil {
		b.Fatalf("ParsePuzzle: %v", err)
	}
	cfg := DefaultConfig()
	cfg.Target = TargetSudoku

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Solve(grid, cfg, nil)
	}
}
