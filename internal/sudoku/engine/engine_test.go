package engine

import "testing"

func solveString(t *testing.T, puzzle string, cfg Config) Output {
	t.Helper()
	grid, err := ParsePuzzle(puzzle)
	if err != nil {
		t.Fatalf("ParsePuzzle(%q): %v", puzzle, err)
	}
	return Solve(grid, cfg, nil)
}

func TestSeedsSolveToExpectedGrid(t *testing.T) {
	seeds := []struct {
		name     string
		puzzle   string
		expected string
	}{
		{
			"S1",
			"9.4.728.....8.36..8..9.....6.9....1..83..7.....7.....22...385.....729..6...6.....",
			"964572831172843659835961274629485713483217965517396482246138597358729146791654328",
		},
		{
			"S2",
			"..61.4.9.35...9......25.........5..8......2...324...718...9.3...95...7...4.7.1...",
			"726134895358679142419258637971325468684917253532486971867592314195843726243761589",
		},
		{
			"S3",
			"...6..8....35.4...65..217...6..............5..7138..2...7.1.6.4.1.......9....3..7",
			"742639815183574269659821743365192478298746351471385926537218694814967532926453187",
		},
	}

	for _, seed := range seeds {
		seed := seed
		t.Run(seed.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Target = TargetSudoku
			out := solveString(t, seed.puzzle, cfg)
			if out.Kind != OutputSolution {
				t.Fatalf("kind = %v, want OutputSolution", out.Kind)
			}
			if got := FormatGrid(out.Grid); got != seed.expected {
				t.Fatalf("solution = %s, want %s", got, seed.expected)
			}
		})
	}
}

// TestSeedS6AlreadySolvedIsIdempotent covers spec.md §8 invariant 4: the
// driver on an already-solved grid terminates with Solved and produces no
// non-trivial StateMods.
func TestSeedS6AlreadySolvedIsIdempotent(t *testing.T) {
	solved := "964572831172843659835961274629485713483217965517396482246138597358729146791654328"
	cfg := DefaultConfig()
	cfg.Target = TargetSteps
	out := solveString(t, solved, cfg)
	if out.Kind != OutputSteps {
		t.Fatalf("kind = %v, want OutputSteps", out.Kind)
	}
	for _, step := range out.Solve.Steps {
		for _, target := range step.Mod.Targets {
			if target.Kind != TargetTouch {
				t.Fatalf("unexpected non-trivial mod on solved grid: %+v", step.Mod)
			}
		}
	}
}

func TestSeedS4ListModeFindsAllSolutions(t *testing.T) {
	puzzle := "....27....1...4.....9..57...8....3..5..9..1......32...6.1....4...8....9.....4.6.5"
	cfg := DefaultConfig()
	cfg.Target = TargetList
	out := solveString(t, puzzle, cfg)
	if out.Kind != OutputList {
		t.Fatalf("kind = %v, want OutputList", out.Kind)
	}
	if len(out.Grids) != 235 {
		t.Fatalf("len(Grids) = %d, want 235", len(out.Grids))
	}
}

func TestSeedS5KillerAllEmptyGrid(t *testing.T) {
	cages := []int{20, 27, 26, 24, 28, 17, 18, 30, 16, 24}
	var cageOf [TotalCells]int
	// Placeholder layout: cell i belongs to cage (i % 10) + 1. The test
	// asserts only that the solve ends in a List or Solution output; it
	// does not check uniqueness or cage sums.
	for i := range cageOf {
		cageOf[i] = (i % 10) + 1
	}
	rules, err := NewRules(cages, cageOf)
	if err != nil {
		t.Fatalf("NewRules: %v", err)
	}

	var grid Grid
	cfg := DefaultConfig()
	cfg.Target = TargetList
	cfg = cfg.WithRules(rules)
	out := Solve(grid, cfg, nil)

	if out.Kind != OutputList && out.Kind != OutputSolution {
		t.Fatalf("kind = %v, want OutputList or OutputSolution", out.Kind)
	}
}

func TestCageSubsetGenerator(t *testing.T) {
	cases := []struct {
		k, s, want int
	}{
		{1, 5, 1},
		{2, 17, 1},
		{3, 6, 1},
		{3, 24, 1},
		{9, 45, 1},
		{4, 10, 1},
		{5, 26, 11},
	}
	for _, c := range cases {
		got := KSubsetsSumming(c.k, c.s)
		if len(got) != c.want {
			t.Errorf("KSubsetsSumming(%d, %d) = %d subsets, want %d", c.k, c.s, len(got), c.want)
		}
	}
}

func TestCandidatesBitset(t *testing.T) {
	c := NewCandidates(1, 4, 9)
	if c.Count() != 3 {
		t.Fatalf("Count() = %d, want 3", c.Count())
	}
	if !c.Has(4) || c.Has(5) {
		t.Fatalf("Has() mismatch: %v", c)
	}
	c = c.Clear(4)
	if c.Has(4) {
		t.Fatalf("Clear(4) left 4 set")
	}
	single := NewCandidates(7)
	if d, ok := single.Only(); !ok || d != 7 {
		t.Fatalf("Only() = (%d, %v), want (7, true)", d, ok)
	}
}

func TestMakeNextRestartsOnChange(t *testing.T) {
	cfg := DefaultConfig()
	state := &State{}
	state.Info.Entry.Change = true
	if next := makeNext(Single, state, &cfg); next != cfg.Base {
		t.Fatalf("makeNext after change = %v, want Base", next)
	}
}

func TestMakeNextEscalatesToFallback(t *testing.T) {
	cfg := DefaultConfig()
	state := &State{}
	state.Grid = [TotalCells]int{}
	for i := range state.Grid {
		state.Grid[i] = 1
	}
	state.Grid[0] = 0 // not solved
	last := cfg.Solvers[len(cfg.Solvers)-1]
	if next := makeNext(last, state, &cfg); next != *cfg.Fallback {
		t.Fatalf("makeNext at end of solvers = %v, want fallback %v", next, *cfg.Fallback)
	}
}

func TestWithRulesPrependsCage(t *testing.T) {
	cfg := DefaultConfig()
	rules, err := NewRules([]int{10}, [TotalCells]int{0: 1})
	if err != nil {
		t.Fatalf("NewRules: %v", err)
	}
	cfg = cfg.WithRules(rules)
	if cfg.Solvers[0] != Cage {
		t.Fatalf("Solvers[0] = %v, want Cage", cfg.Solvers[0])
	}
}
