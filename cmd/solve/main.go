// Command solve reads one or more 81-character puzzle strings and prints
// the result of running them through the engine. Grounded on the
// original's solver/src/bin/solver.rs (read puzzles from a file argument,
// time the batch, print a summary) but reshaped around the new engine's
// Config/Output types and the single-puzzle arg style of the teacher's
// own cmd/test_puzzle.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"time"

	"sudoku-api/internal/sudoku/engine"
)

func main() {
	steps := flag.Bool("steps", false, "print the full deduction trace instead of the final grid")
	list := flag.Bool("list", false, "enumerate every solution instead of returning the first")
	workers := flag.Int("workers", 0, "worker pool size (0 = default)")
	maxSplits := flag.Int("max-splits", 0, "bound on the product of backtrace split fan-outs (0 = never split)")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		runBatch(*steps, *list, *workers, *maxSplits)
		return
	}

	cfg := buildConfig(*steps, *list, *workers, *maxSplits)
	for _, puzzle := range args {
		solveOne(puzzle, cfg)
	}
}

func buildConfig(steps, list bool, workers, maxSplits int) engine.Config {
	cfg := engine.DefaultConfig()
	switch {
	case list:
		cfg.Target = engine.TargetList
	case steps:
		cfg.Target = engine.TargetSteps
	default:
		cfg.Target = engine.TargetSudoku
	}
	cfg.Workers = workers
	if maxSplits > 0 {
		cfg.MaxSplits = &maxSplits
	}
	return cfg
}

func solveOne(puzzle string, cfg engine.Config) {
	grid, err := engine.ParsePuzzle(puzzle)
	if err != nil {
		fmt.Fprintf(os.Stderr, "solve: %v\n", err)
		os.Exit(1)
	}

	start := time.Now()
	out := engine.Solve(grid, cfg, nil)
	elapsed := time.Since(start)

	switch out.Kind {
	case engine.OutputSolution:
		fmt.Println(engine.FormatGrid(out.Grid))
	case engine.OutputSteps:
		fmt.Println(engine.FormatGrid(out.Solve.Final))
		for i, step := range out.Solve.Steps {
			fmt.Printf("%4d %-9s %v\n", i, step.Tech, step.Mod.Targets)
		}
	case engine.OutputList:
		for _, g := range out.Grids {
			fmt.Println(engine.FormatGrid(g))
		}
		fmt.Fprintf(os.Stderr, "%d solutions\n", len(out.Grids))
	case engine.OutputIncomplete:
		fmt.Fprintf(os.Stderr, "incomplete: %s\n", engine.FormatGrid(out.Grid))
	default:
		fmt.Fprintln(os.Stderr, "invalid")
	}
	fmt.Fprintf(os.Stderr, "%s\n", elapsed)
}

// runBatch reads one puzzle per line from stdin, solving each and printing
// every solution grid, then the number of puzzles read and the elapsed
// time, mirroring the original's file-of-puzzles mode.
func runBatch(steps, list bool, workers, maxSplits int) {
	cfg := buildConfig(steps, list, workers, maxSplits)
	start := time.Now()
	scanner := bufio.NewScanner(os.Stdin)
	count := 0
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) != 81 {
			continue
		}
		grid, err := engine.ParsePuzzle(line)
		if err != nil {
			continue
		}
		out := engine.Solve(grid, cfg, nil)
		if out.Kind == engine.OutputSolution {
			fmt.Println(engine.FormatGrid(out.Grid))
		}
		count++
	}
	fmt.Fprintf(os.Stderr, "solved %d puzzles in %s\n", count, time.Since(start))
}
