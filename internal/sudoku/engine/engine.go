package engine

// Solve is the package's single entry point: given a starting grid and a
// Config, it drives the sequential solver, escalating to the work
// distributor if a Backtrace split occurs at the top level (spec.md §1,
// "the solver interacts with the outside world only through (a) a puzzle
// + rules input, (b) a configuration object, (c) an optional progress
// callback, and (d) returning a result value").
func Solve(grid Grid, config Config, progress func(float64)) Output {
	config = config.WithRules(config.Rules)
	state := NewState(grid)
	buf := NewBuffer(state)

	reporter := NewReporter(progress)
	result := buf.Solve(&config, reporter, nil)
	if result.Kind != OutputJobs {
		return result
	}

	dist := NewDistributorFromJobs(result.Jobs, &config)
	outputs := dist.Run(&config, progress)
	return mergeOutputs(outputs, config.Target)
}

// mergeOutputs combines the per-job Outputs a distributor run collected
// into a single caller-facing Output (spec.md §4.7: List accumulates
// every discovered grid; Sudoku/Steps take the first solved job).
func mergeOutputs(outputs []Output, target Target) Output {
	if target == TargetList {
		var grids []Grid
		for _, o := range outputs {
			switch o.Kind {
			case OutputList:
				grids = append(grids, o.Grids...)
			case OutputSolution:
				grids = append(grids, o.Grid)
			}
			if len(grids) >= ListCap {
				grids = grids[:ListCap]
				break
			}
		}
		if len(grids) == 0 {
			return Output{Kind: OutputInvalid}
		}
		return Output{Kind: OutputList, Grids: grids}
	}

	for _, o := range outputs {
		if o.Kind == OutputSolution || o.Kind == OutputSteps {
			return o
		}
	}
	for _, o := range outputs {
		if o.Kind == OutputIncomplete {
			return o
		}
	}
	return Output{Kind: OutputInvalid}
}
