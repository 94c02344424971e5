package engine

// OutputKind tags the driver's result (spec.md §6).
type OutputKind int

const (
	OutputInvalid OutputKind = iota
	OutputSolution
	OutputIncomplete
	OutputSteps
	OutputList
	OutputJobs
)

// SolveJobs is the internal continuation a worker hands back to the
// distributor when a frame splits (spec.md §4.7, §6: "Jobs is an internal
// continuation ... callers outside the work distributor should not
// observe it").
type SolveJobs struct {
	Buffer     Buffer
	Entries    []Entry
	SplitDepth int
}

// Output is the tagged union the driver returns.
type Output struct {
	Kind  OutputKind
	Grid  Grid
	Grids []Grid
	Solve SolveTrace
	Jobs  *SolveJobs
}

// CancelFunc is polled once at the top of every driver tick (spec.md §5).
type CancelFunc func() bool

// makeNext computes the next technique to run after the current frame
// advanced without splitting or failing (spec.md §4.5).
func makeNext(cur Technique, state *State, config *Config) Technique {
	if cur == Init {
		return config.Base
	}
	if state.Grid.IsSolved() {
		return Solved
	}
	if state.Info.Entry.Change {
		return config.Base
	}
	if cur == config.Base {
		if len(config.Solvers) > 0 {
			return config.Solvers[0]
		}
		if config.Fallback != nil {
			return *config.Fallback
		}
		return Incomplete
	}
	for i, t := range config.Solvers {
		if t == cur {
			if i+1 < len(config.Solvers) {
				return config.Solvers[i+1]
			}
			break
		}
	}
	if config.Fallback != nil {
		return *config.Fallback
	}
	return Incomplete
}

// Solve runs the driver against buf until a terminal result, a split, or
// cancellation (spec.md §4.5, §5). It never panics across this boundary
// (spec.md §7): all failure modes map into Output.
func (b *Buffer) Solve(config *Config, reporter *Reporter, cancel CancelFunc) Output {
	var solutions []Grid

	for {
		if cancel != nil && cancel() {
			return incompleteOutput(b)
		}
		if b.Empty() {
			if b.LastGood != nil {
				return Output{Kind: OutputIncomplete, Grid: b.LastGood.Grid}
			}
			if len(solutions) > 0 {
				return Output{Kind: OutputList, Grids: solutions}
			}
			return Output{Kind: OutputInvalid}
		}

		top := b.Top()
		result := top.Tech.Advance(&top.State, config, reporter)

		switch result.Kind {
		case ResultSplit:
			parent := b.Clone()
			parent.Pop()
			return Output{Kind: OutputJobs, Jobs: &SolveJobs{
				Buffer:  parent,
				Entries: result.Children,
			}}

		case ResultInvalid:
			if !b.Rewind() {
				if len(solutions) > 0 {
					return Output{Kind: OutputList, Grids: solutions}
				}
				if b.LastGood != nil {
					return Output{Kind: OutputIncomplete, Grid: b.LastGood.Grid}
				}
				return Output{Kind: OutputInvalid}
			}
			continue

		default: // ResultAdvance
			if top.State.Grid.IsSolved() {
				top.State.Info.Entry.Solved = true
				top.State.Info.Entry.Correct = true
				switch config.Target {
				case TargetSudoku:
					return Output{Kind: OutputSolution, Grid: top.State.Grid}
				case TargetSteps:
					return Output{Kind: OutputSteps, Solve: RecordSteps(b)}
				default: // TargetList
					solutions = append(solutions, top.State.Grid)
					if len(solutions) >= ListCap {
						return Output{Kind: OutputList, Grids: solutions}
					}
					if !b.Rewind() {
						return Output{Kind: OutputList, Grids: solutions}
					}
					continue
				}
			}

			next := makeNext(top.Tech, &top.State, config)
			if next == Incomplete {
				return incompleteOutput(b)
			}
			if next == Invalid {
				return Output{Kind: OutputInvalid}
			}
			child := top.State.Clone()
			child.Info.Mods = nil
			child.Info.Entry.Change = false
			if bt := child.Info.Backtrace; bt != nil && !bt.IsSplitChild {
				child.Info.Backtrace = nil
			}
			b.Push(Entry{State: child, Tech: next})
		}
	}
}

func incompleteOutput(b *Buffer) Output {
	if top := b.Top(); top != nil {
		return Output{Kind: OutputIncomplete, Grid: top.State.Grid}
	}
	if b.LastGood != nil {
		return Output{Kind: OutputIncomplete, Grid: b.LastGood.Grid}
	}
	return Output{Kind: OutputInvalid}
}
