package engine

// chooseBacktraceCell picks the empty cell with the highest heuristic
// score: 10 - |candidates|, doubled if the cell belongs to a cage. Ties
// break by row-major scan order (spec.md §4.4).
func chooseBacktraceCell(state *State, config *Config) (int, bool) {
	best := -1
	bestScore := -1
	for c := 0; c < TotalCells; c++ {
		if state.Grid.Cell(c) != 0 {
			continue
		}
		cands := state.Options.CellCandidates(c, &state.Grid)
		score := 10 - cands.Count()
		if config.Rules.CageOf[c] != 0 {
			score *= 2
		}
		if score > bestScore {
			bestScore = score
			best = c
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}

// advanceBacktrace implements the guessing step with job-splitting
// (spec.md §4.4).
func advanceBacktrace(state *State, config *Config, reporter *Reporter) AdvanceResult {
	bt := state.Info.Backtrace
	if bt != nil && bt.IsSplitChild {
		// The split parent already materialized this child's assignment.
		// Clear the flag so a later Backtrace decision reached by this
		// lineage (e.g. via Fallback) starts fresh instead of being
		// mistaken for an already-materialized child forever.
		state.Info.Backtrace = nil
		return advanceOK()
	}

	if bt == nil {
		cell, ok := chooseBacktraceCell(state, config)
		if !ok {
			// No empty cell left: the grid is full but not solved (it
			// holds a conflict), so the driver rewinds.
			return advanceInvalid()
		}
		remaining := state.Options.CellCandidates(cell, &state.Grid)
		state.Info.Backtrace = &BacktraceInfo{
			ChosenCell:       cell,
			HasChosenCell:    true,
			RemainingOptions: remaining,
			OriginalOptions:  state.Options,
		}
		bt = state.Info.Backtrace
	}

	state.Info.Entry.Correct = false

	if bt.RemainingOptions.IsEmpty() {
		return advanceInvalid()
	}

	if config.MaxSplits != nil && state.Info.Entry.Splits < *config.MaxSplits {
		digits := bt.RemainingOptions.ToSlice()
		children := make([]Entry, 0, len(digits))
		fanOut := len(digits)
		reporter.report(float64(bt.Retries) / float64(bt.Retries+fanOut))
		for _, v := range digits {
			child := state.Clone()
			child.Options = bt.OriginalOptions
			child.Grid.SetCell(bt.ChosenCell, v)
			child.Options.SetOnly(bt.ChosenCell, v)
			child.Info.Entry.Splits = state.Info.Entry.Splits * fanOut
			if child.Info.Entry.Splits == 0 {
				child.Info.Entry.Splits = fanOut
			}
			child.Info.Entry.Depth = state.Info.Entry.Depth + 1
			child.Info.Entry.Correct = false
			child.Info.Backtrace = &BacktraceInfo{
				ChosenCell:    bt.ChosenCell,
				HasChosenCell: true,
				IsSplitChild:  true,
			}
			child.Info.RecordSetDigit(Backtrace, bt.ChosenCell, v, nil)
			children = append(children, Entry{State: child, Tech: config.Base})
		}
		return advanceSplit(children)
	}

	digits := bt.RemainingOptions.ToSlice()
	v := digits[0]
	bt.RemainingOptions = bt.RemainingOptions.Clear(v)
	state.Options = bt.OriginalOptions
	state.Grid.SetCell(bt.ChosenCell, v)
	state.Options.SetOnly(bt.ChosenCell, v)
	state.Info.RecordSetDigit(Backtrace, bt.ChosenCell, v, nil)
	bt.Retries++
	reporter.report(float64(bt.Retries) / float64(bt.Retries+bt.RemainingOptions.Count()))
	return advanceOK()
}
