package engine

// advanceBase fills every empty cell with its forced digit, if any: exactly
// one remaining candidate places it, zero remaining candidates is a
// contradiction. All digits forced this tick collect into a single
// StateMod (spec.md §4.3, Base). Flags Solved when no empty cells remain.
func advanceBase(state *State, config *Config, reporter *Reporter) AdvanceResult {
	var targets []ModTarget
	for c := 0; c < TotalCells; c++ {
		if state.Grid.Cell(c) != 0 {
			continue
		}
		cands := state.Options.CellCandidates(c, &state.Grid)
		if cands.IsEmpty() {
			return advanceInvalid()
		}
		if d, ok := cands.Only(); ok {
			state.Grid.SetCell(c, d)
			state.Options.SetOnly(c, d)
			targets = append(targets, ModTarget{Kind: TargetSetDigit, Cell: c, Digit: d})
		}
	}
	if len(targets) > 0 {
		state.Info.Mods = append(state.Info.Mods, StateMod{Tech: Base, Targets: targets})
		state.Info.Entry.Change = true
	}
	state.Info.Entry.Solved = state.Grid.IsSolved()
	return advanceOK()
}
