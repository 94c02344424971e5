package engine

// advanceSingle implements Hidden Single: for each house and digit, if
// exactly one empty cell in the house admits the digit, place it there
// (spec.md §4.3, Single).
func advanceSingle(state *State, config *Config, reporter *Reporter) AdvanceResult {
	for _, house := range AllHouses() {
		domain, idx := Domain(house[0]), house[1]
		cells := CellsOf(domain, idx)
		for d := 1; d <= 9; d++ {
			var only int = -1
			count := 0
			for _, c := range cells {
				if state.Grid.Cell(c) != 0 {
					continue
				}
				if state.Options.CellCandidates(c, &state.Grid).Has(d) {
					count++
					only = c
				}
			}
			if count == 1 {
				cands := state.Options.CellCandidates(only, &state.Grid)
				if !cands.Has(d) {
					return advanceInvalid()
				}
				state.Grid.SetCell(only, d)
				state.Options.SetOnly(only, d)
				state.Info.RecordSetDigit(Single, only, d, cells)
				state.Info.Entry.Solved = state.Grid.IsSolved()
				return advanceOK()
			}
		}
	}
	return advanceOK()
}
