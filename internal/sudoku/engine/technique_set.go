package engine

// advanceSet implements the naked-subset technique: scan each house for a
// seed cell, collect every cell whose candidates are a subset of the
// seed's; a match occurs when the collected count equals the seed's
// candidate count k (2 <= k <= 8). Eliminate those k digits from the rest
// of the house. When the subset lies in a box and additionally shares a
// row or column, also eliminate from that row/column outside the box
// (spec.md §4.3, Set).
func advanceSet(state *State, config *Config, reporter *Reporter) AdvanceResult {
	for _, house := range AllHouses() {
		domain, idx := Domain(house[0]), house[1]
		cells := CellsOf(domain, idx)

		var empties []int
		for _, c := range cells {
			if state.Grid.Cell(c) == 0 {
				empties = append(empties, c)
			}
		}

		for _, seed := range empties {
			seedCands := state.Options.CellCandidates(seed, &state.Grid)
			k := seedCands.Count()
			if k < 2 || k > 8 {
				continue
			}
			var subset []int
			for _, c := range empties {
				if state.Options.CellCandidates(c, &state.Grid).Subset(seedCands) {
					subset = append(subset, c)
				}
			}
			if len(subset) != k {
				continue
			}
			if changed := eliminateSubsetDigits(state, cells, subset, seedCands); changed {
				return advanceOK()
			}
			if domain == DomainBox {
				if sameRow(subset) {
					if changed := eliminateSubsetDigits(state, RowCells(RowOf(subset[0])), subset, seedCands); changed {
						return advanceOK()
					}
				}
				if sameCol(subset) {
					if changed := eliminateSubsetDigits(state, ColCells(ColOf(subset[0])), subset, seedCands); changed {
						return advanceOK()
					}
				}
			}
		}
	}
	return advanceOK()
}

// eliminateSubsetDigits removes every digit of subsetCands from cells in
// house that are not part of the subset itself.
func eliminateSubsetDigits(state *State, house, subset []int, subsetCands Candidates) bool {
	inSubset := make(map[int]bool, len(subset))
	for _, c := range subset {
		inSubset[c] = true
	}
	var targets []ModTarget
	for _, c := range house {
		if inSubset[c] || state.Grid.Cell(c) != 0 {
			continue
		}
		for _, d := range subsetCands.ToSlice() {
			if state.Options.Remove(c, d) {
				targets = append(targets, ModTarget{Kind: TargetRemoveOption, Cell: c, Digit: d})
			}
		}
	}
	if len(targets) == 0 {
		return false
	}
	state.Info.Mods = append(state.Info.Mods, StateMod{
		Tech:    Set,
		Source:  append([]int(nil), subset...),
		Targets: targets,
	})
	state.Info.Entry.Change = true
	return true
}
