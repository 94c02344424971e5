package engine

// advanceElim implements Locked Candidates (pointing/claiming): if every
// candidate for digit d within a box lies in a single row (or column),
// eliminate d from that row/column outside the box, and symmetrically for
// a row/column whose candidates for d all fall in one box (spec.md §4.3).
func advanceElim(state *State, config *Config, reporter *Reporter) AdvanceResult {
	// Box -> line (pointing).
	for b := 0; b < GridSize; b++ {
		box := BoxCells(b)
		for d := 1; d <= 9; d++ {
			var cells []int
			for _, c := range box {
				if state.Grid.Cell(c) == 0 && state.Options.CellCandidates(c, &state.Grid).Has(d) {
					cells = append(cells, c)
				}
			}
			if len(cells) < 2 {
				continue
			}
			if sameRow(cells) {
				if changed := eliminateFromLine(state, RowCells(RowOf(cells[0])), box, d, cells); changed {
					return advanceOK()
				}
			}
			if sameCol(cells) {
				if changed := eliminateFromLine(state, ColCells(ColOf(cells[0])), box, d, cells); changed {
					return advanceOK()
				}
			}
		}
	}
	// Line -> box (claiming).
	for _, dom := range []Domain{DomainRow, DomainCol} {
		for i := 0; i < GridSize; i++ {
			line := CellsOf(dom, i)
			for d := 1; d <= 9; d++ {
				var cells []int
				for _, c := range line {
					if state.Grid.Cell(c) == 0 && state.Options.CellCandidates(c, &state.Grid).Has(d) {
						cells = append(cells, c)
					}
				}
				if len(cells) < 2 {
					continue
				}
				b0 := BoxOf(cells[0])
				same := true
				for _, c := range cells[1:] {
					if BoxOf(c) != b0 {
						same = false
						break
					}
				}
				if !same {
					continue
				}
				if changed := eliminateFromLine(state, BoxCells(b0), line, d, cells); changed {
					return advanceOK()
				}
			}
		}
	}
	return advanceOK()
}

func sameRow(cells []int) bool {
	r0 := RowOf(cells[0])
	for _, c := range cells[1:] {
		if RowOf(c) != r0 {
			return false
		}
	}
	return true
}

func sameCol(cells []int) bool {
	c0 := ColOf(cells[0])
	for _, c := range cells[1:] {
		if ColOf(c) != c0 {
			return false
		}
	}
	return true
}

// eliminateFromLine removes d from every cell of target that isn't in
// except, recording a single StateMod if anything changed.
func eliminateFromLine(state *State, target, except []int, d int, source []int) bool {
	inExcept := make(map[int]bool, len(except))
	for _, c := range except {
		inExcept[c] = true
	}
	var targets []ModTarget
	for _, c := range target {
		if inExcept[c] {
			continue
		}
		if state.Grid.Cell(c) == 0 && state.Options.Remove(c, d) {
			targets = append(targets, ModTarget{Kind: TargetRemoveOption, Cell: c, Digit: d})
		}
	}
	if len(targets) == 0 {
		return false
	}
	state.Info.Mods = append(state.Info.Mods, StateMod{
		Tech:    Elim,
		Source:  append([]int(nil), source...),
		Targets: targets,
	})
	state.Info.Entry.Change = true
	return true
}
