package engine

// advanceXWing: for a fixed digit d, find two rows each admitting d in
// exactly the same pair of columns; eliminate d from that column pair in
// all other rows. Symmetric on columns via Domain.Other (spec.md §4.3).
func advanceXWing(state *State, config *Config, reporter *Reporter) AdvanceResult {
	for _, base := range []Domain{DomainRow, DomainCol} {
		cross := base.Other()
		for d := 1; d <= 9; d++ {
			// line.pos = sorted cross-line indices admitting d in base-line idx.
			type line struct {
				idx  int
				pos  []int
				cells []int
			}
			var lines []line
			for i := 0; i < GridSize; i++ {
				var pos []int
				var cells []int
				for _, c := range CellsOf(base, i) {
					if state.Grid.Cell(c) == 0 && state.Options.CellCandidates(c, &state.Grid).Has(d) {
						if base == DomainRow {
							pos = append(pos, ColOf(c))
						} else {
							pos = append(pos, RowOf(c))
						}
						cells = append(cells, c)
					}
				}
				if len(pos) == 2 {
					lines = append(lines, line{idx: i, pos: pos, cells: cells})
				}
			}
			for a := 0; a < len(lines); a++ {
				for b := a + 1; b < len(lines); b++ {
					if lines[a].pos[0] != lines[b].pos[0] || lines[a].pos[1] != lines[b].pos[1] {
						continue
					}
					source := append(append([]int(nil), lines[a].cells...), lines[b].cells...)
					changed := false
					for _, crossIdx := range lines[a].pos {
						for _, c := range CellsOf(cross, crossIdx) {
							if c == lines[a].cells[0] || c == lines[a].cells[1] || c == lines[b].cells[0] || c == lines[b].cells[1] {
								continue
							}
							if state.Grid.Cell(c) == 0 && state.Options.Remove(c, d) {
								state.Info.Mods = append(state.Info.Mods, StateMod{
									Tech:    XWing,
									Source:  append([]int(nil), source...),
									Targets: []ModTarget{{Kind: TargetRemoveOption, Cell: c, Digit: d}},
									Marks:   []int{int(base), lines[a].idx, lines[b].idx},
								})
								state.Info.Entry.Change = true
								changed = true
							}
						}
					}
					if changed {
						return advanceOK()
					}
				}
			}
		}
	}
	return advanceOK()
}
