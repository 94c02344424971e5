package engine

// advanceXYWing: pick a pivot with exactly two candidates {X,Y}. Among
// cells seeing the pivot, find wings with pairs {X,Z} and {Y,Z} (Z != X,
// Y). If the wings do not see each other, eliminate Z from every cell
// that sees both (spec.md §4.3).
func advanceXYWing(state *State, config *Config, reporter *Reporter) AdvanceResult {
	for pivot := 0; pivot < TotalCells; pivot++ {
		if state.Grid.Cell(pivot) != 0 {
			continue
		}
		pc := state.Options.CellCandidates(pivot, &state.Grid)
		if pc.Count() != 2 {
			continue
		}
		pair := pc.ToSlice()
		x, y := pair[0], pair[1]

		var candidates []int
		for _, c := range Peers(pivot) {
			if state.Grid.Cell(c) == 0 {
				candidates = append(candidates, c)
			}
		}

		for i := 0; i < len(candidates); i++ {
			w1 := candidates[i]
			c1 := state.Options.CellCandidates(w1, &state.Grid)
			if c1.Count() != 2 {
				continue
			}
			var z1 int
			var has1x, has1y bool
			for _, d := range c1.ToSlice() {
				switch d {
				case x:
					has1x = true
				case y:
					has1y = true
				default:
					z1 = d
				}
			}
			if has1x == has1y {
				continue // must contain exactly one of x,y plus z
			}

			for j := 0; j < len(candidates); j++ {
				if j == i {
					continue
				}
				w2 := candidates[j]
				c2 := state.Options.CellCandidates(w2, &state.Grid)
				if c2.Count() != 2 {
					continue
				}
				var z2 int
				var has2x, has2y bool
				for _, d := range c2.ToSlice() {
					switch d {
					case x:
						has2x = true
					case y:
						has2y = true
					default:
						z2 = d
					}
				}
				if has2x == has2y || has1x == has2x {
					continue // need complementary x/y membership
				}
				if z1 != z2 {
					continue
				}
				z := z1
				if ArePeers(w1, w2) {
					continue
				}
				shared := sharedPeers(w1, w2)
				var targets []ModTarget
				for _, c := range shared {
					if c == pivot || c == w1 || c == w2 {
						continue
					}
					if state.Grid.Cell(c) == 0 && state.Options.Remove(c, z) {
						targets = append(targets, ModTarget{Kind: TargetRemoveOption, Cell: c, Digit: z})
					}
				}
				if len(targets) > 0 {
					state.Info.Mods = append(state.Info.Mods, StateMod{
						Tech:    XYWing,
						Source:  []int{pivot, w1, w2},
						Targets: targets,
					})
					state.Info.Entry.Change = true
					return advanceOK()
				}
			}
		}
	}
	return advanceOK()
}

func sharedPeers(a, b int) []int {
	bset := make(map[int]bool, len(Peers(b)))
	for _, c := range Peers(b) {
		bset[c] = true
	}
	var out []int
	for _, c := range Peers(a) {
		if bset[c] {
			out = append(out, c)
		}
	}
	return out
}
