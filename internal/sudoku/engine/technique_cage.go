package engine

// advanceCage implements the Killer cage technique: for each cage, let
// S = target - sum(placed digits), k = count of unassigned cells, F = set
// of already-placed digits. Enumerate every k-subset of {1..9}\F summing
// to S that is achievable given the cage's current candidates; the union
// over surviving subsets gives the admissible digits for every unassigned
// cell in the cage, and anything else is eliminated. An empty enumeration
// is a contradiction (spec.md §4.3, Cage).
func advanceCage(state *State, config *Config, reporter *Reporter) AdvanceResult {
	rules := &config.Rules
	for id := 1; id <= rules.NumCages(); id++ {
		cells := rules.CellsIn(id)
		if len(cells) == 0 {
			continue
		}
		target := rules.Target(id)

		placedSum := 0
		placed := Candidates(0)
		var unassigned []int
		for _, c := range cells {
			if v := state.Grid.Cell(c); v != 0 {
				placedSum += v
				placed = placed.Set(v)
			} else {
				unassigned = append(unassigned, c)
			}
		}
		if len(unassigned) == 0 {
			if placedSum != target {
				return advanceInvalid()
			}
			continue
		}

		s := target - placedSum
		k := len(unassigned)
		if s <= 0 {
			return advanceInvalid()
		}

		union := Candidates(0)
		for _, c := range unassigned {
			union = union.Union(state.Options.CellCandidates(c, &state.Grid))
		}

		admissible := Candidates(0)
		any := false
		for _, subset := range KSubsetsSumming(k, s) {
			if subset.Intersect(placed) != 0 {
				continue // cage digits must be distinct
			}
			if !subset.Subset(union) {
				continue
			}
			admissible = admissible.Union(subset)
			any = true
		}
		if !any {
			return advanceInvalid()
		}

		var targets []ModTarget
		for _, c := range unassigned {
			cur := state.Options.CellCandidates(c, &state.Grid)
			for _, d := range cur.Subtract(admissible).ToSlice() {
				if state.Options.Remove(c, d) {
					targets = append(targets, ModTarget{Kind: TargetRemoveOption, Cell: c, Digit: d})
				}
			}
		}
		if len(targets) > 0 {
			state.Info.Mods = append(state.Info.Mods, StateMod{
				Tech:    Cage,
				Source:  append([]int(nil), cells...),
				Targets: targets,
				Marks:   []int{id},
			})
			state.Info.Entry.Change = true
			return advanceOK()
		}
	}
	return advanceOK()
}
