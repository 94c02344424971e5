package engine

// Options holds one Candidates bitset per cell.
type Options [TotalCells]Candidates

// Init seeds every empty cell to the full 1..9 set and every filled cell
// to the singleton set containing its digit (spec.md §4.1).
func (o *Options) Init(g *Grid) {
	for c := 0; c < TotalCells; c++ {
		if v := g.Cell(c); v != 0 {
			o[c] = NewCandidates(v)
		} else {
			o[c] = AllCandidates
		}
	}
}

// CellCandidates computes the current candidate bitset for c: the stored
// bitset intersected with the digits not present among c's row, column,
// and box peers. This is the inner-loop primitive every technique uses.
func (o *Options) CellCandidates(c int, g *Grid) Candidates {
	if g.Cell(c) != 0 {
		return NewCandidates(g.Cell(c))
	}
	present := Candidates(0)
	for _, p := range Peers(c) {
		if v := g.Cell(p); v != 0 {
			present = present.Set(v)
		}
	}
	return o[c].Subtract(present)
}

// Remove eliminates d from cell c's stored options, reporting whether it
// was present (so callers can decide whether a StateMod was produced).
func (o *Options) Remove(c, d int) bool {
	if !o[c].Has(d) {
		return false
	}
	o[c] = o[c].Clear(d)
	return true
}

// SetOnly collapses cell c's stored options to the singleton {d}.
func (o *Options) SetOnly(c, d int) {
	o[c] = NewCandidates(d)
}
