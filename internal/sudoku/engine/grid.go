package engine

// Grid dimensions. Non-goal: grids of sizes other than 9x9 (spec.md §1).
const (
	GridSize   = 9
	BoxSize    = 3
	TotalCells = GridSize * GridSize
)

// Grid is an ordered sequence of 81 digits, 0 meaning empty.
type Grid [TotalCells]int

// Domain identifies which kind of house a set of cells forms. Used by
// XWing to swap row/column symmetrically (Domain.Other).
type Domain int

const (
	DomainRow Domain = iota
	DomainCol
	DomainBox
)

// Other swaps Row and Col, used by XWing's row/column symmetry; Box maps
// to itself since it has no symmetric counterpart in that technique.
func (d Domain) Other() Domain {
	switch d {
	case DomainRow:
		return DomainCol
	case DomainCol:
		return DomainRow
	default:
		return DomainBox
	}
}

func RowOf(cell int) int { return cell / GridSize }
func ColOf(cell int) int { return cell % GridSize }
func BoxOf(cell int) int { return BoxSize*(RowOf(cell)/BoxSize) + ColOf(cell)/BoxSize }

func IndexOf(row, col int) int { return GridSize*row + col }

var (
	rowPeers [GridSize][]int
	colPeers [GridSize][]int
	boxPeers [GridSize][]int

	// peersOf[c] holds every distinct cell that sees c (same row, col, or box).
	peersOf [TotalCells][]int
)

func init() {
	for i := 0; i < GridSize; i++ {
		rowPeers[i] = make([]int, 0, GridSize)
		colPeers[i] = make([]int, 0, GridSize)
		boxPeers[i] = make([]int, 0, GridSize)
	}
	for c := 0; c < TotalCells; c++ {
		rowPeers[RowOf(c)] = append(rowPeers[RowOf(c)], c)
		colPeers[ColOf(c)] = append(colPeers[ColOf(c)], c)
		boxPeers[BoxOf(c)] = append(boxPeers[BoxOf(c)], c)
	}
	for c := 0; c < TotalCells; c++ {
		seen := make(map[int]bool, 20)
		for _, p := range rowPeers[RowOf(c)] {
			if p != c {
				seen[p] = true
			}
		}
		for _, p := range colPeers[ColOf(c)] {
			if p != c {
				seen[p] = true
			}
		}
		for _, p := range boxPeers[BoxOf(c)] {
			if p != c {
				seen[p] = true
			}
		}
		out := make([]int, 0, len(seen))
		for p := range seen {
			out = append(out, p)
		}
		peersOf[c] = out
	}
}

// RowCells returns the 9 cell indices of row r.
func RowCells(r int) []int { return rowPeers[r] }

// ColCells returns the 9 cell indices of column c.
func ColCells(c int) []int { return colPeers[c] }

// BoxCells returns the 9 cell indices of box b.
func BoxCells(b int) []int { return boxPeers[b] }

// CellsOf returns the 9 cells of the house identified by (domain, index).
func CellsOf(d Domain, index int) []int {
	switch d {
	case DomainRow:
		return RowCells(index)
	case DomainCol:
		return ColCells(index)
	default:
		return BoxCells(index)
	}
}

// AllHouses returns all 27 houses as (domain, index) pairs.
func AllHouses() [][2]int {
	houses := make([][2]int, 0, 27)
	for i := 0; i < GridSize; i++ {
		houses = append(houses, [2]int{int(DomainRow), i})
		houses = append(houses, [2]int{int(DomainCol), i})
		houses = append(houses, [2]int{int(DomainBox), i})
	}
	return houses
}

// ArePeers reports whether two distinct cells see each other.
func ArePeers(a, b int) bool {
	if a == b {
		return false
	}
	return RowOf(a) == RowOf(b) || ColOf(a) == ColOf(b) || BoxOf(a) == BoxOf(b)
}

// Peers returns every cell that sees c.
func Peers(c int) []int { return peersOf[c] }

// Cell returns the digit at c (0 if empty).
func (g *Grid) Cell(c int) int { return g[c] }

// SetCell places digit v at c.
func (g *Grid) SetCell(c, v int) { g[c] = v }

// IsSolved reports whether every cell is filled and no house repeats a digit.
func (g *Grid) IsSolved() bool {
	for _, c := range g {
		if c == 0 {
			return false
		}
	}
	return g.IsValid()
}

// IsValid reports whether no house contains a duplicate non-zero digit.
func (g *Grid) IsValid() bool {
	for _, house := range AllHouses() {
		seen := Candidates(0)
		for _, c := range CellsOf(Domain(house[0]), house[1]) {
			v := g[c]
			if v == 0 {
				continue
			}
			if seen.Has(v) {
				return false
			}
			seen = seen.Set(v)
		}
	}
	return true
}
