package engine

import (
	"errors"
	"fmt"
)

// ErrMalformedPuzzle is returned when the input puzzle string is not
// exactly 81 characters (spec.md §7, "Input malformed").
var ErrMalformedPuzzle = errors.New("engine: puzzle string must be exactly 81 characters")

// ErrMalformedRules is returned when a cage id refers to a non-existent
// target sum (spec.md §7).
var ErrMalformedRules = errors.New("engine: cage id refers to a non-existent target sum")

// ParsePuzzle parses an 81-character puzzle string into a Grid. Digits
// 1-9 place a starting digit; '.' and '0' denote an empty cell; any other
// character is also treated as empty, matching spec.md §6's minimum
// acceptance requirement.
func ParsePuzzle(s string) (Grid, error) {
	var g Grid
	if len(s) != TotalCells {
		return g, fmt.Errorf("%w: got %d characters", ErrMalformedPuzzle, len(s))
	}
	for i, r := range s {
		if r >= '1' && r <= '9' {
			g[i] = int(r - '0')
		} else {
			g[i] = 0
		}
	}
	return g, nil
}

// NewRules builds a Rules value from parallel cage-sum and cage-membership
// inputs, validating that every referenced cage id has a declared target
// (spec.md §6).
func NewRules(cages []int, cageOf [TotalCells]int) (Rules, error) {
	r := Rules{Cages: append([]int(nil), cages...), CageOf: cageOf}
	for _, id := range cageOf {
		if id == 0 {
			continue
		}
		if id < 1 || id > len(cages) {
			return Rules{}, fmt.Errorf("%w: id %d", ErrMalformedRules, id)
		}
	}
	return r, nil
}

// FormatGrid renders a Grid as an 81-character digit string ('.' for empty).
func FormatGrid(g Grid) string {
	out := make([]byte, TotalCells)
	for i, v := range g {
		if v == 0 {
			out[i] = '.'
		} else {
			out[i] = byte('0' + v)
		}
	}
	return string(out)
}
