package core

// CellRef identifies a cell by row/column for the HTTP-facing DTOs
// (kept from the teacher's core.CellRef shape).
type CellRef struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// SolveRequest is the body of POST /api/solve, /api/solve/steps, and
// /api/solve/list.
type SolveRequest struct {
	Puzzle     string `json:"puzzle"`
	Cages      []int  `json:"cages,omitempty"`
	CageOf     []int  `json:"cage_of,omitempty"`
	MaxSplits  *int   `json:"max_splits,omitempty"`
	Workers    int    `json:"workers,omitempty"`
}

// SolveResponse is the body of POST /api/solve.
type SolveResponse struct {
	Status string `json:"status"` // constants.StatusSolved / Incomplete / Invalid
	Grid   string `json:"grid,omitempty"`
}

// Move renders a single engine.SolveStep for the HTTP trace endpoint,
// kept close to the teacher's Move DTO (Technique/Action/Targets).
type Move struct {
	StepIndex int       `json:"step_index"`
	Technique string    `json:"technique"`
	Action    string    `json:"action"` // constants.ActionAssign / ActionEliminate
	Digit     int       `json:"digit"`
	Targets   []CellRef `json:"targets"`
	Source    []CellRef `json:"source,omitempty"`
}

// StepsResponse is the body of POST /api/solve/steps.
type StepsResponse struct {
	Status string `json:"status"`
	Moves  []Move `json:"moves"`
	Grid   string `json:"grid,omitempty"`
}

// ListResponse is the body of POST /api/solve/list.
type ListResponse struct {
	Status    string   `json:"status"`
	Solutions []string `json:"solutions"`
	Truncated bool     `json:"truncated"`
}
