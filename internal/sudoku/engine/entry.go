package engine

// TargetKind tags the kind of change a ModTarget records.
type TargetKind int

const (
	TargetSetDigit TargetKind = iota
	TargetRemoveOption
	TargetTouch
)

// ModTarget is the tagged union `{SetDigit(v), RemoveOption(v), Touch}`
// from spec.md §3, scoped to the cell it affects.
type ModTarget struct {
	Kind  TargetKind
	Cell  int
	Digit int // meaningful for TargetSetDigit / TargetRemoveOption
}

// StateMod is one logical step of deduction: the technique that produced
// it, the witnessing cells, the cells it changed, and display annotations.
type StateMod struct {
	Tech    Technique
	Source  []int // witnessing cells
	Targets []ModTarget
	Marks   []int // domain index or cage id, for display
}

// BacktraceInfo is the Backtrace technique's per-frame state (spec.md §4.4).
type BacktraceInfo struct {
	ChosenCell        int
	HasChosenCell     bool
	RemainingOptions  Candidates
	OriginalOptions   Options
	Retries           int
	IsSplitChild      bool
}

// EntryInfo bundles the bookkeeping flags the driver consults after each
// advance() call (spec.md §3).
type EntryInfo struct {
	Tech    Technique
	Change  bool
	Solved  bool
	Valid   bool
	Correct bool
	Depth   int
	Splits  int
}

// Info bundles a frame's recorded modifications, optional backtrace state,
// and bookkeeping flags.
type Info struct {
	Mods      []StateMod
	Backtrace *BacktraceInfo
	Entry     EntryInfo
}

// Clone returns a deep copy safe to hand to a sibling split child.
func (in Info) Clone() Info {
	out := in
	out.Mods = append([]StateMod(nil), in.Mods...)
	if in.Backtrace != nil {
		bt := *in.Backtrace
		out.Backtrace = &bt
	}
	return out
}

// RecordSetDigit appends a StateMod for placing v at cell with witnesses.
func (in *Info) RecordSetDigit(tech Technique, cell, v int, source []int) {
	in.Mods = append(in.Mods, StateMod{
		Tech:    tech,
		Source:  append([]int(nil), source...),
		Targets: []ModTarget{{Kind: TargetSetDigit, Cell: cell, Digit: v}},
	})
	in.Entry.Change = true
}

// RecordRemoveOption appends a StateMod for eliminating d from cell.
func (in *Info) RecordRemoveOption(tech Technique, cell, d int, source []int, marks []int) {
	in.Mods = append(in.Mods, StateMod{
		Tech:    tech,
		Source:  append([]int(nil), source...),
		Targets: []ModTarget{{Kind: TargetRemoveOption, Cell: cell, Digit: d}},
		Marks:   append([]int(nil), marks...),
	})
	in.Entry.Change = true
}

// RecordTouch appends a marker StateMod with no digit effect (used by Init).
func (in *Info) RecordTouch(tech Technique) {
	in.Mods = append(in.Mods, StateMod{Tech: tech, Targets: []ModTarget{{Kind: TargetTouch}}})
}
