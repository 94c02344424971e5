package engine

// Technique is a tagged variant over the deduction/backtracking/terminal
// techniques the driver can run. Dispatch is a switch in Advance, not a
// virtual call, so an Entry stays cheaply copyable (spec.md §9, "Boxed
// virtual technique -> tagged variant").
type Technique int

const (
	Init Technique = iota
	Base
	Single
	Elim
	Set
	XWing
	XYWing
	Cage
	Backtrace
	Solved
	Incomplete
	Invalid
)

func (t Technique) String() string {
	switch t {
	case Init:
		return "Init"
	case Base:
		return "Base"
	case Single:
		return "Single"
	case Elim:
		return "Elim"
	case Set:
		return "Set"
	case XWing:
		return "XWing"
	case XYWing:
		return "XYWing"
	case Cage:
		return "Cage"
	case Backtrace:
		return "Backtrace"
	case Solved:
		return "Solved"
	case Incomplete:
		return "Incomplete"
	case Invalid:
		return "Invalid"
	default:
		return "Unknown"
	}
}

// ResultKind tags an AdvanceResult.
type ResultKind int

const (
	ResultAdvance ResultKind = iota
	ResultInvalid
	ResultSplit
)

// AdvanceResult is the tri-state return of Technique.Advance:
// Advance | Invalid | Split(children).
type AdvanceResult struct {
	Kind     ResultKind
	Children []Entry
}

func advanceOK() AdvanceResult       { return AdvanceResult{Kind: ResultAdvance} }
func advanceInvalid() AdvanceResult  { return AdvanceResult{Kind: ResultInvalid} }
func advanceSplit(c []Entry) AdvanceResult {
	return AdvanceResult{Kind: ResultSplit, Children: c}
}

// Reporter forwards Backtrace progress estimates to an optional caller
// callback (spec.md §4.7, §6). A nil Reporter is a valid no-op sink.
type Reporter struct {
	callback func(float64)
}

// NewReporter wraps a progress callback. cb may be nil.
func NewReporter(cb func(float64)) *Reporter {
	return &Reporter{callback: cb}
}

func (r *Reporter) report(p float64) {
	if r == nil || r.callback == nil {
		return
	}
	r.callback(p)
}

// Advance runs the technique named by t against state, mutating it in
// place and returning the tri-state result. Solved, Incomplete, and
// Invalid are sentinel values makeNext/the driver compare against and
// branch on directly (spec.md §4.5) — they never reach a pushed frame, so
// they have no Advance behavior of their own.
func (t Technique) Advance(state *State, config *Config, reporter *Reporter) AdvanceResult {
	switch t {
	case Init:
		return advanceInit(state, config, reporter)
	case Base:
		return advanceBase(state, config, reporter)
	case Single:
		return advanceSingle(state, config, reporter)
	case Elim:
		return advanceElim(state, config, reporter)
	case Set:
		return advanceSet(state, config, reporter)
	case XWing:
		return advanceXWing(state, config, reporter)
	case XYWing:
		return advanceXYWing(state, config, reporter)
	case Cage:
		return advanceCage(state, config, reporter)
	case Backtrace:
		return advanceBacktrace(state, config, reporter)
	default:
		return advanceInvalid()
	}
}

// Verified reports whether a popped frame is a valid place for Rewind to
// stop and resume execution (spec.md §4.5): a Backtrace split child
// (already committed, nothing left to retry locally) or a sequential
// Backtrace frame that still has an untried candidate. Stopping only at
// split children would skip every sequential guess's remaining
// candidates, degenerating the search into first-candidate-only DFS.
func (t Technique) Verified(state *State) bool {
	if t != Backtrace {
		return false
	}
	bt := state.Info.Backtrace
	if bt == nil {
		return false
	}
	if bt.IsSplitChild {
		return true
	}
	return !bt.RemainingOptions.IsEmpty()
}
