package engine

// SolveStep captures the (grid, options) pair immediately before one mod
// is applied, plus the mod itself and the frame's bookkeeping flags
// (spec.md §4.6). Applying Mod to Grid/Options yields the next step's
// Grid/Options (spec.md §8, invariant 1).
type SolveStep struct {
	Grid    Grid      `json:"grid"`
	Options Options   `json:"options"`
	Mod     StateMod  `json:"mod"`
	Tech    Technique `json:"technique"`
	Solved  bool      `json:"solved"`
	Correct bool      `json:"correct"`
	Valid   bool      `json:"valid"`
}

// SolveTrace is the replayable trace of a completed driver run.
type SolveTrace struct {
	Steps []SolveStep `json:"steps"`
	Final Grid        `json:"final"`
}

// RecordSteps converts a Buffer into a SolveTrace (spec.md §4.6): keep
// only entries whose Info.Entry.Change is true and Info.Mods is
// non-empty, then fold left over them carrying a running (grid, options)
// pair seeded from the buffer's first frame, emitting one SolveStep per
// mod with the pre-mod snapshot.
func RecordSteps(b *Buffer) SolveTrace {
	if len(b.Frames) == 0 {
		return SolveTrace{}
	}
	grid := b.Frames[0].State.Grid
	opts := b.Frames[0].State.Options

	var steps []SolveStep
	for _, e := range b.Frames {
		if !e.State.Info.Entry.Change || len(e.State.Info.Mods) == 0 {
			continue
		}
		for _, mod := range e.State.Info.Mods {
			steps = append(steps, SolveStep{
				Grid:    grid,
				Options: opts,
				Mod:     mod,
				Tech:    mod.Tech,
				Solved:  e.State.Info.Entry.Solved,
				Correct: e.State.Info.Entry.Correct,
				Valid:   e.State.Info.Entry.Valid,
			})
			applyMod(&grid, &opts, mod)
		}
	}
	return SolveTrace{Steps: steps, Final: grid}
}

// applyMod advances the running (grid, options) pair by one StateMod.
func applyMod(g *Grid, o *Options, mod StateMod) {
	for _, t := range mod.Targets {
		switch t.Kind {
		case TargetSetDigit:
			g.SetCell(t.Cell, t.Digit)
			o.SetOnly(t.Cell, t.Digit)
		case TargetRemoveOption:
			o.Remove(t.Cell, t.Digit)
		case TargetTouch:
			// no grid/options effect; a marker step only.
		}
	}
}
