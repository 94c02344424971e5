package engine

// advanceInit performs first-run bookkeeping: push a marker step and
// always advance (spec.md §4.3, Init).
func advanceInit(state *State, config *Config, reporter *Reporter) AdvanceResult {
	state.Info.RecordTouch(Init)
	return advanceOK()
}
