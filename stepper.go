package slider

// Snapshot exposes the state of a stepped search after one expansion.
type Snapshot struct {
	Board     Board // the board expanded this step; zero value when none was
	StepIndex int
	Expanded  int
	Frontier  int // entries still awaiting expansion
	Done      bool
	Found     bool
	Moves     []int // solution path, set once Done && Found
}

// Stepper advances a search one expansion at a time, for callers that drive
// the solver incrementally (debuggers, tracing, teaching tools). It shares
// its core with Search, so boards pop in exactly the same order and the
// solution is identical.
type Stepper struct {
	search    *searcher
	stepCount int
}

// NewStepper prepares a stepped search from the given board.
func NewStepper(start Board) *Stepper {
	return &Stepper{search: newSearcher(start)}
}

// Step performs one expansion and reports the state after it. Once the
// search is done, further calls return the terminal snapshot unchanged.
func (s *Stepper) Step() Snapshot {
	var expanded Board
	if !s.search.done {
		s.stepCount++
		expanded, _ = s.search.step()
	}
	return Snapshot{
		Board:     expanded,
		StepIndex: s.stepCount,
		Expanded:  s.search.expanded,
		Frontier:  s.search.open.Len(),
		Done:      s.search.done,
		Found:     s.search.found,
		Moves:     s.search.moves,
	}
}
