package vf

import "fmt"

// Stats counts the work done by one search.
type Stats struct {
	// Candidates is the number of candidate pairs drawn from generators.
	Candidates int
	// Infeasible is the number of candidate pairs rejected before extending
	// the search.
	Infeasible int
	// Guesses is the number of pairs committed without completing a match.
	Guesses int
	// Backtracks is the number of frames popped and undone.
	Backtracks int
	// Solutions is the number of matches produced.
	Solutions int
}

func (s Stats) String() string {
	return fmt.Sprintf("candidates=%d infeasible=%d guesses=%d backtracks=%d solutions=%d",
		s.Candidates, s.Infeasible, s.Guesses, s.Backtracks, s.Solutions)
}
