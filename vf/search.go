package vf

import "iter"

// Enumerator yields the matches of a State one at a time.
//
// The depth-first search runs on two explicit stacks: one of candidate
// generators and one of the action logs that committed their current pair.
// Next resumes the loop where the previous call left it and runs until the
// next match is found or both stacks are empty. Nothing runs between calls.
type Enumerator[V, E any] struct {
	st *State[V, E]

	gens []*candidateGenerator[V, E]
	logs []*actionLog
	// popOut means the next loop turn backtracks instead of advancing.
	popOut bool

	begun bool
	done  bool
	stats Stats
}

// Next returns the next match, or ok == false once the search is exhausted,
// stopped, or has produced MaxMatches matches.
func (en *Enumerator[V, E]) Next() (Mapping, bool) {
	if en.done {
		return Mapping{}, false
	}
	if limit := en.st.opts.MaxMatches; limit > 0 && en.stats.Solutions >= limit {
		en.finish("limit reached")
		return Mapping{}, false
	}
	if !en.begun {
		en.begun = true
		if m, ok, final := en.begin(); final {
			return m, ok
		}
	}

	return en.search()
}

// begin runs the checks made once before the loop. final reports that the
// search was decided without it.
func (en *Enumerator[V, E]) begin() (m Mapping, ok bool, final bool) {
	st := en.st
	n1, n2 := st.sides[side1].g.vertexCount(), st.sides[side2].g.vertexCount()
	st.log.Debugf("%s search: |G1|=%d |G2|=%d context=%t", st.opts.Mode, n1, n2, st.opts.ContextCheck)

	if !st.compatibleDegrees() {
		st.log.Debugf("degree sequences incompatible, no match")
		en.finish("degree check failed")
		return Mapping{}, false, true
	}
	if st.completeMatch() {
		en.stats.Solutions++
		en.finish("empty pattern")
		return st.mapping(), true, true
	}
	en.popOut = false

	return Mapping{}, false, false
}

// search is the resumable backtracking loop.
func (en *Enumerator[V, E]) search() (Mapping, bool) {
	st := en.st
	for {
		var gen *candidateGenerator[V, E]
		var log *actionLog
		if en.popOut {
			if len(en.gens) == 0 {
				en.finish("exhausted")
				return Mapping{}, false
			}
			gen, log = en.pop()
			en.stats.Backtracks++
			log.undo(st)
		} else {
			gen = newCandidateGenerator(st)
			log = &actionLog{}
		}
		en.popOut = true

		for {
			u, v, ok := gen.nextPair()
			if !ok {
				break
			}
			en.stats.Candidates++
			if !st.feasible(u, v) {
				en.stats.Infeasible++
				continue
			}
			if !st.addMatchToSolution(u, v, log) {
				log.undo(st)
				en.stats.Infeasible++
				continue
			}
			if st.completeMatch() {
				en.stats.Solutions++
				m := st.mapping()
				st.log.Debugf("match %d found", en.stats.Solutions)
				// Leave the frame on the stack so the next call undoes this
				// pair and carries on with the remaining candidates.
				en.push(gen, log)
				return m, true
			}
			en.stats.Guesses++
			en.push(gen, log)
			en.popOut = false
			break
		}
	}
}

func (en *Enumerator[V, E]) push(gen *candidateGenerator[V, E], log *actionLog) {
	en.gens = append(en.gens, gen)
	en.logs = append(en.logs, log)
}

func (en *Enumerator[V, E]) pop() (*candidateGenerator[V, E], *actionLog) {
	last := len(en.gens) - 1
	gen, log := en.gens[last], en.logs[last]
	en.gens[last], en.logs[last] = nil, nil
	en.gens, en.logs = en.gens[:last], en.logs[:last]

	return gen, log
}

// Stop ends the enumeration. Later calls to Next report no match.
func (en *Enumerator[V, E]) Stop() {
	if !en.done {
		en.finish("stopped")
	}
}

// finish marks the enumeration done and reports its counters once.
func (en *Enumerator[V, E]) finish(reason string) {
	en.done = true
	en.gens, en.logs = nil, nil
	st := en.st
	st.log.Debugf("search finished (%s): %s", reason, en.stats)
	if st.opts.Observer != nil {
		st.opts.Observer.ObserveSearch(st.opts.Mode, en.stats)
	}
}

// Stats returns the counters accumulated so far.
func (en *Enumerator[V, E]) Stats() Stats { return en.stats }

// All adapts the enumerator to a range-over-func sequence. Breaking out of
// the loop stops the enumeration.
func (en *Enumerator[V, E]) All() iter.Seq[Mapping] {
	return func(yield func(Mapping) bool) {
		for {
			m, ok := en.Next()
			if !ok {
				return
			}
			if !yield(m) {
				en.Stop()
				return
			}
		}
	}
}
