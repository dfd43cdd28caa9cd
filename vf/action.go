package vf

// Graph sides of a State.
const (
	side1 = 0 // G1, the graph searched in
	side2 = 1 // G2, the graph being embedded
)

type actionKind uint8

const (
	// deleteMatch clears the mapping slot of index on side.
	deleteMatch actionKind = iota
	// groupMove restores prev as the group of index on side.
	groupMove
)

// action is one undoable mutation of a State.
type action struct {
	kind  actionKind
	side  int
	index int
	prev  Group
}

// mutator is the part of a State an actionLog drives.
type mutator interface {
	groupOf(side, i int) Group
	makeMove(side, i int, g Group)
	setMapping(i1, i2 int)
	clearMapping(side, i int)
}

// actionLog records the mutations made while committing one candidate pair.
// Actions are stored in application order and undone newest first.
type actionLog struct {
	actions []action
}

// setMatch moves i1 and i2 into the mapping and links them.
func (l *actionLog) setMatch(m mutator, i1, i2 int) {
	l.moveToGroup(m, side1, i1, ContainedInMapping)
	l.moveToGroup(m, side2, i2, ContainedInMapping)
	m.setMapping(i1, i2)
	l.actions = append(l.actions,
		action{kind: deleteMatch, side: side1, index: i1},
		action{kind: deleteMatch, side: side2, index: i2},
	)
}

// moveToGroup reclassifies i on side as g. Moving between FromMapping and
// ToMapping yields both bits. Nothing is recorded when g adds no new bit.
func (l *actionLog) moveToGroup(m mutator, side, i int, g Group) {
	prev := m.groupOf(side, i)
	if (prev == FromMapping && g == ToMapping) || (prev == ToMapping && g == FromMapping) {
		g = FromMapping | ToMapping
	}
	if prev == prev|g {
		return
	}
	l.actions = append(l.actions, action{kind: groupMove, side: side, index: i, prev: prev})
	m.makeMove(side, i, g)
}

// undo reverts every recorded action, newest first, and empties the log.
func (l *actionLog) undo(m mutator) {
	for k := len(l.actions) - 1; k >= 0; k-- {
		a := l.actions[k]
		switch a.kind {
		case deleteMatch:
			m.clearMapping(a.side, a.index)
		case groupMove:
			m.makeMove(a.side, a.index, a.prev)
		}
	}
	l.actions = l.actions[:0]
}

func (l *actionLog) size() int { return len(l.actions) }
