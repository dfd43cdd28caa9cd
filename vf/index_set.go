package vf

import (
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"
)

// indexSet is an ordered set of working indices. Iteration is ascending, so
// the lowest index (the highest-degree vertex) comes first.
type indexSet struct {
	tree *redblacktree.Tree
}

func newIndexSet() *indexSet {
	return &indexSet{tree: redblacktree.NewWith(utils.IntComparator)}
}

func (s *indexSet) add(i int)    { s.tree.Put(i, nil) }
func (s *indexSet) remove(i int) { s.tree.Remove(i) }
func (s *indexSet) size() int    { return s.tree.Size() }

func (s *indexSet) contains(i int) bool {
	_, found := s.tree.Get(i)
	return found
}

// first returns the smallest index, or false when the set is empty.
func (s *indexSet) first() (int, bool) {
	node := s.tree.Left()
	if node == nil {
		return 0, false
	}

	return node.Key.(int), true
}

// snapshot copies the members in ascending order.
func (s *indexSet) snapshot() []int {
	out := make([]int, 0, s.tree.Size())
	it := s.tree.Iterator()
	for it.Next() {
		out = append(out, it.Key().(int))
	}

	return out
}
