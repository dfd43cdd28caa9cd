package vf

import "slices"

// degreePermutation returns perm such that perm[i] is the loader position of
// the vertex placed at working index i. Vertices are ordered by total degree,
// highest first; equal degrees keep their loader order.
//
// Complexity: O(V log V) plus one degree query per vertex.
func degreePermutation[V, E any](ld GraphLoader[V, E]) []int {
	n := ld.VertexCount()
	degree := make([]int, n)
	perm := make([]int, n)
	for pos := 0; pos < n; pos++ {
		id := ld.IDFromPos(pos)
		degree[pos] = ld.InEdgeCount(id) + ld.OutEdgeCount(id)
		perm[pos] = pos
	}
	slices.SortStableFunc(perm, func(a, b int) int {
		return degree[b] - degree[a]
	})

	return perm
}

// reversePermutation inverts perm: out[perm[i]] == i.
func reversePermutation(perm []int) []int {
	out := make([]int, len(perm))
	for i, p := range perm {
		out[p] = i
	}

	return out
}
