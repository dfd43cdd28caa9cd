// Package: builder
//
// impl_star.go - Star(n): hub "Center" pointing at n-1 leaves.

package builder

import "github.com/cockroachdb/errors"

// Star returns a Constructor for a star with n ≥ 2 vertices. The hub is
// CenterVertexID; leaves are labeled idFn(0..n-2) and edges go hub→leaf.
func Star(n int) Constructor {
	return func(g Sink, cfg builderConfig) error {
		if err := validateMin(MethodStar, n, MinStarNodes); err != nil {
			return err
		}
		center, err := ensureVertex(g, CenterVertexID)
		if err != nil {
			return errors.Wrapf(err, "%s: AddVertex(%s)", MethodStar, CenterVertexID)
		}
		leaves, err := addVerticesWithIDFn(MethodStar, g, n-1, cfg.idFn)
		if err != nil {
			return err
		}
		for _, leaf := range leaves {
			if err = link(MethodStar, g, cfg, center, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
