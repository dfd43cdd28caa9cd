// Package: builder
//
// impl_complete.go - Complete(n): every ordered pair of distinct vertices.

package builder

// Complete returns a Constructor for the complete directed graph on n ≥ 1
// vertices: n·(n-1) edges, emitted in (i asc, j asc) order.
func Complete(n int) Constructor {
	return func(g Sink, cfg builderConfig) error {
		if err := validateMin(MethodComplete, n, MinCompleteNodes); err != nil {
			return err
		}
		ids, err := addVerticesWithIDFn(MethodComplete, g, n, cfg.idFn)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if err = link(MethodComplete, g, cfg, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
