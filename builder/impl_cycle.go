// Package: builder
//
// impl_cycle.go - Cycle(n): directed ring 0→1→…→n-1→0.
//
// Complexity: O(n) vertices + O(n) edges.

package builder

// Cycle returns a Constructor that builds an n-vertex directed cycle (n ≥ 3).
func Cycle(n int) Constructor {
	return func(g Sink, cfg builderConfig) error {
		if err := validateMin(MethodCycle, n, MinCycleNodes); err != nil {
			return err
		}
		ids, err := addVerticesWithIDFn(MethodCycle, g, n, cfg.idFn)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = link(MethodCycle, g, cfg, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
