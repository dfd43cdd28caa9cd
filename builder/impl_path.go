// Package: builder
//
// impl_path.go - Path(n): directed chain 0→1→…→n-1.

package builder

// Path returns a Constructor that builds a directed path on n ≥ 2 vertices.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g Sink, cfg builderConfig) error {
		if err := validateMin(MethodPath, n, MinPathNodes); err != nil {
			return err
		}
		ids, err := addVerticesWithIDFn(MethodPath, g, n, cfg.idFn)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = link(MethodPath, g, cfg, ids[i], ids[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}
