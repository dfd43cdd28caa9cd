// Package: builder
//
// impl_bipartite.go - CompleteBipartite(n1, n2): every left vertex points at
// every right vertex.

package builder

// CompleteBipartite returns a Constructor for K_{n1,n2} with labels
// leftPrefix+i and rightPrefix+j and edges left→right.
// Complexity: O(n1+n2) vertices + O(n1·n2) edges.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g Sink, cfg builderConfig) error {
		if err := validatePartition(MethodCompleteBipartite, n1, n2); err != nil {
			return err
		}
		left, err := addVerticesWithIDFn(MethodCompleteBipartite, g, n1, SymbolNumberIDFn(cfg.leftPrefix))
		if err != nil {
			return err
		}
		right, err := addVerticesWithIDFn(MethodCompleteBipartite, g, n2, SymbolNumberIDFn(cfg.rightPrefix))
		if err != nil {
			return err
		}
		for _, u := range left {
			for _, v := range right {
				if err = link(MethodCompleteBipartite, g, cfg, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
