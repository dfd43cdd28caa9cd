// Package: builder
//
// impl_grid.go - Grid(rows, cols): lattice with "r,c" labels.
//
// Edges point right (r,c)→(r,c+1) and down (r,c)→(r+1,c); combine with
// WithBidirectional for the symmetric lattice.

package builder

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

const gridIDFmt = "%d,%d"

// Grid returns a Constructor for a rows×cols lattice (each ≥ 1).
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(g Sink, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return errors.Wrapf(ErrTooFewVertices, "%s: rows=%d, cols=%d (each must be ≥ %d)",
				MethodGrid, rows, cols, MinGridDim)
		}

		ids := make([][]int, rows)
		for r := 0; r < rows; r++ {
			ids[r] = make([]int, cols)
			for c := 0; c < cols; c++ {
				label := fmt.Sprintf(gridIDFmt, r, c)
				id, err := ensureVertex(g, label)
				if err != nil {
					return errors.Wrapf(err, "%s: AddVertex(%s)", MethodGrid, label)
				}
				ids[r][c] = id
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := link(MethodGrid, g, cfg, ids[r][c], ids[r][c+1]); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(MethodGrid, g, cfg, ids[r][c], ids[r+1][c]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
