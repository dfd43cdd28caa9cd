// Package: builder
//
// impl_hexagram.go - Hexagram(variant): a ring (or wheel) overlaid with chords.

package builder

import (
	"github.com/cockroachdb/errors"
)

// HexagramVariant selects the ring size and chord set.
type HexagramVariant int

const (
	// HexDefault is a 6-ring with triangles 0-2-4 and 1-3-5.
	HexDefault HexagramVariant = iota
	// HexMedium is an 8-ring with two interlocking quadrilaterals.
	HexMedium
	// HexBig is a 12-vertex rim with a hub and outer triangles.
	HexBig
	// HexHuge is HexBig plus two inner triangles.
	HexHuge
)

type chord struct{ U, V int }

var hexRingSize = map[HexagramVariant]int{
	HexDefault: 6,
	HexMedium:  8,
	HexBig:     12,
	HexHuge:    12,
}

var hexChords = map[HexagramVariant][]chord{
	HexDefault: {
		{0, 2}, {2, 4}, {4, 0},
		{1, 3}, {3, 5}, {5, 1},
	},
	HexMedium: {
		{0, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 6}, {6, 0},
		{1, 2}, {2, 4}, {4, 6}, {6, 7}, {7, 0}, {0, 1},
	},
	HexBig: {
		{0, 1}, {1, 3}, {3, 4}, {4, 5}, {5, 7}, {7, 8}, {8, 9}, {9, 11}, {11, 0},
		{2, 3}, {3, 5}, {5, 6}, {6, 7}, {7, 9}, {9, 10}, {10, 11}, {11, 1}, {1, 2},
	},
	HexHuge: {
		{0, 1}, {1, 3}, {3, 4}, {4, 5}, {5, 7}, {7, 8}, {8, 9}, {9, 11}, {11, 0},
		{2, 3}, {3, 5}, {5, 6}, {6, 7}, {7, 9}, {9, 10}, {10, 11}, {11, 1}, {1, 2},
		{1, 5}, {5, 9}, {9, 1},
		{3, 7}, {7, 11}, {11, 3},
	},
}

// Hexagram returns a Constructor for the given variant. Chords that repeat
// a ring edge are emitted once.
func Hexagram(variant HexagramVariant) Constructor {
	return func(g Sink, cfg builderConfig) error {
		n, ok := hexRingSize[variant]
		if !ok {
			return errors.Wrapf(ErrOptionViolation, "%s: unknown variant %d", MethodHexagram, variant)
		}

		base := Cycle(n)
		if variant == HexBig || variant == HexHuge {
			// Wheel(n+1) keeps an n-vertex rim plus the hub.
			base = Wheel(n + 1)
		}
		if err := base(g, cfg); err != nil {
			return errors.Wrapf(err, "%s: base", MethodHexagram)
		}

		for _, ch := range hexChords[variant] {
			u, okU := g.VertexByLabel(cfg.idFn(ch.U))
			v, okV := g.VertexByLabel(cfg.idFn(ch.V))
			if !okU || !okV {
				return errors.Wrapf(ErrConstructFailed, "%s: chord %d→%d has no endpoint", MethodHexagram, ch.U, ch.V)
			}
			if err := link(MethodHexagram, g, cfg, u, v); err != nil {
				return err
			}
		}

		return nil
	}
}
