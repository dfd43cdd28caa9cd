package vf

import "strings"

// Group is the classification of one vertex relative to the partial mapping.
// It is a bit set: a vertex outside the mapping may be both FromMapping and
// ToMapping at once, while ContainedInMapping excludes every other bit.
type Group uint8

const (
	// ContainedInMapping marks a vertex that is part of the partial mapping.
	ContainedInMapping Group = 1 << iota
	// FromMapping marks an unmapped vertex with an edge coming from a mapped vertex.
	FromMapping
	// ToMapping marks an unmapped vertex with an edge going to a mapped vertex.
	ToMapping
	// Disconnected marks a vertex with no edge to or from any mapped vertex.
	Disconnected
)

// Has reports whether any bit of flags is set in g.
func (g Group) Has(flags Group) bool { return g&flags != 0 }

// String renders the set bits joined by "|", e.g. "FromMapping|ToMapping".
func (g Group) String() string {
	if g == 0 {
		return "None"
	}
	names := make([]string, 0, 2)
	for _, f := range []struct {
		bit  Group
		name string
	}{
		{ContainedInMapping, "ContainedInMapping"},
		{FromMapping, "FromMapping"},
		{ToMapping, "ToMapping"},
		{Disconnected, "Disconnected"},
	} {
		if g.Has(f.bit) {
			names = append(names, f.name)
		}
	}

	return strings.Join(names, "|")
}
