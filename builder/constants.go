// Package: builder
//
// constants.go - method tags and size minimums.

package builder

// Method tags used as error context.
const (
	MethodCycle             = "Cycle"
	MethodPath              = "Path"
	MethodStar              = "Star"
	MethodWheel             = "Wheel"
	MethodComplete          = "Complete"
	MethodCompleteBipartite = "CompleteBipartite"
	MethodRandomSparse      = "RandomSparse"
	MethodGrid              = "Grid"
	MethodHexagram          = "Hexagram"
	MethodShuffled          = "Shuffled"
)

// CenterVertexID is the label of the hub in Star and Wheel.
const CenterVertexID = "Center"

// Size minimums.
const (
	MinCycleNodes    = 3
	MinPathNodes     = 2
	MinStarNodes     = 2
	MinWheelNodes    = 4
	MinCompleteNodes = 1
	MinGridDim       = 1
	MinPartition     = 1
	MinRandomNodes   = 1
)

// Probability bounds for RandomSparse.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
