package engine

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

const (
	MaxScore  int32 = 32500
	Checkmate int32 = 20000
	DrawScore int32 = 0

	MaxDepth int8 = 100
	MaxPly   int8 = 100
)

// aspirationDelta is the half-width of the initial aspiration window.
const aspirationDelta int32 = 50

// drawSteerBonus nudges the score when only one side retains mating
// material, steering the capable side away from trades into a dead draw.
const drawSteerBonus int32 = 10000

func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// getMateOrCPScore renders a score in UCI form, converting mate distances
// from plies to full moves.
func getMateOrCPScore(score int32) string {
	if score > Checkmate {
		plies := MaxScore - score
		return fmt.Sprintf("mate %d", (plies+1)/2)
	}
	if score < -Checkmate {
		plies := MaxScore + score
		return fmt.Sprintf("mate %d", -((plies + 1) / 2))
	}
	return fmt.Sprintf("cp %d", score)
}
