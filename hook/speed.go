package hook

import (
	"math"

	"github.com/lixenwraith/gold-miner/parameter"
)

// RetrievalSpeed returns the reel-in speed for a caught weight
// Light loads move faster than base, heavy loads slow down; the result never drops
// below RetrievalFloorRatio of the penalty-adjusted base
func RetrievalSpeed(weight, baseSpeed, speedPenalty float64) float64 {
	if weight < 0 {
		weight = 0
	}
	effectiveBase := baseSpeed * (1 - speedPenalty)

	var speed float64
	switch {
	case weight < parameter.RetrievalLightWeight:
		speed = effectiveBase * (1.2 - weight/20)
	case weight < parameter.RetrievalHeavyWeight:
		speed = effectiveBase * (0.9 - math.Sqrt(weight-9)/10)
	default:
		speed = effectiveBase * (0.6 - (weight-20)/100)
	}
	return math.Max(speed, effectiveBase*parameter.RetrievalFloorRatio)
}
