package services

import (
	"math"
	"terminal-itinerary-service/internal/domain"
)

const (
	// One plan unit (1% of the terminal footprint) is roughly 50 meters.
	MetersPerPlanUnit = 50.0
	// Average walking pace inside the terminal.
	WalkingMetersPerMinute = 80.0
	// Floor applied to every leg.
	MinTravelMinutes = 3
)

// TravelMinutes estimates the walking time between two checkpoints.
//
// Straight-line distance on the terminal plan is converted to meters and
// divided by walking pace, rounded to the nearest minute and floored at
// MinTravelMinutes. The result is symmetric in a and b.
func TravelMinutes(a, b domain.Checkpoint) int {
	dist := b.Position().Point().Sub(a.Position().Point()).Norm()
	minutes := int(math.Round((dist * MetersPerPlanUnit) / WalkingMetersPerMinute))
	return max(MinTravelMinutes, minutes)
}
