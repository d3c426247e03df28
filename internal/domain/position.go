package domain

import "github.com/golang/geo/r2"

// Immutable plan coordinates, expressed as percentages of the terminal footprint.
type Position struct {
	X float64
	Y float64
}

// Return the position as an r2 point for planar distance math.
func (p Position) Point() r2.Point { return r2.Point{X: p.X, Y: p.Y} }

// InBounds reports whether both coordinates lie within [0,100].
func (p Position) InBounds() bool {
	return p.X >= 0 && p.X <= 100 && p.Y >= 0 && p.Y <= 100
}
