package domain

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultDwellMinutes applies to checkpoints without an explicit estimate.
const DefaultDwellMinutes = 10

// Category is the closed set of checkpoint kinds found in a terminal.
type Category string

const (
	CategoryEntrance Category = "entrance"
	CategoryCustoms  Category = "customs"
	CategoryGate     Category = "gate"
	CategoryDining   Category = "dining"
	CategoryShopping Category = "shopping"
	CategoryLounge   Category = "lounge"
	CategoryRestroom Category = "restroom"
	CategoryLuggage  Category = "luggage"
)

var ErrUnknownCategory = errors.New("unknown checkpoint category")

var categories = []Category{
	CategoryEntrance,
	CategoryCustoms,
	CategoryGate,
	CategoryDining,
	CategoryShopping,
	CategoryLounge,
	CategoryRestroom,
	CategoryLuggage,
}

// ParseCategory validates a raw category string against the closed set.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range categories {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("parse category %q: %w", s, ErrUnknownCategory)
}

// Represents a point of interest inside the terminal.
// X and Y are percentages of the terminal footprint, both in [0,100].
type Checkpoint struct {
	ID               string
	Name             string
	Category         Category
	Location         string
	Description      string
	Terminal         string
	X                float64
	Y                float64
	Mandatory        bool
	EstimatedMinutes *int
}

// DwellMinutes returns the estimated stay, falling back to DefaultDwellMinutes.
func (c Checkpoint) DwellMinutes() int {
	if c.EstimatedMinutes == nil || *c.EstimatedMinutes == 0 {
		return DefaultDwellMinutes
	}
	return *c.EstimatedMinutes
}

// Position returns the plan coordinates of the checkpoint.
func (c Checkpoint) Position() Position { return Position{X: c.X, Y: c.Y} }

// Minutes is a convenience for building optional dwell estimates.
func Minutes(m int) *int { return &m }
