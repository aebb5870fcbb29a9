package experiment

import (
	"fmt"
	"strings"
)

// Coordinate is an ordered tuple of parameter values identifying one
// measurement point. Index i holds the value of parameter i.
type Coordinate []float64

// NewCoordinate creates a coordinate from the given parameter values.
func NewCoordinate(values ...float64) Coordinate {
	c := make(Coordinate, len(values))
	copy(c, values)
	return c
}

// Dimensions returns the number of parameters in the coordinate.
func (c Coordinate) Dimensions() int { return len(c) }

// Equal reports whether two coordinates have identical values.
func (c Coordinate) Equal(other Coordinate) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if c[i] != other[i] {
			return false
		}
	}
	return true
}

// String renders the coordinate as "(1.00E+01, 2.00E+01)".
func (c Coordinate) String() string {
	parts := make([]string, len(c))
	for i, v := range c {
		parts[i] = fmt.Sprintf("%.2E", v)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Key returns a deterministic map key for the coordinate.
func (c Coordinate) Key() string { return c.String() }
