// Package testkit generates synthetic experiments from known closed forms.
// Tests use it to assert that the search recovers the generating model; the
// CLI demo command uses it for a self-contained end-to-end run.
package testkit

import (
	"math/rand"

	"perfmodel/domain/experiment"
)

// Generator produces synthetic measurements with reproducible noise.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator seeded for reproducibility.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// SingleParameter generates one measurement per point, each aggregated from
// the given number of repetitions of truth(point) disturbed by relative
// Gaussian noise of the given magnitude. A noise of 0 yields exact data.
func (g *Generator) SingleParameter(truth func(p float64) float64, points []float64, repetitions int, noise float64) []experiment.Measurement {
	coordinates := make([]experiment.Coordinate, len(points))
	for i, p := range points {
		coordinates[i] = experiment.NewCoordinate(p)
	}
	return g.measure(func(c experiment.Coordinate) float64 { return truth(c[0]) }, coordinates, repetitions, noise)
}

// MultiParameter generates one measurement per coordinate of the cartesian
// grid spanned by the per-parameter point lists.
func (g *Generator) MultiParameter(truth func(c experiment.Coordinate) float64, grid [][]float64, repetitions int, noise float64) []experiment.Measurement {
	coordinates := cartesian(grid)
	return g.measure(truth, coordinates, repetitions, noise)
}

func (g *Generator) measure(truth func(c experiment.Coordinate) float64, coordinates []experiment.Coordinate, repetitions int, noise float64) []experiment.Measurement {
	if repetitions < 1 {
		repetitions = 1
	}
	measurements := make([]experiment.Measurement, 0, len(coordinates))
	for _, c := range coordinates {
		exact := truth(c)
		values := make([]float64, repetitions)
		for r := range values {
			values[r] = exact * (1 + noise*g.rng.NormFloat64())
		}
		m, err := experiment.NewMeasurement(c, values)
		if err != nil {
			// Unreachable: repetitions is clamped to at least one value.
			panic(err)
		}
		measurements = append(measurements, m)
	}
	return measurements
}

func cartesian(grid [][]float64) []experiment.Coordinate {
	coordinates := []experiment.Coordinate{experiment.NewCoordinate()}
	for _, axis := range grid {
		next := make([]experiment.Coordinate, 0, len(coordinates)*len(axis))
		for _, prefix := range coordinates {
			for _, v := range axis {
				c := make(experiment.Coordinate, len(prefix)+1)
				copy(c, prefix)
				c[len(prefix)] = v
				next = append(next, c)
			}
		}
		coordinates = next
	}
	return coordinates
}
