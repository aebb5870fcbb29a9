package testkit

import (
	"testing"

	"perfmodel/domain/experiment"
)

func TestSingleParameter_NoiseFreeDataIsExact(t *testing.T) {
	gen := NewGenerator(1)
	truth := func(p float64) float64 { return 3 + 2*p }
	measurements := gen.SingleParameter(truth, []float64{2, 4, 8}, 3, 0)

	if len(measurements) != 3 {
		t.Fatalf("Expected 3 measurements, got %d", len(measurements))
	}
	for _, m := range measurements {
		if m.Mean != truth(m.Coordinate[0]) {
			t.Errorf("Expected exact value at %v, got %f", m.Coordinate, m.Mean)
		}
		if m.StdDev != 0 {
			t.Errorf("Expected zero spread without noise, got %f", m.StdDev)
		}
	}
}

func TestSingleParameter_SeededNoiseIsReproducible(t *testing.T) {
	truth := func(p float64) float64 { return 10 * p }
	a := NewGenerator(7).SingleParameter(truth, []float64{2, 4}, 5, 0.1)
	b := NewGenerator(7).SingleParameter(truth, []float64{2, 4}, 5, 0.1)

	for i := range a {
		if a[i].Mean != b[i].Mean {
			t.Errorf("Expected identical data for identical seeds at %v", a[i].Coordinate)
		}
	}
}

func TestMultiParameter_CartesianGrid(t *testing.T) {
	gen := NewGenerator(1)
	truth := func(c experiment.Coordinate) float64 { return c[0] * c[1] }
	measurements := gen.MultiParameter(truth, [][]float64{{2, 4}, {8, 16, 32}}, 1, 0)

	if len(measurements) != 6 {
		t.Fatalf("Expected the full 2x3 grid, got %d measurements", len(measurements))
	}
	seen := make(map[string]bool)
	for _, m := range measurements {
		if m.Coordinate.Dimensions() != 2 {
			t.Fatalf("Expected 2-dimensional coordinates, got %d", m.Coordinate.Dimensions())
		}
		seen[m.Coordinate.Key()] = true
	}
	if len(seen) != 6 {
		t.Errorf("Expected 6 distinct coordinates, got %d", len(seen))
	}
}
