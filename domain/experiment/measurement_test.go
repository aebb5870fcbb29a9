package experiment

import (
	"errors"
	"testing"

	"perfmodel/domain/core"
)

func TestNewMeasurement_SummaryStatistics(t *testing.T) {
	m, err := NewMeasurement(NewCoordinate(10), []float64{1, 2, 2, 9})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if m.Mean != 3.5 {
		t.Errorf("Expected mean 3.5, got %f", m.Mean)
	}
	if m.Median != 2 {
		t.Errorf("Expected median 2, got %f", m.Median)
	}
	if m.Minimum != 1 || m.Maximum != 9 {
		t.Errorf("Expected min 1 and max 9, got %f and %f", m.Minimum, m.Maximum)
	}
}

func TestNewMeasurement_EmptyRepetitions(t *testing.T) {
	_, err := NewMeasurement(NewCoordinate(10), nil)
	if !errors.Is(err, core.ErrEmptyRepetitions) {
		t.Errorf("Expected ErrEmptyRepetitions, got %v", err)
	}
}

func TestMeasurement_ValueSelectsStatistic(t *testing.T) {
	m, err := NewMeasurement(NewCoordinate(10), []float64{1, 2, 9})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := m.Value(false); got != 4 {
		t.Errorf("Expected mean 4, got %f", got)
	}
	if got := m.Value(true); got != 2 {
		t.Errorf("Expected median 2, got %f", got)
	}
}

func TestCoordinate_String(t *testing.T) {
	c := NewCoordinate(10, 20)
	if got := c.String(); got != "(1.00E+01, 2.00E+01)" {
		t.Errorf("Unexpected rendering: %s", got)
	}
}

func TestRegistry_IndependentCounters(t *testing.T) {
	a := NewRegistry()
	b := NewRegistry()

	p0 := a.NewParameter("p")
	p1 := a.NewParameter("q")
	if p0.ID != 0 || p1.ID != 1 {
		t.Errorf("Expected sequential IDs 0 and 1, got %d and %d", p0.ID, p1.ID)
	}

	// A second registry starts from zero; there is no process-global state.
	q0 := b.NewParameter("n")
	if q0.ID != 0 {
		t.Errorf("Expected independent registry to start at 0, got %d", q0.ID)
	}

	m := a.NewMetric("time")
	if m.ID != 0 {
		t.Errorf("Expected metric counter independent of parameters, got %d", m.ID)
	}

	got, ok := a.Parameter(1)
	if !ok || got.Name != "q" {
		t.Errorf("Expected lookup of parameter 1 to return q, got %+v ok=%v", got, ok)
	}
}
