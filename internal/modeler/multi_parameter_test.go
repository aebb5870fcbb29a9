package modeler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"perfmodel/domain/core"
	"perfmodel/domain/experiment"
	"perfmodel/domain/hypothesis"
	"perfmodel/domain/model"
)

func TestMultiParameterModeler_RecoversProductModel(t *testing.T) {
	// 2 + 0.5*p*q over a full 5x5 grid. Each axis line carries five points,
	// enough for the per-parameter search, and the product candidate fits
	// the surface exactly.
	grid := []float64{2, 4, 8, 16, 32}
	var measurements []experiment.Measurement
	for _, p := range grid {
		for _, q := range grid {
			measurements = append(measurements, point(2+0.5*p*q, p, q))
		}
	}

	m := NewMultiParameterModeler(Options{})
	result, err := m.Model(context.Background(), measurements)
	require.NoError(t, err)
	require.True(t, result.Hypothesis.IsValid())

	f, ok := result.Function.(*model.MultiParameterFunction)
	require.True(t, ok, "expected a multi-parameter winner, got %T", result.Function)
	require.Len(t, f.MultiParameterTerms, 1)

	term := f.MultiParameterTerms[0]
	require.Len(t, term.Pairs, 2, "expected the product candidate to win")
	assert.InDelta(t, 2, f.ConstantCoefficient, 1e-6)
	assert.InDelta(t, 0.5, term.Coefficient, 1e-6)
	assert.Greater(t, result.CandidatesEvaluated, 0)
}

func TestMultiParameterModeler_PredictionsMatchSurface(t *testing.T) {
	grid := []float64{2, 4, 8, 16, 32}
	var measurements []experiment.Measurement
	for _, p := range grid {
		for _, q := range grid {
			measurements = append(measurements, point(1+2*p+3*q, p, q))
		}
	}

	m := NewMultiParameterModeler(Options{})
	result, err := m.Model(context.Background(), measurements)
	require.NoError(t, err)

	for _, ms := range measurements {
		predicted := result.Function.Evaluate(ms.Coordinate)
		assert.InDelta(t, ms.Mean, predicted, 1e-6*ms.Mean)
	}
}

func TestMultiParameterModeler_ConstantSurface(t *testing.T) {
	grid := []float64{2, 4, 8, 16, 32}
	var measurements []experiment.Measurement
	for _, p := range grid {
		for _, q := range grid {
			measurements = append(measurements, point(9, p, q))
		}
	}

	m := NewMultiParameterModeler(Options{})
	result, err := m.Model(context.Background(), measurements)
	require.NoError(t, err)

	h, ok := result.Hypothesis.(*hypothesis.ConstantHypothesis)
	require.True(t, ok, "expected the constant baseline, got %T", result.Hypothesis)
	assert.Equal(t, 9.0, h.Function().ConstantCoefficient)
}

func TestMultiParameterModeler_RejectsSingleDimension(t *testing.T) {
	measurements := []experiment.Measurement{
		point(1, 2), point(2, 4),
	}
	m := NewMultiParameterModeler(Options{})
	_, err := m.Model(context.Background(), measurements)
	if !errors.Is(err, core.ErrCoordinateDimension) {
		t.Errorf("Expected ErrCoordinateDimension, got %v", err)
	}
}

func TestMultiParameterModeler_NoMeasurements(t *testing.T) {
	m := NewMultiParameterModeler(Options{})
	_, err := m.Model(context.Background(), nil)
	if !errors.Is(err, core.ErrNoMeasurements) {
		t.Errorf("Expected ErrNoMeasurements, got %v", err)
	}
}

func TestAxisLine_SelectsMinimumLine(t *testing.T) {
	measurements := []experiment.Measurement{
		point(1, 2, 2), point(2, 4, 2), point(3, 8, 2),
		point(4, 2, 4), point(5, 4, 4),
	}
	line := axisLine(measurements, 0)
	require.Len(t, line, 3, "expected only the q == 2 measurements")
	for _, ms := range line {
		assert.Equal(t, 2.0, ms.Coordinate[1])
	}

	line = axisLine(measurements, 1)
	require.Len(t, line, 2, "expected only the p == 2 measurements")
}

func TestBuildCandidateFunctions_IndependentTermCopies(t *testing.T) {
	m := NewMultiParameterModeler(Options{})
	terms := []model.SingleParameterTerm{
		model.NewCompoundTermFromExponents(1, 1, 0),
		model.NewCompoundTermFromExponents(1, 2, 0),
	}
	functions := m.buildCandidateFunctions(terms)
	// p alone, q alone, product, sum.
	require.Len(t, functions, 4)

	// Mutating one candidate's coefficients must not leak into another.
	functions[2].MultiParameterTerms[0].Pairs[0].Term.(*model.CompoundTerm).Coefficient = 99
	first := functions[0].MultiParameterTerms[0].Pairs[0].Term.(*model.CompoundTerm)
	assert.Equal(t, 1.0, first.Coefficient)
}
