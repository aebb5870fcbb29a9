package hypothesis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"perfmodel/domain/experiment"
	"perfmodel/domain/model"
)

func productTerm() *model.MultiParameterTerm {
	return model.NewMultiParameterTerm(
		model.ParameterTermPair{Parameter: 0, Term: model.NewCompoundTermFromExponents(1, 1, 0)},
		model.ParameterTermPair{Parameter: 1, Term: model.NewCompoundTermFromExponents(1, 1, 0)},
	)
}

func TestMultiParameterHypothesis_RecoversProductCoefficients(t *testing.T) {
	// Exact data from 2 + 0.5*p*q over a 3x3 grid.
	var measurements []experiment.Measurement
	for _, p := range []float64{2, 4, 8} {
		for _, q := range []float64{2, 4, 8} {
			measurements = append(measurements, point(2+0.5*p*q, p, q))
		}
	}

	f := model.NewMultiParameterFunction(productTerm())
	h := NewMultiParameterHypothesis(f, false)
	require.NoError(t, h.ComputeCoefficients(measurements))

	assert.InDelta(t, 2, f.ConstantCoefficient, 1e-9)
	assert.InDelta(t, 0.5, f.MultiParameterTerms[0].Coefficient, 1e-9)

	h.ComputeCost(measurements)
	assert.InDelta(t, 0, h.RSS(), 1e-12)
	assert.True(t, h.IsValid())

	h.ComputeAdjustedRSquared(TotalSumOfSquares(measurements, false), measurements)
	assert.InDelta(t, 1, h.AR2(), 1e-9)
}

func TestMultiParameterHypothesis_ComputeCostOverwrites(t *testing.T) {
	measurements := []experiment.Measurement{
		point(3, 1, 1), point(5, 2, 2),
	}
	f := model.NewMultiParameterFunction()
	f.ConstantCoefficient = 4
	h := NewMultiParameterHypothesis(f, false)

	h.ComputeCost(measurements)
	first := h.RSS()
	h.ComputeCost(measurements)

	// Scoring twice must not double the residuals.
	assert.Equal(t, first, h.RSS())
	assert.Equal(t, 2.0, h.RSS())
}

func TestMultiParameterHypothesis_RelativeErrorUnguarded(t *testing.T) {
	// A zero-valued measurement drives the relative error to infinity while
	// the RSS stays finite, so the validity gate still accepts the fit.
	measurements := []experiment.Measurement{
		point(0, 1, 1), point(1, 2, 2),
	}
	f := model.NewMultiParameterFunction()
	f.ConstantCoefficient = 1
	h := NewMultiParameterHypothesis(f, false)
	h.ComputeCost(measurements)

	assert.True(t, math.IsInf(h.RE(), 1))
	assert.Equal(t, 1.0, h.RSS())
	assert.True(t, h.IsValid())
}

func TestMultiParameterHypothesis_CalcTermContribution(t *testing.T) {
	term := productTerm()
	term.Coefficient = 2
	f := model.NewMultiParameterFunction(term)
	h := NewMultiParameterHypothesis(f, false)

	measurements := []experiment.Measurement{
		point(100, 2, 3), // 12/100 = 0.12
		point(10, 2, 2),  // 8/10 = 0.8
	}
	assert.InDelta(t, 0.8, h.CalcTermContribution(0, measurements), 1e-12)
}

func TestMultiParameterHypothesis_CleanConstantCoefficient(t *testing.T) {
	measurements := []experiment.Measurement{
		point(10, 1, 1), point(20, 2, 2),
	}
	f := model.NewMultiParameterFunction()
	f.ConstantCoefficient = 0.005
	h := NewMultiParameterHypothesis(f, false)
	h.CleanConstantCoefficient(1e-3, measurements)
	assert.Equal(t, 0.0, f.ConstantCoefficient)
}
