package hypothesis

import (
	"math"

	"perfmodel/domain/experiment"
	"perfmodel/domain/model"
	"perfmodel/internal/solver"
)

// MultiParameterHypothesis is a candidate model over several parameters,
// keyed by coordinate lookup per term factor.
type MultiParameterHypothesis struct {
	scores
	function *model.MultiParameterFunction
}

// NewMultiParameterHypothesis creates an unfit multi-parameter hypothesis.
func NewMultiParameterHypothesis(function *model.MultiParameterFunction, useMedian bool) *MultiParameterHypothesis {
	return &MultiParameterHypothesis{
		scores:   scores{useMedian: useMedian},
		function: function,
	}
}

// Function returns the underlying function.
func (h *MultiParameterHypothesis) Function() *model.MultiParameterFunction { return h.function }

// ComputeCoefficients fits the constant and per-term coefficients by least
// squares, with term coefficients pinned to 1 while building the design
// matrix.
func (h *MultiParameterHypothesis) ComputeCoefficients(measurements []experiment.Measurement) error {
	a := make([][]float64, len(measurements))
	b := make([]float64, len(measurements))
	for i, m := range measurements {
		row := make([]float64, 0, len(h.function.MultiParameterTerms)+1)
		row = append(row, 1)
		for _, term := range h.function.MultiParameterTerms {
			term.Coefficient = 1
			row = append(row, term.Evaluate(m.Coordinate))
		}
		a[i] = row
		b[i] = m.Value(h.useMedian)
	}

	x, err := solver.LeastSquares(a, b)
	if err != nil {
		return err
	}
	h.function.ConstantCoefficient = x[0]
	for i, term := range h.function.MultiParameterTerms {
		term.Coefficient = x[i+1]
	}
	return nil
}

// ComputeCost scores the fitted model over all measurements, overwriting
// any previous cost. The RE accumulation divides by the actual value
// without a zero guard, unlike the SMAPE path; zero-valued aggregated
// measurements do not occur for the metrics this models, and a non-finite
// RE from pathological input is caught by the same validity gate as every
// other degenerate fit.
func (h *MultiParameterHypothesis) ComputeCost(measurements []experiment.Measurement) {
	h.rss = 0
	h.rRSS = 0
	var smape, reSum float64

	for _, m := range measurements {
		predicted := h.function.Evaluate(m.Coordinate)
		actual := m.Value(h.useMedian)

		difference := predicted - actual
		reSum += math.Abs(difference) / actual

		h.rss += difference * difference
		relativeDifference := difference / actual
		h.rRSS += relativeDifference * relativeDifference

		absSum := math.Abs(actual) + math.Abs(predicted)
		if absSum != 0 {
			smape += math.Abs(difference) / absSum * 2
		}
	}

	h.re = reSum / float64(len(measurements))
	h.smape = smape / float64(len(measurements)) * 100
	h.costsAreCalculated = true
}

// ComputeAdjustedRSquared computes AR2 with the total count of per-parameter
// sub-terms across all multi-parameter terms as the model parameter count.
func (h *MultiParameterHypothesis) ComputeAdjustedRSquared(tss float64, measurements []experiment.Measurement) {
	adjR := 1.0 - h.rss/tss
	counter := 0
	for _, term := range h.function.MultiParameterTerms {
		counter += len(term.Pairs)
	}
	n := float64(len(measurements))
	degreesFreedom := n - float64(counter) - 1
	h.ar2 = 1.0 - (1.0-adjR)*(n-1.0)/degreesFreedom
}

// CleanConstantCoefficient zeroes a spurious near-zero constant, scaled
// relative to the smallest training value.
func (h *MultiParameterHypothesis) CleanConstantCoefficient(phi float64, trainingMeasurements []experiment.Measurement) {
	minimum := minimumValue(trainingMeasurements, h.useMedian)
	if math.Abs(h.function.ConstantCoefficient/minimum) < phi {
		h.function.ConstantCoefficient = 0
	}
}

// CalcTermContribution returns the maximum over all measurements of
// |term(coordinate) / actual| for the term at the given index.
func (h *MultiParameterHypothesis) CalcTermContribution(termIndex int, measurements []experiment.Measurement) float64 {
	term := h.function.MultiParameterTerms[termIndex]
	var maximum float64
	for _, m := range measurements {
		contribution := math.Abs(term.Evaluate(m.Coordinate) / m.Value(h.useMedian))
		if contribution > maximum {
			maximum = contribution
		}
	}
	return maximum
}
