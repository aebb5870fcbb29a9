package hypothesis

import (
	"math"

	"perfmodel/domain/experiment"
	"perfmodel/domain/model"
	"perfmodel/internal/solver"
)

// SingleParameterHypothesis is a candidate model over one parameter. It
// supports two scoring modes: incremental leave-one-out cross-validation
// cost and a vectorized batch cost over all points.
type SingleParameterHypothesis struct {
	scores
	function *model.SingleParameterFunction
}

// NewSingleParameterHypothesis creates an unfit single-parameter hypothesis.
func NewSingleParameterHypothesis(function *model.SingleParameterFunction, useMedian bool) *SingleParameterHypothesis {
	return &SingleParameterHypothesis{
		scores:   scores{useMedian: useMedian},
		function: function,
	}
}

// Function returns the underlying function.
func (h *SingleParameterHypothesis) Function() *model.SingleParameterFunction { return h.function }

// ComputeCoefficients fits the constant coefficient and every term
// coefficient by least squares over the training measurements. Column 0 of
// the design matrix is the constant 1; each term column is the term
// evaluated with its coefficient pinned to 1, since coefficients are the
// unknowns being solved for.
func (h *SingleParameterHypothesis) ComputeCoefficients(measurements []experiment.Measurement) error {
	a := make([][]float64, len(measurements))
	b := make([]float64, len(measurements))
	for i, m := range measurements {
		row := make([]float64, 0, len(h.function.CompoundTerms)+1)
		row = append(row, 1)
		parameterValue := m.Coordinate[0]
		for _, term := range h.function.CompoundTerms {
			term.Coefficient = 1
			row = append(row, term.Evaluate(parameterValue))
		}
		a[i] = row
		b[i] = m.Value(h.useMedian)
	}

	x, err := solver.LeastSquares(a, b)
	if err != nil {
		return err
	}
	h.function.ConstantCoefficient = x[0]
	for i, term := range h.function.CompoundTerms {
		term.Coefficient = x[i+1]
	}
	return nil
}

// ComputeCost accumulates the leave-one-out cross-validation cost of one
// held-out validation measurement against the model fitted on the training
// set. The SMAPE contribution is pre-divided by the training-set size so
// that summing over all held-out points yields the mean.
func (h *SingleParameterHypothesis) ComputeCost(trainingMeasurements []experiment.Measurement, validationMeasurement experiment.Measurement) {
	value := validationMeasurement.Coordinate[0]
	predicted := h.function.EvaluateScalar(value)
	actual := validationMeasurement.Value(h.useMedian)

	difference := predicted - actual
	h.rss += difference * difference
	relativeDifference := difference / actual
	h.rRSS += relativeDifference * relativeDifference
	absSum := math.Abs(actual) + math.Abs(predicted)
	if absSum != 0 {
		h.smape += (math.Abs(difference) / absSum * 2) / float64(len(trainingMeasurements)) * 100
	}
	h.costsAreCalculated = true
}

// ComputeCostAllPoints scores the fitted model over all measurements in one
// vectorized pass, overwriting any previously accumulated cost. Points
// where actual and predicted are both zero are excluded from the SMAPE
// mean; their error is zero by construction.
func (h *SingleParameterHypothesis) ComputeCostAllPoints(measurements []experiment.Measurement) {
	points := experiment.ParameterValues(measurements, 0)
	predicted := h.function.EvaluateAll(points)
	actual := experiment.Values(measurements, h.useMedian)

	var rss, rRSS, reSum, smapeSum float64
	smapeCount := 0
	for i := range measurements {
		difference := predicted[i] - actual[i]
		rss += difference * difference
		relativeDifference := difference / actual[i]
		rRSS += relativeDifference * relativeDifference
		reSum += math.Abs(difference) / actual[i]
		absSum := math.Abs(actual[i]) + math.Abs(predicted[i])
		if absSum != 0 {
			smapeSum += math.Abs(difference) / absSum * 2
			smapeCount++
		}
	}
	h.rss = rss
	h.rRSS = rRSS
	h.re = reSum / float64(len(measurements))
	if smapeCount > 0 {
		h.smape = smapeSum / float64(smapeCount) * 100
	} else {
		h.smape = math.NaN()
	}
	h.costsAreCalculated = true
}

// ComputeAdjustedRSquared computes AR2 against the given total sum of
// squares. With degrees of freedom <= 0 the result is not a usable score
// (±Inf or NaN); the search layer must skip such under-determined models.
func (h *SingleParameterHypothesis) ComputeAdjustedRSquared(tss float64, measurements []experiment.Measurement) {
	adjR := 1.0 - h.rss/tss
	n := float64(len(measurements))
	degreesFreedom := n - float64(len(h.function.CompoundTerms)) - 1
	h.ar2 = 1.0 - (1.0-adjR)*(n-1.0)/degreesFreedom
}

// CleanConstantCoefficient zeroes a spurious near-zero constant left behind
// by least-squares noise. The threshold is relative to the smallest
// training value, so it scales with the metric's magnitude.
func (h *SingleParameterHypothesis) CleanConstantCoefficient(phi float64, trainingMeasurements []experiment.Measurement) {
	minimum := minimumValue(trainingMeasurements, h.useMedian)
	if math.Abs(h.function.ConstantCoefficient/minimum) < phi {
		h.function.ConstantCoefficient = 0
	}
}

// CalcTermContribution returns the maximum over all measurements of
// |term(coordinate) / actual|, the share of the prediction the term is
// responsible for. The search discards terms contributing below epsilon.
func (h *SingleParameterHypothesis) CalcTermContribution(term model.SingleParameterTerm, measurements []experiment.Measurement) float64 {
	var maximum float64
	for _, m := range measurements {
		contribution := math.Abs(term.Evaluate(m.Coordinate[0]) / m.Value(h.useMedian))
		if contribution > maximum {
			maximum = contribution
		}
	}
	return maximum
}
