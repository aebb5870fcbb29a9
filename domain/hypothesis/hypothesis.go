// Package hypothesis binds candidate performance functions to the fitting
// and scoring protocols used to rank them. A hypothesis moves through a
// one-way lifecycle: constructed unfit, coefficients fitted by least
// squares, costs computed, then read-only. Re-fitting means constructing a
// new hypothesis.
//
// Numeric degeneracy (NaN or infinite scores from log/power domain issues
// or ill-conditioned fits) is deliberately not an error: degenerate values
// flow into the score fields and IsValid is the single rejection gate.
package hypothesis

import (
	"math"

	"perfmodel/domain/experiment"
	"perfmodel/domain/model"
)

// Hypothesis is the read surface an outer search uses to rank candidates
// after fitting and scoring.
type Hypothesis interface {
	// RSS is the residual sum of squares.
	RSS() float64
	// RRSS is the RSS of the relative (normalized-by-actual) differences.
	RRSS() float64
	// AR2 is the adjusted R², penalized for model parameter count.
	AR2() float64
	// SMAPE is the symmetric mean absolute percentage error, in percent.
	SMAPE() float64
	// RE is the mean relative error.
	RE() float64
	// IsValid reports whether the fit is free of numeric imprecision.
	IsValid() bool
	// UseMedian reports which statistic the hypothesis models.
	UseMedian() bool
}

// scores holds the quality metrics shared by all hypothesis variants.
// Reading any score before cost computation is a caller defect and panics;
// silently returning a stale zero would let a broken search rank garbage.
type scores struct {
	rss, rRSS, smape, ar2, re float64
	useMedian                 bool
	costsAreCalculated        bool
}

func (s *scores) requireCosts() {
	if !s.costsAreCalculated {
		panic("hypothesis: costs are not calculated")
	}
}

// RSS returns the residual sum of squares.
func (s *scores) RSS() float64 {
	s.requireCosts()
	return s.rss
}

// RRSS returns the relative residual sum of squares.
func (s *scores) RRSS() float64 {
	s.requireCosts()
	return s.rRSS
}

// AR2 returns the adjusted R².
func (s *scores) AR2() float64 {
	s.requireCosts()
	return s.ar2
}

// SMAPE returns the symmetric mean absolute percentage error.
func (s *scores) SMAPE() float64 {
	s.requireCosts()
	return s.smape
}

// RE returns the mean relative error.
func (s *scores) RE() float64 {
	s.requireCosts()
	return s.re
}

// UseMedian reports whether the hypothesis models the median instead of the
// mean.
func (s *scores) UseMedian() bool { return s.useMedian }

// CostsComputed reports whether cost computation has run.
func (s *scores) CostsComputed() bool { return s.costsAreCalculated }

// IsValid reports whether the RSS is finite. A NaN or infinite RSS marks a
// numerically degenerate fit the search must discard.
func (s *scores) IsValid() bool {
	rss := s.RSS()
	return !math.IsNaN(rss) && !math.IsInf(rss, 0)
}

// minimumValue returns the smallest chosen statistic over the training set.
func minimumValue(measurements []experiment.Measurement, useMedian bool) float64 {
	minimum := math.Inf(1)
	for _, m := range measurements {
		if v := m.Value(useMedian); v < minimum {
			minimum = v
		}
	}
	return minimum
}

// TotalSumOfSquares computes Σ (actual - mean(actual))², the baseline
// variance that adjusted R² is measured against.
func TotalSumOfSquares(measurements []experiment.Measurement, useMedian bool) float64 {
	var mean float64
	for _, m := range measurements {
		mean += m.Value(useMedian)
	}
	mean /= float64(len(measurements))
	var tss float64
	for _, m := range measurements {
		diff := m.Value(useMedian) - mean
		tss += diff * diff
	}
	return tss
}

// ConstantHypothesis models data unaffected by the parameter values. Its
// single coefficient is not fitted by least squares: the search sets it
// directly, typically to the mean or median of the training values.
type ConstantHypothesis struct {
	scores
	function *model.ConstantFunction
}

// NewConstantHypothesis creates an unscored constant hypothesis.
func NewConstantHypothesis(function *model.ConstantFunction, useMedian bool) *ConstantHypothesis {
	return &ConstantHypothesis{
		scores:   scores{useMedian: useMedian},
		function: function,
	}
}

// Function returns the underlying constant function.
func (h *ConstantHypothesis) Function() *model.ConstantFunction { return h.function }

// AR2 is fixed at 1 for a constant model; there are no residual parameter
// degrees of freedom to adjust for.
func (h *ConstantHypothesis) AR2() float64 { return 1 }

// ComputeCost scores the constant against all measurements. A point where
// actual and predicted are both exactly zero contributes zero SMAPE error
// rather than a 0/0 division.
func (h *ConstantHypothesis) ComputeCost(measurements []experiment.Measurement) {
	predicted := h.function.ConstantCoefficient
	var smape float64
	for _, m := range measurements {
		actual := m.Value(h.useMedian)
		difference := predicted - actual
		h.rss += difference * difference
		relativeDifference := difference / actual
		h.rRSS += relativeDifference * relativeDifference
		absSum := math.Abs(actual) + math.Abs(predicted)
		if absSum != 0 {
			smape += math.Abs(difference) / absSum * 2
		}
	}
	h.smape = smape / float64(len(measurements)) * 100
	h.costsAreCalculated = true
}
