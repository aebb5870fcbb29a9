package modeler

import (
	"context"

	"perfmodel/domain/core"
	"perfmodel/domain/experiment"
	"perfmodel/domain/hypothesis"
	"perfmodel/domain/model"
)

// MultiParameterModeler searches for the best model over several
// parameters. It first finds the best single-parameter term along each
// parameter axis, then combines the per-parameter winners into
// multi-parameter candidates: each term alone, the full product, and the
// full sum.
type MultiParameterModeler struct {
	opts   Options
	single *SingleParameterModeler
}

// NewMultiParameterModeler creates a modeler with the default search space.
func NewMultiParameterModeler(opts Options) *MultiParameterModeler {
	opts = opts.withDefaults()
	return &MultiParameterModeler{
		opts:   opts,
		single: NewSingleParameterModeler(opts),
	}
}

// Model searches for the best hypothesis for measurements with coordinates
// of two or more dimensions.
func (m *MultiParameterModeler) Model(ctx context.Context, measurements []experiment.Measurement) (*Result, error) {
	if len(measurements) == 0 {
		return nil, core.ErrNoMeasurements
	}
	dimensions := measurements[0].Coordinate.Dimensions()
	if dimensions < 2 {
		return nil, core.NewCoordinateDimensionError(dimensions, 2)
	}

	result := &Result{RunID: core.NewRunID()}
	constant := m.single.CreateConstantModel(measurements)
	result.Hypothesis = constant
	result.Function = constant.Function()
	if constant.RSS() == 0 {
		return result, nil
	}

	terms := make([]model.SingleParameterTerm, dimensions)
	found := false
	for p := 0; p < dimensions; p++ {
		term, err := m.bestTermForParameter(ctx, measurements, p)
		if err != nil {
			return nil, err
		}
		if term != nil {
			terms[p] = term
			found = true
		}
	}
	if !found {
		// Every axis is flat; the constant baseline stands.
		return result, nil
	}

	tss := hypothesis.TotalSumOfSquares(measurements, m.opts.UseMedian)
	best := hypothesis.Hypothesis(constant)
	for _, function := range m.buildCandidateFunctions(terms) {
		result.CandidatesEvaluated++
		h, ok := m.evaluateCandidate(function, measurements, tss)
		if !ok {
			result.CandidatesDiscarded++
			continue
		}
		if h.SMAPE() < best.SMAPE() {
			best = h
			result.Function = h.Function()
		}
	}
	result.Hypothesis = best
	m.opts.Logger.Debug("multi-parameter search finished: %d candidates, %d discarded", result.CandidatesEvaluated, result.CandidatesDiscarded)
	return result, nil
}

// bestTermForParameter models the measurements along one parameter axis,
// holding all other parameters at their smallest value, and returns the
// winning compound term. A nil term means the axis is best described as
// constant or has too few points on the axis line.
func (m *MultiParameterModeler) bestTermForParameter(ctx context.Context, measurements []experiment.Measurement, parameter int) (model.SingleParameterTerm, error) {
	line := axisLine(measurements, parameter)
	if len(line) < m.opts.MinPoints {
		m.opts.Logger.Warn("parameter %d: only %d points on axis line, treating as constant", parameter, len(line))
		return nil, nil
	}

	projected := make([]experiment.Measurement, len(line))
	for i, ms := range line {
		projected[i] = ms
		projected[i].Coordinate = experiment.NewCoordinate(ms.Coordinate[parameter])
	}

	res, err := m.single.Model(ctx, projected)
	if err != nil {
		return nil, err
	}
	h, ok := res.Hypothesis.(*hypothesis.SingleParameterHypothesis)
	if !ok || len(h.Function().CompoundTerms) == 0 {
		return nil, nil
	}
	return copyCompoundTerm(h.Function().CompoundTerms[0]), nil
}

// buildCandidateFunctions combines the per-parameter terms into candidate
// multi-parameter functions: each term alone, the product of all terms, and
// the sum of all terms.
func (m *MultiParameterModeler) buildCandidateFunctions(terms []model.SingleParameterTerm) []*model.MultiParameterFunction {
	var pairs []model.ParameterTermPair
	for p, term := range terms {
		if term != nil {
			pairs = append(pairs, model.ParameterTermPair{Parameter: p, Term: term})
		}
	}

	// Every candidate gets its own term copies; fitting mutates
	// coefficients in place and candidates must stay independent.
	var functions []*model.MultiParameterFunction
	for _, pair := range pairs {
		functions = append(functions, model.NewMultiParameterFunction(model.NewMultiParameterTerm(copyPair(pair))))
	}
	if len(pairs) > 1 {
		// Full product: one term over all bound parameters.
		product := model.NewMultiParameterTerm()
		for _, pair := range pairs {
			product.AddPair(copyPair(pair))
		}
		functions = append(functions, model.NewMultiParameterFunction(product))
		// Full sum: one term per bound parameter.
		sum := model.NewMultiParameterFunction()
		for _, pair := range pairs {
			sum.AddMultiParameterTerm(model.NewMultiParameterTerm(copyPair(pair)))
		}
		functions = append(functions, sum)
	}
	return functions
}

// evaluateCandidate fits and scores one candidate function and applies the
// rejection gates.
func (m *MultiParameterModeler) evaluateCandidate(function *model.MultiParameterFunction, measurements []experiment.Measurement, tss float64) (*hypothesis.MultiParameterHypothesis, bool) {
	parameterCount := 0
	for _, term := range function.MultiParameterTerms {
		parameterCount += len(term.Pairs)
	}
	if len(measurements) <= parameterCount+1 {
		// No residual degrees of freedom.
		return nil, false
	}

	h := hypothesis.NewMultiParameterHypothesis(function, m.opts.UseMedian)
	if err := h.ComputeCoefficients(measurements); err != nil {
		return nil, false
	}
	h.ComputeCost(measurements)
	if !h.IsValid() {
		return nil, false
	}
	h.CleanConstantCoefficient(m.opts.Phi, measurements)
	for i := range function.MultiParameterTerms {
		if h.CalcTermContribution(i, measurements) < m.opts.Epsilon {
			return nil, false
		}
	}
	h.ComputeAdjustedRSquared(tss, measurements)
	return h, true
}

// axisLine selects the measurements whose coordinates sit on the line along
// the given parameter through the minimum of every other parameter.
func axisLine(measurements []experiment.Measurement, parameter int) []experiment.Measurement {
	dimensions := measurements[0].Coordinate.Dimensions()
	minimum := make([]float64, dimensions)
	copy(minimum, measurements[0].Coordinate)
	for _, ms := range measurements {
		for d, v := range ms.Coordinate {
			if v < minimum[d] {
				minimum[d] = v
			}
		}
	}

	var line []experiment.Measurement
	for _, ms := range measurements {
		onLine := true
		for d := 0; d < dimensions; d++ {
			if d != parameter && ms.Coordinate[d] != minimum[d] {
				onLine = false
				break
			}
		}
		if onLine {
			line = append(line, ms)
		}
	}
	return line
}
