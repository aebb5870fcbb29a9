package modeler

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	"perfmodel/domain/core"
	"perfmodel/domain/experiment"
	"perfmodel/domain/hypothesis"
	"perfmodel/domain/model"
)

// SingleParameterModeler searches for the best model over one parameter.
type SingleParameterModeler struct {
	opts           Options
	buildingBlocks []*model.CompoundTerm
}

// NewSingleParameterModeler creates a modeler with the default search space.
func NewSingleParameterModeler(opts Options) *SingleParameterModeler {
	return &SingleParameterModeler{
		opts:           opts.withDefaults(),
		buildingBlocks: DefaultBuildingBlocks(),
	}
}

// CreateConstantModel builds and scores the constant baseline: a constant
// function whose coefficient is the mean of the modeled statistic.
func (m *SingleParameterModeler) CreateConstantModel(measurements []experiment.Measurement) *hypothesis.ConstantHypothesis {
	var mean float64
	for _, ms := range measurements {
		mean += ms.Value(m.opts.UseMedian)
	}
	mean /= float64(len(measurements))

	h := hypothesis.NewConstantHypothesis(model.NewConstantFunction(mean), m.opts.UseMedian)
	h.ComputeCost(measurements)
	return h
}

// Model searches for the best hypothesis for the measurements. With fewer
// points than MinPoints only the constant baseline is considered; a
// non-constant model would be under-determined.
func (m *SingleParameterModeler) Model(ctx context.Context, measurements []experiment.Measurement) (*Result, error) {
	if len(measurements) == 0 {
		return nil, core.ErrNoMeasurements
	}

	result := &Result{RunID: core.NewRunID()}
	constant := m.CreateConstantModel(measurements)
	result.Hypothesis = constant
	result.Function = constant.Function()

	if len(measurements) < m.opts.MinPoints {
		m.opts.Logger.Warn("only %d of %d required points, keeping constant model", len(measurements), m.opts.MinPoints)
		return result, nil
	}
	if constant.RSS() == 0 {
		// The constant explains the data exactly.
		return result, nil
	}

	tss := hypothesis.TotalSumOfSquares(measurements, m.opts.UseMedian)
	candidates := m.evaluateCandidates(ctx, measurements, tss)
	result.CandidatesEvaluated = len(m.buildingBlocks)
	result.CandidatesDiscarded = len(m.buildingBlocks) - len(candidates)

	best := hypothesis.Hypothesis(constant)
	for _, candidate := range candidates {
		if candidate.SMAPE() < best.SMAPE() {
			best = candidate
			result.Function = candidate.Function()
		}
	}
	result.Hypothesis = best
	m.opts.Logger.Debug("single-parameter search finished: %d candidates, %d discarded", result.CandidatesEvaluated, result.CandidatesDiscarded)
	return result, nil
}

// evaluateCandidates fits and scores every building block, throttled by a
// weighted semaphore. Each candidate owns its function and term copies.
func (m *SingleParameterModeler) evaluateCandidates(ctx context.Context, measurements []experiment.Measurement, tss float64) []*hypothesis.SingleParameterHypothesis {
	sem := semaphore.NewWeighted(int64(m.opts.MaxConcurrency))
	var wg sync.WaitGroup
	var mu sync.Mutex
	var kept []*hypothesis.SingleParameterHypothesis

	for _, block := range m.buildingBlocks {
		if err := sem.Acquire(ctx, 1); err != nil {
			break
		}
		wg.Add(1)
		go func(block *model.CompoundTerm) {
			defer wg.Done()
			defer sem.Release(1)
			if h, ok := m.evaluateCandidate(block, measurements, tss); ok {
				mu.Lock()
				kept = append(kept, h)
				mu.Unlock()
			}
		}(block)
	}
	wg.Wait()
	return kept
}

// evaluateCandidate fits one candidate term by leave-one-out
// cross-validation and applies the rejection gates. The reported ok is
// false when the candidate must be discarded.
func (m *SingleParameterModeler) evaluateCandidate(block *model.CompoundTerm, measurements []experiment.Measurement, tss float64) (*hypothesis.SingleParameterHypothesis, bool) {
	if len(measurements) <= 2 {
		// No residual degrees of freedom for a one-term model.
		return nil, false
	}

	term := copyCompoundTerm(block)
	function := model.NewSingleParameterFunction(term)
	h := hypothesis.NewSingleParameterHypothesis(function, m.opts.UseMedian)

	training := make([]experiment.Measurement, 0, len(measurements)-1)
	for i := range measurements {
		training = training[:0]
		training = append(training, measurements[:i]...)
		training = append(training, measurements[i+1:]...)
		if err := h.ComputeCoefficients(training); err != nil {
			return nil, false
		}
		h.ComputeCost(training, measurements[i])
	}
	if !h.IsValid() {
		return nil, false
	}

	// Final coefficients come from the full measurement set; the
	// cross-validation cost above is what ranks the candidate.
	if err := h.ComputeCoefficients(measurements); err != nil {
		return nil, false
	}
	h.CleanConstantCoefficient(m.opts.Phi, measurements)
	if h.CalcTermContribution(term, measurements) < m.opts.Epsilon {
		return nil, false
	}
	h.ComputeAdjustedRSquared(tss, measurements)
	return h, true
}
