// Package modeler implements the model search: it enumerates candidate
// terms, wraps them into functions and hypotheses, fits and scores them
// against the measurements, and keeps the best valid candidate. Each
// candidate owns its function and terms outright, so candidates can be
// evaluated concurrently without synchronization.
package modeler

import (
	"perfmodel/domain/core"
	"perfmodel/domain/hypothesis"
	"perfmodel/domain/model"
	"perfmodel/internal"
	"perfmodel/internal/config"
)

// Options configure a model search.
type Options struct {
	// UseMedian selects the median instead of the mean as the modeled
	// statistic, uniformly across fitting and scoring.
	UseMedian bool
	// Epsilon is the minimum term contribution; terms below it are noise.
	Epsilon float64
	// Phi is the relative threshold for zeroing a spurious constant.
	Phi float64
	// MinPoints is the minimum number of points for a non-constant model.
	MinPoints int
	// MaxConcurrency bounds concurrent candidate evaluation.
	MaxConcurrency int
	// Logger receives search progress. Defaults to the LOG_LEVEL logger.
	Logger *internal.Logger
}

func (o Options) withDefaults() Options {
	if o.Epsilon == 0 {
		o.Epsilon = config.DefaultEpsilon
	}
	if o.Phi == 0 {
		o.Phi = config.DefaultPhi
	}
	if o.MinPoints == 0 {
		o.MinPoints = config.DefaultMinPoints
	}
	if o.MaxConcurrency < 1 {
		o.MaxConcurrency = config.DefaultMaxConcurrency
	}
	if o.Logger == nil {
		o.Logger = internal.NewDefaultLogger()
	}
	return o
}

// FromConfig builds search options from the application configuration.
func FromConfig(cfg config.ModelingConfig, logger *internal.Logger) Options {
	return Options{
		UseMedian:      cfg.UseMedian,
		Epsilon:        cfg.Epsilon,
		Phi:            cfg.Phi,
		MinPoints:      cfg.MinPoints,
		MaxConcurrency: cfg.MaxConcurrency,
		Logger:         logger,
	}
}

// Result is the outcome of one model search.
type Result struct {
	RunID core.RunID
	// Hypothesis is the winning candidate with its computed scores.
	Hypothesis hypothesis.Hypothesis
	// Function is the winning fitted function.
	Function model.Function
	// CandidatesEvaluated counts candidate hypotheses that were fitted and
	// scored; CandidatesDiscarded counts those rejected by the validity,
	// degrees-of-freedom, or term-contribution gates.
	CandidatesEvaluated int
	CandidatesDiscarded int
}

// copyCompoundTerm clones a building-block term with a fresh coefficient so
// no term instance is shared between two hypotheses.
func copyCompoundTerm(t *model.CompoundTerm) *model.CompoundTerm {
	simple := make([]model.SimpleTerm, len(t.SimpleTerms))
	copy(simple, t.SimpleTerms)
	return &model.CompoundTerm{Coefficient: 1, SimpleTerms: simple}
}

// copyPair clones a parameter-term pair. SimpleTerm is an immutable value
// and needs no copy.
func copyPair(pair model.ParameterTermPair) model.ParameterTermPair {
	if ct, ok := pair.Term.(*model.CompoundTerm); ok {
		pair.Term = copyCompoundTerm(ct)
	}
	return pair
}
