package model

import "strings"

// Function is an additive performance model: a constant offset plus zero or
// more terms. The hierarchy is closed: ConstantFunction,
// SingleParameterFunction and MultiParameterFunction are the only
// implementations.
type Function interface {
	// Evaluate computes the function at one coordinate. Single-parameter
	// functions accept a length-1 coordinate and unwrap it.
	Evaluate(coordinate []float64) float64
	// StringWith renders "constant + term1 + term2 + ..." using the given
	// parameter labels, falling back to p, q, r, s, t.
	StringWith(parameters ...string) string
}

// ConstantFunction is a function with no terms. It deliberately has no
// term-mutation method; a constant model has no solvable linear terms.
type ConstantFunction struct {
	ConstantCoefficient float64
}

// NewConstantFunction creates a constant function with the given value.
func NewConstantFunction(constant float64) *ConstantFunction {
	return &ConstantFunction{ConstantCoefficient: constant}
}

// Evaluate returns the constant regardless of the coordinate.
func (f *ConstantFunction) Evaluate(_ []float64) float64 {
	return f.ConstantCoefficient
}

// EvaluateAll returns the constant broadcast over n points.
func (f *ConstantFunction) EvaluateAll(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = f.ConstantCoefficient
	}
	return out
}

// StringWith renders the constant.
func (f *ConstantFunction) StringWith(_ ...string) string {
	return formatCoefficient(f.ConstantCoefficient)
}

// SingleParameterFunction is a constant plus compound terms over one
// parameter.
type SingleParameterFunction struct {
	ConstantCoefficient float64
	CompoundTerms       []*CompoundTerm
}

// NewSingleParameterFunction creates a function with constant coefficient 1
// and the given terms.
func NewSingleParameterFunction(terms ...*CompoundTerm) *SingleParameterFunction {
	return &SingleParameterFunction{ConstantCoefficient: 1, CompoundTerms: terms}
}

// AddCompoundTerm appends a term to the sum.
func (f *SingleParameterFunction) AddCompoundTerm(term *CompoundTerm) {
	f.CompoundTerms = append(f.CompoundTerms, term)
}

// Evaluate computes the function at a coordinate, transparently unwrapping a
// length-1 coordinate to its scalar value.
func (f *SingleParameterFunction) Evaluate(coordinate []float64) float64 {
	return f.EvaluateScalar(coordinate[0])
}

// EvaluateScalar computes constant + Σ term(value). Terms are summed in
// stored order for floating-point reproducibility.
func (f *SingleParameterFunction) EvaluateScalar(value float64) float64 {
	result := f.ConstantCoefficient
	for _, t := range f.CompoundTerms {
		result += t.Evaluate(value)
	}
	return result
}

// EvaluateAll computes the function elementwise over a vector of parameter
// values. Out-of-range points may yield NaN or ±Inf elements without
// aborting the batch.
func (f *SingleParameterFunction) EvaluateAll(values []float64) []float64 {
	out := make([]float64, len(values))
	for i := range out {
		out[i] = f.ConstantCoefficient
	}
	for _, t := range f.CompoundTerms {
		for i, v := range values {
			out[i] += t.Evaluate(v)
		}
	}
	return out
}

// StringWith renders the sum joined by " + ".
func (f *SingleParameterFunction) StringWith(parameters ...string) string {
	label := parameterName(parameters, 0)
	var sb strings.Builder
	sb.WriteString(formatCoefficient(f.ConstantCoefficient))
	for _, t := range f.CompoundTerms {
		sb.WriteString(" + ")
		sb.WriteString(t.StringWith(label))
	}
	return sb.String()
}

// Equal reports full structural equality.
func (f *SingleParameterFunction) Equal(other *SingleParameterFunction) bool {
	if f == other {
		return true
	}
	if other == nil || f.ConstantCoefficient != other.ConstantCoefficient || len(f.CompoundTerms) != len(other.CompoundTerms) {
		return false
	}
	for i := range f.CompoundTerms {
		if !f.CompoundTerms[i].Equal(other.CompoundTerms[i]) {
			return false
		}
	}
	return true
}

// MultiParameterFunction is a constant plus multi-parameter terms over a
// coordinate indexable by parameter position.
type MultiParameterFunction struct {
	ConstantCoefficient float64
	MultiParameterTerms []*MultiParameterTerm
}

// NewMultiParameterFunction creates a function with constant coefficient 1
// and the given terms.
func NewMultiParameterFunction(terms ...*MultiParameterTerm) *MultiParameterFunction {
	return &MultiParameterFunction{ConstantCoefficient: 1, MultiParameterTerms: terms}
}

// AddMultiParameterTerm appends a term to the sum.
func (f *MultiParameterFunction) AddMultiParameterTerm(term *MultiParameterTerm) {
	f.MultiParameterTerms = append(f.MultiParameterTerms, term)
}

// Evaluate computes constant + Σ term(coordinate).
func (f *MultiParameterFunction) Evaluate(coordinate []float64) float64 {
	result := f.ConstantCoefficient
	for _, t := range f.MultiParameterTerms {
		result += t.Evaluate(coordinate)
	}
	return result
}

// EvaluateAll computes the function per coordinate of a batch.
func (f *MultiParameterFunction) EvaluateAll(coordinates [][]float64) []float64 {
	out := make([]float64, len(coordinates))
	for i, c := range coordinates {
		out[i] = f.Evaluate(c)
	}
	return out
}

// StringWith renders the sum joined by " + ".
func (f *MultiParameterFunction) StringWith(parameters ...string) string {
	var sb strings.Builder
	sb.WriteString(formatCoefficient(f.ConstantCoefficient))
	for _, t := range f.MultiParameterTerms {
		sb.WriteString(" + ")
		sb.WriteString(t.StringWith(parameters...))
	}
	return sb.String()
}

// Equal reports full structural equality.
func (f *MultiParameterFunction) Equal(other *MultiParameterFunction) bool {
	if f == other {
		return true
	}
	if other == nil || f.ConstantCoefficient != other.ConstantCoefficient || len(f.MultiParameterTerms) != len(other.MultiParameterTerms) {
		return false
	}
	for i := range f.MultiParameterTerms {
		if !f.MultiParameterTerms[i].Equal(other.MultiParameterTerms[i]) {
			return false
		}
	}
	return true
}
