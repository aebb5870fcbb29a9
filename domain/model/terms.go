package model

import (
	"math"
	"strconv"
	"strings"
)

// DefaultParameterNames are the labels used for rendering when no explicit
// parameter names are supplied.
var DefaultParameterNames = []string{"p", "q", "r", "s", "t"}

// TermKind tags the two simple term shapes.
type TermKind string

const (
	Polynomial TermKind = "polynomial"
	Logarithm  TermKind = "logarithm"
)

// SingleParameterTerm is a term over a single scalar parameter value. The
// hierarchy is closed: SimpleTerm and CompoundTerm are the only
// implementations.
type SingleParameterTerm interface {
	// Evaluate computes the term at one parameter value. Domain violations
	// (log of a non-positive value, zero to a negative power) yield NaN or
	// ±Inf instead of failing; validity is judged downstream on the
	// aggregated scores.
	Evaluate(value float64) float64
	// EvaluateAll computes the term elementwise over a vector of values.
	EvaluateAll(values []float64) []float64
	// StringWith renders the term using the given parameter label.
	StringWith(parameter string) string
}

// SimpleTerm is an atomic factor: value^exponent or log2(value)^exponent.
// It carries no coefficient; that is folded into the owning compound term.
// Identity is (kind, exponent), so the zero coefficient question never
// arises.
type SimpleTerm struct {
	Kind     TermKind
	Exponent Fraction
}

// NewSimpleTerm creates a simple term of the given kind and exponent.
func NewSimpleTerm(kind TermKind, exponent Fraction) SimpleTerm {
	return SimpleTerm{Kind: kind, Exponent: exponent}
}

// Evaluate computes the factor at one parameter value.
func (t SimpleTerm) Evaluate(value float64) float64 {
	switch t.Kind {
	case Polynomial:
		return math.Pow(value, t.Exponent.Value())
	case Logarithm:
		return math.Pow(math.Log2(value), t.Exponent.Value())
	default:
		return math.NaN()
	}
}

// EvaluateAll computes the factor elementwise.
func (t SimpleTerm) EvaluateAll(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = t.Evaluate(v)
	}
	return out
}

// StringWith renders the factor as "p^(3/4)" or "log2(p)^(2)".
func (t SimpleTerm) StringWith(parameter string) string {
	if t.Kind == Logarithm {
		return "log2(" + parameter + ")^(" + t.Exponent.String() + ")"
	}
	return parameter + "^(" + t.Exponent.String() + ")"
}

// CompoundTerm is a coefficient times a product of simple terms, all over
// the same single parameter. The coefficient is overwritten by fitting; the
// simple terms are fixed at construction.
type CompoundTerm struct {
	Coefficient float64
	SimpleTerms []SimpleTerm
}

// NewCompoundTerm creates a compound term with coefficient 1.
func NewCompoundTerm(terms ...SimpleTerm) *CompoundTerm {
	return &CompoundTerm{Coefficient: 1, SimpleTerms: terms}
}

// NewCompoundTermFromExponents builds the product for a rational polynomial
// exponent num/den and an integral log2 exponent. Factors with a zero
// exponent are omitted.
func NewCompoundTermFromExponents(num, den, logExponent int64) *CompoundTerm {
	term := NewCompoundTerm()
	if num != 0 {
		term.AddSimpleTerm(NewSimpleTerm(Polynomial, NewFraction(num, den)))
	}
	if logExponent != 0 {
		term.AddSimpleTerm(NewSimpleTerm(Logarithm, NewIntFraction(logExponent)))
	}
	return term
}

// AddSimpleTerm appends a factor to the product.
func (t *CompoundTerm) AddSimpleTerm(simple SimpleTerm) {
	t.SimpleTerms = append(t.SimpleTerms, simple)
}

// Evaluate computes coefficient * Π simpleTerms(value). Factors are
// multiplied in stored order for floating-point reproducibility.
func (t *CompoundTerm) Evaluate(value float64) float64 {
	result := t.Coefficient
	for _, s := range t.SimpleTerms {
		result *= s.Evaluate(value)
	}
	return result
}

// EvaluateAll computes the term elementwise over a vector of values.
func (t *CompoundTerm) EvaluateAll(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = t.Evaluate(v)
	}
	return out
}

// StringWith renders the product joined by " * ", prefixed by the
// coefficient unless it is exactly 1.
func (t *CompoundTerm) StringWith(parameter string) string {
	parts := make([]string, len(t.SimpleTerms))
	for i, s := range t.SimpleTerms {
		parts[i] = s.StringWith(parameter)
	}
	rendered := strings.Join(parts, " * ")
	if t.Coefficient != 1 {
		rendered = formatCoefficient(t.Coefficient) + " * " + rendered
	}
	return rendered
}

// Equal reports structural equality: coefficient and the ordered factor
// sequence.
func (t *CompoundTerm) Equal(other *CompoundTerm) bool {
	if t == other {
		return true
	}
	if other == nil || t.Coefficient != other.Coefficient || len(t.SimpleTerms) != len(other.SimpleTerms) {
		return false
	}
	for i := range t.SimpleTerms {
		if t.SimpleTerms[i] != other.SimpleTerms[i] {
			return false
		}
	}
	return true
}

// ParameterTermPair binds a single-parameter term to the index of the
// parameter it consumes.
type ParameterTermPair struct {
	Parameter int
	Term      SingleParameterTerm
}

// MultiParameterTerm is a coefficient times a product of single-parameter
// terms, each bound to a distinct parameter index of the coordinate.
type MultiParameterTerm struct {
	Coefficient float64
	Pairs       []ParameterTermPair
}

// NewMultiParameterTerm creates a multi-parameter term with coefficient 1.
func NewMultiParameterTerm(pairs ...ParameterTermPair) *MultiParameterTerm {
	return &MultiParameterTerm{Coefficient: 1, Pairs: pairs}
}

// AddPair appends a (parameter index, term) factor.
func (t *MultiParameterTerm) AddPair(pair ParameterTermPair) {
	t.Pairs = append(t.Pairs, pair)
}

// Evaluate computes coefficient * Π pair.Term(values[pair.Parameter]). The
// values slice must be indexable by every bound parameter index.
func (t *MultiParameterTerm) Evaluate(values []float64) float64 {
	result := t.Coefficient
	for _, pair := range t.Pairs {
		result *= pair.Term.Evaluate(values[pair.Parameter])
	}
	return result
}

// StringWith renders the coefficient followed by each factor, joined by
// " * ". Missing labels fall back to p, q, r, s, t by parameter index.
func (t *MultiParameterTerm) StringWith(parameters ...string) string {
	var sb strings.Builder
	sb.WriteString(formatCoefficient(t.Coefficient))
	for _, pair := range t.Pairs {
		sb.WriteString(" * ")
		sb.WriteString(pair.Term.StringWith(parameterName(parameters, pair.Parameter)))
	}
	return sb.String()
}

// Equal reports structural equality: coefficient and the ordered pair
// sequence.
func (t *MultiParameterTerm) Equal(other *MultiParameterTerm) bool {
	if t == other {
		return true
	}
	if other == nil || t.Coefficient != other.Coefficient || len(t.Pairs) != len(other.Pairs) {
		return false
	}
	for i := range t.Pairs {
		if t.Pairs[i].Parameter != other.Pairs[i].Parameter {
			return false
		}
		if !singleParameterTermsEqual(t.Pairs[i].Term, other.Pairs[i].Term) {
			return false
		}
	}
	return true
}

func singleParameterTermsEqual(a, b SingleParameterTerm) bool {
	switch at := a.(type) {
	case SimpleTerm:
		bt, ok := b.(SimpleTerm)
		return ok && at == bt
	case *CompoundTerm:
		bt, ok := b.(*CompoundTerm)
		return ok && at.Equal(bt)
	default:
		return false
	}
}

func parameterName(parameters []string, index int) string {
	if index < len(parameters) && parameters[index] != "" {
		return parameters[index]
	}
	if index < len(DefaultParameterNames) {
		return DefaultParameterNames[index]
	}
	return "p" + strconv.Itoa(index)
}

func formatCoefficient(c float64) string {
	return strconv.FormatFloat(c, 'g', -1, 64)
}
