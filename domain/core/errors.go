package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Data errors
	ErrNoMeasurements   = errors.New("no measurements supplied")
	ErrInsufficientData = errors.New("insufficient data for modeling")
	ErrEmptyRepetitions = errors.New("measurement has no repeated values")

	// Fitting errors
	ErrDecompositionFailed = errors.New("matrix decomposition did not converge")
	ErrDimensionMismatch   = errors.New("system dimensions do not match")
	ErrDegenerateModel     = errors.New("model fit is numerically degenerate")

	// Experiment errors
	ErrUnknownParameter    = errors.New("unknown parameter")
	ErrCoordinateDimension = errors.New("coordinate dimension mismatch")
)

// Error constructors with context
func NewInsufficientDataError(have, want int) error {
	return fmt.Errorf("%w: have %d points, need %d", ErrInsufficientData, have, want)
}

func NewCoordinateDimensionError(have, want int) error {
	return fmt.Errorf("%w: coordinate has %d dimensions, expected %d", ErrCoordinateDimension, have, want)
}

// Error checking helpers
func IsDataError(err error) bool {
	return errors.Is(err, ErrNoMeasurements) ||
		errors.Is(err, ErrInsufficientData) ||
		errors.Is(err, ErrEmptyRepetitions)
}

func IsFittingError(err error) bool {
	return errors.Is(err, ErrDecompositionFailed) ||
		errors.Is(err, ErrDimensionMismatch) ||
		errors.Is(err, ErrDegenerateModel)
}
