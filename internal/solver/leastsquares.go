// Package solver wraps the numerically stable least-squares solve used for
// coefficient fitting. The design matrices here are tiny (a handful of
// columns) but frequently rank-deficient, e.g. when a candidate term is
// constant over the training coordinates, so the solve goes through an SVD
// pseudo-inverse instead of direct inversion.
package solver

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"perfmodel/domain/core"
)

// LeastSquares computes the minimum-norm x that minimizes ||A·x - b||₂.
// Rows of a are observations, columns are model terms. Singular values below
// the machine-precision cutoff are treated as zero, matching the default
// rank tolerance of standard lstsq implementations.
func LeastSquares(a [][]float64, b []float64) ([]float64, error) {
	rows := len(a)
	if rows == 0 || len(b) == 0 {
		return nil, core.ErrNoMeasurements
	}
	if rows != len(b) {
		return nil, core.ErrDimensionMismatch
	}
	cols := len(a[0])
	flat := make([]float64, 0, rows*cols)
	for _, row := range a {
		if len(row) != cols {
			return nil, core.ErrDimensionMismatch
		}
		flat = append(flat, row...)
	}

	var svd mat.SVD
	if ok := svd.Factorize(mat.NewDense(rows, cols, flat), mat.SVDThin); !ok {
		return nil, core.ErrDecompositionFailed
	}

	values := svd.Values(nil)
	rank := effectiveRank(values, rows, cols)
	if rank == 0 {
		// All-zero system; the minimum-norm solution is the zero vector.
		return make([]float64, cols), nil
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	// x = V · Σ⁺ · Uᵀ · b
	scaled := make([]float64, len(values))
	for j := 0; j < rank; j++ {
		var dot float64
		for i := 0; i < rows; i++ {
			dot += u.At(i, j) * b[i]
		}
		scaled[j] = dot / values[j]
	}
	x := make([]float64, cols)
	for i := 0; i < cols; i++ {
		var sum float64
		for j := 0; j < rank; j++ {
			sum += v.At(i, j) * scaled[j]
		}
		x[i] = sum
	}
	return x, nil
}

func effectiveRank(singularValues []float64, rows, cols int) int {
	if len(singularValues) == 0 {
		return 0
	}
	larger := rows
	if cols > larger {
		larger = cols
	}
	tolerance := float64(larger) * singularValues[0] * machineEpsilon
	rank := 0
	for _, s := range singularValues {
		if s > tolerance {
			rank++
		}
	}
	return rank
}

var machineEpsilon = math.Nextafter(1, 2) - 1
