// Package bip - feasibility checks on relaxed and full assignments.
//
// IsBinary and RoundToBinary work elementwise with an absolute tolerance.
// SatisfiesAll checks the original rows A·x ≤ b + tol for a leaf.

package bip

import (
	"math"

	"github.com/katalvlaran/bilp/matrix"
)

// IsBinary reports whether every component of x lies within tol of 0 or of 1.
// An empty vector is binary.
func IsBinary(x []float64, tol float64) bool {
	for _, v := range x {
		if math.Abs(v) > tol && math.Abs(v-1) > tol {
			return false
		}
	}

	return true
}

// RoundToBinary returns a copy of x where components within tol of 0 or 1 are
// snapped exactly. Other components are copied unchanged.
// Used only for reporting; bounds always use the unrounded objective.
func RoundToBinary(x []float64, tol float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		switch {
		case math.Abs(v) <= tol:
			out[i] = 0
		case math.Abs(v-1) <= tol:
			out[i] = 1
		default:
			out[i] = v
		}
	}

	return out
}

// SatisfiesAll reports whether a·x ≤ b + tol holds row by row.
// Shape errors are returned from the matrix package.
func SatisfiesAll(a matrix.Reader, b, x []float64, tol float64) (bool, error) {
	if err := matrix.ValidateMulVec(a, x); err != nil {
		return false, err
	}
	if err := matrix.ValidateVecLen(b, a.Rows()); err != nil {
		return false, err
	}
	ax := make([]float64, a.Rows())
	if err := matrix.MulVecInto(ax, a, x); err != nil {
		return false, err
	}
	for i := range ax {
		if ax[i] > b[i]+tol {
			return false, nil
		}
	}

	return true, nil
}
