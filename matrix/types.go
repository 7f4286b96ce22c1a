// SPDX-License-Identifier: MIT

// Package matrix: the read surface shared by Dense storage and MatrixView
// windows. Errors live in errors.go.
package matrix

// Reader is the read-only subset of a matrix.
// Both *Dense and *MatrixView satisfy it, so solvers can consume a no-copy
// window wherever they only need to read coefficients.
//
// Complexity notes: all methods are expected O(1).
type Reader interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)
}
