// SPDX-License-Identifier: MIT

// Package matrix - vector kernels and row stacking.
//
// All functions perform fail-fast validation and return wrapped sentinels.
// Fast paths operate directly on the flat buffer of *Dense and *MatrixView;
// any other Reader goes through bounds-checked At.
package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opMulVec = "MulVec"
	opDot    = "Dot"
	opVStack = "VStack"
)

// matrixErrorf wraps an underlying error with the given tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MulVec returns y = a·x as a new slice of length a.Rows().
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(x) != a.Cols()).
//
// Complexity: O(r·c) time, O(r) space.
func MulVec(a Reader, x []float64) ([]float64, error) {
	if err := ValidateMulVec(a, x); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	y := make([]float64, a.Rows())
	if err := mulVecInto(y, a, x); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}

	return y, nil
}

// MulVecInto writes a·x into dst, which must have length a.Rows().
// It allocates nothing and is used on the per-node hot path.
//
// Complexity: O(r·c) time, O(1) space.
func MulVecInto(dst []float64, a Reader, x []float64) error {
	if err := ValidateMulVec(a, x); err != nil {
		return matrixErrorf(opMulVec, err)
	}
	if err := ValidateVecLen(dst, a.Rows()); err != nil {
		return matrixErrorf(opMulVec, err)
	}

	return mulVecInto(dst, a, x)
}

// mulVecInto assumes validated shapes.
func mulVecInto(dst []float64, a Reader, x []float64) error {
	var (
		i, j int
		sum  float64
		av   float64
		err  error
	)
	switch m := a.(type) {
	case *Dense:
		var base int
		for i = 0; i < m.r; i++ {
			base = i * m.c
			sum = 0
			for j = 0; j < m.c; j++ {
				av = m.data[base+j]
				if av == 0 {
					continue // skip zero for performance
				}
				sum += av * x[j]
			}
			dst[i] = sum
		}

		return nil
	case *MatrixView:
		var row []float64
		for i = 0; i < m.r; i++ {
			row = m.rowSlice(i)
			sum = 0
			for j = range row {
				if row[j] == 0 {
					continue
				}
				sum += row[j] * x[j]
			}
			dst[i] = sum
		}

		return nil
	}

	// Fallback: generic interface double loop.
	rows, cols := a.Rows(), a.Cols()
	for i = 0; i < rows; i++ {
		sum = 0
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return err
			}
			sum += av * x[j]
		}
		dst[i] = sum
	}

	return nil
}

// Dot returns Σ x[i]·y[i].
//
// Errors:
//   - ErrDimensionMismatch when len(x) != len(y).
//
// Complexity: O(n).
func Dot(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, matrixErrorf(opDot, ErrDimensionMismatch)
	}
	var (
		s float64
		i int
	)
	for i = range x {
		s += x[i] * y[i]
	}

	return s, nil
}

// VStack returns a new Dense holding the rows of top followed by the rows of bottom.
// Either operand may have zero rows; the column counts must agree.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (column counts differ),
//     ErrBadShape (both operands empty).
//
// Complexity: O((r1+r2)·c).
func VStack(top, bottom Reader) (*Dense, error) {
	if err := ValidateNotNil(top); err != nil {
		return nil, matrixErrorf(opVStack, err)
	}
	if err := ValidateNotNil(bottom); err != nil {
		return nil, matrixErrorf(opVStack, err)
	}
	if top.Cols() != bottom.Cols() {
		return nil, matrixErrorf(opVStack, ErrDimensionMismatch)
	}
	r1, r2, c := top.Rows(), bottom.Rows(), top.Cols()
	if r1+r2 == 0 || c <= 0 {
		return nil, matrixErrorf(opVStack, ErrBadShape)
	}

	out := &Dense{r: r1 + r2, c: c, data: make([]float64, (r1+r2)*c)}
	if err := copyRowsInto(out, 0, top); err != nil {
		return nil, matrixErrorf(opVStack, err)
	}
	if err := copyRowsInto(out, r1, bottom); err != nil {
		return nil, matrixErrorf(opVStack, err)
	}

	return out, nil
}

// copyRowsInto copies every row of src into dst starting at row r0.
func copyRowsInto(dst *Dense, r0 int, src Reader) error {
	if d, ok := src.(*Dense); ok {
		copy(dst.data[r0*dst.c:], d.data)

		return nil
	}
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < src.Rows(); i++ {
		for j = 0; j < src.Cols(); j++ {
			if v, err = src.At(i, j); err != nil {
				return err
			}
			dst.data[(r0+i)*dst.c+j] = v
		}
	}

	return nil
}
