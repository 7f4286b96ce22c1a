// Package matrix_test contains unit tests for Dense storage and its
// read-only MatrixView windows.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/bilp/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	rows, cols := 3, 4
	m, err := matrix.NewDense(rows, cols)
	require.NoError(t, err)

	require.Equal(t, rows, m.Rows())
	require.Equal(t, cols, m.Cols())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 4.56)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGet validates correct behavior of Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7.89))

	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)
}

func TestSetRejectsNonFinite(t *testing.T) {
	m, err := matrix.NewDense(1, 1)
	require.NoError(t, err)

	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
}

func TestNewDenseFromRows(t *testing.T) {
	src := [][]float64{{1, 2}, {3, 4}}
	m, err := matrix.NewDenseFromRows(2, src)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())

	// The copy must not alias the caller's slices.
	src[0][0] = 99
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, m.RowsCopy())
}

func TestNewDenseFromRows_Errors(t *testing.T) {
	_, err := matrix.NewDenseFromRows(0, nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFromRows(2, [][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFromRows(1, [][]float64{{math.Inf(1)}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// A system without constraints is a legal 0×c matrix.
func TestNewDenseFromRows_ZeroRows(t *testing.T) {
	m, err := matrix.NewDenseFromRows(3, nil)
	require.NoError(t, err)
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Empty(t, m.RowsCopy())
}

func TestString(t *testing.T) {
	m, err := matrix.NewDenseFromRows(2, [][]float64{{1, 2}, {-0.5, 0}})
	require.NoError(t, err)
	require.Equal(t, "[1, 2]\n[-0.5, 0]\n", m.String())

	empty, err := matrix.NewDenseFromRows(2, nil)
	require.NoError(t, err)
	require.Equal(t, "", empty.String())
}

func TestViewSharesStorage(t *testing.T) {
	m, err := matrix.NewDenseFromRows(3, [][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})
	require.NoError(t, err)

	v, err := m.ColumnsFrom(1)
	require.NoError(t, err)
	require.Equal(t, 2, v.Rows())
	require.Equal(t, 2, v.Cols())

	x, err := v.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 5.0, x)

	// Writes to the base show through the view.
	require.NoError(t, m.Set(0, 2, 30))
	y, err := v.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 30.0, y)

	_, err = v.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// A view handed to an LP oracle must not offer a way to write into the base.
func TestViewIsReadOnly(t *testing.T) {
	m, err := matrix.NewDenseFromRows(2, [][]float64{{1, 2}})
	require.NoError(t, err)
	v, err := m.ColumnsFrom(0)
	require.NoError(t, err)

	var r matrix.Reader = v
	_, writable := r.(interface {
		Set(i, j int, v float64) error
	})
	require.False(t, writable)
}

func TestViewBadShape(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.View(1, 1, 2, 1)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = m.ColumnsFrom(3)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	// Zero-width window is legal.
	v, err := m.ColumnsFrom(2)
	require.NoError(t, err)
	require.Equal(t, 0, v.Cols())
}
