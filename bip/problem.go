// Package bip - problem model and box augmentation.
//
// NewProblem validates and deep-copies (A, b, c). Augment stacks the rows
// −xᵢ ≤ 0 and xᵢ ≤ 1 under A so every relaxation lives in [0,1]ⁿ.

package bip

import (
	"errors"

	"github.com/katalvlaran/bilp/matrix"
)

const (
	opNewProblem = "bip.NewProblem"
	opAugment    = "bip.Augment"
)

// Problem is an immutable binary program:
//
//	minimize cᵀx  subject to  A·x ≤ b,  x ∈ {0,1}ⁿ.
//
// A Problem owns private copies of its coefficients; accessors return copies.
// It is safe to share between goroutines.
type Problem struct {
	a *matrix.Dense // m×n, m may be 0
	b []float64     // len m
	c []float64     // len n
}

// NewProblem validates and copies (a, b, c).
//
// Every row of a must have len(c) entries and len(b) must equal len(a).
// A problem without constraint rows is valid.
//
// Errors (as *ConfigurationError):
//   - ErrNoVariables when len(c) == 0.
//   - ErrDimensionMismatch on any shape disagreement.
//   - ErrNonFinite on NaN or ±Inf anywhere.
func NewProblem(a [][]float64, b, c []float64) (*Problem, error) {
	n := len(c)
	if n == 0 {
		return nil, &ConfigurationError{Op: opNewProblem, Err: ErrNoVariables}
	}
	if len(b) != len(a) {
		return nil, configErrorf(opNewProblem, ErrDimensionMismatch, "len(b)=%d, rows(A)=%d", len(b), len(a))
	}
	dense, err := matrix.NewDenseFromRows(n, a)
	if err != nil {
		if errors.Is(err, matrix.ErrNaNInf) {
			return nil, configErrorf(opNewProblem, ErrNonFinite, "A: %v", err)
		}

		return nil, configErrorf(opNewProblem, ErrDimensionMismatch, "A: %v", err)
	}
	if err = matrix.ValidateFinite(b); err != nil {
		return nil, configErrorf(opNewProblem, ErrNonFinite, "b: %v", err)
	}
	if err = matrix.ValidateFinite(c); err != nil {
		return nil, configErrorf(opNewProblem, ErrNonFinite, "c: %v", err)
	}

	return &Problem{
		a: dense,
		b: append([]float64(nil), b...),
		c: append([]float64(nil), c...),
	}, nil
}

// NumVars returns n.
func (p *Problem) NumVars() int { return len(p.c) }

// NumConstraints returns m, the number of original rows.
func (p *Problem) NumConstraints() int { return len(p.b) }

// A returns a copy of the constraint matrix.
func (p *Problem) A() [][]float64 { return p.a.RowsCopy() }

// B returns a copy of the right-hand side.
func (p *Problem) B() []float64 { return append([]float64(nil), p.b...) }

// C returns a copy of the cost vector.
func (p *Problem) C() []float64 { return append([]float64(nil), p.c...) }

// validate rejects nil and zero-value problems.
func (p *Problem) validate(op string) error {
	if p == nil || p.a == nil {
		return configErrorf(op, ErrDimensionMismatch, "nil problem")
	}
	if len(p.c) == 0 {
		return &ConfigurationError{Op: op, Err: ErrNoVariables}
	}
	if p.a.Cols() != len(p.c) || p.a.Rows() != len(p.b) {
		return configErrorf(op, ErrDimensionMismatch, "A is %dx%d, len(b)=%d, len(c)=%d",
			p.a.Rows(), p.a.Cols(), len(p.b), len(p.c))
	}

	return nil
}

// Augmented is a Problem with explicit box rows appended. For every variable
// i, in order, it carries −xᵢ ≤ 0 followed by xᵢ ≤ 1, so A′ has m+2n rows.
// The cost vector is shared with the source Problem and is never written.
type Augmented struct {
	a *matrix.Dense // (m+2n)×n
	b []float64     // len m+2n
	c []float64     // len n, read-only view of Problem.c
}

// Augment appends the box rows 0 ≤ xᵢ ≤ 1 to p.
//
// Complexity: O((m+n)·n) time and space.
func Augment(p *Problem) (*Augmented, error) {
	if err := p.validate(opAugment); err != nil {
		return nil, err
	}
	n := len(p.c)

	box, err := matrix.NewDense(2*n, n)
	if err != nil {
		return nil, configErrorf(opAugment, ErrDimensionMismatch, "%v", err)
	}
	rhs := make([]float64, 0, len(p.b)+2*n)
	rhs = append(rhs, p.b...)

	var i int
	for i = 0; i < n; i++ {
		// Indices are in range by construction.
		_ = box.Set(2*i, i, -1)
		_ = box.Set(2*i+1, i, 1)
		rhs = append(rhs, 0, 1)
	}

	a, err := matrix.VStack(p.a, box)
	if err != nil {
		return nil, configErrorf(opAugment, ErrDimensionMismatch, "%v", err)
	}

	return &Augmented{a: a, b: rhs, c: p.c}, nil
}

// NumVars returns n.
func (g *Augmented) NumVars() int { return len(g.c) }

// Matrix returns A′ as a read-only view.
func (g *Augmented) Matrix() matrix.Reader { return g.a }

// RHS returns a copy of b′.
func (g *Augmented) RHS() []float64 { return append([]float64(nil), g.b...) }
