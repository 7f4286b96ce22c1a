// Package lp - oracle contract: Status, Solution, Oracle, OracleFunc.

package lp

import (
	"errors"

	"github.com/katalvlaran/bilp/matrix"
)

var (
	// ErrDimensionMismatch is returned when len(b) != a.Rows() or len(c) != a.Cols().
	ErrDimensionMismatch = errors.New("lp: dimension mismatch")

	// ErrSolverFailure wraps a backend failure that is neither infeasibility
	// nor unboundedness (e.g. a singular basis).
	ErrSolverFailure = errors.New("lp: solver failure")
)

// Status is the outcome class of an LP solve.
type Status int

const (
	// Optimal means Objective and X hold an optimal solution.
	Optimal Status = iota
	// Infeasible means no x satisfies A·x ≤ b.
	Infeasible
	// Unbounded means the objective decreases without limit on the feasible set.
	Unbounded
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Optimal:
		return "optimal"
	case Infeasible:
		return "infeasible"
	case Unbounded:
		return "unbounded"
	default:
		return "unknown"
	}
}

// Solution is the answer of an Oracle.
// Objective and X are meaningful only when Status == Optimal;
// len(X) equals the number of columns of the solved system.
type Solution struct {
	Status    Status
	Objective float64
	X         []float64
}

// Oracle solves minimize cᵀx subject to a·x ≤ b over free variables.
// Implementations must not retain or mutate a, b or c.
type Oracle interface {
	Solve(a matrix.Reader, b, c []float64) (Solution, error)
}

// OracleFunc adapts an ordinary function to the Oracle interface.
type OracleFunc func(a matrix.Reader, b, c []float64) (Solution, error)

// Solve calls f(a, b, c).
func (f OracleFunc) Solve(a matrix.Reader, b, c []float64) (Solution, error) {
	return f(a, b, c)
}

// validateSystem checks the shape contract shared by all oracles.
func validateSystem(a matrix.Reader, b, c []float64) error {
	if err := matrix.ValidateNotNil(a); err != nil {
		return err
	}
	if len(b) != a.Rows() || len(c) != a.Cols() {
		return ErrDimensionMismatch
	}

	return nil
}
