// Package lp - gonum-backed Simplex oracle.
//
// The oracle contract is inequality form with free variables; gonum's
// simplex wants standard form with non-negative variables. Solve bridges the
// two by splitting x = x⁺ − x⁻ and adding one slack per row, after dropping
// rows and columns that carry no coefficient.

package lp

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-logr/logr"
	"gonum.org/v1/gonum/mat"
	gonumlp "gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/katalvlaran/bilp/matrix"
)

// DefaultSimplexTolerance is the zero tolerance handed to gonum's simplex and
// used to classify empty rows.
const DefaultSimplexTolerance = 1e-10

// SimplexOptions configures the gonum-backed oracle.
//
// Tolerance – pivoting / optimality tolerance passed to gonum (≥ 0).
// Logger    – receives one V(2) line per solve; logr.Discard() silences it.
type SimplexOptions struct {
	Tolerance float64
	Logger    logr.Logger
}

// DefaultSimplexOptions returns the options used by NewSimplex callers that
// do not care: DefaultSimplexTolerance and a discarding logger.
func DefaultSimplexOptions() SimplexOptions {
	return SimplexOptions{
		Tolerance: DefaultSimplexTolerance,
		Logger:    logr.Discard(),
	}
}

// Simplex is an Oracle backed by gonum.org/v1/gonum/optimize/convex/lp.
// It is stateless between calls and safe for concurrent use.
type Simplex struct {
	tol float64
	log logr.Logger
}

var _ Oracle = (*Simplex)(nil)

// NewSimplex builds a Simplex oracle. A negative or non-finite tolerance
// falls back to DefaultSimplexTolerance.
func NewSimplex(opts SimplexOptions) *Simplex {
	tol := opts.Tolerance
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		tol = DefaultSimplexTolerance
	}

	return &Simplex{tol: tol, log: opts.Logger}
}

// Solve minimizes cᵀx subject to a·x ≤ b with free x.
//
// Implementation:
//   - Stage 1: validate shapes.
//   - Stage 2: compact the system. Rows with only zero coefficients are
//     dropped (or prove infeasibility when their rhs is negative); columns
//     with no coefficient left are fixed at 0 (or prove unboundedness when
//     their cost is non-zero). Restricted branch-and-bound systems carry many
//     such rows, and gonum rejects zero rows/columns outright.
//   - Stage 3: build the standard form
//     min [c, −c, 0]·[x⁺; x⁻; s]  s.t. [G, −G, I]·[x⁺; x⁻; s] = h, all ≥ 0.
//   - Stage 4: run gonum's simplex and map its sentinels onto Status.
//   - Stage 5: recover x = x⁺ − x⁻ for the kept columns.
//
// Complexity: one simplex run on a (m'×(2n'+m')) standard-form system.
func (s *Simplex) Solve(a matrix.Reader, b, c []float64) (Solution, error) {
	if err := validateSystem(a, b, c); err != nil {
		return Solution{}, err
	}
	m, n := a.Rows(), a.Cols()

	rows, cols, status, err := s.compact(a, b, c)
	if err != nil {
		return Solution{}, err
	}
	if status != Optimal {
		s.log.V(2).Info("lp solve", "rows", m, "cols", n, "status", status.String())

		return Solution{Status: status}, nil
	}

	x := make([]float64, n)
	if len(rows) == 0 {
		// No constraint touches a kept column and no kept column has a cost:
		// x = 0 is optimal with objective 0.
		s.log.V(2).Info("lp solve", "rows", m, "cols", n, "status", Optimal.String(), "objective", 0.0)

		return Solution{Status: Optimal, Objective: 0, X: x}, nil
	}

	stdC, stdA, stdB, err := s.standardForm(a, b, c, rows, cols)
	if err != nil {
		return Solution{}, err
	}

	_, xs, err := gonumlp.Simplex(stdC, stdA, stdB, s.tol, nil)
	switch {
	case err == nil:
	case errors.Is(err, gonumlp.ErrInfeasible):
		s.log.V(2).Info("lp solve", "rows", m, "cols", n, "status", Infeasible.String())

		return Solution{Status: Infeasible}, nil
	case errors.Is(err, gonumlp.ErrUnbounded):
		s.log.V(2).Info("lp solve", "rows", m, "cols", n, "status", Unbounded.String())

		return Solution{Status: Unbounded}, nil
	default:
		return Solution{}, fmt.Errorf("%w: %v", ErrSolverFailure, err)
	}

	var (
		k   = len(cols)
		obj float64
		j   int
	)
	for j = 0; j < k; j++ {
		x[cols[j]] = xs[j] - xs[k+j]
	}
	for j = 0; j < n; j++ {
		obj += c[j] * x[j]
	}
	s.log.V(2).Info("lp solve", "rows", m, "cols", n, "status", Optimal.String(), "objective", obj)

	return Solution{Status: Optimal, Objective: obj, X: x}, nil
}

// compact returns the indices of rows and columns that carry coefficients.
// A non-Optimal status means the answer is already decided.
func (s *Simplex) compact(a matrix.Reader, b, c []float64) (rows, cols []int, status Status, err error) {
	var (
		m, n    = a.Rows(), a.Cols()
		used    = make([]bool, n)
		i, j    int
		v       float64
		nonZero bool
	)
	rows = make([]int, 0, m)
	for i = 0; i < m; i++ {
		nonZero = false
		for j = 0; j < n; j++ {
			if v, err = a.At(i, j); err != nil {
				return nil, nil, Optimal, err
			}
			if v != 0 {
				nonZero = true
				used[j] = true
			}
		}
		if nonZero {
			rows = append(rows, i)
			continue
		}
		// 0 ≤ b[i] must hold.
		if b[i] < -s.tol {
			return nil, nil, Infeasible, nil
		}
	}

	cols = make([]int, 0, n)
	for j = 0; j < n; j++ {
		if used[j] {
			cols = append(cols, j)
			continue
		}
		if c[j] != 0 {
			// A free variable without constraints and with a cost.
			return nil, nil, Unbounded, nil
		}
	}

	return rows, cols, Optimal, nil
}

// standardForm builds [G, −G, I] with G = a[rows, cols].
func (s *Simplex) standardForm(a matrix.Reader, b, c []float64, rows, cols []int) ([]float64, *mat.Dense, []float64, error) {
	var (
		mr, k = len(rows), len(cols)
		width = 2*k + mr
		stdA  = mat.NewDense(mr, width, nil)
		stdB  = make([]float64, mr)
		stdC  = make([]float64, width)
		i, j  int
		v     float64
		err   error
	)
	for j = 0; j < k; j++ {
		stdC[j] = c[cols[j]]
		stdC[k+j] = -c[cols[j]]
	}
	for i = 0; i < mr; i++ {
		for j = 0; j < k; j++ {
			if v, err = a.At(rows[i], cols[j]); err != nil {
				return nil, nil, nil, err
			}
			stdA.Set(i, j, v)
			stdA.Set(i, k+j, -v)
		}
		stdA.Set(i, 2*k+i, 1)
		stdB[i] = b[rows[i]]
	}

	return stdC, stdA, stdB, nil
}
