// Package lp defines the LP-relaxation oracle consumed by the branch-and-bound
// driver and a default implementation backed by gonum's simplex solver.
//
// Contract (inequality form, free variables):
//
//	minimize   cᵀx
//	subject to A·x ≤ b
//
// No implicit bounds are placed on x: box constraints such as 0 ≤ xᵢ ≤ 1 must
// be supplied as explicit rows. An Oracle answers with a Solution whose Status
// is Optimal, Infeasible or Unbounded. A non-nil error is reserved for cases
// where the oracle could not decide (malformed input, numerical breakdown).
//
// Implementations:
//
//   - Simplex - converts the problem to standard form (x = x⁺ − x⁻ plus one
//     slack per row) and solves it with gonum.org/v1/gonum/optimize/convex/lp.
//   - OracleFunc - adapts a plain function; useful to script answers in tests.
package lp
