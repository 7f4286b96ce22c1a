// Package bip solves binary integer linear programs
//
//	minimize   cᵀx
//	subject to A·x ≤ b
//	           x ∈ {0,1}ⁿ
//
// by depth-first branch-and-bound, using the LP relaxation of every search
// node as its lower bound.
//
// Pipeline:
//
//  1. NewProblem validates and copies (A, b, c).
//  2. Augment appends the box rows −xᵢ ≤ 0 and xᵢ ≤ 1 for every variable, so
//     every relaxation lives in the unit hypercube.
//  3. Solve walks the tree of partial assignments (Node) with an explicit
//     stack. For each node, Restrict folds the fixed prefix into the
//     right-hand side and the objective offset, and an lp.Oracle solves the
//     relaxation over the free suffix.
//  4. IsBinary decides whether a relaxation already is a 0/1 point;
//     RoundToBinary snaps near-integral values for reporting.
//
// Branching always fixes the next unfixed variable in index order, "= 0"
// child first. There is no recursion: search depth is bounded by the heap,
// not the call stack.
//
// Numerical tolerance (WithTolerance, default 1e-6) governs the binary test
// and the leaf constraint check. Bounds and objectives are never rounded and
// are compared with the incumbent exactly.
//
// Errors:
//
//   - *ConfigurationError wraps ErrNoVariables, ErrDimensionMismatch,
//     ErrNonFinite or ErrUnbounded.
//   - ErrOracle wraps failures of the LP oracle.
//
// An infeasible problem is not an error; Result.Feasible is false.
//
// Example:
//
//	res, err := bip.SolveDense(
//	    [][]float64{{1, 1}},
//	    []float64{1},
//	    []float64{-2, -3},
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Objective, res.Bits()) // -3 [0 1]
package bip
