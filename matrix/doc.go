// Package matrix offers the dense linear-algebra storage used by the bilp solver.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and a
//     finite-only numeric policy.
//   - MatrixView, a read-only, no-copy rectangular window over a Dense. Branch-and-bound
//     uses it to expose the free-variable columns A′[:, k:] of a node without
//     copying the constraint matrix.
//   - Vector kernels (MulVec, MulVecInto, Dot) and VStack for building the
//     box-augmented constraint system.
//   - Validators returning plain sentinel errors (see errors.go).
//
// Every public function returns an error instead of panicking on user input.
package matrix
