// Package bilp is an exact solver for small-to-moderate binary integer
// linear programs: minimize cᵀx subject to A·x ≤ b with every xᵢ ∈ {0,1}.
//
// 🚀 What is inside?
//
//	• Branch-and-bound search with an LP relaxation as the bound at every node
//	• Persistent search nodes: O(1) branching, shared prefixes
//	• A pluggable LP oracle, gonum's simplex by default
//	• Structured logging and search tracing through logr
//
// ✨ Why choose bilp?
//
//   - Exact – returns a proven optimum, or reports that none exists
//   - Deterministic – same input, same search order, same answer
//   - No recursion – the search stack lives on the heap
//   - Testable – the oracle, tolerance and tracer are explicit options
//
// Everything is organized under three subpackages:
//
//	bip/    - problem model, box augmentation, node restriction, the search driver
//	lp/     - the LP oracle contract and the gonum-backed Simplex oracle
//	matrix/ - dense row-major storage, no-copy column windows, vector kernels
//
// Quick example:
//
//	res, err := bip.SolveDense(
//	    [][]float64{{1, 1}}, // x + y ≤ 1
//	    []float64{1},
//	    []float64{-2, -3},   // minimize −2x − 3y
//	)
//	// res.Feasible == true, res.Objective == -3, res.Bits() == [0 1]
//
//	go get github.com/katalvlaran/bilp
package bilp
