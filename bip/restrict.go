// Package bip - node restriction (fold a fixed prefix into the LP).
//
// For a node fixing x[0:k], the relaxation over the free suffix is
//
//	minimize c[k:]·y  subject to  A′[:, k:]·y ≤ b′ − A′[:, :k]·fixed
//
// A′[:, k:] and c[k:] are no-copy windows; only the right-hand side is
// allocated per node. The fixed-prefix cost is carried as Offset so that
// Bound(relaxed) is comparable with full objectives.
//
// Complexity: O((m+2n)·k) for the rhs, O(1) for the windows.

package bip

import (
	"fmt"

	"github.com/katalvlaran/bilp/matrix"
)

// Restricted is the LP left over when the first k variables are fixed:
//
//	minimize C·y  subject to  A·y ≤ B,  y ∈ ℝⁿ⁻ᵏ
//
// where y are the free variables k..n-1. A is a no-copy column window of A′
// and C is a read-only window of the problem's cost vector.
type Restricted struct {
	A      matrix.Reader
	B      []float64
	C      []float64
	Offset float64 // fixed·c[:k]
}

// Bound returns relaxed + Offset: the optimum of the restricted LP lifted back
// to an objective of the full problem.
func (r Restricted) Bound(relaxed float64) float64 { return relaxed + r.Offset }

// Restrict projects aug onto the variables after the fixed prefix:
//
//	A₁ = A′[:, k:]
//	b₁ = b′ − A′[:, :k]·fixed
//	c₁ = c[k:]
//
// The relaxation optimum of (A₁, b₁, c₁) plus fixed·c[:k] equals the
// relaxation optimum of the full problem with the prefix pinned.
//
// len(fixed) must be < n; a full assignment has no free variable to relax.
//
// Complexity: O((m+2n)·k) time, O(m+2n) space.
func Restrict(aug *Augmented, fixed []float64) (Restricted, error) {
	if aug == nil || aug.a == nil {
		return Restricted{}, fmt.Errorf("bip.Restrict: nil augmented problem: %w", ErrDimensionMismatch)
	}
	n, k := len(aug.c), len(fixed)
	if k >= n {
		return Restricted{}, fmt.Errorf("bip.Restrict: %d fixed of %d variables: %w", k, n, ErrDimensionMismatch)
	}

	free, err := aug.a.ColumnsFrom(k)
	if err != nil {
		return Restricted{}, fmt.Errorf("bip.Restrict: %w", err)
	}

	rhs := append([]float64(nil), aug.b...)
	var offset float64
	if k > 0 {
		prefix, err := aug.a.View(0, 0, aug.a.Rows(), k)
		if err != nil {
			return Restricted{}, fmt.Errorf("bip.Restrict: %w", err)
		}
		used, err := matrix.MulVec(prefix, fixed)
		if err != nil {
			return Restricted{}, fmt.Errorf("bip.Restrict: %w", err)
		}
		for i := range rhs {
			rhs[i] -= used[i]
		}
		if offset, err = matrix.Dot(fixed, aug.c[:k]); err != nil {
			return Restricted{}, fmt.Errorf("bip.Restrict: %w", err)
		}
	}

	return Restricted{
		A:      free,
		B:      rhs,
		C:      aug.c[k:n:n],
		Offset: offset,
	}, nil
}
