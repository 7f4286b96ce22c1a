package bip_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bilp/bip"
	"github.com/katalvlaran/bilp/lp"
	"github.com/katalvlaran/bilp/matrix"
)

const testTol = 1e-6

// instance is a raw (A, b, c) triple.
type instance struct {
	a [][]float64
	b []float64
	c []float64
}

// rngFromSeed returns a deterministic source; seed 0 maps to 1.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}

	return rand.New(rand.NewSource(seed))
}

// randomInstance draws an integer instance with n variables and m rows.
// Coefficients lie in [-3, 5], costs in [-5, 5] without 0, and each rhs is
// chosen around half the positive row mass so both feasible and infeasible
// instances occur.
func randomInstance(rng *rand.Rand, n, m int) instance {
	inst := instance{
		a: make([][]float64, m),
		b: make([]float64, m),
		c: make([]float64, n),
	}
	for j := 0; j < n; j++ {
		v := 0
		for v == 0 {
			v = rng.Intn(11) - 5
		}
		inst.c[j] = float64(v)
	}
	for i := 0; i < m; i++ {
		row := make([]float64, n)
		pos := 0
		for j := 0; j < n; j++ {
			v := rng.Intn(9) - 3
			row[j] = float64(v)
			if v > 0 {
				pos += v
			}
		}
		inst.a[i] = row
		inst.b[i] = float64(rng.Intn(pos+3) - 2)
	}

	return inst
}

// bruteForce enumerates {0,1}ⁿ and returns the minimum of c·x over rows
// satisfied within testTol.
func bruteForce(inst instance) (best float64, found bool) {
	n := len(inst.c)
	x := make([]float64, n)
	best = math.Inf(1)
	for mask := 0; mask < 1<<n; mask++ {
		for j := 0; j < n; j++ {
			x[j] = float64((mask >> j) & 1)
		}
		ok := true
		for i, row := range inst.a {
			var s float64
			for j := range row {
				s += row[j] * x[j]
			}
			if s > inst.b[i]+testTol {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		var obj float64
		for j := range x {
			obj += inst.c[j] * x[j]
		}
		if obj < best {
			best = obj
		}
		found = true
	}

	return best, found
}

// requireFeasibleAssignment checks x ∈ {0,1}ⁿ, A·x ≤ b and c·x ≈ objective.
func requireFeasibleAssignment(t *testing.T, inst instance, res bip.Result) {
	t.Helper()
	require.Len(t, res.Assignment, len(inst.c))
	var obj float64
	for j, v := range res.Assignment {
		require.True(t, v == 0 || v == 1, "x[%d] = %v", j, v)
		obj += inst.c[j] * v
	}
	for i, row := range inst.a {
		var s float64
		for j := range row {
			s += row[j] * res.Assignment[j]
		}
		require.LessOrEqual(t, s, inst.b[i]+testTol, "row %d violated", i)
	}
	require.InDelta(t, obj, res.Objective, 1e-6)
}

// nodeStrings renders an explored log for comparisons.
func nodeStrings(nodes []*bip.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.String()
	}

	return out
}

// scriptedOracle replays fixed answers in call order.
type scriptedOracle struct {
	answers []lp.Solution
	calls   int
}

func (s *scriptedOracle) Solve(_ matrix.Reader, _, _ []float64) (lp.Solution, error) {
	if s.calls >= len(s.answers) {
		return lp.Solution{}, fmt.Errorf("scriptedOracle: unexpected call %d", s.calls+1)
	}
	sol := s.answers[s.calls]
	s.calls++

	return sol, nil
}
