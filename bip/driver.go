// Package bip - branch-and-bound driver.
//
// Solve runs a depth-first search over partial assignments with an explicit
// LIFO frontier. Every partial node is bounded by the LP relaxation of its
// restricted system; full assignments are checked against the original rows.
//
// State per call lives in searcher: the frontier, the explored log, the
// incumbent and Stats. Nothing is shared between calls.

package bip

import (
	"fmt"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/bilp/lp"
	"github.com/katalvlaran/bilp/matrix"
)

const opSolve = "bip.Solve"

// Stats counts what the search did.
type Stats struct {
	Explored         int // nodes popped, root included
	LPSolves         int // oracle calls
	PrunedInfeasible int // partial nodes whose relaxation had no solution
	PrunedBound      int // partial nodes whose bound lost to the incumbent
	LeafRejected     int // full assignments that were infeasible or lost
	IncumbentUpdates int // times the incumbent was set or replaced
	MaxFrontier      int // largest stack size observed
}

// Result is the outcome of Solve.
//
// When Feasible is false no binary assignment satisfies A·x ≤ b and
// Objective/Assignment are zero. Explored lists every visited node in visit
// order and is populated in both cases.
type Result struct {
	Feasible   bool
	Objective  float64
	Assignment []float64 // len n, every entry exactly 0 or 1
	Explored   []*Node
	Stats      Stats
}

// Bits returns Assignment as ints, or nil when the result is infeasible.
func (r Result) Bits() []int {
	if !r.Feasible {
		return nil
	}
	out := make([]int, len(r.Assignment))
	for i, v := range r.Assignment {
		if v >= 0.5 {
			out[i] = 1
		}
	}

	return out
}

// searcher holds the state of one Solve call.
type searcher struct {
	// Configuration
	prob   *Problem
	aug    *Augmented
	n      int
	tol    float64
	oracle lp.Oracle
	tracer Tracer
	log    logr.Logger

	// Search state
	frontier []*Node
	explored []*Node
	prefix   []float64 // scratch for the popped node's fixed values

	// Incumbent
	hasBest bool
	bestObj float64
	bestX   []float64

	stats Stats
}

// SolveDense is NewProblem followed by Solve.
func SolveDense(a [][]float64, b, c []float64, opts ...Option) (Result, error) {
	p, err := NewProblem(a, b, c)
	if err != nil {
		return Result{}, err
	}

	return Solve(p, opts...)
}

// Solve minimizes cᵀx over x ∈ {0,1}ⁿ subject to A·x ≤ b by depth-first
// branch-and-bound, using the LP relaxation of each node as its lower bound.
//
// Search order:
//   - The root relaxation is solved over the box [0,1]ⁿ. If it is optimal and
//     binary the search stops there.
//   - Otherwise children are pushed "fix next variable to 1" first, so the
//     "fix to 0" child is popped first.
//   - A partial node whose relaxation is binary becomes the incumbent without
//     further expansion. A fractional one is branched unless its bound is
//     strictly worse than the incumbent.
//   - A full assignment is checked against the original rows only.
//
// Objectives are compared exactly; the tolerance only decides binary values
// and row satisfaction. Ties are not pruned: an equal-valued solution found
// later replaces the incumbent, so the last-discovered optimum is reported.
//
// "No solution" is not an error: it yields Result{Feasible: false}.
//
// Errors:
//   - *ConfigurationError wrapping ErrNoVariables / ErrDimensionMismatch for a
//     malformed problem, or ErrUnbounded if the oracle reports an unbounded
//     relaxation.
//   - ErrOracle wrapping whatever the oracle returned, or a solution of the
//     wrong length.
//
// On error the returned Result still carries Explored and Stats so far.
func Solve(p *Problem, opts ...Option) (Result, error) {
	if err := p.validate(opSolve); err != nil {
		return Result{}, err
	}
	o := buildOptions(opts)
	aug, err := Augment(p)
	if err != nil {
		return Result{}, err
	}

	s := &searcher{
		prob:   p,
		aug:    aug,
		n:      len(p.c),
		tol:    o.Tolerance,
		oracle: o.Oracle,
		tracer: o.Tracer,
		log:    o.Logger,
		prefix: make([]float64, 0, len(p.c)),
	}
	s.log.V(1).Info("solve start", "vars", s.n, "constraints", p.NumConstraints(), "tolerance", s.tol)
	if v := s.log.V(2); v.Enabled() {
		v.Info("augmented system", "A", aug.a.String(), "b", aug.b)
	}

	err = s.run()
	res := s.result()
	if err != nil {
		s.log.V(1).Info("solve failed", "explored", res.Stats.Explored, "error", err.Error())

		return res, err
	}
	s.log.V(1).Info("solve done",
		"feasible", res.Feasible,
		"objective", res.Objective,
		"explored", res.Stats.Explored,
		"lpSolves", res.Stats.LPSolves,
	)

	return res, nil
}

// run drives the search until the frontier is empty.
func (s *searcher) run() error {
	root := Root()
	s.visit(root)

	r, sol, err := s.relax(root)
	if err != nil {
		return err
	}
	if sol.Status == lp.Optimal && IsBinary(sol.X, s.tol) {
		s.setIncumbent(root, r.Bound(sol.Objective), RoundToBinary(sol.X, s.tol))

		return nil
	}
	// The root's children are pushed even when its relaxation is infeasible.
	s.branch(root, r.Bound(sol.Objective))

	var node *Node
	for len(s.frontier) > 0 {
		node = s.pop()
		s.visit(node)
		if node.Len() < s.n {
			if err = s.expand(node); err != nil {
				return err
			}
			continue
		}
		if err = s.checkLeaf(node); err != nil {
			return err
		}
	}

	return nil
}

// expand processes a partial node.
func (s *searcher) expand(node *Node) error {
	r, sol, err := s.relax(node)
	if err != nil {
		return err
	}
	if sol.Status != lp.Optimal {
		s.stats.PrunedInfeasible++
		s.trace(EventPruneInfeasible, node, 0)

		return nil
	}

	bound := r.Bound(sol.Objective)
	if s.hasBest && bound > s.bestObj {
		s.stats.PrunedBound++
		s.trace(EventPruneBound, node, bound)

		return nil
	}
	if IsBinary(sol.X, s.tol) {
		x := make([]float64, 0, s.n)
		x = append(x, s.prefix...)
		x = append(x, RoundToBinary(sol.X, s.tol)...)
		s.setIncumbent(node, bound, x)

		return nil
	}
	s.branch(node, bound)

	return nil
}

// checkLeaf evaluates a full assignment against the original rows.
func (s *searcher) checkLeaf(node *Node) error {
	x := node.Values()
	ok, err := SatisfiesAll(s.prob.a, s.prob.b, x, s.tol)
	if err != nil {
		return fmt.Errorf("%s: leaf %s: %w", opSolve, node, err)
	}
	if !ok {
		s.stats.LeafRejected++
		s.trace(EventLeafRejected, node, 0)

		return nil
	}
	obj, err := matrix.Dot(s.prob.c, x)
	if err != nil {
		return fmt.Errorf("%s: leaf %s: %w", opSolve, node, err)
	}
	if s.hasBest && obj > s.bestObj {
		s.stats.LeafRejected++
		s.trace(EventLeafRejected, node, obj)

		return nil
	}
	s.setIncumbent(node, obj, x)

	return nil
}

// relax restricts the augmented system to node's free variables and asks the
// oracle. Infeasible comes back as a status; Unbounded and oracle errors come
// back as errors.
func (s *searcher) relax(node *Node) (Restricted, lp.Solution, error) {
	s.prefix = node.AppendValues(s.prefix[:0])
	r, err := Restrict(s.aug, s.prefix)
	if err != nil {
		return Restricted{}, lp.Solution{}, fmt.Errorf("%s: node %s: %w", opSolve, node, err)
	}

	s.stats.LPSolves++
	sol, err := s.oracle.Solve(r.A, r.B, r.C)
	if err != nil {
		return r, sol, fmt.Errorf("%s: node %s: %w: %w", opSolve, node, ErrOracle, err)
	}
	switch sol.Status {
	case lp.Optimal:
		if len(sol.X) != len(r.C) {
			return r, sol, fmt.Errorf("%s: node %s: %w: solution has %d values, want %d",
				opSolve, node, ErrOracle, len(sol.X), len(r.C))
		}
	case lp.Infeasible:
	case lp.Unbounded:
		return r, sol, configErrorf(opSolve, ErrUnbounded, "node %s", node)
	default:
		return r, sol, fmt.Errorf("%s: node %s: %w: status %s", opSolve, node, ErrOracle, sol.Status)
	}

	return r, sol, nil
}

// branch pushes child(1) then child(0), so child(0) is popped next.
func (s *searcher) branch(node *Node, bound float64) {
	s.push(node.Child(1))
	s.push(node.Child(0))
	s.trace(EventBranch, node, bound)
}

func (s *searcher) push(node *Node) {
	s.frontier = append(s.frontier, node)
	if len(s.frontier) > s.stats.MaxFrontier {
		s.stats.MaxFrontier = len(s.frontier)
	}
}

func (s *searcher) pop() *Node {
	last := len(s.frontier) - 1
	node := s.frontier[last]
	s.frontier[last] = nil
	s.frontier = s.frontier[:last]

	return node
}

func (s *searcher) visit(node *Node) {
	s.explored = append(s.explored, node)
	s.stats.Explored++
}

// setIncumbent replaces the incumbent unconditionally; callers apply the tie policy.
func (s *searcher) setIncumbent(node *Node, obj float64, x []float64) {
	s.hasBest = true
	s.bestObj = obj
	s.bestX = x
	s.stats.IncumbentUpdates++
	s.trace(EventIncumbent, node, obj)
}

func (s *searcher) trace(kind EventKind, node *Node, bound float64) {
	s.tracer.Trace(Event{Kind: kind, Node: node, Bound: bound, Frontier: len(s.frontier)})
}

// result snapshots the search into a Result.
func (s *searcher) result() Result {
	res := Result{Explored: s.explored, Stats: s.stats}
	if s.hasBest {
		res.Feasible = true
		res.Objective = s.bestObj
		res.Assignment = RoundToBinary(s.bestX, s.tol)
	}

	return res
}
