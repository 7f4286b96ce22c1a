// Package bip - search tracing.
//
// Every driver decision (branch, prune, incumbent, leaf rejection) is
// reported to a Tracer. NopTracer drops events, LogTracer writes them through
// logr at V(2), and TracerFunc adapts a plain function.

package bip

import "github.com/go-logr/logr"

// EventKind classifies a search decision.
type EventKind int

const (
	// EventBranch: the node's relaxation is fractional and within the
	// incumbent; both children were pushed.
	EventBranch EventKind = iota
	// EventPruneInfeasible: the node's relaxation has no solution.
	EventPruneInfeasible
	// EventPruneBound: the node's bound is worse than the incumbent.
	EventPruneBound
	// EventIncumbent: the node produced a new incumbent.
	EventIncumbent
	// EventLeafRejected: a full assignment violates A·x ≤ b or loses to the incumbent.
	EventLeafRejected
)

// String implements fmt.Stringer.
func (k EventKind) String() string {
	switch k {
	case EventBranch:
		return "branch"
	case EventPruneInfeasible:
		return "prune-infeasible"
	case EventPruneBound:
		return "prune-bound"
	case EventIncumbent:
		return "incumbent"
	case EventLeafRejected:
		return "leaf-rejected"
	default:
		return "unknown"
	}
}

// Event describes one decision taken on a popped node.
// Bound is the node's bound (or the leaf objective) and is zero for
// EventPruneInfeasible. Frontier is the stack size after the decision.
type Event struct {
	Kind     EventKind
	Node     *Node
	Bound    float64
	Frontier int
}

// Tracer observes the search. Trace is called synchronously from the solve
// goroutine and must not retain Event.Node beyond the solve.
type Tracer interface {
	Trace(e Event)
}

// NopTracer discards every event.
type NopTracer struct{}

// Trace implements Tracer.
func (NopTracer) Trace(Event) {}

// LogTracer writes every event to Log at V(2).
type LogTracer struct {
	Log logr.Logger
}

// Trace implements Tracer.
func (t LogTracer) Trace(e Event) {
	t.Log.V(2).Info("search event",
		"kind", e.Kind.String(),
		"node", e.Node.String(),
		"bound", e.Bound,
		"frontier", e.Frontier,
	)
}

// TracerFunc adapts a function to Tracer.
type TracerFunc func(e Event)

// Trace calls f(e).
func (f TracerFunc) Trace(e Event) { f(e) }
