// Package bip - solver configuration via functional options.
//
// Options follow the usual Option func(*Options) pattern: DefaultOptions
// supplies every field, and each With* helper overrides one of them.
// Invalid tolerances are programmer errors and panic at option construction.

package bip

import (
	"fmt"
	"math"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/bilp/lp"
)

// DefaultTolerance is the binary-feasibility and constraint tolerance used
// unless WithTolerance overrides it.
const DefaultTolerance = 1e-6

// Options configures Solve.
type Options struct {
	// Tolerance decides which values count as binary (within Tolerance of 0
	// or 1) and which rows count as satisfied (within Tolerance of their rhs).
	// Objective comparisons are exact. Must be finite and ≥ 0.
	Tolerance float64

	// Oracle solves every LP relaxation.
	// Default: lp.NewSimplex(lp.DefaultSimplexOptions()).
	Oracle lp.Oracle

	// Tracer receives one Event per search decision. Default: NopTracer{}.
	Tracer Tracer

	// Logger gets start and summary lines at V(1) and a dump of the augmented
	// system at V(2). Default: logr.Discard().
	Logger logr.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the configuration used when Solve gets no options.
func DefaultOptions() Options {
	return Options{
		Tolerance: DefaultTolerance,
		Oracle:    lp.NewSimplex(lp.DefaultSimplexOptions()),
		Tracer:    NopTracer{},
		Logger:    logr.Discard(),
	}
}

// WithTolerance sets the numeric tolerance.
// Panics if eps is negative, NaN or ±Inf.
func WithTolerance(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(fmt.Sprintf("bip: WithTolerance(%v): tolerance must be finite and ≥ 0", eps))
	}

	return func(o *Options) {
		o.Tolerance = eps
	}
}

// WithOracle replaces the LP relaxation solver. A nil oracle keeps the default.
func WithOracle(oracle lp.Oracle) Option {
	return func(o *Options) {
		if oracle != nil {
			o.Oracle = oracle
		}
	}
}

// WithTracer installs a search tracer. A nil tracer keeps NopTracer{}.
func WithTracer(t Tracer) Option {
	return func(o *Options) {
		if t != nil {
			o.Tracer = t
		}
	}
}

// WithLogger sets the solve logger.
func WithLogger(log logr.Logger) Option {
	return func(o *Options) {
		o.Logger = log
	}
}

// buildOptions applies opts on top of DefaultOptions.
func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
