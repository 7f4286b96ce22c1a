// Package bip - sentinel errors and ConfigurationError.

package bip

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the bip package.
var (
	// ErrDimensionMismatch indicates that the shapes of A, b and c disagree,
	// or that a node is longer than the variable count allows.
	ErrDimensionMismatch = errors.New("bip: dimension mismatch")

	// ErrNoVariables indicates a problem with an empty cost vector.
	ErrNoVariables = errors.New("bip: problem has no variables")

	// ErrNonFinite indicates a NaN or ±Inf among the coefficients of A, b or c.
	ErrNonFinite = errors.New("bip: NaN or Inf coefficient")

	// ErrUnbounded indicates that the oracle reported an unbounded relaxation.
	// A box-bounded formulation cannot be unbounded, so this points at a
	// broken oracle or a broken formulation rather than at the input.
	ErrUnbounded = errors.New("bip: LP relaxation is unbounded")

	// ErrOracle wraps any error returned by the LP oracle.
	ErrOracle = errors.New("bip: oracle failure")
)

// ConfigurationError reports a problem that cannot be searched at all.
// Err is one of the sentinels above; errors.Is sees through it.
type ConfigurationError struct {
	Op  string
	Err error
}

// Error implements error.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying sentinel.
func (e *ConfigurationError) Unwrap() error { return e.Err }

// configErrorf builds a *ConfigurationError whose Err wraps sentinel with detail.
func configErrorf(op string, sentinel error, format string, args ...any) error {
	return &ConfigurationError{
		Op:  op,
		Err: fmt.Errorf("%w: "+format, append([]any{sentinel}, args...)...),
	}
}
