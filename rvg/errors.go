// SPDX-License-Identifier: MIT
// Package: rvg
//
// errors.go — error taxonomy of the generator.
//
// Error policy (explicit and strict):
//   • ErrConfiguration   — invalid generator setup (magnitude <= 0, low >= high,
//     nil type, negative shape, wrong construction mode). Raised eagerly.
//   • ErrUnsupportedType — a descriptor the Scalar/FixedArray/Record dispatch
//     does not recognize. Fatal, never retried.
//   • ErrRange           — a resolved range is empty or lies outside the
//     representable limits of a scalar. Reported as *RangeError, which
//     carries the boundary values involved.
//   • RangeWarning is advisory and is never returned as an error.
//
// Propagation: leaf errors travel unchanged through Record/FixedArray
// recursion; the first failure aborts the whole call with no partial value.
// Any other error comes from a caller-supplied Distribution and is returned
// as is.

package rvg

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/rvg/dtype"
	"github.com/katalvlaran/rvg/param"
)

// Canonical method names used as error context.
const (
	MethodGenerate     = "Generate"
	MethodRandom       = "Random"
	MethodForType      = "ForType"
	MethodWithinLimit  = "WithinLimit"
	MethodWithinLimits = "WithinLimits"
	MethodUniform      = "Uniform"
)

// ErrConfiguration indicates an invalid generator configuration. It is the
// same sentinel as param.ErrConfiguration so range construction failures
// match too.
var ErrConfiguration = param.ErrConfiguration

// ErrUnsupportedType indicates a descriptor kind the engine cannot
// dispatch. It is the same sentinel as dtype.ErrUnsupportedType.
var ErrUnsupportedType = dtype.ErrUnsupportedType

// ErrRange indicates an empty or unrepresentable numeric range.
// Usage: var re *RangeError; if errors.As(err, &re) { /* re.Low, re.High */ }.
var ErrRange = errors.New("rvg: invalid range")

// RangeError reports the range that failed at a scalar leaf.
type RangeError struct {
	// Type is the scalar being sampled.
	Type dtype.Scalar
	// Low and High are the requested bounds after the unsigned floor;
	// both are NaN when no numeric range was supplied at all.
	Low, High float64
	// Min and Max are the representable limits of Type.
	Min, Max float64
	// Reason says which check failed.
	Reason string
}

// Error implements error.
func (e *RangeError) Error() string {
	if math.IsNaN(e.Low) && math.IsNaN(e.High) {
		return fmt.Sprintf("rvg: no numeric range for %s: %s", e.Type, e.Reason)
	}

	return fmt.Sprintf("rvg: unproper limits (%s, %s) for %s with representable range [%s, %s]: %s",
		g(e.Low), g(e.High), e.Type, g(e.Min), g(e.Max), e.Reason)
}

// Unwrap makes errors.Is(err, ErrRange) hold.
func (e *RangeError) Unwrap() error { return ErrRange }

func newRangeError(s dtype.Scalar, lo, hi float64, reason string) *RangeError {
	min, max := s.Limits()

	return &RangeError{Type: s, Low: lo, High: hi, Min: min, Max: max, Reason: reason}
}

// RangeWarning is the advisory raised when an explicit upper bound is
// negative while the scalar kind is not yet known: applying that range to
// an unsigned field will fail with a RangeError.
type RangeWarning struct {
	High float64
}

// String implements fmt.Stringer.
func (w RangeWarning) String() string {
	return "value " + g(w.High) + " for argument `b` will cause a runtime error if generation of values of unsigned type is attempted"
}

// configErrorf returns "<method>: <message>: param: invalid configuration".
func configErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), ErrConfiguration)
}

func g(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
