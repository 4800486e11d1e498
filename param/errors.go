// SPDX-License-Identifier: MIT
// Package: rvg/param
//
// errors.go — sentinel errors for the param package.
//
// Error policy:
//   • ErrConfiguration covers every invalid range: a magnitude <= 0 or an
//     explicit pair with low >= high. It is raised eagerly, when the Range is
//     built, never deferred into generation.
//   • ErrDecode covers malformed YAML parameter trees.
//   • Callers branch with errors.Is; messages carry the offending values.

package param

import (
	"errors"
	"fmt"
)

// ErrConfiguration indicates an invalid generator configuration, e.g. a
// symmetric magnitude <= 0 or a (low, high) pair with low >= high.
var ErrConfiguration = errors.New("param: invalid configuration")

// ErrDecode indicates a parameter tree document that cannot be mapped onto
// Absent, Broadcast or FieldMap.
var ErrDecode = errors.New("param: cannot decode parameter tree")

// configErrorf returns "<method>: <message>: param: invalid configuration".
func configErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), ErrConfiguration)
}
