// SPDX-License-Identifier: MIT
// Package: rvg/dtype
//
// errors.go — sentinel errors for the dtype package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Context is attached with %w at the call site (see typeErrorf).
//   • Descriptor construction failures are configuration errors: they are
//     reported once, up front, and never retried by the generator.

package dtype

import (
	"errors"
	"fmt"
)

// ErrUnsupportedType indicates a kind, bit width, type name or structure the
// Scalar/FixedArray/Record model cannot represent.
// Usage: if errors.Is(err, ErrUnsupportedType) { /* fix the schema */ }.
var ErrUnsupportedType = errors.New("dtype: unsupported type")

// typeErrorf returns "<method>: <message>: dtype: unsupported type".
func typeErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), ErrUnsupportedType)
}
