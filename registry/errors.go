// SPDX-License-Identifier: MIT
// Package: registry
//
// errors.go — sentinel errors for schema loading and lookup.
//
// Unknown type names are reported with dtype.ErrUnsupportedType so callers
// can treat a missing schema type and a missing scalar name alike.

package registry

import (
	"errors"
	"fmt"
)

var (
	// ErrCycle indicates a type that contains itself directly or through
	// other types.
	ErrCycle = errors.New("registry: recursive type definition")

	// ErrSchema indicates a malformed schema document or definition.
	ErrSchema = errors.New("registry: invalid schema")
)

// schemaErrorf returns "<method>: <message>: registry: invalid schema".
func schemaErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), ErrSchema)
}
