// SPDX-License-Identifier: MIT
// Package ndarray: sentinel error set.
// All accessors return these sentinels (wrapped with method context); no
// accessor panics on a bad index or shape.

package ndarray

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (no dimensions, or a negative dimension).
	ErrBadShape = errors.New("ndarray: invalid shape")

	// ErrOutOfRange indicates that an index is outside valid bounds or that
	// the number of indices does not match the block's dimensionality.
	ErrOutOfRange = errors.New("ndarray: index out of range")

	// ErrShapeMismatch indicates values whose length or leading dimensions
	// do not agree with the container they are assembled into.
	ErrShapeMismatch = errors.New("ndarray: shape mismatch")

	// ErrUnknownField indicates a field name that the record does not have.
	ErrUnknownField = errors.New("ndarray: unknown field")

	// ErrNotIndexable indicates positional indexing on a single Number or
	// Struct.
	ErrNotIndexable = errors.New("ndarray: value is not indexable")
)

// arrayErrorf wraps err with "<Type>.<method>(<idx>)" context.
func arrayErrorf(typ, method string, idx []int, err error) error {
	return fmt.Errorf("%s.%s(%v): %w", typ, method, idx, err)
}
