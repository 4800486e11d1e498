// Package ndarray holds generated values.
//
// Four containers mirror the three descriptor cases plus a requested shape:
//
//	Number       — one scalar, exact for every dtype (Interface() gives int8, uint16, float32, ...)
//	Dense        — a row-major block of Numbers with a shape
//	Struct       — one record instance, fields in declared order
//	StructArray  — a block of records, stored one column per field
//
// A StructArray column always has the block shape as its leading
// dimensions; a column for a fixed-array field carries the field's
// intrinsic dimensions after them. At materializes one record by indexing
// every column, so a (3, 2) block of {i: int8, a: T[3]} yields records
// whose "a" is a 3-element block of T.
//
// Accessors never panic on bad input; they return ErrOutOfRange,
// ErrBadShape, ErrShapeMismatch, ErrUnknownField or ErrNotIndexable wrapped
// with method context.
package ndarray
