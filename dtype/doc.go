// Package dtype describes the shape of the values rvg generates: scalars,
// fixed-size arrays and records built from the same, in the spirit of a
// C struct layout or a numpy structured dtype.
//
// 🚀 What is a Descriptor?
//
//	A closed tagged variant with exactly three cases:
//	  • Scalar      — a numeric kind (Signed, Unsigned, Floating) and a bit width
//	  • FixedArray  — an element Descriptor plus intrinsic dimensions, e.g. [3] or [2 4]
//	  • Record      — an ordered list of uniquely named fields
//
// ✨ Key properties:
//   - immutable: fields are unexported, slices are copied in and out
//   - acyclic by construction: a Descriptor can only reference values that
//     already exist, so recursion over it always terminates
//   - exact limits: Scalar.IntRange / Scalar.UintMax / Scalar.Limits
//
// ⚙️ Usage:
//
//	simple := dtype.MustRecord(
//	  dtype.F("f0", dtype.Float32),
//	  dtype.F("f1", dtype.Int64),
//	  dtype.F("f2", dtype.Int64),
//	)
//	withArray := dtype.MustRecord(
//	  dtype.F("i", dtype.Int8),
//	  dtype.F("a", dtype.MustArray(simple, 3)),
//	)
//
// Errors:
//
//	ErrUnsupportedType - unknown kind, width, name or malformed structure.
//
// Parsing of external schema text is not done here; see package registry.
package dtype
