// Package rvg generates random values that conform to structured types.
//
// A type (package dtype) is a tree of scalars, fixed-size arrays and
// records. A parameter tree (package param) gives the numeric range of each
// leaf; a mapping that lacks a field broadcasts itself to that field, and a
// single range broadcasts to the whole subtree. Generate walks both trees
// and asks a Distribution for every scalar leaf:
//
//	simple := dtype.MustRecord(dtype.F("f0", dtype.Float32), dtype.F("f1", dtype.Int64))
//	v, err := rvg.Generate(rng, simple, param.Of(100), []int{5, 2}, rvg.Uniform{TypeLimits: true})
//
// Shapes follow numpy: a record generated with shape (5, 2) is a
// StructArray of 5×2 records, each field a column of that shape; a
// fixed-array field T[3] becomes a column of shape (5, 2, 3). With no
// shape the record is returned as one unwrapped Struct.
//
// The Generator type wraps Generate with a seeded source and the two
// construction modes of the command-line tool:
//
//	g, _ := rvg.ForType(simple, rvg.WithSeed(7))
//	v, _ := g.Generate(param.FieldMap{"f0": param.Between(-1, 1)}, 4)
//
//	g, _ = rvg.WithinLimits(0, 10)
//	v, _ = g.Random(dtype.Uint8, 3)
//
// Ranges are half-open: integers are drawn from [ceil(lo), ceil(hi)),
// floats from [lo, hi). For unsigned scalars the lower bound is raised to
// zero. By default ranges are clamped to the limits of the scalar;
// WithTypeLimits(false) turns an out-of-limits range into a RangeError.
//
// Errors: ErrConfiguration (eager, at construction), ErrUnsupportedType and
// ErrRange (*RangeError) at generation. Nothing here logs; advisory
// RangeWarnings reach callers through WithWarningFunc and Warnings.
//
// Randomness is never cryptographically secure. Same seed, same type, same
// parameters and same shape give the same values.
package rvg
