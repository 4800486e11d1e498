// Package rvg is the root of the Random Values Generator module: random
// values for numpy-style structured types, driven by a tree of numeric
// ranges. This package holds documentation only; the code lives in the
// subpackages.
//
// What is in the box?
//
//	dtype/        — type descriptors: Scalar, FixedArray, Record (+ name parsing)
//	param/        — parameter trees: Absent, Broadcast(Range), FieldMap (+ YAML)
//	ndarray/      — generated values: Number, Dense, Struct, StructArray
//	rvg/          — the recursive engine, the Uniform distribution, Generator
//	registry/     — named record types loaded from YAML schema files
//	internal/cli/ — the rvg command line (cmd/rvg)
//
// Quick example:
//
//	simple := dtype.MustRecord(
//		dtype.F("f0", dtype.Float32),
//		dtype.F("f1", dtype.Int64),
//	)
//	g, _ := rvg.ForType(simple, rvg.WithSeed(42))
//	v, _ := g.Generate(param.FieldMap{"f0": param.Of(17), "f1": param.Of(128)}, 5, 2)
//	// v is a (5, 2) StructArray; every f0 lies in [-17, 17), every f1 in [-128, 128)
//
// From the shell:
//
//	rvg                              # one float32 from (0, 1)
//	rvg -numpy uint8 -l 0,10 -s 5    # five uint8 values in [0, 10)
//
//	go install github.com/katalvlaran/rvg/cmd/rvg@latest
package rvg
