package rvg

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/rvg/dtype"
	"github.com/katalvlaran/rvg/ndarray"
	"github.com/katalvlaran/rvg/param"
)

// Generate produces a value of type d whose numeric leaves are drawn by
// dist within the ranges of p.
//
//   - Record: every field is generated in declared order with
//     param.Lookup(p, name) and the same shape. With a shape the result is a
//     *ndarray.StructArray; without one it is an unwrapped *ndarray.Struct.
//   - FixedArray: the element is generated with shape followed by the
//     array dimensions and the same p.
//   - Scalar: dist.Sample(rng, s, p, shape).
//
// An empty shape means a single unwrapped instance, the same as nil. The
// first leaf error aborts the call and is returned unchanged.
//
// Complexity: O(N) draws where N is the number of scalar leaves times the
// product of shape.
func Generate(rng *rand.Rand, d dtype.Descriptor, p param.Param, shape []int, dist Distribution) (ndarray.Value, error) {
	if rng == nil {
		return nil, configErrorf(MethodGenerate, "nil random source")
	}
	if dist == nil {
		return nil, configErrorf(MethodGenerate, "nil distribution")
	}
	if _, err := blockSize(MethodGenerate, shape); err != nil {
		return nil, err
	}
	if len(shape) == 0 {
		shape = nil
	} else {
		shape = append([]int(nil), shape...)
	}
	if p == nil {
		p = param.Absent{}
	}

	return generate(rng, d, p, shape, dist)
}

func generate(rng *rand.Rand, d dtype.Descriptor, p param.Param, shape []int, dist Distribution) (ndarray.Value, error) {
	switch t := d.(type) {
	case dtype.Record:
		return generateRecord(rng, t, p, shape, dist)

	case dtype.FixedArray:
		if t.Elem() == nil {
			return nil, fmt.Errorf("%s: fixed array without element type: %w", MethodGenerate, ErrUnsupportedType)
		}
		dims := t.Dims()
		full := make([]int, 0, len(shape)+len(dims))
		full = append(append(full, shape...), dims...)
		return generate(rng, t.Elem(), p, full, dist)

	case dtype.Scalar:
		if t.IsZero() {
			return nil, fmt.Errorf("%s: zero scalar: %w", MethodGenerate, ErrUnsupportedType)
		}
		return dist.Sample(rng, t, p, shape)

	default:
		return nil, fmt.Errorf("%s: descriptor %T: %w", MethodGenerate, d, ErrUnsupportedType)
	}
}

func generateRecord(rng *rand.Rand, r dtype.Record, p param.Param, shape []int, dist Distribution) (ndarray.Value, error) {
	fields := r.Fields()
	if len(fields) == 0 {
		return nil, fmt.Errorf("%s: record without fields: %w", MethodGenerate, ErrUnsupportedType)
	}

	cols := make([]ndarray.FieldValue, len(fields))
	for i, f := range fields {
		v, err := generate(rng, f.Type, param.Lookup(p, f.Name), shape, dist)
		if err != nil {
			return nil, err
		}
		cols[i] = ndarray.FieldValue{Name: f.Name, Value: v}
	}

	if shape == nil {
		s, err := ndarray.NewStruct(cols)
		if err != nil {
			return nil, err
		}
		return s, nil
	}

	a, err := ndarray.NewStructArray(shape, cols)
	if err != nil {
		return nil, err
	}

	return a, nil
}

// blockSize validates shape and returns the number of elements it holds.
func blockSize(method string, shape []int) (int, error) {
	n := 1
	for i, d := range shape {
		if d < 0 {
			return 0, configErrorf(method, "shape dimension %d is negative (%d)", i, d)
		}
		if d != 0 && n > math.MaxInt/d {
			return 0, configErrorf(method, "shape %v holds more than %d elements", shape, math.MaxInt)
		}
		n *= d
	}

	return n, nil
}
