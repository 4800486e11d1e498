package rvg

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/rvg/dtype"
	"github.com/katalvlaran/rvg/ndarray"
	"github.com/katalvlaran/rvg/param"
)

// Distribution samples values of one scalar type. It is the only place
// where randomness is consumed.
//
// Sample must return a Number when shape is empty and a block of exactly
// shape otherwise, every element of type s. The engine passes a non-nil rng
// and a shape without negative dimensions.
type Distribution interface {
	Sample(rng *rand.Rand, s dtype.Scalar, p param.Param, shape []int) (ndarray.Value, error)
}

// DistributionFunc adapts an ordinary function to Distribution.
type DistributionFunc func(rng *rand.Rand, s dtype.Scalar, p param.Param, shape []int) (ndarray.Value, error)

// Sample calls f.
func (f DistributionFunc) Sample(rng *rand.Rand, s dtype.Scalar, p param.Param, shape []int) (ndarray.Value, error) {
	return f(rng, s, p, shape)
}

// Uniform is the default distribution: integers uniform over
// [ceil(lo), ceil(hi)), floats uniform over [lo, hi).
//
// The parameter at a leaf must be a Broadcast range. For unsigned scalars
// the lower bound is raised to max(lo, 0). With TypeLimits the range is
// clamped to the limits of the scalar; without it a range exceeding them
// is a *RangeError.
type Uniform struct {
	TypeLimits bool
}

// Sample implements Distribution.
func (u Uniform) Sample(rng *rand.Rand, s dtype.Scalar, p param.Param, shape []int) (ndarray.Value, error) {
	b, ok := p.(param.Broadcast)
	if !ok {
		return nil, newRangeError(s, math.NaN(), math.NaN(), "expected a numeric range, got "+describe(p))
	}

	draw, err := u.sampler(s, b.Range)
	if err != nil {
		return nil, err
	}
	if len(shape) == 0 {
		return draw(rng), nil
	}

	n, err := blockSize(MethodUniform, shape)
	if err != nil {
		return nil, err
	}
	values := make([]ndarray.Number, n)
	for i := range values {
		values[i] = draw(rng)
	}

	m, err := ndarray.FromValues(s, shape, values)
	if err != nil {
		return nil, err
	}

	return m, nil
}

// sampler validates r once and returns the per-element draw for s.
func (u Uniform) sampler(s dtype.Scalar, r param.Range) (func(*rand.Rand) ndarray.Number, error) {
	if s.IsZero() {
		return nil, fmt.Errorf("%s: zero scalar: %w", MethodUniform, ErrUnsupportedType)
	}

	lo, hi, err := effectiveRange(s, r, u.TypeLimits)
	if err != nil {
		return nil, err
	}

	switch s.Kind() {
	case dtype.Signed:
		l, h, ok := intBounds(lo, hi)
		if !ok {
			return nil, newRangeError(s, lo, hi, "no integer lies in the range")
		}
		return func(rng *rand.Rand) ndarray.Number {
			return ndarray.Int(s, sampleInt(rng, l, h))
		}, nil

	case dtype.Unsigned:
		l, h, ok := uintBounds(lo, hi)
		if !ok {
			return nil, newRangeError(s, lo, hi, "no integer lies in the range")
		}
		return func(rng *rand.Rand) ndarray.Number {
			return ndarray.Uint(s, sampleUint(rng, l, h))
		}, nil

	case dtype.Floating:
		if s.Bits() == 32 {
			if !hasFloat32(lo, hi) {
				return nil, newRangeError(s, lo, hi, "no float32 lies in the range")
			}
			return func(rng *rand.Rand) ndarray.Number {
				return ndarray.Float(s, float64(narrow32(sampleFloat(rng, lo, hi), lo, hi)))
			}, nil
		}
		return func(rng *rand.Rand) ndarray.Number {
			return ndarray.Float(s, sampleFloat(rng, lo, hi))
		}, nil

	default:
		return nil, fmt.Errorf("%s: %s: %w", MethodUniform, s, ErrUnsupportedType)
	}
}

func describe(p param.Param) string {
	switch p.(type) {
	case nil, param.Absent:
		return "absent"
	case param.FieldMap:
		return "field mapping " + p.String()
	default:
		return p.String()
	}
}
