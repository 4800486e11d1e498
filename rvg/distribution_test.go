package rvg_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/rvg/dtype"
	"github.com/katalvlaran/rvg/ndarray"
	"github.com/katalvlaran/rvg/param"
	"github.com/katalvlaran/rvg/rvg"
)

var allScalars = []dtype.Scalar{
	dtype.Int8, dtype.Int16, dtype.Int32, dtype.Int64,
	dtype.Uint8, dtype.Uint16, dtype.Uint32, dtype.Uint64,
	dtype.Float32, dtype.Float64,
}

func sample(t *testing.T, u rvg.Uniform, s dtype.Scalar, p param.Param, n int) *ndarray.Dense {
	t.Helper()
	v, err := u.Sample(newRand(7), s, p, []int{n})
	require.NoError(t, err)

	return dense(t, v)
}

func TestUniformRangeContainment(t *testing.T) {
	t.Parallel()

	u := rvg.Uniform{TypeLimits: true}
	for _, s := range allScalars {
		lo := -50.0
		if s.Kind() == dtype.Unsigned {
			lo = 0
		}
		d := sample(t, u, s, param.Between(-50, 50), 2000)
		assert.Equal(t, s, d.Type())
		requireWithin(t, d, lo, 50)

		m := sample(t, u, s, param.Of(3), 2000)
		requireWithin(t, m, lo/50*3, 3)
	}
}

func TestUniformIntegerCeil(t *testing.T) {
	t.Parallel()

	u := rvg.Uniform{TypeLimits: true}
	d := sample(t, u, dtype.Int32, param.Between(-2.5, 2.5), 3000)
	xs := d.Float64s()
	assert.Equal(t, -2.0, floats.Min(xs))
	assert.Equal(t, 2.0, floats.Max(xs))

	// (0.2, 0.7) holds no integer but is fine for floats
	_, err := u.Sample(newRand(1), dtype.Int32, param.Between(0.2, 0.7), nil)
	require.ErrorIs(t, err, rvg.ErrRange)
	v, err := u.Sample(newRand(1), dtype.Float64, param.Between(0.2, 0.7), nil)
	require.NoError(t, err)
	f := v.(ndarray.Number).Float64()
	assert.True(t, f >= 0.2 && f < 0.7)

	// (1.00000001, 1.00000002) holds float64 values but no float32
	_, err = u.Sample(newRand(1), dtype.Float32, param.Between(1.00000001, 1.00000002), []int{5})
	var re *rvg.RangeError
	require.True(t, errors.As(err, &re))
	assert.Contains(t, re.Error(), "no float32 lies in the range")
	v, err = u.Sample(newRand(1), dtype.Float64, param.Between(1.00000001, 1.00000002), []int{5})
	require.NoError(t, err)
	requireWithin(t, dense(t, v), 1.00000001, 1.00000002)
}

func TestUniformUnsignedFloor(t *testing.T) {
	t.Parallel()

	u := rvg.Uniform{TypeLimits: true}
	d := sample(t, u, dtype.Uint8, param.Between(-100, 4), 1000)
	xs := d.Float64s()
	assert.Equal(t, 0.0, floats.Min(xs))
	assert.Equal(t, 3.0, floats.Max(xs))

	_, err := u.Sample(newRand(1), dtype.Uint16, param.Between(-10, -5), nil)
	var re *rvg.RangeError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, 0.0, re.Low)
	assert.Equal(t, -5.0, re.High)
	assert.Equal(t, dtype.Uint16, re.Type)
	assert.Contains(t, re.Error(), "unproper limits (0, -5) for uint16")
}

func TestUniformTypeLimits(t *testing.T) {
	t.Parallel()

	clamp := rvg.Uniform{TypeLimits: true}
	strict := rvg.Uniform{TypeLimits: false}

	d := sample(t, clamp, dtype.Int8, param.Between(-1000, 1000), 3000)
	xs := d.Float64s()
	assert.Equal(t, -128.0, floats.Min(xs))
	assert.Equal(t, 127.0, floats.Max(xs))

	_, err := strict.Sample(newRand(1), dtype.Int8, param.Between(-10, 1000), nil)
	var re *rvg.RangeError
	require.True(t, errors.As(err, &re))
	assert.Contains(t, re.Reason, "high is out of bounds for int8")
	assert.Equal(t, -128.0, re.Min)
	assert.Equal(t, 127.0, re.Max)

	_, err = strict.Sample(newRand(1), dtype.Int16, param.Of(40000), nil)
	require.ErrorIs(t, err, rvg.ErrRange)
	assert.Contains(t, err.Error(), "low is out of bounds for int16")

	// 256 is the exclusive end of uint8, not out of bounds
	_, err = strict.Sample(newRand(1), dtype.Uint8, param.Between(0, 256), []int{10})
	require.NoError(t, err)

	_, err = clamp.Sample(newRand(1), dtype.Uint8, param.Between(300, 400), nil)
	require.ErrorIs(t, err, rvg.ErrRange)
	_, err = clamp.Sample(newRand(1), dtype.Float32, param.Between(1e39, 1e40), nil)
	require.ErrorIs(t, err, rvg.ErrRange)
}

func TestUniformFullWidth(t *testing.T) {
	t.Parallel()

	u := rvg.Uniform{TypeLimits: true}

	v, err := u.Sample(newRand(2), dtype.Uint64, param.Between(0, math.Ldexp(1, 64)), []int{100})
	require.NoError(t, err)
	assert.Equal(t, []int{100}, v.Shape())

	v, err = u.Sample(newRand(2), dtype.Int64, param.Between(math.Ldexp(-1, 63), math.Ldexp(1, 63)), []int{100})
	require.NoError(t, err)
	var neg, pos bool
	for _, n := range dense(t, v).Values() {
		neg = neg || n.Int64() < 0
		pos = pos || n.Int64() > 0
	}
	assert.True(t, neg && pos)

	for _, s := range []dtype.Scalar{dtype.Float32, dtype.Float64} {
		min, max := s.Limits()
		d := sample(t, u, s, param.Between(min, max), 500)
		for _, x := range d.Float64s() {
			require.False(t, math.IsInf(x, 0) || math.IsNaN(x))
		}
		requireWithin(t, d, min, max)
	}

	// huge magnitude is clamped to the type
	d := sample(t, u, dtype.Float32, param.Of(math.MaxFloat64), 500)
	for _, x := range d.Float64s() {
		require.False(t, math.IsInf(x, 0))
	}
}

func TestUniformMean(t *testing.T) {
	t.Parallel()

	u := rvg.Uniform{TypeLimits: true}

	xs := sample(t, u, dtype.Float64, param.Between(0, 1), 20000).Float64s()
	assert.InDelta(t, 0.5, stat.Mean(xs, nil), 0.02)
	assert.InDelta(t, 1.0/12, stat.Variance(xs, nil), 0.005)

	bytes := sample(t, u, dtype.Uint8, param.Between(0, 256), 20000).Float64s()
	assert.InDelta(t, 127.5, stat.Mean(bytes, nil), 3)
	seen := make(map[float64]struct{}, 256)
	for _, b := range bytes {
		seen[b] = struct{}{}
	}
	assert.Len(t, seen, 256)
}

func TestUniformShapes(t *testing.T) {
	t.Parallel()

	u := rvg.Uniform{TypeLimits: true}

	v, err := u.Sample(newRand(1), dtype.Int16, param.Of(5), nil)
	require.NoError(t, err)
	assert.IsType(t, ndarray.Number{}, v)

	v, err = u.Sample(newRand(1), dtype.Int16, param.Of(5), []int{2, 0, 3})
	require.NoError(t, err)
	assert.Equal(t, 0, dense(t, v).Size())

	_, err = u.Sample(newRand(1), dtype.Int16, param.Of(5), []int{-2})
	require.ErrorIs(t, err, rvg.ErrConfiguration)

	_, err = u.Sample(newRand(1), dtype.Scalar{}, param.Of(5), nil)
	require.ErrorIs(t, err, rvg.ErrUnsupportedType)

	_, err = u.Sample(newRand(1), dtype.Int16, param.Broadcast{}, nil)
	require.ErrorIs(t, err, rvg.ErrRange)
}
