package dtype_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/rvg/dtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func simpleStruct() dtype.Record {
	return dtype.MustRecord(
		dtype.F("f0", dtype.Float32),
		dtype.F("f1", dtype.Int64),
		dtype.F("f2", dtype.Int64),
	)
}

func TestNewScalar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		kind    dtype.Kind
		bits    int
		want    dtype.Scalar
		wantErr bool
	}{
		{"int8", dtype.Signed, 8, dtype.Int8, false},
		{"uint64", dtype.Unsigned, 64, dtype.Uint64, false},
		{"float32", dtype.Floating, 32, dtype.Float32, false},
		{"float16", dtype.Floating, 16, dtype.Scalar{}, true},
		{"int128", dtype.Signed, 128, dtype.Scalar{}, true},
		{"int0", dtype.Signed, 0, dtype.Scalar{}, true},
		{"unknown kind", dtype.Kind(42), 32, dtype.Scalar{}, true},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := dtype.NewScalar(tc.kind, tc.bits)
			if tc.wantErr {
				require.ErrorIs(t, err, dtype.ErrUnsupportedType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestClassificationIsExclusive(t *testing.T) {
	t.Parallel()

	descs := []dtype.Descriptor{
		dtype.Int8,
		dtype.MustArray(dtype.Float64, 2, 3),
		simpleStruct(),
	}
	for _, d := range descs {
		n := 0
		for _, is := range []func(dtype.Descriptor) bool{dtype.IsScalar, dtype.IsFixedArray, dtype.IsRecord} {
			if is(d) {
				n++
			}
		}
		assert.Equal(t, 1, n, "descriptor %s", d)
	}
	assert.False(t, dtype.IsScalar(nil))
	assert.False(t, dtype.IsFixedArray(nil))
	assert.False(t, dtype.IsRecord(nil))
}

func TestLimits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		s        dtype.Scalar
		min, max float64
	}{
		{dtype.Int8, -128, 127},
		{dtype.Int16, math.MinInt16, math.MaxInt16},
		{dtype.Int32, math.MinInt32, math.MaxInt32},
		{dtype.Int64, math.MinInt64, math.MaxInt64},
		{dtype.Uint8, 0, 255},
		{dtype.Uint16, 0, math.MaxUint16},
		{dtype.Uint32, 0, math.MaxUint32},
		{dtype.Uint64, 0, math.MaxUint64},
		{dtype.Float32, -math.MaxFloat32, math.MaxFloat32},
		{dtype.Float64, -math.MaxFloat64, math.MaxFloat64},
	}
	for _, tc := range tests {
		min, max := tc.s.Limits()
		assert.Equal(t, tc.min, min, "%s min", tc.s)
		assert.Equal(t, tc.max, max, "%s max", tc.s)
	}

	lo, hi := dtype.Int64.IntRange()
	assert.Equal(t, int64(math.MinInt64), lo)
	assert.Equal(t, int64(math.MaxInt64), hi)
	assert.Equal(t, uint64(math.MaxUint64), dtype.Uint64.UintMax())
	assert.Equal(t, uint64(math.MaxUint32), dtype.Uint32.UintMax())
	assert.Zero(t, dtype.Int32.UintMax())
}

func TestNewArray(t *testing.T) {
	t.Parallel()

	a, err := dtype.NewArray(dtype.Int16, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, a.Dims())
	assert.Equal(t, 6, a.Len())
	assert.Equal(t, dtype.Int16, a.Elem())
	assert.Equal(t, "int16[2,3]", a.String())

	// Dims is a copy.
	dims := a.Dims()
	dims[0] = 99
	assert.Equal(t, []int{2, 3}, a.Dims())

	_, err = dtype.NewArray(nil, 3)
	require.ErrorIs(t, err, dtype.ErrUnsupportedType)
	_, err = dtype.NewArray(dtype.Int8)
	require.ErrorIs(t, err, dtype.ErrUnsupportedType)
	_, err = dtype.NewArray(dtype.Int8, 3, 0)
	require.ErrorIs(t, err, dtype.ErrUnsupportedType)
	require.Panics(t, func() { dtype.MustArray(dtype.Int8, -1) })
}

func TestNewRecord(t *testing.T) {
	t.Parallel()

	r := simpleStruct()
	assert.Equal(t, []string{"f0", "f1", "f2"}, r.Names())
	assert.Equal(t, 3, r.NumFields())
	f, ok := r.Field("f1")
	require.True(t, ok)
	assert.Equal(t, dtype.Int64, f.Type)
	_, ok = r.Field("nope")
	assert.False(t, ok)
	assert.Equal(t, "{f0: float32, f1: int64, f2: int64}", r.String())

	_, err := dtype.NewRecord()
	require.ErrorIs(t, err, dtype.ErrUnsupportedType)
	_, err = dtype.NewRecord(dtype.F("", dtype.Int8))
	require.ErrorIs(t, err, dtype.ErrUnsupportedType)
	_, err = dtype.NewRecord(dtype.F("a", nil))
	require.ErrorIs(t, err, dtype.ErrUnsupportedType)
	_, err = dtype.NewRecord(dtype.F("a", dtype.Int8), dtype.F("a", dtype.Int16))
	require.ErrorIs(t, err, dtype.ErrUnsupportedType)
}

func TestNestedString(t *testing.T) {
	t.Parallel()

	nested := dtype.MustRecord(
		dtype.F("i", dtype.Int8),
		dtype.F("a", dtype.MustArray(simpleStruct(), 3)),
	)
	assert.Equal(t, "{i: int8, a: {f0: float32, f1: int64, f2: int64}[3]}", nested.String())
	assert.Nil(t, dtype.Shape(nested))
	assert.Equal(t, []int{3}, dtype.Shape(nested.Fields()[1].Type))
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := map[string]dtype.Scalar{
		"int8":       dtype.Int8,
		"UINT16":     dtype.Uint16,
		" float32 ":  dtype.Float32,
		"np.float64": dtype.Float64,
		"double":     dtype.Float64,
		"longlong":   dtype.Int64,
		"ubyte":      dtype.Uint8,
	}
	for name, want := range tests {
		got, err := dtype.Parse(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := dtype.Parse("float128")
	require.ErrorIs(t, err, dtype.ErrUnsupportedType)
	assert.Contains(t, dtype.Names(), "uint32")
}
