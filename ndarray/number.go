package ndarray

import (
	"math"
	"strconv"

	"github.com/katalvlaran/rvg/dtype"
)

// Number is one sampled scalar. It stores the exact value for every kind:
// two's complement bits for Signed, the raw value for Unsigned and IEEE bits
// of the float64 for Floating (float32 values are stored widened).
type Number struct {
	typ  dtype.Scalar
	bits uint64
}

// Int builds a Signed Number. v is truncated to the width of typ.
func Int(typ dtype.Scalar, v int64) Number {
	switch typ.Bits() {
	case 8:
		v = int64(int8(v))
	case 16:
		v = int64(int16(v))
	case 32:
		v = int64(int32(v))
	}

	return Number{typ: typ, bits: uint64(v)}
}

// Uint builds an Unsigned Number. v is truncated to the width of typ.
func Uint(typ dtype.Scalar, v uint64) Number {
	if typ.Bits() < 64 {
		v &= typ.UintMax()
	}

	return Number{typ: typ, bits: v}
}

// Float builds a Floating Number; float32 types round v to float32.
func Float(typ dtype.Scalar, v float64) Number {
	if typ.Bits() == 32 {
		v = float64(float32(v))
	}

	return Number{typ: typ, bits: math.Float64bits(v)}
}

// Type returns the scalar type the number was sampled for.
func (n Number) Type() dtype.Scalar { return n.typ }

// Int64 returns the value converted to int64.
func (n Number) Int64() int64 {
	switch n.typ.Kind() {
	case dtype.Floating:
		return int64(n.Float64())
	default:
		return int64(n.bits)
	}
}

// Uint64 returns the value converted to uint64.
func (n Number) Uint64() uint64 {
	switch n.typ.Kind() {
	case dtype.Floating:
		return uint64(n.Float64())
	default:
		return n.bits
	}
}

// Float64 returns the value converted to float64.
func (n Number) Float64() float64 {
	switch n.typ.Kind() {
	case dtype.Signed:
		return float64(int64(n.bits))
	case dtype.Unsigned:
		return float64(n.bits)
	default:
		return math.Float64frombits(n.bits)
	}
}

// Interface returns the value as the Go type matching its dtype:
// int8, int16, int32, int64, uint8, ..., float32 or float64.
func (n Number) Interface() interface{} {
	switch n.typ.Kind() {
	case dtype.Signed:
		v := int64(n.bits)
		switch n.typ.Bits() {
		case 8:
			return int8(v)
		case 16:
			return int16(v)
		case 32:
			return int32(v)
		}
		return v
	case dtype.Unsigned:
		switch n.typ.Bits() {
		case 8:
			return uint8(n.bits)
		case 16:
			return uint16(n.bits)
		case 32:
			return uint32(n.bits)
		}
		return n.bits
	case dtype.Floating:
		f := math.Float64frombits(n.bits)
		if n.typ.Bits() == 32 {
			return float32(f)
		}
		return f
	}

	return nil
}

// Shape returns nil: a Number is a single unwrapped instance.
func (n Number) Shape() []int { return nil }

// String formats the number at its own precision.
func (n Number) String() string {
	switch n.typ.Kind() {
	case dtype.Signed:
		return strconv.FormatInt(int64(n.bits), 10)
	case dtype.Unsigned:
		return strconv.FormatUint(n.bits, 10)
	default:
		size := 64
		if n.typ.Bits() == 32 {
			size = 32
		}
		return strconv.FormatFloat(math.Float64frombits(n.bits), 'g', -1, size)
	}
}

func (Number) value() {}
