package dtype

import "math"

// IntRange returns the exact representable range of a Signed or Unsigned
// scalar clipped to int64. For Uint64 the upper bound saturates at
// math.MaxInt64; use UintMax for the exact value. Floating scalars return
// (0, 0).
func (s Scalar) IntRange() (min, max int64) {
	switch s.kind {
	case Signed:
		return -1 << (s.bits - 1), 1<<(s.bits-1) - 1
	case Unsigned:
		if s.bits == 64 {
			return 0, math.MaxInt64
		}
		return 0, 1<<s.bits - 1
	}

	return 0, 0
}

// UintMax returns 2^bits-1 for an Unsigned scalar and 0 otherwise.
func (s Scalar) UintMax() uint64 {
	if s.kind != Unsigned {
		return 0
	}
	if s.bits == 64 {
		return math.MaxUint64
	}

	return 1<<uint(s.bits) - 1
}

// Limits returns the representable range as float64:
//
//	signed   w → [-2^(w-1), 2^(w-1)-1]
//	unsigned w → [0, 2^w-1]
//	floating   → finite min/max of the format
//
// 64-bit integer limits are rounded to the nearest float64; the exact
// values are available through IntRange and UintMax.
func (s Scalar) Limits() (min, max float64) {
	switch s.kind {
	case Signed:
		lo, hi := s.IntRange()
		return float64(lo), float64(hi)
	case Unsigned:
		return 0, float64(s.UintMax())
	case Floating:
		if s.bits == 32 {
			return -math.MaxFloat32, math.MaxFloat32
		}
		return -math.MaxFloat64, math.MaxFloat64
	}

	return 0, 0
}
