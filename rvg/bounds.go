package rvg

import (
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/rvg/dtype"
	"github.com/katalvlaran/rvg/param"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	twoTo63 = float64(1 << 63)
	twoTo64 = 2 * twoTo63
)

// effectiveRange resolves r for s and checks it against the limits of s.
// The returned interval is half-open: [lo, hi).
//
// Integer limits are treated as the half-open [min, max+1) so that
// (0, 256) is exactly the full uint8 range.
func effectiveRange(s dtype.Scalar, r param.Range, typeLimits bool) (lo, hi float64, err error) {
	reqLo, reqHi := r.Resolve(s.Kind() == dtype.Unsigned)
	if !(reqLo < reqHi) {
		return 0, 0, newRangeError(s, reqLo, reqHi, "low must be strictly less than high")
	}

	min, top := s.Limits()
	if s.Kind() != dtype.Floating {
		top++
	}

	if typeLimits {
		lo, hi = math.Max(reqLo, min), math.Min(reqHi, top)
		if !(lo < hi) {
			return 0, 0, newRangeError(s, reqLo, reqHi, "range does not intersect the values of "+s.String())
		}
		return lo, hi, nil
	}

	if reqLo < min {
		return 0, 0, newRangeError(s, reqLo, reqHi, "low is out of bounds for "+s.String())
	}
	if reqHi > top {
		return 0, 0, newRangeError(s, reqLo, reqHi, "high is out of bounds for "+s.String())
	}

	return reqLo, reqHi, nil
}

// intBounds maps the real interval [lo, hi) onto the inclusive integer
// interval [ceil(lo), ceil(hi)-1]. ok is false when no integer lies in it.
// hi must not exceed 2^63.
func intBounds(lo, hi float64) (l, h int64, ok bool) {
	cl, ch := math.Ceil(lo), math.Ceil(hi)
	if cl >= ch {
		return 0, 0, false
	}
	if ch >= twoTo63 {
		return int64(cl), math.MaxInt64, true
	}

	return int64(cl), int64(ch) - 1, true
}

// uintBounds is intBounds for 0 <= lo < hi <= 2^64.
func uintBounds(lo, hi float64) (l, h uint64, ok bool) {
	cl, ch := math.Ceil(lo), math.Ceil(hi)
	if cl >= ch {
		return 0, 0, false
	}
	if ch >= twoTo64 {
		return uint64(cl), math.MaxUint64, true
	}

	return uint64(cl), uint64(ch) - 1, true
}

// sampleInt draws uniformly from the inclusive [l, h].
func sampleInt(rng *rand.Rand, l, h int64) int64 {
	span := uint64(h) - uint64(l) + 1
	if span == 0 {
		return int64(rng.Uint64())
	}

	return l + int64(rng.Uint64N(span))
}

// sampleUint draws uniformly from the inclusive [l, h].
func sampleUint(rng *rand.Rand, l, h uint64) uint64 {
	span := h - l + 1
	if span == 0 {
		return rng.Uint64()
	}

	return l + rng.Uint64N(span)
}

// sampleFloat draws uniformly from [lo, hi). When hi-lo overflows (for
// example (-MaxFloat64, MaxFloat64)) it samples the halved interval and
// doubles the result.
func sampleFloat(rng *rand.Rand, lo, hi float64) float64 {
	var v float64
	if math.IsInf(hi-lo, 0) {
		u := distuv.Uniform{Min: lo / 2, Max: hi / 2, Src: rng}
		v = 2 * u.Rand()
	} else {
		u := distuv.Uniform{Min: lo, Max: hi, Src: rng}
		v = u.Rand()
	}

	// rounding in Min + r*(Max-Min) may land on hi
	if v >= hi {
		v = math.Nextafter(hi, lo)
	}
	if v < lo {
		v = lo
	}

	return v
}

// hasFloat32 reports whether some float32 lies in [lo, hi).
func hasFloat32(lo, hi float64) bool {
	f := float32(lo)
	if float64(f) < lo {
		f = math.Nextafter32(f, float32(math.Inf(1)))
	}

	return float64(f) < hi
}

// narrow32 rounds v to float32 and keeps the result inside [lo, hi).
func narrow32(v, lo, hi float64) float32 {
	f := float32(v)
	if float64(f) >= hi {
		f = math.Nextafter32(f, float32(math.Inf(-1)))
	}
	if float64(f) < lo {
		f = math.Nextafter32(f, float32(math.Inf(1)))
	}

	return f
}
