// Parameter Tree: a tagged variant that mirrors a dtype.Descriptor but may
// be shallower than it.

package param

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Range is a validated numeric range: either a symmetric magnitude m or an
// explicit (low, high) pair. The zero Range is invalid; build one with
// Magnitude or Bounds.
type Range struct {
	lo, hi    float64
	symmetric bool
}

// Magnitude builds the symmetric range (-m, m); for unsigned scalars it
// resolves to (0, m). m must be > 0 (math.Inf(1) is accepted and means
// "the whole representable range").
func Magnitude(m float64) (Range, error) {
	if !(m > 0) {
		return Range{}, configErrorf("Magnitude", "argument `limit` must be a number greater than 0, got %g", m)
	}

	return Range{lo: -m, hi: m, symmetric: true}, nil
}

// Bounds builds the explicit range (lo, hi). lo must be strictly less
// than hi.
func Bounds(lo, hi float64) (Range, error) {
	if !(lo < hi) {
		return Range{}, configErrorf("Bounds", "argument `a` must be less than `b`, got (%g, %g)", lo, hi)
	}

	return Range{lo: lo, hi: hi}, nil
}

// MustMagnitude is Magnitude for literal parameter trees; it panics on error.
func MustMagnitude(m float64) Range {
	r, err := Magnitude(m)
	if err != nil {
		panic(err)
	}

	return r
}

// MustBounds is Bounds for literal parameter trees; it panics on error.
func MustBounds(lo, hi float64) Range {
	r, err := Bounds(lo, hi)
	if err != nil {
		panic(err)
	}

	return r
}

// IsSymmetric reports whether r was built by Magnitude.
func (r Range) IsSymmetric() bool { return r.symmetric }

// IsZero reports whether r is the (invalid) zero Range.
func (r Range) IsZero() bool { return r == Range{} }

// Bounds returns the raw (lo, hi) pair, before any kind-specific resolution.
func (r Range) Bounds() (lo, hi float64) { return r.lo, r.hi }

// Resolve returns the effective (lo, hi) for a scalar. For unsigned scalars
// the lower bound is raised to max(lo, 0); a symmetric magnitude therefore
// becomes (0, m).
func (r Range) Resolve(unsigned bool) (lo, hi float64) {
	lo, hi = r.lo, r.hi
	if unsigned {
		lo = math.Max(lo, 0)
	}

	return lo, hi
}

// String renders "m" for a magnitude and "(lo, hi)" for bounds.
func (r Range) String() string {
	if r.symmetric {
		return fmtFloat(r.hi)
	}

	return "(" + fmtFloat(r.lo) + ", " + fmtFloat(r.hi) + ")"
}

func fmtFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Param is a node of the Parameter Tree. The set of implementations is
// closed: Absent, Broadcast and FieldMap.
type Param interface {
	String() string

	isParam()
}

// Absent means "no parameter supplied". It is valid only when the
// distribution tolerates it; the uniform distribution does not.
type Absent struct{}

// String returns "absent".
func (Absent) String() string { return "absent" }

func (Absent) isParam() {}

// Broadcast applies one Range to every field and element below it.
type Broadcast struct {
	Range Range
}

// String renders the wrapped Range.
func (b Broadcast) String() string { return b.Range.String() }

func (Broadcast) isParam() {}

// FieldMap maps record field names to child parameters.
type FieldMap map[string]Param

// String renders "{name: param, ...}" with keys sorted.
func (m FieldMap) String() string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k)
		b.WriteString(": ")
		if m[k] == nil {
			b.WriteString(Absent{}.String())
			continue
		}
		b.WriteString(m[k].String())
	}
	b.WriteByte('}')

	return b.String()
}

func (FieldMap) isParam() {}

// Of is a Broadcast of the symmetric magnitude m. It panics if m <= 0 and
// is meant for literal trees such as FieldMap{"f0": Of(17)}.
func Of(m float64) Broadcast {
	return Broadcast{Range: MustMagnitude(m)}
}

// Between is a Broadcast of the explicit range (lo, hi). It panics if
// lo >= hi and is meant for literal trees.
func Between(lo, hi float64) Broadcast {
	return Broadcast{Range: MustBounds(lo, hi)}
}

// Lookup resolves the parameter for the record field name.
//
//   - FieldMap holding name → that child (a nil child is Absent).
//   - FieldMap without name → the whole FieldMap, broadcast downward.
//   - Broadcast or Absent   → p itself, broadcast downward.
//
// A parameter tree shallower than the type tree is therefore always valid;
// Lookup never reports a missing field.
func Lookup(p Param, name string) Param {
	switch v := p.(type) {
	case nil:
		return Absent{}
	case FieldMap:
		child, ok := v[name]
		if !ok {
			return v
		}
		if child == nil {
			return Absent{}
		}
		return child
	default:
		return p
	}
}
