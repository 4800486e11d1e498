package rvg

import (
	"github.com/katalvlaran/rvg/dtype"
	"github.com/katalvlaran/rvg/ndarray"
	"github.com/katalvlaran/rvg/param"
)

type mode uint8

const (
	modeTyped mode = iota + 1
	modeLimits
)

// Generator bundles a random source, a distribution and one of two
// construction modes:
//
//   - ForType fixes the type; ranges come per call from a parameter tree
//     (Generate).
//   - WithinLimit and WithinLimits fix one range; the type comes per call
//     (Random).
//
// A Generator is not safe for concurrent use. Fork one per goroutine.
type Generator struct {
	cfg      config
	mode     mode
	typ      dtype.Descriptor
	limits   param.Range
	warnings []RangeWarning
}

// ForType returns a generator for values of type d.
func ForType(d dtype.Descriptor, opts ...Option) (*Generator, error) {
	if d == nil {
		return nil, configErrorf(MethodForType, "nil type descriptor")
	}

	return &Generator{cfg: newConfig(opts...), mode: modeTyped, typ: d}, nil
}

// WithinLimit returns a generator sampling within the symmetric range
// (-m, m), or (0, m) for unsigned types. m must be > 0.
func WithinLimit(m float64, opts ...Option) (*Generator, error) {
	r, err := param.Magnitude(m)
	if err != nil {
		return nil, err
	}

	return &Generator{cfg: newConfig(opts...), mode: modeLimits, limits: r}, nil
}

// WithinLimits returns a generator sampling within (a, b). a must be
// strictly less than b. A negative b raises a RangeWarning, since applying
// the range to an unsigned type will fail.
func WithinLimits(a, b float64, opts ...Option) (*Generator, error) {
	r, err := param.Bounds(a, b)
	if err != nil {
		return nil, err
	}

	g := &Generator{cfg: newConfig(opts...), mode: modeLimits, limits: r}
	if b < 0 {
		g.warn(RangeWarning{High: b})
	}

	return g, nil
}

// Generate produces a value of the generator's type with ranges from p.
// With no shape a single unwrapped instance is returned.
// It fails with ErrConfiguration on a generator built from limits.
func (g *Generator) Generate(p param.Param, shape ...int) (ndarray.Value, error) {
	if g.mode != modeTyped {
		return nil, configErrorf(MethodGenerate, "generator was built from limits %s, use Random", g.limits)
	}

	return Generate(g.cfg.rng, g.typ, p, shape, g.cfg.dist)
}

// Random produces a value of type d within the generator's range.
// It fails with ErrConfiguration on a generator built with ForType.
func (g *Generator) Random(d dtype.Descriptor, shape ...int) (ndarray.Value, error) {
	if g.mode != modeLimits {
		return nil, configErrorf(MethodRandom, "generator was built for type %s, use Generate", g.typ)
	}
	if d == nil {
		return nil, configErrorf(MethodRandom, "nil type descriptor")
	}

	return Generate(g.cfg.rng, d, param.Broadcast{Range: g.limits}, shape, g.cfg.dist)
}

// Type returns the descriptor of a ForType generator, nil otherwise.
func (g *Generator) Type() dtype.Descriptor { return g.typ }

// Limits returns the range of a limits generator; ok is false for a
// ForType generator.
func (g *Generator) Limits() (r param.Range, ok bool) {
	return g.limits, g.mode == modeLimits
}

// Warnings returns the advisory warnings raised so far.
func (g *Generator) Warnings() []RangeWarning {
	return append([]RangeWarning(nil), g.warnings...)
}

// Fork returns a generator with the same mode and distribution and an
// independent random stream derived from g's source and stream. It
// advances g's source by one draw, so call it from the goroutine owning g.
// Warnings are not inherited.
func (g *Generator) Fork(stream uint64) *Generator {
	cfg := g.cfg
	cfg.rng = deriveRNG(g.cfg.rng, stream)

	return &Generator{cfg: cfg, mode: g.mode, typ: g.typ, limits: g.limits}
}

func (g *Generator) warn(w RangeWarning) {
	g.warnings = append(g.warnings, w)
	if g.cfg.warn != nil {
		g.cfg.warn(w)
	}
}
