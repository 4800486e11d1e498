package rvg_test

import (
	"testing"

	"github.com/katalvlaran/rvg/dtype"
	"github.com/katalvlaran/rvg/param"
	"github.com/katalvlaran/rvg/rvg"
)

func BenchmarkUniformInt64Block(b *testing.B) {
	u := rvg.Uniform{TypeLimits: true}
	rng := newRand(1)
	p := param.Of(1 << 40)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := u.Sample(rng, dtype.Int64, p, []int{1024}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUniformFloat32Block(b *testing.B) {
	u := rvg.Uniform{TypeLimits: true}
	rng := newRand(1)
	p := param.Between(-1, 1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := u.Sample(rng, dtype.Float32, p, []int{1024}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGeneratorNestedRecord(b *testing.B) {
	g, err := rvg.ForType(withArray, rvg.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	p := param.FieldMap{"i": param.Of(42), "a": simpleParams}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.Generate(p, 32, 8); err != nil {
			b.Fatal(err)
		}
	}
}
