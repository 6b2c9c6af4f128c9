package namegen_test

import (
	"testing"

	"github.com/dmitrymomot/namemaker/pkg/namegen"
)

func BenchmarkGenerate(b *testing.B) {
	gen, err := namegen.New()
	if err != nil {
		b.Fatal(err)
	}

	b.Run("Single", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = gen.Generate()
		}
	})

	b.Run("Batch100", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = gen.GenerateMany(100)
		}
	})

	b.Run("Family", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = gen.GenerateFamily(3)
		}
	})
}
