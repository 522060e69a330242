package automaton_test

import (
	"testing"

	"github.com/katalvlaran/necromap/automaton"
)

// BenchmarkGenerate measures seeding plus both passes on a 240×480 map.
// Complexity: O(W×H×8) per pass.
func BenchmarkGenerate(b *testing.B) {
	gen := automaton.New(automaton.WithSeed(42))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := gen.Generate(240, 480); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkGenerateParallel is BenchmarkGenerate with 8 counting workers.
func BenchmarkGenerateParallel(b *testing.B) {
	gen := automaton.New(automaton.WithSeed(42), automaton.WithWorkers(8))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := gen.Generate(240, 480); err != nil {
			b.Fatal(err)
		}
	}
}
