package regions_test

import (
	"testing"

	"github.com/katalvlaran/necromap/automaton"
	"github.com/katalvlaran/necromap/regions"
)

// BenchmarkFind measures Find on a generated 500×500 cave.
// Complexity: O(W×H×4)
func BenchmarkFind(b *testing.B) {
	g, _, err := automaton.New(automaton.WithSeed(42)).Generate(500, 500)
	if err != nil {
		b.Fatalf("setup Generate failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = regions.Find(g)
	}
}

// BenchmarkLabels measures building the label overlay.
func BenchmarkLabels(b *testing.B) {
	g, _, err := automaton.New(automaton.WithSeed(42)).Generate(500, 500)
	if err != nil {
		b.Fatalf("setup Generate failed: %v", err)
	}
	rs := regions.Find(g)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = regions.Labels(g, rs)
	}
}
