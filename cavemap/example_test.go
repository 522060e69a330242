package cavemap_test

import (
	"fmt"

	"github.com/katalvlaran/necromap/cavemap"
	"github.com/katalvlaran/necromap/grid"
)

// ExampleFromGrid analyses a hand-drawn layout and prints its summary and
// label overlay.
func ExampleFromGrid() {
	g, _ := grid.ParseLayout("..#..\n..#..\n###..\n.#...\n")
	m := cavemap.FromGrid(g)

	fmt.Println(m)
	fmt.Println("regions:", m.Stats().Regions)
	fmt.Print(m.LabelText())

	// Output:
	// [4 by 5] with 14 spaces
	// regions: 3
	// A A   B B
	// A A   B B
	//       B B
	// C   B B B
}

// ExampleGenerate shows that a seed pins the layout.
func ExampleGenerate() {
	a, _ := cavemap.Generate(24, 48, cavemap.WithSeed(7))
	b, _ := cavemap.Generate(24, 48, cavemap.WithSeed(7))

	fmt.Println(a.String() == b.String(), a.LabelText() == b.LabelText())

	// Output:
	// true true
}
