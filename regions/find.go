package regions

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/necromap/coord"
	"github.com/katalvlaran/necromap/grid"
)

// Find returns the maximal 4-connected components of Open cells in g.
// Starting cells are taken in row-major order; every cell reachable from a
// start is consumed before the next unseen start is considered. A grid
// with no open cells yields no regions.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for the seen set, the stack and the output.
func Find(g *grid.Grid) []Region {
	seen := mapset.New[coord.Coord]()
	var out []Region

	for _, start := range g.Opens() {
		if seen.Has(start) {
			continue
		}
		// DFS with an explicit stack; duplicates are dropped on pop.
		stack := []coord.Coord{start}
		var region Region
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if seen.Has(cur) {
				continue
			}
			seen.Put(cur)
			region = append(region, cur)
			for _, n := range cur.Neighbors4() {
				if g.IsOpen(n) && !seen.Has(n) {
					stack = append(stack, n)
				}
			}
		}
		out = append(out, region)
	}

	return out
}
