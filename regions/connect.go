package regions

import (
	"github.com/katalvlaran/necromap/coord"
	"github.com/katalvlaran/necromap/grid"
)

// Nearest returns the closest pair (from ∈ a, to ∈ b) by Manhattan distance.
// Ties keep the first pair found scanning a then b in order. ok is false
// when either region is empty.
// Complexity: O(|a|×|b|).
func Nearest(a, b Region) (from, to coord.Coord, dist int, ok bool) {
	if len(a) == 0 || len(b) == 0 {
		return coord.Coord{}, coord.Coord{}, 0, false
	}
	dist = -1
	for _, p := range a {
		for _, q := range b {
			if d := p.Distance(q); dist < 0 || d < dist {
				from, to, dist = p, q, d
			}
		}
	}
	return from, to, dist, true
}

// Connect is meant to join small regions to the main one by carving a path
// between nearest cells. The carving rule is not settled, so Connect leaves
// g untouched and always reports false ("not connected").
func Connect(_ *grid.Grid, _ []Region) bool {
	return false
}
