package regions

import "github.com/katalvlaran/necromap/coord"

// Region is one connected component of open cells, in the order the flood
// fill visited them. A Region returned by Find is never empty.
type Region []coord.Coord

// Blank is the label of a wall cell in the label overlay.
const Blank = " "

// Unassigned is the index of a wall cell in the index overlay.
const Unassigned = -1

// Contains reports whether c is a member of r.
// Complexity: O(|r|).
func (r Region) Contains(c coord.Coord) bool {
	for _, m := range r {
		if m == c {
			return true
		}
	}
	return false
}

// Sizes returns len(r) for every region, in order.
func Sizes(rs []Region) []int {
	out := make([]int, len(rs))
	for i, r := range rs {
		out[i] = len(r)
	}
	return out
}
