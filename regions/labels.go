package regions

import (
	"github.com/katalvlaran/necromap/grid"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// LabelFor returns the label of the region at index i (i ≥ 0).
// The first 26 regions get "A".."Z"; later ones continue in bijective
// base 26 like spreadsheet columns: 26 → "AA", 701 → "ZZ", 702 → "AAA".
// Negative indices yield Blank.
func LabelFor(i int) string {
	if i < 0 {
		return Blank
	}
	var buf []byte
	for n := i + 1; n > 0; n = (n - 1) / len(alphabet) {
		buf = append(buf, alphabet[(n-1)%len(alphabet)])
	}
	for l, r := 0, len(buf)-1; l < r; l, r = l+1, r-1 {
		buf[l], buf[r] = buf[r], buf[l]
	}
	return string(buf)
}

// Labels builds the label overlay for g: Blank everywhere, then every member
// of rs[i] set to LabelFor(i), in order.
// Complexity: O(W×H).
func Labels(g *grid.Grid, rs []Region) [][]string {
	out := make([][]string, g.Height())
	for r := range out {
		row := make([]string, g.Width())
		for c := range row {
			row[c] = Blank
		}
		out[r] = row
	}
	for i, region := range rs {
		label := LabelFor(i)
		for _, c := range region {
			out[c.Row][c.Col] = label
		}
	}
	return out
}

// Index builds the region-index overlay for g: Unassigned for walls,
// i for members of rs[i].
// Complexity: O(W×H).
func Index(g *grid.Grid, rs []Region) [][]int {
	out := make([][]int, g.Height())
	for r := range out {
		row := make([]int, g.Width())
		for c := range row {
			row[c] = Unassigned
		}
		out[r] = row
	}
	for i, region := range rs {
		for _, c := range region {
			out[c.Row][c.Col] = i
		}
	}
	return out
}
