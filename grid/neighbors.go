// SPDX-License-Identifier: MIT
// Package: necromap/grid
//
// neighbors.go — Moore-neighbourhood open counts.
//
// Contract:
//   • Offsets {-1,0,1}×{-1,0,1} minus (0,0) are examined.
//   • Offsets that leave the grid are skipped; they are neither wall nor open.
//   • The overlay is computed from one snapshot of the grid. Callers mutate
//     cells only after the whole overlay exists.
//
// Complexity:
//   • Time: O(W×H×8). Memory: O(W×H) for the overlay.

package grid

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/necromap/coord"
)

// MooreOffsets are the eight surrounding offsets in row-major order.
var MooreOffsets = [8]coord.Coord{
	{Row: -1, Col: -1}, {Row: -1, Col: 0}, {Row: -1, Col: 1},
	{Row: 0, Col: -1}, {Row: 0, Col: 1},
	{Row: 1, Col: -1}, {Row: 1, Col: 0}, {Row: 1, Col: 1},
}

// CountOpenNeighbors returns how many in-bounds Moore neighbours of (row, col)
// are Open. The result is always within 0..8.
// Complexity: O(1).
func CountOpenNeighbors(g *Grid, row, col int) int {
	count := 0
	for _, d := range MooreOffsets {
		r, c := row+d.Row, col+d.Col
		if !g.InBounds(r, c) {
			continue
		}
		if g.cells[r][c] == Open {
			count++
		}
	}
	return count
}

// NeighborCounts returns the open-neighbour overlay for every cell,
// shaped height×width.
func NeighborCounts(g *Grid) [][]int {
	counts := make([][]int, g.height)
	for r := 0; r < g.height; r++ {
		counts[r] = countRow(g, r)
	}
	return counts
}

// NeighborCountsParallel computes the same overlay as NeighborCounts using
// up to workers goroutines, one task per row. Every task reads the shared
// snapshot and writes only its own output row.
// Returns ErrNonRectangular if a row does not match the grid width.
func NeighborCountsParallel(g *Grid, workers int) ([][]int, error) {
	if workers < 1 {
		workers = 1
	}
	counts := make([][]int, g.height)

	var eg errgroup.Group
	eg.SetLimit(workers)
	for r := 0; r < g.height; r++ {
		r := r
		eg.Go(func() error {
			if len(g.cells[r]) != g.width {
				return fmt.Errorf("NeighborCountsParallel: row %d: %w", r, ErrNonRectangular)
			}
			counts[r] = countRow(g, r)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return counts, nil
}

func countRow(g *Grid, r int) []int {
	row := make([]int, g.width)
	for c := 0; c < g.width; c++ {
		row[c] = CountOpenNeighbors(g, r, c)
	}
	return row
}
