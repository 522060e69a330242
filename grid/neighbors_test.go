package grid_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/necromap/grid"
)

// TestCountOpenNeighbors_SingleCell covers a 1×1 grid: every neighbour is
// out of bounds, so the count is 0 whatever the cell holds.
func TestCountOpenNeighbors_SingleCell(t *testing.T) {
	for _, v := range []grid.Cell{W, O} {
		g, err := grid.FromCells([][]grid.Cell{{v}})
		require.NoError(t, err)
		assert.Equal(t, 0, grid.CountOpenNeighbors(g, 0, 0))
	}
}

// TestCountOpenNeighbors_CenterOnly covers a 3×3 grid with only the centre open.
func TestCountOpenNeighbors_CenterOnly(t *testing.T) {
	g, err := grid.FromCells([][]grid.Cell{
		{W, W, W},
		{W, O, W},
		{W, W, W},
	})
	require.NoError(t, err)

	assert.Equal(t, 0, grid.CountOpenNeighbors(g, 1, 1))
	assert.Equal(t, 1, grid.CountOpenNeighbors(g, 0, 0))
	assert.Equal(t, 1, grid.CountOpenNeighbors(g, 2, 1))
}

// TestNeighborCounts_AllOpen checks border handling: corners see 3,
// edges 5, interior 8.
func TestNeighborCounts_AllOpen(t *testing.T) {
	g, err := grid.FromCells([][]grid.Cell{
		{O, O, O, O},
		{O, O, O, O},
		{O, O, O, O},
	})
	require.NoError(t, err)

	want := [][]int{
		{3, 5, 5, 3},
		{5, 8, 8, 5},
		{3, 5, 5, 3},
	}
	if diff := cmp.Diff(want, grid.NeighborCounts(g)); diff != "" {
		t.Errorf("NeighborCounts mismatch (-want +got):\n%s", diff)
	}
}

// TestNeighborCounts_Range asserts every count is within 0..8.
func TestNeighborCounts_Range(t *testing.T) {
	g, err := grid.ParseLayout("#.#..\n.##.#\n..#..\n#.###\n")
	require.NoError(t, err)

	for r, row := range grid.NeighborCounts(g) {
		require.Len(t, row, g.Width())
		for c, n := range row {
			assert.GreaterOrEqual(t, n, 0, "[%d, %d]", r, c)
			assert.LessOrEqual(t, n, 8, "[%d, %d]", r, c)
		}
	}
}

// TestNeighborCountsParallel_MatchesSequential compares both overlays.
func TestNeighborCountsParallel_MatchesSequential(t *testing.T) {
	g, err := grid.ParseLayout("#.#..#\n.##.#.\n..#...\n#.###.\n.....#\n")
	require.NoError(t, err)

	want := grid.NeighborCounts(g)
	for _, workers := range []int{0, 1, 3, 16} {
		got, err := grid.NeighborCountsParallel(g, workers)
		require.NoError(t, err)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("workers=%d mismatch (-want +got):\n%s", workers, diff)
		}
	}
}
