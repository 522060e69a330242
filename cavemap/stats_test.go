package cavemap_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/necromap/cavemap"
)

func TestStats(t *testing.T) {
	cases := []struct {
		name   string
		layout string
		want   cavemap.Stats
	}{
		{
			name:   "TwoRegions",
			layout: "#..#\n..##\n##..\n",
			want: cavemap.Stats{
				Cells: 12, Open: 6, Walls: 6, OpenRatio: 0.5,
				Regions: 2, Largest: 4, Smallest: 2, MeanRegion: 3, StdDevRegion: math.Sqrt2,
			},
		},
		{
			name:   "OneRegion",
			layout: "###\n#.#\n###\n",
			want: cavemap.Stats{
				Cells: 9, Open: 1, Walls: 8, OpenRatio: 1.0 / 9,
				Regions: 1, Largest: 1, Smallest: 1, MeanRegion: 1,
			},
		},
		{
			name:   "AllWall",
			layout: "##\n##\n",
			want:   cavemap.Stats{Cells: 4, Walls: 4},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := mustMap(t, tc.layout).Stats()
			assert.Equal(t, tc.want.Cells, got.Cells)
			assert.Equal(t, tc.want.Open, got.Open)
			assert.Equal(t, tc.want.Walls, got.Walls)
			assert.InDelta(t, tc.want.OpenRatio, got.OpenRatio, 1e-12)
			assert.Equal(t, tc.want.Regions, got.Regions)
			assert.Equal(t, tc.want.Largest, got.Largest)
			assert.Equal(t, tc.want.Smallest, got.Smallest)
			assert.InDelta(t, tc.want.MeanRegion, got.MeanRegion, 1e-12)
			assert.InDelta(t, tc.want.StdDevRegion, got.StdDevRegion, 1e-12)
		})
	}
}

// TestStats_Generated cross-checks Stats against the map accessors.
func TestStats_Generated(t *testing.T) {
	m, err := cavemap.Generate(24, 48, cavemap.WithSeed(8))
	require.NoError(t, err)
	s := m.Stats()

	total := 0
	for _, r := range m.Regions() {
		total += len(r)
		assert.LessOrEqual(t, len(r), s.Largest)
		assert.GreaterOrEqual(t, len(r), s.Smallest)
	}
	assert.Equal(t, m.OpenCount(), total)
	assert.Equal(t, len(m.Regions()), s.Regions)
	if s.Regions > 0 {
		assert.InDelta(t, float64(total)/float64(s.Regions), s.MeanRegion, 1e-9)
	}
}
