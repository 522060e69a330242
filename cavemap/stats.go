package cavemap

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/necromap/regions"
)

// Stats summarises a map's layout and region sizes.
type Stats struct {
	Cells     int     // height × width
	Open      int     // open cells
	Walls     int     // wall cells
	OpenRatio float64 // Open / Cells

	Regions      int     // number of regions
	Largest      int     // size of the biggest region, 0 if none
	Smallest     int     // size of the smallest region, 0 if none
	MeanRegion   float64 // mean region size, 0 if none
	StdDevRegion float64 // sample standard deviation, 0 with fewer than two regions
}

// Stats computes the summary of the current layout.
// Complexity: O(R) over the number of regions.
func (m *Map) Stats() Stats {
	cells := m.Height() * m.Width()
	s := Stats{
		Cells:     cells,
		Open:      m.openCount,
		Walls:     cells - m.openCount,
		OpenRatio: float64(m.openCount) / float64(cells),
		Regions:   len(m.regions),
	}
	if len(m.regions) == 0 {
		return s
	}

	sizes := make([]float64, len(m.regions))
	for i, n := range regions.Sizes(m.regions) {
		sizes[i] = float64(n)
	}
	s.Largest = int(floats.Max(sizes))
	s.Smallest = int(floats.Min(sizes))
	if len(sizes) < 2 {
		s.MeanRegion = sizes[0]
		return s
	}
	s.MeanRegion, s.StdDevRegion = stat.MeanStdDev(sizes, nil)

	return s
}
