package cavemap

import (
	"fmt"

	"github.com/katalvlaran/necromap/automaton"
	"github.com/katalvlaran/necromap/coord"
	"github.com/katalvlaran/necromap/grid"
	"github.com/katalvlaran/necromap/regions"
)

// Map is a generated cave plus the state derived from its layout.
type Map struct {
	grid *grid.Grid
	seed *int64

	// Derived from grid by refresh; never edited directly.
	neighbors [][]int
	openCount int
	opens     []coord.Coord
	walls     []coord.Coord
	regions   []regions.Region
	labels    [][]string
	index     [][]int
	connected bool
}

// Generate builds a height×width cave: random fill, automaton.Passes
// smoothing passes, then region analysis. Without WithSeed the layout is
// drawn from a fresh time-seeded source.
// Returns grid.ErrInvalidDimensions if height or width is ≤ 0.
func Generate(height, width int, opts ...Option) (*Map, error) {
	s := newSettings(opts...)
	g, counts, err := automaton.New(s.genOpts...).Generate(height, width)
	if err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}
	m := &Map{grid: g, seed: s.seed}
	m.refresh(counts)

	return m, nil
}

// FromGrid wraps a copy of g and computes its derived state. No smoothing
// pass is applied. WithSeed only records the seed the layout came from.
func FromGrid(g *grid.Grid, opts ...Option) *Map {
	m := &Map{grid: g.Clone(), seed: newSettings(opts...).seed}
	m.Refresh()
	return m
}

// Refresh recomputes every derived datum from the current layout.
func (m *Map) Refresh() {
	m.refresh(grid.NeighborCounts(m.grid))
}

func (m *Map) refresh(counts [][]int) {
	m.neighbors = counts
	m.openCount = m.grid.OpenCount()
	m.opens = m.grid.Opens()
	m.walls = m.grid.Walls()
	m.regions = regions.Find(m.grid)
	m.labels = regions.Labels(m.grid, m.regions)
	m.index = regions.Index(m.grid, m.regions)
	m.connected = regions.Connect(m.grid, m.regions)
}

// SetCell stores v at c and refreshes the derived state.
// Returns grid.ErrOutOfBounds for positions outside the map.
func (m *Map) SetCell(c coord.Coord, v grid.Cell) error {
	if err := m.grid.Set(c, v); err != nil {
		return fmt.Errorf("SetCell: %w", err)
	}
	m.Refresh()
	return nil
}

// Height returns the number of rows.
func (m *Map) Height() int { return m.grid.Height() }

// Width returns the number of columns.
func (m *Map) Width() int { return m.grid.Width() }

// Seed returns the seed passed with WithSeed, if any.
func (m *Map) Seed() (int64, bool) {
	if m.seed == nil {
		return 0, false
	}
	return *m.seed, true
}

// Grid returns a copy of the layout.
func (m *Map) Grid() *grid.Grid { return m.grid.Clone() }

// At returns the cell at c, or grid.ErrOutOfBounds.
func (m *Map) At(c coord.Coord) (grid.Cell, error) { return m.grid.At(c) }

// OpenCount returns the number of open cells.
func (m *Map) OpenCount() int { return m.openCount }

// Opens returns the open coordinates in row-major order.
func (m *Map) Opens() []coord.Coord { return append([]coord.Coord(nil), m.opens...) }

// Walls returns the wall coordinates in row-major order.
func (m *Map) Walls() []coord.Coord { return append([]coord.Coord(nil), m.walls...) }

// Regions returns the regions in discovery order. Region i carries label
// regions.LabelFor(i).
func (m *Map) Regions() []regions.Region {
	out := make([]regions.Region, len(m.regions))
	for i, r := range m.regions {
		out[i] = append(regions.Region(nil), r...)
	}
	return out
}

// Labels returns a copy of the label overlay.
func (m *Map) Labels() [][]string { return copyRows(m.labels) }

// Neighbors returns a copy of the open-neighbour overlay of the current layout.
func (m *Map) Neighbors() [][]int { return copyRows(m.neighbors) }

// RegionAt returns the index of the region containing c; ok is false for
// walls and positions outside the map.
func (m *Map) RegionAt(c coord.Coord) (index int, ok bool) {
	if !m.grid.InBounds(c.Row, c.Col) {
		return regions.Unassigned, false
	}
	i := m.index[c.Row][c.Col]
	return i, i != regions.Unassigned
}

// Connected reports whether the region connector merged the map into one
// region. The connector is not implemented, so this is always false.
func (m *Map) Connected() bool { return m.connected }

// Connect runs the region connector on the current regions.
func (m *Map) Connect() bool {
	m.connected = regions.Connect(m.grid, m.regions)
	return m.connected
}

// String renders a one-line summary: "[h by w] with n spaces".
func (m *Map) String() string {
	return fmt.Sprintf("[%d by %d] with %d spaces", m.Height(), m.Width(), m.openCount)
}

func copyRows[T any](rows [][]T) [][]T {
	out := make([][]T, len(rows))
	for i, row := range rows {
		out[i] = append([]T(nil), row...)
	}
	return out
}
