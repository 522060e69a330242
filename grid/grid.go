package grid

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/necromap/coord"
)

// New returns a height×width grid with every cell set to Wall.
// Returns ErrInvalidDimensions if either dimension is ≤ 0.
// Complexity: O(W×H) time and memory.
func New(height, width int) (*Grid, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("New: height=%d, width=%d: %w", height, width, ErrInvalidDimensions)
	}
	cells := make([][]Cell, height)
	for r := range cells {
		cells[r] = make([]Cell, width)
	}

	return &Grid{height: height, width: width, cells: cells}, nil
}

// FromCells builds a grid from a non-empty rectangular 2D slice.
// The input is deep-copied so later edits by the caller do not leak in.
// Returns ErrInvalidDimensions for no rows or no columns, ErrNonRectangular
// if row lengths differ.
func FromCells(cells [][]Cell) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, fmt.Errorf("FromCells: %w", ErrInvalidDimensions)
	}
	g, err := New(len(cells), len(cells[0]))
	if err != nil {
		return nil, err
	}
	for r, row := range cells {
		if len(row) != g.width {
			return nil, fmt.Errorf("FromCells: row %d has %d cells, want %d: %w", r, len(row), g.width, ErrNonRectangular)
		}
		copy(g.cells[r], row)
	}

	return g, nil
}

// ParseLayout reads the text produced by MarshalText: one row per line,
// WallRune for walls and OpenRune for open cells. Blank trailing lines
// are ignored.
func ParseLayout(text string) (*Grid, error) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	cells := make([][]Cell, 0, len(lines))
	for r, line := range lines {
		row := make([]Cell, 0, len(line))
		for c, ch := range line {
			switch ch {
			case WallRune:
				row = append(row, Wall)
			case OpenRune:
				row = append(row, Open)
			default:
				return nil, fmt.Errorf("ParseLayout: %q at [%d, %d]: %w", ch, r, c, ErrBadLayout)
			}
		}
		cells = append(cells, row)
	}

	return FromCells(cells)
}

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// InBounds reports whether (row, col) lies inside the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// At returns the cell at c, or ErrOutOfBounds when c is outside the grid.
// Complexity: O(1).
func (g *Grid) At(c coord.Coord) (Cell, error) {
	if !g.InBounds(c.Row, c.Col) {
		return Wall, fmt.Errorf("At%s: %w", c, ErrOutOfBounds)
	}
	return g.cells[c.Row][c.Col], nil
}

// IsOpen reports whether c is inside the grid and Open.
func (g *Grid) IsOpen(c coord.Coord) bool {
	return g.InBounds(c.Row, c.Col) && g.cells[c.Row][c.Col] == Open
}

// Set stores v at c, or returns ErrOutOfBounds.
// Complexity: O(1).
func (g *Grid) Set(c coord.Coord, v Cell) error {
	if !g.InBounds(c.Row, c.Col) {
		return fmt.Errorf("Set%s: %w", c, ErrOutOfBounds)
	}
	g.cells[c.Row][c.Col] = v
	return nil
}

// Update replaces every cell with fn(position, current value), visiting
// cells in row-major order. fn must not read other cells of g expecting
// pre-update values; snapshot first if it needs them.
// Complexity: O(W×H) calls to fn.
func (g *Grid) Update(fn func(c coord.Coord, v Cell) Cell) {
	for r, row := range g.cells {
		for c, v := range row {
			row[c] = fn(coord.New(r, c), v)
		}
	}
}

// Coords lists every position in row-major order.
// Complexity: O(W×H).
func (g *Grid) Coords() []coord.Coord {
	out := make([]coord.Coord, 0, g.height*g.width)
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			out = append(out, coord.New(r, c))
		}
	}
	return out
}

// Opens lists the Open positions in row-major order.
func (g *Grid) Opens() []coord.Coord { return g.filter(Open) }

// Walls lists the Wall positions in row-major order.
func (g *Grid) Walls() []coord.Coord { return g.filter(Wall) }

func (g *Grid) filter(want Cell) []coord.Coord {
	var out []coord.Coord
	for r, row := range g.cells {
		for c, v := range row {
			if v == want {
				out = append(out, coord.New(r, c))
			}
		}
	}
	return out
}

// OpenCount returns the number of Open cells.
// Complexity: O(W×H).
func (g *Grid) OpenCount() int {
	n := 0
	for _, row := range g.cells {
		for _, v := range row {
			if v == Open {
				n++
			}
		}
	}
	return n
}

// Validate re-checks the shape invariant: exactly height rows of exactly
// width cells. A failure means the grid was corrupted by a programming error.
func (g *Grid) Validate() error {
	if len(g.cells) != g.height {
		return fmt.Errorf("Validate: %d rows, want %d: %w", len(g.cells), g.height, ErrNonRectangular)
	}
	for r, row := range g.cells {
		if len(row) != g.width {
			return fmt.Errorf("Validate: row %d has %d cells, want %d: %w", r, len(row), g.width, ErrNonRectangular)
		}
	}
	return nil
}

// Cells returns a deep copy of the cell store.
func (g *Grid) Cells() [][]Cell {
	out := make([][]Cell, g.height)
	for r, row := range g.cells {
		out[r] = append([]Cell(nil), row...)
	}
	return out
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	return &Grid{height: g.height, width: g.width, cells: g.Cells()}
}

// Equal reports whether g and other have the same shape and cells.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.height != other.height || g.width != other.width {
		return false
	}
	for r := range g.cells {
		for c := range g.cells[r] {
			if g.cells[r][c] != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}

// MarshalText renders the layout, one row per line, using WallRune and OpenRune.
func (g *Grid) MarshalText() ([]byte, error) {
	var b strings.Builder
	b.Grow(g.height * (g.width + 1))
	for _, row := range g.cells {
		for _, v := range row {
			b.WriteString(v.String())
		}
		b.WriteByte('\n')
	}
	return []byte(b.String()), nil
}
