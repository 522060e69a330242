package grid

// Cell is the binary state of one grid position.
type Cell uint8

const (
	// Wall blocks movement and flood fill.
	Wall Cell = iota
	// Open is walkable floor; regions are built from open cells.
	Open
)

// Layout runes used by MarshalText / ParseLayout.
const (
	WallRune = '#'
	OpenRune = '.'
)

// String renders the cell as its layout rune.
func (c Cell) String() string {
	if c == Open {
		return string(OpenRune)
	}
	return string(WallRune)
}

// Grid is a rectangular wall/open store. The zero value is not usable;
// build one with New, FromCells or ParseLayout.
type Grid struct {
	height, width int
	cells         [][]Cell // cells[row][col]
}
