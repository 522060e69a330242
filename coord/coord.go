package coord

import "fmt"

// Coord is an immutable grid position. Row grows downwards, Col grows to the right.
type Coord struct {
	Row, Col int
}

// Directions lists the four cardinal offsets: up, down, left, right.
// The order matches the traversal order of the region analyzer.
var Directions = [4]Coord{
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
}

// New returns the coordinate (row, col).
func New(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// Mod returns the element-wise sum of c and offset.
// Complexity: O(1).
func (c Coord) Mod(offset Coord) Coord {
	return Coord{Row: c.Row + offset.Row, Col: c.Col + offset.Col}
}

// Distance returns the Manhattan distance between c and other.
// Complexity: O(1).
func (c Coord) Distance(other Coord) int {
	return abs(c.Row-other.Row) + abs(c.Col-other.Col)
}

// Neighbors4 returns the four cardinal neighbours of c in Directions order.
// Results may lie outside any particular grid; callers check bounds.
func (c Coord) Neighbors4() [4]Coord {
	var out [4]Coord
	for i, d := range Directions {
		out[i] = c.Mod(d)
	}
	return out
}

// String renders c as "[row, col]".
func (c Coord) String() string {
	return fmt.Sprintf("[%d, %d]", c.Row, c.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
