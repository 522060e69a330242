// Package coord provides the (row, col) coordinate value used across
// necromap.
//
// What:
//
//   - Coord is a comparable value type: two coordinates with equal Row and
//     Col are interchangeable as map keys and set members.
//   - Mod projects an offset from a base cell.
//   - Distance is the Manhattan distance |Δrow| + |Δcol|.
//   - Directions holds the four cardinal offsets used by flood fill.
//
// Complexity:
//
//   - Every operation is O(1) and allocation-free.
package coord
