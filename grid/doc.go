// Package grid holds the binary wall/open cell store of a cave map and the
// Moore-neighbourhood counter the automaton depends on.
//
// What:
//
//   - Grid is a height×width rectangle of Cell values (Wall or Open).
//   - At/Set are bounds-checked and report ErrOutOfBounds instead of a cell
//     value when the coordinate is outside [0,height)×[0,width).
//   - Coords, Opens and Walls enumerate positions in row-major order.
//   - CountOpenNeighbors and NeighborCounts build the 0..8 open-neighbour
//     overlay; cells beyond the border are skipped, never counted as walls.
//   - NeighborCountsParallel computes the same overlay with one goroutine
//     per row band.
//
// Complexity:
//
//   - At, Set, InBounds:          O(1).
//   - Coords, Opens, Walls:       O(W×H).
//   - NeighborCounts (any form):  O(W×H×8), Memory: O(W×H).
//
// Errors:
//
//   - ErrInvalidDimensions: height or width ≤ 0.
//   - ErrOutOfBounds:       coordinate outside the grid.
//   - ErrNonRectangular:    row/column count differs from height/width.
//   - ErrBadLayout:         layout text contains an unknown cell rune.
package grid
