// Package cavemap is the entry point for generating a cave level and
// reading its derived state.
//
// What:
//
//   - Generate(h, w, opts...) seeds and smooths a layout (package automaton),
//     then computes every derived datum: open count, open and wall lists,
//     neighbour overlay, regions and the label overlay (package regions).
//   - FromGrid wraps an existing layout without smoothing it.
//   - SetCell edits one cell and recomputes the derived state; overlays are
//     never stale with respect to the layout.
//   - LabelText / WriteLabels export the label overlay as text, one row per
//     line with cells separated by a single space; ParseLabels reads it back.
//   - Stats summarises region sizes.
//
// Errors:
//
//   - grid.ErrInvalidDimensions: Generate with height or width ≤ 0.
//   - grid.ErrOutOfBounds:       At / SetCell outside the map.
//   - ErrMalformedLabels:        ParseLabels input is not a label overlay.
//
// A Map is owned by one caller and is not safe for concurrent mutation.
package cavemap
