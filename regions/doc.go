// Package regions partitions the open cells of a grid into maximal
// 4-connected components ("regions") and labels them.
//
// What:
//
//   - Find walks open cells in row-major order and flood-fills every one not
//     yet seen with an explicit stack, so regions come out in discovery order.
//   - LabelFor maps a region index to its label: "A".."Z", then "AA", "AB", …
//   - Labels and Index build the per-cell overlays (Blank / Unassigned on walls).
//   - Nearest reports the closest pair of cells between two regions.
//   - Connect is the hook for merging regions into one; it does no work yet
//     and always reports false.
//
// Complexity:
//
//   - Find:   O(W×H), Memory: O(W×H) for the seen set and output.
//   - Labels: O(W×H).
//   - Nearest: O(|a|×|b|).
package regions
