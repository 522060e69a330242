// Package automaton turns random noise into a cave layout.
//
// A Generator seeds a grid with independent fair coin flips (Open or Wall),
// then applies Passes smoothing passes. Each pass first computes the whole
// open-neighbour overlay from the current layout and only then rewrites the
// cells, so no cell sees a value already changed in the same pass.
//
// Smoothing rule, for a cell with n open Moore neighbours before the pass:
//
//	n ∈ [0,1] → Open
//	n ∈ [2,3] → unchanged
//	n == 4    → Wall
//	n ≥ 5     → Open
//
// Randomness is per Generator. Use WithSeed or WithRand for reproducible
// layouts; without either, every Generator draws from its own time-seeded
// source.
//
// Complexity: O(Passes × W×H×8) time, O(W×H) extra memory.
package automaton
