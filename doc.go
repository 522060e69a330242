// Package necromap generates 2-D cave levels for roguelike games and
// analyses their connectivity.
//
// A map is produced in two stages:
//
//	automaton/ — random fill, then two cellular-automaton smoothing passes
//	regions/   — 4-connected flood fill of open cells into labelled regions
//
// Supporting packages:
//
//	coord/   — (row, col) value type, Manhattan distance, cardinal offsets
//	grid/    — wall/open cell store, bounds checks, Moore neighbour counts
//	cavemap/ — Generate entry point, derived overlays, label text export
//	store/   — SQLite archive of generated maps
//
// Quick example:
//
//	m, err := cavemap.Generate(24, 48, cavemap.WithSeed(2019))
//	if err != nil { ... }
//	fmt.Println(m)           // [24 by 48] with N spaces
//	fmt.Print(m.LabelText()) // one row per line, "A".."Z", "AA", ...
//
// The command in cmd/necromap wraps this for the terminal.
package necromap
