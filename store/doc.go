// Package store archives generated cave maps in a SQLite database.
//
// Each row keeps the layout text (grid.MarshalText), the label overlay text
// (cavemap.Map.LabelText), the dimensions, the optional seed and a few
// counts for listing. Loading rebuilds the map from the layout and checks
// the stored labels against the recomputed ones.
//
// The schema is managed by golang-migrate with migrations embedded in the
// binary.
package store
