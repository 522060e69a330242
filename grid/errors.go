// SPDX-License-Identifier: MIT
// Package: necromap/grid
//
// errors.go — sentinel errors for the grid package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers use errors.Is.
//   • Call sites attach context with %w, never by redefining the sentinel.
//   • ErrOutOfBounds is an expected, recoverable result of coordinate
//     lookups. The others reject structurally invalid input.

package grid

import "errors"

// ErrInvalidDimensions indicates a non-positive height or width.
var ErrInvalidDimensions = errors.New("grid: height and width must be positive")

// ErrOutOfBounds indicates a coordinate outside [0,height)×[0,width).
var ErrOutOfBounds = errors.New("grid: coordinate out of range")

// ErrNonRectangular indicates the cell store lost its height×width shape.
var ErrNonRectangular = errors.New("grid: all rows must have exactly width cells")

// ErrBadLayout indicates layout text with a rune that is neither wall nor open.
var ErrBadLayout = errors.New("grid: unknown cell in layout text")
