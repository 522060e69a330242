package automaton

import (
	"fmt"

	"github.com/katalvlaran/necromap/coord"
	"github.com/katalvlaran/necromap/grid"
)

// Passes is the fixed number of smoothing passes a generated map receives.
const Passes = 2

// Generator owns one random source and the neighbour-counting settings.
// A Generator is not safe for concurrent use.
type Generator struct {
	cfg config
}

// New returns a Generator configured by opts.
func New(opts ...Option) *Generator {
	return &Generator{cfg: newConfig(opts...)}
}

// Seed returns a height×width grid whose cells are independently Open or
// Wall with probability 1/2 each. Returns grid.ErrInvalidDimensions for
// non-positive sizes.
// Complexity: O(W×H).
func (gen *Generator) Seed(height, width int) (*grid.Grid, error) {
	g, err := grid.New(height, width)
	if err != nil {
		return nil, fmt.Errorf("Seed: %w", err)
	}
	g.Update(func(coord.Coord, grid.Cell) grid.Cell {
		if gen.cfg.rng.Intn(2) == 0 {
			return grid.Open
		}
		return grid.Wall
	})

	return g, nil
}

// Rule returns the next state of a cell with n open neighbours.
func Rule(current grid.Cell, n int) grid.Cell {
	switch {
	case n <= 1:
		return grid.Open
	case n <= 3:
		return current
	case n == 4:
		return grid.Wall
	default:
		return grid.Open
	}
}

// Step applies one smoothing pass to g in place and returns the overlay the
// pass was computed from.
func (gen *Generator) Step(g *grid.Grid) ([][]int, error) {
	counts, err := gen.counts(g)
	if err != nil {
		return nil, fmt.Errorf("Step: %w", err)
	}
	g.Update(func(c coord.Coord, v grid.Cell) grid.Cell {
		return Rule(v, counts[c.Row][c.Col])
	})
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("Step: %w", err)
	}

	return counts, nil
}

// Smooth runs Passes steps over g and returns the neighbour overlay of the
// final layout.
func (gen *Generator) Smooth(g *grid.Grid) ([][]int, error) {
	for i := 0; i < Passes; i++ {
		if _, err := gen.Step(g); err != nil {
			return nil, fmt.Errorf("Smooth: pass %d: %w", i+1, err)
		}
	}
	return gen.counts(g)
}

// Generate seeds a height×width grid and smooths it. It returns the final
// layout and its neighbour overlay.
func (gen *Generator) Generate(height, width int) (*grid.Grid, [][]int, error) {
	g, err := gen.Seed(height, width)
	if err != nil {
		return nil, nil, err
	}
	counts, err := gen.Smooth(g)
	if err != nil {
		return nil, nil, err
	}

	return g, counts, nil
}

func (gen *Generator) counts(g *grid.Grid) ([][]int, error) {
	if gen.cfg.workers > 1 {
		return grid.NeighborCountsParallel(g, gen.cfg.workers)
	}
	return grid.NeighborCounts(g), nil
}
