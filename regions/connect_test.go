package regions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/necromap/coord"
	"github.com/katalvlaran/necromap/regions"
)

// TestNearest finds the closest pair across two regions.
func TestNearest(t *testing.T) {
	a := regions.Region{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}}
	b := regions.Region{{Row: 4, Col: 4}, {Row: 1, Col: 3}, {Row: 3, Col: 1}}

	from, to, d, ok := regions.Nearest(a, b)
	assert.True(t, ok)
	assert.Equal(t, coord.New(1, 1), from)
	assert.Equal(t, coord.New(1, 3), to)
	assert.Equal(t, 2, d)

	_, _, _, ok = regions.Nearest(a, nil)
	assert.False(t, ok)
}

// TestConnect_NoOp: the connector reports "not connected" and leaves the
// layout and the partition untouched.
func TestConnect_NoOp(t *testing.T) {
	g := mustLayout(t, ".#.\n.#.\n")
	before := g.Clone()
	rs := regions.Find(g)

	assert.False(t, regions.Connect(g, rs))
	assert.True(t, g.Equal(before))
	assert.Len(t, regions.Find(g), 2)
}
