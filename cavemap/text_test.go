package cavemap_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/necromap/cavemap"
)

// TestLabelText_Format pins the text format of a small overlay.
func TestLabelText_Format(t *testing.T) {
	m := mustMap(t, "#..#\n..##\n##..\n")

	want := "  A A  \n" +
		"A A    \n" +
		"    B B\n"
	assert.Equal(t, want, m.LabelText())

	var buf bytes.Buffer
	require.NoError(t, m.WriteLabels(&buf))
	assert.Equal(t, want, buf.String())
}

// TestParseLabels_RoundTrip parses the export of generated maps, including
// one with more than 26 regions.
func TestParseLabels_RoundTrip(t *testing.T) {
	m := mustMap(t, ".#.#.#.#.#.#.#\n#.#.#.#.#.#.#.\n.#.#.#.#.#.#.#\n#.#.#.#.#.#.#.\n")
	require.Greater(t, len(m.Regions()), 26)

	got, err := cavemap.ParseLabels(m.LabelText())
	require.NoError(t, err)
	if diff := cmp.Diff(m.Labels(), got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	for seed := int64(1); seed <= 4; seed++ {
		g, err := cavemap.Generate(24, 48, cavemap.WithSeed(seed))
		require.NoError(t, err)
		got, err := cavemap.ParseLabels(g.LabelText())
		require.NoError(t, err)
		assert.Equal(t, g.Labels(), got)
	}
}

func TestParseLabels_Errors(t *testing.T) {
	cases := map[string]string{
		"Empty":          "",
		"Lowercase":      "a b\n",
		"Tab":            "A\tB\n",
		"Ragged":         "A B\nA\n",
		"TrailingSep":    "A \n",
		"ForeignRune":    "A # B\n",
		"EmptyInnerLine": "A\n\nA\n",
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := cavemap.ParseLabels(text)
			assert.True(t, errors.Is(err, cavemap.ErrMalformedLabels), "got %v", err)
		})
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteLabels_Error(t *testing.T) {
	m := mustMap(t, "..\n")
	assert.Error(t, m.WriteLabels(failWriter{}))
}
