package cavemap

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/necromap/regions"
)

// labelSep separates cells within a row of label text.
const labelSep = " "

// LabelText renders the label overlay: one row per line, cells separated by
// a single space, walls as regions.Blank. Every line ends with '\n'.
func (m *Map) LabelText() string {
	var b strings.Builder
	_ = m.WriteLabels(&b)
	return b.String()
}

// WriteLabels writes LabelText to w.
func (m *Map) WriteLabels(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, row := range m.labels {
		if _, err := bw.WriteString(strings.Join(row, labelSep)); err != nil {
			return fmt.Errorf("WriteLabels: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("WriteLabels: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("WriteLabels: %w", err)
	}
	return nil
}

// ParseLabels reads text in the LabelText format back into an overlay.
// A cell is either regions.Blank or a run of 'A'..'Z'; cells are separated
// by exactly one space. All rows must hold the same number of cells.
func ParseLabels(text string) ([][]string, error) {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	out := make([][]string, 0, len(lines))
	for r, line := range lines {
		row, err := parseLabelRow(line)
		if err != nil {
			return nil, fmt.Errorf("ParseLabels: line %d: %w", r+1, err)
		}
		if len(out) > 0 && len(row) != len(out[0]) {
			return nil, fmt.Errorf("ParseLabels: line %d has %d cells, want %d: %w",
				r+1, len(row), len(out[0]), ErrMalformedLabels)
		}
		out = append(out, row)
	}
	return out, nil
}

func parseLabelRow(line string) ([]string, error) {
	if line == "" {
		return nil, fmt.Errorf("empty row: %w", ErrMalformedLabels)
	}
	var row []string
	i := 0
	for {
		// One cell: a blank or a run of upper-case letters.
		if line[i] == ' ' {
			row = append(row, regions.Blank)
			i++
		} else {
			j := i
			for j < len(line) && line[j] >= 'A' && line[j] <= 'Z' {
				j++
			}
			if j == i {
				return nil, fmt.Errorf("byte %q at %d: %w", line[i], i, ErrMalformedLabels)
			}
			row = append(row, line[i:j])
			i = j
		}
		if i == len(line) {
			return row, nil
		}
		// Separator, then another cell must follow.
		if line[i] != ' ' || i+1 == len(line) {
			return nil, fmt.Errorf("bad separator at %d: %w", i, ErrMalformedLabels)
		}
		i++
	}
}
