// Package garden treats a 2D grid of plant labels as a set of fenced regions.
// A Garden is immutable once built; all analysis happens in a single pass over
// the validated grid.
package garden

import (
	"strings"
)

// Garden is an immutable rectangular grid of plant labels.
// Width and Height define dimensions; plots[y][x] holds the label at (x, y).
type Garden struct {
	Width, Height int
	plots         [][]byte
}

// New constructs a Garden from a non-empty, rectangular 2D byte slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGarden if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func New(rows [][]byte) (*Garden, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGarden
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	plots := make([][]byte, h)
	for y := 0; y < h; y++ {
		plots[y] = make([]byte, w)
		copy(plots[y], rows[y])
	}

	return &Garden{Width: w, Height: h, plots: plots}, nil
}

// FromLines builds a Garden from one string per row, one label per cell.
func FromLines(lines []string) (*Garden, error) {
	rows := make([][]byte, len(lines))
	for i, line := range lines {
		rows[i] = []byte(line)
	}

	return New(rows)
}

// FromString builds a Garden from newline-separated rows. Trailing carriage
// returns are stripped and blank lines skipped, so raw file contents can be
// passed directly.
func FromString(input string) (*Garden, error) {
	var lines []string
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimRight(line, "\r")
		if len(line) == 0 {
			continue
		}
		lines = append(lines, line)
	}

	return FromLines(lines)
}

// InBounds reports whether (x, y) lies within the garden boundaries.
// Complexity: O(1).
func (g *Garden) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the plant label at (x, y). The coordinate must be in bounds;
// violating that is a programming error and panics via the slice access.
func (g *Garden) At(x, y int) byte {
	return g.plots[y][x]
}

// index maps (x, y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Garden) index(x, y int) int {
	return y*g.Width + x
}
