package toboggan

import (
	"strings"

	"github.com/pkg/errors"
)

// NewGrid builds a Grid from rectangular rows of '.' and '#'.
// Surrounding blanks on each row are ignored.
// Returns ErrEmptyGrid if there are no rows or columns,
// ErrNonRectangular if any row length differs,
// ErrBadCell for any other character.
// Complexity: O(W×H) time and memory.
func NewGrid(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(strings.TrimSpace(rows[0])) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(strings.TrimSpace(rows[0]))
	trees := make([][]bool, h)
	for y, raw := range rows {
		row := strings.TrimSpace(raw)
		if len(row) != w {
			return nil, errors.Wrapf(ErrNonRectangular, "row %d has %d cells, want %d", y, len(row), w)
		}
		trees[y] = make([]bool, w)
		for x := 0; x < w; x++ {
			switch row[x] {
			case Tree:
				trees[y][x] = true
			case Open:
			default:
				return nil, errors.Wrapf(ErrBadCell, "%q at (%d,%d)", row[x], x, y)
			}
		}
	}

	return &Grid{Width: w, Height: h, trees: trees}, nil
}

// InBounds reports whether row y lies on the map. Columns are unbounded.
// Complexity: O(1).
func (g *Grid) InBounds(y int) bool {
	return y >= 0 && y < g.Height
}

// IsTree reports whether (x, y) holds a tree, wrapping x around the
// pattern width. Rows outside the map hold nothing.
// Complexity: O(1).
func (g *Grid) IsTree(x, y int) bool {
	if !g.InBounds(y) {
		return false
	}
	x %= g.Width
	if x < 0 {
		x += g.Width
	}

	return g.trees[y][x]
}

// CountTrees walks from the top-left corner along s until it passes the
// bottom row and returns the number of trees hit, start included.
// Complexity: O(H / s.Down).
func (g *Grid) CountTrees(s Slope) (int, error) {
	if s.Down <= 0 {
		return 0, ErrBadSlope
	}
	n := 0
	for x, y := 0, 0; g.InBounds(y); x, y = x+s.Right, y+s.Down {
		if g.IsTree(x, y) {
			n++
		}
	}

	return n, nil
}

// Product multiplies the tree counts of every slope.
// An empty slope list yields 1.
func (g *Grid) Product(slopes ...Slope) (int, error) {
	p := 1
	for _, s := range slopes {
		n, err := g.CountTrees(s)
		if err != nil {
			return 0, errors.Wrapf(err, "slope %+v", s)
		}
		p *= n
	}

	return p, nil
}
