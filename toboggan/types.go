// Package toboggan defines the map types, slopes, and sentinel errors
// used to count trees on a toboggan run.
package toboggan

import (
	"github.com/pkg/errors"
)

// Sentinel errors for grid construction and traversal.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("toboggan: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("toboggan: all rows must have the same length")
	// ErrBadCell indicates a character other than '.' or '#'.
	ErrBadCell = errors.New("toboggan: cell must be '.' or '#'")
	// ErrBadSlope indicates a slope that never moves down.
	ErrBadSlope = errors.New("toboggan: slope must move down at least one row")
)

// Cell symbols.
const (
	Open = '.'
	Tree = '#'
)

// Slope is a step of Right columns and Down rows.
type Slope struct {
	Right, Down int
}

// DefaultSlope is the first-part route: right 3, down 1.
var DefaultSlope = Slope{Right: 3, Down: 1}

// SurveySlopes are the five routes whose tree counts are multiplied
// in the second part.
var SurveySlopes = []Slope{
	{Right: 1, Down: 1},
	{Right: 3, Down: 1},
	{Right: 5, Down: 1},
	{Right: 7, Down: 1},
	{Right: 1, Down: 2},
}

// Grid is an immutable tree map. The pattern repeats infinitely to the
// right, so column indices are taken modulo Width.
// trees[y][x] is true where the input held '#'.
type Grid struct {
	Width, Height int
	trees         [][]bool
}
