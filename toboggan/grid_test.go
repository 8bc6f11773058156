package toboggan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/adventofcode/toboggan"
)

var sample = []string{
	"..##.......",
	"#...#...#..",
	".#....#..#.",
	"..#.#...#.#",
	".#...##..#.",
	"..#.##.....",
	".#.#.#....#",
	".#........#",
	"#.##...#...",
	"#...##....#",
	".#..#...#.#",
}

//----------------------------------------------------------------------------//
// NewGrid
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that NewGrid rejects empty, ragged, or
// unknown-cell inputs.
func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		err  error
	}{
		{"NoRows", nil, toboggan.ErrEmptyGrid},
		{"EmptyRow", []string{""}, toboggan.ErrEmptyGrid},
		{"NonRectangular", []string{"..#", ".#"}, toboggan.ErrNonRectangular},
		{"BadCell", []string{"..#", ".x."}, toboggan.ErrBadCell},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := toboggan.NewGrid(tc.rows)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestNewGrid_Dimensions(t *testing.T) {
	g, err := toboggan.NewGrid(sample)
	require.NoError(t, err)
	assert.Equal(t, 11, g.Width)
	assert.Equal(t, 11, g.Height)
}

// TestIsTree_Wraps checks that columns repeat to the right and left.
func TestIsTree_Wraps(t *testing.T) {
	g, err := toboggan.NewGrid([]string{"#..", ".#."})
	require.NoError(t, err)

	assert.True(t, g.IsTree(0, 0))
	assert.True(t, g.IsTree(3, 0))
	assert.True(t, g.IsTree(-3, 0))
	assert.False(t, g.IsTree(2, 0))
	assert.True(t, g.IsTree(4, 1))
	assert.False(t, g.IsTree(0, 2), "rows past the bottom are empty")
	assert.False(t, g.IsTree(0, -1))
}

//----------------------------------------------------------------------------//
// CountTrees and Product
//----------------------------------------------------------------------------//

func TestCountTrees(t *testing.T) {
	g, err := toboggan.NewGrid(sample)
	require.NoError(t, err)

	want := []int{2, 7, 3, 4, 2}
	for i, s := range toboggan.SurveySlopes {
		n, err := g.CountTrees(s)
		require.NoError(t, err)
		assert.Equal(t, want[i], n, "slope %+v", s)
	}
}

func TestCountTrees_BadSlope(t *testing.T) {
	g, err := toboggan.NewGrid(sample)
	require.NoError(t, err)

	_, err = g.CountTrees(toboggan.Slope{Right: 1, Down: 0})
	assert.ErrorIs(t, err, toboggan.ErrBadSlope)

	_, err = g.Product(toboggan.Slope{Right: 1, Down: 1}, toboggan.Slope{Right: 1, Down: -1})
	assert.ErrorIs(t, err, toboggan.ErrBadSlope)
}

func TestProduct(t *testing.T) {
	g, err := toboggan.NewGrid(sample)
	require.NoError(t, err)

	n, err := g.CountTrees(toboggan.DefaultSlope)
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	p, err := g.Product(toboggan.SurveySlopes...)
	require.NoError(t, err)
	assert.Equal(t, 336, p)

	one, err := g.Product()
	require.NoError(t, err)
	assert.Equal(t, 1, one)
}

// TestErrorContext verifies that wrapped errors keep both the sentinel and
// the location that caused them.
func TestErrorContext(t *testing.T) {
	_, err := toboggan.NewGrid([]string{"..#", ".#"})
	require.ErrorIs(t, err, toboggan.ErrNonRectangular)
	assert.EqualError(t, err, "row 1 has 2 cells, want 3: "+toboggan.ErrNonRectangular.Error())

	_, err = toboggan.NewGrid([]string{"..#", ".x."})
	require.ErrorIs(t, err, toboggan.ErrBadCell)
	assert.EqualError(t, err, `'x' at (1,1): `+toboggan.ErrBadCell.Error())

	g, err := toboggan.NewGrid(sample)
	require.NoError(t, err)
	_, err = g.Product(toboggan.Slope{Right: 2, Down: 0})
	require.ErrorIs(t, err, toboggan.ErrBadSlope)
	assert.EqualError(t, err, "slope {Right:2 Down:0}: "+toboggan.ErrBadSlope.Error())
}
