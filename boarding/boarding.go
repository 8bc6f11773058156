// Package boarding decodes binary-space-partitioned boarding passes.
//
// A pass is ten letters: seven of F/B choose one of 128 rows, three of
// L/R choose one of 8 columns. Each letter halves the remaining range,
// F and L keeping the lower half, B and R the upper half, which makes the
// pass a plain binary number with F/L as 0 and B/R as 1.
package boarding

import (
	"slices"

	"github.com/pkg/errors"
)

// Plane layout.
const (
	Rows    = 128
	Columns = 8

	rowBits = 7
	colBits = 3
)

var (
	// ErrBadPass is returned for passes of the wrong length or alphabet.
	ErrBadPass = errors.New("boarding: malformed pass")
	// ErrNoVacancy is returned when no free seat sits between taken ones.
	ErrNoVacancy = errors.New("boarding: no vacant seat")
)

// Seat is a decoded seat position.
type Seat struct {
	Row, Col int
}

// ID returns Row*8 + Col.
func (s Seat) ID() int { return s.Row*Columns + s.Col }

// Decode turns a pass such as "FBFBBFFRLR" into its seat (row 44, col 5).
func Decode(pass string) (Seat, error) {
	if len(pass) != rowBits+colBits {
		return Seat{}, errors.Wrapf(ErrBadPass, "%q has %d letters", pass, len(pass))
	}
	row, err := bits(pass[:rowBits], 'F', 'B')
	if err != nil {
		return Seat{}, errors.Wrapf(err, "row of %q", pass)
	}
	col, err := bits(pass[rowBits:], 'L', 'R')
	if err != nil {
		return Seat{}, errors.Wrapf(err, "column of %q", pass)
	}

	return Seat{Row: row, Col: col}, nil
}

// bits reads s as a binary number written with lo for 0 and hi for 1.
func bits(s string, lo, hi byte) (int, error) {
	n := 0
	for i := 0; i < len(s); i++ {
		n <<= 1
		switch s[i] {
		case hi:
			n |= 1
		case lo:
		default:
			return 0, errors.Wrapf(ErrBadPass, "unexpected %q", s[i])
		}
	}

	return n, nil
}

// Parse decodes a pass; it matches the input.Split parse signature.
func Parse(pass string) (Seat, error) {
	return Decode(pass)
}

// MaxID returns the highest seat ID, or -1 for no seats.
func MaxID(seats []Seat) int {
	best := -1
	for _, s := range seats {
		best = max(best, s.ID())
	}

	return best
}

// FindVacant returns the first free seat ID after the lowest taken one,
// skipping the missing seats at the very front of the plane.
func FindVacant(seats []Seat) (int, error) {
	ids := make([]int, 0, len(seats))
	for _, s := range seats {
		ids = append(ids, s.ID())
	}
	slices.Sort(ids)
	ids = slices.Compact(ids)
	for i := 1; i < len(ids); i++ {
		if ids[i] != ids[i-1]+1 {
			return ids[i-1] + 1, nil
		}
	}

	return 0, ErrNoVacancy
}
