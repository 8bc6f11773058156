// Package expense fixes an expense report by finding entries that add up to
// a target year and multiplying them together.
//
// Entries are combined with repetition, in combinator order, so an entry
// may be paired with itself.
package expense

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/adventofcode/combinator"
)

// Year is the sum the puzzle asks for.
const Year = 2020

// ErrNoMatch is returned when no combination reaches the target.
var ErrNoMatch = errors.New("expense: no entries sum to target")

// PairProduct returns a*b for the first pair with a+b == target.
func PairProduct[N constraints.Integer](entries []N, target N) (N, error) {
	hit := combinator.Find(combinator.NewPairs(entries), func(p combinator.Pair[N]) bool {
		return p.A+p.B == target
	})
	if !hit.Ok {
		return 0, errors.Wrapf(ErrNoMatch, "pair summing to %d", target)
	}

	return hit.Value.A * hit.Value.B, nil
}

// TripleProduct returns a*b*c for the first triple with a+b+c == target.
func TripleProduct[N constraints.Integer](entries []N, target N) (N, error) {
	hit := combinator.Find(combinator.NewTriples(entries), func(t combinator.Triple[N]) bool {
		return t.A+t.B+t.C == target
	})
	if !hit.Ok {
		return 0, errors.Wrapf(ErrNoMatch, "triple summing to %d", target)
	}

	return hit.Value.A * hit.Value.B * hit.Value.C, nil
}
