package combinator

import (
	"iter"

	g "github.com/anacrolix/generics"
	"golang.org/x/exp/constraints"
)

// Enumerator is the pull interface shared by Pairs and Triples.
type Enumerator[V any] interface {
	// Next returns the next value, or false when there is none.
	Next() (V, bool)

	// Period is the number of Next calls after which values repeat.
	Period() int
}

var (
	_ Enumerator[Pair[int]]   = (*Pairs[int])(nil)
	_ Enumerator[Triple[int]] = (*Triples[int])(nil)
)

// Seq adapts e to a range-over-func sequence. Values are pulled from e
// only as the loop asks for them, continuing from e's current state.
// The sequence is infinite for a non-empty input: break out of the loop
// or bound it with Take.
func Seq[V any](e Enumerator[V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for {
			v, ok := e.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Take yields at most n values of seq.
func Take[V any](seq iter.Seq[V], n int) iter.Seq[V] {
	return func(yield func(V) bool) {
		if n <= 0 {
			return
		}
		i := 0
		for v := range seq {
			if !yield(v) {
				return
			}
			i++
			if i >= n {
				return
			}
		}
	}
}

// Find returns the first value satisfying pred within one Period of e,
// starting from e's current state. e is left just past the match, or a
// full cycle later (back where it started) when nothing matched.
// Complexity: O(Period) calls to pred.
func Find[V any](e Enumerator[V], pred func(V) bool) g.Option[V] {
	for v := range Take(Seq(e), e.Period()) {
		if pred(v) {
			return g.Some(v)
		}
	}

	return g.None[V]()
}

// Sum folds f over exactly one Period of e. Starting from a fresh
// enumerator that is every combination once.
// Complexity: O(Period).
func Sum[V any, N constraints.Integer](e Enumerator[V], f func(V) N) N {
	var total N
	for v := range Take(Seq(e), e.Period()) {
		total += f(v)
	}

	return total
}
