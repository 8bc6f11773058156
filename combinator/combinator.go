package combinator

import (
	"math"
	"slices"
)

// Pair is one value produced by Pairs.
type Pair[T any] struct {
	A, B T
}

// Triple is one value produced by Triples.
type Triple[T any] struct {
	A, B, C T
}

// Pairs enumerates ordered pairs of elements with repetition.
// The zero value is an enumerator over an empty input.
type Pairs[T any] struct {
	data []T
	a, b Digit
	odo  *Odometer // (a, b)
}

// NewPairs returns a Pairs enumerator positioned at (0, 0).
// data is copied; later changes to the caller's slice are not observed.
func NewPairs[T any](data []T) *Pairs[T] {
	p := &Pairs[T]{data: slices.Clone(data)}
	p.odo = NewOdometer(&p.a, &p.b)

	return p
}

// Next returns the pair under the current indices and advances them.
// It reports false only when the input is empty.
// Complexity: O(1).
func (p *Pairs[T]) Next() (Pair[T], bool) {
	n := len(p.data)
	if n == 0 {
		return Pair[T]{}, false
	}
	out := Pair[T]{A: p.data[p.a], B: p.data[p.b]}
	p.odo.Advance(n)

	return out, true
}

// Indices returns the positions the next call to Next will read.
func (p *Pairs[T]) Indices() (a, b int) {
	return int(p.a), int(p.b)
}

// Len returns the number of elements being combined.
func (p *Pairs[T]) Len() int { return len(p.data) }

// Period returns len², the number of steps before the state repeats,
// saturated at math.MaxInt.
func (p *Pairs[T]) Period() int {
	return power(len(p.data), 2)
}

// Triples enumerates ordered triples of elements with repetition.
// The zero value is an enumerator over an empty input.
type Triples[T any] struct {
	data    []T
	a, b, c Digit
	odo     *Odometer // ((a, b), c)
}

// NewTriples returns a Triples enumerator positioned at ((0, 0), 0).
// data is copied; later changes to the caller's slice are not observed.
func NewTriples[T any](data []T) *Triples[T] {
	t := &Triples[T]{data: slices.Clone(data)}
	t.odo = NewOdometer(NewOdometer(&t.a, &t.b), &t.c)

	return t
}

// Next returns the triple under the current indices and advances them,
// carrying from c into the nested (a, b) pair.
// It reports false only when the input is empty.
// Complexity: O(1).
func (t *Triples[T]) Next() (Triple[T], bool) {
	n := len(t.data)
	if n == 0 {
		return Triple[T]{}, false
	}
	out := Triple[T]{A: t.data[t.a], B: t.data[t.b], C: t.data[t.c]}
	t.odo.Advance(n)

	return out, true
}

// Indices returns the positions the next call to Next will read.
func (t *Triples[T]) Indices() (a, b, c int) {
	return int(t.a), int(t.b), int(t.c)
}

// Len returns the number of elements being combined.
func (t *Triples[T]) Len() int { return len(t.data) }

// Period returns len³, the number of steps before the state repeats,
// saturated at math.MaxInt.
func (t *Triples[T]) Period() int {
	return power(len(t.data), 3)
}

// power returns n^k for n >= 0, or math.MaxInt once the product no
// longer fits.
func power(n, k int) int {
	out := 1
	for range k {
		if n != 0 && out > math.MaxInt/n {
			return math.MaxInt
		}
		out *= n
	}

	return out
}
