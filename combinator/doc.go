// Package combinator enumerates ordered pairs and triples of elements drawn,
// with repetition, from a fixed slice.
//
// 🚀 What is it?
//
//	An enumerator owns a private copy of its input and a small odometer of
//	index digits. Every call to Next reads the elements under the current
//	digits and then advances the odometer. All digits share one base: the
//	length of the input. The odometer never stops; after len^arity steps
//	it is back at its initial state and the whole cycle repeats.
//
// ✨ Building blocks:
//   - Counter   — anything that can report overflow and advance itself
//   - Digit     — a single index in [0, modulus)
//   - Odometer  — a (High, Low) pair of Counters with carry; nests freely
//   - Pairs     — arity 2 enumerator, state (a, b)
//   - Triples   — arity 3 enumerator, state ((a, b), c)
//
// Carry rule:
//
//	Advance always moves Low. If Low is now at its last valid value
//	(Overflowed reports true on modulus-1), High advances too. For a
//	3-element input the pair states are visited in the order
//
//	  (0,0) (0,1) (1,2) (1,0) (1,1) (2,2) (2,0) (2,1) (0,2) → (0,0) …
//
//	so each ordered pair appears exactly once per cycle.
//
// ⚙️ Usage:
//
//	pairs := combinator.NewPairs([]int{1721, 979, 366, 299, 675, 1456})
//	hit := combinator.Find(pairs, func(p combinator.Pair[int]) bool {
//		return p.A+p.B == 2020
//	})
//	if hit.Ok {
//		fmt.Println(hit.Value.A * hit.Value.B)
//	}
//
// Termination is the caller's job. Find and Sum stop after one Period;
// ranging over Seq needs an explicit break or a Take bound. An empty input
// is the only case where an enumerator reports no more values.
//
// Enumerators are not safe for concurrent use.
package combinator
