package combinator

// Counter is a digit, or a group of digits, that knows when it sits on its
// last value and how to step forward. Every Counter in one odometer is
// driven with the same modulus.
type Counter interface {
	// Overflowed reports whether the next Advance would wrap.
	Overflowed(modulus int) bool

	// Advance steps the counter, wrapping to zero past modulus-1.
	Advance(modulus int)
}

// Digit is a single index with an implicit base supplied on each call.
type Digit int

// Overflowed reports d+1 >= modulus, i.e. true on the last valid value.
// Complexity: O(1).
func (d Digit) Overflowed(modulus int) bool {
	return int(d)+1 >= modulus
}

// Advance increments d, or resets it to zero when d is overflowed.
// Complexity: O(1).
func (d *Digit) Advance(modulus int) {
	if !d.Overflowed(modulus) {
		*d++

		return
	}
	*d = 0
}

// Odometer composes two Counters into one with carry. Low moves on every
// Advance; High moves only when Low has just reached its last value.
// An Odometer is itself a Counter, so ((a, b), c) is written as
// NewOdometer(NewOdometer(&a, &b), &c).
//
// Both High and Low are required: a zero Odometer panics on first use.
// NewOdometer checks this up front.
type Odometer struct {
	High Counter
	Low  Counter
}

// NewOdometer returns an Odometer carrying from low into high.
// It panics if either counter is nil.
func NewOdometer(high, low Counter) *Odometer {
	if high == nil || low == nil {
		panic("combinator: odometer needs both a high and a low counter")
	}

	return &Odometer{High: high, Low: low}
}

// Overflowed delegates to High. Low's state only decides carry.
func (o *Odometer) Overflowed(modulus int) bool {
	return o.High.Overflowed(modulus)
}

// Advance steps Low and carries into High when Low is now overflowed.
// Complexity: O(depth) where depth is the nesting level.
func (o *Odometer) Advance(modulus int) {
	o.Low.Advance(modulus)
	if o.Low.Overflowed(modulus) {
		o.High.Advance(modulus) // carry
	}
}

// compile-time interface checks
var (
	_ Counter = (*Digit)(nil)
	_ Counter = (*Odometer)(nil)
)
