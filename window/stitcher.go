package window

import (
	"math/big"

	"github.com/calebcase/hexpi/integer"
)

// Stitcher appends the trusted leading digits of consecutive windows.
//
// Two accumulators are kept: the value (integer bits followed by every
// digit) and the fraction (digits only).
type Stitcher struct {
	keep int
	next int

	integer  *big.Int
	value    *big.Int
	fraction *big.Int
	digits   int
}

// NewStitcher returns a stitcher expecting the first window at offset start
// that keeps the leading keep digits of every window.
func NewStitcher(start, keep int) *Stitcher {
	return &Stitcher{
		keep:     keep,
		next:     start,
		value:    new(big.Int),
		fraction: new(big.Int),
	}
}

// Next is the offset the next window must start at.
func (s *Stitcher) Next() int {
	return s.next
}

// Len is the number of digits stitched so far.
func (s *Stitcher) Len() int {
	return s.digits
}

// Push appends the trusted digits of w. On error the stitcher is unchanged.
func (s *Stitcher) Push(w Window) (err error) {
	if w.Offset != s.next {
		return &GapError{Want: s.next, Got: w.Offset}
	}

	d, err := w.Trusted(s.keep)
	if err != nil {
		return err
	}

	if s.digits == 0 && w.Guard > 0 {
		s.integer = w.Integer()
		s.value.Set(s.integer)
	}

	shift := uint(s.keep) << 2

	s.value.Lsh(s.value, shift)
	s.value.Or(s.value, d)

	s.fraction.Lsh(s.fraction, shift)
	s.fraction.Or(s.fraction, d)

	s.digits += s.keep
	s.next += s.keep

	return nil
}

// Truncate drops stitched digits beyond the first n.
func (s *Stitcher) Truncate(n int) {
	if n < 0 || n >= s.digits {
		return
	}

	shift := uint(s.digits-n) << 2

	s.value.Rsh(s.value, shift)
	s.fraction.Rsh(s.fraction, shift)
	s.digits = n
}

// Integer returns the integer bits carried by the first window, if it had
// any.
func (s *Stitcher) Integer() (_ *big.Int, ok bool) {
	if s.integer == nil {
		return nil, false
	}

	return new(big.Int).Set(s.integer), true
}

// Value returns the integer bits followed by every stitched digit.
func (s *Stitcher) Value() *big.Int {
	return new(big.Int).Set(s.value)
}

// Fraction returns the stitched digits without the integer bits.
func (s *Stitcher) Fraction() *big.Int {
	return new(big.Int).Set(s.fraction)
}

// Digits returns the stitched digits in upper case hexadecimal.
func (s *Stitcher) Digits() string {
	if s.digits == 0 {
		return ""
	}

	return integer.FormatHex(s.fraction, s.digits)
}
