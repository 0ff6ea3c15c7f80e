// Package window stitches independently computed runs of hexadecimal digits
// into one digit stream.
package window

import (
	"fmt"
	"math/big"

	"github.com/zeebo/errs"

	"github.com/calebcase/hexpi/integer"
)

// Error is the error class for this package.
var Error = errs.Class("window")

var (
	// ErrAmbiguous is the cause of every AmbiguousError.
	ErrAmbiguous = Error.New("ambiguous digits")

	// ErrGap is the cause of every GapError.
	ErrGap = Error.New("window gap")
)

// AmbiguousError reports a window whose error bound straddles a carry into
// the digits that were asked for. A wider window at the same offset resolves
// it.
type AmbiguousError struct {
	Offset int
	Width  int
	Keep   int
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf(
		"window: ambiguous digits: offset=%d width=%d keep=%d",
		e.Offset, e.Width, e.Keep,
	)
}

// Unwrap returns ErrAmbiguous.
func (e *AmbiguousError) Unwrap() error {
	return ErrAmbiguous
}

// GapError reports a window that does not start where the stream ends.
type GapError struct {
	Want int
	Got  int
}

func (e *GapError) Error() string {
	return fmt.Sprintf("window: gap: want offset=%d got=%d", e.Want, e.Got)
}

// Unwrap returns ErrGap.
func (e *GapError) Unwrap() error {
	return ErrGap
}

// Mask returns 2^bits - 1.
func Mask(bits uint) *big.Int {
	m := new(big.Int).Lsh(big.NewInt(1), bits)

	return m.Sub(m, big.NewInt(1))
}

// Window is Width hexadecimal digits of a number starting Offset digits after
// the point.
type Window struct {
	Offset int
	Width  int

	// Guard is the number of bits held above the digits. They carry the
	// low bits of the integer part.
	Guard uint

	// Slack is the exclusive bound on the absolute error of Value in units
	// of its last bit.
	Slack int64

	Value *big.Int
}

// Bits is the total width of the window in bits.
func (w Window) Bits() uint {
	return uint(w.Width)<<2 + w.Guard
}

// Mask returns the mask covering all bits of the window.
func (w Window) Mask() *big.Int {
	return Mask(w.Bits())
}

// Integer returns the guard bits.
func (w Window) Integer() *big.Int {
	return new(big.Int).Rsh(w.Value, uint(w.Width)<<2)
}

// Fraction returns the digit bits without the guard bits.
func (w Window) Fraction() *big.Int {
	return new(big.Int).And(w.Value, Mask(uint(w.Width)<<2))
}

// Digits returns every digit of the window, trusted or not.
func (w Window) Digits() string {
	return integer.FormatHex(w.Fraction(), w.Width)
}

// Trusted returns the leading keep digits of the window as an integer. It
// fails with an *AmbiguousError when the error bound allows a carry into
// those digits.
func (w Window) Trusted(keep int) (_ *big.Int, err error) {
	if keep <= 0 || keep > w.Width {
		return nil, Error.New("invalid keep: keep=%d width=%d", keep, w.Width)
	}

	low := uint(w.Width-keep) << 2
	frac := w.Fraction()

	rest := new(big.Int).And(frac, Mask(low))
	slack := big.NewInt(w.Slack)
	limit := new(big.Int).Lsh(big.NewInt(1), low)

	// The exact value lies within rest ± slack. It must stay inside
	// [0, 2^low) or the leading digits could be off by one.
	if rest.Cmp(slack) < 0 || new(big.Int).Add(rest, slack).Cmp(limit) > 0 {
		return nil, &AmbiguousError{
			Offset: w.Offset,
			Width:  w.Width,
			Keep:   keep,
		}
	}

	return frac.Rsh(frac, low), nil
}
