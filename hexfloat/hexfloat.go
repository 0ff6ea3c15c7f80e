// Package hexfloat converts between float64 values and hexadecimal text with
// a fractional part.
//
// This is plain fixed precision formatting used to cross-check extracted
// digits against the double precision value of π.
package hexfloat

import (
	"math"
	"strconv"
	"strings"

	"github.com/zeebo/errs"

	"github.com/calebcase/hexpi/integer"
)

// Error is the error class for this package.
var Error = errs.Class("hexfloat")

// Format returns every hexadecimal digit of d. A float64 always has a finite
// hexadecimal expansion, so the result is exact.
func Format(d float64) (_ string, err error) {
	switch {
	case math.IsNaN(d), math.IsInf(d, 0):
		return "", Error.New("not finite: %v", d)
	case d < 0:
		return "", Error.New("negative: %v", d)
	case d >= 1<<63:
		return "", Error.New("too large: %v", d)
	}

	t := math.Trunc(d)
	r := d - t

	sb := &strings.Builder{}
	sb.WriteString(strings.ToUpper(strconv.FormatUint(uint64(t), 16)))

	if r != 0 {
		sb.WriteByte('.')
	}

	for r != 0 {
		r *= 16

		b := math.Trunc(r)
		sb.WriteString(strings.ToUpper(strconv.FormatUint(uint64(b), 16)))

		r -= b
	}

	return sb.String(), nil
}

// Parse reads hexadecimal text with an optional point. Digits past the
// precision of a float64 are rounded away.
func Parse(text string) (d float64, err error) {
	defer Error.WrapP(&err)

	integral, fraction := text, ""
	if idx := strings.IndexByte(text, '.'); idx >= 0 {
		integral, fraction = text[:idx], text[idx+1:]
	}

	whole, err := integer.ParseHex(integral)
	if err != nil {
		return 0, err
	}

	if !whole.IsUint64() {
		return 0, Error.New("too large: %s", integral)
	}

	for i := 0; i < len(fraction); i++ {
		v, ok := integer.Digit(fraction[i])
		if !ok {
			return 0, &integer.DigitError{Pos: i, Char: fraction[i]}
		}

		d += float64(v) * math.Pow(1.0/16, float64(i+1))
	}

	return d + float64(whole.Uint64()), nil
}

// Verify formats math.Pi and reports whether parsing the text gives back the
// same float64.
func Verify() (text string, ok bool) {
	text, err := Format(math.Pi)
	if err != nil {
		return "", false
	}

	d, err := Parse(text)
	if err != nil {
		return text, false
	}

	return text, d == math.Pi
}
