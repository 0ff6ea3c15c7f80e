package integer

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/zeebo/errs"
)

// Error is the error class for this package.
var Error = errs.Class("integer")

// ErrInvalidDigit is the cause of every DigitError.
var ErrInvalidDigit = Error.New("invalid digit")

// DigitError records a character that is not a hexadecimal digit.
type DigitError struct {
	Pos  int
	Char byte
}

func (e *DigitError) Error() string {
	return fmt.Sprintf("integer: invalid digit %q at position %d", e.Char, e.Pos)
}

// Unwrap returns ErrInvalidDigit.
func (e *DigitError) Unwrap() error {
	return ErrInvalidDigit
}

// Digit returns the value of a single hexadecimal digit. Upper and lower case
// letters are accepted.
func Digit(c byte) (v uint8, ok bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}

	return 0, false
}

// Digits is the per character result of scanning a hexadecimal string.
type Digits struct {
	// Values holds the valid digits in order of appearance.
	Values []uint8

	// Invalid holds every rejected character.
	Invalid []DigitError
}

// Scan classifies every character of s. It never fails; callers decide what
// to do with Invalid.
func Scan(s string) (d Digits) {
	d.Values = make([]uint8, 0, len(s))

	for i := 0; i < len(s); i++ {
		v, ok := Digit(s[i])
		if !ok {
			d.Invalid = append(d.Invalid, DigitError{Pos: i, Char: s[i]})

			continue
		}

		d.Values = append(d.Values, v)
	}

	return d
}

// Err returns the first invalid character as a *DigitError or nil.
func (d Digits) Err() error {
	if len(d.Invalid) == 0 {
		return nil
	}

	de := d.Invalid[0]

	return &de
}

// String returns the valid digits as upper case hexadecimal.
func (d Digits) String() string {
	const hex = "0123456789ABCDEF"

	sb := &strings.Builder{}
	sb.Grow(len(d.Values))

	for _, v := range d.Values {
		sb.WriteByte(hex[v])
	}

	return sb.String()
}

// Int returns the value of the valid digits. No digits is zero.
func (d Digits) Int() *big.Int {
	i := new(big.Int)
	if len(d.Values) == 0 {
		return i
	}

	i.SetString(d.String(), 16)

	return i
}

// ParseHex parses s as an unsigned hexadecimal integer. An empty string is
// zero. Any other character is reported as a *DigitError.
func ParseHex(s string) (_ *big.Int, err error) {
	d := Scan(s)

	err = d.Err()
	if err != nil {
		return nil, err
	}

	return d.Int(), nil
}

// FormatHex returns v as upper case hexadecimal left padded with zeros to at
// least width digits.
func FormatHex(v *big.Int, width int) string {
	s := strings.ToUpper(v.Text(16))
	if len(s) < width {
		s = strings.Repeat("0", width-len(s)) + s
	}

	return s
}
