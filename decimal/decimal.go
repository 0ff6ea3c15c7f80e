package decimal

import (
	"math/big"
	"strings"

	"github.com/zeebo/errs"

	"github.com/calebcase/hexpi/integer"
)

// Error is the error class for this package.
var Error = errs.Class("decimal")

var ten = big.NewInt(10)

// Block is an exact base 10 number: Value * 10^Scale.
type Block struct {
	Value *big.Int
	Scale int
}

func (b Block) unit() *big.Int {
	if b.Scale >= 0 {
		return big.NewInt(1)
	}

	return new(big.Int).Exp(ten, big.NewInt(int64(-b.Scale)), nil)
}

// Integral returns the integer part.
func (b Block) Integral() *big.Int {
	if b.Value == nil {
		return new(big.Int)
	}

	if b.Scale >= 0 {
		return new(big.Int).Mul(b.Value, b.unit())
	}

	return new(big.Int).Quo(b.Value, b.unit())
}

// Fraction returns the -Scale fractional digits, including trailing zeros.
func (b Block) Fraction() string {
	if b.Value == nil || b.Scale >= 0 {
		return ""
	}

	r := new(big.Int).Rem(b.Value, b.unit())
	s := r.String()

	return strings.Repeat("0", -b.Scale-len(s)) + s
}

// String formats the number with a decimal point when it has a fractional
// part. Trailing zeros are trimmed, keeping at least one digit after the
// point.
func (b Block) String() string {
	s := b.Integral().String()

	f := b.Fraction()
	if f == "" {
		return s
	}

	f = strings.TrimRight(f, "0")
	if f == "" {
		f = "0"
	}

	return s + "." + f
}

// MarshalText implements encoding.TextMarshaler.
func (b Block) MarshalText() (text []byte, err error) {
	return []byte(b.String()), nil
}

// fraction converts fractional hexadecimal digits to value * 10^scale.
func fraction(digits []uint8) (value *big.Int, scale int) {
	value = new(big.Int)
	if len(digits) == 0 {
		return value, 0
	}

	scale = -4 * len(digits)

	m := new(big.Int).Exp(ten, big.NewInt(int64(-scale)), nil)
	t := new(big.Int)

	for _, d := range digits {
		m.Rsh(m, 4)

		t.SetUint64(uint64(d))
		t.Mul(t, m)

		value.Add(value, t)
	}

	return value, scale
}

func build(whole *big.Int, digits []uint8) Block {
	value, scale := fraction(digits)

	if scale < 0 {
		whole = new(big.Int).Mul(whole, new(big.Int).Exp(ten, big.NewInt(int64(-scale)), nil))
	}

	return Block{
		Value: value.Add(value, whole),
		Scale: scale,
	}
}

// Convert returns the exact decimal value of the hexadecimal number
// integral.fraction. Either part may be empty.
func Convert(integral, fraction string) (_ Block, err error) {
	whole, err := integer.ParseHex(integral)
	if err != nil {
		return Block{}, err
	}

	d := integer.Scan(fraction)

	err = d.Err()
	if err != nil {
		return Block{}, err
	}

	return build(whole, d.Values), nil
}

// ConvertLenient is Convert without failures. A malformed integral part is
// zero and malformed fraction characters are skipped.
func ConvertLenient(integral, fraction string) Block {
	whole, err := integer.ParseHex(integral)
	if err != nil {
		whole = new(big.Int)
	}

	return build(whole, integer.Scan(fraction).Values)
}

func split(text string) (integral, fraction string) {
	idx := strings.IndexByte(text, '.')
	if idx < 0 {
		return text, ""
	}

	return text[:idx], text[idx+1:]
}

// ParseHex converts hexadecimal text with an optional point.
func ParseHex(text string) (_ Block, err error) {
	defer Error.WrapP(&err)

	integral, fraction := split(text)

	b, err := Convert(integral, fraction)
	if err != nil {
		return Block{}, err
	}

	return b, nil
}

// ParseHexLenient is ParseHex with ConvertLenient semantics.
func ParseHexLenient(text string) Block {
	return ConvertLenient(split(text))
}
