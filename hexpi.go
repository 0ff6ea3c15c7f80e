// Package hexpi computes hexadecimal digits of π at any offset and renders
// them as an exact decimal fraction.
package hexpi

import (
	"context"
	"strings"

	"github.com/zeebo/errs"
	"go.uber.org/zap"

	"github.com/calebcase/hexpi/bbp"
	"github.com/calebcase/hexpi/decimal"
	"github.com/calebcase/hexpi/hexfloat"
	"github.com/calebcase/hexpi/integer"
)

// Version of the hexpi tool.
const Version = "0.1.0"

// Error is the error class for this package.
var Error = errs.Class("hexpi")

// Options configures Run. Zero values select the bbp defaults.
type Options struct {
	Start   int
	Digits  int
	Width   int
	Step    int
	Workers int

	Logger *zap.Logger
}

// Result is the outcome of Run.
type Result struct {
	// Verified reports whether math.Pi survives a round trip through its
	// hexadecimal text.
	Verified bool

	// Agrees reports whether the extracted digits match the digits of
	// math.Pi. It is only checked when Start is zero.
	Agrees bool

	// Reference is the hexadecimal text of math.Pi.
	Reference string

	// Hex is the integer part, when known, followed by the digits.
	Hex string

	// Decimal is the exact decimal value of Hex and Value the number it
	// was formatted from. Both are empty when Start is not zero since the
	// digits are then not a prefix of π.
	Decimal string
	Value   decimal.Block

	Digits *bbp.Result
}

// Run extracts the digits, converts them and cross-checks them against the
// double precision value of π.
func Run(ctx context.Context, opts Options) (_ *Result, err error) {
	defer Error.WrapP(&err)

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	res := &Result{}
	res.Reference, res.Verified = hexfloat.Verify()

	log.Debug("reference", zap.String("hex", res.Reference), zap.Bool("verified", res.Verified))

	res.Digits, err = bbp.Assemble(ctx, bbp.Options{
		Start:   opts.Start,
		Digits:  opts.Digits,
		Width:   opts.Width,
		Step:    opts.Step,
		Workers: opts.Workers,
		Logger:  log,
	})
	if err != nil {
		return nil, err
	}

	res.Hex = res.Digits.Hex()

	if res.Digits.Integer == nil {
		return res, nil
	}

	res.Agrees = agrees(res.Reference, res.Digits.Hex())

	res.Value, err = decimal.Convert(integer.FormatHex(res.Digits.Integer, 1), res.Digits.Digits)
	if err != nil {
		return nil, err
	}

	res.Decimal = res.Value.String()

	return res, nil
}

// agrees compares the digits of the reference against the extracted digits.
// The last reference digit may have been rounded up and is ignored.
func agrees(reference, hex string) bool {
	reference = strings.Replace(reference, ".", "", 1)
	if len(reference) < 2 {
		return false
	}

	reference = reference[:len(reference)-1]
	if len(hex) < len(reference) {
		reference = reference[:len(hex)]
	}

	return strings.HasPrefix(hex, reference)
}
