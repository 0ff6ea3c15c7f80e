package bbp

import (
	"context"
	"errors"
	"math/big"
	"runtime"
	"time"

	"github.com/calebcase/oops"
	"github.com/zeebo/errs"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/calebcase/hexpi/integer"
	"github.com/calebcase/hexpi/series"
	"github.com/calebcase/hexpi/window"
)

// Error is the error class for this package.
var Error = errs.Class("bbp")

// Defaults reproduce overlapping 8 digit windows, 4 digits apart.
const (
	DefaultWidth = 8
	DefaultStep  = 4
	DefaultWiden = 8
)

// NoWiden disables recomputing ambiguous windows.
const NoWiden = -1

// Options configures Assemble.
type Options struct {
	// Start is the offset of the first digit.
	Start int

	// Digits is the number of digits to produce.
	Digits int

	// Width is the minimum number of digits computed per window and Step
	// the number of leading digits kept from each. Step must be less than
	// Width; the remaining digits absorb the error of the window. Windows
	// far enough out that the error bound outgrows the discarded digits
	// start at a multiple of Width instead.
	Width int
	Step  int

	// Widen is the number of times an ambiguous window is recomputed
	// with Width more digits before giving up. Zero selects DefaultWiden
	// and NoWiden (or any negative value) fails on the first ambiguous
	// window.
	Widen int

	// Workers bounds the number of windows computed concurrently.
	Workers int

	Logger *zap.Logger
}

func (o *Options) normalize() (err error) {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}

	if o.Step == 0 {
		o.Step = DefaultStep
	}

	switch {
	case o.Widen == 0:
		o.Widen = DefaultWiden
	case o.Widen < 0:
		o.Widen = 0
	}

	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}

	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}

	switch {
	case o.Start < 0:
		return Error.New("invalid start: %d", o.Start)
	case o.Digits <= 0:
		return Error.New("invalid digits: %d", o.Digits)
	case o.Width < 0, o.Step < 0:
		return Error.New("invalid window: width=%d step=%d", o.Width, o.Step)
	case o.Step >= o.Width:
		return Error.New("step must be less than width: width=%d step=%d", o.Width, o.Step)
	}

	return nil
}

// widthAt returns the smallest multiple of width whose discarded digits
// hold more than twice the error bound at offset.
func widthAt(offset, width, step int) int {
	w := width
	for {
		low := uint(w-step) << 2
		if low >= 62 || int64(1)<<low > 2*4*series.Bound(offset, w) {
			return w
		}

		w += width
	}
}

// extract computes the window at offset, widening it until its leading step
// digits are certain.
func extract(ctx context.Context, offset int, opts *Options, log *zap.Logger) (w window.Window, err error) {
	width := widthAt(offset, opts.Width, opts.Step)

	for attempt := 0; ; attempt++ {
		start := time.Now()
		w = Compute(offset, width)

		log.Debug("window computed",
			zap.Int("offset", offset),
			zap.Int("width", width),
			zap.Duration("elapsed", time.Since(start)),
		)

		_, err = w.Trusted(opts.Step)
		if err == nil {
			return w, nil
		}

		if !errors.Is(err, window.ErrAmbiguous) || attempt >= opts.Widen {
			return w, err
		}

		err = ctx.Err()
		if err != nil {
			return w, oops.Trace(err)
		}

		log.Debug("widening ambiguous window",
			zap.Int("offset", offset),
			zap.Int("from", width),
			zap.Int("to", width+opts.Width),
		)

		width += opts.Width
	}
}

// Result is a stitched run of digits of π.
type Result struct {
	Start int

	// Integer is the integer part of π. It is only known when Start is
	// zero.
	Integer *big.Int

	// Digits are the hexadecimal digits from Start on.
	Digits string

	// Value holds the integer bits followed by the digits; Fraction holds
	// the digits alone.
	Value    *big.Int
	Fraction *big.Int
}

// Hex returns the integer part, when known, followed by the digits.
func (r *Result) Hex() string {
	if r.Integer == nil {
		return r.Digits
	}

	return integer.FormatHex(r.Integer, 1) + r.Digits
}

// Assemble computes opts.Digits digits of π from opts.Start on.
func Assemble(ctx context.Context, opts Options) (_ *Result, err error) {
	defer Error.WrapP(&err)

	err = opts.normalize()
	if err != nil {
		return nil, err
	}

	log := opts.Logger.With(
		zap.Int("start", opts.Start),
		zap.Int("digits", opts.Digits),
		zap.Int("width", opts.Width),
		zap.Int("step", opts.Step),
	)

	count := (opts.Digits + opts.Step - 1) / opts.Step
	windows := make([]window.Window, count)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	for i := range windows {
		i := i
		offset := opts.Start + i*opts.Step

		g.Go(func() (err error) {
			err = gctx.Err()
			if err != nil {
				return err
			}

			windows[i], err = extract(gctx, offset, &opts, log)

			return err
		})
	}

	err = g.Wait()
	if err != nil {
		return nil, err
	}

	st := window.NewStitcher(opts.Start, opts.Step)

	for _, w := range windows {
		err = st.Push(w)
		if err != nil {
			return nil, err
		}
	}

	log.Debug("stitched", zap.Int("digits", st.Len()), zap.Int("next", st.Next()))

	st.Truncate(opts.Digits)

	r := &Result{
		Start:    opts.Start,
		Digits:   st.Digits(),
		Value:    st.Value(),
		Fraction: st.Fraction(),
	}

	r.Integer, _ = st.Integer()

	log.Debug("assembled", zap.String("hex", r.Hex()))

	return r, nil
}
