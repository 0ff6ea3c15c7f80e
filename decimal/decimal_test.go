package decimal

import (
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/hexpi/integer"
)

// rat returns the exact value of b.
func rat(b Block) *big.Rat {
	if b.Value == nil {
		return new(big.Rat)
	}

	if b.Scale >= 0 {
		return new(big.Rat).SetInt(b.Integral())
	}

	return new(big.Rat).SetFrac(b.Value, b.unit())
}

func TestConvert(t *testing.T) {
	type TC struct {
		integral string
		fraction string
		output   string
		scale    int
		Mark     error
	}

	tcs := []TC{
		{integral: "", fraction: "", output: "0", scale: 0},
		{integral: "FF", fraction: "", output: "255", scale: 0},
		{integral: "A", fraction: "8", output: "10.5", scale: -4},
		{integral: "", fraction: "4", output: "0.25", scale: -4},
		{integral: "", fraction: "FF", output: "0.99609375", scale: -8},
		{integral: "0", fraction: "0001", output: "0.0000152587890625", scale: -16},
		{integral: "1", fraction: "00", output: "1.0", scale: -8},
		{integral: "3", fraction: "243", output: "3.141357421875", scale: -12},
		{
			integral: "3",
			fraction: "243F6A8885A3",
			output:   "3.141592653589793115997963468544185161590576171875",
			scale:    -48,
		},
	}

	for i, tc := range tcs {
		tc.Mark = oops.New("unexpected")

		t.Run(fmt.Sprintf("[%d]%s.%s", i, tc.integral, tc.fraction), func(t *testing.T) {
			b, err := Convert(tc.integral, tc.fraction)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.output, b.String(), tc.Mark)
			require.Equal(t, tc.scale, b.Scale, tc.Mark)

			text, err := b.MarshalText()
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.output, string(text), tc.Mark)

			// The lenient form agrees on well formed input.
			require.Equal(t, b, ConvertLenient(tc.integral, tc.fraction), tc.Mark)
		})
	}
}

func TestBlock(t *testing.T) {
	b, err := Convert("A", "8")
	require.NoError(t, err)

	require.Equal(t, int64(105000), b.Value.Int64())
	require.Equal(t, int64(10), b.Integral().Int64())
	require.Equal(t, "5000", b.Fraction())
	require.Equal(t, 0, big.NewRat(21, 2).Cmp(rat(b)))

	b, err = Convert("", "0001")
	require.NoError(t, err)
	require.Equal(t, "0000152587890625", b.Fraction())
	require.Equal(t, 0, big.NewRat(1, 65536).Cmp(rat(b)))

	var zero Block
	require.Equal(t, "0", zero.String())
	require.Equal(t, 0, rat(zero).Sign())
}

func TestExact(t *testing.T) {
	// Every fraction of L hexadecimal digits is N/16^L exactly.
	digits := "243F6A8885A308D313198A2E03707344A4093822299F31D0"

	for l := 1; l <= len(digits); l++ {
		b, err := Convert("3", digits[:l])
		require.NoError(t, err)

		n, ok := new(big.Int).SetString("3"+digits[:l], 16)
		require.True(t, ok)

		want := new(big.Rat).SetFrac(n, new(big.Int).Lsh(big.NewInt(1), uint(4*l)))
		require.Equal(t, 0, want.Cmp(rat(b)), "l=%d", l)
	}
}

func TestRederive(t *testing.T) {
	tcs := []string{
		"243F6A8885A308D313198A2E03707344",
		"0000000000000000000001",
		"FFFFFFFFFFFFFFFFFFFFFFFF",
		"8000000000000000000000000000000000000000",
		"0123456789ABCDEF0123456789ABCDEF",
	}

	for i, fraction := range tcs {
		t.Run(fmt.Sprintf("[%d]", i), func(t *testing.T) {
			b, err := Convert("", fraction)
			require.NoError(t, err)

			// Parse the decimal text on its own and read the hexadecimal
			// digits back out of it one at a time.
			r, ok := new(big.Rat).SetString(b.String())
			require.True(t, ok)

			sixteen := big.NewRat(16, 1)
			out := make([]byte, 0, len(fraction))

			for range fraction {
				r.Mul(r, sixteen)

				d := new(big.Int).Quo(r.Num(), r.Denom())
				out = append(out, "0123456789ABCDEF"[d.Int64()])

				r.Sub(r, new(big.Rat).SetInt(d))
			}

			require.Equal(t, fraction, string(out))
			require.Equal(t, 0, r.Sign())
		})
	}
}

func TestMalformed(t *testing.T) {
	t.Run("strict", func(t *testing.T) {
		type TC struct {
			integral string
			fraction string
			pos      int
			char     byte
		}

		tcs := []TC{
			{integral: "3", fraction: "24G3", pos: 2, char: 'G'},
			{integral: "Z", fraction: "24", pos: 0, char: 'Z'},
			{integral: "", fraction: "0x1", pos: 1, char: 'x'},
		}

		for i, tc := range tcs {
			t.Run(fmt.Sprintf("[%d]", i), func(t *testing.T) {
				_, err := Convert(tc.integral, tc.fraction)
				require.Error(t, err)
				require.True(t, errors.Is(err, integer.ErrInvalidDigit))

				de := &integer.DigitError{}
				require.True(t, errors.As(err, &de))
				require.Equal(t, tc.pos, de.Pos)
				require.Equal(t, tc.char, de.Char)
			})
		}
	})

	t.Run("lenient skips", func(t *testing.T) {
		got := ConvertLenient("3", "24G3")
		want, err := Convert("3", "243")
		require.NoError(t, err)
		require.Equal(t, want, got)
		require.Equal(t, "3.141357421875", got.String())

		got = ConvertLenient("3", "2 4-3!")
		require.Equal(t, want, got)
	})

	t.Run("lenient integral", func(t *testing.T) {
		got := ConvertLenient("Z1", "8")
		require.Equal(t, "0.5", got.String())
	})
}

func TestParseHex(t *testing.T) {
	type TC struct {
		input  string
		output string
		err    bool
	}

	tcs := []TC{
		{input: "3.8", output: "3.5"},
		{input: "A", output: "10"},
		{input: ".4", output: "0.25"},
		{input: "", output: "0"},
		{input: "3.243F6A8885A3", output: "3.141592653589793115997963468544185161590576171875"},
		{input: "1.2.3", err: true},
		{input: "-1.0", err: true},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.input), func(t *testing.T) {
			b, err := ParseHex(tc.input)
			if tc.err {
				require.Error(t, err)
				require.True(t, Error.Has(err))
				require.True(t, errors.Is(err, integer.ErrInvalidDigit))

				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.output, b.String())
		})
	}

	require.Equal(t, "1.13671875", ParseHexLenient("1.2.3").String())
}
