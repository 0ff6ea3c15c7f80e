package hexpi

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestRun(t *testing.T) {
	res, err := Run(context.Background(), Options{
		Digits: 32,
		Logger: zaptest.NewLogger(t),
	})
	require.NoError(t, err)

	require.True(t, res.Verified)
	require.True(t, res.Agrees)
	require.Equal(t, "3.243F6A8885A3", res.Reference)
	require.Equal(t, "3243F6A8885A308D313198A2E03707344", res.Hex)
	require.Equal(t,
		"3.141592653589793238462643383279502884195286358297445035858198682759360371345933659139627869283373229336575604975223541259765625",
		res.Decimal,
	)

	// 32 hexadecimal digits take 4*32 decimal places. The last digit is
	// 4, a multiple of 2^2, so formatting trims two trailing zeros.
	require.Equal(t, -128, res.Value.Scale)
	require.Len(t, res.Value.Fraction(), 128)
	require.True(t, strings.HasSuffix(res.Value.Fraction(), "562500"))
	require.Len(t, strings.SplitN(res.Decimal, ".", 2)[1], 126)
	require.Equal(t, res.Decimal, res.Value.String())
}

func TestRunDefaultWindow(t *testing.T) {
	res, err := Run(context.Background(), Options{Digits: 256})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(res.Hex, "3243F6A8885A308D3"))
	require.Len(t, res.Hex, 257)
	require.True(t, strings.HasPrefix(res.Decimal, "3.14159265358979323846"))
}

func TestRunOffset(t *testing.T) {
	res, err := Run(context.Background(), Options{Start: 100, Digits: 8})
	require.NoError(t, err)

	require.True(t, res.Verified)
	require.False(t, res.Agrees)
	require.Equal(t, "29B7C97C", res.Hex)
	require.Equal(t, "", res.Decimal)
	require.Nil(t, res.Value.Value)
}

func TestRunInvalid(t *testing.T) {
	_, err := Run(context.Background(), Options{Digits: 0})
	require.Error(t, err)
	require.True(t, Error.Has(err))
}

func TestAgrees(t *testing.T) {
	type TC struct {
		reference string
		hex       string
		ok        bool
	}

	tcs := []TC{
		{reference: "3.243F6A8885A3", hex: "3243F6A8885A308D3", ok: true},
		{reference: "3.243F6A8885A4", hex: "3243F6A8885A308D3", ok: true},
		{reference: "3.243F6A8885A3", hex: "3243F", ok: true},
		{reference: "3.243F6A8885A3", hex: "3243E6A8885A308D3", ok: false},
		{reference: "3", hex: "3243F", ok: false},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]", i), func(t *testing.T) {
			require.Equal(t, tc.ok, agrees(tc.reference, tc.hex))
		})
	}
}
