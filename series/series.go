package series

import "math/big"

// Constants of the four sums in the BBP formula.
const (
	T1 = 1
	T4 = 4
	T5 = 5
	T6 = 6
)

var sixteen = big.NewInt(16)

// Result holds both halves of a partial sum.
type Result struct {
	Left  *big.Int
	Right *big.Int

	// Terms is the number of right part terms that were evaluated,
	// including the final term that contributed nothing.
	Terms int
}

// Value returns Left + Right. It may exceed the mask; callers reduce it
// after combining sums.
func (r Result) Value() *big.Int {
	return new(big.Int).Add(r.Left, r.Right)
}

// Sum returns frac(Σ 16^(n-k)/(8k+t)) scaled by 16^width, congruent modulo
// mask + 1 to the exact value minus the truncation error.
//
// The series constant t must be one of T1, T4, T5 or T6, n must be
// non-negative and width positive.
func Sum(t, n, width int, mask *big.Int) *big.Int {
	return Evaluate(t, n, width, mask).Value()
}

// Evaluate is Sum with the left and right parts reported separately.
func Evaluate(t, n, width int, mask *big.Int) (r Result) {
	shift := uint(width) << 2

	var (
		d    = new(big.Int)
		e    = new(big.Int)
		term = new(big.Int)
	)

	left := new(big.Int)
	for k := 0; k <= n; k++ {
		d.SetInt64(int64(8*k + t))
		e.SetInt64(int64(n - k))

		term.Exp(sixteen, e, d)
		term.Lsh(term, shift)
		term.Quo(term, d)

		left.Add(left, term)
		left.And(left, mask)
	}

	right := new(big.Int)
	next := new(big.Int)
	for k := n + 1; ; k++ {
		exp := width + n - k
		if exp < 0 {
			break
		}

		d.SetInt64(int64(8*k + t))

		term.SetInt64(1)
		term.Lsh(term, uint(exp)<<2)
		term.Quo(term, d)

		next.Add(right, term)
		r.Terms++

		if next.Cmp(right) == 0 {
			break
		}

		right.Set(next)
	}

	r.Left = left
	r.Right = right

	return r
}

// Bound returns the exclusive upper bound, in units of the last bit, of the
// truncation error of Sum at offset n and the given width.
func Bound(n, width int) int64 {
	return int64(n) + int64(width) + 3
}
