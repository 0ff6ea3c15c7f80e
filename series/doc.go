// Package series evaluates the partial sums of the BBP formula for π in exact
// integer arithmetic.
//
// The BBP formula is:
//
//  π = Σ 16^-k (4/(8k+1) - 2/(8k+4) - 1/(8k+5) - 1/(8k+6))
//
// Each of the four sums Σ 16^(n-k)/(8k+t) is evaluated independently for a
// digit offset n. Multiplying by 16^n moves the hexadecimal point n digits to
// the right; only the fractional part of the result is interesting, so the
// integer part is discarded as early as possible.
//
// Left Part
//
// For k = 0..n the exponent n-k is non-negative. The integer part of
// 16^(n-k)/(8k+t) is dropped by reducing the numerator modulo the
// denominator:
//
//  frac(16^(n-k)/r) = (16^(n-k) mod r) / r
//
// The residue is scaled by 2^shift and divided, leaving a fixed point value
// with shift fractional bits. The running total is reduced by the caller's
// mask after every addition so it never grows with n.
//
// Right Part
//
// For k > n the terms are already fractions. They are scaled the same way,
// which turns them into 16^(width+n-k)/(8k+t), and summed until a term
// truncates to zero. Every later term is smaller by at least a factor of 16,
// so at most width+1 terms are ever added.
//
// Error
//
// Every term is truncated toward zero. The returned value therefore never
// exceeds the exact value and is below it by less than one unit per term plus
// the discarded tail:
//
//  0 <= exact - value < n + width + 3
//
// (in units of 2^-shift, modulo the mask).
package series
