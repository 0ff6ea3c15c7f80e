// Package decimal converts hexadecimal numbers to exact decimal numbers.
//
// The result is a fixed point base 10 number:
//
//  number = value * 10 ^ scale
//
// Where value is an unscaled integer and scale is a non-positive base 10
// exponent. For example:
//
//  0x0.4 = 25 * 10^-2
//
// Exactness
//
// A fraction of L hexadecimal digits is N / 16^L. Because
//
//  1 / 16^L = 625^L / 10^(4L)
//
// every such fraction has a terminating decimal expansion of at most 4L
// digits. The conversion starts from a running scale of 10^(4L) and divides
// it by 16 once per digit:
//
//  value = Σ digit_i * (10^(4L) >> 4(i+1))
//
// 10^(4L) is divisible by 2^(4L), so every shift is exact and no digit is
// ever rounded.
//
// The scale of a converted number is always -4L; String trims the trailing
// zeros this leaves behind.
//
// Malformed Digits
//
// Convert and ParseHex reject any character that is not a hexadecimal digit
// with an *integer.DigitError. ConvertLenient and ParseHexLenient skip
// malformed fraction characters as if they were not there, and read a
// malformed integer part as zero.
package decimal
