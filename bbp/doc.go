// Package bbp extracts hexadecimal digits of π at arbitrary offsets with the
// Bailey-Borwein-Plouffe formula.
//
// Compute evaluates one window of digits. Its low digits may be wrong: each
// of the four partial sums from package series truncates once per term, and
// the weighted combination
//
//  4·S1 - 2·S4 - S5 - S6
//
// accumulates those errors into a bound of 4·(offset+width+3) units of the
// last bit. The bound is recorded in the window's Slack.
//
// Assemble computes windows at offsets Step apart, keeps only the leading
// Step digits of each and stitches them. The starting width of a window grows
// with its offset so the discarded digits can absorb the Slack. A window whose
// discarded digits are still too close to a carry boundary is recomputed wider
// by the same worker, unless Widen is NoWiden.
//
// At offset zero the window has two guard bits above the digits. The t=1 sum
// loses its integer term there (16^0 mod 1 is zero), which shifts the
// combination by exactly 4 and leaves the integer part of π, 3, in the guard
// bits modulo 4.
package bbp
