// Package logscalar implements log-domain scalar arithmetic for numerically
// stable probability math: Log stores a base-2 logarithm (exponent 0
// represents the multiplicative identity 1, -Inf represents 0), and FixedLog is a
// fixed-point variant used where bit-exact equality across re-orderings is
// required (the accumulated insertion-probability product, cross-checked by
// Graph.Validate).
//
// All operations are O(1) except Sum, which is O(n) and factors out the
// maximum term before summing in linear space to avoid overflow/underflow —
// the same technique used for numerically stable log-sum-exp.
package logscalar
