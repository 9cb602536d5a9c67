package logscalar

import (
	"encoding/json"
	"math"
)

// fixedFractionBits matches the original Q32.32 fixed-point format: 32
// integer bits, 32 fractional bits, stored in an int64.
const fixedFractionBits = 32
const fixedScale = float64(int64(1) << fixedFractionBits)

// FixedLog is a fixed-point base-2-log accumulator. Unlike Log, it supports
// only multiplication and division (Mul/Div, no Add/Sub/Sum) and compares
// exactly: repeated Mul/Div in any order reproduces the same bit pattern,
// which Graph.Validate relies on to cross-check the cached insertion
// probability against a from-scratch recomputation.
type FixedLog struct {
	raw int64
}

// FixedOne is the multiplicative identity.
func FixedOne() FixedLog { return FixedLog{0} }

// FixedSmallest is the most negative representable exponent, used in place
// of log2(0) (which fixed-point cannot represent as -Inf).
func FixedSmallest() FixedLog { return FixedLog{math.MinInt64} }

// FixedFromFloat converts a linear-domain probability to fixed-point log2.
func FixedFromFloat(value float64) FixedLog {
	if value == 0 {
		return FixedSmallest()
	}
	return FixedLog{int64(math.Round(math.Log2(value) * fixedScale))}
}

// Mul returns f*other (log2 addition).
func (f FixedLog) Mul(other FixedLog) FixedLog { return FixedLog{f.raw + other.raw} }

// Div returns f/other (log2 subtraction).
func (f FixedLog) Div(other FixedLog) FixedLog { return FixedLog{f.raw - other.raw} }

// Unfix widens the fixed-point value to a floating Log for use in ordinary
// probability arithmetic (e.g. combining with a Log-domain likelihood term).
func (f FixedLog) Unfix() Log {
	return Log{float64(f.raw) / fixedScale}
}

// FixedGamma mirrors Gamma but stores the result in fixed-point.
func FixedGamma(n int) FixedLog {
	lg, sign := math.Lgamma(float64(n))
	if sign < 0 {
		panic("logscalar: Gamma of non-positive integer")
	}
	return FixedLog{int64(math.Round(lg / math.Ln2 * fixedScale))}
}

// Equal reports bit-exact equality, the only equality FixedLog supports.
func (f FixedLog) Equal(other FixedLog) bool { return f.raw == other.raw }

// MarshalJSON encodes f as its raw Q32.32 integer, preserving bit-exact
// round-tripping rather than lossy decimal rendering of the fraction.
func (f FixedLog) MarshalJSON() ([]byte, error) { return json.Marshal(f.raw) }

// UnmarshalJSON is the inverse of MarshalJSON.
func (f *FixedLog) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &f.raw)
}
