package logscalar

import (
	"encoding/json"
	"fmt"
	"math"
)

// Log is a probability (or probability-like weight) stored as its base-2
// logarithm. One() is the multiplicative identity (log2 == 0); Zero() is the
// additive identity (log2 == -Inf).
type Log struct {
	log2 float64
}

// One returns the multiplicative identity (probability 1).
func One() Log { return Log{0} }

// Zero returns the additive identity (probability 0).
func Zero() Log { return Log{math.Inf(-1)} }

// Pow2 builds a Log directly from a base-2 exponent.
func Pow2(exponent float64) Log { return Log{exponent} }

// Exp builds a Log from a natural-log exponent (converts to base 2).
func Exp(naturalExponent float64) Log { return Log{naturalExponent / math.Ln2} }

// FromFloat builds a Log from a linear-domain probability in [0, 1].
func FromFloat(value float64) Log { return Log{math.Log2(value)} }

// FromInt builds a Log from a non-negative integer count.
func FromInt(value int) Log { return Log{math.Log2(float64(value))} }

// Log2 returns the stored base-2 exponent.
func (l Log) Log2() float64 { return l.log2 }

// Float returns the linear-domain value, which may underflow to 0 or
// overflow to +Inf for extreme exponents.
func (l Log) Float() float64 { return math.Exp2(l.log2) }

// String renders l as information content in bits, e.g. "3.21b" — the
// reporting-friendly form every log surfaces when printed directly,
// rather than a raw, unitless exponent.
func (l Log) String() string { return fmt.Sprintf("%.2fb", -l.log2) }

// MarshalJSON encodes l as its base-2 exponent, so report consumers get the
// exponent directly rather than an opaque, field-less struct.
func (l Log) MarshalJSON() ([]byte, error) { return json.Marshal(l.log2) }

// UnmarshalJSON is the inverse of MarshalJSON.
func (l *Log) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &l.log2)
}

// Mul returns l*other, computed as log2 addition.
func (l Log) Mul(other Log) Log { return Log{l.log2 + other.log2} }

// Div returns l/other, computed as log2 subtraction.
func (l Log) Div(other Log) Log { return Log{l.log2 - other.log2} }

// PowInt raises l to an integer power.
func (l Log) PowInt(exponent int) Log { return Log{l.log2 * float64(exponent)} }

// Less reports whether l < other in linear-domain order.
func (l Log) Less(other Log) bool { return l.log2 < other.log2 }

// Add returns l+other via the stable max-factoring technique: factor out
// whichever of l, other is larger, sum the two ratios (each <= 1) in linear
// space, then reapply the factor.
func (l Log) Add(other Log) Log {
	bigger := l
	if l.Less(other) {
		bigger = other
	}
	ratioSum := l.Div(bigger).Float() + other.Div(bigger).Float()
	return FromFloat(ratioSum).Mul(bigger)
}

// Sub returns l-other using the same max-factoring technique as Add.
// Callers are responsible for ensuring the result is non-negative; a
// negative ratio sum yields NaN in the same way float64 subtraction would.
func (l Log) Sub(other Log) Log {
	bigger := l
	if l.Less(other) {
		bigger = other
	}
	ratioDiff := l.Div(bigger).Float() - other.Div(bigger).Float()
	return FromFloat(ratioDiff).Mul(bigger)
}

// Sum adds a slice of Log values with the same max-factoring stability
// technique as Add, generalized to n terms.
func Sum(values []Log) Log {
	if len(values) == 0 {
		return Zero()
	}
	biggest := values[0]
	for _, v := range values[1:] {
		if biggest.Less(v) {
			biggest = v
		}
	}
	total := 0.0
	for _, v := range values {
		total += v.Div(biggest).Float()
	}
	return FromFloat(total).Mul(biggest)
}

// Gamma returns log2(Gamma(n)) for an integer argument, via the stdlib's
// natural-log gamma function.
func Gamma(n int) Log {
	lg, sign := math.Lgamma(float64(n))
	if sign < 0 {
		panic("logscalar: Gamma of non-positive integer")
	}
	return Exp(lg)
}

// Beta returns log2(B(a, b)) = log2(Gamma(a)*Gamma(b)/Gamma(a+b)) for
// integer arguments.
func Beta(a, b int) Log {
	lgA, _ := math.Lgamma(float64(a))
	lgB, _ := math.Lgamma(float64(b))
	lgAB, _ := math.Lgamma(float64(a + b))
	return Exp(lgA + lgB - lgAB)
}

// NChooseK returns log2(C(n, k)) via the gamma identity
// C(n,k) = Gamma(n+1) / (Gamma(k+1) * Gamma(n-k+1)).
func NChooseK(n, k int) Log {
	return Gamma(n + 1).Div(Gamma(k + 1).Mul(Gamma(n - k + 1)))
}
