package logscalar_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/winstonewert/aminograph/logscalar"
)

func TestMulDiv_RoundTrip(t *testing.T) {
	a := logscalar.FromFloat(0.25)
	b := logscalar.FromFloat(0.5)

	product := a.Mul(b)
	assert.InDelta(t, 0.125, product.Float(), 1e-9)

	quotient := product.Div(b)
	assert.InDelta(t, a.Float(), quotient.Float(), 1e-9)
}

func TestAdd_MatchesLinearSum(t *testing.T) {
	a := logscalar.FromFloat(0.25)
	b := logscalar.FromFloat(0.75)
	assert.InDelta(t, 1.0, a.Add(b).Float(), 1e-9)
}

func TestSum_StableAcrossMagnitudes(t *testing.T) {
	values := []logscalar.Log{
		logscalar.FromFloat(1e-300),
		logscalar.FromFloat(1),
		logscalar.FromFloat(1e-300),
	}
	got := logscalar.Sum(values)
	assert.InDelta(t, 1.0, got.Float(), 1e-6)
}

func TestOne_IsMultiplicativeIdentity(t *testing.T) {
	a := logscalar.FromFloat(0.42)
	assert.InDelta(t, a.Float(), a.Mul(logscalar.One()).Float(), 1e-12)
}

func TestZero_IsAdditiveIdentity(t *testing.T) {
	a := logscalar.FromFloat(0.42)
	assert.InDelta(t, a.Float(), a.Add(logscalar.Zero()).Float(), 1e-12)
}

func TestBeta_MatchesGammaIdentity(t *testing.T) {
	got := logscalar.Beta(3, 5)
	want := logscalar.Gamma(3).Mul(logscalar.Gamma(5)).Div(logscalar.Gamma(8))
	assert.InDelta(t, want.Log2(), got.Log2(), 1e-9)
}

func TestNChooseK_SmallValues(t *testing.T) {
	got := logscalar.NChooseK(5, 2)
	assert.InDelta(t, math.Log2(10), got.Log2(), 1e-6)
}

func TestFixedLog_ExactAcrossReordering(t *testing.T) {
	a := logscalar.FixedFromFloat(0.3)
	b := logscalar.FixedFromFloat(0.7)
	c := logscalar.FixedFromFloat(0.2)

	left := a.Mul(b).Mul(c)
	right := c.Mul(a).Mul(b)
	assert.True(t, left.Equal(right))
}

func TestFixedLog_DivUndoesMul(t *testing.T) {
	a := logscalar.FixedFromFloat(0.3)
	b := logscalar.FixedFromFloat(0.6)
	assert.True(t, a.Mul(b).Div(b).Equal(a))
}

func TestFixedSmallest_IsZeroProbability(t *testing.T) {
	got := logscalar.FixedFromFloat(0)
	assert.Equal(t, logscalar.FixedSmallest(), got)
}
