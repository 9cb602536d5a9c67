package ratemodel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/winstonewert/aminograph/aa"
	"github.com/winstonewert/aminograph/logscalar"
	"github.com/winstonewert/aminograph/ratemodel"
)

func uniformModel() *ratemodel.Model {
	exch := mat.NewDense(aa.Count, aa.Count, nil)
	for i := 0; i < aa.Count; i++ {
		for j := 0; j < aa.Count; j++ {
			if i != j {
				exch.Set(i, j, 1.0)
			}
		}
	}
	var freq [aa.Count]float64
	for i := range freq {
		freq[i] = 1.0 / aa.Count
	}
	return ratemodel.New(exch, freq)
}

func TestParameterize_ZeroRateIsIdentity(t *testing.T) {
	m := uniformModel()
	p, err := m.Parameterize(0)
	require.NoError(t, err)

	for _, acid := range aa.All() {
		assert.InDelta(t, 1.0, p.At(acid, acid).Float(), 1e-9)
	}
}

func TestParameterize_NegativeRateErrors(t *testing.T) {
	m := uniformModel()
	_, err := m.Parameterize(-1)
	assert.ErrorIs(t, err, ratemodel.ErrNegativeParameter)
}

func TestInitial_ZeroFrequencyIsSmallest(t *testing.T) {
	exch := mat.NewDense(aa.Count, aa.Count, nil)
	var freq [aa.Count]float64
	freq[0] = 1.0
	m := ratemodel.New(exch, freq)

	assert.Equal(t, logscalar.FixedSmallest(), m.Initial(aa.Arg))
	assert.Equal(t, m.Initial(aa.Arg), m.Initial(aa.Asn))
}

func TestLikelihood_MatchesSingleEntry(t *testing.T) {
	m := uniformModel()
	p, err := m.Parameterize(0.1)
	require.NoError(t, err)

	counts := aa.NewMap(func(aa.AminoAcid) aa.Map[int] {
		return aa.NewMap(func(aa.AminoAcid) int { return 0 })
	})
	row := counts.Get(aa.Ala)
	row.Set(aa.Arg, 3)
	counts.Set(aa.Ala, row)

	got := p.Likelihood(counts)
	want := p.At(aa.Ala, aa.Arg).PowInt(3)
	assert.InDelta(t, want.Log2(), got.Log2(), 1e-9)
}
