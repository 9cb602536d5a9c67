package ratemodel

import (
	"gonum.org/v1/gonum/mat"

	"github.com/winstonewert/aminograph/aa"
	"github.com/winstonewert/aminograph/logscalar"
)

// Model is the unparameterised substitution model: a 20x20 instantaneous
// rate matrix Q built from a PAML exchangeability matrix (each row sums to
// zero), and the stationary frequency of each residue stored as a
// fixed-point log for exact-equality cross-checks in Graph.Validate.
type Model struct {
	rateMatrix *mat.Dense // 20x20, row-major over aa indices 0..19
	initial    aa.Map[logscalar.FixedLog]
}

// New builds a Model from a symmetric exchangeability matrix R (PAML's
// lower-triangular form reflected to full) and a vector of stationary
// frequencies. Q[i][j] = R[i][j] for i != j; diagonal entries are set so
// each row sums to zero, per spec.
func New(exchangeability *mat.Dense, frequencies [aa.Count]float64) *Model {
	q := mat.NewDense(aa.Count, aa.Count, nil)
	for i := 0; i < aa.Count; i++ {
		rowSum := 0.0
		for j := 0; j < aa.Count; j++ {
			if i == j {
				continue
			}
			v := exchangeability.At(i, j)
			q.Set(i, j, v)
			rowSum += v
		}
		q.Set(i, i, -rowSum)
	}

	initial := aa.NewMap(func(acid aa.AminoAcid) logscalar.FixedLog {
		if acid == aa.Gap {
			return logscalar.FixedOne()
		}
		idx, _ := acid.Index()
		freq := frequencies[idx]
		if freq == 0 {
			return logscalar.FixedSmallest()
		}
		return logscalar.FixedFromFloat(freq)
	})

	return &Model{rateMatrix: q, initial: initial}
}

// Initial returns the stationary (root-emission) probability of acid.
func (m *Model) Initial(acid aa.AminoAcid) logscalar.FixedLog {
	return m.initial.Get(acid)
}

// Parameterized is M(t) = exp(Q*t), stored as log-domain entries so the
// likelihood's ∏ M(t)^count product is a cheap log-domain dot product.
type Parameterized struct {
	matrix    aa.Map[aa.Map[logscalar.Log]]
	parameter float64
}

// Parameterize computes M(t) = exp(Q*t) via a dense matrix exponential.
// t must be non-negative; the rate-parameter optimiser enforces this by
// returning +Inf from its objective before ever calling Parameterize with a
// negative t (spec §4.11).
func (m *Model) Parameterize(t float64) (*Parameterized, error) {
	if t < 0 {
		return nil, ErrNegativeParameter
	}

	scaled := mat.NewDense(aa.Count, aa.Count, nil)
	scaled.Scale(t, m.rateMatrix)

	var expQt mat.Dense
	expQt.Exp(scaled)

	matrix := aa.NewMap(func(from aa.AminoAcid) aa.Map[logscalar.Log] {
		fromIdx, _ := from.Index()
		return aa.NewMap(func(to aa.AminoAcid) logscalar.Log {
			if from == aa.Gap || to == aa.Gap {
				return logscalar.One()
			}
			toIdx, _ := to.Index()
			v := expQt.At(fromIdx, toIdx)
			if v <= 0 {
				return logscalar.Zero()
			}
			return logscalar.FromFloat(v)
		})
	})

	return &Parameterized{matrix: matrix, parameter: t}, nil
}

// Parameter returns the rate parameter t this instance was built from.
func (p *Parameterized) Parameter() float64 { return p.parameter }

// At returns log2(M(t)[from][to]).
func (p *Parameterized) At(from, to aa.AminoAcid) logscalar.Log {
	return p.matrix.Get(from).Get(to)
}

// Likelihood evaluates ∏_{i,j} M(t)[i,j]^counts[i][j] in log domain, for a
// 20x20 non-negative integer transition-count matrix indexed by residue.
func (p *Parameterized) Likelihood(counts aa.Map[aa.Map[int]]) logscalar.Log {
	total := logscalar.One()
	for _, from := range aa.All() {
		for _, to := range aa.All() {
			count := counts.Get(from).Get(to)
			if count == 0 {
				continue
			}
			total = total.Mul(p.At(from, to).PowInt(count))
		}
	}
	return total
}
