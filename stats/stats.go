package stats

import (
	"github.com/winstonewert/aminograph/aa"
	"github.com/winstonewert/aminograph/logscalar"
	"github.com/winstonewert/aminograph/ratemodel"
)

// Stat is a Beta-distributed active/inactive counter: active counts events
// where a binary condition held (e.g. "this position was an insert"),
// inactive counts where it did not.
type Stat struct {
	Active, Inactive int
}

// Record increments Active or Inactive depending on the observed outcome.
func (s *Stat) Record(active bool) {
	if active {
		s.Active++
	} else {
		s.Inactive++
	}
}

// Add returns the element-wise sum of s and other.
func (s Stat) Add(other Stat) Stat {
	return Stat{Active: s.Active + other.Active, Inactive: s.Inactive + other.Inactive}
}

// Sub returns the element-wise difference s - other.
func (s Stat) Sub(other Stat) Stat {
	return Stat{Active: s.Active - other.Active, Inactive: s.Inactive - other.Inactive}
}

// Likelihood returns B(active+1, inactive+1) in log domain: the Beta
// marginal likelihood of the observed active/inactive split.
func (s Stat) Likelihood() logscalar.Log {
	return logscalar.Beta(s.Active+1, s.Inactive+1)
}

// Stats is the full per-node (or aggregate) statistics record: a
// structural penalty, Beta counters for initial/insert/delete events, the
// fixed-point insertion-probability product, and the residue-to-residue
// transition-count matrix.
type Stats struct {
	Penalty           int
	Initial           Stat
	InsertProbability logscalar.FixedLog
	Deletes           Stat
	Inserts           Stat
	Transitions       aa.Map[aa.Map[int]]
}

// Zero returns the additive-identity Stats: zero penalty, zero counters,
// insert probability 1 (FixedLog multiplicative identity), zero transitions.
func Zero() Stats {
	return Stats{InsertProbability: logscalar.FixedOne()}
}

// RecordTransition increments the (from, to) entry of the transition matrix.
func (s *Stats) RecordTransition(from, to aa.AminoAcid) {
	row := s.Transitions.Get(from)
	row.Set(to, row.Get(to)+1)
	s.Transitions.Set(from, row)
}

// Add returns the element-wise sum of s and other, matching the original's
// aggregate-maintenance contract: aggregate += per-node stats as nodes are
// cleaned, aggregate -= per-node stats as nodes are marked dirty.
func (s Stats) Add(other Stats) Stats {
	result := s
	result.Penalty += other.Penalty
	result.InsertProbability = s.InsertProbability.Mul(other.InsertProbability)
	result.Initial = s.Initial.Add(other.Initial)
	result.Deletes = s.Deletes.Add(other.Deletes)
	result.Inserts = s.Inserts.Add(other.Inserts)
	result.Transitions = addTransitions(s.Transitions, other.Transitions)
	return result
}

// Sub returns s - other.
func (s Stats) Sub(other Stats) Stats {
	result := s
	result.Penalty -= other.Penalty
	result.InsertProbability = s.InsertProbability.Div(other.InsertProbability)
	result.Initial = s.Initial.Sub(other.Initial)
	result.Deletes = s.Deletes.Sub(other.Deletes)
	result.Inserts = s.Inserts.Sub(other.Inserts)
	result.Transitions = subTransitions(s.Transitions, other.Transitions)
	return result
}

func addTransitions(a, b aa.Map[aa.Map[int]]) aa.Map[aa.Map[int]] {
	out := a
	for _, from := range aa.All() {
		rowA := a.Get(from)
		rowB := b.Get(from)
		for _, to := range aa.All() {
			rowA.Set(to, rowA.Get(to)+rowB.Get(to))
		}
		out.Set(from, rowA)
	}
	return out
}

func subTransitions(a, b aa.Map[aa.Map[int]]) aa.Map[aa.Map[int]] {
	out := a
	for _, from := range aa.All() {
		rowA := a.Get(from)
		rowB := b.Get(from)
		for _, to := range aa.All() {
			rowA.Set(to, rowA.Get(to)-rowB.Get(to))
		}
		out.Set(from, rowA)
	}
	return out
}

// Likelihood evaluates the likelihood factor of the scoring model: insertion
// probability times the three Beta marginals (deletes/inserts/initial) times
// the substitution-matrix product over observed transitions (spec §4.5).
func (s Stats) Likelihood(model *ratemodel.Parameterized) logscalar.Log {
	return s.InsertProbability.Unfix().
		Mul(s.Deletes.Likelihood()).
		Mul(s.Inserts.Likelihood()).
		Mul(s.Initial.Likelihood()).
		Mul(model.Likelihood(s.Transitions))
}

// Prior returns Zero() if any structural penalty was recorded, One()
// otherwise; this is the "penalty gate" half of the prior (spec §4.5), the
// combinatorial term is computed separately by the graph engine since it
// depends on global node/edge counts, not per-node data.
func (s Stats) Prior() logscalar.Log {
	if s.Penalty > 0 {
		return logscalar.Zero()
	}
	return logscalar.One()
}
