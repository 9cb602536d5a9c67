package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/winstonewert/aminograph/aa"
	"github.com/winstonewert/aminograph/stats"
)

func TestAddSub_Inverse(t *testing.T) {
	a := stats.Zero()
	a.Penalty = 3
	a.Initial.Record(true)
	a.RecordTransition(aa.Ala, aa.Arg)

	b := stats.Zero()
	b.Penalty = 1
	b.RecordTransition(aa.Ala, aa.Arg)

	sum := a.Add(b)
	back := sum.Sub(b)

	assert.Equal(t, a.Penalty, back.Penalty)
	assert.Equal(t, a.Initial, back.Initial)
	assert.Equal(t, a.Transitions, back.Transitions)
}

func TestPrior_ZeroIffPenaltyPositive(t *testing.T) {
	clean := stats.Zero()
	assert.Equal(t, 1.0, clean.Prior().Float())

	dirty := stats.Zero()
	dirty.Penalty = 1
	assert.Equal(t, 0.0, dirty.Prior().Float())
}

func TestRecordTransition_Accumulates(t *testing.T) {
	s := stats.Zero()
	s.RecordTransition(aa.Ala, aa.Gly)
	s.RecordTransition(aa.Ala, aa.Gly)
	assert.Equal(t, 2, s.Transitions.Get(aa.Ala).Get(aa.Gly))
}
