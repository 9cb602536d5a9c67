package search_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/winstonewert/aminograph/aa"
	"github.com/winstonewert/aminograph/alignment"
	"github.com/winstonewert/aminograph/graph"
	"github.com/winstonewert/aminograph/logscalar"
	"github.com/winstonewert/aminograph/ratemodel"
	"github.com/winstonewert/aminograph/search"
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

const fiveLeaves = `>a
AAGG
>b
AAGA
>c
AVVA
>d
AGGA
>e
AAGA
`

func newTestGraph(t *testing.T) *graph.Graph {
	t.Helper()
	model := uniformModel()
	aln, err := alignment.ReadAlignment(strings.NewReader(fiveLeaves), model, false)
	require.NoError(t, err)
	return graph.New(model, aln)
}

func TestOptimize_NeverLowersProbability(t *testing.T) {
	g := newTestGraph(t)
	baseline := g.Probability()

	search.Optimize(g)

	assert.NotPanics(t, func() { g.Validate() })
	assert.False(t, g.Probability().Less(baseline))
}

func TestShuffle_AppliesRequestedCount(t *testing.T) {
	g := newTestGraph(t)
	random := rand.New(rand.NewSource(1))

	logs := search.Shuffle(g, random, 3)

	assert.Len(t, logs, 3)
	assert.NotPanics(t, func() { g.Validate() })
}

func TestOptimizeGroups_NeverLowersProbability(t *testing.T) {
	g := newTestGraph(t)
	search.Optimize(g)
	baseline := g.Probability()

	search.OptimizeGroups(g)

	assert.NotPanics(t, func() { g.Validate() })
	assert.False(t, g.Probability().Less(baseline))
}

func TestOptimizeParameter_NeverLowersLikelihood(t *testing.T) {
	g := newTestGraph(t)
	baseline := g.Likelihood()

	search.OptimizeParameter(g)

	assert.False(t, g.Likelihood().Less(baseline))
}

func TestRunBuckets_NeverLowersProbability(t *testing.T) {
	g := newTestGraph(t)
	baseline := g.Probability()
	random := rand.New(rand.NewSource(7))

	var moveCount, roundCount int
	search.RunBuckets(g, 2, 2, random,
		func(search.MoveLog) { moveCount++ },
		func(logscalar.Log) { roundCount++ })

	assert.Equal(t, 2, roundCount)
	assert.NotPanics(t, func() { g.Validate() })
	assert.False(t, g.Probability().Less(baseline))
}

func TestRun_CompactsAndImproves(t *testing.T) {
	g := newTestGraph(t)
	baseline := g.Probability()

	search.Run(g)

	assert.NotPanics(t, func() { g.Validate() })
	assert.False(t, g.Probability().Less(baseline))
}
