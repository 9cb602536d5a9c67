package nnjoin_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/winstonewert/aminograph/aa"
	"github.com/winstonewert/aminograph/alignment"
	"github.com/winstonewert/aminograph/graph"
	"github.com/winstonewert/aminograph/nnjoin"
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

func TestRun_LeavesAtMostTwoDirectRootChildren(t *testing.T) {
	model := uniformModel()
	aln, err := alignment.ReadAlignment(strings.NewReader(fiveLeaves), model, false)
	require.NoError(t, err)
	g := graph.New(model, aln)

	nnjoin.Run(g)

	root := g.Root()
	var directChildren int
	for _, id := range g.NodeIDs() {
		for _, parent := range g.Node(id).Parents {
			if parent == root {
				directChildren++
				break
			}
		}
	}

	assert.LessOrEqual(t, directChildren, 2)
	assert.NotPanics(t, func() { g.Validate() })
}
