package persist_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/winstonewert/aminograph/aa"
	"github.com/winstonewert/aminograph/alignment"
	"github.com/winstonewert/aminograph/graph"
	"github.com/winstonewert/aminograph/persist"
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

const threeLeaves = `>root
AAG
>leafB
AGA
>leafC
AVV
`

func TestWriteReadGraph_RoundTrip(t *testing.T) {
	model := uniformModel()
	aln, err := alignment.ReadAlignment(strings.NewReader(threeLeaves), model, false)
	require.NoError(t, err)
	g := graph.New(model, aln)

	var buf bytes.Buffer
	require.NoError(t, persist.WriteGraph(&buf, g))

	reloaded, err := persist.ReadGraph(&buf, model, aln, g.Parameter())
	require.NoError(t, err)

	assert.Equal(t, g.Exported(), reloaded.Exported())
}

func TestSaveLoadDir_RoundTrip(t *testing.T) {
	model := uniformModel()
	aln, err := alignment.ReadAlignment(strings.NewReader(threeLeaves), model, false)
	require.NoError(t, err)
	g := graph.New(model, aln)

	dir := t.TempDir()
	require.NoError(t, persist.SaveToDir(dir, g))

	reloaded, err := persist.LoadFromDir(dir, model, aln)
	require.NoError(t, err)

	assert.Equal(t, g.Exported(), reloaded.Exported())
	assert.InDelta(t, g.Parameter(), reloaded.Parameter(), 1e-9)
}
