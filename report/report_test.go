package report_test

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
	"github.com/winstonewert/aminograph/ratemodel"
	"github.com/winstonewert/aminograph/report"
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

func TestWriteDOT_ProducesWellFormedDigraph(t *testing.T) {
	model := uniformModel()
	aln, err := alignment.ReadAlignment(strings.NewReader(threeLeaves), model, false)
	require.NoError(t, err)
	g := graph.New(model, aln)

	var buf bytes.Buffer
	require.NoError(t, report.WriteDOT(&buf, g, aln))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "digraph {"))
	assert.Contains(t, out, "leafB")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "}"))
}

func TestWriteDetails_ProducesTotals(t *testing.T) {
	model := uniformModel()
	aln, err := alignment.ReadAlignment(strings.NewReader(threeLeaves), model, false)
	require.NoError(t, err)
	g := graph.New(model, aln)

	var buf bytes.Buffer
	require.NoError(t, report.WriteDetails(&buf, g))

	out := buf.String()
	assert.Contains(t, out, "Likelihood")
	assert.Contains(t, out, "Prior")
	assert.Contains(t, out, "Total")
}
