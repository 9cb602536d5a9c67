package alignment_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/winstonewert/aminograph/aa"
	"github.com/winstonewert/aminograph/alignment"
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

func TestReadAlignment_ClassifiesColumns(t *testing.T) {
	aln, err := alignment.ReadAlignment(strings.NewReader(threeLeaves), uniformModel(), false)
	require.NoError(t, err)

	require.Len(t, aln.RawPositions, 3)
	assert.False(t, aln.RawPositions[0].IsStandard(), "column 0 (all Ala) is Simple, not Standard")
	assert.True(t, aln.RawPositions[1].IsStandard(), "column 1 (A,G,V all distinct) is Standard")
	assert.True(t, aln.RawPositions[2].IsStandard(), "column 2 (G,A,V all distinct) is Standard")
	assert.Len(t, aln.Positions, 2)
}

func TestReadAlignment_NoRecords(t *testing.T) {
	_, err := alignment.ReadAlignment(strings.NewReader(""), uniformModel(), false)
	assert.ErrorIs(t, err, alignment.ErrNoRecords)
}

func TestReadAlignment_UnequalLength(t *testing.T) {
	const input = ">a\nAA\n>b\nAAA\n"
	_, err := alignment.ReadAlignment(strings.NewReader(input), uniformModel(), false)
	assert.ErrorIs(t, err, alignment.ErrUnequalLength)
}

func TestReadAlignment_SimpleGapReferenceRecordsInsertsOnly(t *testing.T) {
	// Column where the majority residue is Gap: every non-gap residue in a
	// leaf is an insertion relative to the ancestor, root/other stats untouched.
	const input = ">root\n-\n>leafB\n-\n>leafC\nA\n"
	aln, err := alignment.ReadAlignment(strings.NewReader(input), uniformModel(), false)
	require.NoError(t, err)

	assert.Equal(t, 0, aln.RootStats.Initial.Active)
	assert.Equal(t, 1, aln.SequenceStats[2].Inserts.Active)
	assert.Equal(t, 0, aln.SequenceStats[0].Inserts.Active)
}

func TestReadAlignment_SimpleResidueReferenceRecordsTransitions(t *testing.T) {
	// Majority residue Ala with one Gly minority: root gains an initial
	// event, other-stats records the reference self-transition, and the
	// divergent leaf records a substitution away from the reference.
	const input = ">root\nA\n>leafB\nA\n>leafC\nG\n"
	aln, err := alignment.ReadAlignment(strings.NewReader(input), uniformModel(), false)
	require.NoError(t, err)

	assert.Equal(t, 1, aln.RootStats.Initial.Active)
	assert.Equal(t, 1, aln.OtherStats.Transitions.Get(aa.Ala).Get(aa.Ala))
	assert.Equal(t, 1, aln.SequenceStats[2].Transitions.Get(aa.Ala).Get(aa.Gly))
	assert.Equal(t, 0, aln.SequenceStats[2].Deletes.Active)
}

func TestReadAlignment_SimpleResidueReferenceRecordsDeletes(t *testing.T) {
	const input = ">root\nA\n>leafB\nA\n>leafC\n-\n"
	aln, err := alignment.ReadAlignment(strings.NewReader(input), uniformModel(), false)
	require.NoError(t, err)

	assert.Equal(t, 1, aln.SequenceStats[2].Deletes.Active)
	assert.Equal(t, 0, aln.SequenceStats[2].Transitions.Get(aa.Ala).Get(aa.Gly))
}

func TestReadAlignment_UnrecognizedByte(t *testing.T) {
	const input = ">a\nAZ\n>b\nAA\n"
	_, err := alignment.ReadAlignment(strings.NewReader(input), uniformModel(), false)
	require.Error(t, err)
}
