package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winstonewert/aminograph/alignment"
	"github.com/winstonewert/aminograph/moveset"
)

const mixedColumnsAlignment = `>root
AAG
>leafB
AGA
>leafC
AVV
`

func loadMixedAlignment(t *testing.T) *alignment.Alignment {
	t.Helper()
	model := uniformTestModel()
	aln, err := alignment.ReadAlignment(strings.NewReader(mixedColumnsAlignment), model, false)
	require.NoError(t, err)
	return aln
}

func TestStandardPositionMapping_CountsOnlyStandardColumns(t *testing.T) {
	aln := loadMixedAlignment(t)
	mapping := standardPositionMapping(aln)
	require.Len(t, mapping, len(aln.RawPositions))

	cursor := 0
	for i, raw := range aln.RawPositions {
		if raw.IsStandard() {
			assert.Equal(t, alignment.PositionIndex(cursor), mapping[i])
			cursor++
		}
	}
	assert.Equal(t, len(aln.Positions), cursor)
}

func TestFixIndex_MatchesStandardPositionMapping(t *testing.T) {
	aln := loadMixedAlignment(t)
	mapping := standardPositionMapping(aln)
	for i := range aln.RawPositions {
		assert.Equal(t, mapping[i], fixIndex(i, aln))
	}
}

func TestFixMoveIndex_TranslatesOnlyPositionCarryingKinds(t *testing.T) {
	aln := loadMixedAlignment(t)

	addEdge := moveset.AddEdge(0, 1)
	assert.Equal(t, addEdge, fixMoveIndex(addEdge, aln))

	raw := 0
	for i, r := range aln.RawPositions {
		if r.IsStandard() {
			raw = i
			break
		}
	}
	setAA := moveset.SetAminoAcid(0, alignment.PositionIndex(raw), aln.RawPositions[raw].Reference)
	fixed := fixMoveIndex(setAA, aln)
	assert.Equal(t, fixIndex(raw, aln), fixed.Position)
}
