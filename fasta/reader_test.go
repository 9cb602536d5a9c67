package fasta_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winstonewert/aminograph/fasta"
)

func TestReadAll_SimpleRecords(t *testing.T) {
	input := ">a\nAA\n>b\nAA\n"
	records, err := fasta.ReadAll(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "a", records[0].ID)
	assert.Equal(t, []byte("AA"), records[0].Sequence)
	assert.Equal(t, "b", records[1].ID)
}

func TestReadAll_WrappedSequenceLines(t *testing.T) {
	input := ">a\nAC\nGT\n"
	records, err := fasta.ReadAll(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, []byte("ACGT"), records[0].Sequence)
}

func TestReadAll_NoHeaderBeforeSequence(t *testing.T) {
	_, err := fasta.ReadAll(strings.NewReader("AAAA\n"))
	assert.ErrorIs(t, err, fasta.ErrNoHeader)
}

func TestReadAll_EmptyRecordTrailing(t *testing.T) {
	_, err := fasta.ReadAll(strings.NewReader(">a\nAA\n>b\n"))
	assert.ErrorIs(t, err, fasta.ErrEmptyRecord)
}
