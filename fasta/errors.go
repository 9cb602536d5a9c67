package fasta

import "errors"

// Sentinel errors for the fasta package.
var (
	// ErrNoHeader indicates sequence data appeared before any ">" header line.
	ErrNoHeader = errors.New("fasta: sequence data before header")

	// ErrEmptyHeader indicates a ">" line with no name following it.
	ErrEmptyHeader = errors.New("fasta: empty record name")

	// ErrEmptyRecord indicates a header with no sequence lines following it.
	ErrEmptyRecord = errors.New("fasta: record has no sequence data")
)
