package alignment

import "errors"

// Sentinel errors for the alignment package.
var (
	// ErrNoRecords indicates an empty FASTA file was supplied.
	ErrNoRecords = errors.New("alignment: no records in input")

	// ErrUnequalLength indicates records were not all the same length, a
	// precondition of a multiple sequence alignment.
	ErrUnequalLength = errors.New("alignment: records have unequal length")
)
